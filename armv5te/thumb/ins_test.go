package thumb_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	armv5tethumb "github.com/AetiasHax/armv5te/armv5te/thumb"
)

func TestNewAndParseBaseEncoding(t *testing.T) {
	i := armv5tethumb.New(0x2000)
	require.NotEqual(t, armv5tethumb.Illegal, i.Op)
	assert.False(t, i.Parse().Illegal())
}

func TestSetendIsIllegalUnderV5te(t *testing.T) {
	// SETEND is catalogued from v6 onward.
	i := armv5tethumb.New(0xB650)
	assert.Equal(t, armv5tethumb.Illegal, i.Op)
}

func TestIsHalfBLRecognisesSetupHalfword(t *testing.T) {
	i := armv5tethumb.New(0xF000)
	require.NotEqual(t, armv5tethumb.Illegal, i.Op)
	assert.True(t, i.IsHalfBL())
}

func TestCountIsPositive(t *testing.T) {
	assert.Greater(t, armv5tethumb.Count(), 0)
}
