package arm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	armv4tarm "github.com/AetiasHax/armv5te/armv4t/arm"
	armv5tearm "github.com/AetiasHax/armv5te/armv5te/arm"
	armv6arm "github.com/AetiasHax/armv5te/armv6/arm"
	armv6karm "github.com/AetiasHax/armv5te/armv6k/arm"
)

func TestNopIsRecognisedFromV6k(t *testing.T) {
	i := armv6karm.New(0x03200000)
	require.NotEqual(t, armv6karm.Illegal, i.Op)
	assert.Equal(t, "nop", i.Op.Mnemonic())
}

func TestEveryEarlierVariantOpcodeStillResolves(t *testing.T) {
	tests := []struct {
		name string
		code uint32
		want string
	}{
		{"adc", 0xe0a12003, "adc"},
		{"clz", 0x016F0F10, "clz"},
		{"rev", 0xe6bf1f32, "rev"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			i := armv6karm.New(tt.code)
			require.NotEqual(t, armv6karm.Illegal, i.Op)
			assert.Equal(t, tt.want, i.Op.Mnemonic())
		})
	}
}

func TestCountIsCumulativelyLargestAcrossVariants(t *testing.T) {
	assert.Greater(t, armv6karm.Count(), armv4tarm.Count())
	assert.Greater(t, armv6karm.Count(), armv5tearm.Count())
	assert.Greater(t, armv6karm.Count(), armv6arm.Count())
}
