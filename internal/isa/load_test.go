package isa_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AetiasHax/armv5te/internal/isa"
)

func TestLoadAllVariantWidthPairs(t *testing.T) {
	variants := []string{"v4t", "v5te", "v6", "v6k"}
	widths := []string{"arm", "thumb"}

	for _, v := range variants {
		for _, w := range widths {
			t.Run(v+"/"+w, func(t *testing.T) {
				cat, err := isa.Load(v, w)
				require.NoError(t, err)
				require.NotNil(t, cat)
				assert.Equal(t, v, cat.Variant)
				assert.Equal(t, w, cat.Width)
				assert.NotEmpty(t, cat.Opcodes)
			})
		}
	}
}

// TestLoadIsCumulativeByVariant checks that a later variant never sees
// fewer opcodes than an earlier one, since MinVariant filtering only ever
// adds opcodes as the requested variant advances.
func TestLoadIsCumulativeByVariant(t *testing.T) {
	order := []string{"v4t", "v5te", "v6", "v6k"}
	prevCount := -1
	for _, v := range order {
		cat, err := isa.Load(v, "arm")
		require.NoError(t, err)
		assert.GreaterOrEqual(t, len(cat.Opcodes), prevCount)
		prevCount = len(cat.Opcodes)
	}
}

func TestLoadUnknownVariant(t *testing.T) {
	_, err := isa.Load("v7", "arm")
	require.Error(t, err)
	var catErr *isa.CatalogError
	require.ErrorAs(t, err, &catErr)
	assert.Equal(t, "variant", catErr.Kind)
}

func TestLoadUnknownWidth(t *testing.T) {
	_, err := isa.Load("v5te", "mips")
	require.Error(t, err)
	var catErr *isa.CatalogError
	require.ErrorAs(t, err, &catErr)
	assert.Equal(t, "width", catErr.Kind)
}

func TestLoadResultIsIndependentPerCall(t *testing.T) {
	a, err := isa.Load("v6k", "arm")
	require.NoError(t, err)
	b, err := isa.Load("v6k", "arm")
	require.NoError(t, err)

	assert.Equal(t, len(a.Opcodes), len(b.Opcodes))
	assert.NotSame(t, a, b)
}
