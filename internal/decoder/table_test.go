package decoder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AetiasHax/armv5te/args"
	"github.com/AetiasHax/armv5te/internal/decoder"
)

func TestBuildAllVariantWidthPairs(t *testing.T) {
	variants := []string{"v4t", "v5te", "v6", "v6k"}
	widths := []string{"arm", "thumb"}

	for _, v := range variants {
		for _, w := range widths {
			t.Run(v+"/"+w, func(t *testing.T) {
				tbl := decoder.Build(v, w)
				require.NotNil(t, tbl)
				assert.Greater(t, tbl.Count(), 0)
			})
		}
	}
}

func TestBuildPanicsOnUnknownVariant(t *testing.T) {
	assert.Panics(t, func() {
		decoder.Build("v7", "arm")
	})
}

func TestTableFindKnownEncoding(t *testing.T) {
	tbl := decoder.Build("v4t", "arm")
	op := tbl.Find(0xe0a12003) // adc r2, r1, r3
	assert.NotEqual(t, decoder.IllegalOpcode, op)
}

func TestTableFindUnmatchedIsIllegal(t *testing.T) {
	tbl := decoder.Build("v4t", "arm")
	// 0xFFFFFFFF doesn't satisfy any catalogued (mask, pattern) pair.
	op := tbl.Find(0xFFFFFFFF)
	assert.Equal(t, decoder.IllegalOpcode, op)
}

func TestTableMnemonicOutOfRangeIsIllegal(t *testing.T) {
	tbl := decoder.Build("v4t", "arm")
	assert.Equal(t, args.IllegalMnemonic, tbl.Mnemonic(decoder.IllegalOpcode))
}

func TestTableMnemonicKnownOpcode(t *testing.T) {
	tbl := decoder.Build("v4t", "arm")
	op := tbl.Find(0xe0a12003)
	require.NotEqual(t, decoder.IllegalOpcode, op)
	assert.Equal(t, "adc", tbl.Mnemonic(op))
}

func TestTableParseKnownEncoding(t *testing.T) {
	tbl := decoder.Build("v4t", "arm")
	op := tbl.Find(0xe0a12003)
	require.NotEqual(t, decoder.IllegalOpcode, op)

	p := tbl.Parse(0xe0a12003, op)
	assert.False(t, p.Illegal())
	assert.Equal(t, "adc", p.Mnemonic)
}

func TestTableParseOutOfRangeOpcodeIsIllegal(t *testing.T) {
	tbl := decoder.Build("v4t", "arm")
	p := tbl.Parse(0xe0a12003, 0xFE)
	assert.True(t, p.Illegal())
}

func TestTableIsHalfBLOutOfRangeIsFalse(t *testing.T) {
	tbl := decoder.Build("v4t", "thumb")
	assert.False(t, tbl.IsHalfBL(0xFE))
}

func TestTableIsHalfBLRecognisesSetupHalfword(t *testing.T) {
	tbl := decoder.Build("v4t", "thumb")
	op := tbl.Find(0xF000) // first halfword of a BL/BLX pair
	require.NotEqual(t, decoder.IllegalOpcode, op)
	assert.True(t, tbl.IsHalfBL(op))
}

func TestTableCountMatchesOpcodesLength(t *testing.T) {
	tbl := decoder.Build("v6k", "arm")
	assert.Equal(t, len(tbl.Opcodes), tbl.Count())
}
