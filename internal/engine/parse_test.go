package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AetiasHax/armv5te/args"
	"github.com/AetiasHax/armv5te/internal/isa"
)

func adcLikeCatalog() *isa.Catalog {
	globalMask := uint32(0xF0000000)
	return &isa.Catalog{
		Args: map[string]isa.ArgDescriptor{
			"RegisterPrim": {Name: "RegisterPrim", Kind: isa.ArgCustom, Custom: "Register"},
		},
		Fields: map[string]isa.FieldDescriptor{
			"Rd": {Name: "Rd", Arg: "RegisterPrim", Value: isa.FieldValue{Bits: &isa.BitRange{Lo: 12, Hi: 16}}},
			"Rn": {Name: "Rn", Arg: "RegisterPrim", Value: isa.FieldValue{Bits: &isa.BitRange{Lo: 16, Hi: 20}}},
			"Rm": {Name: "Rm", Arg: "RegisterPrim", Value: isa.FieldValue{Bits: &isa.BitRange{Lo: 0, Hi: 4}}},
		},
		Modifiers: map[string]isa.ModifierDescriptor{
			"s": {Name: "s", Boolean: true, Mask: 0x00100000, Pattern: 0x00100000, Suffix: "s"},
			"cond": {
				Name:       "cond",
				GlobalMask: &globalMask,
				Cases: []isa.ModifierCase{
					{Name: "eq", Pattern: 0x00000000, Suffix: "eq"},
					{Name: "al", Pattern: 0xE0000000, Suffix: ""},
				},
			},
		},
	}
}

func TestParseAdcLikeOpcode(t *testing.T) {
	cat := adcLikeCatalog()
	op := isa.OpcodeDescriptor{
		Name:      "adc",
		Fields:    []string{"Rd", "Rn", "Rm"},
		Modifiers: []string{"s", "cond"},
	}

	p := Parse(cat, op, 0xE0A12003)
	assert.Equal(t, "adc", p.Mnemonic)
	require.Equal(t, 3, p.ArgCount())
	assert.Equal(t, args.R2, p.Args[0].RegV.Reg)
	assert.Equal(t, args.R1, p.Args[1].RegV.Reg)
	assert.Equal(t, args.R3, p.Args[2].RegV.Reg)
}

func TestParseModifierSuffixApplied(t *testing.T) {
	cat := adcLikeCatalog()
	op := isa.OpcodeDescriptor{
		Name:      "adc",
		Fields:    []string{"Rd", "Rn", "Rm"},
		Modifiers: []string{"s", "cond"},
	}

	p := Parse(cat, op, 0xE0B12003) // S bit (0x00100000) set
	assert.Equal(t, "adcs", p.Mnemonic)
}

func TestParseConditionSuffixApplied(t *testing.T) {
	cat := adcLikeCatalog()
	op := isa.OpcodeDescriptor{
		Name:      "adc",
		Fields:    []string{"Rd", "Rn", "Rm"},
		Modifiers: []string{"s", "cond"},
	}

	p := Parse(cat, op, 0x00A12003) // cond = eq
	assert.Equal(t, "adceq", p.Mnemonic)
}

func TestParseIllegalModifierCaseYieldsIllegalIns(t *testing.T) {
	cat := adcLikeCatalog()
	op := isa.OpcodeDescriptor{
		Name:      "adc",
		Fields:    []string{"Rd", "Rn", "Rm"},
		Modifiers: []string{"s", "cond"},
	}

	p := Parse(cat, op, 0xF0A12003) // cond bits = 0xF, no case defined
	assert.True(t, p.Illegal())
}

func TestParseUnknownModifierNameYieldsIllegalIns(t *testing.T) {
	cat := adcLikeCatalog()
	op := isa.OpcodeDescriptor{
		Name:      "adc",
		Fields:    []string{"Rd", "Rn", "Rm"},
		Modifiers: []string{"nonexistent"},
	}

	p := Parse(cat, op, 0xE0A12003)
	assert.True(t, p.Illegal())
}

func TestParseUnknownFieldYieldsIllegalIns(t *testing.T) {
	cat := adcLikeCatalog()
	op := isa.OpcodeDescriptor{
		Name:   "adc",
		Fields: []string{"NoSuchField"},
	}

	p := Parse(cat, op, 0xE0A12003)
	assert.True(t, p.Illegal())
}

func TestParseTailSuffixAppended(t *testing.T) {
	cat := adcLikeCatalog()
	op := isa.OpcodeDescriptor{
		Name:       "mcr",
		Fields:     []string{"Rd"},
		TailSuffix: "2",
	}

	p := Parse(cat, op, 0)
	assert.Equal(t, "mcr2", p.Mnemonic)
}

func TestParseExtraFieldsFromModifierCase(t *testing.T) {
	globalMask := uint32(0xF0000000)
	cat := adcLikeCatalog()
	cat.Modifiers["cond"] = isa.ModifierDescriptor{
		Name:       "cond",
		GlobalMask: &globalMask,
		Cases: []isa.ModifierCase{
			{Name: "al", Pattern: 0xE0000000, Suffix: "", ExtraFields: []string{"Rm"}},
		},
	}
	op := isa.OpcodeDescriptor{
		Name:      "adc",
		Fields:    []string{"Rd", "Rn"},
		Modifiers: []string{"cond"},
	}

	p := Parse(cat, op, 0xE0A12003)
	require.Equal(t, 3, p.ArgCount())
	// Rd, Rn from Fields, then Rm appended from the matched case's extra fields.
	assert.Equal(t, args.R2, p.Args[0].RegV.Reg)
	assert.Equal(t, args.R1, p.Args[1].RegV.Reg)
	assert.Equal(t, args.R3, p.Args[2].RegV.Reg)
}
