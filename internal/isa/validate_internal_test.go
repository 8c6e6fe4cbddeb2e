package isa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func u32p(v uint32) *uint32 { return &v }
func u8p(v uint8) *uint8    { return &v }

func emptyCatalog() *Catalog {
	return &Catalog{
		Variant:   "v6k",
		Width:     "arm",
		Args:      map[string]ArgDescriptor{},
		Fields:    map[string]FieldDescriptor{},
		Modifiers: map[string]ModifierDescriptor{},
	}
}

func TestValidateFieldValueNoShape(t *testing.T) {
	err := validateFieldValue(FieldValue{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no derivation shape")
}

func TestValidateFieldValueAmbiguousShape(t *testing.T) {
	err := validateFieldValue(FieldValue{
		Bits: &BitRange{Lo: 0, Hi: 4},
		Bit:  u8p(3),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "more than one derivation shape")
}

func TestValidateFieldValueRotImmAlone(t *testing.T) {
	err := validateFieldValue(FieldValue{
		RotImm: &RotImmExpr{Imm: BitRange{Lo: 0, Hi: 8}, Rotate: BitRange{Lo: 8, Hi: 12}},
	})
	assert.NoError(t, err)
}

func TestValidateFieldValueStructRecursesIntoMembers(t *testing.T) {
	err := validateFieldValue(FieldValue{
		Struct: map[string]FieldValue{
			"bad": {},
		},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `struct member "bad"`)
}

func TestCatalogValidateFieldReferencesUndefinedArg(t *testing.T) {
	cat := emptyCatalog()
	cat.Fields["Rd"] = FieldDescriptor{
		Name:  "Rd",
		Arg:   "NoSuchArg",
		Value: FieldValue{Bits: &BitRange{Lo: 12, Hi: 16}},
	}

	err := cat.validate()
	require.Error(t, err)
	var catErr *CatalogError
	require.ErrorAs(t, err, &catErr)
	assert.Equal(t, "field", catErr.Kind)
}

func TestCatalogValidateModifierNoCasesNoBoolean(t *testing.T) {
	cat := emptyCatalog()
	cat.Modifiers["cond"] = ModifierDescriptor{Name: "cond"}

	err := cat.validate()
	require.Error(t, err)
	var catErr *CatalogError
	require.ErrorAs(t, err, &catErr)
	assert.Equal(t, "modifier", catErr.Kind)
}

func TestCatalogValidateOpcodePatternOutsideMask(t *testing.T) {
	cat := emptyCatalog()
	cat.Opcodes = []OpcodeDescriptor{
		{Name: "bogus", Mask: 0x0000000F, Pattern: 0x000000F0},
	}

	err := cat.validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pattern has bits set outside mask")
}

func TestCatalogValidateOpcodeUndefinedField(t *testing.T) {
	cat := emptyCatalog()
	cat.Opcodes = []OpcodeDescriptor{
		{Name: "mov", Mask: 0xFFFFFFFF, Pattern: 0, Fields: []string{"Rd"}},
	}

	err := cat.validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `references undefined field "Rd"`)
}

func TestCatalogValidateOpcodeUndefinedModifier(t *testing.T) {
	cat := emptyCatalog()
	cat.Opcodes = []OpcodeDescriptor{
		{Name: "mov", Mask: 0xFFFFFFFF, Pattern: 0, Modifiers: []string{"cond"}},
	}

	err := cat.validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `references undefined modifier "cond"`)
}

func TestCatalogValidateRejectsNestedStructArg(t *testing.T) {
	cat := emptyCatalog()
	cat.Args["Inner"] = ArgDescriptor{Name: "Inner", Kind: ArgStruct}
	cat.Args["Outer"] = ArgDescriptor{
		Name: "Outer",
		Kind: ArgStruct,
		Members: []StructMember{
			{Name: "inner", Arg: "Inner"},
		},
	}

	err := cat.validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nested struct member")
}

func TestCatalogValidateCleanCatalogPasses(t *testing.T) {
	cat := emptyCatalog()
	cat.Args["Rd"] = ArgDescriptor{Name: "Rd", Kind: ArgCustom, Custom: "Register"}
	cat.Fields["Rd"] = FieldDescriptor{
		Name:  "Rd",
		Arg:   "Rd",
		Value: FieldValue{Bits: &BitRange{Lo: 12, Hi: 16}},
	}
	cat.Modifiers["s"] = ModifierDescriptor{Name: "s", Boolean: true, Mask: 0x100000, Pattern: 0x100000, Suffix: "s"}
	cat.Opcodes = []OpcodeDescriptor{
		{Name: "mov", Mask: 0x0FE00000, Pattern: 0x01A00000, Fields: []string{"Rd"}, Modifiers: []string{"s"}},
	}

	assert.NoError(t, cat.validate())
}
