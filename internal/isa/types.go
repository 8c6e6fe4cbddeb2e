// Package isa holds the declarative, data-only ISA catalogue: argument
// descriptors, field descriptors, modifier descriptors and opcode
// descriptors. Nothing in this package inspects an instruction word; it
// only describes the shape of the decoders that internal/engine and
// internal/search build from it.
package isa

// ArgKind is the shape of an argument descriptor.
type ArgKind string

const (
	ArgU32    ArgKind = "u32"
	ArgI32    ArgKind = "i32"
	ArgBool   ArgKind = "bool"
	ArgEnum   ArgKind = "enum"
	ArgStruct ArgKind = "struct"
	ArgCustom ArgKind = "custom"
)

// EnumVariant is one named, 8-bit-valued case of an Enum-kind argument.
type EnumVariant struct {
	Name  string `toml:"name"`
	Value uint8  `toml:"value"`
}

// StructMember is one named field inside a Struct-kind argument, itself
// typed by reference to another argument descriptor's name.
type StructMember struct {
	Name string `toml:"name"`
	Arg  string `toml:"arg"`
}

// ArgDescriptor describes one shape in the Argument union.
type ArgDescriptor struct {
	Name     string         `toml:"name"`
	Kind     ArgKind        `toml:"kind"`
	Variants []EnumVariant  `toml:"variants"`
	Members  []StructMember `toml:"members"`
	// Custom names a shared primitive enum (e.g. "Register", "Shift")
	// when Kind == ArgCustom.
	Custom string `toml:"custom"`
}

// BitRange is the [Lo, Hi) bit-range derivation shape.
type BitRange struct {
	Lo uint8 `toml:"lo"`
	Hi uint8 `toml:"hi"`
}

// NegateExpr two's-complement-negates an inner bit-range when a flag bit
// is clear and passes it through when the bit is set (ARM's U bit: set
// means add), per §4.3's negate() primitive.
type NegateExpr struct {
	Value    BitRange `toml:"value"`
	FlagBit  uint8    `toml:"flag_bit"`
}

// ArmShiftExpr implements §4.3's arm_shift(): a shift amount field whose
// encoded zero means "32" when the paired shift op is LSR or ASR.
type ArmShiftExpr struct {
	Amount BitRange `toml:"amount"`
	OpBits BitRange `toml:"op_bits"`
}

// BranchOffsetExpr sign-extends a bit-range branch displacement, scales
// it by Shift (2 for ARM's word-aligned branches, 1 for Thumb's
// halfword-aligned ones), and adds the architecturally-defined PC bias
// for the encoding's pipeline depth.
type BranchOffsetExpr struct {
	Value  BitRange `toml:"value"`
	Shift  uint8    `toml:"shift"`
	PCBias int32    `toml:"pc_bias"`
}

// RotImmExpr implements ARM's immediate-operand2 shape: an 8-bit value
// rotated right by twice a 4-bit rotate field, within a 32-bit word.
type RotImmExpr struct {
	Imm    BitRange `toml:"imm"`
	Rotate BitRange `toml:"rotate"`
}

// FieldValue is the derivation of one field's value from the instruction
// word: exactly one of the pointer members is non-nil (or Struct is
// non-empty), mirroring the mini-language of §4.3.
type FieldValue struct {
	Bits         *BitRange             `toml:"bits"`
	Bit          *uint8                `toml:"bit"`
	BoolLit      *bool                 `toml:"bool_lit"`
	U32Lit       *uint32               `toml:"u32_lit"`
	Negate       *NegateExpr           `toml:"negate"`
	ArmShift     *ArmShiftExpr         `toml:"arm_shift"`
	BranchOffset *BranchOffsetExpr     `toml:"branch_offset"`
	RotImm       *RotImmExpr           `toml:"rot_imm"`
	Struct       map[string]FieldValue `toml:"struct"`
}

// FieldDescriptor names one extractable value over the instruction word.
type FieldDescriptor struct {
	Name  string     `toml:"name"`
	Arg   string     `toml:"arg"`
	Value FieldValue `toml:"value"`
}

// ModifierCase is one arm of an enumerated modifier: its own (mask,
// pattern) predicate, an optional mnemonic suffix, and any extra
// positional fields it contributes.
type ModifierCase struct {
	Name        string   `toml:"name"`
	Mask        uint32   `toml:"mask"`
	Pattern     uint32   `toml:"pattern"`
	Suffix      string   `toml:"suffix"`
	ExtraFields []string `toml:"extra_fields"`
}

// ModifierDescriptor is a named predicate over the instruction bits: a
// simple boolean test, or a list of enumerated cases.
type ModifierDescriptor struct {
	Name string `toml:"name"`

	// Boolean shape. Suffix is appended to the mnemonic when the
	// predicate evaluates true (e.g. the S-bit modifier's "s").
	Boolean bool   `toml:"boolean"`
	Mask    uint32 `toml:"mask"`
	Pattern uint32 `toml:"pattern"`
	Suffix  string `toml:"suffix"`

	// Enumerated shape.
	GlobalMask *uint32        `toml:"global_mask"`
	Cases      []ModifierCase `toml:"cases"`
}

// OpcodeCase is the resolved combination of one tuple of modifier values.
// It is not read from TOML, and nothing in this repository constructs one:
// internal/engine evaluates an opcode's modifiers against each word during
// Parse instead of materializing the cartesian product.
type OpcodeCase struct {
	ModifierValues []string
	Suffix         string
	ExtraFields    []string
}

// OpcodeDescriptor is one catalogued instruction encoding.
type OpcodeDescriptor struct {
	Name      string   `toml:"name"`
	Mask      uint32   `toml:"mask"`
	Pattern   uint32   `toml:"pattern"`
	Fields    []string `toml:"fields"`
	Modifiers []string `toml:"modifiers"`
	// TailSuffix is appended after all modifier suffixes (e.g. a
	// fixed "2" for coprocessor "CDP2"-style variants).
	TailSuffix string `toml:"tail_suffix"`
	// HalfBL marks the Thumb opcode that is the first halfword of a
	// two-halfword BL/BLX pair.
	HalfBL bool `toml:"half_bl"`
	// MinVariant is the earliest ISA variant that defines this
	// encoding ("v4t", "v5te", "v6", "v6k"). A catalogue load for an
	// earlier variant drops opcodes whose MinVariant postdates it.
	MinVariant string `toml:"min_variant"`
}

// Catalog is one fully-loaded (variant, width) ISA description.
type Catalog struct {
	Variant string
	Width   string // "arm" or "thumb"

	Args      map[string]ArgDescriptor
	Fields    map[string]FieldDescriptor
	Modifiers map[string]ModifierDescriptor
	Opcodes   []OpcodeDescriptor
}

// rawCatalog is the on-disk TOML shape decoded directly by BurntSushi/toml
// before Catalog cross-references and validates it.
type rawCatalog struct {
	Args      []ArgDescriptor      `toml:"args"`
	Fields    []FieldDescriptor    `toml:"fields"`
	Modifiers []ModifierDescriptor `toml:"modifiers"`
	Opcodes   []OpcodeDescriptor   `toml:"opcodes"`
}
