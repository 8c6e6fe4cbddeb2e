// Package engine is the generic field/modifier/parse interpreter that
// walks an isa.Catalog's descriptors against a concrete instruction word.
// It is the runtime counterpart of the mini-language in §4.3: rather than
// rewriting a token stream at build time, it evaluates the same handful
// of primitives (bit ranges, single bits, negation, arm-style shift
// amounts, struct aggregation) directly against the word each call.
package engine

import "github.com/AetiasHax/armv5te/internal/isa"

// Value is the result of evaluating one FieldValue: exactly one of Uint
// or Bool is meaningful, selected by IsBool.
type Value struct {
	Uint   uint32
	Bool   bool
	IsBool bool
}

// EvalRaw evaluates a field-value derivation against an instruction word.
// It never fails: an unrecognised shape (which isa.Catalog.validate
// already rules out for any loaded catalogue) evaluates to the zero
// Value, keeping the whole interpreter total.
func EvalRaw(v isa.FieldValue, code uint32) Value {
	switch {
	case v.Bits != nil:
		return Value{Uint: extractBits(code, v.Bits.Lo, v.Bits.Hi)}
	case v.Bit != nil:
		return Value{Bool: extractBit(code, *v.Bit), IsBool: true}
	case v.BoolLit != nil:
		return Value{Bool: *v.BoolLit, IsBool: true}
	case v.U32Lit != nil:
		return Value{Uint: *v.U32Lit}
	case v.Negate != nil:
		return evalNegate(*v.Negate, code)
	case v.ArmShift != nil:
		return evalArmShift(*v.ArmShift, code)
	case v.BranchOffset != nil:
		return evalBranchOffset(*v.BranchOffset, code)
	case v.RotImm != nil:
		return evalRotImm(*v.RotImm, code)
	default:
		return Value{}
	}
}

// EvalStruct evaluates each member of a struct-shaped field value.
func EvalStruct(members map[string]isa.FieldValue, code uint32) map[string]Value {
	out := make(map[string]Value, len(members))
	for name, v := range members {
		out[name] = EvalRaw(v, code)
	}
	return out
}

func extractBits(code uint32, lo, hi uint8) uint32 {
	if hi <= lo || hi > 32 {
		return 0
	}
	width := hi - lo
	mask := uint32(1)<<width - 1
	return (code >> lo) & mask
}

func extractBit(code uint32, n uint8) bool {
	if n >= 32 {
		return false
	}
	return (code>>n)&1 == 1
}

func evalNegate(n isa.NegateExpr, code uint32) Value {
	base := extractBits(code, n.Value.Lo, n.Value.Hi)
	flag := extractBit(code, n.FlagBit)
	if flag {
		return Value{Uint: base}
	}
	return Value{Uint: uint32(-int32(base))}
}

func evalArmShift(a isa.ArmShiftExpr, code uint32) Value {
	amount := extractBits(code, a.Amount.Lo, a.Amount.Hi)
	op := extractBits(code, a.OpBits.Lo, a.OpBits.Hi)
	// Lsr(1) or Asr(2): an encoded amount of 0 means "shift by 32".
	if amount == 0 && (op == 1 || op == 2) {
		amount = 32
	}
	return Value{Uint: amount}
}

func evalBranchOffset(b isa.BranchOffsetExpr, code uint32) Value {
	width := b.Value.Hi - b.Value.Lo
	raw := extractBits(code, b.Value.Lo, b.Value.Hi)
	signed := signExtend(raw, width) << b.Shift
	return Value{Uint: uint32(signed + b.PCBias)}
}

func signExtend(v uint32, width uint8) int32 {
	shift := 32 - width
	return int32(v<<shift) >> shift
}

// evalRotImm implements ARM's immediate-operand2 encoding: an 8-bit
// immediate rotated right by twice a 4-bit rotate field, as a 32-bit
// rotate (not a shift — bits rotated off the bottom reappear at the top).
func evalRotImm(r isa.RotImmExpr, code uint32) Value {
	imm := extractBits(code, r.Imm.Lo, r.Imm.Hi)
	rot := extractBits(code, r.Rotate.Lo, r.Rotate.Hi) * 2
	if rot == 0 {
		return Value{Uint: imm}
	}
	return Value{Uint: (imm >> rot) | (imm << (32 - rot))}
}
