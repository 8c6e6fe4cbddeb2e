package engine

import (
	"math/bits"
	"sort"

	"github.com/AetiasHax/armv5te/internal/isa"
)

// ModifierValue is the evaluated result of one modifier against an
// instruction word: either a boolean test, or the selected enumerated
// case (Illegal if no case's predicate matched).
type ModifierValue struct {
	IsBool  bool
	Bool    bool
	Illegal bool
	Case    isa.ModifierCase
}

// EvalModifier evaluates a named modifier against an instruction word.
func EvalModifier(cat *isa.Catalog, name string, code uint32) (ModifierValue, bool) {
	md, ok := cat.Modifiers[name]
	if !ok {
		return ModifierValue{}, false
	}
	if md.Boolean {
		return ModifierValue{IsBool: true, Bool: code&md.Mask == md.Pattern}, true
	}

	if md.GlobalMask != nil {
		masked := code & *md.GlobalMask
		for _, c := range md.Cases {
			if masked == c.Pattern {
				return ModifierValue{Case: c}, true
			}
		}
		return ModifierValue{Illegal: true}, true
	}

	cases := make([]isa.ModifierCase, len(md.Cases))
	copy(cases, md.Cases)
	sort.SliceStable(cases, func(i, j int) bool {
		return bits.OnesCount32(cases[i].Mask) > bits.OnesCount32(cases[j].Mask)
	})
	for _, c := range cases {
		if code&c.Mask == c.Pattern {
			return ModifierValue{Case: c}, true
		}
	}
	return ModifierValue{Illegal: true}, true
}
