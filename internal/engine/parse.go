package engine

import (
	"strings"

	"github.com/AetiasHax/armv5te/args"
	"github.com/AetiasHax/armv5te/internal/isa"
)

// Parse assembles a ParsedIns for one matched opcode against a concrete
// instruction word, following §4.5/§4.6: evaluate every declared modifier
// in order, fold its suffix into the mnemonic and its extra fields into
// the operand vector, and fall back to the illegal sentinel the moment
// any modifier lands on its own Illegal case. This is behaviourally
// equivalent to dispatching on the literal cartesian-product case table a
// generator would emit, without materialising it.
func Parse(cat *isa.Catalog, op isa.OpcodeDescriptor, code uint32) args.ParsedIns {
	var suffix strings.Builder
	var extra []args.Argument

	for _, modName := range op.Modifiers {
		mv, ok := EvalModifier(cat, modName, code)
		if !ok {
			return args.IllegalIns
		}
		if mv.IsBool {
			md := cat.Modifiers[modName]
			if mv.Bool {
				suffix.WriteString(md.Suffix)
			}
			continue
		}
		if mv.Illegal {
			return args.IllegalIns
		}
		suffix.WriteString(mv.Case.Suffix)
		for _, fn := range mv.Case.ExtraFields {
			a, ok := EvalField(cat, fn, code)
			if !ok {
				return args.IllegalIns
			}
			extra = append(extra, a)
		}
	}

	var out args.ParsedIns
	out.Mnemonic = strings.ToLower(op.Name) + suffix.String() + op.TailSuffix

	i := 0
	for _, fn := range op.Fields {
		if i >= args.MaxArgs {
			break
		}
		a, ok := EvalField(cat, fn, code)
		if !ok {
			return args.IllegalIns
		}
		out.Args[i] = a
		i++
	}
	for _, a := range extra {
		if i >= args.MaxArgs {
			break
		}
		out.Args[i] = a
		i++
	}

	return out
}
