package engine

import (
	"github.com/AetiasHax/armv5te/args"
	"github.com/AetiasHax/armv5te/internal/isa"
)

// resolvedMember is one struct member's value after it has been
// interpreted according to its own argument descriptor's kind.
type resolvedMember struct {
	u32 uint32
	i32 int32
	b   bool
	reg args.Register
}

func resolveMembers(cat *isa.Catalog, argName string, raw map[string]Value) map[string]resolvedMember {
	ad, ok := cat.Args[argName]
	out := make(map[string]resolvedMember, len(raw))
	if !ok {
		return out
	}
	for _, m := range ad.Members {
		v, ok := raw[m.Name]
		if !ok {
			continue
		}
		memberArg, ok := cat.Args[m.Arg]
		if !ok {
			out[m.Name] = resolvedMember{u32: v.Uint, b: v.Bool}
			continue
		}
		switch memberArg.Kind {
		case isa.ArgCustom:
			switch memberArg.Custom {
			case "Register":
				out[m.Name] = resolvedMember{reg: args.ParseRegister(v.Uint)}
			case "Shift":
				out[m.Name] = resolvedMember{u32: v.Uint}
			case "StatusReg":
				out[m.Name] = resolvedMember{u32: v.Uint}
			default:
				out[m.Name] = resolvedMember{u32: v.Uint}
			}
		case isa.ArgI32:
			out[m.Name] = resolvedMember{i32: int32(v.Uint)}
		default:
			out[m.Name] = resolvedMember{u32: v.Uint, b: v.Bool}
		}
	}
	return out
}

// buildStructArgument assembles the named Go struct (Reg, RegList,
// StatusMask, ShiftImm, ShiftReg, OffsetImm, OffsetReg, CpsrMode,
// CpsrFlags) from its evaluated struct members.
func buildStructArgument(cat *isa.Catalog, argName string, raw map[string]Value) (args.Argument, bool) {
	m := resolveMembers(cat, argName, raw)

	switch argName {
	case "Reg":
		return args.RegArg(args.Reg{
			Reg:       m["reg"].reg,
			Deref:     m["deref"].b,
			Writeback: m["writeback"].b,
		}), true
	case "RegList":
		return args.RegListArg(args.RegList{
			Regs:     raw["regs"].Uint,
			UserMode: m["user_mode"].b,
		}), true
	case "StatusMask":
		return args.StatusMaskArg(args.StatusMask{
			Reg:       args.ParseStatusReg(m["reg"].u32),
			Control:   m["control"].b,
			Extension: m["extension"].b,
			Flags:     m["flags"].b,
			Status:    m["status"].b,
		}), true
	case "ShiftImm":
		return args.ShiftImmArg(args.ShiftImm{
			Op:  args.ParseShift(m["op"].u32),
			Imm: m["imm"].u32,
		}), true
	case "ShiftReg":
		return args.ShiftRegArg(args.ShiftReg{
			Op:  args.ParseShift(m["op"].u32),
			Reg: m["reg"].reg,
		}), true
	case "OffsetImm":
		return args.OffsetImmArg(args.OffsetImm{
			Value:       int32(raw["value"].Uint),
			PostIndexed: m["post_indexed"].b,
		}), true
	case "OffsetReg":
		return args.OffsetRegArg(args.OffsetReg{
			Reg:         m["reg"].reg,
			Add:         m["add"].b,
			PostIndexed: m["post_indexed"].b,
		}), true
	case "CpsrMode":
		return args.CpsrModeArg(args.CpsrMode{
			Mode:  uint8(m["mode"].u32),
			Valid: m["valid"].b,
		}), true
	case "CpsrFlags":
		return args.CpsrFlagsArg(args.CpsrFlags{
			A: m["a"].b,
			I: m["i"].b,
			F: m["f"].b,
		}), true
	default:
		return args.None, false
	}
}
