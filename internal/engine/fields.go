package engine

import (
	"github.com/AetiasHax/armv5te/args"
	"github.com/AetiasHax/armv5te/internal/isa"
)

// EvalField resolves a catalogued field by name into a concrete
// args.Argument, dispatching on the field's declared argument kind. It
// returns the zero Argument and false if the field or its argument
// descriptor is unknown; a fully validated catalogue (see isa.Load) never
// triggers this path, so callers generated against a loaded catalogue can
// treat it as infallible in practice.
func EvalField(cat *isa.Catalog, name string, code uint32) (args.Argument, bool) {
	fd, ok := cat.Fields[name]
	if !ok {
		return args.None, false
	}
	return evalFieldDescriptor(cat, fd, code)
}

func evalFieldDescriptor(cat *isa.Catalog, fd isa.FieldDescriptor, code uint32) (args.Argument, bool) {
	if len(fd.Value.Struct) > 0 {
		members := EvalStruct(fd.Value.Struct, code)
		return buildStructArgument(cat, fd.Arg, members)
	}

	ad, ok := cat.Args[fd.Arg]
	if !ok {
		return args.None, false
	}
	v := EvalRaw(fd.Value, code)

	switch ad.Kind {
	case isa.ArgCustom:
		return buildCustomArgument(ad.Custom, v.Uint), true
	case isa.ArgStruct:
		// A struct-kind argument with no struct-shaped field value:
		// not a supported combination for a positional field.
		return args.None, false
	case isa.ArgU32:
		return buildU32Argument(ad.Name, v.Uint), true
	case isa.ArgI32:
		return args.SImmArg(int32(v.Uint)), true
	case isa.ArgBool:
		return args.None, false
	case isa.ArgEnum:
		return args.UImmArg(v.Uint), true
	default:
		return args.None, false
	}
}

func buildCustomArgument(custom string, raw uint32) args.Argument {
	switch custom {
	case "Register":
		return args.RegArg(args.Reg{Reg: args.ParseRegister(raw)})
	case "Shift":
		return args.ShiftArg(args.ParseShift(raw))
	case "StatusReg":
		return args.StatusRegArg(args.ParseStatusReg(raw))
	case "CoReg":
		return args.CoRegArg(args.ParseCoReg(raw))
	case "Endian":
		return args.EndianArg(args.ParseEndian(raw))
	default:
		return args.None
	}
}

func buildU32Argument(argName string, raw uint32) args.Argument {
	switch argName {
	case "BranchDest":
		return args.BranchDestArg(int32(raw))
	case "CoOption":
		return args.CoOptionArg(raw)
	case "CoOpcode":
		return args.CoOpcodeArg(raw)
	case "CoprocNum":
		return args.CoprocNumArg(raw)
	case "SatImm":
		return args.SatImmArg(args.SatImm{Value: uint8(raw)})
	default:
		return args.UImmArg(raw)
	}
}
