package display

import (
	"strconv"

	"github.com/AetiasHax/armv5te/args"
)

// RegName renders a single general-purpose register under the given
// policy. Register::Illegal reaching here is an invariant violation: the
// formatter renders it as "<illegal>" rather than panicking, since the
// core contract keeps the whole decode/format path panic-free.
func RegName(r args.Register, names RegNames) string {
	switch r {
	case args.RegisterIllegal:
		return "<illegal>"
	case args.Sp:
		return "sp"
	case args.Lr:
		return "lr"
	case args.Pc:
		return "pc"
	}

	if names.IP && r == args.Ip {
		return "ip"
	}
	if names.FP && r == args.Fp {
		return "fp"
	}
	if names.SL && r == args.R10 {
		return "sl"
	}

	if names.AV {
		switch {
		case r <= args.R3:
			return "a" + strconv.Itoa(int(r)+1)
		case r == args.R9:
			switch names.R9 {
			case R9Pid:
				return "pid"
			case R9Tls:
				return "tls"
			default:
				return "v6"
			}
		case r <= args.Fp:
			return "v" + strconv.Itoa(int(r)-3)
		}
	}

	return "r" + strconv.Itoa(int(r))
}
