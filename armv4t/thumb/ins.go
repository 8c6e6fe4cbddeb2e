package thumb

//go:generate go run github.com/AetiasHax/armv5te/cmd/armisagen -variant v4t -width thumb -o .

import (
	"github.com/AetiasHax/armv5te/args"
)

// Ins is one 16-bit Thumb instruction halfword together with its
// classified opcode. It is stateless and safe to share across goroutines.
type Ins struct {
	Code uint16
	Op   Opcode
}

// New classifies a raw 16-bit instruction halfword.
func New(code uint16) Ins {
	full := uint32(code)
	return Ins{Code: code, Op: Opcode(table().Find(full))}
}

// Parse fills a structured ParsedIns from the instruction. Total: an
// unmatched or illegally-modified encoding yields the "<illegal>"
// sentinel mnemonic rather than failing.
func (i Ins) Parse() args.ParsedIns {
	if i.Op == Illegal {
		return args.IllegalIns
	}
	return table().Parse(uint32(i.Code), uint8(i.Op))
}

// IsHalfBL reports whether i is the first halfword of a two-halfword
// BL/BLX pair. The external driver is responsible for buffering and
// joining the second halfword (see thumbutil.JoinBL); the core only
// exposes this predicate and the distinct opcode tags for each half.
func (i Ins) IsHalfBL() bool {
	if i.Op == Illegal {
		return false
	}
	return table().IsHalfBL(uint8(i.Op))
}
