package arm

//go:generate go run github.com/AetiasHax/armv5te/cmd/armisagen -variant v4t -width arm -o .

import (
	"github.com/AetiasHax/armv5te/args"
)

// Ins is one 32-bit ARM instruction word together with its classified
// opcode. It is stateless and safe to share across goroutines.
type Ins struct {
	Code uint32
	Op   Opcode
}

// New classifies a raw 32-bit instruction word.
func New(code uint32) Ins {
	return Ins{Code: code, Op: Opcode(table().Find(code))}
}

// Parse fills a structured ParsedIns from the instruction. Total: an
// unmatched or illegally-modified encoding yields the "<illegal>"
// sentinel mnemonic rather than failing.
func (i Ins) Parse() args.ParsedIns {
	if i.Op == Illegal {
		return args.IllegalIns
	}
	return table().Parse(i.Code, uint8(i.Op))
}
