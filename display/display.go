package display

import (
	"fmt"
	"strings"

	"github.com/AetiasHax/armv5te/args"
)

// Displayable is the rendered form of a ParsedIns; its String method is
// the public entry point callers use to obtain assembler text.
type Displayable struct {
	text string
}

func (d Displayable) String() string { return d.text }

// Display renders ins under opts. The result is stable: calling Display
// again on a structurally-equal ParsedIns with equal Options always
// produces byte-identical text, from any goroutine.
func Display(ins args.ParsedIns, opts Options) Displayable {
	var b strings.Builder
	b.WriteString(ins.Mnemonic)

	n := ins.ArgCount()
	if n > 0 {
		b.WriteByte(' ')
	}

	open := false      // a '[' is currently pending close
	pendingBang := false // emit '!' once the bracket closes

	closeIfNeeded := func(next args.Argument) {
		if !open {
			return
		}
		if isBracketCloser(next) {
			b.WriteByte(']')
			if pendingBang {
				b.WriteByte('!')
			}
			open = false
			pendingBang = false
		}
	}

	for i := 0; i < n; i++ {
		a := ins.Args[i]
		if i > 0 {
			closeIfNeeded(a)
			b.WriteString(", ")
		}
		if a.Kind == args.KindReg && a.RegV.Deref {
			b.WriteByte('[')
			open = true
			pendingBang = a.RegV.Writeback
		}
		writeArgument(&b, a, opts.RegNames)
	}
	if open {
		b.WriteByte(']')
		if pendingBang {
			b.WriteByte('!')
		}
	}

	return Displayable{text: b.String()}
}

// isBracketCloser reports whether arg is one of the operand shapes that
// forces the enclosing '[' to close immediately before it: a post-indexed
// offset or a coprocessor option.
func isBracketCloser(a args.Argument) bool {
	switch a.Kind {
	case args.KindOffsetImm:
		return a.OffsetImmV.PostIndexed
	case args.KindOffsetReg:
		return a.OffsetRegV.PostIndexed
	case args.KindCoOption:
		return true
	}
	return false
}

func writeArgument(b *strings.Builder, a args.Argument, names RegNames) {
	switch a.Kind {
	case args.KindReg:
		b.WriteString(RegName(a.RegV.Reg, names))
	case args.KindRegList:
		writeRegList(b, a.RegListV, names)
	case args.KindCoReg:
		writeCoReg(b, a.CoRegV)
	case args.KindStatusReg:
		writeStatusReg(b, a.StatusRegV)
	case args.KindStatusMask:
		writeStatusMask(b, a.StatusMaskV)
	case args.KindShift:
		b.WriteString(shiftName(a.ShiftV))
	case args.KindShiftImm:
		fmt.Fprintf(b, "%s #0x%x", shiftName(a.ShiftImmV.Op), a.ShiftImmV.Imm)
	case args.KindShiftReg:
		fmt.Fprintf(b, "%s %s", shiftName(a.ShiftRegV.Op), RegName(a.ShiftRegV.Reg, names))
	case args.KindUImm:
		fmt.Fprintf(b, "#0x%x", a.UImmV)
	case args.KindSImm:
		writeSignedHex(b, int64(a.SImmV))
	case args.KindOffsetImm:
		writeSignedHex(b, int64(a.OffsetImmV.Value))
	case args.KindOffsetReg:
		if !a.OffsetRegV.Add {
			b.WriteByte('-')
		}
		b.WriteString(RegName(a.OffsetRegV.Reg, names))
	case args.KindBranchDest:
		writeSignedHex(b, int64(a.BranchDestV))
	case args.KindCoOption:
		fmt.Fprintf(b, "{0x%x}", a.CoOptionV)
	case args.KindCoOpcode:
		fmt.Fprintf(b, "#0x%x", a.CoOpcodeV)
	case args.KindCoprocNum:
		fmt.Fprintf(b, "p%d", a.CoprocNumV)
	case args.KindSatImm:
		fmt.Fprintf(b, "#0x%x", a.SatImmV.Value)
	case args.KindCpsrMode:
		if a.CpsrModeV.Valid {
			fmt.Fprintf(b, "#0x%x", a.CpsrModeV.Mode)
		} else {
			b.WriteString("<illegal>")
		}
	case args.KindCpsrFlags:
		writeCpsrFlags(b, a.CpsrFlagsV)
	case args.KindEndian:
		writeEndian(b, a.EndianV)
	default:
		b.WriteString("<illegal>")
	}
}

func writeRegList(b *strings.Builder, l args.RegList, names RegNames) {
	b.WriteByte('{')
	first := true
	for r := args.R0; r <= args.Pc; r++ {
		if !l.Contains(r) {
			continue
		}
		if !first {
			b.WriteString(", ")
		}
		first = false
		b.WriteString(RegName(r, names))
	}
	b.WriteByte('}')
	if l.UserMode {
		b.WriteByte('^')
	}
}

func writeCoReg(b *strings.Builder, c args.CoReg) {
	if c == args.CoRegIllegal {
		b.WriteString("<illegal>")
		return
	}
	fmt.Fprintf(b, "c%d", c)
}

func writeStatusReg(b *strings.Builder, s args.StatusReg) {
	switch s {
	case args.Cpsr:
		b.WriteString("cpsr")
	case args.Spsr:
		b.WriteString("spsr")
	default:
		b.WriteString("<illegal>")
	}
}

func writeStatusMask(b *strings.Builder, m args.StatusMask) {
	writeStatusReg(b, m.Reg)
	any := m.Flags || m.Status || m.Extension || m.Control
	if !any {
		return
	}
	b.WriteByte('_')
	if m.Flags {
		b.WriteByte('f')
	}
	if m.Status {
		b.WriteByte('s')
	}
	if m.Extension {
		b.WriteByte('x')
	}
	if m.Control {
		b.WriteByte('c')
	}
}

func shiftName(s args.Shift) string {
	switch s {
	case args.Lsl:
		return "lsl"
	case args.Lsr:
		return "lsr"
	case args.Asr:
		return "asr"
	case args.Ror:
		return "ror"
	case args.Rrx:
		return "rrx"
	default:
		return "<illegal>"
	}
}

func writeSignedHex(b *strings.Builder, v int64) {
	if v < 0 {
		fmt.Fprintf(b, "#-0x%x", -v)
		return
	}
	fmt.Fprintf(b, "#0x%x", v)
}

func writeCpsrFlags(b *strings.Builder, f args.CpsrFlags) {
	if f.A {
		b.WriteByte('a')
	}
	if f.I {
		b.WriteByte('i')
	}
	if f.F {
		b.WriteByte('f')
	}
}

func writeEndian(b *strings.Builder, e args.Endian) {
	switch e {
	case args.Le:
		b.WriteString("le")
	case args.Be:
		b.WriteString("be")
	default:
		b.WriteString("<illegal>")
	}
}
