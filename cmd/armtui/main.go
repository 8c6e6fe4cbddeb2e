// Command armtui is an interactive terminal browser over a raw binary
// blob: it decodes the file word-by-word with the selected (variant,
// width) decoder and lets the user step through the resulting
// instructions, built on the same tcell/tview stack as the teacher's
// interactive debugger. It is an external collaborator of the core
// decode/display contract — it only calls Ins.New, Ins.Parse and
// ParsedIns.Display.
package main

import (
	"encoding/binary"
	"flag"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/AetiasHax/armv5te/args"
	"github.com/AetiasHax/armv5te/display"

	armv4tarm "github.com/AetiasHax/armv5te/armv4t/arm"
	armv4tthumb "github.com/AetiasHax/armv5te/armv4t/thumb"
	armv5tearm "github.com/AetiasHax/armv5te/armv5te/arm"
	armv5tethumb "github.com/AetiasHax/armv5te/armv5te/thumb"
	armv6arm "github.com/AetiasHax/armv5te/armv6/arm"
	armv6thumb "github.com/AetiasHax/armv5te/armv6/thumb"
	armv6karm "github.com/AetiasHax/armv5te/armv6k/arm"
	armv6kthumb "github.com/AetiasHax/armv5te/armv6k/thumb"
)

var Version = "dev"

// decoded is one disassembled word ready for display.
type decoded struct {
	offset uint32
	code   uint32 // the raw word, right-justified (16 bits used for Thumb)
	width  int    // bytes consumed: 4 for arm, 2 for thumb
	text   string
}

func main() {
	var (
		variant     = flag.String("variant", "v6k", "ISA variant: v4t, v5te, v6, v6k")
		width       = flag.String("width", "arm", `encoding width: "arm" or "thumb"`)
		base        = flag.Uint64("base", 0, "base address of the first word, for the offset column")
		av          = flag.Bool("av", false, "render with UAL-style register aliasing (a1-a4/v1-v8)")
		showVersion = flag.Bool("version", false, "show version and exit")
	)
	flag.Usage = printUsage
	flag.Parse()

	if *showVersion {
		fmt.Printf("armtui %s\n", Version)
		return
	}
	if flag.NArg() != 1 {
		printUsage()
		os.Exit(1)
	}

	data, err := os.ReadFile(flag.Arg(0)) // #nosec G304 -- operator-specified disassembly input
	if err != nil {
		fmt.Fprintf(os.Stderr, "armtui: %v\n", err)
		os.Exit(1)
	}

	opts := display.DefaultOptions
	opts.RegNames.AV = *av

	lines, err := decodeAll(data, *variant, *width, uint32(*base), opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "armtui: %v\n", err)
		os.Exit(1)
	}

	run(lines, opts)
}

func decodeAll(data []byte, variant, width string, base uint32, opts display.Options) ([]decoded, error) {
	var out []decoded
	switch width {
	case "arm":
		for off := 0; off+4 <= len(data); off += 4 {
			code := binary.LittleEndian.Uint32(data[off:])
			out = append(out, decoded{offset: base + uint32(off), code: code, width: 4, text: mnemonicArm(variant, code, opts)})
		}
	case "thumb":
		for off := 0; off+2 <= len(data); off += 2 {
			code := binary.LittleEndian.Uint16(data[off:])
			out = append(out, decoded{offset: base + uint32(off), code: uint32(code), width: 2, text: mnemonicThumb(variant, code, opts)})
		}
	default:
		return nil, fmt.Errorf(`width must be "arm" or "thumb", got %q`, width)
	}
	return out, nil
}

func mnemonicArm(variant string, code uint32, opts display.Options) string {
	var p args.ParsedIns
	switch variant {
	case "v4t":
		p = armv4tarm.New(code).Parse()
	case "v5te":
		p = armv5tearm.New(code).Parse()
	case "v6":
		p = armv6arm.New(code).Parse()
	default:
		p = armv6karm.New(code).Parse()
	}
	return display.Display(p, opts).String()
}

func mnemonicThumb(variant string, code uint16, opts display.Options) string {
	var p args.ParsedIns
	switch variant {
	case "v4t":
		p = armv4tthumb.New(code).Parse()
	case "v5te":
		p = armv5tethumb.New(code).Parse()
	case "v6":
		p = armv6thumb.New(code).Parse()
	default:
		p = armv6kthumb.New(code).Parse()
	}
	return display.Display(p, opts).String()
}

func run(lines []decoded, opts display.Options) {
	app := tview.NewApplication()

	list := tview.NewList().ShowSecondaryText(false)
	list.SetBorder(true).SetTitle(" Disassembly ")

	detail := tview.NewTextView().SetDynamicColors(true)
	detail.SetBorder(true).SetTitle(" Word ")

	for _, d := range lines {
		width := "arm"
		if d.width == 2 {
			width = "thumb"
		}
		label := fmt.Sprintf("%08x: %s", d.offset, d.text)
		entry := d
		list.AddItem(label, "", 0, func() {
			detail.SetText(fmt.Sprintf("offset 0x%08x\nencoding %s\nraw 0x%0*x", entry.offset, width, entry.width*2, entry.code))
		})
	}

	layout := tview.NewFlex().
		AddItem(list, 0, 2, true).
		AddItem(detail, 0, 1, false)

	app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Rune() == 'q' {
			app.Stop()
			return nil
		}
		return event
	})

	if err := app.SetRoot(layout, true).SetFocus(list).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "armtui: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `armtui: step through a raw binary blob instruction by instruction

Usage:
  armtui [flags] <binary-file>

Flags:
`)
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, `
Keys:
  up/down    move selection
  q          quit
`)
}
