// Command armisagen is the build-time generator behind every leaf decode
// package (e.g. armv5te/arm). It loads one (variant, width) catalogue,
// validates it, and emits the named Opcode enum + accessor wrapper that
// the corresponding generated.go/ins.go pair freezes into the tree. Run it
// with `go generate` from a leaf package's directory, or with -check in CI
// to confirm the checked-in files still match what the catalogue produces.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"text/template"
	"unicode"

	"github.com/AetiasHax/armv5te/internal/decoder"
	"github.com/AetiasHax/armv5te/internal/isa"
)

var Version = "dev"

func main() {
	var (
		variant  = flag.String("variant", "", "ISA variant: v4t, v5te, v6, v6k")
		width    = flag.String("width", "", `encoding width: "arm" or "thumb"`)
		pkg      = flag.String("package", "", "Go package name for the generated file (default: width)")
		out      = flag.String("o", "", "output directory (default: current directory)")
		check    = flag.Bool("check", false, "verify the existing generated.go matches regeneration, without writing")
		showVer  = flag.Bool("version", false, "show version and exit")
	)
	flag.Usage = printUsage
	flag.Parse()

	if *showVer {
		fmt.Printf("armisagen %s\n", Version)
		return
	}
	if *variant == "" || *width == "" {
		fmt.Fprintln(os.Stderr, "armisagen: -variant and -width are required")
		printUsage()
		os.Exit(1)
	}

	cat, err := isa.Load(*variant, *width)
	if err != nil {
		fmt.Fprintf(os.Stderr, "armisagen: loading catalogue: %v\n", err)
		os.Exit(1)
	}

	packageName := *pkg
	if packageName == "" {
		packageName = *width
	}

	src, err := renderGenerated(packageName, *variant, *width, opcodeConstants(cat.Opcodes))
	if err != nil {
		fmt.Fprintf(os.Stderr, "armisagen: rendering generated.go: %v\n", err)
		os.Exit(1)
	}

	outDir := *out
	if outDir == "" {
		outDir = "."
	}
	target := filepath.Join(outDir, "generated.go")

	if *check {
		existing, err := os.ReadFile(target) // #nosec G304 -- operator-specified generator output path
		if err != nil {
			fmt.Fprintf(os.Stderr, "armisagen: reading %s: %v\n", target, err)
			os.Exit(1)
		}
		if !bytes.Equal(existing, src) {
			fmt.Fprintf(os.Stderr, "armisagen: %s is stale; re-run without -check\n", target)
			os.Exit(1)
		}
		fmt.Printf("armisagen: %s is up to date (%d opcodes)\n", target, len(cat.Opcodes))
		return
	}

	if err := os.WriteFile(target, src, 0o644); err != nil { // #nosec G306 -- generated source, world-readable is fine
		fmt.Fprintf(os.Stderr, "armisagen: writing %s: %v\n", target, err)
		os.Exit(1)
	}
	fmt.Printf("armisagen: wrote %s (%d opcodes)\n", target, len(cat.Opcodes))

	// Building the decoder table here, even though its result is
	// discarded, runs classifier-tree construction at generation time, so
	// a panic in it surfaces here rather than at first runtime use. The
	// tree builder itself reports no errors: a candidate set it cannot
	// split stays a linear leaf.
	_ = decoder.Build(*variant, *width)
}

const generatedTemplate = `// Code generated by armisagen. DO NOT EDIT.

package {{.Package}}

import (
	"sync"

	"github.com/AetiasHax/armv5te/internal/decoder"
)

// Opcode identifies one catalogued {{.Variant}} {{.Width}} encoding. Illegal is
// reserved for an instruction word that matched no descriptor.
type Opcode uint8

// Illegal is returned by New/Find when no catalogued opcode matches.
const Illegal Opcode = Opcode(decoder.IllegalOpcode)

// Named opcode constants, in catalogue order. A duplicated mnemonic (e.g.
// two "ldr" encodings for pre/post-indexed addressing) gets a numeric
// suffix on its second and later occurrence.
const (
{{- range .Opcodes}}
	{{.Const}} Opcode = {{.Index}}
{{- end}}
)

// table is built once, lazily, on first use and reused for the lifetime
// of the process; the catalogue and classifier tree are immutable
// afterwards.
var table = sync.OnceValue(func() *decoder.Table {
	return decoder.Build("{{.Variant}}", "{{.Width}}")
})

// Mnemonic returns the base catalogue name for op, e.g. "add" or "ldr"
// (without condition/modifier suffixes, which Ins.Parse resolves).
func (op Opcode) Mnemonic() string {
	if op == Illegal {
		return "<illegal>"
	}
	return table().Mnemonic(uint8(op))
}

// Count is the number of catalogued opcodes for {{.Variant}} {{.Width}}.
func Count() int {
	return table().Count()
}
`

// opcodeConst is one Op<Name> constant declaration emitted into the
// generated file, in catalogue order.
type opcodeConst struct {
	Const string
	Index int
}

// opcodeConstants derives an exported Go constant name for every catalogued
// opcode ("ldr" -> "OpLdr"), disambiguating repeated mnemonics ("ldr",
// "ldr" -> "OpLdr", "OpLdr2") by order of appearance.
func opcodeConstants(opcodes []isa.OpcodeDescriptor) []opcodeConst {
	seen := make(map[string]int, len(opcodes))
	consts := make([]opcodeConst, len(opcodes))
	for i, op := range opcodes {
		seen[op.Name]++
		consts[i] = opcodeConst{Const: opcodeConstName(op.Name, seen[op.Name]), Index: i}
	}
	return consts
}

func opcodeConstName(name string, occurrence int) string {
	r := []rune(name)
	r[0] = unicode.ToUpper(r[0])
	ident := "Op" + string(r)
	if occurrence > 1 {
		ident = fmt.Sprintf("%s%d", ident, occurrence)
	}
	return ident
}

func renderGenerated(pkg, variant, width string, opcodes []opcodeConst) ([]byte, error) {
	tmpl := template.Must(template.New("generated").Parse(generatedTemplate))
	var buf bytes.Buffer
	data := struct {
		Package, Variant, Width string
		Opcodes                 []opcodeConst
	}{pkg, variant, width, opcodes}
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}
	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("gofmt: %w", err)
	}
	return formatted, nil
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `armisagen: generate an Opcode enum + accessor wrapper from a catalogue

Usage:
  armisagen -variant v5te -width arm [-package arm] [-o armv5te/arm] [-check]

Flags:
`)
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, `
Typical go:generate directive (in ins.go of the target package):
  //go:generate go run github.com/AetiasHax/armv5te/cmd/armisagen -variant v5te -width arm -o .
`)
}
