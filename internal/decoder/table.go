// Package decoder assembles one (variant, width) catalogue into a ready-
// to-use classifier + mnemonic table + parser, shared by every leaf
// decode package (armv4t/arm, armv5te/thumb, and so on) so that the
// per-package "generated" files stay a thin, named wrapper around one
// common implementation instead of duplicating it eight times.
package decoder

import (
	"fmt"

	"github.com/AetiasHax/armv5te/args"
	"github.com/AetiasHax/armv5te/internal/engine"
	"github.com/AetiasHax/armv5te/internal/isa"
	"github.com/AetiasHax/armv5te/internal/search"
)

// IllegalOpcode is the reserved ordinal for an unmatched instruction
// word, mirroring every generated Opcode enum's Illegal discriminant.
const IllegalOpcode uint8 = 0xFF

// Table is the fully-built decoder for one (variant, width) pair: the
// catalogue it was built from, the opcode ordinal assignment, the
// classifier tree, and the mnemonic table.
type Table struct {
	Cat       *isa.Catalog
	Tree      *search.Node
	Opcodes   []isa.OpcodeDescriptor // ordinal i == Opcodes[i]
	mnemonics []string
}

// Build loads the catalogue for (variant, width), assigns opcode
// ordinals in stable catalogue order, and constructs the classifier tree.
// It panics if the catalogue fails to load: a failure here means the
// embedded catalogue itself is malformed, which is a build-time defect,
// not a runtime condition any caller can recover from.
func Build(variant, width string) *Table {
	cat, err := isa.Load(variant, width)
	if err != nil {
		panic(fmt.Sprintf("decoder: loading catalogue %s/%s: %v", variant, width, err))
	}
	if len(cat.Opcodes) > int(IllegalOpcode) {
		panic(fmt.Sprintf("decoder: catalogue %s/%s has %d opcodes, exceeding the %d-wide Opcode enum", variant, width, len(cat.Opcodes), IllegalOpcode))
	}

	t := &Table{
		Cat:       cat,
		Opcodes:   cat.Opcodes,
		mnemonics: make([]string, len(cat.Opcodes)),
	}
	for i, op := range cat.Opcodes {
		t.mnemonics[i] = op.Name
	}
	t.Tree = search.Build(cat.Opcodes)
	return t
}

// Count is the number of catalogued opcodes (excluding Illegal).
func (t *Table) Count() int { return len(t.Opcodes) }

// Mnemonic returns the base catalogue name for op (not the fully suffixed
// mnemonic a Parse call produces).
func (t *Table) Mnemonic(op uint8) string {
	if int(op) >= len(t.mnemonics) {
		return args.IllegalMnemonic
	}
	return t.mnemonics[op]
}

// Find classifies code, returning IllegalOpcode if no descriptor matches.
func (t *Table) Find(code uint32) uint8 {
	idx, ok := search.Classify(t.Tree, code)
	if !ok {
		return IllegalOpcode
	}
	return uint8(idx)
}

// IsHalfBL reports whether op is the catalogued first halfword of a
// two-halfword Thumb BL/BLX pair.
func (t *Table) IsHalfBL(op uint8) bool {
	if int(op) >= len(t.Opcodes) {
		return false
	}
	return t.Opcodes[op].HalfBL
}

// Parse fills a ParsedIns for one classified opcode against the
// instruction word it was classified from.
func (t *Table) Parse(code uint32, op uint8) args.ParsedIns {
	if int(op) >= len(t.Opcodes) {
		return args.IllegalIns
	}
	return engine.Parse(t.Cat, t.Opcodes[op], code)
}
