// Package search builds the binary decision tree the opcode classifier
// uses to map an instruction word to the most specific matching opcode,
// per the greedy bit-splitting optimiser.
package search

import (
	"math/bits"
	"sort"

	"github.com/AetiasHax/armv5te/internal/isa"
)

// candidate pairs an opcode descriptor with its ordinal position in the
// caller's original slice, so Classify can report which slot matched
// without relying on descriptor names (which need not be unique — the
// same mnemonic commonly has several distinct encodings).
type candidate struct {
	isa.OpcodeDescriptor
	Index int
}

// Node is one node of the classifier's decision tree. A leaf carries the
// remaining candidates, tested linearly in decreasing popcount(mask)
// order; an internal node carries a single shared bit predicate and two
// children.
type Node struct {
	// Internal node fields.
	Bit       uint8 // the single instruction bit this node tests
	Zero, One *Node

	// Leaf node fields.
	Candidates []candidate
}

// Build constructs a classifier tree over the given opcode set. The
// result is deterministic: the same input slice (in the same order)
// always yields a structurally identical tree, satisfying the
// regeneration-stability contract.
func Build(opcodes []isa.OpcodeDescriptor) *Node {
	cands := make([]candidate, len(opcodes))
	for i, op := range opcodes {
		cands[i] = candidate{OpcodeDescriptor: op, Index: i}
	}
	return build(cands)
}

func build(cands []candidate) *Node {
	if len(cands) <= 1 {
		return leaf(cands)
	}

	bit, ok := pickSplitBit(cands)
	if !ok {
		return leaf(cands)
	}

	var zero, one []candidate
	for _, c := range cands {
		maskBit := (c.Mask >> bit) & 1
		if maskBit == 0 {
			// Don't-care at this bit: the opcode must be reachable
			// regardless of the word's value there.
			zero = append(zero, c)
			one = append(one, c)
			continue
		}
		if (c.Pattern>>bit)&1 == 0 {
			zero = append(zero, c)
		} else {
			one = append(one, c)
		}
	}

	if len(zero) == len(cands) || len(one) == len(cands) {
		// This bit did not actually discriminate anything (should not
		// happen given pickSplitBit's selection, but keeps Build
		// total regardless).
		return leaf(cands)
	}

	return &Node{
		Bit:  bit,
		Zero: build(zero),
		One:  build(one),
	}
}

// pickSplitBit finds the lowest-numbered bit that is a "care" bit
// (mask bit set) for at least one candidate and splits the candidate set
// into two non-empty subsets, each of which leaves out at least one
// candidate. Choosing the lowest-numbered qualifying bit
// deterministically breaks ties regardless of input order.
func pickSplitBit(cands []candidate) (uint8, bool) {
	for bit := uint8(0); bit < 32; bit++ {
		zero, one := 0, 0
		for _, c := range cands {
			if (c.Mask>>bit)&1 == 0 {
				zero++
				one++
				continue
			}
			if (c.Pattern>>bit)&1 == 0 {
				zero++
			} else {
				one++
			}
		}
		if zero > 0 && one > 0 && zero < len(cands) && one < len(cands) {
			return bit, true
		}
	}
	return 0, false
}

func leaf(cands []candidate) *Node {
	sorted := make([]candidate, len(cands))
	copy(sorted, cands)
	sort.SliceStable(sorted, func(i, j int) bool {
		return bits.OnesCount32(sorted[i].Mask) > bits.OnesCount32(sorted[j].Mask)
	})
	return &Node{Candidates: sorted}
}

// Classify walks the tree for a concrete instruction word and returns the
// index (into the slice originally passed to Build) of the matching
// descriptor, re-verifying the exact (mask, pattern) predicate at the
// leaf so correctness never depends on the tree's shape. Returns
// (0, false) if no descriptor matches.
func Classify(root *Node, code uint32) (int, bool) {
	n := root
	for n.Candidates == nil {
		if (code>>n.Bit)&1 == 0 {
			n = n.Zero
		} else {
			n = n.One
		}
	}
	for _, c := range n.Candidates {
		if code&c.Mask == c.Pattern {
			return c.Index, true
		}
	}
	return 0, false
}
