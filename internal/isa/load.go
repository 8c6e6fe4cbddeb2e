package isa

import (
	"embed"
	"fmt"

	"github.com/BurntSushi/toml"
)

//go:embed catalog/*.toml
var catalogFS embed.FS

// variantRank orders the four ISA families so a catalogue load can keep
// only opcodes whose MinVariant is at or before the requested variant.
var variantRank = map[string]int{
	"v4t":  0,
	"v5te": 1,
	"v6":   2,
	"v6k":  3,
}

// Load reads and validates the catalogue for one (variant, width) pair.
// variant is one of "v4t", "v5te", "v6", "v6k"; width is "arm" or "thumb".
// Load never returns a partial Catalog: on any structural problem it
// returns (nil, error) with no side effects.
func Load(variant, width string) (*Catalog, error) {
	rank, ok := variantRank[variant]
	if !ok {
		return nil, NewCatalogError(variant, width, "variant", variant, "unknown ISA variant")
	}
	if width != "arm" && width != "thumb" {
		return nil, NewCatalogError(variant, width, "width", width, `width must be "arm" or "thumb"`)
	}

	argsRaw, err := decodeEmbedded("catalog/args.toml")
	if err != nil {
		return nil, WrapCatalogError(variant, width, "args", "args.toml", err)
	}
	widthRaw, err := decodeEmbedded(fmt.Sprintf("catalog/%s.toml", width))
	if err != nil {
		return nil, WrapCatalogError(variant, width, "catalog", width+".toml", err)
	}

	cat := &Catalog{
		Variant:   variant,
		Width:     width,
		Args:      make(map[string]ArgDescriptor),
		Fields:    make(map[string]FieldDescriptor),
		Modifiers: make(map[string]ModifierDescriptor),
	}

	for _, a := range argsRaw.Args {
		if a.Name == "" {
			return nil, NewCatalogError(variant, width, "arg", "<unnamed>", "argument descriptor has no name")
		}
		cat.Args[a.Name] = a
	}
	for _, f := range widthRaw.Fields {
		cat.Fields[f.Name] = f
	}
	for _, m := range widthRaw.Modifiers {
		cat.Modifiers[m.Name] = m
	}
	for _, op := range widthRaw.Opcodes {
		r, ok := variantRank[op.MinVariant]
		if !ok {
			return nil, NewCatalogError(variant, width, "opcode", op.Name, fmt.Sprintf("unknown min_variant %q", op.MinVariant))
		}
		if r > rank {
			continue
		}
		cat.Opcodes = append(cat.Opcodes, op)
	}

	if err := cat.validate(); err != nil {
		return nil, err
	}
	return cat, nil
}

func decodeEmbedded(path string) (*rawCatalog, error) {
	data, err := catalogFS.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading embedded catalogue file %s: %w", path, err)
	}
	var raw rawCatalog
	if _, err := toml.Decode(string(data), &raw); err != nil {
		return nil, fmt.Errorf("parsing embedded catalogue file %s: %w", path, err)
	}
	return &raw, nil
}

// validate checks presence-of-referenced-names, well-formedness of
// modifier shapes, the absence of nested struct/enum argument types, and
// the contiguity of enum values, per the generator-path error contract.
func (c *Catalog) validate() error {
	for _, f := range c.Fields {
		if f.Arg != "" {
			if _, ok := c.Args[f.Arg]; !ok {
				return NewCatalogError(c.Variant, c.Width, "field", f.Name,
					fmt.Sprintf("references undefined argument %q", f.Arg))
			}
		}
		if err := validateFieldValue(f.Value); err != nil {
			return WrapCatalogError(c.Variant, c.Width, "field", f.Name, err)
		}
	}

	for name, m := range c.Modifiers {
		if m.Boolean {
			continue
		}
		if len(m.Cases) == 0 {
			return NewCatalogError(c.Variant, c.Width, "modifier", name,
				"enumerated modifier declares no cases and no boolean shape")
		}
		for _, cs := range m.Cases {
			if cs.Name == "" {
				return NewCatalogError(c.Variant, c.Width, "modifier", name, "case has no name")
			}
		}
	}

	for _, op := range c.Opcodes {
		if op.Mask&op.Pattern != op.Pattern {
			return NewCatalogError(c.Variant, c.Width, "opcode", op.Name,
				"pattern has bits set outside mask")
		}
		for _, fn := range op.Fields {
			if _, ok := c.Fields[fn]; !ok {
				return NewCatalogError(c.Variant, c.Width, "opcode", op.Name,
					fmt.Sprintf("references undefined field %q", fn))
			}
		}
		for _, mn := range op.Modifiers {
			if _, ok := c.Modifiers[mn]; !ok {
				return NewCatalogError(c.Variant, c.Width, "opcode", op.Name,
					fmt.Sprintf("references undefined modifier %q", mn))
			}
		}
	}

	for _, a := range c.Args {
		if a.Kind == ArgStruct {
			for _, m := range a.Members {
				if ma, ok := c.Args[m.Arg]; ok && (ma.Kind == ArgStruct || ma.Kind == ArgEnum) {
					return NewCatalogError(c.Variant, c.Width, "arg", a.Name,
						fmt.Sprintf("nested %s member %q is disallowed", ma.Kind, m.Name))
				}
			}
		}
		if a.Kind == ArgEnum && len(a.Variants) > 0 {
			seen := make(map[uint8]bool, len(a.Variants))
			lo, hi := a.Variants[0].Value, a.Variants[0].Value
			for _, v := range a.Variants {
				seen[v.Value] = true
				lo, hi = min(lo, v.Value), max(hi, v.Value)
			}
			if int(hi)-int(lo)+1 != len(seen) || len(seen) != len(a.Variants) {
				return NewCatalogError(c.Variant, c.Width, "arg", a.Name,
					"enum values are not contiguous")
			}
		}
	}

	return nil
}

func validateFieldValue(v FieldValue) error {
	set := 0
	if v.Bits != nil {
		set++
	}
	if v.Bit != nil {
		set++
	}
	if v.BoolLit != nil {
		set++
	}
	if v.U32Lit != nil {
		set++
	}
	if v.Negate != nil {
		set++
	}
	if v.ArmShift != nil {
		set++
	}
	if v.BranchOffset != nil {
		set++
	}
	if v.RotImm != nil {
		set++
	}
	if len(v.Struct) > 0 {
		set++
	}
	if set == 0 {
		return fmt.Errorf("field value has no derivation shape")
	}
	if set > 1 {
		return fmt.Errorf("field value declares more than one derivation shape")
	}
	for name, member := range v.Struct {
		if err := validateFieldValue(member); err != nil {
			return fmt.Errorf("struct member %q: %w", name, err)
		}
	}
	return nil
}
