package isa

import "fmt"

// CatalogError reports a structural problem in a loaded ISA catalogue: a
// missing name reference, an invalid type combination, a discontinuous
// enum range, or a malformed modifier shape. It always names the
// offending entry so the message is actionable without a debugger.
type CatalogError struct {
	Variant string // e.g. "v5te"
	Width   string // "arm" or "thumb"
	Entry   string // the catalogue entry name (opcode/field/modifier/arg)
	Kind    string // "opcode", "field", "modifier", "arg", "variant", "width", "args", "catalog"
	Message string
	Wrapped error
}

func (e *CatalogError) Error() string {
	loc := fmt.Sprintf("%s/%s", e.Variant, e.Width)
	if e.Wrapped != nil {
		return fmt.Sprintf("%s: %s %q: %s: %v", loc, e.Kind, e.Entry, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("%s: %s %q: %s", loc, e.Kind, e.Entry, e.Message)
}

func (e *CatalogError) Unwrap() error {
	return e.Wrapped
}

// NewCatalogError builds a CatalogError with no underlying cause.
func NewCatalogError(variant, width, kind, entry, message string) *CatalogError {
	return &CatalogError{Variant: variant, Width: width, Kind: kind, Entry: entry, Message: message}
}

// WrapCatalogError attaches catalogue-entry context to an existing error.
// If err is nil, returns nil. If err is already a *CatalogError, it is
// returned unchanged rather than double-wrapped.
func WrapCatalogError(variant, width, kind, entry string, err error) error {
	if err == nil {
		return nil
	}
	if ce, ok := err.(*CatalogError); ok {
		return ce
	}
	return &CatalogError{
		Variant: variant,
		Width:   width,
		Kind:    kind,
		Entry:   entry,
		Message: "invalid catalogue entry",
		Wrapped: err,
	}
}
