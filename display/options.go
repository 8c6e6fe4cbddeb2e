// Package display renders a args.ParsedIns into canonical ARM assembler
// syntax under a configurable register-naming policy.
package display

// R9Use selects how r9 is named under the AV aliasing policy.
type R9Use uint8

const (
	R9General R9Use = iota // r9 / v6
	R9Pid                  // r9 used as position-independent data base
	R9Tls                  // r9 used as thread-local-storage base
)

// RegNames selects the register-naming policy applied by the formatter.
type RegNames struct {
	// AV aliases r0-r3 to a1-a4 and r4-r11 to v1-v8 (minus whichever of
	// r9/r10/r11/r12 is claimed by a more specific name below).
	AV bool
	// R9 names r9 according to its calling-convention role when AV is set.
	R9 R9Use
	// SL names r10 explicitly as "sl" instead of "v7"/"r10".
	SL bool
	// FP names r11 explicitly as "fp" instead of "v8"/"r11".
	FP bool
	// IP names r12 explicitly as "ip" instead of "r12".
	IP bool
}

// Default matches the plain register names used throughout the
// end-to-end scenarios: r0-r15, no AV aliasing, no explicit sl/fp/ip.
var Default = RegNames{}

// Options bundles all formatter configuration.
type Options struct {
	RegNames RegNames
}

// DefaultOptions is the formatter configuration used unless a caller
// specifies otherwise.
var DefaultOptions = Options{RegNames: Default}
