// Package thumbutil composes the two halfwords of a Thumb BL/BLX branch
// into a single signed displacement. This logic sits outside the core
// decode/format contract by design: the core only exposes the half-BL
// predicate and the distinct opcode tags for each half; an external
// driver buffers the second halfword and calls JoinBL once it has both.
package thumbutil

// JoinBL composes the first halfword's 11-bit high offset and the second
// halfword's 11-bit low offset into the signed, PC-relative branch
// displacement defined by the ARM architecture reference for the
// two-halfword BL/BLX encoding:
//
//	target = (sign_extend(hiOffset11, 11) << 12) + (loOffset11 << 1)
//
// relative to the address of the first halfword.
func JoinBL(hiOffset11, loOffset11 uint32) int32 {
	hi := int32(signExtend(hiOffset11, 11))
	lo := int32(loOffset11 & 0x7FF)
	return (hi << 12) + (lo << 1)
}

// signExtend sign-extends the low bits-many bits of v.
func signExtend(v uint32, bits uint) int32 {
	shift := 32 - bits
	return int32(v<<shift) >> shift
}
