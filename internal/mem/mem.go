// Package mem provides small buffer helpers shared by the cipher and the
// message codec.
package mem

import "slices"

// XORBlock XORs the 16-byte blocks a and b into dst. AES block and round key
// widths never exceed 16 bytes, so a scalar loop beats the SIMD-backed
// subtle.XORBytes here.
func XORBlock(dst, a, b *[16]byte) {
	for i := range dst {
		dst[i] = a[i] ^ b[i]
	}
}

// SliceForAppend takes a slice and a requested number of bytes. It returns a
// slice with the contents of the given slice followed by that many bytes and a
// second slice that aliases into it and contains only the extra bytes. If the
// original slice has sufficient capacity, then no allocation is performed.
func SliceForAppend(in []byte, n int) (head, tail []byte) {
	head = slices.Grow(in, n)
	head = head[:len(in)+n]
	tail = head[len(in):]
	return head, tail
}
