// Package gf256 implements arithmetic in GF(2^8), the field of 256 elements
// defined by the irreducible polynomial x^8 + x^4 + x^3 + x + 1 (0x11b). This
// is the field AES uses for its MixColumns diffusion layer and S-box
// derivation.
package gf256

// Double multiplies a by x (0x02) in GF(2^8). If the shifted-out bit was set,
// the result is reduced by XORing in the low byte of the field polynomial.
func Double(a byte) byte {
	if a&0x80 != 0 {
		return a<<1 ^ 0x1b
	}
	return a << 1
}

// Mul multiplies a and b in GF(2^8) using carry-less peasant multiplication:
// repeated doubling of a with XOR accumulation for each set bit of b.
func Mul(a, b byte) byte {
	var p byte
	for b != 0 {
		if b&1 != 0 {
			p ^= a
		}
		a = Double(a)
		b >>= 1
	}
	return p
}

// Inverse returns the multiplicative inverse of a, computed as a^254 via an
// addition chain of squarings. Zero has no inverse; Inverse(0) = 0, which is
// the convention the AES S-box construction relies on.
func Inverse(a byte) byte {
	x2 := Mul(a, a)
	x4 := Mul(x2, x2)
	x8 := Mul(x4, x4)
	x16 := Mul(x8, x8)
	x32 := Mul(x16, x16)
	x64 := Mul(x32, x32)
	x128 := Mul(x64, x64)

	// a^254 = a^2 * a^4 * a^8 * a^16 * a^32 * a^64 * a^128
	res := Mul(x2, x4)
	res = Mul(res, x8)
	res = Mul(res, x16)
	res = Mul(res, x32)
	res = Mul(res, x64)
	res = Mul(res, x128)
	return res
}
