package aes

import (
	"math/bits"

	"github.com/ZhaoShuai2332/aes/internal/gf256"
)

// sbox and invSBox are the AES byte substitution tables. They are derived once
// at startup from the GF(2^8) multiplicative inverse followed by the FIPS 197
// affine transform, and are read-only afterwards.
var sbox, invSBox [256]byte

func init() {
	for i := 0; i < 256; i++ {
		s := affine(gf256.Inverse(byte(i)))
		sbox[i] = s
		invSBox[s] = byte(i)
	}
}

// affine applies the S-box affine transform: the input XORed with four of its
// left rotations and the constant 0x63.
func affine(b byte) byte {
	return b ^
		bits.RotateLeft8(b, 1) ^
		bits.RotateLeft8(b, 2) ^
		bits.RotateLeft8(b, 3) ^
		bits.RotateLeft8(b, 4) ^
		0x63
}
