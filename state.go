package aes

import (
	"github.com/ZhaoShuai2332/aes/internal/gf256"
	"github.com/ZhaoShuai2332/aes/internal/mem"
)

// The cipher state is a flat 16-byte block viewed as a 4x4 byte matrix in
// column-major order: the byte at row r, column c sits at offset 4*c+r. All
// transforms below map one state to another and index the matrix shape
// explicitly rather than nesting containers.

func addRoundKey(state *[16]byte, roundKey *[16]byte) {
	mem.XORBlock(state, state, roundKey)
}

func subBytes(state *[16]byte) {
	for i := range state {
		state[i] = sbox[state[i]]
	}
}

func invSubBytes(state *[16]byte) {
	for i := range state {
		state[i] = invSBox[state[i]]
	}
}

// shiftRows rotates row r left by r columns. Row 0 is untouched.
func shiftRows(state *[16]byte) {
	state[1], state[5], state[9], state[13] = state[5], state[9], state[13], state[1]
	state[2], state[6], state[10], state[14] = state[10], state[14], state[2], state[6]
	state[3], state[7], state[11], state[15] = state[15], state[3], state[7], state[11]
}

// invShiftRows rotates row r right by r columns.
func invShiftRows(state *[16]byte) {
	state[1], state[5], state[9], state[13] = state[13], state[1], state[5], state[9]
	state[2], state[6], state[10], state[14] = state[10], state[14], state[2], state[6]
	state[3], state[7], state[11], state[15] = state[7], state[11], state[15], state[3]
}

// mixColumns multiplies each column by the circulant matrix
//
//	[02 03 01 01]
//	[01 02 03 01]
//	[01 01 02 03]
//	[03 01 01 02]
//
// over GF(2^8), with XOR as addition.
func mixColumns(state *[16]byte) {
	for c := 0; c < 4; c++ {
		s0, s1, s2, s3 := state[4*c], state[4*c+1], state[4*c+2], state[4*c+3]
		state[4*c] = gf256.Mul(0x02, s0) ^ gf256.Mul(0x03, s1) ^ s2 ^ s3
		state[4*c+1] = s0 ^ gf256.Mul(0x02, s1) ^ gf256.Mul(0x03, s2) ^ s3
		state[4*c+2] = s0 ^ s1 ^ gf256.Mul(0x02, s2) ^ gf256.Mul(0x03, s3)
		state[4*c+3] = gf256.Mul(0x03, s0) ^ s1 ^ s2 ^ gf256.Mul(0x02, s3)
	}
}

// invMixColumns multiplies each column by the inverse matrix
//
//	[0e 0b 0d 09]
//	[09 0e 0b 0d]
//	[0d 09 0e 0b]
//	[0b 0d 09 0e]
func invMixColumns(state *[16]byte) {
	for c := 0; c < 4; c++ {
		s0, s1, s2, s3 := state[4*c], state[4*c+1], state[4*c+2], state[4*c+3]
		state[4*c] = gf256.Mul(0x0e, s0) ^ gf256.Mul(0x0b, s1) ^ gf256.Mul(0x0d, s2) ^ gf256.Mul(0x09, s3)
		state[4*c+1] = gf256.Mul(0x09, s0) ^ gf256.Mul(0x0e, s1) ^ gf256.Mul(0x0b, s2) ^ gf256.Mul(0x0d, s3)
		state[4*c+2] = gf256.Mul(0x0d, s0) ^ gf256.Mul(0x09, s1) ^ gf256.Mul(0x0e, s2) ^ gf256.Mul(0x0b, s3)
		state[4*c+3] = gf256.Mul(0x0b, s0) ^ gf256.Mul(0x0d, s1) ^ gf256.Mul(0x09, s2) ^ gf256.Mul(0x0e, s3)
	}
}
