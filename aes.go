// Package aes implements the AES-128 block cipher from first principles: key
// schedule derivation, the forward and inverse round transformations, and the
// GF(2^8) field arithmetic underneath them.
//
// The implementation favors clarity over speed: byte substitution goes through
// S-box tables derived at startup from field inverses, MixColumns performs its
// field multiplications explicitly, and decryption applies the documented
// inverse round sequence rather than the equivalent-inverse-cipher reordering.
// It makes no constant-time guarantees and uses no hardware acceleration; for
// production use, prefer crypto/aes.
package aes

import "errors"

const (
	// BlockSize is the AES block size in bytes.
	BlockSize = 16

	// KeySize is the AES-128 key size in bytes.
	KeySize = 16

	// rounds is the AES-128 round count (Nr).
	rounds = 10
)

var (
	// ErrKeyLength is returned when a cipher key is not exactly 16 bytes.
	ErrKeyLength = errors.New("aes: key length must be 16 bytes")

	// ErrBlockLength is returned when a block is not exactly 16 bytes.
	ErrBlockLength = errors.New("aes: block length must be 16 bytes")
)

// A Cipher encrypts and decrypts single 16-byte blocks using a key schedule
// derived once at construction. It is stateless per call and safe for
// concurrent use.
type Cipher struct {
	ks KeySchedule
}

// NewCipher expands the given 16-byte key and returns a Cipher using it.
// Returns ErrKeyLength if the key is not exactly 16 bytes.
func NewCipher(key []byte) (*Cipher, error) {
	ks, err := ExpandKey(key)
	if err != nil {
		return nil, err
	}
	return &Cipher{ks: ks}, nil
}

// EncryptBlock encrypts a single 16-byte block and returns the 16-byte
// ciphertext. Returns ErrBlockLength if plaintext is not exactly 16 bytes.
func (c *Cipher) EncryptBlock(plaintext []byte) ([]byte, error) {
	if len(plaintext) != BlockSize {
		return nil, ErrBlockLength
	}

	var state [16]byte
	copy(state[:], plaintext)
	c.encrypt(&state, nil)
	return state[:], nil
}

// DecryptBlock decrypts a single 16-byte block and returns the 16-byte
// plaintext. Returns ErrBlockLength if ciphertext is not exactly 16 bytes.
func (c *Cipher) DecryptBlock(ciphertext []byte) ([]byte, error) {
	if len(ciphertext) != BlockSize {
		return nil, ErrBlockLength
	}

	var state [16]byte
	copy(state[:], ciphertext)
	c.decrypt(&state, nil)
	return state[:], nil
}

// encrypt runs the forward cipher over state in place: an initial AddRoundKey,
// nine full rounds, and a final round without MixColumns.
func (c *Cipher) encrypt(state *[16]byte, trace *BlockTrace) {
	addRoundKey(state, &c.ks[0])
	trace.record(0, OpAddRoundKey, state)

	for round := 1; round < rounds; round++ {
		subBytes(state)
		trace.record(round, OpSubBytes, state)
		shiftRows(state)
		trace.record(round, OpShiftRows, state)
		mixColumns(state)
		trace.record(round, OpMixColumns, state)
		addRoundKey(state, &c.ks[round])
		trace.record(round, OpAddRoundKey, state)
	}

	subBytes(state)
	trace.record(rounds, OpSubBytes, state)
	shiftRows(state)
	trace.record(rounds, OpShiftRows, state)
	addRoundKey(state, &c.ks[rounds])
	trace.record(rounds, OpAddRoundKey, state)
}

// decrypt runs the inverse cipher over state in place, applying round keys in
// reverse order. The step order within each round (InvShiftRows, InvSubBytes,
// AddRoundKey, then InvMixColumns) mirrors the forward sequence exactly; it is
// not the equivalent-inverse-cipher variant.
func (c *Cipher) decrypt(state *[16]byte, trace *BlockTrace) {
	addRoundKey(state, &c.ks[rounds])
	trace.record(0, OpAddRoundKey, state)

	for round := rounds - 1; round > 0; round-- {
		invShiftRows(state)
		trace.record(round, OpInvShiftRows, state)
		invSubBytes(state)
		trace.record(round, OpInvSubBytes, state)
		addRoundKey(state, &c.ks[round])
		trace.record(round, OpAddRoundKey, state)
		invMixColumns(state)
		trace.record(round, OpInvMixColumns, state)
	}

	invShiftRows(state)
	trace.record(rounds, OpInvShiftRows, state)
	invSubBytes(state)
	trace.record(rounds, OpInvSubBytes, state)
	addRoundKey(state, &c.ks[0])
	trace.record(rounds, OpAddRoundKey, state)
}
