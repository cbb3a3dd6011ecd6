package aes

// rcon holds the round constants for key expansion, rcon[i-1] being the
// constant for round i. Each is the previous one doubled in GF(2^8).
var rcon = [10]byte{0x01, 0x02, 0x04, 0x08, 0x10, 0x20, 0x40, 0x80, 0x1b, 0x36}

// A KeySchedule is the expanded form of a 16-byte AES-128 key: 11 round keys,
// one per AddRoundKey application. It is immutable once derived and safe to
// share across concurrent block operations. Decryption uses the same schedule
// with the round keys applied in reverse order.
type KeySchedule [11][16]byte

// ExpandKey derives the 11 round keys from a 16-byte key.
//
// Round key 0 is the key itself. Each subsequent word is the XOR of the word
// four positions back with the previous word, where every fourth word is first
// rotated, substituted through the S-box, and XORed with a round constant.
// Returns ErrKeyLength if the key is not exactly 16 bytes.
func ExpandKey(key []byte) (KeySchedule, error) {
	var ks KeySchedule
	if len(key) != KeySize {
		return ks, ErrKeyLength
	}

	var w [44][4]byte
	for i := 0; i < 4; i++ {
		copy(w[i][:], key[4*i:4*i+4])
	}

	for i := 4; i < 44; i++ {
		temp := w[i-1]
		if i%4 == 0 {
			// RotWord
			temp[0], temp[1], temp[2], temp[3] = temp[1], temp[2], temp[3], temp[0]
			// SubWord
			temp[0] = sbox[temp[0]]
			temp[1] = sbox[temp[1]]
			temp[2] = sbox[temp[2]]
			temp[3] = sbox[temp[3]]
			// Rcon
			temp[0] ^= rcon[i/4-1]
		}
		for j := 0; j < 4; j++ {
			w[i][j] = w[i-4][j] ^ temp[j]
		}
	}

	for i := 0; i < 11; i++ {
		for j := 0; j < 4; j++ {
			copy(ks[i][4*j:4*j+4], w[4*i+j][:])
		}
	}
	return ks, nil
}
