package aes

import "testing"

func TestSBoxReferenceValues(t *testing.T) {
	// Spot checks against the FIPS 197 figure 7 table.
	tests := []struct {
		in, want byte
	}{
		{0x00, 0x63},
		{0x01, 0x7c},
		{0x53, 0xed},
		{0x10, 0xca},
		{0xab, 0x62},
		{0xff, 0x16},
	}

	for _, tt := range tests {
		if got := sbox[tt.in]; got != tt.want {
			t.Errorf("sbox[%#02x] = %#02x, want = %#02x", tt.in, got, tt.want)
		}
	}
}

func TestSBoxInverseLaw(t *testing.T) {
	for b := 0; b < 256; b++ {
		if got := invSBox[sbox[b]]; got != byte(b) {
			t.Errorf("invSBox[sbox[%#02x]] = %#02x, want = %#02x", b, got, b)
		}
		if got := sbox[invSBox[b]]; got != byte(b) {
			t.Errorf("sbox[invSBox[%#02x]] = %#02x, want = %#02x", b, got, b)
		}
	}
}

func TestSBoxBijection(t *testing.T) {
	var seen [256]bool
	for b := 0; b < 256; b++ {
		s := sbox[b]
		if seen[s] {
			t.Fatalf("sbox maps two inputs to %#02x", s)
		}
		seen[s] = true
	}
}
