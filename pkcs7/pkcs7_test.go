package pkcs7

import (
	"bytes"
	"errors"
	"testing"

	"pgregory.net/rapid"
)

func TestPad(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want []byte
	}{
		{"empty", nil, bytes.Repeat([]byte{16}, 16)},
		{"short", []byte("abc"), append([]byte("abc"), bytes.Repeat([]byte{13}, 13)...)},
		{"one under", bytes.Repeat([]byte{0xaa}, 15), append(bytes.Repeat([]byte{0xaa}, 15), 1)},
		{"aligned", bytes.Repeat([]byte{0xaa}, 16), append(bytes.Repeat([]byte{0xaa}, 16), bytes.Repeat([]byte{16}, 16)...)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Pad(tt.data, 16); !bytes.Equal(got, tt.want) {
				t.Errorf("Pad(%x) = %x, want = %x", tt.data, got, tt.want)
			}
		})
	}
}

func TestUnpadInvalid(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"zero value", append(bytes.Repeat([]byte{0xaa}, 15), 0x00)},
		{"over block size", append(bytes.Repeat([]byte{0xaa}, 15), 0x11)},
		{"inconsistent", append(bytes.Repeat([]byte{0xaa}, 14), 0x01, 0x02)},
		{"longer than buffer", []byte{0x05}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Unpad(tt.data, 16); !errors.Is(err, ErrPadding) {
				t.Errorf("Unpad(%x) = %v, want = ErrPadding", tt.data, err)
			}
		})
	}
}

func TestUnpadPadRoundTrip(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		data := rapid.SliceOfN(rapid.Byte(), 0, 100).Draw(rt, "data")

		padded := Pad(data, 16)
		if len(padded)%16 != 0 {
			rt.Fatalf("Pad produced unaligned length %d", len(padded))
		}

		got, err := Unpad(padded, 16)
		if err != nil {
			rt.Fatalf("Unpad(Pad(%x)) = %v", data, err)
		}
		if !bytes.Equal(got, data) {
			rt.Fatalf("Unpad(Pad(%x)) = %x", data, got)
		}
	})
}
