// Package pkcs7 implements PKCS #7 padding as described in RFC 5652 section
// 6.3: N bytes of value N are appended to reach a block-size multiple.
// Padding is always added, even to already-aligned input, so unpadding is
// never ambiguous.
package pkcs7

import "errors"

// ErrPadding is returned when a buffer does not end in valid padding.
var ErrPadding = errors.New("pkcs7: invalid padding")

// Pad appends padding to data to reach a multiple of blockSize and returns the
// result. An aligned input gains a full block of padding.
func Pad(data []byte, blockSize int) []byte {
	n := blockSize - len(data)%blockSize
	padding := make([]byte, n)
	for i := range padding {
		padding[i] = byte(n)
	}
	return append(data, padding...)
}

// Unpad validates and strips the padding from data. Returns ErrPadding if the
// buffer is empty, the final byte is not in [1, blockSize], or any of the
// trailing padding bytes disagrees with the final byte.
func Unpad(data []byte, blockSize int) ([]byte, error) {
	if len(data) == 0 {
		return nil, ErrPadding
	}

	n := int(data[len(data)-1])
	if n == 0 || n > blockSize || n > len(data) {
		return nil, ErrPadding
	}
	for _, b := range data[len(data)-n:] {
		if b != byte(n) {
			return nil, ErrPadding
		}
	}
	return data[:len(data)-n], nil
}
