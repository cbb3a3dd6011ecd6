// Package ecb turns the AES-128 block cipher into an arbitrary-length message
// API: PKCS #7 padding plus independent per-block encryption, with no chaining
// and no IV.
//
// Per-block independence is a known confidentiality limitation: identical
// plaintext blocks under the same key produce identical ciphertext blocks,
// leaking message structure. It is preserved here as the interface contract of
// the system this package models; production use should layer a chaining or
// nonce-based mode on top of the block primitives instead.
package ecb

import (
	"errors"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/ZhaoShuai2332/aes"
	"github.com/ZhaoShuai2332/aes/internal/mem"
	"github.com/ZhaoShuai2332/aes/pkcs7"
)

// ErrInputLength is returned when a ciphertext is not a positive multiple of
// the block size.
var ErrInputLength = errors.New("ecb: ciphertext length must be a positive multiple of 16")

// parallelThreshold is the block count above which messages are processed by
// concurrent workers. Below it, goroutine overhead dominates.
const parallelThreshold = 64

// Encrypt pads message with PKCS #7 and encrypts each 16-byte block
// independently with the given 16-byte key, returning the concatenated
// ciphertext. The output is always a multiple of 16 bytes, one block longer
// than the message when the message is already aligned.
//
// Returns aes.ErrKeyLength if the key is not exactly 16 bytes.
func Encrypt(key, message []byte) ([]byte, error) {
	c, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}

	padded := pkcs7.Pad(message, aes.BlockSize)
	out, blocks := mem.SliceForAppend(nil, len(padded))
	if err := eachBlock(len(padded)/aes.BlockSize, func(i int) error {
		ct, err := c.EncryptBlock(padded[i*aes.BlockSize : (i+1)*aes.BlockSize])
		if err != nil {
			return err
		}
		copy(blocks[i*aes.BlockSize:], ct)
		return nil
	}); err != nil {
		return nil, err
	}
	return out, nil
}

// Decrypt decrypts each 16-byte block of ciphertext independently with the
// given 16-byte key, concatenates the results, and strips the PKCS #7 padding.
//
// Returns aes.ErrKeyLength if the key is not exactly 16 bytes, ErrInputLength
// if the ciphertext is not a positive multiple of 16 bytes, and
// pkcs7.ErrPadding if the decrypted padding is inconsistent.
func Decrypt(key, ciphertext []byte) ([]byte, error) {
	c, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	if len(ciphertext) == 0 || len(ciphertext)%aes.BlockSize != 0 {
		return nil, ErrInputLength
	}

	padded, blocks := mem.SliceForAppend(nil, len(ciphertext))
	if err := eachBlock(len(ciphertext)/aes.BlockSize, func(i int) error {
		pt, err := c.DecryptBlock(ciphertext[i*aes.BlockSize : (i+1)*aes.BlockSize])
		if err != nil {
			return err
		}
		copy(blocks[i*aes.BlockSize:], pt)
		return nil
	}); err != nil {
		return nil, err
	}
	return pkcs7.Unpad(padded, aes.BlockSize)
}

// eachBlock runs fn for every block index in [0, n). Blocks are independent,
// so large messages are fanned out across worker goroutines; each worker
// writes only its own block's output, and results land at their original
// offsets regardless of completion order.
func eachBlock(n int, fn func(i int) error) error {
	if n < parallelThreshold {
		for i := 0; i < n; i++ {
			if err := fn(i); err != nil {
				return err
			}
		}
		return nil
	}

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error { return fn(i) })
	}
	return g.Wait()
}
