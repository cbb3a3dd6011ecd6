package aes_test

import (
	"encoding/hex"
	"fmt"

	"github.com/ZhaoShuai2332/aes"
)

func ExampleCipher_EncryptBlock() {
	key, _ := hex.DecodeString("2b7e151628aed2a6abf7158809cf4f3c")
	plaintext, _ := hex.DecodeString("3243f6a8885a308d313198a2e0370734")

	c, err := aes.NewCipher(key)
	if err != nil {
		panic(err)
	}

	ciphertext, err := c.EncryptBlock(plaintext)
	if err != nil {
		panic(err)
	}

	fmt.Println(hex.EncodeToString(ciphertext))
	// Output:
	// 3925841d02dc09fbdc118597196a0b32
}

func ExampleExpandKey() {
	key, _ := hex.DecodeString("2b7e151628aed2a6abf7158809cf4f3c")

	ks, err := aes.ExpandKey(key)
	if err != nil {
		panic(err)
	}

	fmt.Println(hex.EncodeToString(ks[0][:]))
	fmt.Println(hex.EncodeToString(ks[10][:]))
	// Output:
	// 2b7e151628aed2a6abf7158809cf4f3c
	// d014f9a8c9ee2589e13f0cc8b6630ca6
}
