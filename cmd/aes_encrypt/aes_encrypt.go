// Command aes_encrypt reads a message from stdin, encrypts it with AES-128 in
// independent-block (ECB) mode with PKCS #7 padding, and writes the hex
// ciphertext to stdout.
//
// With -selftest, it instead runs the FIPS 197 Appendix B known-answer test
// and reports the result.
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/ZhaoShuai2332/aes"
	"github.com/ZhaoShuai2332/aes/ecb"
)

func main() {
	log := slog.New(slog.Default().Handler())

	keyHex := flag.String("key", "", "the 16-byte key, hex encoded")
	selftest := flag.Bool("selftest", false, "run the FIPS 197 known-answer test and exit")
	flag.Parse()

	if *selftest {
		if err := runSelfTest(); err != nil {
			log.Error("self-test failed", "err", err)
			os.Exit(1)
		}
		log.Info("self-test passed")
		return
	}

	key, err := hex.DecodeString(*keyHex)
	if err != nil {
		log.Error("invalid key", "err", err)
		os.Exit(1)
	}

	message, err := io.ReadAll(os.Stdin)
	if err != nil {
		log.Error("failed to read message", "err", err)
		os.Exit(1)
	}

	ciphertext, err := ecb.Encrypt(key, message)
	if err != nil {
		log.Error("encryption failed", "err", err)
		os.Exit(1)
	}

	fmt.Println(hex.EncodeToString(ciphertext))
}

func runSelfTest() error {
	key, _ := hex.DecodeString("2b7e151628aed2a6abf7158809cf4f3c")
	plaintext, _ := hex.DecodeString("3243f6a8885a308d313198a2e0370734")
	const want = "3925841d02dc09fbdc118597196a0b32"

	c, err := aes.NewCipher(key)
	if err != nil {
		return err
	}

	ciphertext, err := c.EncryptBlock(plaintext)
	if err != nil {
		return err
	}
	if got := hex.EncodeToString(ciphertext); got != want {
		return fmt.Errorf("encrypt vector mismatch: got %s, want %s", got, want)
	}

	back, err := c.DecryptBlock(ciphertext)
	if err != nil {
		return err
	}
	if got, want := hex.EncodeToString(back), hex.EncodeToString(plaintext); got != want {
		return fmt.Errorf("decrypt vector mismatch: got %s, want %s", got, want)
	}
	return nil
}
