// Command aes_decrypt reads hex ciphertext from stdin, decrypts it with
// AES-128 in independent-block (ECB) mode, strips the PKCS #7 padding, and
// writes the plaintext to stdout.
package main

import (
	"encoding/hex"
	"flag"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/ZhaoShuai2332/aes/ecb"
)

func main() {
	log := slog.New(slog.Default().Handler())

	keyHex := flag.String("key", "", "the 16-byte key, hex encoded")
	flag.Parse()

	key, err := hex.DecodeString(*keyHex)
	if err != nil {
		log.Error("invalid key", "err", err)
		os.Exit(1)
	}

	in, err := io.ReadAll(os.Stdin)
	if err != nil {
		log.Error("failed to read ciphertext", "err", err)
		os.Exit(1)
	}

	ciphertext, err := hex.DecodeString(strings.TrimSpace(string(in)))
	if err != nil {
		log.Error("invalid ciphertext hex", "err", err)
		os.Exit(1)
	}

	plaintext, err := ecb.Decrypt(key, ciphertext)
	if err != nil {
		log.Error("decryption failed", "err", err)
		os.Exit(1)
	}

	if _, err := os.Stdout.Write(plaintext); err != nil {
		log.Error("failed to write plaintext", "err", err)
		os.Exit(1)
	}
}
