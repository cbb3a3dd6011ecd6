// Command aes_diff demonstrates differential propagation through the cipher:
// it encrypts a block and a copy of it XORed with a chosen difference mask,
// then reports the XOR of the two states and the count of active (nonzero)
// bytes after every step. The single-byte input difference spreads to the
// full state within a few rounds, which is the avalanche behavior MixColumns
// and ShiftRows exist to produce.
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/ZhaoShuai2332/aes"
)

func main() {
	log := slog.New(slog.Default().Handler())

	keyHex := flag.String("key", "2b7e151628aed2a6abf7158809cf4f3c", "the 16-byte key, hex encoded")
	blockHex := flag.String("block", "3243f6a8885a308d313198a2e0370734", "the 16-byte block, hex encoded")
	maskHex := flag.String("mask", "01000000000000000000000000000000", "the 16-byte input difference, hex encoded")
	rounds := flag.Int("rounds", 3, "number of rounds to report")
	flag.Parse()

	key, err := hex.DecodeString(*keyHex)
	if err != nil {
		log.Error("invalid key", "err", err)
		os.Exit(1)
	}
	block, err := hex.DecodeString(*blockHex)
	if err != nil {
		log.Error("invalid block", "err", err)
		os.Exit(1)
	}
	mask, err := hex.DecodeString(*maskHex)
	if err != nil || len(mask) != aes.BlockSize {
		log.Error("invalid mask: want 16 hex-encoded bytes")
		os.Exit(1)
	}

	c, err := aes.NewCipher(key)
	if err != nil {
		log.Error("invalid cipher key", "err", err)
		os.Exit(1)
	}

	pair := make([]byte, len(block))
	for i := range pair {
		pair[i] = block[i] ^ mask[i]
	}

	_, traceA, err := c.EncryptBlockTrace(block)
	if err != nil {
		log.Error("invalid block length", "err", err)
		os.Exit(1)
	}
	_, traceB, err := c.EncryptBlockTrace(pair)
	if err != nil {
		log.Error("invalid block length", "err", err)
		os.Exit(1)
	}

	fmt.Printf("input difference: %s (%d active bytes)\n\n", *maskHex, activeBytes(mask))
	for i, a := range traceA.Steps {
		if a.Round > *rounds {
			break
		}

		b := traceB.Steps[i]
		diff := make([]byte, aes.BlockSize)
		for j := range diff {
			diff[j] = a.State[j] ^ b.State[j]
		}
		fmt.Printf("round %2d  %-13s %s  active=%2d\n",
			a.Round, a.Op, hex.EncodeToString(diff), activeBytes(diff))
	}
}

func activeBytes(diff []byte) int {
	var n int
	for _, b := range diff {
		if b != 0 {
			n++
		}
	}
	return n
}
