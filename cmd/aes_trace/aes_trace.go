// Command aes_trace encrypts or decrypts a single 16-byte block and prints
// the state after every step of every round, in the 4x4 column-major matrix
// layout. Useful for following the cipher against a worked example such as
// FIPS 197 Appendix B.
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
	decrypt := flag.Bool("decrypt", false, "run the inverse cipher instead")
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

	c, err := aes.NewCipher(key)
	if err != nil {
		log.Error("invalid cipher key", "err", err)
		os.Exit(1)
	}

	var out []byte
	var trace *aes.BlockTrace
	if *decrypt {
		out, trace, err = c.DecryptBlockTrace(block)
	} else {
		out, trace, err = c.EncryptBlockTrace(block)
	}
	if err != nil {
		log.Error("invalid block length", "err", err)
		os.Exit(1)
	}

	fmt.Printf("key:    %s\n", *keyHex)
	fmt.Printf("input:  %s\n\n", *blockHex)
	for _, step := range trace.Steps {
		fmt.Printf("round %2d  %-13s %s\n", step.Round, step.Op, hex.EncodeToString(step.State[:]))
		printState(step.State)
	}
	fmt.Printf("output: %s\n", hex.EncodeToString(out))
}

// printState renders the 16-byte block as its 4x4 matrix view: the byte at
// row r, column c sits at flat offset 4c+r.
func printState(state [16]byte) {
	for r := 0; r < 4; r++ {
		fmt.Printf("          ")
		for c := 0; c < 4; c++ {
			fmt.Printf("%02x ", state[4*c+r])
		}
		fmt.Println()
	}
	fmt.Println()
}
