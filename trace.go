package aes

// An Op names one step of the round pipeline in a BlockTrace.
type Op string

// Round pipeline steps, forward and inverse.
const (
	OpAddRoundKey   Op = "AddRoundKey"
	OpSubBytes      Op = "SubBytes"
	OpShiftRows     Op = "ShiftRows"
	OpMixColumns    Op = "MixColumns"
	OpInvSubBytes   Op = "InvSubBytes"
	OpInvShiftRows  Op = "InvShiftRows"
	OpInvMixColumns Op = "InvMixColumns"
)

// A TraceStep records the state after one step of one round. Round 0 is the
// initial AddRoundKey; rounds 1 through 10 follow the cipher sequence.
type TraceStep struct {
	Round int
	Op    Op
	State [16]byte
}

// A BlockTrace is the ordered record of every intermediate state produced
// while processing one block. It exists for study and analysis tooling, not
// for production use: traces hold key-dependent intermediate values.
type BlockTrace struct {
	Steps []TraceStep
}

// record appends a step to the trace. A nil trace records nothing, so the
// cipher hot path can pass one unconditionally.
func (t *BlockTrace) record(round int, op Op, state *[16]byte) {
	if t == nil {
		return
	}
	t.Steps = append(t.Steps, TraceStep{Round: round, Op: op, State: *state})
}

// EncryptBlockTrace encrypts a single 16-byte block like EncryptBlock and also
// returns the full record of intermediate states.
func (c *Cipher) EncryptBlockTrace(plaintext []byte) ([]byte, *BlockTrace, error) {
	if len(plaintext) != BlockSize {
		return nil, nil, ErrBlockLength
	}

	var state [16]byte
	copy(state[:], plaintext)
	trace := new(BlockTrace)
	c.encrypt(&state, trace)
	return state[:], trace, nil
}

// DecryptBlockTrace decrypts a single 16-byte block like DecryptBlock and also
// returns the full record of intermediate states. Middle steps are tagged with
// the index of the round key they consume, from 9 down to 1.
func (c *Cipher) DecryptBlockTrace(ciphertext []byte) ([]byte, *BlockTrace, error) {
	if len(ciphertext) != BlockSize {
		return nil, nil, ErrBlockLength
	}

	var state [16]byte
	copy(state[:], ciphertext)
	trace := new(BlockTrace)
	c.decrypt(&state, trace)
	return state[:], trace, nil
}
