package encoding

import "github.com/dbehnke/go-viterbi/trellis"

// lookupEntry is the precomputed result of feeding one input byte through
// the encoder from one (K-1)-bit memory state.
type lookupEntry struct {
	out      []byte // R bytes
	nextMask uint   // resulting (K-1)-bit memory state
}

// LookupEncoder precomputes, for every (K-1)-bit memory state, the R output
// bytes produced by consuming each of the 256 possible input bytes (spec.md
// section 4.1). It is built once from a reference ShiftRegisterEncoder and
// is exact-equal to it for every input by construction.
type LookupEncoder struct {
	code       trellis.Code
	numStates  uint
	table      [][256]lookupEntry
	state      uint
}

// NewLookupEncoder builds the lookup table for code. Table size is
// NumStates * 256 * R bytes; callers targeting large K should use
// NewShiftRegisterEncoder instead (see New's K <= 10 threshold).
func NewLookupEncoder(code trellis.Code) *LookupEncoder {
	numStates := code.NumStates()
	table := make([][256]lookupEntry, numStates)

	ref := NewShiftRegisterEncoder(code)
	buf := make([]byte, code.R)
	stateMask := numStates - 1

	for s := uint(0); s < numStates; s++ {
		for b := 0; b < 256; b++ {
			// Seed the reference register so its (K-1)-bit memory equals s;
			// the extra top bit tracked by the shift register is irrelevant
			// since it is always overwritten by the first bit consumed.
			ref.reg = s
			ref.ConsumeByte(byte(b), buf)
			out := make([]byte, len(buf))
			copy(out, buf)
			table[s][b] = lookupEntry{out: out, nextMask: ref.reg & stateMask}
		}
	}

	return &LookupEncoder{
		code:      code,
		numStates: numStates,
		table:     table,
	}
}

// Reset clears the encoder's memory state.
func (e *LookupEncoder) Reset() {
	e.state = 0
}

// ConsumeByte looks up the precomputed R-byte output for the current memory
// state and input byte, then advances the state.
func (e *LookupEncoder) ConsumeByte(x byte, out []byte) {
	entry := &e.table[e.state][x]
	copy(out[:len(entry.out)], entry.out)
	e.state = entry.nextMask
}
