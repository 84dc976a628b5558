package encoding

import "github.com/dbehnke/go-viterbi/internal/parity"
import "github.com/dbehnke/go-viterbi/trellis"

// ShiftRegisterEncoder runs the shift register bit-by-bit and computes each
// output via the parity table. Used for large constraint lengths where a
// full lookup table would be unreasonably large (spec.md section 4.1), and
// is the reference from which NewLookupEncoder builds its table.
//
// Grounded in original_source/include/convolutional_encoder_shift_register.h
// and the teacher's hand-unrolled pkg/ysf/convolution.go Encode, generalised
// to arbitrary K and R via the parity table instead of fixed XOR taps.
type ShiftRegisterEncoder struct {
	code trellis.Code
	mask uint
	reg  uint
}

// NewShiftRegisterEncoder constructs the shift-register encoder for code.
func NewShiftRegisterEncoder(code trellis.Code) *ShiftRegisterEncoder {
	return &ShiftRegisterEncoder{
		code: code,
		mask: (uint(1) << code.K) - 1,
	}
}

// Reset clears the shift register.
func (e *ShiftRegisterEncoder) Reset() {
	e.reg = 0
}

// ConsumeByte consumes 8 input bits of x, MSB first, and writes 8*R output
// bits into out (R bytes), LSB-first packed, interleaving generators before
// advancing to the next input bit.
func (e *ShiftRegisterEncoder) ConsumeByte(x byte, out []byte) {
	r := e.code.R
	for i := range out[:r] {
		out[i] = 0
	}

	var bitIndex uint
	for i := 0; i < 8; i++ {
		inBit := (uint(x) >> (7 - i)) & 1
		e.reg = ((e.reg << 1) | inBit) & e.mask

		for j := uint(0); j < r; j++ {
			outBit := parity.Parity(uint64(e.code.G[j]) & uint64(e.reg))
			byteIdx := bitIndex / 8
			bitOff := bitIndex % 8
			out[byteIdx] |= outBit << bitOff
			bitIndex++
		}
	}
}
