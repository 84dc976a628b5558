// Package encoding implements the convolutional encoder used to generate
// reference symbols for the Viterbi decoder (spec.md section 4.1): a small
// polymorphic abstraction over two interchangeable strategies, Lookup and
// ShiftRegister, dispatched dynamically through the Encoder interface while
// the decoder stays monomorphic per engine (SPEC_FULL.md section 9).
package encoding

import "github.com/dbehnke/go-viterbi/trellis"

// Encoder turns input bytes into R output bits per input bit. ConsumeByte
// writes exactly R output bytes (8*R output bits, packed LSB-first, bit
// index advancing across both the 8 input bits and the R generators as it
// goes) into out.
type Encoder interface {
	Reset()
	ConsumeByte(x byte, out []byte)
}

// New picks Lookup for small constraint lengths (table stays a reasonable
// size) and ShiftRegister otherwise, matching spec.md's "K <= ~10" /
// "K > ~10" guidance. Both variants are semantically identical; New exists
// so callers don't have to make the choice themselves.
func New(code trellis.Code) Encoder {
	if code.K <= 10 {
		return NewLookupEncoder(code)
	}
	return NewShiftRegisterEncoder(code)
}
