// Package puncture implements the puncture/depuncture adapter from spec.md
// section 4.6: stretching the core decoder over rate-compatible punctured
// codes by filling erased mother-code positions with a neutral soft value,
// and the encode-side mirror that drops punctured positions entirely.
package puncture

import (
	"fmt"

	"github.com/dbehnke/go-viterbi/internal/umetric"
)

// Pattern is a puncture pattern: true marks a mother-code position that is
// transmitted (kept), false marks one that is punctured (erased).
type Pattern []bool

// Reader depunctures a stream of received symbols, inserting neutralValue at
// positions the pattern marks as punctured, one mother-code symbol at a
// time. It retains only a running pattern index and symbol cursor (spec.md
// section 4.6: "No state is retained across calls beyond the running
// pattern index and symbol cursor").
type Reader[S umetric.Signed] struct {
	pattern      Pattern
	neutralValue S

	patternIdx int
	symbolIdx  int
	received   []S
}

// NewReader constructs a depuncturing reader over received, a punctured
// channel symbol stream, using pattern and neutralValue (the midpoint of
// [low, high] for soft decoding is the typical choice, per spec.md section
// 4.6).
func NewReader[S umetric.Signed](received []S, pattern Pattern, neutralValue S) *Reader[S] {
	return &Reader[S]{pattern: pattern, neutralValue: neutralValue, received: received}
}

// Next fills out with requested mother-code symbols (len(out) symbols),
// depunctured. It returns the number of actually-received (non-punctured)
// symbols consumed this call, and an error if the received stream is
// exhausted before out is filled.
func (r *Reader[S]) Next(out []S) (int, error) {
	if len(r.pattern) == 0 {
		return 0, fmt.Errorf("puncture: empty pattern")
	}
	consumed := 0
	for i := range out {
		punctured := !r.pattern[r.patternIdx]
		if punctured {
			out[i] = r.neutralValue
		} else {
			if r.symbolIdx >= len(r.received) {
				return consumed, fmt.Errorf("puncture: received stream exhausted after %d symbols", r.symbolIdx)
			}
			out[i] = r.received[r.symbolIdx]
			r.symbolIdx++
			consumed++
		}
		r.patternIdx = (r.patternIdx + 1) % len(r.pattern)
	}
	return consumed, nil
}

// ReceivedConsumed returns how many channel symbols have been consumed so
// far (the caller's "index_punctured_symbol" cursor, spec.md section 4.6).
func (r *Reader[S]) ReceivedConsumed() int { return r.symbolIdx }

// EncodeBits mirrors the puncture encoder: given a stream of mother-code
// bits (as soft values already mapped to {low, high}), it appends only the
// non-punctured ones to out, advancing pattern by one position per input
// bit, and returns out.
func EncodeBits[S umetric.Signed](bits []S, pattern Pattern, out []S) []S {
	if len(pattern) == 0 {
		return out
	}
	patternIdx := 0
	for _, b := range bits {
		if pattern[patternIdx] {
			out = append(out, b)
		}
		patternIdx = (patternIdx + 1) % len(pattern)
	}
	return out
}
