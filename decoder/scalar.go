package decoder

import (
	"github.com/dbehnke/go-viterbi/internal/umetric"
	"github.com/dbehnke/go-viterbi/trellis"
)

// scalarEngine is the reference add-compare-select implementation: one
// trellis state pair at a time, plain unsigned arithmetic. It is valid for
// any K >= 2 (spec.md section 3's only scalar invariant), and is what every
// SIMD variant is cross-checked against (spec.md section 8, invariant 2).
//
// Grounded in original_source/src/viterbi/viterbi_decoder_scalar.h's bfly():
// the metric type's native '+' is used directly rather than an explicit
// saturating add, relying on the renormalisation threshold headroom to keep
// values away from overflow for every code in the supported test matrix
// except scalar-u8/R=6 (spec.md section 7, documented as excluded).
type scalarEngine[E umetric.Unsigned, S umetric.Signed] struct{}

func newScalarEngine[E umetric.Unsigned, S umetric.Signed]() *scalarEngine[E, S] {
	return &scalarEngine[E, S]{}
}

func (s *scalarEngine[E, S]) name() string { return "scalar" }

func (s *scalarEngine[E, S]) valid(numStates uint) bool {
	return numStates >= 2
}

func (s *scalarEngine[E, S]) butterfly(bt *trellis.BranchTable[S], cfg Config[E], symbols []S, old, newm []E, decision []uint64) {
	half := len(old) / 2
	r := bt.Code.R

	for state := 0; state < half; state++ {
		var total E
		for i := uint(0); i < r; i++ {
			total += umetric.AbsDiff[E, S](bt.Row(i)[state], symbols[i])
		}
		inverse := cfg.SoftDecisionMaxError - total

		e00 := old[state] + total
		e10 := old[state+half] + inverse
		e01 := old[state] + inverse
		e11 := old[state+half] + total

		next0 := uint(state << 1)
		next1 := next0 | 1

		if e00 > e10 {
			newm[next0] = e10
			packDecision(decision, next0, 1)
		} else {
			newm[next0] = e00
		}

		if e01 > e11 {
			newm[next1] = e11
			packDecision(decision, next1, 1)
		} else {
			newm[next1] = e01
		}
	}
}
