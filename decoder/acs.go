package decoder

import (
	"github.com/dbehnke/go-viterbi/internal/umetric"
	"github.com/dbehnke/go-viterbi/trellis"
)

// engine is the add-compare-select "butterfly" forward pass (spec.md section
// 4.4), parameterised by metric type E and soft-symbol type S. Scalar and
// SIMD variants implement this over the same Core metric and decision
// buffers.
type engine[E umetric.Unsigned, S umetric.Signed] interface {
	// name identifies the engine for logging/benchmark labelling.
	name() string

	// valid reports whether this engine can be used for a code with the
	// given number of trellis states (spec.md 4.4.2's K >= K_min(variant)).
	valid(numStates uint) bool

	// butterfly processes one decoded bit's worth of R input symbols,
	// reading old and writing new (both length numStates), and ORs the
	// decision bits for this step into decision (see packDecision).
	butterfly(bt *trellis.BranchTable[S], cfg Config[E], symbols []S, old, newm []E, decision []uint64)
}

func wordsPerStep(numStates uint) int {
	return int((numStates + 63) / 64)
}

func packDecision(decision []uint64, nextState uint, bit uint64) {
	decision[nextState/64] |= bit << (nextState % 64)
}

func unpackDecision(decision []uint64, nextState uint) uint64 {
	return (decision[nextState/64] >> (nextState % 64)) & 1
}
