package trellis

import (
	"fmt"

	"github.com/dbehnke/go-viterbi/internal/parity"
	"github.com/dbehnke/go-viterbi/internal/umetric"
)

// DefaultAlignmentBytes matches the original decoder's 32-byte alignment
// (generous enough for AVX2 256-bit loads); see viterbi_decoder_scalar.h's
// `metrics(2*METRIC_LENGTH, 32u)`.
const DefaultAlignmentBytes = 32

// BranchTable is the R x (NumStates/2) matrix of expected soft-symbol values
// described in spec.md section 3/4.2. It is immutable after construction and
// safe to share by reference across decoder instances and goroutines
// (spec.md section 5).
type BranchTable[S umetric.Signed] struct {
	Code Code

	SoftLow  S
	SoftHigh S

	stride int // elements per row, padded for SIMD alignment
	buf     []S // Code.R rows of `stride` elements each
}

// NewBranchTable builds the branch table for code under the given soft
// decision bounds, aligned to alignBytes (0 selects DefaultAlignmentBytes).
func NewBranchTable[S umetric.Signed](code Code, softLow, softHigh S, alignBytes int) (*BranchTable[S], error) {
	if softHigh <= softLow {
		return nil, fmt.Errorf("trellis: soft_decision_high (%d) must be > soft_decision_low (%d)", softHigh, softLow)
	}
	if alignBytes <= 0 {
		alignBytes = DefaultAlignmentBytes
	}
	half := int(code.NumStates() / 2)
	if half == 0 {
		half = 1
	}

	var zero S
	elemSize := sizeofSigned(zero)
	alignElems := alignBytes / elemSize
	if alignElems == 0 {
		alignElems = 1
	}
	stride := ((half + alignElems - 1) / alignElems) * alignElems

	bt := &BranchTable[S]{
		Code:     code,
		SoftLow:  softLow,
		SoftHigh: softHigh,
		stride:   stride,
		buf:      make([]S, int(code.R)*stride),
	}

	for s := 0; s < half; s++ {
		register := uint(s) << 1
		for i := uint(0); i < code.R; i++ {
			syn := parity.Parity(uint64(code.G[i]) & uint64(register))
			v := softLow
			if syn == 1 {
				v = softHigh
			}
			bt.buf[int(i)*stride+s] = v
		}
	}
	return bt, nil
}

// Row returns the stored "even next-state" half of output i's row, length
// NumStates/2. The caller derives the odd half via butterfly inversion
// (max_error - total_error), per spec.md section 3.
func (bt *BranchTable[S]) Row(i uint) []S {
	off := int(i) * bt.stride
	half := int(bt.Code.NumStates() / 2)
	if half == 0 {
		half = 1
	}
	return bt.buf[off : off+half]
}

// Stride is the padded, SIMD-aligned row length (>= NumStates/2 elements).
func (bt *BranchTable[S]) Stride() int {
	return bt.stride
}

func sizeofSigned[S umetric.Signed](_ S) int {
	switch any(S(0)).(type) {
	case int8:
		return 1
	case int16:
		return 2
	default:
		return 1
	}
}
