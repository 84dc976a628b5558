// Package trellis holds the convolutional code parameters (K, R, G) and the
// branch metric table derived from them (spec.md section 3 and 4.2).
package trellis

import "fmt"

// Code describes a rate-1/R convolutional code of constraint length K with
// generator polynomials G. K and R are runtime fields rather than
// compile-time constants (see SPEC_FULL.md section 9: a faithful
// re-implementation may size buffers at runtime instead of specialising a
// distinct decoder type per (K, R)).
type Code struct {
	K uint   // constraint length, 2 <= K <= 15
	R uint   // output rate, R >= 1
	G []uint // R generator polynomials, each a K-bit tap mask
}

// NewCode validates and constructs a Code. Each polynomial in g is masked to
// its low K bits; a zero-valued polynomial after masking is rejected since it
// can never contribute a dependent output bit.
func NewCode(k, r uint, g []uint) (Code, error) {
	if k < 2 || k > 15 {
		return Code{}, fmt.Errorf("trellis: constraint length K=%d out of supported range [2,15]", k)
	}
	if r < 1 {
		return Code{}, fmt.Errorf("trellis: rate R=%d must be >= 1", r)
	}
	if uint(len(g)) != r {
		return Code{}, fmt.Errorf("trellis: expected %d generator polynomials, got %d", r, len(g))
	}
	mask := (uint(1) << k) - 1
	masked := make([]uint, r)
	for i, gi := range g {
		m := gi & mask
		if m == 0 {
			return Code{}, fmt.Errorf("trellis: generator polynomial %d is zero after masking to K=%d bits", i, k)
		}
		masked[i] = m
	}
	return Code{K: k, R: r, G: masked}, nil
}

// NumStates returns 2^(K-1), the number of trellis states.
func (c Code) NumStates() uint {
	return uint(1) << (c.K - 1)
}

// TailBits returns K-1, the number of termination bits appended to flush the
// shift register back to state 0.
func (c Code) TailBits() uint {
	return c.K - 1
}

// AlignShifts implements spec.md section 4.5's align_shifts(K-1): returns the
// (add, sub) bit shifts chainback uses to pack the reconstructed state into
// output bytes.
func (c Code) AlignShifts() (add, sub uint) {
	m := c.TailBits()
	switch {
	case m < 8:
		return 8 - m, 0
	case m > 8:
		return 0, m - 8
	default:
		return 0, 0
	}
}
