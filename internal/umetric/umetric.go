// Package umetric defines the numeric type constraints shared by the trellis,
// encoding and decoder packages: unsigned error-metric types and signed
// soft-decision symbol types, plus small saturating helpers the portable SIMD
// ACS engine uses to emulate what SIMD hardware does natively (the scalar
// engine uses plain unsigned arithmetic).
package umetric

import "golang.org/x/exp/constraints"

// Unsigned is the set of metric element types the decoder core supports.
// The spec restricts this to 8- and 16-bit widths; wider types would never
// saturate in practice and narrower types can't hold a useful dynamic range.
type Unsigned interface {
	~uint8 | ~uint16
}

// Signed is the set of soft-decision symbol types.
type Signed interface {
	~int8 | ~int16
}

// AbsDiff returns |a-b| widened into the unsigned metric type E. Soft values
// live in S (8 or 16 bit signed); the subtraction is always done in a range
// that cannot overflow S since callers keep soft values within the branch
// table's configured [low, high] bounds.
func AbsDiff[E Unsigned, S Signed](a, b S) E {
	d := a - b
	if d < 0 {
		d = -d
	}
	return E(d)
}

// SatAdd adds two metrics with saturation at the type's maximum, emulating
// what SIMD saturating-add instructions do in hardware (spec.md 4.4).
func SatAdd[E Unsigned](a, b E) E {
	sum := a + b
	if sum < a {
		return maxOf[E]()
	}
	return sum
}

// SatSub subtracts with saturation at zero.
func SatSub[E Unsigned](a, b E) E {
	if b > a {
		return 0
	}
	return a - b
}

func maxOf[E Unsigned]() E {
	var zero E
	return zero - 1
}

// MaxValue returns the maximum representable value of E.
func MaxValue[E Unsigned]() E {
	return maxOf[E]()
}

// Ordered is re-exported for packages that need a generic min/max over
// metric-like values without importing constraints directly.
type Ordered = constraints.Ordered

// Min returns the smaller of a, b.
func Min[T constraints.Ordered](a, b T) T {
	if a < b {
		return a
	}
	return b
}

// SizeofUnsigned returns the width in bytes of E (1 for uint8, 2 for uint16).
func SizeofUnsigned[E Unsigned]() int {
	switch any(E(0)).(type) {
	case uint8:
		return 1
	case uint16:
		return 2
	default:
		return 1
	}
}
