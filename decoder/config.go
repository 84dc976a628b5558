package decoder

import "github.com/dbehnke/go-viterbi/internal/umetric"

// Config is the decoder configuration record from spec.md section 6:
// the soft-decision max error, the two initial metric values, and the
// renormalisation threshold. It is consumed at Core construction and never
// changes for the lifetime of a decoder.
type Config[E umetric.Unsigned] struct {
	SoftDecisionMaxError     E
	InitialStartError        E
	InitialNonStartError     E
	RenormalisationThreshold E
}

// MarginMultiplier is the `m` recommended-derivation factor from spec.md
// section 6, keyed by (metric width, decision kind).
type MarginMultiplier float64

const (
	// MarginSoftU16 is the recommended margin for 16-bit soft metrics.
	MarginSoftU16 MarginMultiplier = 5
	// MarginSoftU8 is the recommended margin for 8-bit soft metrics.
	MarginSoftU8 MarginMultiplier = 2
	// MarginHardU8 is the recommended margin for 8-bit hard-decision metrics.
	MarginHardU8 MarginMultiplier = 3
)

// DeriveConfig implements spec.md section 6's recommended derivations:
//
//	max_error = (high - low) * R
//	error_margin = max_error * m
//	initial_start_error = min(T)
//	initial_non_start_error = initial_start_error + error_margin
//	renormalisation_threshold = max(T) - error_margin
func DeriveConfig[E umetric.Unsigned, S umetric.Signed](low, high S, rate uint, m MarginMultiplier) Config[E] {
	maxError := E(int64(high-low) * int64(rate))
	margin := E(float64(maxError) * float64(m))
	start := E(0)
	return Config[E]{
		SoftDecisionMaxError:     maxError,
		InitialStartError:        start,
		InitialNonStartError:     start + margin,
		RenormalisationThreshold: umetric.MaxValue[E]() - margin,
	}
}
