// Package codes carries named convolutional-code presets and soft-decision
// profiles for the concrete end-to-end scenarios in spec.md section 8
// (Voyager, LTE, DAB Radio, CDMA IS-95A, Cassini, DAB punctured FIC). It
// exists so tests, `bench` and `cmd/viterbi-bench` all exercise the same
// code parameters and margin recommendations instead of each hand-rolling
// their own G polynomials.
package codes

import "github.com/dbehnke/go-viterbi/trellis"

// Preset names one of spec.md section 8's scenario codes: the (K, R, G)
// triple plus the recommended soft-decision bounds for the 8- and 16-bit
// metric profiles (spec.md section 6's recommended derivation takes low/high
// and R; it does not fix them, so a preset records the values this module
// tests and benchmarks against).
type Preset struct {
	Name string
	K    uint
	R    uint
	G    []uint

	// SoftLow16/SoftHigh16 are the soft-decision bounds used with a 16-bit
	// metric/symbol pairing (decoder.Config[uint16], soft type int16).
	SoftLow16, SoftHigh16 int16
	// SoftLow8/SoftHigh8 are the bounds used with an 8-bit pairing
	// (decoder.Config[uint8], soft type int8).
	SoftLow8, SoftHigh8 int8

	// ExcludeScalarU8 marks the known-bad scalar/8-bit metric pairing from
	// spec.md section 7 and SPEC_FULL.md section 7: Cassini's R=6 output
	// accumulates enough branch-metric headroom in the scalar engine's
	// plain (non-saturating) adds that an 8-bit metric can wrap before
	// renormalisation fires. Only pair this preset with a 16-bit metric.
	ExcludeScalarU8 bool
}

// Code builds the trellis.Code for this preset.
func (p Preset) Code() (trellis.Code, error) {
	return trellis.NewCode(p.K, p.R, p.G)
}

// Voyager is NASA's (7, 1/2) deep-space code (spec.md section 8, scenario 1).
var Voyager = Preset{
	Name:      "voyager",
	K:         7,
	R:         2,
	G:         []uint{109, 79},
	SoftLow16: 0, SoftHigh16: 255,
	SoftLow8: 0, SoftHigh8: 63,
}

// LTE is the 3GPP LTE (7, 1/3) tail-biting-capable mother code, used here in
// its terminated form (spec.md section 8, scenario 2).
var LTE = Preset{
	Name:      "lte",
	K:         7,
	R:         3,
	G:         []uint{91, 117, 121},
	SoftLow16: 0, SoftHigh16: 255,
	SoftLow8: 0, SoftHigh8: 63,
}

// DABRadio is the ETSI EN 300 401 DAB radio mother code (spec.md section 8,
// scenario 3), shared with the punctured FIC scenario (6) via the puncture
// adapter.
var DABRadio = Preset{
	Name:      "dab_radio",
	K:         7,
	R:         4,
	G:         []uint{109, 79, 83, 109},
	SoftLow16: 0, SoftHigh16: 255,
	SoftLow8: 0, SoftHigh8: 63,
}

// CDMAIS95A is the IS-95A reverse-link (9, 1/2) code (spec.md section 8,
// scenario 4).
var CDMAIS95A = Preset{
	Name:      "cdma_is95a",
	K:         9,
	R:         2,
	G:         []uint{491, 369},
	SoftLow16: 0, SoftHigh16: 255,
	SoftLow8: 0, SoftHigh8: 63,
}

// Cassini is the Cassini/Mariner deep-space (15, 1/6) code (spec.md section
// 8, scenario 5): the largest constraint length in the test matrix, and the
// one pairing excluded from the scalar/8-bit metric combination.
var Cassini = Preset{
	Name:      "cassini",
	K:         15,
	R:         6,
	G:         []uint{17817, 20133, 23879, 30451, 32439, 26975},
	SoftLow16: 0, SoftHigh16: 255,
	SoftLow8: 0, SoftHigh8: 63,
	ExcludeScalarU8: true,
}

// DABFIC is the DABRadio mother code used by the punctured Fast Information
// Channel scenario (spec.md section 8 scenario 6). This package carries only
// the code parameters; it holds no puncture pattern tables.
var DABFIC = DABRadio

// All lists every named scenario preset in spec.md section 8's table order.
var All = []Preset{Voyager, LTE, DABRadio, CDMAIS95A, Cassini, DABFIC}

// HardDecisionMargin is the recommended margin multiplier for an 8-bit
// hard-decision metric profile (SPEC_FULL.md section 12, `m=3`, matching
// decoder.MarginHardU8).
const HardDecisionMargin = 3

// HardLow and HardHigh are the hard-decision symbol bounds: a bit maps to
// -1 or +1 so inverting a hard symbol is a sign flip rather than a
// magnitude change (original_source's add_binary_noise negates
// the sample outright).
const (
	HardLow  int8 = -1
	HardHigh int8 = 1
)
