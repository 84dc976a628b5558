package decoder

import (
	"github.com/dbehnke/go-viterbi/internal/umetric"
	"golang.org/x/sys/cpu"
)

// selectEngine picks the fastest valid engine for numStates, probing CPU
// features the way go-leopard's leopard.go does at init() (cpu.X86.HasAVX2,
// cpu.X86.HasSSE3), and falling back to scalar when no wider vector is
// valid for this code's K (spec.md section 9's "Replicate with a
// cpu-feature probe ... defaulting to scalar").
func selectEngine[E umetric.Unsigned, S umetric.Signed](numStates uint) engine[E, S] {
	elemSize := umetric.SizeofUnsigned[E]()

	type candidate struct {
		available bool
		vecBytes  int
	}
	candidates := []candidate{
		{cpu.X86.HasAVX2, 32},
		{cpu.X86.HasSSE3, 16},
		{cpu.ARM64.HasASIMD, 16},
	}

	for _, c := range candidates {
		if !c.available {
			continue
		}
		width := c.vecBytes / elemSize
		if width <= 0 {
			continue
		}
		e := newSIMDEngine[E, S](width)
		if e.valid(numStates) {
			return e
		}
	}

	return newScalarEngine[E, S]()
}
