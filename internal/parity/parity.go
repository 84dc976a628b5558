// Package parity holds the process-wide bit-count/parity lookup table used
// by the convolutional encoder and branch-table construction. It mirrors
// the original BitcountTable singleton (examples/utility/bitcount_table.h)
// but built lazily behind sync.Once the way the teacher repo builds its
// global, read-only lookup state (pkg/ysf/golay.go's generator tables).
package parity

import (
	"math/bits"
	"sync"
)

var (
	once       sync.Once
	bitCountOf [256]uint8
)

func build() {
	for i := 0; i < 256; i++ {
		bitCountOf[i] = uint8(bits.OnesCount8(uint8(i)))
	}
}

// BitCount returns the number of set bits in x.
func BitCount(x uint8) uint8 {
	once.Do(build)
	return bitCountOf[x]
}

// Parity returns 1 if x has an odd number of set bits, 0 otherwise. x may be
// any unsigned register width up to 64 bits; it is decomposed into bytes so
// the lookup table stays a single 256-entry byte array
// regardless of the caller's register type, matching the original
// template<T> BitcountTable::parse<T> byte-decomposition.
func Parity(x uint64) uint8 {
	once.Do(build)
	var count uint8
	for x != 0 {
		count += bitCountOf[byte(x)]
		x >>= 8
	}
	return count & 1
}
