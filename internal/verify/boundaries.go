package verify

import (
	"math"
	"slices"
)

// Boundaries returns the values where the encoder is most likely to fail,
// sorted and without duplicates:
//
//   - both sides of every power-of-ten crossing, 10^k-1 and 10^k.
//   - both sides of every bucket of the order table, 2^b-2 and 2^b-1,
//     and 2^b itself.
//   - 0 and 4294967295.
func Boundaries() []uint32 {
	values := []uint32{0, math.MaxUint32}
	for p := uint64(10); p <= math.MaxUint32; p *= 10 {
		values = append(values, uint32(p-1), uint32(p))
	}
	for b := 1; b <= 32; b++ {
		p := uint64(1) << b
		values = append(values, uint32(p-2), uint32(p-1))
		if p <= math.MaxUint32 {
			values = append(values, uint32(p))
		}
	}
	slices.Sort(values)
	return slices.Compact(values)
}

// Neighbourhood returns the values within radius of each of values,
// clamped to the uint32 range, sorted and without duplicates.
func Neighbourhood(values []uint32, radius uint32) []uint32 {
	var out []uint32
	for _, v := range values {
		lo := uint64(v) - min(uint64(v), uint64(radius))
		hi := min(uint64(v)+uint64(radius), math.MaxUint32)
		for n := lo; n <= hi; n++ {
			out = append(out, uint32(n))
		}
	}
	slices.Sort(out)
	return slices.Compact(out)
}
