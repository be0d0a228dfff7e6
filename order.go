package quickdecimal

import "math/bits"

const (
	// unit is the fixed-point one of the accumulator.
	// It is small enough that any accumulator below unit can be multiplied
	// by 100 without overflowing 64 bits.
	unit = 1 << 57
	mask = unit - 1

	// tens is the accumulator value of the fraction 10.
	// An accumulator at or above tens starts with a two-digit group.
	tens = 10 * unit
)

// order is a scale entry selected by the bit length of n+1.
type order struct {
	digits   int    // number of digits following the leading one or two digits
	prescale uint64 // round(unit / 10^digits) - 1
}

// orders maps x = bits.LeadingZeros64(n+1) - 31 to a scale entry.
// Entry x covers n+1 in [2^(32-x), 2^(33-x)), which never spans more than one
// power of ten, so the leading group of n / 10^digits is either one or two digits.
// The prescale is rounded so that (n+1) * prescale + correction stays inside
// [n * unit / 10^digits, (n+1) * unit / 10^digits) for every n in the bucket.
var orders = [33]order{
	{8, 1_441_151_880},           // exactly 2^32-1
	{8, 1_441_151_880},           // up to 4G
	{8, 1_441_151_880},           // up to 2G
	{8, 1_441_151_880},           // up to 1G
	{7, 14_411_518_807},          // up to 512M
	{7, 14_411_518_807},          // up to 256M
	{7, 14_411_518_807},          // up to 128M
	{6, 144_115_188_075},         // up to 64M
	{6, 144_115_188_075},         // up to 32M
	{6, 144_115_188_075},         // up to 16M
	{5, 1_441_151_880_758},       // up to 8M
	{5, 1_441_151_880_758},       // up to 4M
	{5, 1_441_151_880_758},       // up to 2M
	{5, 1_441_151_880_758},       // up to 1M
	{4, 14_411_518_807_585},      // up to 512k
	{4, 14_411_518_807_585},      // up to 256k
	{4, 14_411_518_807_585},      // up to 128k
	{3, 144_115_188_075_855},     // up to 64k
	{3, 144_115_188_075_855},     // up to 32k
	{3, 144_115_188_075_855},     // up to 16k
	{2, 1_441_151_880_758_558},   // up to 8k
	{2, 1_441_151_880_758_558},   // up to 4k
	{2, 1_441_151_880_758_558},   // up to 2k
	{2, 1_441_151_880_758_558},   // up to 1k
	{1, 14_411_518_807_585_586},  // up to 510
	{1, 14_411_518_807_585_586},  // up to 254
	{1, 14_411_518_807_585_586},  // up to 126
	{0, 144_115_188_075_855_871}, // up to 62
	{0, 144_115_188_075_855_871}, // up to 30
	{0, 144_115_188_075_855_871}, // up to 14
	{0, 144_115_188_075_855_871}, // up to 6
	{0, 144_115_188_075_855_871}, // up to 2
	{0, 0},                       // zero, printed as a single digit
}

// scale returns the prescaled accumulator of n together with its scale entry.
// The accumulator is not corrected yet, see [putUint32].
func scale(n uint32) (frac uint64, o order) {
	frac = uint64(n) + 1
	o = orders[bits.LeadingZeros64(frac)-31]
	return frac * o.prescale, o
}

// Len returns the number of decimal digits of n.
// It is 1 for 0 and floor(log10(n)) + 1 otherwise.
func Len(n uint32) int {
	frac, o := scale(n)
	if frac >= tens {
		return o.digits + 2
	}
	return o.digits + 1
}
