package quickdecimal

import (
	"errors"
	"fmt"
)

// MaxLen is the maximum number of decimal digits of a uint32 value.
// A buffer of MaxLen bytes is always large enough for [PutUint32].
const MaxLen = 10

// ErrBufferTooSmall is returned by [PutUint32] when the destination cannot
// hold all digits of the value.
var ErrBufferTooSmall = errors.New("buffer too small")

// PutUint32 writes the decimal digits of n at the beginning of dst and
// returns the number of bytes written.
// The digits are minimal: there is no leading zero unless n is 0, in which
// case the single byte '0' is written.
//
// If dst is shorter than [Len](n), PutUint32 writes nothing and returns an
// error wrapping [ErrBufferTooSmall].
func PutUint32(dst []byte, n uint32) (int, error) {
	if len(dst) < MaxLen {
		if l := Len(n); len(dst) < l {
			return 0, fmt.Errorf("writing %v: need %v byte(s), have %v: %w", n, l, len(dst), ErrBufferTooSmall)
		}
	}
	return putUint32(dst, n), nil
}

// AppendUint32 appends the decimal digits of n to dst and returns the
// extended buffer.
func AppendUint32(dst []byte, n uint32) []byte {
	var buf [MaxLen]byte
	i := putUint32(buf[:], n)
	return append(dst, buf[:i]...)
}

// FormatUint32 returns the decimal digits of n.
func FormatUint32(n uint32) string {
	var buf [MaxLen]byte
	i := putUint32(buf[:], n)
	return string(buf[:i])
}

// putUint32 writes the decimal digits of n at buf[0:] and returns the index
// immediately past the last digit.
// The caller guarantees that buf has room for [Len](n) bytes.
//
// The digits are read off a fixed-point accumulator approximating
// n / 10^digits in units of 2^-57.
// The integer part of the accumulator is the leading group of one or two
// digits, and every multiplication of the fractional part by 100 (or 10)
// shifts the next pair (or digit) into the integer part.
func putUint32(buf []byte, n uint32) int {
	frac, o := scale(n)

	// Leading group
	var i int
	if frac >= tens {
		// The prescale error grows with n and can reach the last digit
		// of 10-digit values, so half of n is added back before the first pair.
		frac += uint64(n / 2)
		put2Digits(buf, 0, frac>>57)
		i = 2
	} else {
		buf[0] = byte(frac>>57) + '0'
		i = 1
	}

	// Pairs
	k := o.digits
	for ; k > 1; k -= 2 {
		frac = (frac & mask) * 100
		put2Digits(buf, i, frac>>57)
		i += 2
	}

	// Odd digit
	if k == 1 {
		frac = (frac & mask) * 10
		buf[i] = byte(frac>>57) + '0'
		i++
	}

	return i
}
