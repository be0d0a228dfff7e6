package quickdecimal

import (
	"errors"
	"fmt"
	"math"
)

var (
	errInvalidNumber = errors.New("invalid number")
	errOutOfRange    = errors.New("number out of range")
)

// Parse converts a string of decimal digits to a uint32 value.
// It is the inverse of [FormatUint32].
// The following syntax is supported:
//
//	digits ::= { '0' | '1' | '2' | '3' | '4' | '5' | '6' | '7' | '8' | '9' }
//
// Leading zeros are accepted and ignored.
// Signs, spaces and digit separators are not.
//
// Parse returns error:
//   - if string does not consist of at least one decimal digit.
//   - if the value is greater than [math.MaxUint32].
func Parse(num string) (uint32, error) {
	var (
		pos   int
		width int
		n     uint64
	)

	width = len(num)

	for pos < width && num[pos] >= '0' && num[pos] <= '9' {
		n = n*10 + uint64(num[pos]-'0')
		if n > math.MaxUint32 {
			return 0, fmt.Errorf("parsing %q: %w", num, errOutOfRange)
		}
		pos++
	}

	if pos != width {
		return 0, fmt.Errorf("invalid character %q: %w", num[pos], errInvalidNumber)
	}
	if width == 0 {
		return 0, fmt.Errorf("no digits: %w", errInvalidNumber)
	}

	return uint32(n), nil
}
