/*
Package quickdecimal implements fast conversion of uint32 values to their
decimal ASCII representation.
It is specifically designed for hot serialization paths such as log lines,
wire formats and text-based protocols, where the division-based conversion
of the standard library is a measurable cost.

# Representation

The output is the canonical decimal representation of a value:

  - digits '0' through '9' only, most significant first.
  - no leading zeros, except for the value 0 which is written as "0".
  - no sign, no digit grouping and no terminator.

A uint32 value has at most [MaxLen] digits:

	| Value         | Digits |
	| ------------- | ------ |
	| 0             | 1      |
	| 99            | 2      |
	| 1000000000    | 10     |
	| 4294967295    | 10     |

# Algorithm

The conversion does not divide by 10.
Instead, every value is mapped to a 64-bit fixed-point accumulator
holding n / 10^k, where the unit of the accumulator is 2^57:

 1. The bit length of n+1 selects one of 33 precomputed scale entries.
    Each entry stores k, the number of digits that follow the leading
    one or two digits, and a prescale approximating 2^57 / 10^k.

 2. The accumulator is (n+1) multiplied by the prescale.
    If it reaches 10, the leading group has two digits and half of n is
    added to the accumulator to cancel the approximation error of the prescale.
    This correction is applied at most once.

 3. The integer part of the accumulator is the leading group.
    The fractional part is then repeatedly multiplied by 100, and each
    integer part that appears is written as a pair of digits from a
    precomputed table. A final multiplication by 10 produces the last digit
    when k is odd.

Each step is a multiplication, a shift or a mask.
At most 5 groups are extracted, regardless of the value.
The output was checked against [strconv.FormatUint] for all 2^32 inputs.

# Conversions

The package provides functions for converting values:

  - to bytes:
    [PutUint32], [AppendUint32].
  - to string:
    [FormatUint32], [Uint32.String], [Uint32.Format].
  - from string:
    [Parse], [Uint32.UnmarshalText], [Uint32.UnmarshalJSON].

[Len] returns the number of digits without writing them.

# Errors

All functions are pure and safe for concurrent use.
They never allocate, except for [FormatUint32], [AppendUint32] when the
destination must grow, and the [fmt] and [encoding] methods of [Uint32].

Errors are returned in the following cases:

  - Buffer too small.
    [PutUint32] checks the length of the destination before writing.
    If it is shorter than [Len](n), nothing is written and an error wrapping
    [ErrBufferTooSmall] is returned.
    A destination of at least [MaxLen] bytes never fails.

  - Invalid number.
    [Parse] returns an error for empty strings and for strings with
    characters other than decimal digits.

  - Overflow.
    [Parse] returns an error for values greater than 4294967295.
*/
package quickdecimal
