// Package verify checks the quickdecimal encoder against trusted decimal
// conversions, value by value.
//
// [Run] covers an arbitrary sub-range of the uint32 domain with a pool of
// workers and can check all 2^32 values in a few minutes on a laptop.
// [Boundaries] lists the values next to power-of-ten and bit-length
// crossings, where an approximation error would show first.
package verify
