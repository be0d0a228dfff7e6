package quickdecimal

import "fmt"

// MustPutUint32 is like [PutUint32] but panics if dst is too small.
func MustPutUint32(dst []byte, n uint32) int {
	i, err := PutUint32(dst, n)
	if err != nil {
		panic(fmt.Sprintf("MustPutUint32(%v) failed: %v", n, err))
	}
	return i
}

// MustParse is like [Parse] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding numbers.
func MustParse(num string) uint32 {
	n, err := Parse(num)
	if err != nil {
		panic(fmt.Sprintf("MustParse(%q) failed: %v", num, err))
	}
	return n
}
