package quickdecimal

// smallsString holds the two-digit representations of 0 through 99, back to back.
const smallsString = "00010203040506070809" +
	"10111213141516171819" +
	"20212223242526272829" +
	"30313233343536373839" +
	"40414243444546474849" +
	"50515253545556575859" +
	"60616263646566676869" +
	"70717273747576777879" +
	"80818283848586878889" +
	"90919293949596979899"

// put2Digits writes the two digits of k at buf[i] and buf[i+1].
// k should be in the range [0, 99].
func put2Digits(buf []byte, i int, k uint64) {
	buf[i+0] = smallsString[k*2+0]
	buf[i+1] = smallsString[k*2+1]
}
