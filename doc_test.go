package quickdecimal_test

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/potswa/quickdecimal"
)

// This example builds a log line in a reusable buffer without allocating
// a string for every number.
func Example_logLine() {
	buf := make([]byte, 0, 64)
	buf = append(buf, "status="...)
	buf = quickdecimal.AppendUint32(buf, 200)
	buf = append(buf, " bytes="...)
	buf = quickdecimal.AppendUint32(buf, 1_048_576)
	buf = append(buf, " elapsed_us="...)
	buf = quickdecimal.AppendUint32(buf, 907)
	buf = append(buf, '\n')
	os.Stdout.Write(buf)
	// Output: status=200 bytes=1048576 elapsed_us=907
}

func ExamplePutUint32() {
	var buf [quickdecimal.MaxLen]byte
	n, err := quickdecimal.PutUint32(buf[:], 4_294_967_295)
	fmt.Println(string(buf[:n]), n, err)
	// Output: 4294967295 10 <nil>
}

func ExamplePutUint32_tooSmall() {
	buf := make([]byte, 3)
	_, err := quickdecimal.PutUint32(buf, 12345)
	fmt.Println(err)
	// Output: writing 12345: need 5 byte(s), have 3: buffer too small
}

func ExampleMustPutUint32() {
	buf := make([]byte, 8)
	n := quickdecimal.MustPutUint32(buf, 31337)
	fmt.Println(string(buf[:n]))
	// Output: 31337
}

func ExampleAppendUint32() {
	b := []byte("uint32:")
	b = quickdecimal.AppendUint32(b, 42)
	fmt.Println(string(b))
	// Output: uint32:42
}

func ExampleFormatUint32() {
	fmt.Println(quickdecimal.FormatUint32(0))
	fmt.Println(quickdecimal.FormatUint32(999_999_999))
	fmt.Println(quickdecimal.FormatUint32(1_000_000_000))
	// Output:
	// 0
	// 999999999
	// 1000000000
}

func ExampleLen() {
	fmt.Println(quickdecimal.Len(0))
	fmt.Println(quickdecimal.Len(99))
	fmt.Println(quickdecimal.Len(100))
	fmt.Println(quickdecimal.Len(4_294_967_295))
	// Output:
	// 1
	// 2
	// 3
	// 10
}

func ExampleParse() {
	fmt.Println(quickdecimal.Parse("0042"))
	fmt.Println(quickdecimal.Parse("4294967296"))
	// Output:
	// 42 <nil>
	// 0 parsing "4294967296": number out of range
}

func ExampleMustParse() {
	n := quickdecimal.MustParse("1234567890")
	fmt.Println(n)
	// Output: 1234567890
}

func ExampleUint32_String() {
	u := quickdecimal.Uint32(1234567890)
	fmt.Println(u.String())
	// Output: 1234567890
}

func ExampleUint32_Format() {
	u := quickdecimal.Uint32(42)
	fmt.Printf("%v\n", u)
	fmt.Printf("%q\n", u)
	fmt.Printf("[%6d]\n", u)
	fmt.Printf("[%-6d]\n", u)
	fmt.Printf("[%06d]\n", u)
	fmt.Printf("%x\n", u)
	// Output:
	// 42
	// "42"
	// [    42]
	// [42    ]
	// [000042]
	// %!x(quickdecimal.Uint32=42)
}

func ExampleUint32_MarshalJSON() {
	type Event struct {
		ID   quickdecimal.Uint32 `json:"id"`
		Size quickdecimal.Uint32 `json:"size"`
	}
	data, _ := json.Marshal(Event{ID: 7, Size: 65536})
	fmt.Println(string(data))
	// Output: {"id":7,"size":65536}
}

func ExampleUint32_UnmarshalJSON() {
	var u quickdecimal.Uint32
	err := json.Unmarshal([]byte(`"123"`), &u)
	fmt.Println(u, err)
	// Output: 123 <nil>
}
