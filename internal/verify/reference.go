package verify

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cockroachdb/apd/v3"
)

// Reference is a trusted decimal conversion the encoder is compared with.
type Reference interface {
	// Name identifies the reference in reports and configuration.
	Name() string
	// Append appends the decimal digits of n to dst.
	Append(dst []byte, n uint32) []byte
}

// Strconv is the reference implemented by [strconv.AppendUint].
type Strconv struct{}

func (Strconv) Name() string { return "strconv" }

func (Strconv) Append(dst []byte, n uint32) []byte {
	return strconv.AppendUint(dst, uint64(n), 10)
}

// APD is the reference implemented by arbitrary-precision decimals
// of github.com/cockroachdb/apd.
// It allocates on every call and is much slower than the other references.
type APD struct{}

func (APD) Name() string { return "apd" }

func (APD) Append(dst []byte, n uint32) []byte {
	d := apd.New(int64(n), 0)
	return append(dst, d.Text('f')...)
}

// Division is the textbook reference that divides by 10 for every digit.
type Division struct{}

func (Division) Name() string { return "division" }

func (Division) Append(dst []byte, n uint32) []byte {
	var (
		buf [10]byte
		pos int
	)

	pos = len(buf) - 1
	for {
		buf[pos] = byte(n%10) + '0'
		n /= 10
		if n == 0 {
			break
		}
		pos--
	}

	return append(dst, buf[pos:]...)
}

var references = []Reference{Strconv{}, APD{}, Division{}}

// ReferenceNames returns the names accepted by [ReferenceByName].
func ReferenceNames() []string {
	names := make([]string, len(references))
	for i, r := range references {
		names[i] = r.Name()
	}
	return names
}

// ReferenceByName returns the reference with the given name.
func ReferenceByName(name string) (Reference, error) {
	for _, r := range references {
		if r.Name() == name {
			return r, nil
		}
	}
	return nil, fmt.Errorf("reference %q, want one of %v: %w", name, strings.Join(ReferenceNames(), ", "), errUnknownReference)
}

// ReferencesByName resolves a list of reference names.
func ReferencesByName(names []string) ([]Reference, error) {
	refs := make([]Reference, 0, len(names))
	for _, name := range names {
		r, err := ReferenceByName(name)
		if err != nil {
			return nil, err
		}
		refs = append(refs, r)
	}
	return refs, nil
}
