package quickdecimal

import (
	"bytes"
	"fmt"
)

// Uint32 is a uint32 value that formats itself with [AppendUint32].
// It plugs the encoder into [fmt], [encoding] and [encoding/json] without
// changing the representation of the value.
// The zero value is the number 0.
type Uint32 uint32

// String implements the [fmt.Stringer] interface and returns the decimal
// digits of u.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (u Uint32) String() string {
	return FormatUint32(uint32(u))
}

// AppendText implements the encoding.TextAppender interface.
// Also see method [Uint32.String].
func (u Uint32) AppendText(text []byte) ([]byte, error) {
	return AppendUint32(text, uint32(u)), nil
}

// MarshalText implements [encoding.TextMarshaler] interface.
// Also see method [Uint32.String].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (u Uint32) MarshalText() ([]byte, error) {
	return AppendUint32(make([]byte, 0, MaxLen), uint32(u)), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler] interface.
// Also see function [Parse].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (u *Uint32) UnmarshalText(text []byte) error {
	n, err := Parse(string(text))
	if err != nil {
		return err
	}
	*u = Uint32(n)
	return nil
}

// MarshalJSON implements [json.Marshaler] interface.
// The value is encoded as a JSON number.
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (u Uint32) MarshalJSON() ([]byte, error) {
	return u.MarshalText()
}

// UnmarshalJSON implements [json.Unmarshaler] interface.
// It accepts a JSON number or a JSON string holding decimal digits.
// A JSON null leaves the value unchanged.
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (u *Uint32) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	if len(data) >= 2 && data[0] == '"' && data[len(data)-1] == '"' {
		data = data[1 : len(data)-1]
	}
	return u.UnmarshalText(data)
}

// Format implements [fmt.Formatter] interface.
// The following [verbs] are available:
//
//	%d, %s, %v: 12345
//	%q:        "12345"
//
// Width is supported with the '-' and '0' flags.
// For the %d verb, precision sets the minimum number of digits.
// The '+' and ' ' flags are ignored, since the value has no sign.
//
// [verbs]: https://pkg.go.dev/fmt#Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (u Uint32) Format(state fmt.State, verb rune) {

	// Digits
	var digs [MaxLen]byte
	ndigs := putUint32(digs[:], uint32(u))

	// Minimum number of digits
	lzeroes := 0
	if verb == 'd' {
		if p, ok := state.Precision(); ok && p > ndigs {
			lzeroes = p - ndigs
		}
	}

	// Quotes
	lquote, tquote := 0, 0
	if verb == 'q' || verb == 'Q' {
		lquote, tquote = 1, 1
	}

	// Padding
	width := lquote + lzeroes + ndigs + tquote
	lspaces, tspaces := 0, 0
	if w, ok := state.Width(); ok && w > width {
		switch {
		case state.Flag('-'):
			tspaces = w - width
		case state.Flag('0'):
			lzeroes += w - width
		default:
			lspaces = w - width
		}
		width = w
	}

	// Writing buffer
	buf := make([]byte, 0, width)
	for i := 0; i < lspaces; i++ {
		buf = append(buf, ' ')
	}
	if lquote > 0 {
		buf = append(buf, '"')
	}
	for i := 0; i < lzeroes; i++ {
		buf = append(buf, '0')
	}
	buf = append(buf, digs[:ndigs]...)
	if tquote > 0 {
		buf = append(buf, '"')
	}
	for i := 0; i < tspaces; i++ {
		buf = append(buf, ' ')
	}

	// Writing result
	switch verb {
	case 'd', 'q', 'Q', 's', 'S', 'v', 'V':
		state.Write(buf)
	default:
		state.Write([]byte("%!"))
		state.Write([]byte{byte(verb)})
		state.Write([]byte("(quickdecimal.Uint32="))
		state.Write(buf)
		state.Write([]byte(")"))
	}
}
