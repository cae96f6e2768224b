// Package hexdump converts between raw bytes and the whitespace-insensitive
// hex dump text the CLI reads and writes. Malformed hex is reported here and
// never reaches the message codec.
package hexdump

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
)

var ErrOddLength = errors.New("hexdump: odd number of hex digits")

// Parse reads an entire hex dump, ignoring spaces, tabs, and line breaks,
// and returns the decoded bytes.
func Parse(r io.Reader) ([]byte, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	digits := make([]byte, 0, len(raw))
	for _, c := range raw {
		switch c {
		case ' ', '\t', '\r', '\n':
		default:
			digits = append(digits, c)
		}
	}
	if len(digits)%2 != 0 {
		return nil, ErrOddLength
	}
	out := make([]byte, len(digits)/2)
	if _, err := hex.Decode(out, digits); err != nil {
		return nil, fmt.Errorf("hexdump: %w", err)
	}
	return out, nil
}

// Dump writes bytes as space-separated lowercase hex pairs, 16 per line.
func Dump(w io.Writer, b []byte) error {
	for len(b) > 0 {
		n := len(b)
		if n > 16 {
			n = 16
		}
		if _, err := fmt.Fprintf(w, "% x\n", b[:n]); err != nil {
			return err
		}
		b = b[n:]
	}
	return nil
}
