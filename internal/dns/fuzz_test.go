package dns

import (
	"io"
	"testing"
)

func FuzzDecodeName(f *testing.F) {
	f.Add([]byte{3, 'w', 'w', 'w', 7, 'e', 'x', 'a', 'm', 'p', 'l', 'e', 3, 'c', 'o', 'm', 0})
	f.Add([]byte{0xC0, 0x00})
	f.Fuzz(func(t *testing.T, data []byte) {
		c := NewCursor(data)
		_, _ = DecodeName(c, NewDecompress())
	})
}

func FuzzDecodeMessage(f *testing.F) {
	f.Add([]byte(sampleMessage))
	f.Add(make([]byte, HeaderLen))
	f.Fuzz(func(t *testing.T, data []byte) {
		msg, err := DecodeMessage(data, NewDecompress(), DefaultLimits())
		if err != nil {
			return
		}
		// Whatever decodes must also render.
		if err := Render(io.Discard, msg); err != nil {
			t.Fatalf("render after successful decode: %v", err)
		}
	})
}
