package dns

import (
	"encoding/binary"
	"strconv"
	"strings"

	"golang.org/x/net/idna"
)

const MaxMessageSize = 4096

// BuildQuery constructs a single-question query message with RD set. The
// name is IDNA-encoded first, so Unicode names go out in punycode form.
func BuildQuery(id uint16, name string, qtype, qclass uint16) ([]byte, error) {
	if name != "" && name != "." {
		punyName, err := idna.Lookup.ToASCII(strings.TrimSuffix(name, "."))
		if err != nil {
			return nil, err
		}
		name = punyName
	}

	buf := make([]byte, MaxMessageSize)
	binary.BigEndian.PutUint16(buf[0:2], id)
	binary.BigEndian.PutUint16(buf[2:4], FlagRD)
	binary.BigEndian.PutUint16(buf[4:6], 1)

	off, err := EncodeName(buf, HeaderLen, name)
	if err != nil {
		return nil, err
	}
	if off+4 > len(buf) {
		return nil, ErrTruncated
	}
	binary.BigEndian.PutUint16(buf[off:off+2], qtype)
	binary.BigEndian.PutUint16(buf[off+2:off+4], qclass)
	return buf[:off+4], nil
}

// TypeValue parses a type mnemonic, a TYPE%d form, or a bare number.
func TypeValue(s string) (uint16, bool) {
	return textValue(s, typeText, "TYPE")
}

// ClassValue parses a class mnemonic, a CLASS%d form, or a bare number.
func ClassValue(s string) (uint16, bool) {
	return textValue(s, classText, "CLASS")
}

func textValue(s string, mnemonics map[uint16]string, prefix string) (uint16, bool) {
	s = strings.ToUpper(strings.TrimSpace(s))
	for v, text := range mnemonics {
		if s == text {
			return v, true
		}
	}
	s = strings.TrimPrefix(s, prefix)
	n, err := strconv.ParseUint(s, 10, 16)
	if err != nil {
		return 0, false
	}
	return uint16(n), true
}
