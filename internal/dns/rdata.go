package dns

import (
	"encoding/hex"
	"errors"
	"fmt"
	"net"
	"strings"
)

const (
	TypeA     uint16 = 1
	TypeNS    uint16 = 2
	TypeCNAME uint16 = 5
	TypeSOA   uint16 = 6
	TypeMX    uint16 = 15
	TypeTXT   uint16 = 16
	TypeAAAA  uint16 = 28

	ClassIN uint16 = 1
	ClassCH uint16 = 3
	ClassHS uint16 = 4
)

// Rdata is one decoded record payload. Text returns the presentation form of
// the payload alone, without owner name, TTL, class, or type.
type Rdata interface {
	Text() string
}

type RdataA struct {
	Addr net.IP
}

func (r RdataA) Text() string { return r.Addr.String() }

type RdataAAAA struct {
	Addr net.IP
}

func (r RdataAAAA) Text() string { return r.Addr.String() }

type RdataNS struct {
	Host Name
}

func (r RdataNS) Text() string { return r.Host.String() }

type RdataCNAME struct {
	Target Name
}

func (r RdataCNAME) Text() string { return r.Target.String() }

type RdataMX struct {
	Preference uint16
	Exchange   Name
}

func (r RdataMX) Text() string {
	return fmt.Sprintf("%d %s", r.Preference, r.Exchange)
}

type RdataSOA struct {
	Mname   Name
	Rname   Name
	Serial  uint32
	Refresh uint32
	Retry   uint32
	Expire  uint32
	Minimum uint32
}

func (r RdataSOA) Text() string {
	return fmt.Sprintf("%s %s %d %d %d %d %d",
		r.Mname, r.Rname, r.Serial, r.Refresh, r.Retry, r.Expire, r.Minimum)
}

type RdataTXT struct {
	Strings [][]byte
}

func (r RdataTXT) Text() string {
	if len(r.Strings) == 0 {
		return `""`
	}
	parts := make([]string, 0, len(r.Strings))
	for _, s := range r.Strings {
		parts = append(parts, quoteCharString(s))
	}
	return strings.Join(parts, " ")
}

func quoteCharString(s []byte) string {
	var sb strings.Builder
	sb.WriteByte('"')
	for _, c := range s {
		switch {
		case c == '"' || c == '\\':
			sb.WriteByte('\\')
			sb.WriteByte(c)
		case c < 0x20 || c > 0x7E:
			sb.WriteByte('\\')
			sb.WriteByte('0' + c/100)
			sb.WriteByte('0' + c/10%10)
			sb.WriteByte('0' + c%10)
		default:
			sb.WriteByte(c)
		}
	}
	sb.WriteByte('"')
	return sb.String()
}

// RdataOpaque holds the raw payload of any (class, type) combination the
// codec has no structured decoder for. Rendered as an RFC 3597 hex blob.
type RdataOpaque struct {
	Data []byte
}

func (r RdataOpaque) Text() string {
	if len(r.Data) == 0 {
		return `\# 0`
	}
	return fmt.Sprintf(`\# %d %s`, len(r.Data), hex.EncodeToString(r.Data))
}

// DecodeRdata decodes one rdata payload. The cursor's active window must
// already be narrowed to exactly the declared rdlength; consuming fewer or
// more bytes than that fails with ErrRdataLength. Embedded names may use
// compression pointers into the earlier part of the message.
func DecodeRdata(c *Cursor, dctx *Decompress, class, rrtype uint16) (Rdata, error) {
	rd, err := decodeRdata(c, dctx, class, rrtype)
	if err != nil {
		// The span was already checked against the buffer, so running out
		// of bytes here means the rdata disagrees with its declared length.
		if errors.Is(err, ErrTruncated) {
			return nil, ErrRdataLength
		}
		return nil, err
	}
	if c.Remaining() != 0 {
		return nil, ErrRdataLength
	}
	return rd, nil
}

func decodeRdata(c *Cursor, dctx *Decompress, class, rrtype uint16) (Rdata, error) {
	if class != ClassIN {
		return decodeOpaque(c)
	}
	switch rrtype {
	case TypeA:
		b, err := c.ReadBytes(4)
		if err != nil {
			return nil, err
		}
		return RdataA{Addr: net.IP(b)}, nil
	case TypeAAAA:
		b, err := c.ReadBytes(16)
		if err != nil {
			return nil, err
		}
		return RdataAAAA{Addr: net.IP(b)}, nil
	case TypeNS:
		name, err := DecodeName(c, dctx)
		if err != nil {
			return nil, err
		}
		return RdataNS{Host: name}, nil
	case TypeCNAME:
		name, err := DecodeName(c, dctx)
		if err != nil {
			return nil, err
		}
		return RdataCNAME{Target: name}, nil
	case TypeMX:
		pref, err := c.ReadU16()
		if err != nil {
			return nil, err
		}
		exch, err := DecodeName(c, dctx)
		if err != nil {
			return nil, err
		}
		return RdataMX{Preference: pref, Exchange: exch}, nil
	case TypeSOA:
		return decodeSOA(c, dctx)
	case TypeTXT:
		return decodeTXT(c)
	default:
		return decodeOpaque(c)
	}
}

func decodeSOA(c *Cursor, dctx *Decompress) (Rdata, error) {
	mname, err := DecodeName(c, dctx)
	if err != nil {
		return nil, err
	}
	rname, err := DecodeName(c, dctx)
	if err != nil {
		return nil, err
	}
	soa := RdataSOA{Mname: mname, Rname: rname}
	for _, field := range []*uint32{&soa.Serial, &soa.Refresh, &soa.Retry, &soa.Expire, &soa.Minimum} {
		v, err := c.ReadU32()
		if err != nil {
			return nil, err
		}
		*field = v
	}
	return soa, nil
}

func decodeTXT(c *Cursor) (Rdata, error) {
	var txt RdataTXT
	for c.Remaining() > 0 {
		n, err := c.ReadU8()
		if err != nil {
			return nil, err
		}
		s, err := c.ReadBytes(int(n))
		if err != nil {
			return nil, err
		}
		txt.Strings = append(txt.Strings, s)
	}
	return txt, nil
}

func decodeOpaque(c *Cursor) (Rdata, error) {
	data, err := c.ReadBytes(c.Remaining())
	if err != nil {
		return nil, err
	}
	return RdataOpaque{Data: data}, nil
}

var typeText = map[uint16]string{
	TypeA:     "A",
	TypeNS:    "NS",
	TypeCNAME: "CNAME",
	TypeSOA:   "SOA",
	TypeMX:    "MX",
	TypeTXT:   "TXT",
	TypeAAAA:  "AAAA",
}

// TypeText returns the mnemonic for a type, or the RFC 3597 TYPE%d form.
func TypeText(rrtype uint16) string {
	if s, ok := typeText[rrtype]; ok {
		return s
	}
	return fmt.Sprintf("TYPE%d", rrtype)
}

var classText = map[uint16]string{
	ClassIN: "IN",
	ClassCH: "CH",
	ClassHS: "HS",
}

// ClassText returns the mnemonic for a class, or the RFC 3597 CLASS%d form.
func ClassText(class uint16) string {
	if s, ok := classText[class]; ok {
		return s
	}
	return fmt.Sprintf("CLASS%d", class)
}
