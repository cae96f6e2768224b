package dns

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func decodeRdataSpan(t *testing.T, buf []byte, class, rrtype uint16) (Rdata, error) {
	t.Helper()
	c := NewCursor(buf)
	require.NoError(t, c.SetActive(len(buf)))
	return DecodeRdata(c, NewDecompress(), class, rrtype)
}

func TestDecodeRdataA(t *testing.T) {
	rd, err := decodeRdataSpan(t, []byte{192, 0, 2, 1}, ClassIN, TypeA)
	require.NoError(t, err)
	require.Equal(t, "192.0.2.1", rd.Text())
}

func TestDecodeRdataAAAA(t *testing.T) {
	buf := []byte{0x20, 0x01, 0x0d, 0xb8, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1}
	rd, err := decodeRdataSpan(t, buf, ClassIN, TypeAAAA)
	require.NoError(t, err)
	require.Equal(t, "2001:db8::1", rd.Text())
}

func TestDecodeRdataLengthMismatch(t *testing.T) {
	// Declared span shorter than the type needs.
	_, err := decodeRdataSpan(t, []byte{192, 0, 2}, ClassIN, TypeA)
	require.ErrorIs(t, err, ErrRdataLength)

	// Declared span longer than the type consumes.
	_, err = decodeRdataSpan(t, []byte{192, 0, 2, 1, 99}, ClassIN, TypeA)
	require.ErrorIs(t, err, ErrRdataLength)

	// Character string running past the span.
	_, err = decodeRdataSpan(t, []byte{5, 'h', 'i'}, ClassIN, TypeTXT)
	require.ErrorIs(t, err, ErrRdataLength)
}

func TestDecodeRdataMX(t *testing.T) {
	buf := []byte{0, 10, 4, 'm', 'a', 'i', 'l', 7, 'e', 'x', 'a', 'm', 'p', 'l', 'e', 3, 'c', 'o', 'm', 0}
	rd, err := decodeRdataSpan(t, buf, ClassIN, TypeMX)
	require.NoError(t, err)
	require.Equal(t, "10 mail.example.com", rd.Text())
}

func TestDecodeRdataNSCompressed(t *testing.T) {
	// The exchange name points back before the rdata span.
	buf := []byte{
		7, 'e', 'x', 'a', 'm', 'p', 'l', 'e', 3, 'c', 'o', 'm', 0,
		2, 'n', 's', 0xC0, 0x00,
	}
	c := NewCursor(buf)
	c.seek(13)
	require.NoError(t, c.SetActive(5))
	rd, err := DecodeRdata(c, NewDecompress(), ClassIN, TypeNS)
	require.NoError(t, err)
	require.Equal(t, "ns.example.com", rd.Text())
}

func TestDecodeRdataCNAME(t *testing.T) {
	buf := []byte{3, 'w', 'w', 'w', 7, 'e', 'x', 'a', 'm', 'p', 'l', 'e', 3, 'c', 'o', 'm', 0}
	rd, err := decodeRdataSpan(t, buf, ClassIN, TypeCNAME)
	require.NoError(t, err)
	cname, ok := rd.(RdataCNAME)
	require.True(t, ok)
	require.Equal(t, "www.example.com", cname.Target.String())
}

func TestDecodeRdataSOA(t *testing.T) {
	buf := []byte{
		3, 'n', 's', '1', 3, 'c', 'o', 'm', 0,
		5, 'a', 'd', 'm', 'i', 'n', 3, 'c', 'o', 'm', 0,
		0, 0, 0, 1, // serial
		0, 0, 0x0E, 0x10, // refresh
		0, 0, 0x03, 0x84, // retry
		0, 0x09, 0x3A, 0x80, // expire
		0, 0, 0x01, 0x2C, // minimum
	}
	rd, err := decodeRdataSpan(t, buf, ClassIN, TypeSOA)
	require.NoError(t, err)
	require.Equal(t, "ns1.com admin.com 1 3600 900 604800 300", rd.Text())
}

func TestDecodeRdataTXT(t *testing.T) {
	buf := []byte{5, 'h', 'e', 'l', 'l', 'o', 5, 'w', 'o', 'r', 'l', 'd'}
	rd, err := decodeRdataSpan(t, buf, ClassIN, TypeTXT)
	require.NoError(t, err)
	require.Equal(t, `"hello" "world"`, rd.Text())

	rd, err = decodeRdataSpan(t, []byte{4, 'a', '"', '\\', 0x01}, ClassIN, TypeTXT)
	require.NoError(t, err)
	require.Equal(t, `"a\"\\\001"`, rd.Text())
}

func TestDecodeRdataOpaque(t *testing.T) {
	rd, err := decodeRdataSpan(t, []byte{0xDE, 0xAD, 0xBE, 0xEF}, ClassIN, 99)
	require.NoError(t, err)
	require.Equal(t, `\# 4 deadbeef`, rd.Text())

	rd, err = decodeRdataSpan(t, nil, ClassIN, 99)
	require.NoError(t, err)
	require.Equal(t, `\# 0`, rd.Text())

	// Known type in an unknown class stays opaque too.
	rd, err = decodeRdataSpan(t, []byte{192, 0, 2, 1}, ClassCH, TypeA)
	require.NoError(t, err)
	require.Equal(t, `\# 4 c0000201`, rd.Text())
}

func TestTypeAndClassText(t *testing.T) {
	require.Equal(t, "A", TypeText(TypeA))
	require.Equal(t, "AAAA", TypeText(TypeAAAA))
	require.Equal(t, "TYPE99", TypeText(99))
	require.Equal(t, "IN", ClassText(ClassIN))
	require.Equal(t, "CLASS255", ClassText(255))
}
