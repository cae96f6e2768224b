package dns

import "strings"

const (
	maxNameLen  = 255
	maxLabelLen = 63

	CompressionMask = 0xC0 // top 2 bits of a length byte select the label type
	CompressionFlag = 0xC0 // both bits set: 14-bit compression pointer
	PointerMask     = 0x3F // low 6 bits of the first pointer byte
)

// CompressMethod selects which compression schemes DecodeName may follow.
type CompressMethod uint8

const (
	CompressNone     CompressMethod = iota
	CompressGlobal14                // RFC 1035 backward pointers
)

// Decompress carries the decompression state for one decode pass. Each pass
// gets a fresh value; nothing is shared between messages.
type Decompress struct {
	Allowed CompressMethod
}

func NewDecompress() *Decompress {
	return &Decompress{Allowed: CompressGlobal14}
}

// Name is a decoded domain name: an ordered sequence of labels holding the
// wire octets verbatim. The zero value is the root name.
type Name struct {
	labels [][]byte
}

// NameFromLabels builds a Name from literal label octets.
func NameFromLabels(labels ...[]byte) Name {
	return Name{labels: labels}
}

func (n Name) LabelCount() int {
	return len(n.labels)
}

func (n Name) IsRoot() bool {
	return len(n.labels) == 0
}

// Equal compares two names label by label, folding ASCII case per octet.
func (n Name) Equal(other Name) bool {
	if len(n.labels) != len(other.labels) {
		return false
	}
	for i := range n.labels {
		if !labelEqualFold(n.labels[i], other.labels[i]) {
			return false
		}
	}
	return true
}

func labelEqualFold(x, y []byte) bool {
	if len(x) != len(y) {
		return false
	}
	for i := range x {
		a, b := x[i], y[i]
		if 'A' <= a && a <= 'Z' {
			a += 0x20
		}
		if 'A' <= b && b <= 'Z' {
			b += 0x20
		}
		if a != b {
			return false
		}
	}
	return true
}

// String renders the name in presentation form without a trailing dot; the
// root name renders as ".". Dots and backslashes inside a label are escaped
// with a backslash, other non-printable octets as \ddd.
func (n Name) String() string {
	if n.IsRoot() {
		return "."
	}
	var sb strings.Builder
	for i, label := range n.labels {
		if i > 0 {
			sb.WriteByte('.')
		}
		for _, c := range label {
			switch {
			case c == '.' || c == '\\':
				sb.WriteByte('\\')
				sb.WriteByte(c)
			case c < 0x21 || c > 0x7E:
				sb.WriteByte('\\')
				sb.WriteByte('0' + c/100)
				sb.WriteByte('0' + c/10%10)
				sb.WriteByte('0' + c%10)
			default:
				sb.WriteByte(c)
			}
		}
	}
	return sb.String()
}

// DecodeName reads one possibly compressed name from the cursor. The cursor
// advances only over the bytes the enclosing record spends on the name: up to
// and including either the root byte or the first compression pointer.
//
// Pointer targets must be strictly backward. The first pointer must target an
// offset before the pointer itself (ErrBadPointer); every later pointer must
// target an offset before everything already visited, which rules out cycles
// (ErrCompressionLoop).
func DecodeName(c *Cursor, dctx *Decompress) (Name, error) {
	var labels [][]byte
	encLen := 0
	jumped := false
	lowest := 0
	scan := 0

	for {
		var (
			b    byte
			bOff int
			err  error
		)
		if !jumped {
			bOff = c.Offset()
			b, err = c.ReadU8()
			if err != nil {
				return Name{}, err
			}
		} else {
			if scan >= len(c.buf) {
				return Name{}, ErrTruncated
			}
			b = c.buf[scan]
			scan++
		}

		switch {
		case b == 0:
			return Name{labels: labels}, nil

		case b&CompressionMask == 0:
			var label []byte
			if !jumped {
				label, err = c.ReadBytes(int(b))
				if err != nil {
					return Name{}, err
				}
			} else {
				if scan+int(b) > len(c.buf) {
					return Name{}, ErrTruncated
				}
				label = make([]byte, b)
				copy(label, c.buf[scan:scan+int(b)])
				scan += int(b)
			}
			encLen += 1 + int(b)
			if encLen+1 > maxNameLen {
				return Name{}, ErrNameTooLong
			}
			labels = append(labels, label)

		case b&CompressionMask == CompressionFlag:
			if dctx == nil || dctx.Allowed != CompressGlobal14 {
				return Name{}, ErrBadPointer
			}
			var b2 byte
			if !jumped {
				b2, err = c.ReadU8()
				if err != nil {
					return Name{}, err
				}
			} else {
				if scan >= len(c.buf) {
					return Name{}, ErrTruncated
				}
				b2 = c.buf[scan]
				scan++
			}
			target := int(b&PointerMask)<<8 | int(b2)
			if jumped {
				if target >= lowest {
					return Name{}, ErrCompressionLoop
				}
			} else {
				if target >= bOff {
					return Name{}, ErrBadPointer
				}
				jumped = true
			}
			lowest = target
			scan = target

		default:
			return Name{}, ErrBadLabelType
		}
	}
}

// EncodeName writes name in uncompressed wire form at buf[off:], returning
// the offset past the terminating root byte. The name uses plain presentation
// syntax; label escapes are not interpreted.
func EncodeName(buf []byte, off int, name string) (int, error) {
	if name == "." {
		name = ""
	}
	name = strings.TrimSuffix(name, ".")
	if len(name) > maxNameLen {
		return 0, ErrNameTooLong
	}

	if name == "" {
		if off >= len(buf) {
			return 0, ErrTruncated
		}
		buf[off] = 0
		return off + 1, nil
	}

	i := off
	for _, label := range strings.Split(name, ".") {
		if len(label) > maxLabelLen {
			return 0, ErrLabelTooLong
		}
		if i+1+len(label) > len(buf) {
			return 0, ErrTruncated
		}
		buf[i] = byte(len(label))
		copy(buf[i+1:], label)
		i += 1 + len(label)
	}
	if i >= len(buf) {
		return 0, ErrTruncated
	}
	buf[i] = 0
	return i + 1, nil
}
