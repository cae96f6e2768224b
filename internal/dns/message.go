package dns

import "fmt"

const HeaderLen = 12

const (
	FlagQR = 0x8000
	FlagAA = 0x0400
	FlagTC = 0x0200
	FlagRD = 0x0100
	FlagRA = 0x0080

	OpcodeMask  = 0x7800
	OpcodeShift = 11
	RcodeMask   = 0x000F
)

// RRset holds every decoded rdata sharing one (owner name, class, type)
// within one section. The TTL is the minimum across the merged records. For
// question entries the TTL stays zero and Rdata stays empty.
type RRset struct {
	Class uint16
	Type  uint16
	TTL   uint32
	Rdata []Rdata
}

// OwnerName is one distinct owner name within a section, holding its RRsets
// in the order their (class, type) was first seen.
type OwnerName struct {
	Name   Name
	RRsets []*RRset
}

func (o *OwnerName) findRRset(class, rrtype uint16) *RRset {
	for _, set := range o.RRsets {
		if set.Class == class && set.Type == rrtype {
			return set
		}
	}
	return nil
}

// Section is an ordered list of distinct owner names. Names are deduplicated
// on insert by case-insensitive comparison; first match wins and insertion
// order is preserved for rendering.
type Section struct {
	Names []*OwnerName
}

func (s *Section) lookup(n Name) *OwnerName {
	for _, owner := range s.Names {
		if owner.Name.Equal(n) {
			return owner
		}
	}
	return nil
}

// EntryCount returns the number of (class, type) entries across all names;
// this is the question count a renderer reports.
func (s *Section) EntryCount() int {
	total := 0
	for _, owner := range s.Names {
		total += len(owner.RRsets)
	}
	return total
}

// RecordCount returns the number of decoded rdata across all RRsets; this is
// the record count a renderer reports for the RR sections.
func (s *Section) RecordCount() int {
	total := 0
	for _, owner := range s.Names {
		for _, set := range owner.RRsets {
			total += len(set.Rdata)
		}
	}
	return total
}

// AnomalyKind labels a non-fatal decode observation.
type AnomalyKind int

const (
	AnomalyDuplicateQuestion AnomalyKind = iota
	AnomalyTrailingBytes
)

// Anomaly is a non-fatal decode observation: the message decoded fully, but
// something about it deserves reporting.
type Anomaly struct {
	Kind  AnomalyKind
	Name  Name // duplicate question owner, when applicable
	Bytes int  // trailing byte count, when applicable
}

func (a Anomaly) String() string {
	switch a.Kind {
	case AnomalyDuplicateQuestion:
		return fmt.Sprintf("duplicate question for %s", a.Name)
	case AnomalyTrailingBytes:
		return fmt.Sprintf("%d extra bytes at end of packet", a.Bytes)
	default:
		return "unknown anomaly"
	}
}

// Message is one fully decoded DNS message. Section counts are derived from
// what was parsed, never from the header's declared counts.
type Message struct {
	ID    uint16
	Flags uint16

	Question   Section
	Answer     Section
	Authority  Section
	Additional Section

	Anomalies []Anomaly
}

func (m *Message) Opcode() int {
	return int(m.Flags&OpcodeMask) >> OpcodeShift
}

func (m *Message) Rcode() int {
	return int(m.Flags & RcodeMask)
}

// Limits bounds the entity counts one decode pass may allocate, so a crafted
// packet cannot grow memory without bound. Zero or negative means unlimited.
type Limits struct {
	MaxNames  int
	MaxRRsets int
	MaxRdata  int
}

func DefaultLimits() Limits {
	return Limits{MaxNames: 1024, MaxRRsets: 1024, MaxRdata: 4096}
}

func (l Limits) exceeded(limit, n int) bool {
	return limit > 0 && n > limit
}

type decodeState struct {
	dctx   *Decompress
	lim    Limits
	names  int
	rrsets int
	rdata  int
}

func (st *decodeState) addName(s *Section, n Name) (*OwnerName, error) {
	if owner := s.lookup(n); owner != nil {
		return owner, nil
	}
	st.names++
	if st.lim.exceeded(st.lim.MaxNames, st.names) {
		return nil, ErrResourceLimit
	}
	owner := &OwnerName{Name: n}
	s.Names = append(s.Names, owner)
	return owner, nil
}

func (st *decodeState) addRRset(owner *OwnerName, class, rrtype uint16, ttl uint32) (*RRset, error) {
	st.rrsets++
	if st.lim.exceeded(st.lim.MaxRRsets, st.rrsets) {
		return nil, ErrResourceLimit
	}
	set := &RRset{Class: class, Type: rrtype, TTL: ttl}
	owner.RRsets = append(owner.RRsets, set)
	return set, nil
}

// DecodeMessage decodes one complete DNS message. The decompression context
// and limits are owned by this single pass; callers decoding several messages
// must pass a fresh context each time. On a fatal error no message is
// returned; non-fatal observations are collected in Message.Anomalies.
func DecodeMessage(buf []byte, dctx *Decompress, lim Limits) (*Message, error) {
	c := NewCursor(buf)

	var hdr [6]uint16
	for i := range hdr {
		v, err := c.ReadU16()
		if err != nil {
			return nil, err
		}
		hdr[i] = v
	}
	msg := &Message{ID: hdr[0], Flags: hdr[1]}

	st := &decodeState{dctx: dctx, lim: lim}
	if err := st.decodeQuestions(c, msg, int(hdr[2])); err != nil {
		return nil, err
	}
	for _, part := range []struct {
		section *Section
		count   int
	}{
		{&msg.Answer, int(hdr[3])},
		{&msg.Authority, int(hdr[4])},
		{&msg.Additional, int(hdr[5])},
	} {
		if err := st.decodeSection(c, part.section, part.count); err != nil {
			return nil, err
		}
	}

	if extra := c.Remaining(); extra > 0 {
		msg.Anomalies = append(msg.Anomalies, Anomaly{Kind: AnomalyTrailingBytes, Bytes: extra})
	}
	return msg, nil
}

func (st *decodeState) decodeQuestions(c *Cursor, msg *Message, count int) error {
	for ; count > 0; count-- {
		name, err := DecodeName(c, st.dctx)
		if err != nil {
			return err
		}
		owner, err := st.addName(&msg.Question, name)
		if err != nil {
			return err
		}
		rrtype, err := c.ReadU16()
		if err != nil {
			return err
		}
		class, err := c.ReadU16()
		if err != nil {
			return err
		}
		if owner.findRRset(class, rrtype) != nil {
			msg.Anomalies = append(msg.Anomalies,
				Anomaly{Kind: AnomalyDuplicateQuestion, Name: owner.Name})
			continue
		}
		if _, err := st.addRRset(owner, class, rrtype, 0); err != nil {
			return err
		}
	}
	return nil
}

func (st *decodeState) decodeSection(c *Cursor, s *Section, count int) error {
	for ; count > 0; count-- {
		name, err := DecodeName(c, st.dctx)
		if err != nil {
			return err
		}
		owner, err := st.addName(s, name)
		if err != nil {
			return err
		}
		rrtype, err := c.ReadU16()
		if err != nil {
			return err
		}
		class, err := c.ReadU16()
		if err != nil {
			return err
		}
		ttl, err := c.ReadU32()
		if err != nil {
			return err
		}
		rdlength, err := c.ReadU16()
		if err != nil {
			return err
		}
		if c.Remaining() < int(rdlength) {
			return ErrTruncated
		}
		if err := c.SetActive(int(rdlength)); err != nil {
			return err
		}
		rd, err := DecodeRdata(c, st.dctx, class, rrtype)
		if err != nil {
			return err
		}
		c.ClearActive()

		st.rdata++
		if st.lim.exceeded(st.lim.MaxRdata, st.rdata) {
			return ErrResourceLimit
		}
		set := owner.findRRset(class, rrtype)
		if set == nil {
			set, err = st.addRRset(owner, class, rrtype, ttl)
			if err != nil {
				return err
			}
		} else if ttl < set.TTL {
			set.TTL = ttl
		}
		set.Rdata = append(set.Rdata, rd)
	}
	return nil
}
