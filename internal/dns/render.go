package dns

import (
	"fmt"
	"io"
	"strings"
)

var opcodeText = [16]string{
	"QUERY",
	"IQUERY",
	"STATUS",
	"RESERVED3",
	"NOTIFY",
	"UPDATE",
	"RESERVED6",
	"RESERVED7",
	"RESERVED8",
	"RESERVED9",
	"RESERVED10",
	"RESERVED11",
	"RESERVED12",
	"RESERVED13",
	"RESERVED14",
	"RESERVED15",
}

var rcodeText = [16]string{
	"NOERROR",
	"FORMERR",
	"SERVFAIL",
	"NXDOMAIN",
	"NOTIMPL",
	"REFUSED",
	"YXDOMAIN",
	"YXRRSET",
	"NXRRSET",
	"NOTAUTH",
	"NOTZONE",
	"RESERVED11",
	"RESERVED12",
	"RESERVED13",
	"RESERVED14",
	"RESERVED15",
}

// FlagText returns the set header flags in presentation order.
func FlagText(flags uint16) string {
	var parts []string
	for _, f := range []struct {
		bit  uint16
		text string
	}{
		{FlagQR, "qr"},
		{FlagAA, "aa"},
		{FlagTC, "tc"},
		{FlagRD, "rd"},
		{FlagRA, "ra"},
	} {
		if flags&f.bit != 0 {
			parts = append(parts, f.text)
		}
	}
	return strings.Join(parts, " ")
}

// Render writes the dig-style text dump of a decoded message. The section
// counts on the flags line reflect what was actually parsed into the model,
// not the counts the header declared. A write error aborts the dump; output
// already written stays as is.
func Render(w io.Writer, m *Message) error {
	_, err := fmt.Fprintf(w, ";; ->>HEADER<<- opcode: %s, status: %s, id: %d\n",
		opcodeText[m.Opcode()], rcodeText[m.Rcode()], m.ID)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, ";; flags: %s; QUERY: %d, ANSWER: %d, AUTHORITY: %d, ADDITIONAL: %d\n",
		FlagText(m.Flags),
		m.Question.EntryCount(),
		m.Answer.RecordCount(),
		m.Authority.RecordCount(),
		m.Additional.RecordCount())
	if err != nil {
		return err
	}

	if err := renderQuestions(w, &m.Question); err != nil {
		return err
	}
	for _, part := range []struct {
		section *Section
		label   string
	}{
		{&m.Answer, "ANSWER"},
		{&m.Authority, "AUTHORITY"},
		{&m.Additional, "ADDITIONAL"},
	} {
		if err := renderSection(w, part.section, part.label); err != nil {
			return err
		}
	}

	for _, a := range m.Anomalies {
		if _, err := fmt.Fprintf(w, ";; %s\n", a); err != nil {
			return err
		}
	}
	return nil
}

func renderQuestions(w io.Writer, s *Section) error {
	if _, err := fmt.Fprintf(w, ";; QUERY SECTION:\n"); err != nil {
		return err
	}
	for _, owner := range s.Names {
		for _, set := range owner.RRsets {
			_, err := fmt.Fprintf(w, ";;\t%s, class = %d, type = %d\n",
				owner.Name, set.Class, set.Type)
			if err != nil {
				return err
			}
		}
	}
	return nil
}

func renderSection(w io.Writer, s *Section, label string) error {
	if _, err := fmt.Fprintf(w, "\n;; %s SECTION:\n", label); err != nil {
		return err
	}
	for _, owner := range s.Names {
		for _, set := range owner.RRsets {
			for _, rd := range set.Rdata {
				_, err := fmt.Fprintf(w, "%s\t%d\t%s\t%s\t%s\n",
					owner.Name, set.TTL, ClassText(set.Class), TypeText(set.Type), rd.Text())
				if err != nil {
					return err
				}
			}
		}
	}
	return nil
}
