// Package lectionary loads the reading schedule (sedrot) and resolves named
// readings into verse ranges.
//
// The schedule is a sedrot XML file: READING elements named per parasha,
// each carrying OPTION and
// HAFTARAH children. An option's TYPE/NAME/CYCLE/WRAPPED/SPECIAL attributes
// describe the reading; every other attribute is an aliyah code mapped to a
// verse-range expression, in document order. The last aliyah slot (SHVII) is
// the Maftir-equivalent.
package lectionary

import (
	"strings"

	"github.com/FocuswithJustin/TanachReader/core/ref"
)

// MaftirAliyah is the aliyah code of the seventh/closing slot, read again as
// the Maftir.
const MaftirAliyah = "SHVII"

// Aliyah is one subdivision of a reading option: its code, the range
// expression as written in the schedule, and the parsed range.
type Aliyah struct {
	Code  string
	Raw   string
	Range ref.VerseRange
}

// ReadingOption is a single way of reading a parasha: a type label
// ("TORAH", "HAFTARAH", "TORAH_TRIENNIAL_1", ...), an optional occasion
// name, the triennial cycle it belongs to, and its aliyot in canonical
// order.
type ReadingOption struct {
	Type    string
	Name    string
	Cycle   int // -1 when the schedule gives no cycle
	Wrapped bool
	Special string
	Aliyot  []Aliyah
}

// Aliyah returns the aliyah with the given code, case-insensitively.
func (o *ReadingOption) Aliyah(code string) (Aliyah, bool) {
	for _, a := range o.Aliyot {
		if strings.EqualFold(a.Code, code) {
			return a, true
		}
	}
	return Aliyah{}, false
}

// Ranges returns every aliyah range of the option in stored order.
func (o *ReadingOption) Ranges() []ref.VerseRange {
	out := make([]ref.VerseRange, len(o.Aliyot))
	for i, a := range o.Aliyot {
		out[i] = a.Range
	}
	return out
}

// Sedra is one named reading with its options in document order.
type Sedra struct {
	Name    string
	Options []ReadingOption
}

// Schedule is the loaded reading table, immutable after Load.
type Schedule struct {
	sedrot map[string]*Sedra // lowercased name -> sedra
	names  []string          // document order
}

// Sedra returns the reading with the given name, case-insensitively.
func (s *Schedule) Sedra(name string) (*Sedra, bool) {
	sd, ok := s.sedrot[strings.ToLower(strings.TrimSpace(name))]
	return sd, ok
}

// Names returns every reading name in document order.
func (s *Schedule) Names() []string {
	return append([]string(nil), s.names...)
}

// Len returns the number of readings in the schedule.
func (s *Schedule) Len() int {
	return len(s.names)
}
