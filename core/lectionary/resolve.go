package lectionary

import (
	"strings"

	"github.com/FocuswithJustin/TanachReader/core/errors"
	"github.com/FocuswithJustin/TanachReader/core/ref"
)

// Resolve resolves a reading name, type and optional aliyah into an ordered
// list of verse ranges.
//
// Two behaviors are intentional, matching what existing sedrot schedules
// expect of their consumers:
//
//  1. readingType matches by case-insensitive SUBSTRING of the stored type
//     label, not equality — "TORAH" must match "TORAH_TRIENNIAL_1".
//  2. when no option matches the type at all, every option of the sedra is
//     considered, regardless of type.
//
// cycle selects a triennial option when the schedule defines one: an option
// whose CYCLE equals cycle is preferred, then the holiday cycle 5, then the
// annual cycle 0, then document order. A schedule without triennial options
// accepts any cycle and behaves as the single annual cycle.
//
// With a non-empty aliyah the result is the single range of that aliyah from
// the first candidate option that defines it; otherwise it is every range of
// the first candidate option that has any, in stored aliyah order.
func (s *Schedule) Resolve(name, readingType, aliyah string, cycle int) ([]ref.VerseRange, error) {
	sedra, ok := s.Sedra(name)
	if !ok {
		return nil, errors.NewNotFound("parasha", name)
	}

	var options []*ReadingOption
	want := strings.ToUpper(readingType)
	for i := range sedra.Options {
		if strings.Contains(strings.ToUpper(sedra.Options[i].Type), want) {
			options = append(options, &sedra.Options[i])
		}
	}
	if len(options) == 0 {
		// Legacy fallback: no type matched, consider everything.
		for i := range sedra.Options {
			options = append(options, &sedra.Options[i])
		}
	}
	options = orderByCycle(options, cycle)

	if aliyah != "" {
		for _, opt := range options {
			if a, ok := opt.Aliyah(aliyah); ok {
				return []ref.VerseRange{a.Range}, nil
			}
		}
		return nil, errors.NewNotFound("aliyah", strings.ToUpper(aliyah))
	}

	for _, opt := range options {
		if len(opt.Aliyot) > 0 {
			return opt.Ranges(), nil
		}
	}
	return nil, errors.NewNotFound("reading", name)
}

// orderByCycle stably reorders candidate options so the requested cycle
// comes first, then the fallback cycles 5 and 0, then everything else.
func orderByCycle(options []*ReadingOption, cycle int) []*ReadingOption {
	ordered := make([]*ReadingOption, 0, len(options))
	for _, want := range []int{cycle, 5, 0} {
		for _, opt := range options {
			if opt.Cycle == want && !contains(ordered, opt) {
				ordered = append(ordered, opt)
			}
		}
	}
	for _, opt := range options {
		if !contains(ordered, opt) {
			ordered = append(ordered, opt)
		}
	}
	return ordered
}

func contains(opts []*ReadingOption, target *ReadingOption) bool {
	for _, o := range opts {
		if o == target {
			return true
		}
	}
	return false
}

// Haftarah resolves the prophetic reading paired with a parasha.
func (s *Schedule) Haftarah(name string, cycle int) ([]ref.VerseRange, error) {
	return s.Resolve(name, "Haftarah", "", cycle)
}

// Maftir resolves the closing Torah portion, conventionally the last aliyah.
func (s *Schedule) Maftir(name string, cycle int) ([]ref.VerseRange, error) {
	return s.Resolve(name, "Torah", MaftirAliyah, cycle)
}
