// Package hebrew provides normalization for Hebrew verse text.
//
// The corpus carries three textual variants: full cantillation, consonantal
// text, and the markup-bearing Masorah edition. The functions here reduce a
// verse to the representation a caller asked for. All of them are pure and
// idempotent, and they commute with each other: each targets a disjoint set
// of codepoints, so application order does not change the final result.
package hebrew

import (
	"html"
	"regexp"
	"strings"
)

// Unicode ranges for Hebrew combining marks.
const (
	tropeFirst = 0x0591 // cantillation accents (te'amim)
	tropeLast  = 0x05AF
	vowelFirst = 0x05B0 // vowel points (nikkud)
	vowelLast  = 0x05BD
)

var (
	// Inline markup tags, as carried by the Masorah variant.
	reTag = regexp.MustCompile(`<[^>]+>`)
	// Parenthetical paragraph markers: (פ) and (ס), round or square brackets.
	reParaMarker = regexp.MustCompile(`\s*[(\[]\s*[פס]\s*[)\]]`)
	// Runs of whitespace, including NBSP.
	reWhitespace = regexp.MustCompile(`[ \t\x{00A0}]+`)
)

// StripOptions selects which combining marks StripCantillation removes.
type StripOptions struct {
	// Vowels removes vowel points (nikkud) in addition to trope marks.
	Vowels bool
}

// StripCantillation removes cantillation accents from text while preserving
// base consonants and structural punctuation. Vowel points are preserved
// unless opts.Vowels is set.
func StripCantillation(text string, opts StripOptions) string {
	var sb strings.Builder
	sb.Grow(len(text))
	for _, r := range text {
		if r >= tropeFirst && r <= tropeLast {
			continue
		}
		if opts.Vowels && r >= vowelFirst && r <= vowelLast {
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// StripParagraphMarkers removes the open/closed section markers (פ) and (ס)
// embedded in running text.
func StripParagraphMarkers(text string) string {
	return reParaMarker.ReplaceAllString(text, "")
}

// CleanMarkup removes inline markup tags and unescapes textual entities, as
// required for the Masorah variant. Bidirectional control marks are dropped
// and whitespace runs collapse to single spaces.
func CleanMarkup(text string) string {
	text = html.UnescapeString(text)
	text = reTag.ReplaceAllString(text, "")
	text = strings.ReplaceAll(text, "\u200f", "")
	text = strings.ReplaceAll(text, "\u200e", "")
	text = reWhitespace.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// Options bundles the per-verse normalization a lookup applies.
type Options struct {
	// StripCantillation removes trope marks from every verse.
	StripCantillation bool
	// StripVowels additionally removes vowel points. Implies trope removal.
	StripVowels bool
	// StripParagraphMarkers removes (פ) and (ס) section markers.
	StripParagraphMarkers bool
}

// Apply runs the selected normalizations on one verse.
func (o Options) Apply(text string) string {
	if o.StripCantillation || o.StripVowels {
		text = StripCantillation(text, StripOptions{Vowels: o.StripVowels})
	}
	if o.StripParagraphMarkers {
		text = StripParagraphMarkers(text)
	}
	return text
}
