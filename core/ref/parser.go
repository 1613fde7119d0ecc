package ref

import (
	"regexp"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/FocuswithJustin/TanachReader/core/books"
	"github.com/FocuswithJustin/TanachReader/core/errors"
)

// scriptureRef is the participle grammar for a verse reference. Chapter and
// verse are mandatory on the start point; the range suffix is optional and
// the end verse may be omitted ("Genesis 1:1-5").
type scriptureRef struct {
	Book         string `parser:"@Book"`
	ChapterStart int    `parser:"@Number ':'"`
	VerseStart   int    `parser:"@Number"`
	ChapterEnd   *int   `parser:"( '-' @Number"`
	VerseEnd     *int   `parser:"  ( ':' @Number )? )?"`
}

// referenceLexer tokenizes verse references. The Book rule covers both
// spelled names ("Genesis", "Song of Songs", "II Kings") and compact codes
// glued to the chapter number ("GEN1:1", "2KI4:8").
var referenceLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Book", Pattern: `(?:\d\s*)?[A-Za-z]+(?:\s+(?:of\s+)?[A-Za-z]+)*`},
	{Name: "Number", Pattern: `\d+`},
	{Name: "Colon", Pattern: `:`},
	{Name: "Dash", Pattern: `-`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var referenceParser = participle.MustBuild[scriptureRef](
	participle.Lexer(referenceLexer),
	participle.Elide("Whitespace"),
)

// dottedForm matches "Book.chapter.verse[-chapter.verse]" so it can be
// rewritten to the colon form before the grammar runs.
var dottedForm = regexp.MustCompile(`^([A-Za-z ]+?)\.(\d+)\.(\d+)(?:-(\d+)\.(\d+))?$`)

// Parse parses a verse reference string into a VerseRange.
//
// Accepted forms, tried in priority order:
//   - "GEN1:1-2:3"        (compact code)
//   - "Genesis.1.1-2.3"   (dotted)
//   - "Genesis 1:1-2:3"   (spaced colon)
//   - any of the above without the range suffix (end equals start)
//
// A range omitting the end chapter ("Genesis 1:1-5") is read as the same
// chapter ending at verse 5. Parse returns a GrammarError when no form
// matches or the resulting range is invalid.
func Parse(input string) (VerseRange, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return VerseRange{}, errors.NewGrammar(input, "empty reference")
	}

	parsed, err := referenceParser.ParseString("", normalizeSeparators(trimmed))
	if err != nil {
		return VerseRange{}, &errors.GrammarError{Reference: input, Message: "no accepted form matches", Err: err}
	}

	book := books.Normalize(parsed.Book)
	start := VersePoint{Book: book, Chapter: parsed.ChapterStart, Verse: parsed.VerseStart}
	end := start
	if parsed.ChapterEnd != nil {
		if parsed.VerseEnd != nil {
			end = VersePoint{Book: book, Chapter: *parsed.ChapterEnd, Verse: *parsed.VerseEnd}
		} else {
			// "Genesis 1:1-5": the number after the dash is the end verse,
			// not an end chapter.
			end = VersePoint{Book: book, Chapter: parsed.ChapterStart, Verse: *parsed.ChapterEnd}
		}
	}

	rng, err := NewRange(start, end)
	if err != nil {
		var ge *errors.GrammarError
		if errors.As(err, &ge) {
			ge.Reference = input
		}
		return VerseRange{}, err
	}
	return rng, nil
}

// normalizeSeparators rewrites the dotted form to the colon form and folds
// the en-dash range separator to a plain dash:
//
//	"Genesis.1.1-2.3" -> "Genesis 1:1-2:3"
func normalizeSeparators(input string) string {
	input = strings.ReplaceAll(input, "–", "-")
	m := dottedForm.FindStringSubmatch(input)
	if m == nil {
		return input
	}
	var sb strings.Builder
	sb.WriteString(m[1])
	sb.WriteString(" ")
	sb.WriteString(m[2])
	sb.WriteString(":")
	sb.WriteString(m[3])
	if m[4] != "" {
		sb.WriteString("-")
		sb.WriteString(m[4])
		sb.WriteString(":")
		sb.WriteString(m[5])
	}
	return sb.String()
}
