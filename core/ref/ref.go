// Package ref provides verse reference types and parsing for Tanach text.
//
// A reference names a verse range within a single book. Three notations are
// accepted, tried in fixed priority order:
//
//   - compact code form:  "GEN1:1-2:3"
//   - dotted form:        "Genesis.1.1-2.3"
//   - spaced colon form:  "Genesis 1:1-2:3"
//
// plus the single-verse shorthand of each ("GEN1:1", "Genesis 1:1"). Book
// names resolve through the core/books alias table, case-insensitively.
package ref

import (
	"fmt"

	"github.com/FocuswithJustin/TanachReader/core/errors"
)

// VersePoint identifies a single verse: canonical book name, 1-indexed
// chapter, 1-indexed verse.
type VersePoint struct {
	Book    string
	Chapter int
	Verse   int
}

// Before reports whether p orders strictly before q, chapter-major then
// verse-minor. Book names are not compared.
func (p VersePoint) Before(q VersePoint) bool {
	if p.Chapter != q.Chapter {
		return p.Chapter < q.Chapter
	}
	return p.Verse < q.Verse
}

// String returns the spaced colon form of the point.
func (p VersePoint) String() string {
	return fmt.Sprintf("%s %d:%d", p.Book, p.Chapter, p.Verse)
}

// VerseRange is an inclusive range of verses within one book.
// Invariant: Start and End share the book, and End is not strictly before
// Start. Construct through NewRange or Parse to enforce it.
type VerseRange struct {
	Start VersePoint
	End   VersePoint
}

// NewRange validates and constructs a VerseRange.
func NewRange(start, end VersePoint) (VerseRange, error) {
	if start.Book != end.Book {
		return VerseRange{}, errors.NewGrammar("", fmt.Sprintf("range spans books %s and %s", start.Book, end.Book))
	}
	if start.Chapter < 1 || start.Verse < 1 || end.Chapter < 1 || end.Verse < 1 {
		return VerseRange{}, errors.NewGrammar(start.String(), "chapter and verse must be positive")
	}
	if end.Before(start) {
		return VerseRange{}, errors.NewGrammar("", fmt.Sprintf("range end %s before start %s", end, start))
	}
	return VerseRange{Start: start, End: end}, nil
}

// IsSingle reports whether the range covers exactly one verse.
func (r VerseRange) IsSingle() bool {
	return r.Start == r.End
}

// String returns the canonical spaced colon form of the range.
func (r VerseRange) String() string {
	if r.IsSingle() {
		return r.Start.String()
	}
	if r.Start.Chapter == r.End.Chapter {
		return fmt.Sprintf("%s %d:%d-%d", r.Start.Book, r.Start.Chapter, r.Start.Verse, r.End.Verse)
	}
	return fmt.Sprintf("%s %d:%d-%d:%d", r.Start.Book, r.Start.Chapter, r.Start.Verse, r.End.Chapter, r.End.Verse)
}
