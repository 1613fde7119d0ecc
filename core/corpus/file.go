// Package corpus reads and indexes a local directory of Tanach text files.
//
// The file format is the tanach.us plain-text layout: the first four
// non-blank lines are the English name, Hebrew name, source-variant label
// and source URL; the body contains "Chapter N" boundary lines, one verse
// per following non-blank line. Files may be stored raw (.txt) or
// xz-compressed (.txt.xz).
package corpus

import (
	"bufio"
	"bytes"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/ulikunitz/xz"
	"github.com/zeebo/blake3"

	"github.com/FocuswithJustin/TanachReader/core/errors"
	"github.com/FocuswithJustin/TanachReader/core/hebrew"
	"github.com/FocuswithJustin/TanachReader/core/ref"
)

// reChapter matches chapter boundary lines, e.g. "Chapter 3".
var reChapter = regexp.MustCompile(`(?i)^\s*Chapter\s+(\d+)\s*$`)

// Header is the four-line metadata block that opens every corpus file.
type Header struct {
	English string  // English book name (line 1)
	Hebrew  string  // Hebrew book name (line 2)
	Source  string  // source-variant label (line 3)
	URL     string  // source URL (line 4, optional)
	Variant Variant // classified from Source
}

// Chapter is one chapter: number as declared by its boundary line, verses in
// file order, 1-indexed.
type Chapter struct {
	Number int
	Verses []string
}

// Book is a fully parsed corpus file.
type Book struct {
	Header
	Path       string
	SourceHash string // BLAKE3 of the raw file bytes
	Chapters   []Chapter

	byNumber map[int]int // chapter number -> Chapters index
}

// ChapterByNumber returns the chapter with the given number.
func (b *Book) ChapterByNumber(n int) (*Chapter, bool) {
	i, ok := b.byNumber[n]
	if !ok {
		return nil, false
	}
	return &b.Chapters[i], true
}

// Verse returns a single verse, 1-indexed. It returns a NotFoundError when
// the chapter or verse index exceeds what the book contains.
func (b *Book) Verse(chapter, verse int) (string, error) {
	ch, ok := b.ChapterByNumber(chapter)
	if !ok {
		return "", errors.NewNotFound("chapter", fmt.Sprintf("%s %d", b.English, chapter))
	}
	if verse < 1 || verse > len(ch.Verses) {
		return "", errors.NewNotFound("verse", fmt.Sprintf("%s %d:%d", b.English, chapter, verse))
	}
	return ch.Verses[verse-1], nil
}

// Range returns every verse from r.Start through r.End in source order,
// crossing chapter boundaries as needed. Both endpoints must exist in the
// book; out-of-range indices are an error, never clamped.
func (b *Book) Range(r ref.VerseRange) ([]string, error) {
	if _, err := b.Verse(r.Start.Chapter, r.Start.Verse); err != nil {
		return nil, err
	}
	if _, err := b.Verse(r.End.Chapter, r.End.Verse); err != nil {
		return nil, err
	}

	var out []string
	for n := r.Start.Chapter; n <= r.End.Chapter; n++ {
		ch, ok := b.ChapterByNumber(n)
		if !ok {
			return nil, errors.NewNotFound("chapter", fmt.Sprintf("%s %d", b.English, n))
		}
		from, to := 1, len(ch.Verses)
		if n == r.Start.Chapter {
			from = r.Start.Verse
		}
		if n == r.End.Chapter {
			to = r.End.Verse
		}
		out = append(out, ch.Verses[from-1:to]...)
	}
	return out, nil
}

// TotalVerses returns the verse count across all chapters.
func (b *Book) TotalVerses() int {
	total := 0
	for _, ch := range b.Chapters {
		total += len(ch.Verses)
	}
	return total
}

// openReader opens a corpus file, transparently decompressing .xz files.
// The caller owns closing the returned closer.
func openReader(path string) (io.Reader, io.Closer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, errors.NewIO("open", path, err)
	}
	if strings.HasSuffix(path, ".xz") {
		r, err := xz.NewReader(bufio.NewReader(f))
		if err != nil {
			f.Close()
			return nil, nil, errors.NewIO("decompress", path, err)
		}
		return r, f, nil
	}
	return f, f, nil
}

// ParseHeader reads only the header block of a corpus file. It is the cheap
// scan used to register files without parsing chapter bodies.
func ParseHeader(path string) (*Header, error) {
	r, closer, err := openReader(path)
	if err != nil {
		return nil, err
	}
	defer closer.Close()

	var fields []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	for scanner.Scan() && len(fields) < 4 {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if reChapter.MatchString(line) {
			break
		}
		fields = append(fields, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.NewIO("read", path, err)
	}
	return headerFromFields(path, fields)
}

func headerFromFields(path string, fields []string) (*Header, error) {
	if len(fields) < 3 {
		return nil, errors.NewFormat(path, fmt.Sprintf("header requires English name, Hebrew name and source label; got %d line(s)", len(fields)))
	}
	h := &Header{
		English: fields[0],
		Hebrew:  fields[1],
		Source:  fields[2],
	}
	if len(fields) >= 4 {
		h.URL = fields[3]
	}
	h.Variant = ClassifyVariant(h.Source)
	return h, nil
}

// ParseFile parses a complete corpus file into a Book. It returns a
// FormatError when the header is missing or the body yields no chapters.
func ParseFile(path string) (*Book, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewIO("read", path, err)
	}
	hash := blake3.Sum256(raw)

	var body io.Reader = bytes.NewReader(raw)
	if strings.HasSuffix(path, ".xz") {
		r, err := xz.NewReader(bytes.NewReader(raw))
		if err != nil {
			return nil, errors.NewIO("decompress", path, err)
		}
		body = r
	}

	book := &Book{
		Path:       path,
		SourceHash: hex.EncodeToString(hash[:]),
		byNumber:   make(map[int]int),
	}

	var headerFields []string
	headerDone := false
	current := -1

	scanner := bufio.NewScanner(body)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if m := reChapter.FindStringSubmatch(line); m != nil {
			if !headerDone {
				h, err := headerFromFields(path, headerFields)
				if err != nil {
					return nil, err
				}
				book.Header = *h
				headerDone = true
			}
			number, _ := strconv.Atoi(m[1])
			if i, ok := book.byNumber[number]; ok {
				current = i
			} else {
				book.Chapters = append(book.Chapters, Chapter{Number: number})
				current = len(book.Chapters) - 1
				book.byNumber[number] = current
			}
			continue
		}

		if !headerDone {
			// Still in the leading metadata block. Only the first four
			// non-blank lines are header fields; anything after that (the
			// repeated Hebrew title block) is skipped.
			if len(headerFields) < 4 {
				headerFields = append(headerFields, line)
			}
			continue
		}

		if current < 0 {
			continue
		}
		verse := hebrew.CleanMarkup(line)
		if verse != "" {
			ch := &book.Chapters[current]
			ch.Verses = append(ch.Verses, verse)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.NewIO("read", path, err)
	}

	if !headerDone {
		if _, err := headerFromFields(path, headerFields); err != nil {
			return nil, err
		}
		return nil, errors.NewFormat(path, "no chapters found")
	}
	if len(book.Chapters) == 0 {
		return nil, errors.NewFormat(path, "no chapters found")
	}
	return book, nil
}
