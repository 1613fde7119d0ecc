package corpus

import (
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/FocuswithJustin/TanachReader/core/books"
	"github.com/FocuswithJustin/TanachReader/core/cache"
	"github.com/FocuswithJustin/TanachReader/core/errors"
	"github.com/FocuswithJustin/TanachReader/core/hebrew"
	"github.com/FocuswithJustin/TanachReader/core/ref"
)

// Candidate is one registered corpus file for a book.
type Candidate struct {
	Path    string
	Variant Variant
	Header  Header
}

// bookKey keys the parse cache by canonical book name and resolved file, so
// that the same book loaded under different variants caches separately.
type bookKey struct {
	book string
	path string
}

// Index scans a corpus directory, registers candidate files per book, and
// serves verse lookups from lazily parsed, cached books.
//
// After Scan the registration table is read-only and lookups are safe for
// concurrent readers. Reindex is the only mutating operation and must be
// treated as exclusive: a Book reference obtained before Reindex must not be
// used across it.
type Index struct {
	mu      sync.RWMutex
	dir     string
	entries map[string][]Candidate // lowercased canonical name -> candidates
	parsed  cache.Cache[bookKey, *Book]
}

// NewIndex creates an index over dir and performs the initial scan.
func NewIndex(dir string) (*Index, error) {
	ix := &Index{
		dir: dir,
		// Unbounded: books are evicted only by Reindex.
		parsed: cache.NewLRUCache[bookKey, *Book](cache.Config{MaxSize: 0}),
	}
	if err := ix.scan(); err != nil {
		return nil, err
	}
	return ix, nil
}

// scan registers every candidate file by parsing only its header.
func (ix *Index) scan() error {
	ix.mu.Lock()
	defer ix.mu.Unlock()
	return ix.scanLocked()
}

func (ix *Index) scanLocked() error {
	if _, err := os.Stat(ix.dir); err != nil {
		return errors.NewIO("scan", ix.dir, err)
	}

	entries := make(map[string][]Candidate)
	var paths []string
	for _, pattern := range []string{"*.txt", "*.txt.xz"} {
		matched, err := filepath.Glob(filepath.Join(ix.dir, pattern))
		if err != nil {
			return errors.NewIO("scan", ix.dir, err)
		}
		paths = append(paths, matched...)
	}
	sort.Strings(paths)

	for _, path := range paths {
		header, err := ParseHeader(path)
		if err != nil {
			slog.Warn("skipping unreadable corpus file", "path", path, "error", err)
			continue
		}
		key := strings.ToLower(books.Normalize(header.English))
		entries[key] = append(entries[key], Candidate{
			Path:    path,
			Variant: header.Variant,
			Header:  *header,
		})
	}

	ix.entries = entries
	slog.Info("corpus indexed", "dir", ix.dir, "books", len(entries), "files", len(paths))
	return nil
}

// Reindex drops every cached book and re-scans the directory. It is an
// exclusive maintenance operation; callers must not interleave lookups.
func (ix *Index) Reindex() error {
	ix.mu.Lock()
	defer ix.mu.Unlock()
	ix.parsed.Clear()
	return ix.scanLocked()
}

// candidates returns the registered candidates for a book name.
func (ix *Index) candidates(book string) ([]Candidate, string, error) {
	canonical := books.Normalize(book)
	ix.mu.RLock()
	cands := ix.entries[strings.ToLower(canonical)]
	ix.mu.RUnlock()
	if len(cands) == 0 {
		return nil, canonical, errors.NewNotFound("book", canonical)
	}
	return cands, canonical, nil
}

// ResolveFile selects the corpus file serving a book under the given variant
// preference. An exact variant match wins; with VariantAny, or when no exact
// match exists, the first registered candidate is used.
func (ix *Index) ResolveFile(book string, preferred Variant) (string, error) {
	c, err := ix.resolveCandidate(book, preferred)
	if err != nil {
		return "", err
	}
	return c.Path, nil
}

// ResolveFileExact is like ResolveFile but never falls back: when no
// registered file carries the requested variant it returns a
// VariantUnavailable error instead of the first candidate.
func (ix *Index) ResolveFileExact(book string, v Variant) (string, error) {
	cands, canonical, err := ix.candidates(book)
	if err != nil {
		return "", err
	}
	if v == VariantAny || v == "" {
		return cands[0].Path, nil
	}
	for _, c := range cands {
		if c.Variant == v {
			return c.Path, nil
		}
	}
	return "", errors.NewVariant(canonical, string(v))
}

func (ix *Index) resolveCandidate(book string, preferred Variant) (Candidate, error) {
	cands, canonical, err := ix.candidates(book)
	if err != nil {
		return Candidate{}, err
	}
	if preferred != VariantAny && preferred != "" {
		for _, c := range cands {
			if c.Variant == preferred {
				return c, nil
			}
		}
		// No exact match: fall back to the first registered candidate.
		// Callers that must not fall back use ResolveFileExact.
		slog.Debug("preferred variant unavailable, falling back",
			"book", canonical, "preferred", preferred, "using", cands[0].Variant)
	}
	return cands[0], nil
}

// GetBook resolves, parses (at most once per file) and returns a book. The
// returned Book is owned by the index; callers must treat it as read-only.
func (ix *Index) GetBook(book string, preferred Variant) (*Book, error) {
	c, err := ix.resolveCandidate(book, preferred)
	if err != nil {
		return nil, err
	}
	canonical := books.Normalize(book)
	key := bookKey{book: strings.ToLower(canonical), path: c.Path}

	if b, ok := ix.parsed.Get(key); ok {
		return b, nil
	}

	b, err := ParseFile(c.Path)
	if err != nil {
		return nil, err
	}
	slog.Debug("parsed corpus file", "book", canonical, "path", c.Path, "variant", b.Variant, "chapters", len(b.Chapters))
	ix.parsed.Put(key, b)
	return b, nil
}

// LookupRange returns the verses covered by r in source order, crossing
// chapter boundaries, normalized per opts. Out-of-range endpoints are an
// error, never clamped.
func (ix *Index) LookupRange(r ref.VerseRange, preferred Variant, opts hebrew.Options) ([]string, error) {
	b, err := ix.GetBook(r.Start.Book, preferred)
	if err != nil {
		return nil, err
	}
	verses, err := b.Range(r)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(verses))
	for i, v := range verses {
		out[i] = opts.Apply(v)
	}
	return out, nil
}

// Books returns the sorted canonical names of every registered book.
func (ix *Index) Books() []string {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	names := make([]string, 0, len(ix.entries))
	for key := range ix.entries {
		names = append(names, ix.entries[key][0].Header.English)
	}
	sort.Strings(names)
	return names
}

// Info describes a registered book without requiring a full-body parse.
// Chapters and TotalVerses are filled only when the book is already cached.
type Info struct {
	English     string
	Hebrew      string
	Source      string
	URL         string
	Variant     Variant
	Path        string
	Variants    []Variant
	Chapters    int
	TotalVerses int
}

// Info returns header-level metadata for a book under the given preference.
func (ix *Index) Info(book string, preferred Variant) (*Info, error) {
	c, err := ix.resolveCandidate(book, preferred)
	if err != nil {
		return nil, err
	}
	cands, canonical, err := ix.candidates(book)
	if err != nil {
		return nil, err
	}

	info := &Info{
		English: c.Header.English,
		Hebrew:  c.Header.Hebrew,
		Source:  c.Header.Source,
		URL:     c.Header.URL,
		Variant: c.Variant,
		Path:    c.Path,
	}
	for _, cand := range cands {
		info.Variants = append(info.Variants, cand.Variant)
	}
	key := bookKey{book: strings.ToLower(canonical), path: c.Path}
	if b, ok := ix.parsed.Get(key); ok {
		info.Chapters = len(b.Chapters)
		info.TotalVerses = b.TotalVerses()
	}
	return info, nil
}

// Stats reports parse-cache statistics.
func (ix *Index) Stats() cache.Stats {
	return ix.parsed.Stats()
}
