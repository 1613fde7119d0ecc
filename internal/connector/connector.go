// Package connector exposes the facade consumed by reading applications:
// text lookup by reference, by verse coordinates, and by liturgical reading
// name, over a locally indexed corpus and a lectionary schedule.
package connector

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/FocuswithJustin/TanachReader/core/corpus"
	"github.com/FocuswithJustin/TanachReader/core/errors"
	"github.com/FocuswithJustin/TanachReader/core/hebrew"
	"github.com/FocuswithJustin/TanachReader/core/lectionary"
	"github.com/FocuswithJustin/TanachReader/core/ref"
	"github.com/FocuswithJustin/TanachReader/internal/config"
	"github.com/FocuswithJustin/TanachReader/internal/logging"
)

// Diagnostic records one verse range that a liturgical reading had to skip.
type Diagnostic struct {
	ID        string    // unique event id
	Time      time.Time // when the skip happened
	Operation string    // facade operation ("parasha", "haftarah", "maftir")
	Reading   string    // reading name as requested
	Range     string    // the range that could not be served
	Err       string    // underlying error text
}

// Connector composes a corpus index, an optional lectionary schedule, and
// the normalization defaults from configuration.
//
// All lookup methods are safe for concurrent use. Reindex is exclusive, per
// the corpus.Index contract.
type Connector struct {
	index     *corpus.Index
	schedule  *lectionary.Schedule
	preferred corpus.Variant
	opts      hebrew.Options
	cycle     int

	mu    sync.Mutex
	diags []Diagnostic
}

// New builds a connector from configuration: scans the corpus directory and,
// when a lectionary path is configured, loads the schedule.
func New(cfg config.Connector) (*Connector, error) {
	preferred, err := corpus.ParseVariant(cfg.PreferredFormat)
	if err != nil {
		return nil, err
	}
	index, err := corpus.NewIndex(cfg.TanachDir)
	if err != nil {
		return nil, err
	}
	var schedule *lectionary.Schedule
	if cfg.SedrotPath != "" {
		schedule, err = lectionary.LoadFile(cfg.SedrotPath)
		if err != nil {
			return nil, err
		}
	}
	return &Connector{
		index:     index,
		schedule:  schedule,
		preferred: preferred,
		cycle:     cfg.Cycle,
		opts: hebrew.Options{
			StripCantillation:     cfg.StripCantillation,
			StripVowels:           cfg.StripVowels,
			StripParagraphMarkers: cfg.StripParagraphMarkers,
		},
	}, nil
}

// GetText parses a human-written reference and returns the covered verses
// joined with newlines.
func (c *Connector) GetText(reference string) (string, error) {
	r, err := ref.Parse(reference)
	if err != nil {
		return "", err
	}
	verses, err := c.index.LookupRange(r, c.preferred, c.opts)
	if err != nil {
		return "", err
	}
	return strings.Join(verses, "\n"), nil
}

// GetVerse returns a single verse by book name and 1-indexed coordinates.
func (c *Connector) GetVerse(book string, chapter, verse int) (string, error) {
	b, err := c.index.GetBook(book, c.preferred)
	if err != nil {
		return "", err
	}
	text, err := b.Verse(chapter, verse)
	if err != nil {
		return "", err
	}
	return c.opts.Apply(text), nil
}

// GetChapter returns a whole chapter, one element per verse.
func (c *Connector) GetChapter(book string, chapter int) ([]string, error) {
	b, err := c.index.GetBook(book, c.preferred)
	if err != nil {
		return nil, err
	}
	ch, ok := b.ChapterByNumber(chapter)
	if !ok {
		return nil, errors.NewNotFound("chapter", fmt.Sprintf("%s %d", b.English, chapter))
	}
	out := make([]string, len(ch.Verses))
	for i, v := range ch.Verses {
		out[i] = c.opts.Apply(v)
	}
	return out, nil
}

// GetParasha resolves a liturgical reading and returns its text. A range the
// corpus cannot serve is skipped and recorded as a diagnostic rather than
// aborting the reading; the error return is reserved for resolver failures
// and for readings where nothing at all was fetchable.
func (c *Connector) GetParasha(name, readingType, aliyah string, cycle int) (string, error) {
	if c.schedule == nil {
		return "", errors.NewNotFound("lectionary schedule", name)
	}
	ranges, err := c.schedule.Resolve(name, readingType, aliyah, cycle)
	if err != nil {
		return "", err
	}
	return c.fetchRanges("parasha", name, ranges)
}

// GetHaftarah returns the Haftarah text for a reading name.
func (c *Connector) GetHaftarah(name string, cycle int) (string, error) {
	if c.schedule == nil {
		return "", errors.NewNotFound("lectionary schedule", name)
	}
	ranges, err := c.schedule.Haftarah(name, cycle)
	if err != nil {
		return "", err
	}
	return c.fetchRanges("haftarah", name, ranges)
}

// GetMaftir returns the Maftir text for a reading name.
func (c *Connector) GetMaftir(name string, cycle int) (string, error) {
	if c.schedule == nil {
		return "", errors.NewNotFound("lectionary schedule", name)
	}
	ranges, err := c.schedule.Maftir(name, cycle)
	if err != nil {
		return "", err
	}
	return c.fetchRanges("maftir", name, ranges)
}

func (c *Connector) fetchRanges(operation, name string, ranges []ref.VerseRange) (string, error) {
	var parts []string
	var lastErr error
	for _, r := range ranges {
		verses, err := c.index.LookupRange(r, c.preferred, c.opts)
		if err != nil {
			lastErr = err
			c.recordSkip(operation, name, r, err)
			continue
		}
		parts = append(parts, strings.Join(verses, "\n"))
	}
	if len(parts) == 0 && lastErr != nil {
		return "", errors.Wrapf(lastErr, "no text available for %s %s", operation, name)
	}
	return strings.Join(parts, "\n"), nil
}

func (c *Connector) recordSkip(operation, name string, r ref.VerseRange, err error) {
	d := Diagnostic{
		ID:        uuid.NewString(),
		Time:      time.Now(),
		Operation: operation,
		Reading:   name,
		Range:     r.String(),
		Err:       err.Error(),
	}
	c.mu.Lock()
	c.diags = append(c.diags, d)
	c.mu.Unlock()
	logging.Warn("skipping unreadable range",
		"diagnostic_id", d.ID,
		"operation", operation,
		"reading", name,
		"range", d.Range,
		"error", err)
}

// Diagnostics returns a copy of the skip events recorded since construction
// or the last ClearDiagnostics.
func (c *Connector) Diagnostics() []Diagnostic {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Diagnostic, len(c.diags))
	copy(out, c.diags)
	return out
}

// ClearDiagnostics discards all recorded skip events.
func (c *Connector) ClearDiagnostics() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.diags = nil
}

// ListAvailableBooks returns the sorted canonical names of every indexed
// book without parsing any file body.
func (c *Connector) ListAvailableBooks() []string {
	return c.index.Books()
}

// GetBookInfo returns header-level metadata for a book.
func (c *Connector) GetBookInfo(name string) (*corpus.Info, error) {
	return c.index.Info(name, c.preferred)
}

// Cycle returns the configured default reading cycle.
func (c *Connector) Cycle() int {
	return c.cycle
}

// Index exposes the underlying corpus index, for maintenance tooling.
func (c *Connector) Index() *corpus.Index {
	return c.index
}

// Reindex re-scans the corpus directory and drops all cached books.
func (c *Connector) Reindex() error {
	return c.index.Reindex()
}

// ReadingNames returns the lectionary reading names in document order, or
// nil when no schedule is configured.
func (c *Connector) ReadingNames() []string {
	if c.schedule == nil {
		return nil
	}
	return c.schedule.Names()
}
