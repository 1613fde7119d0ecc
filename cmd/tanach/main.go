// Command tanach serves a local Tanach corpus from the command line: text by
// reference, by verse coordinates, or by liturgical reading name.
package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/FocuswithJustin/TanachReader/core/corpus"
	"github.com/FocuswithJustin/TanachReader/core/hebrew"
	"github.com/FocuswithJustin/TanachReader/internal/config"
	"github.com/FocuswithJustin/TanachReader/internal/connector"
	"github.com/FocuswithJustin/TanachReader/internal/logging"
	"github.com/FocuswithJustin/TanachReader/internal/sqlite"
)

const version = "0.1.0"

// CLI defines the command-line interface for tanach.
var CLI struct {
	// Global flags
	Config    string `name:"config" short:"c" help:"Path to JSON settings file" type:"path"`
	TanachDir string `name:"tanach-dir" short:"d" help:"Corpus directory (overrides config)" type:"path"`
	Sedrot    string `name:"sedrot" help:"Lectionary XML path (overrides config)" type:"path"`
	Format    string `name:"format" short:"f" help:"Preferred file variant: cantillation|text_only|masorah|any"`
	Strip     bool   `name:"strip" help:"Strip cantillation marks from output"`
	Vowels    bool   `name:"vowels" help:"Also strip vowel points (implies --strip)"`

	Books    BooksCmd    `cmd:"" help:"List indexed books"`
	Info     InfoCmd     `cmd:"" help:"Show book metadata"`
	Text     TextCmd     `cmd:"" help:"Print the text of a verse-range reference"`
	Verse    VerseCmd    `cmd:"" help:"Print a single verse by coordinates"`
	Chapter  ChapterCmd  `cmd:"" help:"Print a whole chapter, one verse per line"`
	Parasha  ParashaCmd  `cmd:"" help:"Print a liturgical reading"`
	Haftarah HaftarahCmd `cmd:"" help:"Print the Haftarah of a reading"`
	Maftir   MaftirCmd   `cmd:"" help:"Print the Maftir of a reading"`
	Export   ExportGroup `cmd:"" help:"Export the corpus"`
	Reindex  ReindexCmd  `cmd:"" help:"Re-scan the corpus directory and report what was found"`
	Version  VersionCmd  `cmd:"" help:"Print version information"`
}

// loadConfig merges the settings file with command-line overrides and
// initializes logging.
func loadConfig() (config.Config, error) {
	cfg, err := config.LoadOptional(CLI.Config)
	if err != nil {
		return cfg, err
	}
	if CLI.TanachDir != "" {
		cfg.Connector.TanachDir = CLI.TanachDir
	}
	if CLI.Sedrot != "" {
		cfg.Connector.SedrotPath = CLI.Sedrot
	}
	if CLI.Format != "" {
		cfg.Connector.PreferredFormat = CLI.Format
	}
	if CLI.Strip {
		cfg.Connector.StripCantillation = true
	}
	if CLI.Vowels {
		cfg.Connector.StripCantillation = true
		cfg.Connector.StripVowels = true
	}
	logging.InitLogger(logging.ParseLevel(cfg.Logging.Level), logging.ParseFormat(cfg.Logging.Format))
	return cfg, nil
}

// connectorSettings derives the variant preference and normalization
// options a connector built from cfg would use.
func connectorSettings(cfg config.Connector) (corpus.Variant, hebrew.Options, error) {
	preferred, err := corpus.ParseVariant(cfg.PreferredFormat)
	if err != nil {
		return "", hebrew.Options{}, err
	}
	return preferred, hebrew.Options{
		StripCantillation:     cfg.StripCantillation,
		StripVowels:           cfg.StripVowels,
		StripParagraphMarkers: cfg.StripParagraphMarkers,
	}, nil
}

func newConnector() (*connector.Connector, config.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, cfg, err
	}
	c, err := connector.New(cfg.Connector)
	return c, cfg, err
}

// BooksCmd lists every indexed book.
type BooksCmd struct{}

func (c *BooksCmd) Run(ctx *kong.Context) error {
	conn, _, err := newConnector()
	if err != nil {
		return err
	}
	for _, name := range conn.ListAvailableBooks() {
		fmt.Println(name)
	}
	return nil
}

// InfoCmd shows header metadata for one book.
type InfoCmd struct {
	Book string `arg:"" help:"Book name, code, or alias"`
}

func (c *InfoCmd) Run(ctx *kong.Context) error {
	conn, _, err := newConnector()
	if err != nil {
		return err
	}
	info, err := conn.GetBookInfo(c.Book)
	if err != nil {
		return err
	}
	fmt.Printf("Name:     %s\n", info.English)
	fmt.Printf("Hebrew:   %s\n", info.Hebrew)
	fmt.Printf("Source:   %s\n", info.Source)
	if info.URL != "" {
		fmt.Printf("URL:      %s\n", info.URL)
	}
	fmt.Printf("Variant:  %s\n", info.Variant)
	fmt.Printf("File:     %s\n", info.Path)
	if len(info.Variants) > 1 {
		labels := make([]string, len(info.Variants))
		for i, v := range info.Variants {
			labels[i] = string(v)
		}
		fmt.Printf("Variants: %s\n", strings.Join(labels, ", "))
	}
	if info.Chapters > 0 {
		fmt.Printf("Chapters: %d (%d verses)\n", info.Chapters, info.TotalVerses)
	}
	return nil
}

// TextCmd prints the text of a reference such as "GEN1:1-2:3" or
// "Genesis 1:1-2:3".
type TextCmd struct {
	Reference []string `arg:"" help:"Verse-range reference"`
}

func (c *TextCmd) Run(ctx *kong.Context) error {
	conn, _, err := newConnector()
	if err != nil {
		return err
	}
	text, err := conn.GetText(strings.Join(c.Reference, " "))
	if err != nil {
		return err
	}
	fmt.Println(text)
	return nil
}

// VerseCmd prints a single verse.
type VerseCmd struct {
	Book    string `arg:"" help:"Book name, code, or alias"`
	Chapter int    `arg:"" help:"Chapter number (1-indexed)"`
	Verse   int    `arg:"" help:"Verse number (1-indexed)"`
}

func (c *VerseCmd) Run(ctx *kong.Context) error {
	conn, _, err := newConnector()
	if err != nil {
		return err
	}
	text, err := conn.GetVerse(c.Book, c.Chapter, c.Verse)
	if err != nil {
		return err
	}
	fmt.Println(text)
	return nil
}

// ChapterCmd prints a whole chapter.
type ChapterCmd struct {
	Book    string `arg:"" help:"Book name, code, or alias"`
	Chapter int    `arg:"" help:"Chapter number (1-indexed)"`
}

func (c *ChapterCmd) Run(ctx *kong.Context) error {
	conn, _, err := newConnector()
	if err != nil {
		return err
	}
	verses, err := conn.GetChapter(c.Book, c.Chapter)
	if err != nil {
		return err
	}
	for _, v := range verses {
		fmt.Println(v)
	}
	return nil
}

// printDiagnostics reports any ranges a reading had to skip.
func printDiagnostics(conn *connector.Connector) {
	for _, d := range conn.Diagnostics() {
		fmt.Printf("skipped %s (%s): %s\n", d.Range, d.ID, d.Err)
	}
}

// ParashaCmd prints a liturgical reading.
type ParashaCmd struct {
	Name   string `arg:"" help:"Reading name, e.g. Bereshit"`
	Type   string `name:"type" default:"Torah" help:"Reading type filter"`
	Aliyah string `name:"aliyah" help:"Single aliyah code, e.g. KOHEN"`
	Cycle  int    `name:"cycle" default:"-1" help:"Reading cycle (default: from config)"`
}

func (c *ParashaCmd) Run(ctx *kong.Context) error {
	conn, cfg, err := newConnector()
	if err != nil {
		return err
	}
	cycle := c.Cycle
	if cycle < 0 {
		cycle = cfg.Connector.Cycle
	}
	text, err := conn.GetParasha(c.Name, c.Type, c.Aliyah, cycle)
	if err != nil {
		return err
	}
	fmt.Println(text)
	printDiagnostics(conn)
	return nil
}

// HaftarahCmd prints the Haftarah of a reading.
type HaftarahCmd struct {
	Name  string `arg:"" help:"Reading name"`
	Cycle int    `name:"cycle" default:"-1" help:"Reading cycle (default: from config)"`
}

func (c *HaftarahCmd) Run(ctx *kong.Context) error {
	conn, cfg, err := newConnector()
	if err != nil {
		return err
	}
	cycle := c.Cycle
	if cycle < 0 {
		cycle = cfg.Connector.Cycle
	}
	text, err := conn.GetHaftarah(c.Name, cycle)
	if err != nil {
		return err
	}
	fmt.Println(text)
	printDiagnostics(conn)
	return nil
}

// MaftirCmd prints the Maftir of a reading.
type MaftirCmd struct {
	Name  string `arg:"" help:"Reading name"`
	Cycle int    `name:"cycle" default:"-1" help:"Reading cycle (default: from config)"`
}

func (c *MaftirCmd) Run(ctx *kong.Context) error {
	conn, cfg, err := newConnector()
	if err != nil {
		return err
	}
	cycle := c.Cycle
	if cycle < 0 {
		cycle = cfg.Connector.Cycle
	}
	text, err := conn.GetMaftir(c.Name, cycle)
	if err != nil {
		return err
	}
	fmt.Println(text)
	printDiagnostics(conn)
	return nil
}

// ExportGroup contains corpus export operations.
type ExportGroup struct {
	Sqlite ExportSqliteCmd `cmd:"" help:"Export the corpus into a SQLite database"`
}

// ExportSqliteCmd exports every indexed book into a SQLite database.
type ExportSqliteCmd struct {
	Output string `arg:"" help:"Output database path" type:"path"`
}

func (c *ExportSqliteCmd) Run(ctx *kong.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	conn, err := connector.New(cfg.Connector)
	if err != nil {
		return err
	}
	preferred, opts, err := connectorSettings(cfg.Connector)
	if err != nil {
		return err
	}
	if err := sqlite.Export(context.Background(), c.Output, conn.Index(), preferred, opts); err != nil {
		return err
	}
	fmt.Printf("exported %d books to %s\n", len(conn.ListAvailableBooks()), c.Output)
	return nil
}

// ReindexCmd re-scans the corpus directory.
type ReindexCmd struct{}

func (c *ReindexCmd) Run(ctx *kong.Context) error {
	conn, _, err := newConnector()
	if err != nil {
		return err
	}
	if err := conn.Reindex(); err != nil {
		return err
	}
	books := conn.ListAvailableBooks()
	fmt.Printf("indexed %d books\n", len(books))
	return nil
}

// VersionCmd prints version information.
type VersionCmd struct{}

func (c *VersionCmd) Run(ctx *kong.Context) error {
	fmt.Printf("tanach version %s\n", version)
	return nil
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("tanach"),
		kong.Description("Local Tanach corpus reader and lectionary resolver"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)
	err := ctx.Run(ctx)
	ctx.FatalIfErrorf(err)
}
