// Package books provides the canonical Tanach book-name table.
//
// Every component that accepts a book name resolves it through this table:
// three-letter reference codes ("GEN", "2KI"), canonical English names
// ("Genesis", "II Kings") and common alternative spellings ("Bereishit",
// "Song of Solomon") all map to one canonical name, case-insensitively.
// Canonical names match the English headers of the tanach.us corpus files.
package books

import "strings"

// codeToBook maps three-letter reference codes to canonical English names.
var codeToBook = map[string]string{
	"GEN": "Genesis",
	"EXO": "Exodus",
	"LEV": "Leviticus",
	"NUM": "Numbers",
	"DEU": "Deuteronomy",
	"JOS": "Joshua",
	"JDG": "Judges",
	"ISA": "Isaiah",
	"JER": "Jeremiah",
	"EZK": "Ezekiel",
	"HOS": "Hosea",
	"JOE": "Joel",
	"AMO": "Amos",
	"OBA": "Obadiah",
	"JON": "Jonah",
	"MIC": "Micah",
	"NAH": "Nahum",
	"HAB": "Habakkuk",
	"ZEP": "Zephaniah",
	"HAG": "Haggai",
	"ZEC": "Zechariah",
	"MAL": "Malachi",
	"PSA": "Psalms",
	"JOB": "Job",
	"PRO": "Proverbs",
	"RUT": "Ruth",
	"SOS": "Song of Songs",
	"LAM": "Lamentations",
	"ECC": "Ecclesiastes",
	"EST": "Esther",
	"DAN": "Daniel",
	"EZR": "Ezra",
	"NEH": "Nehemiah",
	"1CH": "I Chronicles",
	"2CH": "II Chronicles",
	"1SA": "I Samuel",
	"2SA": "II Samuel",
	"1KI": "I Kings",
	"2KI": "II Kings",
}

// altNames maps alternative English spellings and transliterated Hebrew
// names to the canonical name used in corpus file headers.
var altNames = map[string]string{
	"song of solomon": "Song of Songs",
	"song of song":    "Song of Songs",
	"canticles":       "Song of Songs",
	"kohelet":         "Ecclesiastes",
	"qohelet":         "Ecclesiastes",
	"tehillim":        "Psalms",
	"bereishit":       "Genesis",
	"shemot":          "Exodus",
	"vayikra":         "Leviticus",
	"bamidbar":        "Numbers",
	"devarim":         "Deuteronomy",
	"1 kings":         "I Kings",
	"2 kings":         "II Kings",
	"1 samuel":        "I Samuel",
	"2 samuel":        "II Samuel",
	"1 chronicles":    "I Chronicles",
	"2 chronicles":    "II Chronicles",
	"psalm":           "Psalms",
}

// canonical is the lowercase canonical-name index, built from codeToBook.
var canonical = func() map[string]string {
	m := make(map[string]string, len(codeToBook))
	for _, name := range codeToBook {
		m[strings.ToLower(name)] = name
	}
	return m
}()

// FromCode resolves a three-letter book code ("GEN", "2KI") to its canonical
// name. The lookup is case-insensitive.
func FromCode(code string) (string, bool) {
	name, ok := codeToBook[strings.ToUpper(strings.TrimSpace(code))]
	return name, ok
}

// Canonical resolves any accepted spelling of a book name — canonical name,
// code, or alternative spelling — to the canonical English name. The second
// return value reports whether the name was recognized.
func Canonical(name string) (string, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return "", false
	}
	if c, ok := canonical[key]; ok {
		return c, true
	}
	if c, ok := altNames[key]; ok {
		return c, true
	}
	if c, ok := codeToBook[strings.ToUpper(key)]; ok {
		return c, true
	}
	return "", false
}

// Normalize resolves name through the alias table when possible and
// otherwise returns the trimmed input unchanged. Corpus scanning uses this
// so that files for books outside the table still register under their
// header name.
func Normalize(name string) string {
	if c, ok := Canonical(name); ok {
		return c
	}
	return strings.TrimSpace(name)
}

// IsKnown reports whether name resolves to a canonical book.
func IsKnown(name string) bool {
	_, ok := Canonical(name)
	return ok
}
