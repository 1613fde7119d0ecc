package corpus

import (
	"fmt"
	"strings"
)

// Variant identifies the textual representation a corpus file carries. It is
// a closed enumeration: every file classifies into exactly one value,
// produced by ClassifyVariant and consumed everywhere else as a typed value.
type Variant string

const (
	// VariantCantillation is full cantillation: accents and vowel marks.
	VariantCantillation Variant = "cantillation"
	// VariantTextOnly is the consonantal text.
	VariantTextOnly Variant = "text_only"
	// VariantMasorah is the accented, markup-bearing Masorah edition.
	VariantMasorah Variant = "masorah"
	// VariantUnknown is any source label that matches no known edition.
	VariantUnknown Variant = "unknown"

	// VariantAny is a selection preference, not a classification: the first
	// registered candidate wins. ClassifyVariant never returns it.
	VariantAny Variant = "any"
)

// ClassifyVariant maps a source-variant label line (or a file name) to its
// Variant by case-insensitive substring matching against the known edition
// labels used by tanach.us.
func ClassifyVariant(label string) Variant {
	l := strings.ToLower(label)
	switch {
	case strings.Contains(l, "ta'amei"), strings.Contains(l, "ta_amei"), strings.Contains(l, "taamei"):
		return VariantCantillation
	case strings.Contains(l, "text only"), strings.Contains(l, "text_only"):
		return VariantTextOnly
	case strings.Contains(l, "masorah"):
		return VariantMasorah
	default:
		return VariantUnknown
	}
}

// ParseVariant parses a configuration or CLI value into a Variant.
func ParseVariant(s string) (Variant, error) {
	switch Variant(strings.ToLower(strings.TrimSpace(s))) {
	case VariantCantillation:
		return VariantCantillation, nil
	case VariantTextOnly:
		return VariantTextOnly, nil
	case VariantMasorah:
		return VariantMasorah, nil
	case VariantUnknown:
		return VariantUnknown, nil
	case VariantAny, "":
		return VariantAny, nil
	default:
		return "", fmt.Errorf("unknown variant %q", s)
	}
}
