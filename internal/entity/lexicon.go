package entity

import "strings"

// Unglossed is the placeholder Eldamo uses for words without a known meaning.
const Unglossed = "[unglossed]"

const (
	archaicMark    = "†"
	deprecatedMark = "-"
)

// Reference points at another lexicon entry by headword. An empty Language means
// "same language as the referencing entry".
type Reference struct {
	Headword string
	Language Language
}

// RawEntry is one `<word>` element of the lexicon. It is never mutated by the pipeline.
type RawEntry struct {
	Headword   string
	Gloss      string
	NeoGloss   string
	Speech     string
	Stem       string
	Category   string
	Phonetic   string
	Language   Language
	Mark       string
	See        *Reference
	Deprecated bool
}

// IsArchaic reports whether the entry carries the archaic mark.
func (e RawEntry) IsArchaic() bool {
	return strings.Contains(e.Mark, archaicMark)
}

// HasDeprecationMark reports whether the entry is deprecated on its own, either via a
// `<deprecated>` element or a terminal deprecation mark.
func (e RawEntry) HasDeprecationMark() bool {
	return e.Deprecated || strings.HasSuffix(strings.TrimSpace(e.Mark), deprecatedMark)
}

// Category maps a category code prefix to a human readable label.
type Category struct {
	ID    string
	Label string
}

// Lexicon is the loaded dataset.
type Lexicon struct {
	Entries    []RawEntry
	Categories []Category
}

// CategoryLabel resolves a category code with the first category whose ID is a prefix of it.
func (lx *Lexicon) CategoryLabel(code string) string {
	return LookupCategory(lx.Categories, code)
}

// LookupCategory returns the label of the first category whose ID prefixes code.
func LookupCategory(categories []Category, code string) string {
	if code == "" {
		return ""
	}
	for _, cat := range categories {
		if strings.HasPrefix(code, cat.ID) {
			return cat.Label
		}
	}
	return ""
}
