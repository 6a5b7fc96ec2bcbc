package entity

import "strings"

// CardDelimiter separates the front and the back of a rendered card line.
const CardDelimiter = "|"

// DeckFormat selects the storage used for a generated deck.
type DeckFormat string

const (
	DeckFormatText   DeckFormat = "text"
	DeckFormatSQLite DeckFormat = "sqlite"
)

// ParseDeckFormat validates a configured deck format, case-insensitively.
func ParseDeckFormat(value string) (DeckFormat, bool) {
	switch DeckFormat(strings.ToLower(strings.TrimSpace(value))) {
	case DeckFormatText, "":
		return DeckFormatText, true
	case DeckFormatSQLite:
		return DeckFormatSQLite, true
	default:
		return "", false
	}
}

// Deck is a named set of rendered card lines ready to be stored.
type Deck struct {
	Name  string
	Lines []string
}

// DeckRow is one card line split into its two sides.
type DeckRow struct {
	Front string
	Back  string
}

// ParseDeckLine splits a rendered line on the first delimiter.
func ParseDeckLine(line string) DeckRow {
	line = strings.TrimSuffix(line, "\n")
	front, back, _ := strings.Cut(line, CardDelimiter)
	return DeckRow{Front: front, Back: back}
}

// Rows splits every line of the deck.
func (d Deck) Rows() []DeckRow {
	rows := make([]DeckRow, 0, len(d.Lines))
	for _, line := range d.Lines {
		rows = append(rows, ParseDeckLine(line))
	}
	return rows
}
