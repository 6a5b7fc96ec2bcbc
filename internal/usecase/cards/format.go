package cards

import (
	"sort"
	"strings"

	"github.com/samber/lo"

	"github.com/eslsoft/eldamo-anki/internal/entity"
)

// FieldDelimiter separates the front and the back of a card line.
const FieldDelimiter = entity.CardDelimiter

// FormatCard renders a card as `headword[ (extra)]|gloss[ (pos)]` followed by a newline.
func FormatCard(card *entity.Card) string {
	var b strings.Builder
	b.WriteString(card.Headword)
	if card.ExtraInfo != "" {
		b.WriteString(" (" + card.ExtraInfo + ")")
	}
	b.WriteString(FieldDelimiter)
	b.WriteString(card.Gloss)
	if card.PartOfSpeech != "" {
		b.WriteString(" (" + card.PartOfSpeech + ")")
	}
	b.WriteString("\n")
	return b.String()
}

// FormatCards renders the active cards and sorts the lines lexicographically.
func FormatCards(cards []*entity.Card) []string {
	lines := lo.FilterMap(cards, func(c *entity.Card, _ int) (string, bool) {
		if !c.Active() {
			return "", false
		}
		return FormatCard(c), true
	})
	sort.Strings(lines)
	return lines
}
