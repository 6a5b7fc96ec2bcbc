package cards

import (
	"strings"

	"github.com/samber/lo"

	"github.com/eslsoft/eldamo-anki/internal/entity"
)

const extraInfoSeparator = ", "

// duplicationMarkers distinguish homographs in the lexicon and carry no meaning on a card.
var duplicationMarkers = strings.NewReplacer(
	"¹", "", "²", "", "³", "", "⁴", "", "⁵", "",
	"⁶", "", "⁷", "", "⁸", "", "⁹", "", "⁰", "",
)

// Deduplicate resolves headword and gloss duplicates in place and returns the cards that
// survive, in their original order.
func Deduplicate(cards []*entity.Card) []*entity.Card {
	for _, c := range cards {
		c.Headword = duplicationMarkers.Replace(c.Headword)
	}

	for _, c := range cards {
		if !c.Active() {
			continue
		}
		if group := headwordDuplicates(cards, c); len(group) > 1 {
			resolveHeadwordDuplicates(group)
		}
		if !c.Active() {
			continue
		}
		if group := glossDuplicates(cards, c); len(group) > 1 {
			mergeField(group, headwordField)
		}
	}

	active := lo.Filter(cards, func(c *entity.Card, _ int) bool { return c.Active() })
	cleanupExtraInfo(active)
	return active
}

func headwordDuplicates(cards []*entity.Card, card *entity.Card) []*entity.Card {
	return lo.Filter(cards, func(c *entity.Card, _ int) bool {
		return c.Active() && c.Headword == card.Headword && c.ExtraInfo == card.ExtraInfo
	})
}

func glossDuplicates(cards []*entity.Card, card *entity.Card) []*entity.Card {
	gloss := stripUncertainty(card.Gloss)
	return lo.Filter(cards, func(c *entity.Card, _ int) bool {
		return c.Active() && stripUncertainty(c.Gloss) == gloss && c.PartOfSpeech == card.PartOfSpeech
	})
}

// resolveHeadwordDuplicates tries to tell the group apart by part of speech, then by
// category, and merges the glosses of whatever still collides.
func resolveHeadwordDuplicates(group []*entity.Card) {
	for _, field := range []cardField{partOfSpeechField, categoryField} {
		disambiguate(group, field)
		group = headwordDuplicates(group, group[0])
		if len(group) < 2 {
			return
		}
	}
	mergeField(group, glossField)
}

// disambiguate appends the field value to ExtraInfo when the value differs within the
// group and every card sharing the same headword and gloss carries it.
func disambiguate(group []*entity.Card, field cardField) {
	first := field.get(group[0])
	uniform := lo.EveryBy(group, func(c *entity.Card) bool { return field.get(c) == first })
	if uniform {
		return
	}
	annotate := lo.Filter(group, func(card *entity.Card, _ int) bool {
		return lo.EveryBy(group, func(c *entity.Card) bool {
			if c.Headword != card.Headword || c.Gloss != card.Gloss {
				return true
			}
			return field.get(c) != ""
		})
	})
	for _, c := range annotate {
		if c.ExtraInfo != "" {
			c.ExtraInfo += extraInfoSeparator
		}
		c.ExtraInfo += field.get(c)
	}
}

// cleanupExtraInfo clears annotations that no longer separate the card from another card
// with the same headword.
func cleanupExtraInfo(cards []*entity.Card) {
	needed := make(map[*entity.Card]bool, len(cards))
	for _, c := range cards {
		if c.ExtraInfo == "" {
			continue
		}
		needed[c] = lo.SomeBy(cards, func(other *entity.Card) bool {
			return other != c && other.Headword == c.Headword && other.Gloss != c.Gloss
		})
	}
	for c, keep := range needed {
		if !keep {
			c.ExtraInfo = ""
		}
	}
}
