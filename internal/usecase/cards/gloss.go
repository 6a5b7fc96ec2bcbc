package cards

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/samber/lo"

	"github.com/eslsoft/eldamo-anki/internal/entity"
)

const verbPrefix = "to "

// defectiveVerbs never take the infinitive prefix.
var defectiveVerbs = map[string]struct{}{
	"can": {}, "could": {}, "may": {}, "might": {}, "must": {}, "ought": {},
	"quoth": {}, "said": {}, "says": {}, "shall": {}, "should": {}, "would": {},
}

// literalMarkers are moved in front of the infinitive prefix.
var literalMarkers = []string{"(lit.)", "(orig.)"}

// SplitSenses splits a gloss on commas and semicolons that are not enclosed in brackets.
// Senses are trimmed and empty ones are dropped.
func SplitSenses(gloss string) []string {
	var (
		senses []string
		depth  int
		start  int
	)
	for i, r := range gloss {
		switch r {
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			if depth > 0 {
				depth--
			}
		case ',', ';':
			if depth == 0 {
				senses = append(senses, gloss[start:i])
				start = i + 1
			}
		}
	}
	senses = append(senses, gloss[start:])

	return lo.FilterMap(senses, func(s string, _ int) (string, bool) {
		s = strings.TrimSpace(s)
		return s, s != ""
	})
}

// SplitCard fans a card out into one card per sense.
func SplitCard(card *entity.Card) []*entity.Card {
	senses := SplitSenses(card.Gloss)
	verb := isVerb(card.PartOfSpeech)

	out := make([]*entity.Card, 0, len(senses))
	for _, sense := range senses {
		c := card.Clone()
		if verb {
			sense = withVerbPrefix(sense)
		}
		c.Gloss = sense
		out = append(out, c)
	}
	return out
}

func isVerb(speech string) bool {
	return lo.Contains(strings.Fields(speech), "v")
}

func withVerbPrefix(sense string) string {
	if hasVerbPrefix(sense) || isDefectiveVerb(sense) {
		return sense
	}
	for _, marker := range literalMarkers {
		if !strings.HasPrefix(sense, marker) {
			continue
		}
		rest := strings.TrimSpace(strings.TrimPrefix(sense, marker))
		if rest == "" || hasVerbPrefix(rest) {
			return sense
		}
		return marker + " " + verbPrefix + rest
	}
	return verbPrefix + sense
}

// hasVerbPrefix accepts "to x" in any case and a single leading marker rune such as "*to x".
func hasVerbPrefix(sense string) bool {
	if hasPrefixFold(sense, verbPrefix) {
		return true
	}
	_, rest, ok := cutMarkerRune(sense)
	return ok && hasPrefixFold(rest, verbPrefix)
}

func hasPrefixFold(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}

func isDefectiveVerb(sense string) bool {
	if _, ok := defectiveVerbs[sense]; ok {
		return true
	}
	_, rest, ok := cutMarkerRune(sense)
	if !ok {
		return false
	}
	_, defective := defectiveVerbs[rest]
	return defective
}

func cutMarkerRune(s string) (rune, string, bool) {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || unicode.IsLetter(r) || unicode.IsDigit(r) {
		return 0, s, false
	}
	return r, s[size:], true
}
