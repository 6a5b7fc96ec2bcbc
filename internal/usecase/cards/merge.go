package cards

import (
	"regexp"
	"sort"
	"strings"
	"unicode"

	"github.com/samber/lo"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/eslsoft/eldamo-anki/internal/entity"
)

const (
	mergeSeparator   = "; "
	combiningAcute   = '\u0301'
	combiningUmlaut  = '\u0308'
	uncertaintyChars = "*?"
)

// sortMarkers orders merged values: plain values first, then by the first marker found.
var sortMarkers = []string{"!", "*", "?", "†", "(lit.)", "(orig.)"}

var uncertaintyMarkers = []string{"*", "?", "⚠️"}

var (
	parenthesisedRe  = regexp.MustCompile(`\(.*?\)`)
	parenthesisStrip = strings.NewReplacer("(", "", ")", "")
	uncertaintyStrip = strings.NewReplacer("*", "", "?", "", "⚠️", "")
)

// foldAccents removes acute accents and diaereses; circumflexes stay distinct.
var foldAccents = transform.Chain(
	norm.NFD,
	runes.Remove(runes.Predicate(func(r rune) bool { return r == combiningAcute || r == combiningUmlaut })),
	norm.NFC,
)

// cardField is a typed accessor for one mergeable text field of a card.
type cardField struct {
	name string
	get  func(*entity.Card) string
	set  func(*entity.Card, string)
}

var (
	headwordField = cardField{
		name: "headword",
		get:  func(c *entity.Card) string { return c.Headword },
		set:  func(c *entity.Card, v string) { c.Headword = v },
	}
	glossField = cardField{
		name: "gloss",
		get:  func(c *entity.Card) string { return c.Gloss },
		set:  func(c *entity.Card, v string) { c.Gloss = v },
	}
	partOfSpeechField = cardField{
		name: "part_of_speech",
		get:  func(c *entity.Card) string { return c.PartOfSpeech },
		set:  func(c *entity.Card, v string) { c.PartOfSpeech = v },
	}
	categoryField = cardField{
		name: "category",
		get:  func(c *entity.Card) string { return c.Category },
		set:  func(c *entity.Card, v string) { c.Category = v },
	}
)

// mergeField folds the field values of the group into the first card; the rest are
// marked as merged into it.
func mergeField(group []*entity.Card, field cardField) {
	if len(group) == 0 {
		return
	}
	values := lo.FilterMap(group, func(c *entity.Card, _ int) (string, bool) {
		v := field.get(c)
		return v, v != ""
	})
	field.set(group[0], MergeValues(values))
	for _, c := range group[1:] {
		c.MergeInto(group[0])
	}
}

// MergeValues drops variant-redundant values, removes exact duplicates, orders the rest
// by marker priority and joins them with "; ".
func MergeValues(values []string) string {
	kept := lo.Uniq(RemoveVariants(values))
	sort.SliceStable(kept, func(i, j int) bool {
		ri, rj := markerRank(kept[i]), markerRank(kept[j])
		if ri != rj {
			return ri < rj
		}
		return kept[i] < kept[j]
	})
	return strings.Join(kept, mergeSeparator)
}

// RemoveVariants drops every value that is a variant of another value in the list. When
// that would leave nothing, the input is returned unchanged.
func RemoveVariants(values []string) []string {
	kept := lo.Filter(values, func(word string, _ int) bool {
		return !lo.SomeBy(values, func(canonical string) bool {
			return isVariantOf(word, canonical)
		})
	})
	if len(kept) == 0 {
		return values
	}
	return kept
}

// isVariantOf reports whether word is a less canonical spelling of canonical.
func isVariantOf(word, canonical string) bool {
	if word == canonical {
		return false
	}
	caseFlip := hasUpper(word) != hasUpper(canonical)

	triggered := hasParenthesisedVariant(canonical) ||
		(hasUncertainty(word) && !hasUncertainty(canonical)) ||
		(hasMark(word, combiningAcute) && !hasMark(canonical, combiningAcute)) ||
		(hasMark(canonical, combiningUmlaut) && !hasMark(word, combiningUmlaut)) ||
		(hasUpper(word) && !hasUpper(canonical))
	if !triggered {
		return false
	}

	w := comparable(word, caseFlip)
	c := comparable(canonical, caseFlip)
	return w == parenthesisStrip.Replace(c) || w == parenthesisedRe.ReplaceAllString(c, "")
}

func comparable(s string, lower bool) string {
	s = uncertaintyStrip.Replace(s)
	folded, _, err := transform.String(foldAccents, s)
	if err == nil {
		s = folded
	}
	if lower {
		s = strings.ToLower(s)
	}
	return s
}

func hasParenthesisedVariant(s string) bool {
	return strings.Contains(s, "(") && strings.Contains(s, ")")
}

func hasUncertainty(s string) bool {
	return lo.SomeBy(uncertaintyMarkers, func(m string) bool { return strings.Contains(s, m) })
}

func hasMark(s string, mark rune) bool {
	return strings.ContainsRune(norm.NFD.String(s), mark)
}

func hasUpper(s string) bool {
	return strings.IndexFunc(s, unicode.IsUpper) >= 0
}

func markerRank(s string) int {
	for i, m := range sortMarkers {
		if strings.Contains(s, m) {
			return i + 1
		}
	}
	return 0
}

// stripUncertainty removes the * and ? markers used when comparing glosses.
func stripUncertainty(s string) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(uncertaintyChars, r) {
			return -1
		}
		return r
	}, s)
}
