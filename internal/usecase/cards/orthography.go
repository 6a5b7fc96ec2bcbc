package cards

import (
	"strings"
	"unicode/utf8"

	"github.com/eslsoft/eldamo-anki/internal/entity"
)

const (
	thorn           = "þ"
	nasalAnnotation = "ñ-"
	wAnnotation     = "w"
)

// spellingRule rewrites a headword once, left to right, without re-reading its own output.
type spellingRule struct {
	name  string
	apply func(string) string
}

// quenyaSpelling is the fixed, ordered modernization contract for Quenya headwords.
// Each rule runs exactly once over the output of the previous one.
var quenyaSpelling = []spellingRule{
	{name: "ks", apply: replaceAll("ks", "x")},
	{name: "Ks", apply: replaceAll("Ks", "X")},
	{name: "kw", apply: replaceAll("kw", "qu")},
	{name: "Kw", apply: replaceAll("Kw", "Qu")},
	{name: "ëa", apply: replaceAll("ëa", "eä")},
	{name: "ea", apply: replaceAll("ea", "eä")},
	{name: "ëo", apply: replaceAll("ëo", "eö")},
	{name: "eo", apply: replaceAll("eo", "eö")},
	{name: "oe", apply: replaceAll("oe", "oë")},
	{name: "k", apply: replaceUnlessFollowedBy("k", "c", "hy")},
	{name: "K", apply: replaceUnlessFollowedBy("K", "C", "hy")},
	{name: "q", apply: replaceUnlessFollowedBy("q", "qu", "u")},
	{name: "Q", apply: replaceUnlessFollowedBy("Q", "Qu", "u")},
	{name: "final e", apply: replaceAtWordEnd("e", "ë")},
}

// NormalizeOrthography folds the stem and phonetic annotation into the headword and applies
// the language specific spelling rules.
func NormalizeOrthography(card *entity.Card) {
	if card.Stem != "" {
		card.Headword += " (" + card.Stem + ")"
		card.Stem = ""
	}

	if card.Language.IsQuenya() {
		normalizeQuenya(card)
		return
	}
	appendPhonetic(card)
}

func normalizeQuenya(card *entity.Card) {
	word := card.Headword

	if strings.Contains(word, thorn) {
		word = strings.ReplaceAll(word, thorn, "s")
		card.Phonetic = thorn
	}
	switch {
	case strings.HasPrefix(word, "ñ"):
		word = "n" + strings.TrimPrefix(word, "ñ")
		card.Phonetic = nasalAnnotation
	case strings.HasPrefix(word, "Ñ"):
		word = "N" + strings.TrimPrefix(word, "Ñ")
		card.Phonetic = nasalAnnotation
	}
	word = replaceQuenyaW(word)

	card.Headword = word
	if card.Phonetic == wAnnotation {
		card.Phonetic = ""
	}
	appendPhonetic(card)
	card.Headword = ApplySpelling(card.Headword, quenyaSpelling)
}

// ApplySpelling runs rules strictly in sequence.
func ApplySpelling(word string, rules []spellingRule) string {
	for _, rule := range rules {
		word = rule.apply(word)
	}
	return word
}

func appendPhonetic(card *entity.Card) {
	if card.Phonetic == "" {
		return
	}
	card.Headword += " [" + card.Phonetic + "]"
	card.Phonetic = ""
}

// replaceQuenyaW turns w into v at the start of the word and after a vowel, except after
// the diphthongs ai and oi.
func replaceQuenyaW(word string) string {
	runes := []rune(word)
	for i, r := range runes {
		if r != 'w' && r != 'W' {
			continue
		}
		if i == 0 || (isPlainVowel(runes[i-1]) && !afterDiphthong(runes, i)) {
			if r == 'w' {
				runes[i] = 'v'
			} else {
				runes[i] = 'V'
			}
		}
	}
	return string(runes)
}

func afterDiphthong(runes []rune, i int) bool {
	if i < 2 || runes[i-1] != 'i' {
		return false
	}
	return runes[i-2] == 'a' || runes[i-2] == 'o'
}

func isPlainVowel(r rune) bool {
	return strings.ContainsRune("aeiou", r)
}

func replaceAll(from, to string) func(string) string {
	return func(s string) string {
		return strings.ReplaceAll(s, from, to)
	}
}

// replaceUnlessFollowedBy replaces from with to unless the next rune is one of except.
func replaceUnlessFollowedBy(from, to, except string) func(string) string {
	return func(s string) string {
		var b strings.Builder
		b.Grow(len(s))
		for i := 0; i < len(s); {
			if strings.HasPrefix(s[i:], from) {
				next, _ := utf8.DecodeRuneInString(s[i+len(from):])
				if i+len(from) == len(s) || !strings.ContainsRune(except, next) {
					b.WriteString(to)
					i += len(from)
					continue
				}
			}
			_, size := utf8.DecodeRuneInString(s[i:])
			b.WriteString(s[i : i+size])
			i += size
		}
		return b.String()
	}
}

// replaceAtWordEnd replaces from when it is followed by whitespace or the end of the string.
func replaceAtWordEnd(from, to string) func(string) string {
	return func(s string) string {
		var b strings.Builder
		b.Grow(len(s))
		for i := 0; i < len(s); {
			if strings.HasPrefix(s[i:], from) {
				end := i + len(from)
				if end == len(s) || isSpaceByte(s[end]) {
					b.WriteString(to)
					i = end
					continue
				}
			}
			_, size := utf8.DecodeRuneInString(s[i:])
			b.WriteString(s[i : i+size])
			i += size
		}
		return b.String()
	}
}

func isSpaceByte(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n'
}
