package cards

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eslsoft/eldamo-anki/internal/entity"
)

func card(headword, gloss, speech string) *entity.Card {
	return &entity.Card{Headword: headword, Gloss: gloss, PartOfSpeech: speech, Language: entity.LanguageQuenya}
}

func TestDeduplicate_SuperscriptsAndGlossMerge(t *testing.T) {
	first := card("lár¹", "league", "n")
	second := card("lár²", "ear", "n")

	out := Deduplicate([]*entity.Card{first, second})

	require.Len(t, out, 1)
	assert.Same(t, first, out[0])
	assert.Equal(t, "lár", first.Headword)
	assert.Equal(t, "ear; league", first.Gloss)
	assert.Empty(t, first.ExtraInfo)
	assert.Same(t, first, second.MergedInto())
}

func TestDeduplicate_PartOfSpeechDisambiguation(t *testing.T) {
	cards := []*entity.Card{
		card("imbë", "between", "prep"),
		card("imbë", "among", "prep"),
		card("imbë", "in(wards)", "adv"),
		card("imbë", "dell", "n"),
		card("imbë", "deep vale", "n"),
	}

	out := Deduplicate(cards)

	assert.Equal(t, []string{
		"imbë (adv)|in(wards) (adv)\n",
		"imbë (n)|deep vale; dell (n)\n",
		"imbë (prep)|among; between (prep)\n",
	}, FormatCards(out))
}

func TestDeduplicate_CategoryDisambiguation(t *testing.T) {
	lion := card("rá", "lion", "n")
	lion.Category = "Animals"
	arm := card("rá", "arm", "n")
	arm.Category = "Body"

	out := Deduplicate([]*entity.Card{lion, arm})

	assert.Equal(t, []string{
		"rá (Animals)|lion (n)\n",
		"rá (Body)|arm (n)\n",
	}, FormatCards(out))
}

func TestDeduplicate_PartialPartOfSpeech(t *testing.T) {
	withSpeech := card("x", "go", "v")
	withoutSpeech := card("x", "go", "")
	noun := card("x", "stone", "n")

	out := Deduplicate([]*entity.Card{withSpeech, withoutSpeech, noun})

	require.Len(t, out, 2)
	assert.Equal(t, entity.CardMerged, withoutSpeech.State())
	assert.Equal(t, []string{
		"x (n)|stone (n)\n",
		"x|go (v)\n",
	}, FormatCards(out))
}

func TestDeduplicate_GlossDuplicates(t *testing.T) {
	cards := []*entity.Card{
		card("nierwa", "hive", "n"),
		card("nieres", "hive", "n"),
		card("lis", "hive", "v"),
	}

	out := Deduplicate(cards)

	assert.Equal(t, []string{
		"lis|hive (v)\n",
		"nieres; nierwa|hive (n)\n",
	}, FormatCards(out))
}

func TestDeduplicate_GlossUncertaintyIgnored(t *testing.T) {
	first := card("a", "*light", "n")
	second := card("b", "light", "n")

	out := Deduplicate([]*entity.Card{first, second})

	require.Len(t, out, 1)
	assert.Equal(t, "a; b", first.Headword)
	assert.Equal(t, "*light", first.Gloss)
}

func TestDeduplicate_ExtraInfoCleanup(t *testing.T) {
	noun := card("tal", "foot", "n")
	adjective := card("tal", "foot", "adj")

	out := Deduplicate([]*entity.Card{noun, adjective})

	require.Len(t, out, 2)
	assert.Empty(t, noun.ExtraInfo)
	assert.Empty(t, adjective.ExtraInfo)
	assert.Equal(t, []string{
		"tal|foot (adj)\n",
		"tal|foot (n)\n",
	}, FormatCards(out))
}

func TestDeduplicate_SkipsInactive(t *testing.T) {
	missing := card("", "ghost", "n")
	live := card("alda", "tree", "n")

	out := Deduplicate([]*entity.Card{missing, live})

	require.Len(t, out, 1)
	assert.Same(t, live, out[0])
}
