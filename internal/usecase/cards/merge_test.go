package cards

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eslsoft/eldamo-anki/internal/entity"
)

func TestRemoveVariants(t *testing.T) {
	tests := []struct {
		name   string
		values []string
		want   []string
	}{
		{name: "star marker", values: []string{"bla", "*bla"}, want: []string{"bla"}},
		{name: "question marker", values: []string{"bla", "?bla"}, want: []string{"bla"}},
		{name: "warning marker", values: []string{"⚠️bla", "bla"}, want: []string{"bla"}},
		{name: "acute folds, circumflex stays", values: []string{"â", "á", "a"}, want: []string{"â", "a"}},
		{name: "diaeresis is canonical", values: []string{"ä", "a"}, want: []string{"ä"}},
		{name: "parenthesised variant", values: []string{"in(wards)", "inwards", "in"}, want: []string{"in(wards)"}},
		{name: "uppercase variant", values: []string{"Elda", "elda"}, want: []string{"elda"}},
		{name: "unrelated values", values: []string{"day", "night"}, want: []string{"day", "night"}},
		{name: "single value", values: []string{"*bla"}, want: []string{"*bla"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RemoveVariants(tt.values))
		})
	}
}

func TestMergeValues(t *testing.T) {
	tests := []struct {
		name   string
		values []string
		want   string
	}{
		{name: "single", values: []string{"hive"}, want: "hive"},
		{name: "duplicates", values: []string{"hive", "hive"}, want: "hive"},
		{name: "lexicographic", values: []string{"nierwa", "nieres"}, want: "nieres; nierwa"},
		{name: "circumflex kept", values: []string{"â", "á", "a"}, want: "a; â"},
		{
			name:   "marker priority",
			values: []string{"(lit.) d", "†e", "*c", "!a", "b", "a"},
			want:   "a; b; !a; *c; †e; (lit.) d",
		},
		{name: "first marker wins", values: []string{"?x", "(orig.) *y"}, want: "(orig.) *y; ?x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MergeValues(tt.values))
		})
	}
}

func TestMergeField(t *testing.T) {
	first := &entity.Card{Headword: "lár", Gloss: "league"}
	second := &entity.Card{Headword: "lár", Gloss: "ear"}
	empty := &entity.Card{Headword: "lár"}

	mergeField([]*entity.Card{first, second, empty}, glossField)

	assert.Equal(t, "ear; league", first.Gloss)
	assert.Equal(t, entity.CardActive, first.State())

	for _, c := range []*entity.Card{second, empty} {
		require.Equal(t, entity.CardMerged, c.State())
		assert.Same(t, first, c.MergedInto())
		assert.False(t, c.Active())
	}
}

func TestCardFields(t *testing.T) {
	card := &entity.Card{}
	for _, field := range []cardField{headwordField, glossField, partOfSpeechField, categoryField} {
		field.set(card, field.name)
		assert.Equal(t, field.name, field.get(card))
	}
	assert.Equal(t, entity.Card{
		Headword:     "headword",
		Gloss:        "gloss",
		PartOfSpeech: "part_of_speech",
		Category:     "category",
	}, *card)
}
