package cards

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/eslsoft/eldamo-anki/internal/entity"
)

func TestFormatCard(t *testing.T) {
	tests := []struct {
		name string
		card entity.Card
		want string
	}{
		{name: "plain", card: entity.Card{Headword: "alda", Gloss: "tree"}, want: "alda|tree\n"},
		{name: "part of speech", card: entity.Card{Headword: "alda", Gloss: "tree", PartOfSpeech: "n"}, want: "alda|tree (n)\n"},
		{
			name: "extra info",
			card: entity.Card{Headword: "imbë", Gloss: "between", PartOfSpeech: "prep", ExtraInfo: "prep"},
			want: "imbë (prep)|between (prep)\n",
		},
		{name: "category is not rendered", card: entity.Card{Headword: "rá", Gloss: "lion", Category: "Animals"}, want: "rá|lion\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			card := tt.card
			assert.Equal(t, tt.want, FormatCard(&card))
		})
	}
}

func TestFormatCards(t *testing.T) {
	merged := &entity.Card{Headword: "alda", Gloss: "tree"}
	survivor := &entity.Card{Headword: "ornë", Gloss: "tree"}
	merged.MergeInto(survivor)

	lines := FormatCards([]*entity.Card{
		{Headword: "nieres", Gloss: "hive"},
		survivor,
		merged,
		{Headword: "aurë", Gloss: "day"},
	})

	assert.Equal(t, []string{"aurë|day\n", "nieres|hive\n", "ornë|tree\n"}, lines)
}
