package repository

import (
	"context"

	"github.com/eslsoft/eldamo-anki/internal/entity"
)

// DeckWriter persists a generated deck and returns where it was written.
type DeckWriter interface {
	Write(ctx context.Context, deck entity.Deck) (string, error)
}

// DeckReader loads the rows previously stored for a deck.
type DeckReader interface {
	Read(ctx context.Context, name string) ([]entity.DeckRow, error)
}

// DeckRepository reads and writes decks in one storage.
type DeckRepository interface {
	DeckWriter
	DeckReader
}
