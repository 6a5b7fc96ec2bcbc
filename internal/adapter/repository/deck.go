package repository

import (
	"fmt"

	"github.com/eslsoft/eldamo-anki/internal/entity"
	"github.com/eslsoft/eldamo-anki/internal/repository"
)

// NewDeckRepository picks the deck storage for the configured format.
func NewDeckRepository(format, dir string) (repository.DeckRepository, error) {
	parsed, ok := entity.ParseDeckFormat(format)
	if !ok {
		return nil, fmt.Errorf("%w: %s", entity.ErrInvalidDeckFormat, format)
	}
	switch parsed {
	case entity.DeckFormatSQLite:
		return NewSQLiteDeckRepository(dir), nil
	default:
		return NewTextDeckRepository(dir), nil
	}
}
