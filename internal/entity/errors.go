package entity

import "errors"

// Domain errors for deck generation.
var (
	ErrUnsupportedLanguage = errors.New("unsupported language")
	ErrNeoUnsupported      = errors.New("neo words are not supported for language")
	ErrDatasetUnavailable  = errors.New("lexicon dataset unavailable")
	ErrInvalidDeckFormat   = errors.New("invalid deck format")
)
