package entity

// CardState tracks whether a card still takes part in the deck.
type CardState int

const (
	CardActive CardState = iota
	CardMerged
)

// Card is the working unit of the generation pipeline. Optional fields are empty when absent.
type Card struct {
	Headword     string
	Gloss        string
	PartOfSpeech string
	Category     string
	Stem         string
	Phonetic     string
	ExtraInfo    string
	Language     Language

	state      CardState
	mergedInto *Card
}

// Active reports whether the card will be rendered.
func (c *Card) Active() bool {
	return c.state == CardActive && c.Headword != "" && c.Gloss != ""
}

// State returns the liveness state of the card.
func (c *Card) State() CardState {
	return c.state
}

// MergedInto returns the card this one was folded into, or nil while active.
func (c *Card) MergedInto() *Card {
	return c.mergedInto
}

// MergeInto marks the card as folded into target.
func (c *Card) MergeInto(target *Card) {
	c.state = CardMerged
	c.mergedInto = target
}

// Clone returns an independent, active copy of the card.
func (c *Card) Clone() *Card {
	out := *c
	out.state = CardActive
	out.mergedInto = nil
	return &out
}
