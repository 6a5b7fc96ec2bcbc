package cards

import (
	"github.com/eslsoft/eldamo-anki/internal/entity"
)

type entryKey struct {
	language entity.Language
	headword string
}

// Resolver follows <see> references between lexicon entries. It is read-only over the
// entries; cycle state lives in each call chain.
type Resolver struct {
	entries []entity.RawEntry
	index   map[entryKey]int
	neo     bool
}

// NewResolver indexes entries by (language, headword). The first entry wins on collisions.
func NewResolver(entries []entity.RawEntry, neo bool) *Resolver {
	index := make(map[entryKey]int, len(entries))
	for i, e := range entries {
		key := entryKey{language: e.Language, headword: e.Headword}
		if _, exists := index[key]; !exists {
			index[key] = i
		}
	}
	return &Resolver{entries: entries, index: index, neo: neo}
}

// Referenced returns the entry the given entry points to, if any.
func (r *Resolver) Referenced(e entity.RawEntry) (entity.RawEntry, bool) {
	if e.See == nil || e.See.Headword == "" {
		return entity.RawEntry{}, false
	}
	lang := e.See.Language
	if lang == entity.LanguageUnspecified {
		lang = e.Language
	}
	i, ok := r.index[entryKey{language: lang, headword: e.See.Headword}]
	if !ok {
		return entity.RawEntry{}, false
	}
	return r.entries[i], true
}

// Translation returns the gloss of the entry, chasing references for entries without one.
// An empty result means no gloss could be found, including when the chain loops.
func (r *Resolver) Translation(e entity.RawEntry) string {
	visited := make(map[entryKey]bool)
	for {
		if gloss := r.directGloss(e); gloss != "" {
			return gloss
		}
		visited[entryKey{language: e.Language, headword: e.Headword}] = true

		next, ok := r.Referenced(e)
		if !ok || visited[entryKey{language: next.Language, headword: next.Headword}] {
			return ""
		}
		e = next
	}
}

// IsDeprecated reports whether the entry, or the entry it refers to, is deprecated.
// A reference cycle counts as not deprecated.
func (r *Resolver) IsDeprecated(e entity.RawEntry) bool {
	visited := make(map[entryKey]bool)
	for {
		if e.HasDeprecationMark() {
			return true
		}
		visited[entryKey{language: e.Language, headword: e.Headword}] = true

		next, ok := r.Referenced(e)
		if !ok || visited[entryKey{language: next.Language, headword: next.Headword}] {
			return false
		}
		e = next
	}
}

func (r *Resolver) directGloss(e entity.RawEntry) string {
	if r.neo {
		if g := usableGloss(e.NeoGloss); g != "" {
			return g
		}
	}
	return usableGloss(e.Gloss)
}

func usableGloss(g string) string {
	if g == entity.Unglossed {
		return ""
	}
	return g
}
