package cards

import (
	"fmt"
	"strings"

	"github.com/eslsoft/eldamo-anki/internal/entity"
	"github.com/eslsoft/eldamo-anki/pkg/filterexpr"
)

// Speech types that never become cards.
var alwaysExcludedSpeech = []string{
	"grammar", "phoneme", "phonetic-rule", "phonetic-group", "phonetics", "root", "text", "?",
}

var (
	individualNameSpeech = []string{"fem-name", "masc-name", "place-name"}
	collectiveNameSpeech = "collective-name"
	properNameSpeech     = "proper-name"
	phraseSpeech         = "phrase"
)

// dropReason names why an entry or card was left out of the deck.
type dropReason string

const (
	dropNone            dropReason = ""
	dropDeprecated      dropReason = "deprecated"
	dropArchaic         dropReason = "archaic"
	dropSpeech          dropReason = "excluded speech"
	dropFilter          dropReason = "filter expression"
	dropMissingHeadword dropReason = "missing headword"
	dropMissingGloss    dropReason = "missing gloss"
)

// entrySchema lists the variables available to --filter expressions.
var entrySchema = filterexpr.Schema{
	"headword": filterexpr.KindString,
	"gloss":    filterexpr.KindString,
	"speech":   filterexpr.KindString,
	"category": filterexpr.KindString,
	"language": filterexpr.KindString,
	"mark":     filterexpr.KindString,
	"stem":     filterexpr.KindString,
	"archaic":  filterexpr.KindBool,
}

// ExcludedSpeech returns the set of speech values filtered out under the given options.
func ExcludedSpeech(opts Options) map[string]struct{} {
	excluded := make(map[string]struct{}, len(alwaysExcludedSpeech)+6)
	add := func(values ...string) {
		for _, v := range values {
			excluded[v] = struct{}{}
		}
	}
	add(alwaysExcludedSpeech...)
	if !opts.IndividualNames {
		add(individualNameSpeech...)
	}
	if !opts.CollectiveNames {
		add(collectiveNameSpeech)
	}
	if !opts.ProperNames {
		add(properNameSpeech)
	}
	if !opts.Phrases {
		add(phraseSpeech)
	}
	return excluded
}

// CompileFilter compiles an entry filter expression. An empty expression yields nil.
func CompileFilter(expr string) (*filterexpr.Predicate, error) {
	if strings.TrimSpace(expr) == "" {
		return nil, nil
	}
	pred, err := filterexpr.Compile(expr, entrySchema)
	if err != nil {
		return nil, fmt.Errorf("filter: %w", err)
	}
	return pred, nil
}

func entryVars(e entity.RawEntry) map[string]any {
	return map[string]any{
		"headword": e.Headword,
		"gloss":    e.Gloss,
		"speech":   e.Speech,
		"category": e.Category,
		"language": e.Language.Code(),
		"mark":     e.Mark,
		"stem":     e.Stem,
		"archaic":  e.IsArchaic(),
	}
}
