package cards

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"

	"github.com/eslsoft/eldamo-anki/internal/entity"
	"github.com/eslsoft/eldamo-anki/pkg/filterexpr"
)

const archaicMark = "†"

var (
	pipeStrip          = strings.NewReplacer(FieldDelimiter, "")
	originMarkerStrip  = strings.NewReplacer("ᴱ", "", "ᴹ", "", "ᴺ", "", "ᴾ", "")
	archaicSenseCutset = " ,;"
)

// Options controls which entries become cards.
type Options struct {
	Language        string
	Neo             bool
	IndividualNames bool
	CollectiveNames bool
	ProperNames     bool
	Phrases         bool
	Archaic         bool
	OriginMarkers   bool
	Deprecated      bool
	Filter          string
}

// Stats summarises one generation run.
type Stats struct {
	Selected         int
	Excluded         int
	MissingHeadword  int
	MissingGloss     int
	CardsBeforeDedup int
	CardsAfterDedup  int
}

// Result is the output of Generate.
type Result struct {
	Selection entity.Selection
	Cards     []*entity.Card
	Lines     []string
	Stats     Stats
}

// Service turns a lexicon into deck lines.
type Service struct {
	logger         logrus.FieldLogger
	opts           Options
	selection      entity.Selection
	excludedSpeech map[string]struct{}
	filter         *filterexpr.Predicate
}

// NewService validates the options and prepares the exclusion rules.
func NewService(logger logrus.FieldLogger, opts Options) (*Service, error) {
	if logger == nil {
		return nil, errors.New("cards: logger is required")
	}
	selection, err := entity.SelectLanguages(opts.Language, opts.Neo)
	if err != nil {
		return nil, err
	}
	filter, err := CompileFilter(opts.Filter)
	if err != nil {
		return nil, err
	}
	return &Service{
		logger:         logger,
		opts:           opts,
		selection:      selection,
		excludedSpeech: ExcludedSpeech(opts),
		filter:         filter,
	}, nil
}

// Selection returns the languages the service generates cards for.
func (s *Service) Selection() entity.Selection {
	return s.selection
}

// Generate runs the full pipeline over the lexicon.
func (s *Service) Generate(lx *entity.Lexicon) (*Result, error) {
	if lx == nil {
		return nil, entity.ErrDatasetUnavailable
	}
	result := &Result{Selection: s.selection}

	selected := lo.Filter(lx.Entries, func(e entity.RawEntry, _ int) bool {
		return s.selection.Includes(e.Language)
	})
	result.Stats.Selected = len(selected)
	s.logger.WithFields(logrus.Fields{
		"languages": s.selection.Codes(),
		"entries":   len(selected),
	}).Info("selected lexicon entries")

	resolver := NewResolver(selected, s.selection.Neo)

	kept := make([]entity.RawEntry, 0, len(selected))
	for _, e := range selected {
		reason, err := s.exclusion(e, resolver)
		if err != nil {
			return nil, err
		}
		if reason != dropNone {
			result.Stats.Excluded++
			s.logDrop(e, reason)
			continue
		}
		kept = append(kept, e)
	}
	s.logPartsOfSpeech(kept)

	built := make([]*entity.Card, 0, len(kept))
	for _, e := range kept {
		card, reason := s.buildCard(e, resolver, lx)
		switch reason {
		case dropMissingHeadword:
			result.Stats.MissingHeadword++
			s.logDrop(e, reason)
			continue
		case dropMissingGloss:
			result.Stats.MissingGloss++
			s.logDrop(e, reason)
			continue
		}
		built = append(built, card)
	}

	split := lo.FlatMap(built, func(c *entity.Card, _ int) []*entity.Card { return SplitCard(c) })
	result.Stats.CardsBeforeDedup = len(split)

	result.Cards = Deduplicate(split)
	result.Stats.CardsAfterDedup = len(result.Cards)
	result.Lines = FormatCards(result.Cards)

	s.logger.WithFields(logrus.Fields{
		"deck":             s.selection.DeckName(),
		"excluded":         result.Stats.Excluded,
		"missing_headword": result.Stats.MissingHeadword,
		"missing_gloss":    result.Stats.MissingGloss,
		"before_dedup":     result.Stats.CardsBeforeDedup,
		"cards":            result.Stats.CardsAfterDedup,
	}).Info("collected cards")
	return result, nil
}

func (s *Service) exclusion(e entity.RawEntry, resolver *Resolver) (dropReason, error) {
	if s.selection.Neo && !s.opts.Deprecated && resolver.IsDeprecated(e) {
		return dropDeprecated, nil
	}
	if !s.opts.Archaic && e.IsArchaic() {
		return dropArchaic, nil
	}
	if _, excluded := s.excludedSpeech[e.Speech]; excluded {
		return dropSpeech, nil
	}
	if s.filter != nil {
		ok, err := s.filter.Eval(entryVars(e))
		if err != nil {
			return dropNone, fmt.Errorf("filter entry %q: %w", e.Headword, err)
		}
		if !ok {
			return dropFilter, nil
		}
	}
	return dropNone, nil
}

func (s *Service) buildCard(e entity.RawEntry, resolver *Resolver, lx *entity.Lexicon) (*entity.Card, dropReason) {
	headword := pipeStrip.Replace(e.Headword)
	if s.selection.Neo && !s.opts.OriginMarkers {
		headword = originMarkerStrip.Replace(headword)
	}
	if strings.TrimSpace(headword) == "" {
		return nil, dropMissingHeadword
	}

	gloss := pipeStrip.Replace(resolver.Translation(e))
	if !s.opts.Archaic {
		gloss = StripArchaicSenses(gloss)
	}
	if strings.TrimSpace(gloss) == "" {
		return nil, dropMissingGloss
	}

	card := &entity.Card{
		Headword:     headword,
		Gloss:        gloss,
		PartOfSpeech: pipeStrip.Replace(e.Speech),
		Category:     pipeStrip.Replace(lx.CategoryLabel(e.Category)),
		Stem:         pipeStrip.Replace(e.Stem),
		Phonetic:     pipeStrip.Replace(e.Phonetic),
		Language:     e.Language,
	}
	NormalizeOrthography(card)
	return card, dropNone
}

// StripArchaicSenses cuts a gloss at the first archaic mark that does not open it and drops
// the trailing separators.
func StripArchaicSenses(gloss string) string {
	idx := strings.Index(gloss, archaicMark)
	if idx <= 0 {
		return gloss
	}
	return strings.TrimRight(gloss[:idx], archaicSenseCutset)
}

func (s *Service) logDrop(e entity.RawEntry, reason dropReason) {
	s.logger.WithFields(logrus.Fields{
		"headword": e.Headword,
		"language": e.Language.Code(),
		"speech":   e.Speech,
		"reason":   string(reason),
	}).Debug("skipping entry")
}

func (s *Service) logPartsOfSpeech(entries []entity.RawEntry) {
	speech := lo.Uniq(lo.Map(entries, func(e entity.RawEntry, _ int) string { return e.Speech }))
	sort.Strings(speech)
	s.logger.WithField("parts_of_speech", speech).Debug("collected parts of speech")
}
