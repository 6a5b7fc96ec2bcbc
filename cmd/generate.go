/*
Copyright © 2025 Ambor <saltbo@foxmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/eslsoft/eldamo-anki/internal/adapter/repository"
	"github.com/eslsoft/eldamo-anki/internal/entity"
	"github.com/eslsoft/eldamo-anki/internal/infrastructure/config"
	"github.com/eslsoft/eldamo-anki/internal/infrastructure/logging"
	"github.com/eslsoft/eldamo-anki/internal/lexicon"
	"github.com/eslsoft/eldamo-anki/internal/usecase/cards"
)

const (
	generateLanguageKey        = "generate.language"
	generateNeoKey             = "generate.neo"
	generateIndividualNamesKey = "generate.individual_names"
	generateCollectiveNamesKey = "generate.collective_names"
	generateProperNamesKey     = "generate.proper_names"
	generatePhrasesKey         = "generate.phrases"
	generateArchaicKey         = "generate.archaic"
	generateOriginMarkersKey   = "generate.origin_markers"
	generateDeprecatedKey      = "generate.deprecated"
	generateFilterKey          = "generate.filter"
)

var errLanguageRequired = errors.New("language is required")

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a flashcard deck for one language",
	Example: `  eldamo-anki generate --language quenya
  eldamo-anki generate -l s --neo --format sqlite
  eldamo-anki generate -l q --filter "speech == 'n'"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if strings.TrimSpace(cfg.Generate.Language) == "" {
			return errLanguageRequired
		}

		logger, err := logging.NewLogger(cfg, cmd.ErrOrStderr())
		if err != nil {
			return err
		}

		service, err := cards.NewService(logger, cardOptions(cfg.Generate))
		if err != nil {
			return err
		}
		decks, err := repository.NewDeckRepository(cfg.Output.Format, cfg.Output.Dir)
		if err != nil {
			return err
		}

		lx, err := lexicon.Load(cfg.Input.Path)
		if err != nil {
			return err
		}
		result, err := service.Generate(lx)
		if err != nil {
			return fmt.Errorf("generate cards: %w", err)
		}

		deck := entity.Deck{Name: result.Selection.DeckName(), Lines: result.Lines}
		path, err := decks.Write(ctx, deck)
		if err != nil {
			return fmt.Errorf("write deck: %w", err)
		}
		cmd.Printf("Written %d cards for %s to %s\n", len(result.Lines), deck.Name, path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)

	flags := generateCmd.Flags()
	flags.StringP("language", "l", "", "language id or name, e.g. q or Quenya")
	flags.Bool("neo", false, "include neo words (Quenya and Sindarin only)")
	flags.Bool("individual-names", false, "include names of individuals and places")
	flags.Bool("collective-names", false, "include collective names")
	flags.Bool("proper-names", false, "include proper names")
	flags.Bool("phrases", false, "include phrases")
	flags.Bool("archaic", false, "include archaic words and senses")
	flags.Bool("origin-markers", false, "keep origin markers on neo headwords")
	flags.Bool("deprecated", false, "include deprecated neo words")
	flags.String("filter", "", "CEL expression over headword, gloss, speech, category, language, mark, stem and archaic")

	bindGenerateConfig()
}

func bindGenerateConfig() {
	flags := generateCmd.Flags()
	bindFlagToViper(generateLanguageKey, flags.Lookup("language"))
	bindFlagToViper(generateNeoKey, flags.Lookup("neo"))
	bindFlagToViper(generateIndividualNamesKey, flags.Lookup("individual-names"))
	bindFlagToViper(generateCollectiveNamesKey, flags.Lookup("collective-names"))
	bindFlagToViper(generateProperNamesKey, flags.Lookup("proper-names"))
	bindFlagToViper(generatePhrasesKey, flags.Lookup("phrases"))
	bindFlagToViper(generateArchaicKey, flags.Lookup("archaic"))
	bindFlagToViper(generateOriginMarkersKey, flags.Lookup("origin-markers"))
	bindFlagToViper(generateDeprecatedKey, flags.Lookup("deprecated"))
	bindFlagToViper(generateFilterKey, flags.Lookup("filter"))
}

func cardOptions(cfg config.GenerateConfig) cards.Options {
	return cards.Options{
		Language:        cfg.Language,
		Neo:             cfg.Neo,
		IndividualNames: cfg.IndividualNames,
		CollectiveNames: cfg.CollectiveNames,
		ProperNames:     cfg.ProperNames,
		Phrases:         cfg.Phrases,
		Archaic:         cfg.Archaic,
		OriginMarkers:   cfg.OriginMarkers,
		Deprecated:      cfg.Deprecated,
		Filter:          cfg.Filter,
	}
}
