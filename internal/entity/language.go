package entity

import (
	"fmt"
	"strings"
)

// Language represents an Eldamo language code (the `l` attribute of a word).
type Language string

const (
	LanguageUnspecified Language = ""
	LanguageAdunaic     Language = "ad"
	LanguageBlackSpeech Language = "bs"
	LanguageKhuzdul     Language = "kh"
	LanguageNoldorin    Language = "n"
	LanguageQuenya      Language = "q"
	LanguageNeoQuenya   Language = "nq"
	LanguageSindarin    Language = "s"
	LanguageNeoSindarin Language = "ns"
	LanguageTelerin     Language = "t"
)

// LanguageInfo pairs a language code with its display name.
type LanguageInfo struct {
	Code Language
	Name string
}

var (
	Adunaic     = LanguageInfo{Code: LanguageAdunaic, Name: "Adunaic"}
	BlackSpeech = LanguageInfo{Code: LanguageBlackSpeech, Name: "Black-Speech"}
	Khuzdul     = LanguageInfo{Code: LanguageKhuzdul, Name: "Khuzdul"}
	Noldorin    = LanguageInfo{Code: LanguageNoldorin, Name: "Noldorin"}
	Quenya      = LanguageInfo{Code: LanguageQuenya, Name: "Quenya"}
	NeoQuenya   = LanguageInfo{Code: LanguageNeoQuenya, Name: "Neo-Quenya"}
	Sindarin    = LanguageInfo{Code: LanguageSindarin, Name: "Sindarin"}
	NeoSindarin = LanguageInfo{Code: LanguageNeoSindarin, Name: "Neo-Sindarin"}
	Telerin     = LanguageInfo{Code: LanguageTelerin, Name: "Telerin"}
)

// SupportedLanguages lists the languages a deck can be generated for.
var SupportedLanguages = []LanguageInfo{Adunaic, BlackSpeech, Khuzdul, Noldorin, Quenya, Sindarin, Telerin}

var neoVariants = map[Language]LanguageInfo{
	LanguageQuenya:   NeoQuenya,
	LanguageSindarin: NeoSindarin,
}

// Code returns the trimmed language code.
func (l Language) Code() string {
	return strings.TrimSpace(string(l))
}

// IsQuenya reports whether the language belongs to the Quenya family, which gets
// dedicated spelling rules.
func (l Language) IsQuenya() bool {
	return l == LanguageQuenya || l == LanguageNeoQuenya
}

// NeoVariant returns the fan-extended variant of a language, if one exists.
func NeoVariant(l Language) (LanguageInfo, bool) {
	info, ok := neoVariants[l]
	return info, ok
}

// ParseLanguage looks a language up by code or name, case-insensitively.
func ParseLanguage(value string) (LanguageInfo, bool) {
	needle := strings.ToLower(strings.TrimSpace(value))
	if needle == "" {
		return LanguageInfo{}, false
	}
	for _, lang := range SupportedLanguages {
		if needle == strings.ToLower(lang.Code.Code()) || needle == strings.ToLower(lang.Name) {
			return lang, true
		}
	}
	return LanguageInfo{}, false
}

// Selection is the resolved set of languages for one generation run.
type Selection struct {
	Primary   LanguageInfo
	Neo       bool
	Languages []LanguageInfo
}

// SelectLanguages resolves the user's language selector. Neo mode adds the neo variant
// and fails for languages that have none.
func SelectLanguages(value string, neo bool) (Selection, error) {
	primary, ok := ParseLanguage(value)
	if !ok {
		return Selection{}, fmt.Errorf("%w: %s", ErrUnsupportedLanguage, value)
	}
	sel := Selection{Primary: primary, Neo: neo, Languages: []LanguageInfo{primary}}
	if !neo {
		return sel, nil
	}
	variant, ok := NeoVariant(primary.Code)
	if !ok {
		return Selection{}, fmt.Errorf("%w: %s", ErrNeoUnsupported, primary.Name)
	}
	sel.Languages = append(sel.Languages, variant)
	return sel, nil
}

// Codes returns the language codes covered by the selection.
func (s Selection) Codes() []Language {
	codes := make([]Language, 0, len(s.Languages))
	for _, lang := range s.Languages {
		codes = append(codes, lang.Code)
	}
	return codes
}

// Includes reports whether entries of the given language are selected.
func (s Selection) Includes(l Language) bool {
	for _, lang := range s.Languages {
		if lang.Code == l {
			return true
		}
	}
	return false
}

// DeckName is the display name used for output files.
func (s Selection) DeckName() string {
	if s.Neo {
		return "Neo-" + s.Primary.Name
	}
	return s.Primary.Name
}
