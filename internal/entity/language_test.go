package entity

import (
	"errors"
	"reflect"
	"testing"
)

func TestParseLanguage(t *testing.T) {
	cases := []struct {
		in   string
		want Language
		ok   bool
	}{
		{"q", LanguageQuenya, true},
		{"Quenya", LanguageQuenya, true},
		{" SINDARIN ", LanguageSindarin, true},
		{"black-speech", LanguageBlackSpeech, true},
		{"BS", LanguageBlackSpeech, true},
		{"nq", "", false},
		{"klingon", "", false},
		{"", "", false},
	}
	for _, c := range cases {
		got, ok := ParseLanguage(c.in)
		if ok != c.ok || got.Code != c.want {
			t.Fatalf("%q -> got (%v,%v) want (%v,%v)", c.in, got.Code, ok, c.want, c.ok)
		}
	}
}

func TestSelectLanguages(t *testing.T) {
	sel, err := SelectLanguages("Sindarin", true)
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if !reflect.DeepEqual(sel.Codes(), []Language{LanguageSindarin, LanguageNeoSindarin}) {
		t.Fatalf("unexpected codes %v", sel.Codes())
	}
	if sel.DeckName() != "Neo-Sindarin" {
		t.Fatalf("unexpected deck name %q", sel.DeckName())
	}
	if !sel.Includes(LanguageNeoSindarin) || sel.Includes(LanguageQuenya) {
		t.Fatalf("unexpected membership for %+v", sel)
	}

	sel, err = SelectLanguages("t", false)
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if sel.DeckName() != "Telerin" || len(sel.Languages) != 1 {
		t.Fatalf("unexpected selection %+v", sel)
	}

	if _, err := SelectLanguages("kh", true); !errors.Is(err, ErrNeoUnsupported) {
		t.Fatalf("expected ErrNeoUnsupported, got %v", err)
	}
	if _, err := SelectLanguages("elvish", false); !errors.Is(err, ErrUnsupportedLanguage) {
		t.Fatalf("expected ErrUnsupportedLanguage, got %v", err)
	}
}

func TestLanguage_IsQuenya(t *testing.T) {
	if !LanguageQuenya.IsQuenya() || !LanguageNeoQuenya.IsQuenya() {
		t.Fatal("expected Quenya family")
	}
	if LanguageTelerin.IsQuenya() {
		t.Fatal("Telerin is not Quenya")
	}
}
