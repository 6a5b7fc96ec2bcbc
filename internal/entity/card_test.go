package entity

import "testing"

func TestCard_Liveness(t *testing.T) {
	target := &Card{Headword: "alda", Gloss: "tree"}
	dup := &Card{Headword: "alda", Gloss: "tree"}

	if !dup.Active() || dup.State() != CardActive || dup.MergedInto() != nil {
		t.Fatalf("new card should be active: %+v", dup)
	}

	dup.MergeInto(target)
	if dup.Active() || dup.State() != CardMerged || dup.MergedInto() != target {
		t.Fatalf("merged card should point to target: %+v", dup)
	}

	clone := dup.Clone()
	if !clone.Active() || clone.MergedInto() != nil || clone.Headword != "alda" {
		t.Fatalf("clone should be active: %+v", clone)
	}

	if (&Card{Headword: "alda"}).Active() {
		t.Fatal("card without gloss must not be active")
	}
}

func TestRawEntry_Marks(t *testing.T) {
	cases := []struct {
		entry      RawEntry
		archaic    bool
		deprecated bool
	}{
		{RawEntry{Mark: "†"}, true, false},
		{RawEntry{Mark: "-"}, false, true},
		{RawEntry{Mark: "†-"}, true, true},
		{RawEntry{Mark: "-†"}, true, false},
		{RawEntry{Deprecated: true}, false, true},
		{RawEntry{}, false, false},
	}
	for _, c := range cases {
		if c.entry.IsArchaic() != c.archaic || c.entry.HasDeprecationMark() != c.deprecated {
			t.Fatalf("%+v -> archaic=%v deprecated=%v", c.entry, c.entry.IsArchaic(), c.entry.HasDeprecationMark())
		}
	}
}

func TestLookupCategory(t *testing.T) {
	cats := []Category{{ID: "TC", Label: "Time"}, {ID: "T", Label: "Other"}}
	if got := LookupCategory(cats, "TC-day"); got != "Time" {
		t.Fatalf("expected Time, got %q", got)
	}
	if got := LookupCategory(cats, "TX"); got != "Other" {
		t.Fatalf("expected Other, got %q", got)
	}
	if got := LookupCategory(cats, ""); got != "" {
		t.Fatalf("expected empty label, got %q", got)
	}
}

func TestDeck_Rows(t *testing.T) {
	deck := Deck{Name: "Quenya", Lines: []string{"imbë (prep)|between (prep)\n", "orphan"}}
	rows := deck.Rows()
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0] != (DeckRow{Front: "imbë (prep)", Back: "between (prep)"}) {
		t.Fatalf("unexpected first row %+v", rows[0])
	}
	if rows[1] != (DeckRow{Front: "orphan"}) {
		t.Fatalf("unexpected second row %+v", rows[1])
	}
}

func TestParseDeckFormat(t *testing.T) {
	cases := []struct {
		in   string
		want DeckFormat
		ok   bool
	}{
		{"", DeckFormatText, true},
		{"TEXT", DeckFormatText, true},
		{"sqlite", DeckFormatSQLite, true},
		{"csv", "", false},
	}
	for _, c := range cases {
		got, ok := ParseDeckFormat(c.in)
		if got != c.want || ok != c.ok {
			t.Fatalf("%q -> got (%v,%v) want (%v,%v)", c.in, got, ok, c.want, c.ok)
		}
	}
}
