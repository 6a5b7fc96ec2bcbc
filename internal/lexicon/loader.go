// Package lexicon reads Eldamo XML dumps into entity.Lexicon values.
package lexicon

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/eslsoft/eldamo-anki/internal/entity"
)

// Load opens an Eldamo XML file and decodes it.
func Load(path string) (*entity.Lexicon, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s not found", entity.ErrDatasetUnavailable, path)
		}
		return nil, fmt.Errorf("%w: %v", entity.ErrDatasetUnavailable, err)
	}
	defer f.Close()

	lx, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return lx, nil
}

// Decode streams the XML tokens of r. Nested <word> elements are collected as entries of
// their own; <see> and <deprecated> attach to the innermost open word.
func Decode(r io.Reader) (*entity.Lexicon, error) {
	dec := xml.NewDecoder(r)
	lx := &entity.Lexicon{}

	// indexes into lx.Entries of the currently open <word> elements
	var open []int

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read xml token: %w", err)
		}

		switch el := tok.(type) {
		case xml.StartElement:
			switch el.Name.Local {
			case "word":
				lx.Entries = append(lx.Entries, entryFromAttrs(el.Attr))
				open = append(open, len(lx.Entries)-1)
			case "see":
				if len(open) == 0 {
					continue
				}
				cur := &lx.Entries[open[len(open)-1]]
				if cur.See != nil {
					// first reference wins
					continue
				}
				ref := &entity.Reference{
					Headword: attr(el.Attr, "v"),
					Language: entity.Language(attr(el.Attr, "l")),
				}
				if ref.Headword != "" {
					cur.See = ref
				}
			case "deprecated":
				if len(open) == 0 {
					continue
				}
				lx.Entries[open[len(open)-1]].Deprecated = true
			case "cat-group":
				id := attr(el.Attr, "id")
				if id == "" {
					continue
				}
				lx.Categories = append(lx.Categories, entity.Category{ID: id, Label: attr(el.Attr, "label")})
			}
		case xml.EndElement:
			if el.Name.Local == "word" && len(open) > 0 {
				open = open[:len(open)-1]
			}
		}
	}
	return lx, nil
}

func entryFromAttrs(attrs []xml.Attr) entity.RawEntry {
	return entity.RawEntry{
		Headword: attr(attrs, "v"),
		Gloss:    attr(attrs, "gloss"),
		NeoGloss: attr(attrs, "ngloss"),
		Speech:   attr(attrs, "speech"),
		Stem:     attr(attrs, "stem"),
		Category: attr(attrs, "cat"),
		Phonetic: attr(attrs, "tengwar"),
		Language: entity.Language(attr(attrs, "l")),
		Mark:     attr(attrs, "mark"),
	}
}

func attr(attrs []xml.Attr, name string) string {
	for _, a := range attrs {
		if a.Name.Local == name {
			return strings.TrimSpace(a.Value)
		}
	}
	return ""
}
