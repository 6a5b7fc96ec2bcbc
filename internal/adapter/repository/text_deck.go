package repository

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/eslsoft/eldamo-anki/internal/entity"
	"github.com/eslsoft/eldamo-anki/internal/repository"
)

const textDeckExt = ".txt"

type textDeckRepository struct{ dir string }

// NewTextDeckRepository stores each deck as `<dir>/<deck>.txt`, one card per line.
func NewTextDeckRepository(dir string) repository.DeckRepository {
	return &textDeckRepository{dir: dir}
}

func (r *textDeckRepository) path(name string) string {
	return filepath.Join(r.dir, name+textDeckExt)
}

func (r *textDeckRepository) Write(ctx context.Context, deck entity.Deck) (path string, err error) {
	if strings.TrimSpace(deck.Name) == "" {
		return "", errors.New("deck name is required")
	}
	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}

	path = r.path(deck.Name)
	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create deck file: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close deck file: %w", cerr)
		}
	}()

	w := bufio.NewWriter(file)
	for _, line := range deck.Lines {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		if !strings.HasSuffix(line, "\n") {
			line += "\n"
		}
		if _, err := w.WriteString(line); err != nil {
			return "", fmt.Errorf("write deck line: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		return "", fmt.Errorf("flush deck file: %w", err)
	}
	return path, nil
}

func (r *textDeckRepository) Read(ctx context.Context, name string) ([]entity.DeckRow, error) {
	file, err := os.Open(r.path(name))
	if err != nil {
		return nil, fmt.Errorf("open deck file: %w", err)
	}
	defer file.Close()

	var rows []entity.DeckRow
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if line := scanner.Text(); line != "" {
			rows = append(rows, entity.ParseDeckLine(line))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read deck file: %w", err)
	}
	return rows, nil
}
