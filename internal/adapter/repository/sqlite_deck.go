package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/mattn/go-sqlite3" // sqlite3 driver

	"github.com/eslsoft/eldamo-anki/internal/entity"
	"github.com/eslsoft/eldamo-anki/internal/repository"
)

const (
	sqliteDriver   = "sqlite3"
	sqliteDeckFile = "cards.db"

	createCardsTable = `CREATE TABLE IF NOT EXISTS cards (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	deck TEXT NOT NULL,
	front TEXT NOT NULL,
	back TEXT NOT NULL
)`
	createCardsIndex = `CREATE INDEX IF NOT EXISTS cards_deck_idx ON cards (deck)`
	deleteDeckCards  = `DELETE FROM cards WHERE deck = ?`
	insertDeckCard   = `INSERT INTO cards (deck, front, back) VALUES (?, ?, ?)`
	selectDeckCards  = `SELECT front, back FROM cards WHERE deck = ? ORDER BY id`
)

type sqliteDeckRepository struct {
	dir string
}

// NewSQLiteDeckRepository stores decks in `<dir>/cards.db`, one row per card.
func NewSQLiteDeckRepository(dir string) repository.DeckRepository {
	return &sqliteDeckRepository{dir: dir}
}

func (r *sqliteDeckRepository) path() string {
	return filepath.Join(r.dir, sqliteDeckFile)
}

// Write replaces the rows of the deck in a single transaction.
func (r *sqliteDeckRepository) Write(ctx context.Context, deck entity.Deck) (string, error) {
	if strings.TrimSpace(deck.Name) == "" {
		return "", errors.New("deck name is required")
	}
	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}

	db, err := r.openDB(ctx)
	if err != nil {
		return "", err
	}
	defer db.Close()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("begin transaction: %w", err)
	}
	commit := false
	defer func() {
		if !commit {
			_ = tx.Rollback()
		}
	}()

	if _, err := tx.ExecContext(ctx, deleteDeckCards, deck.Name); err != nil {
		return "", fmt.Errorf("clear deck %s: %w", deck.Name, err)
	}
	stmt, err := tx.PrepareContext(ctx, insertDeckCard)
	if err != nil {
		return "", fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, row := range deck.Rows() {
		if _, err := stmt.ExecContext(ctx, deck.Name, row.Front, row.Back); err != nil {
			return "", fmt.Errorf("insert card %q: %w", row.Front, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("commit deck: %w", err)
	}
	commit = true
	return r.path(), nil
}

func (r *sqliteDeckRepository) Read(ctx context.Context, name string) ([]entity.DeckRow, error) {
	db, err := r.openDB(ctx)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, selectDeckCards, name)
	if err != nil {
		return nil, fmt.Errorf("query deck %s: %w", name, err)
	}
	defer rows.Close()

	var out []entity.DeckRow
	for rows.Next() {
		var row entity.DeckRow
		if err := rows.Scan(&row.Front, &row.Back); err != nil {
			return nil, fmt.Errorf("scan card: %w", err)
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate cards: %w", err)
	}
	return out, nil
}

func (r *sqliteDeckRepository) openDB(ctx context.Context) (*sql.DB, error) {
	db, err := sql.Open(sqliteDriver, "file:"+r.path())
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	for _, stmt := range []string{createCardsTable, createCardsIndex} {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("prepare schema: %w", err)
		}
	}
	return db, nil
}
