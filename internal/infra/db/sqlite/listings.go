package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"gamestore/gamebot/internal/domain/listing"
)

type DB struct {
	db *sql.DB
}

func Open(path string) (*DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite %s: %w", path, err)
	}
	return &DB{db: db}, nil
}

func (d *DB) Close() error { return d.db.Close() }

// CreateListingTable creates the table shape LoadListings reads.
func (d *DB) CreateListingTable(ctx context.Context, table string) error {
	_, err := d.db.ExecContext(ctx, fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		genre TEXT,
		account_level INTEGER,
		price REAL,
		negotiable BOOLEAN
	)`, quoteIdent(table)))
	return err
}

func (d *DB) InsertListings(ctx context.Context, table string, rows []listing.Listing) error {
	tx, err := d.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	stmt, err := tx.PrepareContext(ctx, fmt.Sprintf(
		`INSERT INTO %s (name, genre, account_level, price, negotiable) VALUES (?, ?, ?, ?, ?)`, quoteIdent(table)))
	if err != nil {
		tx.Rollback()
		return err
	}
	defer stmt.Close()
	for _, l := range rows {
		if _, err := stmt.ExecContext(ctx, l.Name, l.Genre, l.AccountLevel, l.Price, l.Negotiable); err != nil {
			tx.Rollback()
			return fmt.Errorf("insert %q: %w", l.Name, err)
		}
	}
	return tx.Commit()
}

func (d *DB) LoadListings(ctx context.Context, table string) ([]listing.Listing, error) {
	rows, err := d.db.QueryContext(ctx, fmt.Sprintf(`SELECT name, coalesce(genre, ''), coalesce(account_level, 0),
		coalesce(price, 0), coalesce(negotiable, 0) FROM %s ORDER BY id`, quoteIdent(table)))
	if err != nil {
		return nil, fmt.Errorf("query listings: %w", err)
	}
	defer rows.Close()

	var out []listing.Listing
	for rows.Next() {
		var l listing.Listing
		if err := rows.Scan(&l.Name, &l.Genre, &l.AccountLevel, &l.Price, &l.Negotiable); err != nil {
			return nil, fmt.Errorf("scan listing: %w", err)
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

func quoteIdent(name string) string {
	if name == "" {
		name = "game_listings"
	}
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
