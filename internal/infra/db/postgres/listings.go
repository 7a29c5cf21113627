package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"gamestore/gamebot/internal/domain/listing"
)

// LoadListings reads the whole listing table. Nullable cells become zero values.
func (db *DB) LoadListings(ctx context.Context, table string) ([]listing.Listing, error) {
	ident := pgx.Identifier{table}
	if table == "" {
		ident = pgx.Identifier{"game_listings"}
	}
	q := fmt.Sprintf(`SELECT name, coalesce(genre, ''), coalesce(account_level, 0),
		coalesce(price, 0)::float8, coalesce(negotiable, false)
		FROM %s ORDER BY id`, ident.Sanitize())

	rows, err := db.Pool.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("query listings: %w", err)
	}
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (listing.Listing, error) {
		var l listing.Listing
		err := row.Scan(&l.Name, &l.Genre, &l.AccountLevel, &l.Price, &l.Negotiable)
		return l, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan listings: %w", err)
	}
	return out, nil
}
