package app

import (
	"context"
	"fmt"
	"log"
	"time"

	"gamestore/gamebot/internal/app/config"
	"gamestore/gamebot/internal/domain/listing"
	"gamestore/gamebot/internal/infra/db/postgres"
	"gamestore/gamebot/internal/infra/db/sqlite"
	"gamestore/gamebot/internal/infra/sheet"
)

// dataset is the configured listing source. The postgres pool stays open
// so reloads reuse it.
type dataset struct {
	load  func(ctx context.Context) ([]listing.Listing, error)
	close func()
}

func openDataset(ctx context.Context, cfg config.Config) (*dataset, error) {
	switch cfg.DatasetSource {
	case "postgres":
		db, err := postgres.New(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("postgres: %w", err)
		}
		return &dataset{
			load: func(ctx context.Context) ([]listing.Listing, error) {
				return db.LoadListings(ctx, cfg.ListingsTable)
			},
			close: db.Close,
		}, nil
	case "sqlite":
		return &dataset{
			load: func(ctx context.Context) ([]listing.Listing, error) {
				db, err := sqlite.Open(cfg.SQLitePath)
				if err != nil {
					return nil, err
				}
				defer db.Close()
				return db.LoadListings(ctx, cfg.ListingsTable)
			},
			close: func() {},
		}, nil
	default:
		return &dataset{
			load: func(context.Context) ([]listing.Listing, error) {
				return sheet.Load(cfg.DatasetPath, cfg.DatasetSheet)
			},
			close: func() {},
		}, nil
	}
}

// loadCatalog opens the source and reads it once. A failed first read is
// fatal to the caller: nothing can be answered without the table.
func loadCatalog(ctx context.Context, cfg config.Config) (*listing.Catalog, *dataset, error) {
	ds, err := openDataset(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	start := time.Now()
	rows, err := ds.load(ctx)
	if err != nil {
		ds.close()
		return nil, nil, fmt.Errorf("load listings from %s: %w", cfg.DatasetSource, err)
	}
	log.Printf("listings: loaded rows=%d source=%s took=%s", len(rows), cfg.DatasetSource, time.Since(start))
	return listing.NewCatalog(rows), ds, nil
}

// ImportSheet copies a workbook into the sqlite listing table, creating the
// table when needed. It returns the number of rows written.
func ImportSheet(ctx context.Context, cfg config.Config, path, sheetName string) (int, error) {
	rows, err := sheet.Load(path, sheetName)
	if err != nil {
		return 0, err
	}
	db, err := sqlite.Open(cfg.SQLitePath)
	if err != nil {
		return 0, err
	}
	defer db.Close()

	if err := db.CreateListingTable(ctx, cfg.ListingsTable); err != nil {
		return 0, fmt.Errorf("create table: %w", err)
	}
	if err := db.InsertListings(ctx, cfg.ListingsTable, rows); err != nil {
		return 0, err
	}
	log.Printf("listings: imported rows=%d from=%s into=%s", len(rows), path, cfg.SQLitePath)
	return len(rows), nil
}
