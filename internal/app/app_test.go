package app

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"gamestore/gamebot/internal/app/config"
	"gamestore/gamebot/internal/domain/assistant"
)

func workbook(t *testing.T) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	rows := [][]interface{}{
		{"game name", "genre", "account lvl", "price $", "price debatable ?"},
		{"Elden Ring", "RPG", 120, 45, "yes"},
		{"Valorant", "Shooter", 80, 30, "no"},
		{"FIFA 24", "Sports", 40, 20, "yes"},
	}
	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &r))
	}
	path := filepath.Join(t.TempDir(), "games.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func testConfig(t *testing.T) config.Config {
	return config.Config{
		DatasetSource: "xlsx",
		DatasetPath:   workbook(t),
		SQLitePath:    filepath.Join(t.TempDir(), "games.db"),
		ListingsTable: "game_listings",
		LLMProvider:   "ollama",
		OllamaURL:     "http://127.0.0.1:1",
	}
}

func TestLoadCatalogFromSheet(t *testing.T) {
	catalog, ds, err := loadCatalog(context.Background(), testConfig(t))
	require.NoError(t, err)
	defer ds.close()
	assert.Equal(t, 3, catalog.Len())
	assert.Equal(t, []string{"RPG", "Shooter", "Sports"}, catalog.Genres())
}

func TestLoadCatalogMissingFile(t *testing.T) {
	cfg := testConfig(t)
	cfg.DatasetPath = filepath.Join(t.TempDir(), "missing.xlsx")
	_, _, err := loadCatalog(context.Background(), cfg)
	assert.Error(t, err)
}

func TestImportThenAskFromSQLite(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig(t)

	n, err := ImportSheet(ctx, cfg, cfg.DatasetPath, "")
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	cfg.DatasetSource = "sqlite"
	reply, err := Ask(ctx, cfg, "which prices are negotiable?")
	require.NoError(t, err)
	assert.Equal(t, assistant.SourceFilter, reply.Source)
	assert.Len(t, reply.Listings, 2)
}

func TestChatLoop(t *testing.T) {
	var out bytes.Buffer
	err := Chat(context.Background(), testConfig(t), strings.NewReader("do you have valorant?\nquit\n"), &out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Bot: Yes, we have Valorant")
}
