package listing

import (
	"fmt"
	"strings"
)

type column int

const (
	colName column = iota
	colGenre
	colLevel
	colPrice
	colNegotiable
)

// Header aliases, compared after lower-casing and trimming. The first entry
// of each list is the spelling used by the store's games.xlsx.
var headerAliases = map[column][]string{
	colName:       {"game name", "name", "game", "title"},
	colGenre:      {"genre", "category"},
	colLevel:      {"account lvl", "account level", "level", "lvl"},
	colPrice:      {"price $", "price", "price usd", "price ($)"},
	colNegotiable: {"price debatable ?", "price debatable?", "price debatable", "debatable", "negotiable"},
}

// Columns maps table fields to positions in a header row; -1 means absent.
type Columns struct {
	idx map[column]int
}

func MapHeader(header []string) (Columns, error) {
	c := Columns{idx: map[column]int{}}
	for col, aliases := range headerAliases {
		c.idx[col] = -1
		for i, h := range header {
			key := strings.ToLower(strings.TrimSpace(h))
			if containsString(aliases, key) {
				c.idx[col] = i
				break
			}
		}
	}
	if c.idx[colName] < 0 {
		return Columns{}, fmt.Errorf("%w: %q", ErrMissingColumn, headerAliases[colName][0])
	}
	if c.idx[colGenre] < 0 {
		return Columns{}, fmt.Errorf("%w: %q", ErrMissingColumn, headerAliases[colGenre][0])
	}
	return c, nil
}

// Row converts one record. Blank names mean a blank spreadsheet row and
// are reported with ok=false; unparseable numbers become zero.
func (c Columns) Row(rec []string) (Listing, bool) {
	l := Listing{
		Name:  c.cell(rec, colName),
		Genre: c.cell(rec, colGenre),
	}
	if l.Name == "" {
		return Listing{}, false
	}
	l.AccountLevel, _ = ParseLevel(c.cell(rec, colLevel))
	l.Price, _ = ParsePrice(c.cell(rec, colPrice))
	l.Negotiable = ParseNegotiable(c.cell(rec, colNegotiable))
	return l, true
}

func (c Columns) cell(rec []string, col column) string {
	i, ok := c.idx[col]
	if !ok || i < 0 || i >= len(rec) {
		return ""
	}
	return strings.TrimSpace(rec[i])
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
