package sheet

import (
	"fmt"
	"log"
	"strings"

	"github.com/xuri/excelize/v2"

	"gamestore/gamebot/internal/domain/listing"
)

// Load reads listings from an .xlsx workbook. The first non-empty row is the
// header; an empty sheetName means the first sheet.
func Load(path, sheetName string) ([]listing.Listing, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", path, err)
	}
	defer f.Close()

	if strings.TrimSpace(sheetName) == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("workbook %s has no sheets", path)
		}
		sheetName = sheets[0]
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheetName, err)
	}

	headerAt := -1
	for i, r := range rows {
		if !blank(r) {
			headerAt = i
			break
		}
	}
	if headerAt < 0 {
		return nil, nil
	}

	cols, err := listing.MapHeader(rows[headerAt])
	if err != nil {
		return nil, fmt.Errorf("sheet %q: %w", sheetName, err)
	}

	out := make([]listing.Listing, 0, len(rows)-headerAt-1)
	skipped := 0
	for _, r := range rows[headerAt+1:] {
		l, ok := cols.Row(r)
		if !ok {
			skipped++
			continue
		}
		out = append(out, l)
	}
	if skipped > 0 {
		log.Printf("sheet: skipped rows=%d without a game name sheet=%s", skipped, sheetName)
	}
	return out, nil
}

func blank(r []string) bool {
	for _, c := range r {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
