package gofpdf

import (
	"bytes"
	"fmt"
	"log"
	"time"

	"github.com/jung-kurt/gofpdf"

	"gamestore/gamebot/internal/domain/listing"
	"gamestore/gamebot/internal/domain/pricelist"
)

type Generator struct{}

func New() *Generator { return &Generator{} }

func (g *Generator) Generate(p pricelist.PriceList) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	title := p.Title
	if title == "" {
		title = "Game accounts price list"
	}
	pdf.SetTitle(title, true)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, tr(title))
	pdf.Ln(10)

	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Generated %s", p.CreatedAt.Format("02.01.2006")))
	pdf.Ln(6)
	if p.Query != "" {
		pdf.Cell(0, 6, tr("Request: "+trim(p.Query, 90)))
		pdf.Ln(6)
	}

	pdf.Ln(4)
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(75, 7, "Game", "B", 0, "L", false, 0, "")
	pdf.CellFormat(40, 7, "Genre", "B", 0, "L", false, 0, "")
	pdf.CellFormat(25, 7, "Account lvl", "B", 0, "R", false, 0, "")
	pdf.CellFormat(25, 7, "Price", "B", 0, "R", false, 0, "")
	pdf.CellFormat(25, 7, "Negotiable", "B", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "", 10)
	for _, it := range p.Items {
		neg := "no"
		if it.Negotiable {
			neg = "yes"
		}
		pdf.CellFormat(75, 6, tr(trim(it.Name, 40)), "", 0, "L", false, 0, "")
		pdf.CellFormat(40, 6, tr(trim(it.Genre, 22)), "", 0, "L", false, 0, "")
		pdf.CellFormat(25, 6, fmt.Sprintf("%d", it.AccountLevel), "", 0, "R", false, 0, "")
		pdf.CellFormat(25, 6, listing.FormatPrice(it.Price), "", 0, "R", false, 0, "")
		pdf.CellFormat(25, 6, neg, "", 1, "C", false, 0, "")
	}

	pdf.Ln(4)
	pdf.SetFont("Arial", "B", 11)
	pdf.Cell(0, 7, fmt.Sprintf("%d listings, total %s", len(p.Items), listing.FormatPrice(p.Total())))
	pdf.Ln(6)

	pdf.SetFont("Arial", "", 8)
	pdf.Cell(0, 5, fmt.Sprintf("Printed: %s", time.Now().Format(time.RFC3339)))

	if err := pdf.Error(); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		log.Printf("pricelist pdf: output failed: %v", err)
		return nil, err
	}
	return buf.Bytes(), nil
}

func trim(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "..."
}
