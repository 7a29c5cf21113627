package pricelist

import (
	"time"

	"gamestore/gamebot/internal/domain/listing"
)

type PriceList struct {
	Title     string
	Query     string
	CreatedAt time.Time
	Items     []listing.Listing
}

func New(title, query string, items []listing.Listing) PriceList {
	return PriceList{Title: title, Query: query, CreatedAt: time.Now(), Items: items}
}

func (p PriceList) Total() float64 {
	var sum float64
	for _, it := range p.Items {
		sum += it.Price
	}
	return sum
}
