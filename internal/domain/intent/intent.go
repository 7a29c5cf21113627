// Package intent recognises which of a fixed set of question shapes a
// free-text question about the game listings matches, and pulls out the
// parameters the shape needs. Everything is substring heuristics over a
// normalised copy of the question.
package intent

import "gamestore/gamebot/internal/domain/listing"

type Kind string

const (
	KindExistence  Kind = "existence"
	KindGenrePrice Kind = "genre_price"
	KindPriceRange Kind = "price_range"
	KindLevelRange Kind = "level_range"
	KindNegotiable Kind = "negotiable"
	KindGenre      Kind = "genre"
)

type Query struct {
	Kind Kind `json:"kind"`
	// Genre is the catalog spelling when the question named a known genre,
	// otherwise whatever text the genre filter was left with.
	Genre string `json:"genre,omitempty"`
	// Subject is what an existence question asks about.
	Subject string        `json:"subject,omitempty"`
	Price   listing.Range `json:"price"`
	Level   listing.Range `json:"level"`
	Raw     string        `json:"raw"`
}

// Filter translates the query into catalog criteria. Existence questions
// match by name and are not expressible as a Filter.
func (q Query) Filter() listing.Filter {
	f := listing.Filter{Genre: q.Genre, Price: q.Price, Level: q.Level}
	if q.Kind == KindNegotiable {
		yes := true
		f.Negotiable = &yes
	}
	return f
}
