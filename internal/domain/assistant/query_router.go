package assistant

import (
	"context"
	"fmt"
	"strings"

	"gamestore/gamebot/internal/domain/intent"
	"gamestore/gamebot/internal/domain/listing"
)

// QueryRouter is the chat loop's brain: the full set of query parsers, then
// the catalog chain for anything they don't recognise.
type QueryRouter struct {
	Catalog *listing.Catalog
	Chain   *Chain
}

func NewQueryRouter(catalog *listing.Catalog, chain *Chain) *QueryRouter {
	return &QueryRouter{Catalog: catalog, Chain: chain}
}

func (r *QueryRouter) Answer(ctx context.Context, q Question) (Reply, error) {
	text := strings.TrimSpace(q.Text)
	if text == "" {
		return Reply{}, ErrEmptyQuestion
	}
	if reply, ok := r.Resolve(text); ok {
		return reply, nil
	}
	answer, err := r.Chain.Invoke(ctx, map[string]any{
		"data":     catalogData(r.Catalog.All()),
		"question": text,
	})
	if err != nil {
		return Reply{}, fmt.Errorf("catalog chain: %w", err)
	}
	return Reply{Text: answer, Source: SourceModel}, nil
}

// Resolve answers from the table alone. ok is false when no parser
// recognised the question, or when an existence question names nothing the
// table knows about.
func (r *QueryRouter) Resolve(text string) (Reply, bool) {
	query, ok := intent.NewParser(r.Catalog.Genres()).Parse(text)
	if !ok {
		return Reply{}, false
	}
	reply := Reply{Query: &query, Source: SourceFilter}
	switch query.Kind {
	case intent.KindExistence:
		if reply.Listings, reply.Text, ok = r.existence(text, query); !ok {
			return Reply{}, false
		}
		return reply, true
	case intent.KindNegotiable:
		if named := r.Catalog.FindByName(text); len(named) > 0 {
			reply.Listings = named[:1]
			reply.Text = negotiableReply(named[0])
			return reply, true
		}
	case intent.KindGenrePrice, intent.KindPriceRange, intent.KindLevelRange:
		if named := dropShadowed(r.Catalog.FindByName(text)); len(named) > 0 {
			reply.Listings, reply.Text = namedRangeReply(query, named)
			return reply, true
		}
	}
	reply.Listings = r.Catalog.Filter(query.Filter())
	reply.Text = filterReply(query, reply.Listings)
	return reply, true
}

func (r *QueryRouter) existence(text string, query intent.Query) ([]listing.Listing, string, bool) {
	found := dropShadowed(r.Catalog.FindByName(text))
	if len(found) == 0 {
		found = r.Catalog.SearchName(query.Subject)
	}
	if len(found) == 1 {
		return found, "Yes, we have " + found[0].Name + ": " + found[0].Describe(), true
	}
	if len(found) > 1 {
		return found, "Yes, we have these:\n" + strings.TrimRight(bulletList(found, true), "\n"), true
	}

	if genre, ok := intent.NewParser(r.Catalog.Genres()).ParseGenre(query.Subject + " games"); ok {
		if games := r.Catalog.ByGenre(genre.Genre); len(games) > 0 {
			return games, fmt.Sprintf("Yes, we have %d %s games:\n%s", len(games), genre.Genre,
				strings.TrimRight(bulletList(games, true), "\n")), true
		}
	}
	return nil, "", false
}

func negotiableReply(l listing.Listing) string {
	if l.Negotiable {
		return fmt.Sprintf("Yes, the price of %s (%s) is negotiable.", l.Name, listing.FormatPrice(l.Price))
	}
	return fmt.Sprintf("No, the price of %s is fixed at %s.", l.Name, listing.FormatPrice(l.Price))
}

// dropShadowed removes names that only matched as part of a longer match,
// so "elden ring nightreign" does not also report "Elden Ring".
func dropShadowed(found []listing.Listing) []listing.Listing {
	out := make([]listing.Listing, 0, len(found))
	for _, l := range found {
		shadowed := false
		for _, kept := range out {
			if len(kept.Name) > len(l.Name) && strings.Contains(strings.ToLower(kept.Name), strings.ToLower(l.Name)) {
				shadowed = true
				break
			}
		}
		if !shadowed {
			out = append(out, l)
		}
	}
	return out
}
