package assistant

import (
	"context"
	"fmt"
	"strings"

	"gamestore/gamebot/internal/domain/intent"
	"gamestore/gamebot/internal/domain/listing"
)

// GenreRouter is the web chat: a keyword genre filter, otherwise the store
// prompt chain.
type GenreRouter struct {
	Catalog *listing.Catalog
	Chain   *Chain
}

func NewGenreRouter(catalog *listing.Catalog, chain *Chain) *GenreRouter {
	return &GenreRouter{Catalog: catalog, Chain: chain}
}

func (r *GenreRouter) Answer(ctx context.Context, q Question) (Reply, error) {
	text := strings.TrimSpace(q.Text)
	if text == "" {
		return Reply{}, ErrEmptyQuestion
	}
	if query, ok := intent.NewParser(r.Catalog.Genres()).ParseGenre(text); ok {
		return r.genre(query), nil
	}
	answer, err := r.Chain.Invoke(ctx, map[string]any{
		"data":     catalogData(r.Catalog.All()),
		"context":  q.Context,
		"question": text,
	})
	if err != nil {
		return Reply{}, fmt.Errorf("store chain: %w", err)
	}
	return Reply{Text: answer, Source: SourceModel}, nil
}

func (r *GenreRouter) genre(query intent.Query) Reply {
	games := r.Catalog.ByGenre(query.Genre)
	reply := Reply{Query: &query, Listings: games, Source: SourceFilter}
	if len(games) == 0 {
		reply.Text = fmt.Sprintf("Sorry, we don't have any games in the %s genre.", query.Genre)
		return reply
	}
	reply.Text = genreReply(query.Genre, games)
	return reply
}
