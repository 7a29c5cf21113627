package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gamestore/gamebot/internal/app/config"
	"gamestore/gamebot/internal/app/http/handlers"
	"gamestore/gamebot/internal/domain/listing"
)

type fakeModel struct {
	answer string
	err    error
	calls  int
}

func (f *fakeModel) Generate(_ context.Context, _ string) (string, error) {
	f.calls++
	return f.answer, f.err
}

func testRows() []listing.Listing {
	return []listing.Listing{
		{Name: "Elden Ring", Genre: "RPG", AccountLevel: 120, Price: 45, Negotiable: true},
		{Name: "Valorant", Genre: "Shooter", AccountLevel: 80, Price: 30},
		{Name: "FIFA 24", Genre: "Sports", AccountLevel: 40, Price: 20, Negotiable: true},
	}
}

type env struct {
	handler http.Handler
	model   *fakeModel
	catalog *listing.Catalog
}

func newEnv(t *testing.T, cfg config.Config, reload handlers.ReloadFunc) env {
	t.Helper()
	if cfg.WebRouter == "" {
		cfg.WebRouter = "genre"
	}
	model := &fakeModel{answer: "We ship worldwide."}
	catalog := listing.NewCatalog(testRows())
	return env{
		handler: NewRouter(cfg, catalog, model, reload),
		model:   model,
		catalog: catalog,
	}
}

func (e env) do(method, path, body string, header map[string]string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	for k, v := range header {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	e.handler.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	e := newEnv(t, config.Config{}, nil)
	rec := e.do(http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
	assert.Equal(t, "3", rec.Header().Get("X-Listings-Count"))
}

func TestIndexAndStatic(t *testing.T) {
	e := newEnv(t, config.Config{}, nil)

	rec := e.do(http.MethodGet, "/", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `id="chat-box"`)

	rec = e.do(http.MethodGet, "/static/script.js", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "sendMessage")
}

func TestChatGenreFilter(t *testing.T) {
	e := newEnv(t, config.Config{}, nil)

	rec := e.do(http.MethodPost, "/chat", `{"question":"shooter games","context":""}`, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Here are the games available in the Shooter genre:\n- Valorant\n"+
		"Would you like to know the price and other details of these games? (yes/no)", resp["response"])
	assert.Zero(t, e.model.calls)
}

func TestChatFallsBackToModel(t *testing.T) {
	e := newEnv(t, config.Config{}, nil)

	rec := e.do(http.MethodPost, "/chat", `{"question":"do you ship abroad?"}`, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"response":"We ship worldwide."}`, rec.Body.String())
	assert.Equal(t, 1, e.model.calls)
}

func TestChatModelFailure(t *testing.T) {
	e := newEnv(t, config.Config{}, nil)
	e.model.err = errors.New("connection refused")

	rec := e.do(http.MethodPost, "/chat", `{"question":"do you ship abroad?"}`, nil)
	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestChatQueryRouter(t *testing.T) {
	e := newEnv(t, config.Config{WebRouter: "query"}, nil)

	rec := e.do(http.MethodPost, "/v1/chat", `{"question":"games under $25"}`, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Response string            `json:"response"`
		Kind     string            `json:"kind"`
		Source   string            `json:"source"`
		Listings []listing.Listing `json:"listings"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "price_range", resp.Kind)
	assert.Equal(t, "filter", resp.Source)
	require.Len(t, resp.Listings, 1)
	assert.Equal(t, "FIFA 24", resp.Listings[0].Name)
}

func TestListListings(t *testing.T) {
	e := newEnv(t, config.Config{}, nil)

	var resp handlers.ListingsResponse
	rec := e.do(http.MethodGet, "/v1/listings?genre=rpg", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Count)
	assert.Equal(t, []string{"RPG", "Shooter", "Sports"}, resp.Genres)

	rec = e.do(http.MethodGet, "/v1/listings?genre=puzzle", "", nil)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Zero(t, resp.Count)
	assert.NotNil(t, resp.Listings)
}

func TestQueryListings(t *testing.T) {
	e := newEnv(t, config.Config{}, nil)

	var resp handlers.QueryResponse
	rec := e.do(http.MethodPost, "/v1/query", `{"question":"which prices are negotiable?"}`, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Matched)
	assert.Len(t, resp.Listings, 2)

	resp = handlers.QueryResponse{}
	rec = e.do(http.MethodPost, "/v1/query", `{"question":"tell me a joke"}`, nil)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Matched)
	assert.Zero(t, e.model.calls)

	rec = e.do(http.MethodPost, "/v1/query", `{"question":""}`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreatePriceList(t *testing.T) {
	e := newEnv(t, config.Config{}, nil)

	rec := e.do(http.MethodPost, "/v1/pricelist", `{"genre":"sports"}`, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.True(t, strings.HasPrefix(rec.Body.String(), "%PDF"))

	rec = e.do(http.MethodPost, "/v1/pricelist", `{"question":"games over $500"}`, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = e.do(http.MethodPost, "/v1/pricelist", `{}`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestReloadListings(t *testing.T) {
	fresh := []listing.Listing{{Name: "Apex Legends", Genre: "Battle Royale", Price: 15}}
	reload := func(context.Context) ([]listing.Listing, error) { return fresh, nil }
	e := newEnv(t, config.Config{InternalToken: "secret"}, reload)

	rec := e.do(http.MethodPost, "/v1/listings/reload", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, 3, e.catalog.Len())

	rec = e.do(http.MethodPost, "/v1/listings/reload", "", map[string]string{"X-Internal-Token": "secret"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, e.catalog.Len())
	assert.Equal(t, []string{"Battle Royale"}, e.catalog.Genres())
}

func TestReloadFailureKeepsRows(t *testing.T) {
	reload := func(context.Context) ([]listing.Listing, error) { return nil, errors.New("file missing") }
	e := newEnv(t, config.Config{}, reload)

	rec := e.do(http.MethodPost, "/v1/listings/reload", "", nil)
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Equal(t, 3, e.catalog.Len())
}
