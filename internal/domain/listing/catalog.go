package listing

import (
	"sort"
	"strings"
	"sync"
)

// Catalog holds the loaded table. Reads may run concurrently with Replace.
type Catalog struct {
	mu   sync.RWMutex
	rows []Listing
}

func NewCatalog(rows []Listing) *Catalog {
	c := &Catalog{}
	c.Replace(rows)
	return c
}

func (c *Catalog) Replace(rows []Listing) {
	cp := make([]Listing, len(rows))
	copy(cp, rows)
	c.mu.Lock()
	c.rows = cp
	c.mu.Unlock()
}

func (c *Catalog) All() []Listing {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]Listing, len(c.rows))
	copy(out, c.rows)
	return out
}

func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.rows)
}

func (c *Catalog) Genres() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	seen := map[string]struct{}{}
	out := make([]string, 0, 8)
	for _, l := range c.rows {
		g := strings.TrimSpace(l.Genre)
		if g == "" {
			continue
		}
		key := strings.ToLower(g)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, g)
	}
	return out
}

func (c *Catalog) ByGenre(genre string) []Listing {
	genre = strings.TrimSpace(genre)
	if genre == "" {
		return nil
	}
	return c.Filter(Filter{Genre: genre})
}

func (c *Catalog) Filter(f Filter) []Listing {
	c.mu.RLock()
	defer c.mu.RUnlock()
	var out []Listing
	for _, l := range c.rows {
		if f.Match(l) {
			out = append(out, l)
		}
	}
	return out
}

// FindByName returns rows whose name occurs in text, longest names first so
// "Elden Ring Nightreign" wins over "Elden Ring".
func (c *Catalog) FindByName(text string) []Listing {
	lower := strings.ToLower(text)
	if strings.TrimSpace(lower) == "" {
		return nil
	}
	c.mu.RLock()
	var out []Listing
	for _, l := range c.rows {
		name := strings.ToLower(strings.TrimSpace(l.Name))
		if name == "" {
			continue
		}
		if strings.Contains(lower, name) {
			out = append(out, l)
		}
	}
	c.mu.RUnlock()
	sort.SliceStable(out, func(i, j int) bool {
		return len(out[i].Name) > len(out[j].Name)
	})
	return out
}

// SearchName is the reverse of FindByName: rows whose name contains term.
func (c *Catalog) SearchName(term string) []Listing {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	var out []Listing
	for _, l := range c.rows {
		if strings.Contains(strings.ToLower(l.Name), term) {
			out = append(out, l)
		}
	}
	return out
}
