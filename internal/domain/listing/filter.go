package listing

import "strings"

type Range struct {
	Min          *float64 `json:"min,omitempty"`
	Max          *float64 `json:"max,omitempty"`
	MinExclusive bool     `json:"min_exclusive,omitempty"`
	MaxExclusive bool     `json:"max_exclusive,omitempty"`
}

func (r Range) IsZero() bool { return r.Min == nil && r.Max == nil }

func (r Range) Contains(v float64) bool {
	if r.Min != nil {
		if r.MinExclusive && v <= *r.Min {
			return false
		}
		if !r.MinExclusive && v < *r.Min {
			return false
		}
	}
	if r.Max != nil {
		if r.MaxExclusive && v >= *r.Max {
			return false
		}
		if !r.MaxExclusive && v > *r.Max {
			return false
		}
	}
	return true
}

// Filter is a conjunction; zero-valued fields do not constrain.
type Filter struct {
	Genre      string
	Price      Range
	Level      Range
	Negotiable *bool
}

func (f Filter) Match(l Listing) bool {
	if g := strings.TrimSpace(f.Genre); g != "" && !strings.EqualFold(strings.TrimSpace(l.Genre), g) {
		return false
	}
	if !f.Price.Contains(l.Price) {
		return false
	}
	if !f.Level.Contains(float64(l.AccountLevel)) {
		return false
	}
	if f.Negotiable != nil && l.Negotiable != *f.Negotiable {
		return false
	}
	return true
}
