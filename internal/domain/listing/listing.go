package listing

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrMissingColumn = errors.New("listing: required column missing")

type Listing struct {
	Name         string  `json:"name"`
	Genre        string  `json:"genre"`
	AccountLevel int     `json:"account_level"`
	Price        float64 `json:"price"`
	Negotiable   bool    `json:"negotiable"`
}

// Describe renders one row the way replies list it.
func (l Listing) Describe() string {
	return fmt.Sprintf("%s (%s) | account lvl %d | %s | negotiable: %s",
		l.Name, l.Genre, l.AccountLevel, FormatPrice(l.Price), yesNo(l.Negotiable))
}

func FormatPrice(v float64) string {
	if v == float64(int64(v)) {
		return "$" + strconv.FormatInt(int64(v), 10)
	}
	return "$" + strconv.FormatFloat(v, 'f', 2, 64)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// ParsePrice accepts spreadsheet renderings like "$1,200.50" or "20 $".
// Empty or unparseable cells yield 0 and ok=false.
func ParsePrice(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	s = strings.NewReplacer("$", "", ",", "", " ", "", "usd", "", "USD", "").Replace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func ParseLevel(raw string) (int, bool) {
	s := strings.TrimSpace(strings.ToLower(raw))
	s = strings.TrimPrefix(s, "lvl")
	s = strings.TrimPrefix(s, "level")
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n, true
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return int(f), true
	}
	return 0, false
}

func ParseNegotiable(raw string) bool {
	switch strings.TrimSpace(strings.ToLower(raw)) {
	case "yes", "y", "true", "1", "negotiable", "debatable", "oui", "si":
		return true
	default:
		return false
	}
}
