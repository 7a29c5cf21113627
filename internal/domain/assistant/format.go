package assistant

import (
	"fmt"
	"strconv"
	"strings"

	"gamestore/gamebot/internal/domain/intent"
	"gamestore/gamebot/internal/domain/listing"
)

func describeRange(r listing.Range, money bool) string {
	num := func(v float64) string {
		if money {
			return listing.FormatPrice(v)
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	switch {
	case r.Min != nil && r.Max != nil && !r.MinExclusive && !r.MaxExclusive:
		return fmt.Sprintf("between %s and %s", num(*r.Min), num(*r.Max))
	case r.Min != nil && r.Max != nil:
		return describeRange(listing.Range{Min: r.Min, MinExclusive: r.MinExclusive}, money) +
			" and " + describeRange(listing.Range{Max: r.Max, MaxExclusive: r.MaxExclusive}, money)
	case r.Max != nil && r.MaxExclusive:
		return "under " + num(*r.Max)
	case r.Max != nil:
		return "at most " + num(*r.Max)
	case r.Min != nil && r.MinExclusive:
		return "over " + num(*r.Min)
	case r.Min != nil:
		return "at least " + num(*r.Min)
	default:
		return ""
	}
}

func levelClause(r listing.Range) string {
	if r.IsZero() {
		return ""
	}
	return " with account level " + describeRange(r, false)
}

// rangeClause is the price and level part of a range question, e.g.
// " priced under $40 with account level at least 30".
func rangeClause(q intent.Query) string {
	var s string
	if !q.Price.IsZero() {
		s = " priced " + describeRange(q.Price, true)
	}
	return s + levelClause(q.Level)
}

// namedRangeReply answers a range question that names games: each named
// game is checked against the range. The genre is ignored since the name
// already picks the row.
func namedRangeReply(q intent.Query, named []listing.Listing) ([]listing.Listing, string) {
	f := q.Filter()
	f.Genre = ""
	clause := rangeClause(q)

	var (
		matched []listing.Listing
		lines   []string
	)
	for _, l := range named {
		if f.Match(l) {
			matched = append(matched, l)
			lines = append(lines, fmt.Sprintf("Yes, we have %s%s: %s", l.Name, clause, l.Describe()))
			continue
		}
		lines = append(lines, fmt.Sprintf("Sorry, %s is not available%s: %s", l.Name, clause, l.Describe()))
	}
	return matched, strings.Join(lines, "\n")
}

func bulletList(rows []listing.Listing, details bool) string {
	var b strings.Builder
	for _, l := range rows {
		b.WriteString("- ")
		if details {
			b.WriteString(l.Describe())
		} else {
			b.WriteString(l.Name)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// capitalize upper-cases the first letter and lower-cases the rest.
func capitalize(s string) string {
	r := []rune(strings.ToLower(s))
	if len(r) == 0 {
		return ""
	}
	return strings.ToUpper(string(r[0])) + string(r[1:])
}

func genreReply(genre string, rows []listing.Listing) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Here are the games available in the %s genre:\n", capitalize(genre))
	b.WriteString(bulletList(rows, false))
	b.WriteString("Would you like to know the price and other details of these games? (yes/no)")
	return b.String()
}

func filterReply(q intent.Query, rows []listing.Listing) string {
	if len(rows) == 0 {
		return noMatchReply(q)
	}
	var header string
	switch q.Kind {
	case intent.KindGenrePrice:
		header = fmt.Sprintf("Here are the %s games priced %s%s:", q.Genre, describeRange(q.Price, true), levelClause(q.Level))
	case intent.KindPriceRange:
		header = fmt.Sprintf("Here are the games priced %s%s:", describeRange(q.Price, true), levelClause(q.Level))
	case intent.KindLevelRange:
		header = "Here are the accounts with level " + describeRange(q.Level, false)
		if q.Genre != "" {
			header += " in the " + q.Genre + " genre"
		}
		header += ":"
	case intent.KindNegotiable:
		if q.Genre != "" {
			header = fmt.Sprintf("These %s games have a negotiable price:", q.Genre)
		} else {
			header = "These games have a negotiable price:"
		}
	default:
		header = "Here is what I found:"
	}
	return header + "\n" + strings.TrimRight(bulletList(rows, true), "\n")
}

func noMatchReply(q intent.Query) string {
	switch q.Kind {
	case intent.KindGenrePrice:
		return fmt.Sprintf("Sorry, we don't have any %s games priced %s%s.", q.Genre, describeRange(q.Price, true), levelClause(q.Level))
	case intent.KindPriceRange:
		return fmt.Sprintf("Sorry, no games are priced %s%s.", describeRange(q.Price, true), levelClause(q.Level))
	case intent.KindLevelRange:
		msg := "Sorry, no accounts have level " + describeRange(q.Level, false)
		if q.Genre != "" {
			msg += " in the " + q.Genre + " genre"
		}
		return msg + "."
	case intent.KindNegotiable:
		if q.Genre != "" {
			return fmt.Sprintf("Sorry, none of our %s games have a negotiable price right now.", q.Genre)
		}
		return "Sorry, none of our prices are negotiable right now."
	default:
		return "Sorry, nothing matches that."
	}
}
