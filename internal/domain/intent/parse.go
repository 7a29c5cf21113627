package intent

import "strings"

var (
	existencePrefixes = []string{
		"do you have", "do you guys have", "do you sell", "do you stock", "do you carry",
		"have you got", "have you any", "is there", "are there", "got any",
		"can i buy", "can i get", "any chance you have",
	}
	existenceSuffixes = []string{"available", "in stock", "for sale"}
	subjectFillers    = map[string]struct{}{
		"a": {}, "an": {}, "the": {}, "any": {}, "some": {}, "is": {}, "are": {},
		"right": {}, "now": {}, "currently": {}, "still": {}, "please": {},
		"account": {}, "accounts": {}, "available": {}, "for": {}, "sale": {}, "in": {}, "stock": {},
	}
	// Nouns that name the catalog itself rather than something in it.
	catalogNouns = map[string]struct{}{
		"game": {}, "games": {}, "account": {}, "accounts": {}, "anything": {}, "something": {},
		"stuff": {}, "listing": {}, "listings": {}, "item": {}, "items": {}, "ones": {},
	}
	questionWords = map[string]struct{}{
		"what": {}, "which": {}, "how": {}, "who": {}, "where": {}, "when": {}, "why": {},
	}

	negotiationCues = []string{
		"negotiable", "negotiate", "negotiation", "debatable", "bargain", "haggle",
		"discount", "discounts", "flexible", "best price", "lower the price",
	}
)

// Parser knows the catalog genres so it can tell "rpg" apart from any other
// word in the question.
type Parser struct {
	Genres []string
}

func NewParser(genres []string) Parser {
	return Parser{Genres: genres}
}

// Parse tries the shapes in a fixed order: existence, genre+price, price
// range, account-level range, negotiability. ok is false when nothing
// matched, including when a comparison cue carried no usable number.
func (p Parser) Parse(question string) (Query, bool) {
	norm := normalize(question)
	if strings.TrimSpace(norm) == "" {
		return Query{}, false
	}
	price, level := extractRanges(norm)
	negotiable := hasAny(norm, negotiationCues)
	genre, hasGenre := mentionedGenre(norm, p.Genres)

	q := Query{Raw: question}
	if price.IsZero() && level.IsZero() && !negotiable {
		if subject, ok := existenceSubject(norm); ok {
			q.Kind = KindExistence
			q.Subject = subject
			return q, true
		}
	}
	switch {
	case hasGenre && !price.IsZero():
		q.Kind = KindGenrePrice
		q.Genre = genre
		q.Price = price
		q.Level = level
	case !price.IsZero():
		q.Kind = KindPriceRange
		q.Price = price
		q.Level = level
	case !level.IsZero():
		q.Kind = KindLevelRange
		q.Level = level
		if hasGenre {
			q.Genre = genre
		}
	case negotiable:
		q.Kind = KindNegotiable
		if hasGenre {
			q.Genre = genre
		}
	default:
		return Query{}, false
	}
	return q, true
}

// ParseGenre is the keyword filter behind the web chat: any question that
// mentions "genre" or "game" is treated as a genre lookup.
func (p Parser) ParseGenre(question string) (Query, bool) {
	lower := strings.ToLower(question)
	if !strings.Contains(lower, "genre") && !strings.Contains(lower, "game") {
		return Query{}, false
	}
	norm := normalize(question)
	rest := removeWords(norm, "genre", "genres", "game", "games")

	q := Query{Kind: KindGenre, Raw: question}
	if g, ok := exactGenre(rest, p.Genres); ok {
		q.Genre = g
		return q, true
	}
	if g, ok := mentionedGenre(norm, p.Genres); ok {
		q.Genre = g
		return q, true
	}
	if rest == "" {
		return Query{}, false
	}
	q.Genre = rest
	return q, true
}

func existenceSubject(norm string) (string, bool) {
	for _, prefix := range existencePrefixes {
		needle := " " + prefix + " "
		if i := strings.Index(norm, needle); i >= 0 {
			return cleanSubject(norm[i+len(needle):])
		}
	}
	for _, suffix := range existenceSuffixes {
		needle := " " + suffix + " "
		if i := strings.Index(norm, needle); i >= 0 {
			return cleanSubject(norm[:i])
		}
	}
	return "", false
}

func cleanSubject(s string) (string, bool) {
	words := strings.Fields(s)
	if len(words) > 0 {
		if _, ok := questionWords[words[0]]; ok {
			return "", false
		}
	}
	for len(words) > 0 {
		if _, ok := subjectFillers[words[0]]; !ok {
			break
		}
		words = words[1:]
	}
	for len(words) > 0 {
		if _, ok := subjectFillers[words[len(words)-1]]; !ok {
			break
		}
		words = words[:len(words)-1]
	}
	if len(words) == 0 || onlyCatalogNouns(words) {
		return "", false
	}
	return strings.Join(words, " "), true
}

func onlyCatalogNouns(words []string) bool {
	for _, w := range words {
		_, noun := catalogNouns[w]
		_, filler := subjectFillers[w]
		if !noun && !filler {
			return false
		}
	}
	return true
}
