package intent

import (
	"sort"
	"strings"
	"unicode"
)

// normalize lower-cases s, turns punctuation into spaces and pads the result
// with single spaces so phrases can be matched as " word ".
// Dots and commas survive only between digits ("1,200.50").
func normalize(s string) string {
	rs := []rune(strings.ToLower(s))
	var b strings.Builder
	b.Grow(len(rs) + 2)
	for i, r := range rs {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r), r == '$':
			b.WriteRune(r)
		case (r == '.' || r == ',') && i > 0 && i+1 < len(rs) && unicode.IsDigit(rs[i-1]) && unicode.IsDigit(rs[i+1]):
			b.WriteRune(r)
		case r == '\'':
			// "don't" -> "dont"
		default:
			b.WriteRune(' ')
		}
	}
	return " " + strings.Join(strings.Fields(b.String()), " ") + " "
}

func hasPhrase(norm, phrase string) bool {
	return strings.Contains(norm, " "+phrase+" ")
}

func hasAny(norm string, phrases []string) bool {
	for _, p := range phrases {
		if hasPhrase(norm, p) {
			return true
		}
	}
	return false
}

// mentionedGenre returns the catalog spelling of the longest known genre that
// appears in norm, accepting a plural "s".
func mentionedGenre(norm string, genres []string) (string, bool) {
	sorted := make([]string, len(genres))
	copy(sorted, genres)
	sort.SliceStable(sorted, func(i, j int) bool { return len(sorted[i]) > len(sorted[j]) })
	for _, g := range sorted {
		key := strings.TrimSpace(normalize(g))
		if key == "" {
			continue
		}
		if hasPhrase(norm, key) || hasPhrase(norm, key+"s") || hasPhrase(norm, key+"es") {
			return g, true
		}
		if strings.HasSuffix(key, "s") && hasPhrase(norm, strings.TrimSuffix(key, "s")) {
			return g, true
		}
	}
	return "", false
}

func exactGenre(text string, genres []string) (string, bool) {
	key := strings.TrimSpace(normalize(text))
	if key == "" {
		return "", false
	}
	for _, g := range genres {
		if strings.TrimSpace(normalize(g)) == key {
			return g, true
		}
	}
	return "", false
}

func removeWords(norm string, words ...string) string {
	drop := make(map[string]struct{}, len(words))
	for _, w := range words {
		drop[w] = struct{}{}
	}
	fields := strings.Fields(norm)
	out := fields[:0]
	for _, f := range fields {
		if _, ok := drop[f]; ok {
			continue
		}
		out = append(out, f)
	}
	return strings.Join(out, " ")
}
