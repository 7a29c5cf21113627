package intent

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"gamestore/gamebot/internal/domain/listing"
)

type bound int

const (
	boundBelow bound = iota
	boundAtMost
	boundAbove
	boundAtLeast
	boundBetween
)

type dimension int

const (
	dimUnknown dimension = iota
	dimPrice
	dimLevel
)

type cue struct {
	phrase string
	bound  bound
}

var comparisonCues = []cue{
	{"under", boundBelow},
	{"below", boundBelow},
	{"less than", boundBelow},
	{"cheaper than", boundBelow},
	{"lower than", boundBelow},
	{"fewer than", boundBelow},
	{"beneath", boundBelow},
	{"at most", boundAtMost},
	{"up to", boundAtMost},
	{"no more than", boundAtMost},
	{"not more than", boundAtMost},
	{"maximum", boundAtMost},
	{"max", boundAtMost},
	{"over", boundAbove},
	{"above", boundAbove},
	{"more than", boundAbove},
	{"greater than", boundAbove},
	{"higher than", boundAbove},
	{"more expensive than", boundAbove},
	{"pricier than", boundAbove},
	{"exceeding", boundAbove},
	{"at least", boundAtLeast},
	{"no less than", boundAtLeast},
	{"not less than", boundAtLeast},
	{"minimum", boundAtLeast},
	{"min", boundAtLeast},
	{"starting at", boundAtLeast},
	{"starting from", boundAtLeast},
}

var (
	priceWords = []string{"price", "prices", "priced", "cost", "costs", "dollar", "dollars", "usd", "bucks", "cheap", "cheaper", "expensive", "budget"}
	levelWords = []string{"level", "levels", "lvl", "lv"}

	// after a cue phrase; the text starts with the space that followed it
	cueNumberRE = regexp.MustCompile(`^ (?:(?:account )?(?:level|lvl|lv) )?(?:\$ ?)?(\d[\d,]*(?:\.\d+)?)(?: ?\$| dollars?| usd| bucks)?(?: levels?| lvl)?`)
	betweenRE   = regexp.MustCompile(` (?:between|from) (?:(?:account )?(?:level|lvl|lv) )?(?:\$ ?)?(\d[\d,]*(?:\.\d+)?)(?: ?\$| dollars?| usd| bucks)?(?: and| to)? (?:\$ ?)?(\d[\d,]*(?:\.\d+)?)(?: ?\$| dollars?| usd| bucks)?(?: levels?| lvl)?`)
	postfixRE   = regexp.MustCompile(` (?:\$ ?)?(\d[\d,]*(?:\.\d+)?)(?: ?\$| dollars?| usd| bucks)?(?: levels?| lvl)? (?:or|and) (less|under|below|lower|cheaper|fewer|more|over|above|higher|greater|up)`)
)

type comparison struct {
	start, end int
	bound      bound
	value      float64
	upper      float64
	dim        dimension
}

// extractRanges finds every numeric comparison in norm and folds them into a
// price range and a level range.
func extractRanges(norm string) (price, level listing.Range) {
	comps := findComparisons(norm)
	if len(comps) == 0 {
		return
	}
	fallback := dimPrice
	if hasAny(norm, levelWords) && !mentionsPrice(norm) {
		fallback = dimLevel
	}
	for _, c := range comps {
		dim := c.dim
		if dim == dimUnknown {
			dim = fallback
		}
		if dim == dimLevel {
			applyBound(&level, c)
		} else {
			applyBound(&price, c)
		}
	}
	return
}

func mentionsPrice(norm string) bool {
	return strings.Contains(norm, "$") || hasAny(norm, priceWords)
}

func findComparisons(norm string) []comparison {
	var found []comparison

	for _, m := range betweenRE.FindAllStringSubmatchIndex(norm, -1) {
		a, okA := parseNumber(norm[m[2]:m[3]])
		b, okB := parseNumber(norm[m[4]:m[5]])
		if !okA || !okB {
			continue
		}
		if a > b {
			a, b = b, a
		}
		found = append(found, comparison{start: m[0], end: m[1], bound: boundBetween, value: a, upper: b})
	}

	for _, c := range comparisonCues {
		needle := " " + c.phrase + " "
		from := 0
		for {
			i := strings.Index(norm[from:], needle)
			if i < 0 {
				break
			}
			start := from + i
			rest := norm[start+len(c.phrase)+1:]
			if m := cueNumberRE.FindStringSubmatchIndex(rest); m != nil {
				if v, ok := parseNumber(rest[m[2]:m[3]]); ok {
					end := start + len(c.phrase) + 1 + m[1]
					found = append(found, comparison{start: start, end: end, bound: c.bound, value: v})
				}
			}
			from = start + 1
		}
	}

	for _, m := range postfixRE.FindAllStringSubmatchIndex(norm, -1) {
		v, ok := parseNumber(norm[m[2]:m[3]])
		if !ok {
			continue
		}
		b := boundAtMost
		switch norm[m[4]:m[5]] {
		case "more", "over", "above", "higher", "greater", "up":
			b = boundAtLeast
		}
		found = append(found, comparison{start: m[0], end: m[1], bound: b, value: v})
	}

	sort.SliceStable(found, func(i, j int) bool {
		if found[i].start == found[j].start {
			return found[i].end > found[j].end
		}
		return found[i].start < found[j].start
	})

	out := found[:0]
	lastEnd := -1
	for _, c := range found {
		if c.start < lastEnd {
			continue
		}
		c.dim = classify(norm, c)
		out = append(out, c)
		lastEnd = c.end
	}
	return out
}

// classify looks at the comparison text and at the two words in front of it.
func classify(norm string, c comparison) dimension {
	span := norm[c.start:c.end]
	if hasAny(" "+strings.TrimSpace(span)+" ", levelWords) {
		return dimLevel
	}
	if strings.Contains(span, "$") || hasAny(" "+strings.TrimSpace(span)+" ", []string{"dollar", "dollars", "usd", "bucks"}) {
		return dimPrice
	}
	before := strings.Fields(norm[:c.start])
	if len(before) > 2 {
		before = before[len(before)-2:]
	}
	window := " " + strings.Join(before, " ") + " "
	if hasAny(window, levelWords) {
		return dimLevel
	}
	if hasAny(window, priceWords) {
		return dimPrice
	}
	return dimUnknown
}

func applyBound(r *listing.Range, c comparison) {
	v := c.value
	switch c.bound {
	case boundBelow:
		r.Max, r.MaxExclusive = &v, true
	case boundAtMost:
		r.Max, r.MaxExclusive = &v, false
	case boundAbove:
		r.Min, r.MinExclusive = &v, true
	case boundAtLeast:
		r.Min, r.MinExclusive = &v, false
	case boundBetween:
		hi := c.upper
		r.Min, r.MinExclusive = &v, false
		r.Max, r.MaxExclusive = &hi, false
	}
}

func parseNumber(s string) (float64, bool) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
