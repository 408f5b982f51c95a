package search

import (
	"math"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/spec-kit/office-hours-service/internal/domain"
)

// Score constants for the cascading strategies. Lower is better: a strong
// approximate hit outranks a prefix hit, which outranks a substring hit.
const (
	// approxThreshold accepts up to 60% dissimilarity between the query and
	// the closest name token.
	approxThreshold = 0.6
	prefixScore     = 0.5
	substringScore  = 0.7
)

// Matcher ranks directory people against free-text name queries.
type Matcher struct {
	people []domain.Person
}

// NewMatcher builds a matcher over the loaded directory records.
func NewMatcher(people []domain.Person) *Matcher {
	return &Matcher{people: people}
}

type scored struct {
	person domain.Person
	score  float64
}

// Search returns candidate people, best match first, with no duplicates.
// Three strategies cascade: approximate token matching, then token-prefix,
// then full-name substring. Each runs only when the previous produced
// nothing. Ties keep directory order.
func (m *Matcher) Search(query string) []domain.Person {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}

	hits := m.approximate(query)
	if len(hits) == 0 {
		hits = m.prefix(query)
	}
	if len(hits) == 0 {
		hits = m.substring(query)
	}

	sort.SliceStable(hits, func(i, j int) bool { return hits[i].score < hits[j].score })

	people := make([]domain.Person, 0, len(hits))
	for _, h := range hits {
		people = append(people, h.person)
	}
	return people
}

func (m *Matcher) approximate(query string) []scored {
	var hits []scored
	for _, p := range m.people {
		if score, ok := approximateScore(query, strings.ToLower(p.Name)); ok {
			hits = append(hits, scored{person: p, score: score})
		}
	}
	return hits
}

func (m *Matcher) prefix(query string) []scored {
	var hits []scored
	for _, p := range m.people {
		for _, token := range strings.Fields(strings.ToLower(p.Name)) {
			if strings.HasPrefix(token, query) {
				hits = append(hits, scored{person: p, score: prefixScore})
				break
			}
		}
	}
	return hits
}

func (m *Matcher) substring(query string) []scored {
	var hits []scored
	for _, p := range m.people {
		if strings.Contains(strings.ToLower(p.Name), query) {
			hits = append(hits, scored{person: p, score: substringScore})
		}
	}
	return hits
}

// approximateScore rates the query against the full lowercased name and each
// of its tokens, keeping the best (lowest) normalized edit distance. Scoring
// per token makes matching position-independent: a typo in a surname scores
// the same whether the surname comes first or last.
func approximateScore(query, name string) (float64, bool) {
	targets := append(strings.Fields(name), name)
	best := math.Inf(1)
	for _, target := range targets {
		if d := normalizedDistance(query, target); d < best {
			best = d
		}
	}
	return best, best <= approxThreshold
}

// normalizedDistance is the Levenshtein distance divided by the longer
// operand's rune length, yielding 0 for identical strings and 1 for fully
// dissimilar ones.
func normalizedDistance(a, b string) float64 {
	longest := len([]rune(a))
	if lb := len([]rune(b)); lb > longest {
		longest = lb
	}
	if longest == 0 {
		return 0
	}
	return float64(levenshtein.ComputeDistance(a, b)) / float64(longest)
}
