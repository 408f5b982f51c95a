package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/office-hours-service/internal/domain"
)

func testMatcher() *Matcher {
	return NewMatcher([]domain.Person{
		{Name: "Ahmed Ali", Department: "Computer Science"},
		{Name: "Alan Poe", Department: "English"},
		{Name: "John Smith", Department: "Mathematics"},
		{Name: "Jon Smyth", Department: "Mathematics"},
		{Name: "Jane Doe", Department: "Physics"},
	})
}

func names(people []domain.Person) []string {
	out := make([]string, 0, len(people))
	for _, p := range people {
		out = append(out, p.Name)
	}
	return out
}

func TestSearchExactName(t *testing.T) {
	got := testMatcher().Search("ahmed ali")
	assert.Equal(t, []string{"Ahmed Ali"}, names(got))
}

func TestSearchToleratesTypo(t *testing.T) {
	// One altered character still resolves, closest name first.
	got := testMatcher().Search("jon smith")
	assert.Equal(t, []string{"John Smith", "Jon Smyth"}, names(got))
}

func TestSearchRanksCloserMatchFirst(t *testing.T) {
	// "ali" is an exact token of Ahmed Ali and two edits from "alan".
	got := testMatcher().Search("ali")
	assert.Equal(t, []string{"Ahmed Ali", "Alan Poe"}, names(got))
}

func TestSearchPrefixFallback(t *testing.T) {
	// A single character is too dissimilar for the approximate strategy and
	// falls back to token prefixes, ties keeping directory order.
	got := testMatcher().Search("a")
	assert.Equal(t, []string{"Ahmed Ali", "Alan Poe"}, names(got))
}

func TestSearchSubstringFallback(t *testing.T) {
	// "n s" spans a token boundary: no token is close or prefixed by it,
	// but both Smith names contain it.
	got := testMatcher().Search("n s")
	assert.Equal(t, []string{"John Smith", "Jon Smyth"}, names(got))
}

func TestSearchNoMatch(t *testing.T) {
	assert.Empty(t, testMatcher().Search("zzzz"))
}

func TestSearchEmptyQuery(t *testing.T) {
	assert.Empty(t, testMatcher().Search("   "))
}

func TestSearchIsDeterministic(t *testing.T) {
	m := testMatcher()
	first := names(m.Search("jon smith"))
	for i := 0; i < 5; i++ {
		require.Equal(t, first, names(m.Search("jon smith")))
	}
}

func TestApproximateScoreThreshold(t *testing.T) {
	score, ok := approximateScore("jon smith", "john smith")
	require.True(t, ok)
	assert.InDelta(t, 0.1, score, 1e-9)

	_, ok = approximateScore("zzzz", "john smith")
	assert.False(t, ok)
}
