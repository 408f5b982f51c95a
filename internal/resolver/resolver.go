package resolver

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/spec-kit/office-hours-service/internal/directory"
	"github.com/spec-kit/office-hours-service/internal/domain"
	"github.com/spec-kit/office-hours-service/internal/search"
	"github.com/spec-kit/office-hours-service/pkg/util"
)

// ResultType discriminates resolved query answers.
type ResultType string

const (
	ResultDay        ResultType = "day"
	ResultDepartment ResultType = "department"
	ResultPerson     ResultType = "person"
	ResultPersonDay  ResultType = "person-day"
	ResultMultiple   ResultType = "multiple"
)

// Result is one resolved answer. Only the fields relevant to Type are set;
// Hours is nil for a person-day answer when the person has no hours that day.
type Result struct {
	Type       ResultType
	Day        string
	Department string
	Person     *domain.Person
	People     []domain.Person
	Hours      *string
}

// notUnderstood is returned when every resolution stage comes up empty.
const notUnderstood = "Sorry, I could not understand your question."

// honorificPattern strips a leading title from name queries so "dr. ahmed"
// and "ahmed" resolve identically.
var honorificPattern = regexp.MustCompile(`^(?:professor|dr|mr|ms|mrs|eng)\.?\s+`)

// Resolver classifies free-text queries and answers them from the directory.
// It holds no per-request state; calls are pure and safe to run concurrently.
type Resolver struct {
	index   *directory.Index
	matcher *search.Matcher
}

// New constructs a resolver over the given index and matcher.
func New(index *directory.Index, matcher *search.Matcher) *Resolver {
	return &Resolver{index: index, matcher: matcher}
}

// Resolve classifies rawQuery and produces one answer. rawContext is the
// previous turn's response echoed by the client; a malformed or non-person
// context is treated as absent, never as an error.
//
// Precedence is day > department > name, with one exception: a detected day
// combined with a valid person context answers that person's hours for the
// day instead of listing everyone available. Without a context, a day in the
// query wins outright and any name tokens next to it are ignored.
func (r *Resolver) Resolve(rawQuery, rawContext string) (*Result, error) {
	query := strings.ToLower(strings.TrimSpace(rawQuery))
	if query == "" {
		return nil, util.NewInvalidInput("Missing q parameter")
	}
	ctx := parsePersonContext(rawContext)

	if day := domain.DetectDay(query); day != "" {
		if ctx != nil {
			return personDayResult(ctx.Person, day), nil
		}
		return &Result{Type: ResultDay, Day: day, People: r.index.FindByDay(day)}, nil
	}

	if dept, ok := r.index.DetectDepartment(query); ok {
		return &Result{Type: ResultDepartment, Department: dept, People: r.index.FindByDepartment(dept)}, nil
	}

	name := stripHonorific(query)
	candidates := r.index.ScanByName(name)
	if len(candidates) == 0 {
		candidates = r.matcher.Search(name)
	}
	switch len(candidates) {
	case 0:
		return nil, util.NewNotFound(notUnderstood)
	case 1:
		return &Result{Type: ResultPerson, Person: &candidates[0]}, nil
	default:
		return &Result{Type: ResultMultiple, People: candidates}, nil
	}
}

// Matches reports how many people the result covers, for analytics.
func (res *Result) Matches() int {
	if res.Person != nil {
		return 1
	}
	return len(res.People)
}

func personDayResult(person *domain.Person, day string) *Result {
	res := &Result{Type: ResultPersonDay, Person: person, Day: day}
	if hours, ok := person.HoursOn(day); ok {
		res.Hours = &hours
	}
	return res
}

func stripHonorific(query string) string {
	return strings.TrimSpace(honorificPattern.ReplaceAllString(query, ""))
}

// parsePersonContext deserializes the client-echoed context. Parse failures
// and non-person shapes degrade silently to "no context".
func parsePersonContext(raw string) *domain.PersonContext {
	if raw == "" {
		return nil
	}
	var ctx domain.PersonContext
	if err := json.Unmarshal([]byte(raw), &ctx); err != nil {
		return nil
	}
	if ctx.Type != domain.ContextTypePerson || ctx.Person == nil {
		return nil
	}
	return &ctx
}
