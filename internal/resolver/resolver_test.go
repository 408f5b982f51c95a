package resolver

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/office-hours-service/internal/directory"
	"github.com/spec-kit/office-hours-service/internal/domain"
	"github.com/spec-kit/office-hours-service/internal/search"
	"github.com/spec-kit/office-hours-service/pkg/util"
)

func testResolver(t *testing.T) *Resolver {
	t.Helper()
	people := []domain.Person{
		{
			Name:        "Ahmed Ali",
			Department:  "Computer Science",
			Email:       "ahmed@u.edu",
			OfficeHours: map[string]string{"Monday": "10:00-12:00"},
		},
		{
			Name:        "Ali Hassan",
			Department:  "Physics",
			Email:       "ali.h@u.edu",
			OfficeHours: map[string]string{"Tuesday": "09:00-11:00"},
		},
		{
			Name:        "Ali Hassan",
			Department:  "Chemistry",
			Email:       "a.hassan@u.edu",
			OfficeHours: map[string]string{"Wednesday": "13:00-15:00"},
		},
		{
			Name:        "John Smith",
			Department:  "Mathematics",
			OfficeHours: map[string]string{"Monday": "11:00-13:00"},
		},
		{
			Name:        "Mona Khaled",
			Department:  "Engineering",
			OfficeHours: map[string]string{"Sunday": "12:00-14:00"},
		},
	}
	idx, err := directory.NewIndex(people)
	require.NoError(t, err)
	return New(idx, search.NewMatcher(idx.People()))
}

func personContext(t *testing.T, p domain.Person) string {
	t.Helper()
	raw, err := json.Marshal(domain.PersonContext{Type: domain.ContextTypePerson, Person: &p})
	require.NoError(t, err)
	return string(raw)
}

func ahmed() domain.Person {
	return domain.Person{
		Name:        "Ahmed Ali",
		Department:  "Computer Science",
		OfficeHours: map[string]string{"Monday": "10:00-12:00"},
	}
}

func TestResolveDayQuery(t *testing.T) {
	res, err := testResolver(t).Resolve("who is in on monday?", "")
	require.NoError(t, err)

	assert.Equal(t, ResultDay, res.Type)
	assert.Equal(t, "monday", res.Day)
	require.Len(t, res.People, 2)
	assert.Equal(t, "Ahmed Ali", res.People[0].Name)
	assert.Equal(t, "John Smith", res.People[1].Name)
}

func TestResolveDepartmentQuery(t *testing.T) {
	res, err := testResolver(t).Resolve("who is in computer science", "")
	require.NoError(t, err)

	assert.Equal(t, ResultDepartment, res.Type)
	assert.Equal(t, "computer science", res.Department)
	require.Len(t, res.People, 1)
	assert.Equal(t, "Ahmed Ali", res.People[0].Name)
}

func TestResolveFullNameRoundTrip(t *testing.T) {
	res, err := testResolver(t).Resolve("ahmed ali", "")
	require.NoError(t, err)

	assert.Equal(t, ResultPerson, res.Type)
	assert.Equal(t, "Ahmed Ali", res.Person.Name)
}

func TestResolveStripsHonorific(t *testing.T) {
	for _, query := range []string{"dr ahmed", "dr. ahmed", "professor ahmed"} {
		res, err := testResolver(t).Resolve(query, "")
		require.NoError(t, err, query)
		assert.Equal(t, ResultPerson, res.Type, query)
		assert.Equal(t, "Ahmed Ali", res.Person.Name, query)
	}
}

func TestResolveFallsBackToFuzzyMatch(t *testing.T) {
	// "ahmad" is not a substring of any stored name, so the direct scan
	// misses and the matcher resolves the typo.
	res, err := testResolver(t).Resolve("ahmad", "")
	require.NoError(t, err)

	assert.Equal(t, ResultPerson, res.Type)
	assert.Equal(t, "Ahmed Ali", res.Person.Name)
}

func TestResolveAmbiguousName(t *testing.T) {
	res, err := testResolver(t).Resolve("ali hassan", "")
	require.NoError(t, err)

	assert.Equal(t, ResultMultiple, res.Type)
	require.Len(t, res.People, 2)
	assert.Equal(t, "Ali Hassan", res.People[0].Name)
	assert.Equal(t, "Ali Hassan", res.People[1].Name)
	assert.Equal(t, 2, res.Matches())
}

func TestResolveDayWinsOverNameWithoutContext(t *testing.T) {
	// Inherited precedence: a day in the query returns the day listing and
	// ignores any name next to it.
	res, err := testResolver(t).Resolve("monday smith", "")
	require.NoError(t, err)

	assert.Equal(t, ResultDay, res.Type)
	assert.Equal(t, "monday", res.Day)
}

func TestResolvePersonDayFollowUp(t *testing.T) {
	res, err := testResolver(t).Resolve("what about tuesday", personContext(t, ahmed()))
	require.NoError(t, err)

	assert.Equal(t, ResultPersonDay, res.Type)
	assert.Equal(t, "tuesday", res.Day)
	assert.Equal(t, "Ahmed Ali", res.Person.Name)
	assert.Nil(t, res.Hours)
}

func TestResolvePersonDayFollowUpWithHours(t *testing.T) {
	res, err := testResolver(t).Resolve("monday", personContext(t, ahmed()))
	require.NoError(t, err)

	assert.Equal(t, ResultPersonDay, res.Type)
	require.NotNil(t, res.Hours)
	assert.Equal(t, "10:00-12:00", *res.Hours)
}

func TestResolveIgnoresMalformedContext(t *testing.T) {
	res, err := testResolver(t).Resolve("monday", "{not json")
	require.NoError(t, err)

	assert.Equal(t, ResultDay, res.Type)
}

func TestResolveIgnoresNonPersonContext(t *testing.T) {
	res, err := testResolver(t).Resolve("monday", `{"type":"day","day":"tuesday"}`)
	require.NoError(t, err)

	assert.Equal(t, ResultDay, res.Type)
}

func TestResolveEmptyQuery(t *testing.T) {
	_, err := testResolver(t).Resolve("   ", "")
	require.Error(t, err)

	domainErr := util.ToDomainError(err)
	assert.Equal(t, "INVALID_INPUT", domainErr.Code)
	assert.Equal(t, 400, domainErr.HTTPStatus)
}

func TestResolveNotUnderstood(t *testing.T) {
	_, err := testResolver(t).Resolve("xyzzy", "")
	require.Error(t, err)

	domainErr := util.ToDomainError(err)
	assert.Equal(t, "NOT_FOUND", domainErr.Code)
	assert.Equal(t, 404, domainErr.HTTPStatus)
	assert.Equal(t, "Sorry, I could not understand your question.", domainErr.Message)
}
