package dto

import (
	"github.com/spec-kit/office-hours-service/internal/domain"
	"github.com/spec-kit/office-hours-service/internal/resolver"
)

// Canned quick-reply suggestions, returned verbatim per response type. The
// chat client renders these as buttons for the next turn.
var (
	daySuggestions = []string{
		"Ask about a specific professor",
		"Ask about another day",
		"Ask about a department",
	}
	departmentSuggestions = []string{
		"Ask about a specific professor",
		"Ask about a day",
		"Ask about another department",
	}
	personSuggestions = []string{
		"Ask about their office hours on a specific day",
		"Ask about another professor",
		"Ask about their department",
	}
	personDaySuggestions = []string{
		"Ask about another day",
		"Ask about another professor",
	}
)

// DayResponse answers "who is in on <day>".
type DayResponse struct {
	Type        string          `json:"type"`
	Day         string          `json:"day"`
	People      []domain.Person `json:"people"`
	Suggestions []string        `json:"suggestions"`
}

// DepartmentResponse answers "who is in <department>".
type DepartmentResponse struct {
	Type        string          `json:"type"`
	Department  string          `json:"department"`
	People      []domain.Person `json:"people"`
	Suggestions []string        `json:"suggestions"`
}

// PersonResponse answers a name query with a single match. The client echoes
// this payload back as context for day follow-ups.
type PersonResponse struct {
	Type        string         `json:"type"`
	Person      *domain.Person `json:"person"`
	Suggestions []string       `json:"suggestions"`
}

// PersonDayResponse answers a day follow-up about the context person. Hours
// is an explicit null when the person has no hours that day.
type PersonDayResponse struct {
	Type        string         `json:"type"`
	Person      *domain.Person `json:"person"`
	Day         string         `json:"day"`
	Hours       *string        `json:"hours"`
	Suggestions []string       `json:"suggestions"`
}

// MultipleResponse disambiguates a name query with several candidates; the
// suggestions list each candidate's name verbatim.
type MultipleResponse struct {
	Type        string          `json:"type"`
	People      []domain.Person `json:"people"`
	Suggestions []string        `json:"suggestions"`
}

// FromResult maps a resolver result onto its wire shape.
func FromResult(res *resolver.Result) interface{} {
	switch res.Type {
	case resolver.ResultDay:
		return DayResponse{Type: string(res.Type), Day: res.Day, People: res.People, Suggestions: daySuggestions}
	case resolver.ResultDepartment:
		return DepartmentResponse{Type: string(res.Type), Department: res.Department, People: res.People, Suggestions: departmentSuggestions}
	case resolver.ResultPerson:
		return PersonResponse{Type: string(res.Type), Person: res.Person, Suggestions: personSuggestions}
	case resolver.ResultPersonDay:
		return PersonDayResponse{Type: string(res.Type), Person: res.Person, Day: res.Day, Hours: res.Hours, Suggestions: personDaySuggestions}
	case resolver.ResultMultiple:
		names := make([]string, 0, len(res.People))
		for _, p := range res.People {
			names = append(names, p.Name)
		}
		return MultipleResponse{Type: string(res.Type), People: res.People, Suggestions: names}
	default:
		return nil
	}
}
