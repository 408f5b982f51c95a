package directory

import (
	"fmt"
	"strings"

	"github.com/spec-kit/office-hours-service/internal/domain"
)

// Index is the read-only in-memory directory. It is built exactly once at
// startup and never mutated, so it is safe for unlimited concurrent readers.
type Index struct {
	people      []domain.Person
	departments []string
}

// NewIndex validates the loaded records and precomputes the lowercased,
// deduplicated department list used for intent detection. Department
// detection lowercases unconditionally, so a record without a department is
// rejected here rather than discovered mid-request.
func NewIndex(people []domain.Person) (*Index, error) {
	seen := make(map[string]struct{})
	var departments []string
	for i, p := range people {
		if strings.TrimSpace(p.Name) == "" {
			return nil, fmt.Errorf("directory entry %d: missing name", i)
		}
		if strings.TrimSpace(p.Department) == "" {
			return nil, fmt.Errorf("directory entry %q: missing department", p.Name)
		}
		dept := strings.ToLower(p.Department)
		if _, ok := seen[dept]; !ok {
			seen[dept] = struct{}{}
			departments = append(departments, dept)
		}
	}
	return &Index{people: people, departments: departments}, nil
}

// People returns all records in load order.
func (idx *Index) People() []domain.Person {
	return idx.people
}

// Len reports the number of directory records.
func (idx *Index) Len() int {
	return len(idx.people)
}

// Departments returns the lowercased department list in first-seen order.
func (idx *Index) Departments() []string {
	return idx.departments
}

// FindByDay returns everyone whose office hours include the given lowercase
// day. Day keys are compared case-insensitively and must match exactly, not
// as substrings.
func (idx *Index) FindByDay(day string) []domain.Person {
	people := make([]domain.Person, 0)
	for _, p := range idx.people {
		if _, ok := p.HoursOn(day); ok {
			people = append(people, p)
		}
	}
	return people
}

// FindByDepartment returns everyone whose lowercased department contains the
// given lowercase fragment, so "eng" matches "engineering".
func (idx *Index) FindByDepartment(fragment string) []domain.Person {
	people := make([]domain.Person, 0)
	for _, p := range idx.people {
		if strings.Contains(strings.ToLower(p.Department), fragment) {
			people = append(people, p)
		}
	}
	return people
}

// DetectDepartment returns the first known department (in list order) that
// appears as a substring of the normalized query.
func (idx *Index) DetectDepartment(query string) (string, bool) {
	for _, dept := range idx.departments {
		if strings.Contains(query, dept) {
			return dept, true
		}
	}
	return "", false
}

// ScanByName returns everyone whose lowercased full name contains the given
// lowercase fragment. This direct scan runs before the fuzzy matcher on the
// name-intent path.
func (idx *Index) ScanByName(fragment string) []domain.Person {
	people := make([]domain.Person, 0)
	for _, p := range idx.people {
		if strings.Contains(strings.ToLower(p.Name), fragment) {
			people = append(people, p)
		}
	}
	return people
}
