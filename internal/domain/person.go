package domain

import "strings"

// Person models one directory entry. Records are loaded once at startup and
// never mutated afterward.
type Person struct {
	Name        string            `json:"name"`
	Department  string            `json:"department"`
	Email       string            `json:"email"`
	Office      string            `json:"office"`
	OfficeHours map[string]string `json:"office_hours"`
}

// HoursOn returns the stored hours for the given day, matching the map key
// case-insensitively. ok is false when the person has no hours that day.
func (p *Person) HoursOn(day string) (hours string, ok bool) {
	for k, v := range p.OfficeHours {
		if strings.EqualFold(k, day) {
			return v, true
		}
	}
	return "", false
}
