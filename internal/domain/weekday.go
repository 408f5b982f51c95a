package domain

import "strings"

// Weekdays is the vocabulary for day-intent detection. It is only used as a
// membership test, so the enumeration order carries no week-start meaning;
// it does determine which day wins when a query contains more than one.
var Weekdays = []string{
	"saturday", "sunday", "monday", "tuesday", "wednesday", "thursday", "friday",
}

// DetectDay returns the first weekday name contained in the normalized query,
// or "" when none is present.
func DetectDay(query string) string {
	for _, day := range Weekdays {
		if strings.Contains(query, day) {
			return day
		}
	}
	return ""
}
