package safety

import "strings"

// emergencyKeywords flag queries describing acute medical emergencies.
// Substring matching is intentionally blunt; the informational-question
// override lives with the caller, not here.
var emergencyKeywords = []string{
	"heavy bleeding",
	"severe pain",
	"unconscious",
	"seizure",
	"cannot breathe",
	"emergency",
	"miscarriage",
}

// IsEmergency reports whether the query contains any emergency keyword,
// case-insensitively. Pure and deterministic.
func IsEmergency(query string) bool {
	q := strings.ToLower(query)
	for _, k := range emergencyKeywords {
		if strings.Contains(q, k) {
			return true
		}
	}
	return false
}
