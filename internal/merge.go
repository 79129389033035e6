package internal

import "strings"

// Field values that carry no information for merge purposes.
func IsPlaceholder(value string) bool {
	switch strings.TrimSpace(value) {
	case "", BookingRefAbsent:
		return true
	}
	return strings.EqualFold(strings.TrimSpace(value), "Check email")
}

// ShouldReplace decides whether candidate displaces existing for the same
// dedup key. Strictly higher confidence always wins; on a tie the more
// complete record wins; otherwise existing stays.
func ShouldReplace(existing, candidate FlightRecord) bool {
	if candidate.Confidence > existing.Confidence {
		return true
	}
	if candidate.Confidence < existing.Confidence {
		return false
	}
	return completeness(candidate) > completeness(existing)
}

func completeness(r FlightRecord) int {
	n := 0
	for _, v := range []string{r.From, r.To, r.DepartureDate, r.BookingRef, r.PassengerName} {
		if !IsPlaceholder(v) {
			n++
		}
	}
	return n
}
