package pipeline

import (
	"strings"

	"flightclaim/internal"
)

// Subject/body keywords that mark an email as plausibly flight related.
// The gate is deliberately loose; false positives just cost one engine
// run, false negatives lose a booking.
var flightKeywords = []string{
	"flight", "itinerary", "boarding", "e-ticket", "eticket",
	"booking confirmation", "reservation", "departure",
	"бронирование", "рейс", "билет", "посадочный",
	"vuelo", "volo", "flug", "uçuş",
}

// LooksLikeFlightEmail is the cheap pre-extraction gate: known sender,
// structured markup, or a keyword hit.
func (e *Engine) LooksLikeFlightEmail(email internal.RawEmail) bool {
	if e.tables.IsKnownSender(email.From) {
		return true
	}
	if reJSONLD.MatchString(email.HTMLBody) {
		return true
	}
	hay := strings.ToLower(email.Subject + " " + email.PlainBody + " " + email.HTMLBody)
	for _, kw := range flightKeywords {
		if strings.Contains(hay, kw) {
			return true
		}
	}
	return false
}
