package pipeline

import (
	"sort"

	"flightclaim/internal"
)

// associate builds one FlightCandidate per flight-number fact by picking
// the route and date nearest to it. Route rules are re-run inside a
// symmetric context window around the flight number so a vendor's
// "From:/To:" pair local to this flight's block beats a same-email route
// belonging to a different flight; when the window has nothing, the
// positionally nearest full-email fact is used instead.
func (e *Engine) associate(doc NormalizedText, facts []internal.Fact, email internal.RawEmail) []internal.FlightCandidate {
	var flights, routes, dates []internal.Fact
	bookingRef, passenger := "", ""
	for _, f := range facts {
		switch f.Category {
		case internal.FactFlightNumber:
			flights = append(flights, f)
		case internal.FactRoute:
			routes = append(routes, f)
		case internal.FactDate:
			dates = append(dates, f)
		case internal.FactBookingRef:
			bookingRef = f.Value
		case internal.FactPassengerName:
			passenger = f.Value
		}
	}
	sortByPosition(routes)
	sortByPosition(dates)

	knownSender := e.tables.IsKnownSender(email.From)

	out := make([]internal.FlightCandidate, 0, len(flights))
	for _, flight := range flights {
		route := e.windowRoute(doc.Text, flight.Position)
		if route == nil {
			route = nearestFact(routes, flight.Position)
		}
		out = append(out, internal.FlightCandidate{
			Flight:      flight,
			Route:       route,
			Date:        nearestFact(dates, flight.Position),
			BookingRef:  bookingRef,
			Passenger:   passenger,
			KnownSender: knownSender,
		})
	}
	return out
}

func (e *Engine) windowRoute(text string, pos int) *internal.Fact {
	start := pos - e.cfg.ContextWindow
	if start < 0 {
		start = 0
	}
	end := pos + e.cfg.ContextWindow
	if end > len(text) {
		end = len(text)
	}
	local := e.rules.routeFacts(text[start:end], start)
	return nearestFact(local, pos)
}

// nearestFact picks the fact with the smallest absolute offset distance.
// Facts must be sorted by position; on equal distance the earlier fact
// wins because only a strictly smaller distance replaces the pick.
func nearestFact(facts []internal.Fact, pos int) *internal.Fact {
	var best *internal.Fact
	bestDist := -1
	for i := range facts {
		dist := facts[i].Position - pos
		if dist < 0 {
			dist = -dist
		}
		if best == nil || dist < bestDist {
			best = &facts[i]
			bestDist = dist
		}
	}
	if best == nil {
		return nil
	}
	picked := *best
	return &picked
}

func sortByPosition(facts []internal.Fact) {
	sort.SliceStable(facts, func(i, j int) bool { return facts[i].Position < facts[j].Position })
}
