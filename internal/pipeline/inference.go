package pipeline

import (
	"flightclaim/internal"
	"flightclaim/internal/util"
)

// InferReturnFlights completes routes for round-trip bookings. It only
// ever rewrites route endpoints on records that already exist, using
// values extracted elsewhere in the same booking; it never invents a
// flight. Eligible groups share a real booking reference and contain
// exactly two records.
func InferReturnFlights(records []internal.FlightRecord) []internal.FlightRecord {
	groups := map[string][]int{}
	for i, rec := range records {
		if rec.HasBookingRef() {
			groups[rec.BookingRef] = append(groups[rec.BookingRef], i)
		}
	}
	for _, idx := range groups {
		if len(idx) != 2 {
			continue
		}
		inferPair(records, idx[0], idx[1])
	}
	return records
}

func inferPair(records []internal.FlightRecord, i, j int) {
	a, b := &records[i], &records[j]

	// One leg has a full route, the other only a destination matching the
	// full leg's origin: the partial leg is the return.
	if completeRoute(*a) && destinationOnly(*b) && sameEndpoint(b.To, a.From) {
		b.From, b.To = a.To, a.From
		return
	}
	if completeRoute(*b) && destinationOnly(*a) && sameEndpoint(a.To, b.From) {
		a.From, a.To = b.To, b.From
		return
	}

	// Both legs carry the identical route but depart on different days: a
	// copied outbound block. The later departure is the return leg.
	if completeRoute(*a) && completeRoute(*b) &&
		sameEndpoint(a.From, b.From) && sameEndpoint(a.To, b.To) &&
		a.DepartureDate != "" && b.DepartureDate != "" && a.DepartureDate != b.DepartureDate {
		later := b
		if a.DepartureDate > b.DepartureDate {
			later = a
		}
		later.From, later.To = later.To, later.From
	}
}

func completeRoute(r internal.FlightRecord) bool {
	return r.From != "" && r.To != ""
}

func destinationOnly(r internal.FlightRecord) bool {
	return r.From == "" && r.To != ""
}

func sameEndpoint(a, b string) bool {
	return a != "" && util.FoldKey(a) == util.FoldKey(b)
}
