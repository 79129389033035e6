package pipeline

import (
	"flightclaim/internal"
	"flightclaim/internal/config"
)

// Scorer converts an associated candidate to an additive confidence
// breakdown. Weights come from config so deployments can retune without a
// rebuild.
type Scorer struct {
	flight      int
	bookingRef  int
	airport     int
	cityOnly    int
	date        int
	passenger   int
	knownSender int
}

func NewScorer(cfg config.Config) Scorer {
	return Scorer{
		flight:      cfg.WeightFlight,
		bookingRef:  cfg.WeightBookingRef,
		airport:     cfg.WeightAirport,
		cityOnly:    cfg.WeightCityOnly,
		date:        cfg.WeightDate,
		passenger:   cfg.WeightPassenger,
		knownSender: cfg.WeightKnownSender,
	}
}

func (s Scorer) Score(c internal.FlightCandidate) internal.ConfidenceBreakdown {
	b := internal.ConfidenceBreakdown{FlightNumber: s.flight}
	if c.BookingRef != "" {
		b.BookingRef = s.bookingRef
	}
	if c.Route != nil {
		b.DepartureAirport = s.endpointWeight(c.Route.From, c.Route.FromValid)
		b.ArrivalAirport = s.endpointWeight(c.Route.To, c.Route.ToValid)
	}
	if c.Date != nil {
		b.Date = s.date
	}
	if c.Passenger != "" {
		b.PassengerName = s.passenger
	}
	if c.KnownSender {
		b.KnownSenderDomain = s.knownSender
	}
	return b
}

// An endpoint validated against the airport table earns the full airport
// weight; one matched only as a curated city name earns the reduced one.
func (s Scorer) endpointWeight(value string, valid bool) int {
	if value == "" {
		return 0
	}
	if valid {
		return s.airport
	}
	return s.cityOnly
}
