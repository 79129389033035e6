package pipeline

import (
	"testing"

	"flightclaim/internal"
	"flightclaim/internal/config"
)

func testConfig() config.Config {
	return config.Config{
		ContextWindow:     800,
		AcceptThreshold:   30,
		WeightFlight:      15,
		WeightBookingRef:  20,
		WeightAirport:     10,
		WeightCityOnly:    5,
		WeightDate:        15,
		WeightPassenger:   5,
		WeightKnownSender: 10,
		ProcessWorkers:    1,
	}
}

func TestScoreFullCandidate(t *testing.T) {
	s := NewScorer(testConfig())

	b := s.Score(internal.FlightCandidate{
		Flight:      internal.Fact{Category: internal.FactFlightNumber, Value: "U2 8291"},
		Route:       &internal.Fact{From: "LGW", To: "BCN", FromValid: true, ToValid: true},
		Date:        &internal.Fact{Value: "2026-10-15"},
		BookingRef:  "K8QJ2Z",
		Passenger:   "John Smith",
		KnownSender: true,
	})
	if b.Total() != 85 {
		t.Fatalf("total=%d breakdown=%+v", b.Total(), b)
	}
	if b.DepartureAirport != 10 || b.ArrivalAirport != 10 {
		t.Fatalf("airport weights wrong: %+v", b)
	}
}

func TestScoreCityOnlyEndpoints(t *testing.T) {
	s := NewScorer(testConfig())

	b := s.Score(internal.FlightCandidate{
		Flight: internal.Fact{Value: "PC 397"},
		Route:  &internal.Fact{From: "Milan", To: "Istanbul"},
	})
	if b.DepartureAirport != 5 || b.ArrivalAirport != 5 {
		t.Fatalf("city-only weights wrong: %+v", b)
	}
	if b.Total() != 25 {
		t.Fatalf("total=%d", b.Total())
	}
}

func TestScoreDestinationOnlyRoute(t *testing.T) {
	s := NewScorer(testConfig())

	b := s.Score(internal.FlightCandidate{
		Flight: internal.Fact{Value: "PC 398"},
		Route:  &internal.Fact{To: "IST", ToValid: true},
	})
	if b.DepartureAirport != 0 || b.ArrivalAirport != 10 {
		t.Fatalf("breakdown=%+v", b)
	}
}

func TestScoreBareFlightNumber(t *testing.T) {
	s := NewScorer(testConfig())

	b := s.Score(internal.FlightCandidate{Flight: internal.Fact{Value: "FR 7824"}})
	if b.Total() != 15 {
		t.Fatalf("total=%d", b.Total())
	}
}
