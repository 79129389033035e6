package pipeline

import (
	"testing"

	"flightclaim/internal"
	"flightclaim/internal/refdata"
)

const reservationHTML = `<html><body>
<script type="application/ld+json">
{
  "@type": "FlightReservation",
  "reservationNumber": "RXJ9JJ",
  "reservationStatus": "http://schema.org/Confirmed",
  "underName": {"@type": "Person", "name": "Maria Rossi"},
  "reservationFor": {
    "@type": "Flight",
    "flightNumber": "1826",
    "airline": {"@type": "Airline", "iataCode": "AZ", "name": "ITA Airways"},
    "departureAirport": {"@type": "Airport", "iataCode": "FCO"},
    "arrivalAirport": {"@type": "Airport", "iataCode": "LIN"},
    "departureTime": "2026-07-03T07:30:00+02:00"
  }
}
</script>
<p>Thank you for flying with us.</p>
</body></html>`

func TestExtractStructured(t *testing.T) {
	records := ExtractStructured(reservationHTML, refdata.Default())
	if len(records) != 1 {
		t.Fatalf("records=%d", len(records))
	}

	rec := records[0]
	if rec.FlightNumber != "AZ 1826" || rec.Airline != "AZ" {
		t.Fatalf("rec=%+v", rec)
	}
	if rec.From != "FCO" || rec.To != "LIN" {
		t.Fatalf("route=%s->%s", rec.From, rec.To)
	}
	if rec.DepartureDate != "2026-07-03" {
		t.Fatalf("date=%q", rec.DepartureDate)
	}
	if rec.BookingRef != "RXJ9JJ" || rec.PassengerName != "Maria Rossi" {
		t.Fatalf("rec=%+v", rec)
	}
	if rec.Confidence != 100 || rec.Source != internal.SourceStructured {
		t.Fatalf("confidence=%d source=%s", rec.Confidence, rec.Source)
	}
}

func TestExtractStructuredArray(t *testing.T) {
	html := `<script type="application/ld+json">[
{"@type":"FlightReservation","reservationFor":{"flightNumber":"397","airline":{"iataCode":"PC"},"departureAirport":{"iataCode":"SAW"},"arrivalAirport":{"iataCode":"LGW"},"departureTime":"2026-05-01T10:00:00Z"}},
{"@type":"FlightReservation","reservationFor":{"flightNumber":"398","airline":{"iataCode":"PC"},"departureAirport":{"iataCode":"LGW"},"arrivalAirport":{"iataCode":"SAW"},"departureTime":"2026-05-09T14:00:00Z"}}
]</script>`

	records := ExtractStructured(html, refdata.Default())
	if len(records) != 2 {
		t.Fatalf("records=%d", len(records))
	}
	if records[0].FlightNumber != "PC 397" || records[1].FlightNumber != "PC 398" {
		t.Fatalf("records=%+v", records)
	}
	// No reservationNumber in the markup: sentinel, not empty.
	if records[0].BookingRef != internal.BookingRefAbsent {
		t.Fatalf("bookingRef=%q", records[0].BookingRef)
	}
}

func TestExtractStructuredSkipsBadBlocks(t *testing.T) {
	html := `<script type="application/ld+json">{not json at all</script>` +
		`<script type="application/ld+json">{"@type":"LodgingReservation","reservationNumber":"HOTEL1"}</script>`

	if records := ExtractStructured(html, refdata.Default()); len(records) != 0 {
		t.Fatalf("records=%+v", records)
	}
}
