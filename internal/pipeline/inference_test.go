package pipeline

import (
	"testing"

	"flightclaim/internal"
)

func TestInferReturnFromDestinationOnly(t *testing.T) {
	records := []internal.FlightRecord{
		{FlightNumber: "PC 397", From: "IST", To: "LGW", DepartureDate: "2026-05-01", BookingRef: "T8K2VQ"},
		{FlightNumber: "PC 398", From: "", To: "IST", DepartureDate: "2026-05-09", BookingRef: "T8K2VQ"},
	}
	InferReturnFlights(records)

	if records[1].From != "LGW" || records[1].To != "IST" {
		t.Fatalf("return leg=%+v", records[1])
	}
	// Outbound leg untouched.
	if records[0].From != "IST" || records[0].To != "LGW" {
		t.Fatalf("outbound leg=%+v", records[0])
	}
}

func TestInferReturnReversesCopiedRoute(t *testing.T) {
	records := []internal.FlightRecord{
		{FlightNumber: "FR 1001", From: "BER", To: "MAD", DepartureDate: "2026-03-10", BookingRef: "ABC123"},
		{FlightNumber: "FR 1002", From: "BER", To: "MAD", DepartureDate: "2026-03-17", BookingRef: "ABC123"},
	}
	InferReturnFlights(records)

	if records[0].From != "BER" || records[0].To != "MAD" {
		t.Fatalf("earlier leg=%+v", records[0])
	}
	if records[1].From != "MAD" || records[1].To != "BER" {
		t.Fatalf("later leg=%+v", records[1])
	}
}

func TestInferReturnIgnoresUnrelatedRecords(t *testing.T) {
	records := []internal.FlightRecord{
		// No booking reference: never grouped.
		{FlightNumber: "U2 8291", From: "", To: "LGW", DepartureDate: "2026-10-15", BookingRef: "-"},
		{FlightNumber: "U2 8292", From: "LGW", To: "BCN", DepartureDate: "2026-10-22", BookingRef: "-"},
		// Group of three: ambiguous, untouched.
		{FlightNumber: "W6 2301", From: "BUD", To: "LTN", DepartureDate: "2026-06-01", BookingRef: "GRP999"},
		{FlightNumber: "W6 2302", From: "", To: "BUD", DepartureDate: "2026-06-08", BookingRef: "GRP999"},
		{FlightNumber: "W6 2303", From: "", To: "BUD", DepartureDate: "2026-06-15", BookingRef: "GRP999"},
	}
	before := make([]internal.FlightRecord, len(records))
	copy(before, records)

	InferReturnFlights(records)

	for i := range records {
		if records[i] != before[i] {
			t.Fatalf("record %d changed: %+v", i, records[i])
		}
	}
}

func TestInferReturnRequiresMatchingOrigin(t *testing.T) {
	records := []internal.FlightRecord{
		{FlightNumber: "PC 397", From: "IST", To: "LGW", DepartureDate: "2026-05-01", BookingRef: "T8K2VQ"},
		// Destination does not match the outbound origin.
		{FlightNumber: "PC 398", From: "", To: "SAW", DepartureDate: "2026-05-09", BookingRef: "T8K2VQ"},
	}
	InferReturnFlights(records)

	if records[1].From != "" || records[1].To != "SAW" {
		t.Fatalf("record fabricated: %+v", records[1])
	}
}
