package pipeline

import (
	"encoding/json"
	"regexp"
	"strings"
	"time"

	"flightclaim/internal"
	"flightclaim/internal/refdata"
)

// Schema.org FlightReservation as embedded by Lufthansa, Air France, BA
// and other senders that mark up their confirmations.
type ldReservation struct {
	Type              string `json:"@type"`
	ReservationNumber string `json:"reservationNumber"`
	ReservationStatus string `json:"reservationStatus"`
	UnderName         struct {
		Name string `json:"name"`
	} `json:"underName"`
	ReservationFor struct {
		FlightNumber string `json:"flightNumber"`
		Airline      struct {
			IataCode string `json:"iataCode"`
			Name     string `json:"name"`
		} `json:"airline"`
		DepartureAirport struct {
			IataCode string `json:"iataCode"`
		} `json:"departureAirport"`
		ArrivalAirport struct {
			IataCode string `json:"iataCode"`
		} `json:"arrivalAirport"`
		DepartureTime string `json:"departureTime"`
	} `json:"reservationFor"`
}

var reJSONLD = regexp.MustCompile(`(?is)<script[^>]*type\s*=\s*["']application/ld\+json["'][^>]*>(.*?)</script>`)

// ExtractStructured scans HTML for JSON-LD FlightReservation blocks and
// returns one confidence-100 record per reservation. A block that fails to
// parse is skipped; the remaining blocks still count.
func ExtractStructured(html string, tables *refdata.Tables) []internal.FlightRecord {
	out := []internal.FlightRecord{}
	for _, m := range reJSONLD.FindAllStringSubmatch(html, -1) {
		for _, res := range decodeReservations([]byte(strings.TrimSpace(m[1]))) {
			if rec, ok := reservationToRecord(res, tables); ok {
				out = append(out, rec)
			}
		}
	}
	return out
}

// decodeReservations tolerates both a single object and a top-level array.
func decodeReservations(blob []byte) []ldReservation {
	var one ldReservation
	if err := json.Unmarshal(blob, &one); err == nil && one.Type != "" {
		return []ldReservation{one}
	}
	var many []ldReservation
	if err := json.Unmarshal(blob, &many); err == nil {
		return many
	}
	return nil
}

func reservationToRecord(res ldReservation, tables *refdata.Tables) (internal.FlightRecord, bool) {
	if res.Type != "FlightReservation" {
		return internal.FlightRecord{}, false
	}
	flight := res.ReservationFor
	if flight.FlightNumber == "" || flight.Airline.IataCode == "" {
		return internal.FlightRecord{}, false
	}

	airline, _ := tables.CanonicalAirline(flight.Airline.IataCode)
	bookingRef := res.ReservationNumber
	if bookingRef == "" {
		bookingRef = internal.BookingRefAbsent
	}

	return internal.FlightRecord{
		FlightNumber:  airline + " " + flight.FlightNumber,
		Airline:       airline,
		From:          strings.ToUpper(flight.DepartureAirport.IataCode),
		To:            strings.ToUpper(flight.ArrivalAirport.IataCode),
		DepartureDate: isoDate(flight.DepartureTime),
		BookingRef:    bookingRef,
		PassengerName: res.UnderName.Name,
		Confidence:    100,
		Source:        internal.SourceStructured,
	}, true
}

func isoDate(value string) string {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Format("2006-01-02")
		}
	}
	return ""
}
