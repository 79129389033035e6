package pipeline

import (
	"testing"

	"flightclaim/internal"
	"flightclaim/internal/refdata"
)

func TestBookingRefFact(t *testing.T) {
	rs := newRuleSet(refdata.Default())

	cases := []struct {
		text string
		want string
	}{
		{"Booking reference: K8QJ2Z", "K8QJ2Z"},
		{"PNR: ABC123 enjoy your trip", "ABC123"},
		{"Бронирование: T8K2VQ", "T8K2VQ"},
		{"Use K8QJ2Z at checkout", "K8QJ2Z"},
		{"Flight FR7824 departs soon", ""},
		{"nothing to see here", ""},
	}
	for _, c := range cases {
		fact := rs.bookingRefFact(c.text)
		if c.want == "" {
			if fact != nil {
				t.Fatalf("%q: unexpected ref %q", c.text, fact.Value)
			}
			continue
		}
		if fact == nil || fact.Value != c.want {
			t.Fatalf("%q: got %+v want %q", c.text, fact, c.want)
		}
	}
}

func TestFlightNumberFactsCanonical(t *testing.T) {
	rs := newRuleSet(refdata.Default())

	facts := rs.flightNumberFacts("EZY8291 also shown as U2 8291")
	if len(facts) != 1 {
		t.Fatalf("len=%d", len(facts))
	}
	if facts[0].Value != "U2 8291" || facts[0].Code != "U2" || facts[0].Num != "8291" {
		t.Fatalf("fact=%+v", facts[0])
	}
	if facts[0].RawMatch != "EZY8291" {
		t.Fatalf("rawMatch=%q", facts[0].RawMatch)
	}

	if facts := rs.flightNumberFacts("ZZ 999 is not an airline"); len(facts) != 0 {
		t.Fatalf("unknown airline matched: %+v", facts)
	}
}

func TestRouteFacts(t *testing.T) {
	rs := newRuleSet(refdata.Default())

	facts := rs.routeFacts("your flight BER - MAD is confirmed", 0)
	if len(facts) != 1 || facts[0].From != "BER" || facts[0].To != "MAD" {
		t.Fatalf("facts=%+v", facts)
	}
	if !facts[0].FromValid || !facts[0].ToValid {
		t.Fatal("airport endpoints must validate")
	}

	facts = rs.routeFacts("London Gatwick (LGW) to Barcelona (BCN)", 0)
	if len(facts) != 1 || facts[0].From != "LGW" || facts[0].To != "BCN" {
		t.Fatalf("facts=%+v", facts)
	}

	facts = rs.routeFacts("Откуда: Стамбул (SAW) Куда: Лондон (LGW)", 0)
	if len(facts) != 1 || facts[0].From != "SAW" || facts[0].To != "LGW" {
		t.Fatalf("facts=%+v", facts)
	}
}

func TestRouteFactsDestinationOnly(t *testing.T) {
	rs := newRuleSet(refdata.Default())

	facts := rs.routeFacts("To: Bangkok (BKK)", 0)
	if len(facts) != 1 {
		t.Fatalf("facts=%+v", facts)
	}
	if facts[0].From != "" || facts[0].To != "BKK" || !facts[0].ToValid {
		t.Fatalf("fact=%+v", facts[0])
	}
}

func TestRouteFactsCityNames(t *testing.T) {
	rs := newRuleSet(refdata.Default())

	facts := rs.routeFacts("cheap seats Milan to Istanbul this spring", 0)
	if len(facts) != 1 || facts[0].From != "Milan" || facts[0].To != "Istanbul" {
		t.Fatalf("facts=%+v", facts)
	}
	if facts[0].FromValid || facts[0].ToValid {
		t.Fatal("city endpoints must stay unvalidated")
	}

	// Compound airport name, not a route.
	if facts := rs.routeFacts("Milan - Bergamo Airport shuttle", 0); facts != nil {
		t.Fatalf("false route matched: %+v", facts)
	}
}

func TestDateFacts(t *testing.T) {
	rs := newRuleSet(refdata.Default())

	cases := []struct {
		text string
		want string
	}{
		{"departing 2026-10-15 early", "2026-10-15"},
		{"departing 14.08.2026 early", "2026-08-14"},
		{"departing Thu, 15 Oct 2026 at 07:40", "2026-10-15"},
		{"departing March 7, 2026", "2026-03-07"},
		{"вылет 25 мая 2026 года", "2026-05-25"},
		{"salida 3 de agosto de 2026", "2026-08-03"},
		{"2026年3月5日 出発", "2026-03-05"},
		{"2026년 3월 5일 출발", "2026-03-05"},
	}
	for _, c := range cases {
		facts := rs.dateFacts(c.text, 2026)
		if len(facts) == 0 {
			t.Fatalf("%q: no dates", c.text)
		}
		if facts[0].Value != c.want {
			t.Fatalf("%q: got %q want %q", c.text, facts[0].Value, c.want)
		}
	}
}

func TestDateFactsHeaderYearFallback(t *testing.T) {
	rs := newRuleSet(refdata.Default())

	facts := rs.dateFacts("departing 15 Oct, gate closes 07:10", 2026)
	if len(facts) == 0 || facts[0].Value != "2026-10-15" {
		t.Fatalf("facts=%+v", facts)
	}
}

func TestDateFactsRejectsImplausible(t *testing.T) {
	rs := newRuleSet(refdata.Default())

	if facts := rs.dateFacts("version 99.99.2026 released", 2026); len(facts) != 0 {
		t.Fatalf("implausible date matched: %+v", facts)
	}
	if facts := rs.dateFacts("archive from 12.03.1999", 2026); len(facts) != 0 {
		t.Fatalf("out-of-range year matched: %+v", facts)
	}
}

func TestPassengerFact(t *testing.T) {
	rs := newRuleSet(refdata.Default())

	fact := rs.passengerFact("Dear John Smith, welcome aboard")
	if fact == nil || fact.Value != "John Smith" {
		t.Fatalf("fact=%+v", fact)
	}

	fact = rs.passengerFact("Passenger: IVANOV/PETR MR seat 12A")
	if fact == nil || fact.Value != "IVANOV/PETR MR" {
		t.Fatalf("fact=%+v", fact)
	}

	if fact := rs.passengerFact("Dear Customer, thanks"); fact != nil {
		t.Fatalf("generic salutation matched: %+v", fact)
	}
}

func TestExtractFactsCategories(t *testing.T) {
	rs := newRuleSet(refdata.Default())

	doc := NormalizedText{
		Text:       "Your booking confirmation K8QJ2Z Dear John Smith, your flight is confirmed. Booking reference: K8QJ2Z Flight EZY8291 London Gatwick (LGW) to Barcelona (BCN) departing Thu, 15 Oct 2026",
		HeaderYear: 2026,
	}
	facts := rs.extractFacts(doc)

	byCategory := map[internal.FactCategory]int{}
	for _, f := range facts {
		byCategory[f.Category]++
	}
	if byCategory[internal.FactBookingRef] != 1 {
		t.Fatalf("bookingRef count=%d", byCategory[internal.FactBookingRef])
	}
	if byCategory[internal.FactFlightNumber] != 1 {
		t.Fatalf("flightNumber count=%d", byCategory[internal.FactFlightNumber])
	}
	if byCategory[internal.FactRoute] != 1 {
		t.Fatalf("route count=%d", byCategory[internal.FactRoute])
	}
	if byCategory[internal.FactDate] == 0 {
		t.Fatal("no date facts")
	}
	if byCategory[internal.FactPassengerName] != 1 {
		t.Fatalf("passenger count=%d", byCategory[internal.FactPassengerName])
	}
}
