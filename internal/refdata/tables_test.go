package refdata

import (
	"strings"
	"testing"
)

func TestCanonicalAirline(t *testing.T) {
	tables := Default()

	code, ok := tables.CanonicalAirline("EZY")
	if !ok || code != "U2" {
		t.Fatalf("EZY -> %q ok=%v", code, ok)
	}
	code, ok = tables.CanonicalAirline("eju")
	if !ok || code != "U2" {
		t.Fatalf("eju -> %q ok=%v", code, ok)
	}
	if _, ok := tables.CanonicalAirline("ZZ"); ok {
		t.Fatal("ZZ should be unknown")
	}
	if name := tables.AirlineName("FR"); name != "Ryanair" {
		t.Fatalf("name=%q", name)
	}
}

func TestFalseRoutes(t *testing.T) {
	tables := Default()

	if !tables.IsFalseRoute("Milan", "Bergamo") {
		t.Fatal("Milan-Bergamo must be a false route")
	}
	if !tables.IsFalseRoute("Bergamo", "Milan") {
		t.Fatal("false routes must apply in both directions")
	}
	if !tables.IsFalseRoute("BCN", "bcn") {
		t.Fatal("self-route must be rejected")
	}
	if tables.IsFalseRoute("Milan", "Istanbul") {
		t.Fatal("Milan-Istanbul is a real route")
	}
}

func TestMonthNumber(t *testing.T) {
	cases := map[string]string{
		"Oct":       "10",
		"october":   "10",
		"мая":       "05",
		"Сентября":  "09",
		"maggio":    "05",
		"maja":      "05",
		"Μαΐου":     "05",
		"diciembre": "12",
	}
	tables := Default()
	for name, want := range cases {
		got, ok := tables.MonthNumber(name)
		if !ok || got != want {
			t.Fatalf("MonthNumber(%q)=%q ok=%v want %q", name, got, ok, want)
		}
	}
	if _, ok := tables.MonthNumber("notamonth"); ok {
		t.Fatal("notamonth resolved")
	}
}

func TestIsKnownSender(t *testing.T) {
	tables := Default()
	if !tables.IsKnownSender("easyJet <noreply@easyjet.com>") {
		t.Fatal("easyjet.com should be known")
	}
	if !tables.IsKnownSender("booking@mail.ryanair.com") {
		t.Fatal("subdomains of known domains should match")
	}
	if tables.IsKnownSender("friend@gmail.com") {
		t.Fatal("gmail.com should not be known")
	}
}

func TestCityAlternationDeterministic(t *testing.T) {
	a := Default().CityAlternation()
	b := Default().CityAlternation()
	if a != b {
		t.Fatal("alternation not deterministic")
	}
	if !strings.Contains(a, "Milan") {
		t.Fatal("alternation missing Milan")
	}
}
