// Package refdata holds the curated lookup tables the extraction engine is
// parameterized with: airline codes, airport codes, multilingual city and
// month names, false-route exceptions and known sender domains. Tables are
// built once and never mutated afterwards; the engine receives them as a
// dependency so tests can run against synthetic tables.
package refdata

import (
	"sort"
	"strings"

	"flightclaim/internal/util"
)

type Tables struct {
	airlineNames  map[string]string
	airlineAlias  map[string]string
	airportCities map[string]string
	cityNames     map[string]string
	falseRoutes   map[string]struct{}
	senderDomains []string
	monthNumbers  map[string]string
}

type Spec struct {
	// AirlineNames maps IATA airline codes (2-letter, occasionally
	// 3-letter) to display names; an empty name is allowed.
	AirlineNames map[string]string
	// AirlineAliases maps alternate prefixes to the canonical code,
	// e.g. EZY/EJU -> U2.
	AirlineAliases map[string]string
	// AirportCities maps 3-letter IATA airport codes to a city name.
	AirportCities map[string]string
	// CityNames lists names accepted as route endpoints when no airport
	// code is present.
	CityNames []string
	// FalseRoutes lists compound airport names that must never be read
	// as an origin/destination pair, e.g. {"Milan", "Bergamo"}.
	FalseRoutes [][2]string
	// SenderDomains lists airline/OTA domains that boost confidence.
	SenderDomains []string
	// MonthNumbers maps lower-cased month names and abbreviations to
	// "01".."12".
	MonthNumbers map[string]string
}

func New(spec Spec) *Tables {
	t := &Tables{
		airlineNames:  map[string]string{},
		airlineAlias:  map[string]string{},
		airportCities: map[string]string{},
		cityNames:     map[string]string{},
		falseRoutes:   map[string]struct{}{},
		senderDomains: append([]string(nil), spec.SenderDomains...),
		monthNumbers:  map[string]string{},
	}
	for code, name := range spec.AirlineNames {
		t.airlineNames[strings.ToUpper(code)] = name
	}
	for alias, canonical := range spec.AirlineAliases {
		t.airlineAlias[strings.ToUpper(alias)] = strings.ToUpper(canonical)
	}
	for code, city := range spec.AirportCities {
		t.airportCities[strings.ToUpper(code)] = city
	}
	for _, city := range spec.CityNames {
		t.cityNames[util.FoldKey(city)] = city
	}
	for _, pair := range spec.FalseRoutes {
		a, b := util.FoldKey(pair[0]), util.FoldKey(pair[1])
		t.falseRoutes[a+"|"+b] = struct{}{}
		t.falseRoutes[b+"|"+a] = struct{}{}
	}
	for name, num := range spec.MonthNumbers {
		t.monthNumbers[strings.ToLower(name)] = num
	}
	return t
}

// Default returns the production tables.
func Default() *Tables {
	return New(Spec{
		AirlineNames:   airlineNames,
		AirlineAliases: airlineAliases,
		AirportCities:  airportCities,
		CityNames:      cityNames,
		FalseRoutes:    falseRoutes,
		SenderDomains:  senderDomains,
		MonthNumbers:   monthNumbers,
	})
}

// CanonicalAirline folds alias prefixes (EZY/EJU -> U2) and reports
// whether the resulting code is a known airline.
func (t *Tables) CanonicalAirline(code string) (string, bool) {
	c := strings.ToUpper(strings.TrimSpace(code))
	if canonical, ok := t.airlineAlias[c]; ok {
		c = canonical
	}
	_, ok := t.airlineNames[c]
	return c, ok
}

func (t *Tables) AirlineName(code string) string {
	canonical, _ := t.CanonicalAirline(code)
	if name := t.airlineNames[canonical]; name != "" {
		return name
	}
	return canonical
}

func (t *Tables) IsAirport(code string) bool {
	_, ok := t.airportCities[strings.ToUpper(code)]
	return ok
}

func (t *Tables) AirportCity(code string) string {
	return t.airportCities[strings.ToUpper(code)]
}

func (t *Tables) IsCity(name string) bool {
	_, ok := t.cityNames[util.FoldKey(name)]
	return ok
}

// IsFalseRoute reports whether the endpoint pair is a known compound
// airport name ("Milan-Bergamo") or a self-route after case folding.
func (t *Tables) IsFalseRoute(from, to string) bool {
	a, b := util.FoldKey(from), util.FoldKey(to)
	if a == b {
		return true
	}
	_, ok := t.falseRoutes[a+"|"+b]
	return ok
}

func (t *Tables) IsKnownSender(fromAddress string) bool {
	domain := util.SenderDomain(fromAddress)
	for _, d := range t.senderDomains {
		if domain == d || strings.HasSuffix(domain, "."+d) {
			return true
		}
	}
	return false
}

// MonthNumber resolves a month name in any supported locale to "01".."12".
func (t *Tables) MonthNumber(name string) (string, bool) {
	lower := strings.ToLower(strings.TrimSpace(name))
	if num, ok := t.monthNumbers[lower]; ok {
		return num, true
	}
	// Long forms fall back to their 3-letter abbreviation.
	runes := []rune(lower)
	if len(runes) > 3 {
		if num, ok := t.monthNumbers[string(runes[:3])]; ok {
			return num, true
		}
	}
	return "", false
}

// CityAlternation returns the curated city names joined for use inside a
// regular expression alternation, longest first so compound names win.
func (t *Tables) CityAlternation() string {
	names := make([]string, 0, len(t.cityNames))
	for _, name := range t.cityNames {
		names = append(names, name)
	}
	// Map iteration order is random; sort by length desc, then
	// lexicographically, so the built pattern is deterministic.
	sort.Slice(names, func(i, j int) bool {
		if len(names[i]) != len(names[j]) {
			return len(names[i]) > len(names[j])
		}
		return names[i] < names[j]
	})
	return strings.Join(names, "|")
}
