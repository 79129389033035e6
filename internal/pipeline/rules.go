package pipeline

import (
	"regexp"

	"flightclaim/internal/refdata"
)

// Category rules are data: an ordered table of typed patterns per fact
// category. Supporting a new vendor layout means appending a row, not
// forking the pipeline.

type bookingRule struct {
	re *regexp.Regexp
	// requireDigit guards the bare (non keyword-anchored) patterns
	// against matching ordinary uppercase words.
	requireDigit bool
	// skipFlightLike guards bare patterns against eating flight numbers
	// such as FR7824.
	skipFlightLike bool
}

// routeRule captures one vendor route shape. Either pair is set (one
// pattern with both endpoints) or from/to are set (separate labelled
// fields; a lone to-match yields a destination-only fact).
type routeRule struct {
	name      string
	pair      *regexp.Regexp
	from, to  *regexp.Regexp
	cityNames bool
}

type dateKind int

const (
	dateYMD dateKind = iota
	dateDMY
	dateDayMonthName
	dateMonthNameDay
	dateYearFirstCJK
)

type dateRule struct {
	re   *regexp.Regexp
	kind dateKind
}

type ruleSet struct {
	tables       *refdata.Tables
	bookingRef   []bookingRule
	flightNumber *regexp.Regexp
	routes       []routeRule
	dates        []dateRule
	passenger    []*regexp.Regexp
}

const routeSep = `\s*(?:→|->|—|–|-|(?i:to))\s*`

const latinMonths = `jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec`

// Full month names for the locales that inflect them; resolved through
// Tables.MonthNumber.
const southernMonths = `gennaio|febbraio|marzo|aprile|maggio|giugno|luglio|agosto|settembre|ottobre|novembre|dicembre|` +
	`enero|febrero|abril|mayo|junio|julio|septiembre|octubre|noviembre|diciembre|` +
	`stycznia|lutego|marca|kwietnia|maja|czerwca|lipca|sierpnia|września|października|listopada|grudnia|` +
	`Ιανουαρίου|Φεβρουαρίου|Μαρτίου|Απριλίου|Μαΐου|Ιουνίου|Ιουλίου|Αυγούστου|Σεπτεμβρίου|Οκτωβρίου|Νοεμβρίου|Δεκεμβρίου`

func newRuleSet(tables *refdata.Tables) *ruleSet {
	cities := tables.CityAlternation()

	return &ruleSet{
		tables: tables,

		bookingRef: []bookingRule{
			// Keyword-anchored shapes first; these may be all-letter PNRs.
			{re: regexp.MustCompile(`(?:(?i:booking|confirmation|reservation)\s*(?i:reference|code|number)?|(?i:PNR|locator|localizador|reference)|(?i:номер|код)\s*(?i:бронирования)|(?i:бронирование))[\s:#№]+([A-Z0-9]{5,8})\b`)},
			{re: regexp.MustCompile(`(?i:booking\s+reference|confirmation\s+code|reservation\s+number|código\s+de\s+reserva|код\s+бронирования)[^A-Z0-9]{0,40}([A-Z0-9]{5,8})\b`)},
			// Bare token fallbacks; must carry a digit and not read as a
			// flight number.
			{re: regexp.MustCompile(`\b([A-Z]{2,3}[0-9]{3,4})\b`), requireDigit: true, skipFlightLike: true},
			{re: regexp.MustCompile(`\b([A-Z][0-9][A-Z0-9]{4,5})\b`), requireDigit: true},
			{re: regexp.MustCompile(`\b([A-Z]{2}-[0-9]{8})\b`), requireDigit: true},
			{re: regexp.MustCompile(`\b([A-Z]-[0-9]{4}-[0-9]{6})\b`), requireDigit: true},
			{re: regexp.MustCompile(`\b([A-Z][A-Z0-9]{5})\b`), requireDigit: true, skipFlightLike: true},
		},

		flightNumber: regexp.MustCompile(`\b(EZY|EJU|[A-Z][A-Z0-9])\s*([0-9]{1,4})\b`),

		routes: []routeRule{
			{name: "iata-pair", pair: regexp.MustCompile(`\b([A-Z]{3})` + routeSep + `([A-Z]{3})\b`)},
			{name: "paren-pair", pair: regexp.MustCompile(`\(([A-Z]{3})\)` + routeSep + `[^()]{0,60}\(([A-Z]{3})\)`)},
			{
				name: "from-to-fields",
				from: regexp.MustCompile(`(?:^|\s)(?i:From|Откуда)[\s:/][^()]{0,50}?\(([A-Z]{3})\)`),
				to:   regexp.MustCompile(`(?:^|\s)(?i:To|Куда)[\s:/][^()]{0,50}?\(([A-Z]{3})\)`),
			},
			{
				name: "airport-fields",
				from: regexp.MustCompile(`(?i:Departure\s+Airport)[\s:]*[^()]{0,50}?\(([A-Z]{3})\)`),
				to:   regexp.MustCompile(`(?i:Arrival\s+Airport)[\s:]*[^()]{0,50}?\(([A-Z]{3})\)`),
			},
			{
				name: "salida-llegada",
				from: regexp.MustCompile(`(?i:Salida)(?:\s+(?i:Aeropuerto))?[\s:]*[^()]{0,50}?\(([A-Z]{3})\)`),
				to:   regexp.MustCompile(`(?i:Llegada)(?:\s+(?i:Aeropuerto))?[\s:]*[^()]{0,50}?\(([A-Z]{3})\)`),
			},
			// \b is ASCII-only in RE2, so Cyrillic names need explicit
			// letter-class boundaries.
			{name: "city-pair", pair: regexp.MustCompile(`(?i)(?:^|[^\p{L}])(` + cities + `)` + routeSep + `(` + cities + `)(?:$|[^\p{L}])`), cityNames: true},
		},

		dates: []dateRule{
			{re: regexp.MustCompile(`\b(\d{4})-(\d{1,2})-(\d{1,2})\b`), kind: dateYMD},
			{re: regexp.MustCompile(`\b(\d{1,2})[./-](\d{1,2})[./-](\d{4})\b`), kind: dateDMY},
			{re: regexp.MustCompile(`(?i)\b(?:(?:mon|tue|wed|thu|fri|sat|sun)[a-z]*[,.\s]+)?(\d{1,2})(?:st|nd|rd|th)?\s+(` + latinMonths + `)[a-z]*\.?,?\s*(\d{2,4})?\b`), kind: dateDayMonthName},
			// Year must be space-separated or "Oct 2026" reads as day 20.
			{re: regexp.MustCompile(`(?i)\b(` + latinMonths + `)[a-z]*\.?\s+(\d{1,2})(?:st|nd|rd|th)?(?:,?\s+(\d{2,4}))?\b`), kind: dateMonthNameDay},
			{re: regexp.MustCompile(`(?i)\b(\d{1,2})\s+(янв|фев|мар|апр|ма[йя]|июн|июл|авг|сен|окт|ноя|дек)[а-яё]*\.?\s*(\d{2,4})?`), kind: dateDayMonthName},
			{re: regexp.MustCompile(`(?i)\b(\d{1,2})\s+(?:de\s+)?(` + southernMonths + `)(?:\s+de)?\s+(\d{4})\b`), kind: dateDayMonthName},
			{re: regexp.MustCompile(`(\d{4})年(\d{1,2})月(\d{1,2})日`), kind: dateYearFirstCJK},
			{re: regexp.MustCompile(`(\d{4})년\s*(\d{1,2})월\s*(\d{1,2})일`), kind: dateYearFirstCJK},
		},

		passenger: []*regexp.Regexp{
			regexp.MustCompile(`(?i:dear|уважаемый|уважаемая)\s+(?:(?i:mr|ms|mrs|miss)\.?\s+)?([A-ZА-Я][a-zа-яё]+(?:\s+[A-ZА-Я][a-zа-яё]+)?)`),
			regexp.MustCompile(`\b([A-Z]{2,}/[A-Z]{2,}(?:\s+(?:MR|MS|MRS))?)\b`),
			regexp.MustCompile(`(?i:passenger|pasajero|пассажир|passager)[\s:]+([A-ZА-Я][a-zA-Zа-яё]+(?:\s+[A-ZА-Я][a-zA-Zа-яё]+){0,2})`),
		},
	}
}

// Tokens the bare booking-ref patterns keep matching in airline marketing
// copy.
var bookingDenylist = map[string]struct{}{
	"BOOKING": {}, "TICKET": {}, "FLIGHT": {}, "NUMBER": {}, "DETAILS": {},
	"EASYJET": {}, "RYANAIR": {}, "WIZZAIR": {}, "CANCEL": {}, "PLEASE": {},
	"TRAVEL": {}, "ONLINE": {}, "CHECKIN": {}, "AIRBUS": {}, "BOEING": {},
}

var passengerDenylist = map[string]struct{}{
	"CUSTOMER": {}, "TRAVELLER": {}, "TRAVELER": {}, "PASSENGER": {},
	"GUEST": {}, "MADAM": {},
}

var reYearLike = regexp.MustCompile(`^(?:19|20)\d{2}$`)
