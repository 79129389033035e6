package pipeline

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"flightclaim/internal"
)

// extractFacts runs every category's rule table over the normalized text.
// Categories are independent here; association happens later.
func (rs *ruleSet) extractFacts(doc NormalizedText) []internal.Fact {
	facts := make([]internal.Fact, 0, 16)
	if f := rs.bookingRefFact(doc.Text); f != nil {
		facts = append(facts, *f)
	}
	facts = append(facts, rs.flightNumberFacts(doc.Text)...)
	facts = append(facts, rs.routeFacts(doc.Text, 0)...)
	facts = append(facts, rs.dateFacts(doc.Text, doc.HeaderYear)...)
	if f := rs.passengerFact(doc.Text); f != nil {
		facts = append(facts, *f)
	}
	return facts
}

// bookingRefFact tries the booking-reference rules in order and returns
// the first surviving token (first-wins cardinality).
func (rs *ruleSet) bookingRefFact(text string) *internal.Fact {
	for _, rule := range rs.bookingRef {
		for _, loc := range rule.re.FindAllStringSubmatchIndex(text, -1) {
			token := strings.ToUpper(text[loc[2]:loc[3]])
			if _, banned := bookingDenylist[token]; banned {
				continue
			}
			if reYearLike.MatchString(token) {
				continue
			}
			if rule.requireDigit && !strings.ContainsAny(token, "0123456789") {
				continue
			}
			if rule.skipFlightLike && rs.looksLikeFlightNumber(token) {
				continue
			}
			return &internal.Fact{
				Category: internal.FactBookingRef,
				Value:    token,
				Position: loc[2],
				RawMatch: text[loc[0]:loc[1]],
			}
		}
	}
	return nil
}

// looksLikeFlightNumber reports whether a bare token is a known airline
// code followed by a 3-4 digit suffix, e.g. FR7824.
func (rs *ruleSet) looksLikeFlightNumber(token string) bool {
	i := 0
	for i < len(token) && token[i] >= 'A' && token[i] <= 'Z' {
		i++
	}
	letters, digits := token[:i], token[i:]
	if len(letters) < 2 || len(letters) > 3 || len(digits) < 3 || len(digits) > 4 {
		return false
	}
	for j := 0; j < len(digits); j++ {
		if digits[j] < '0' || digits[j] > '9' {
			return false
		}
	}
	_, known := rs.tables.CanonicalAirline(letters)
	return known
}

// flightNumberFacts accumulates every distinct flight number; duplicates
// keep their first occurrence.
func (rs *ruleSet) flightNumberFacts(text string) []internal.Fact {
	out := []internal.Fact{}
	seen := map[string]struct{}{}
	for _, loc := range rs.flightNumber.FindAllStringSubmatchIndex(text, -1) {
		code := text[loc[2]:loc[3]]
		num := text[loc[4]:loc[5]]
		canonical, known := rs.tables.CanonicalAirline(code)
		if !known {
			continue
		}
		key := canonical + num
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, internal.Fact{
			Category: internal.FactFlightNumber,
			Value:    canonical + " " + num,
			Position: loc[0],
			RawMatch: text[loc[0]:loc[1]],
			Code:     canonical,
			Num:      num,
		})
	}
	return out
}

// routeFacts tries the route rules in order; the first rule that yields at
// least one valid fact wins. base shifts positions when the text is a
// window into a larger document.
func (rs *ruleSet) routeFacts(text string, base int) []internal.Fact {
	for _, rule := range rs.routes {
		var facts []internal.Fact
		if rule.pair != nil {
			facts = rs.pairRouteFacts(rule, text, base)
		} else {
			facts = rs.fieldRouteFacts(rule, text, base)
		}
		if len(facts) > 0 {
			return facts
		}
	}
	return nil
}

func (rs *ruleSet) pairRouteFacts(rule routeRule, text string, base int) []internal.Fact {
	out := []internal.Fact{}
	for _, loc := range rule.pair.FindAllStringSubmatchIndex(text, -1) {
		from := text[loc[2]:loc[3]]
		to := text[loc[4]:loc[5]]
		if fact, ok := rs.newRouteFact(from, to, rule.cityNames, base+loc[0], text[loc[0]:loc[1]]); ok {
			out = append(out, fact)
		}
	}
	return out
}

// fieldRouteFacts handles vendor layouts with separate labelled endpoint
// fields. A to-field without a from-field yields a destination-only fact,
// the raw material for return-flight inference.
func (rs *ruleSet) fieldRouteFacts(rule routeRule, text string, base int) []internal.Fact {
	fromLoc := rule.from.FindStringSubmatchIndex(text)
	toLoc := rule.to.FindStringSubmatchIndex(text)
	if toLoc == nil {
		return nil
	}
	to := text[toLoc[2]:toLoc[3]]
	if !rs.tables.IsAirport(to) {
		return nil
	}

	if fromLoc == nil {
		return []internal.Fact{{
			Category: internal.FactRoute,
			Value:    "→ " + to,
			Position: base + toLoc[0],
			RawMatch: text[toLoc[0]:toLoc[1]],
			To:       strings.ToUpper(to),
			ToValid:  true,
		}}
	}

	from := text[fromLoc[2]:fromLoc[3]]
	fact, ok := rs.newRouteFact(from, to, false, base+fromLoc[0], text[fromLoc[0]:fromLoc[1]])
	if !ok {
		return nil
	}
	return []internal.Fact{fact}
}

func (rs *ruleSet) newRouteFact(from, to string, cityNames bool, pos int, raw string) (internal.Fact, bool) {
	if rs.tables.IsFalseRoute(from, to) {
		return internal.Fact{}, false
	}
	fact := internal.Fact{
		Category: internal.FactRoute,
		Position: pos,
		RawMatch: raw,
	}
	if cityNames {
		if !rs.tables.IsCity(from) || !rs.tables.IsCity(to) {
			return internal.Fact{}, false
		}
		fact.From, fact.To = from, to
	} else {
		if !rs.tables.IsAirport(from) || !rs.tables.IsAirport(to) {
			return internal.Fact{}, false
		}
		fact.From, fact.To = strings.ToUpper(from), strings.ToUpper(to)
		fact.FromValid, fact.ToValid = true, true
	}
	fact.Value = fact.From + " → " + fact.To
	return fact, true
}

// dateFacts accumulates matches from every date rule; all values normalize
// to YYYY-MM-DD regardless of which locale rule matched.
func (rs *ruleSet) dateFacts(text string, headerYear int) []internal.Fact {
	out := []internal.Fact{}
	seen := map[string]struct{}{}
	for _, rule := range rs.dates {
		for _, loc := range rule.re.FindAllStringSubmatchIndex(text, -1) {
			groups := submatches(text, loc)
			value, ok := rs.canonicalDate(rule.kind, groups, headerYear)
			if !ok {
				continue
			}
			key := fmt.Sprintf("%d|%s", loc[0], value)
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, internal.Fact{
				Category: internal.FactDate,
				Value:    value,
				Position: loc[0],
				RawMatch: text[loc[0]:loc[1]],
			})
		}
	}
	return out
}

func submatches(text string, loc []int) []string {
	groups := make([]string, 0, len(loc)/2-1)
	for i := 2; i < len(loc); i += 2 {
		if loc[i] < 0 {
			groups = append(groups, "")
		} else {
			groups = append(groups, text[loc[i]:loc[i+1]])
		}
	}
	return groups
}

func (rs *ruleSet) canonicalDate(kind dateKind, groups []string, headerYear int) (string, bool) {
	if len(groups) < 3 {
		return "", false
	}
	var day, month, year string
	switch kind {
	case dateYMD, dateYearFirstCJK:
		year, month, day = groups[0], groups[1], groups[2]
	case dateDMY:
		day, month, year = groups[0], groups[1], groups[2]
	case dateDayMonthName:
		day, year = groups[0], groups[2]
		num, ok := rs.tables.MonthNumber(groups[1])
		if !ok {
			return "", false
		}
		month = num
	case dateMonthNameDay:
		day, year = groups[1], groups[2]
		num, ok := rs.tables.MonthNumber(groups[0])
		if !ok {
			return "", false
		}
		month = num
	}

	d, err := strconv.Atoi(day)
	if err != nil {
		return "", false
	}
	m, err := strconv.Atoi(month)
	if err != nil {
		return "", false
	}
	y := headerYear
	if year != "" {
		y, err = strconv.Atoi(year)
		if err != nil {
			return "", false
		}
		if y < 100 {
			y += 2000
		}
	}
	if m < 1 || m > 12 || d < 1 || d > 31 || y < 2020 || y > 2035 {
		return "", false
	}
	return fmt.Sprintf("%04d-%02d-%02d", y, m, d), true
}

// passengerFact is first-wins across the passenger rules.
func (rs *ruleSet) passengerFact(text string) *internal.Fact {
	for _, re := range rs.passenger {
		for _, loc := range re.FindAllStringSubmatchIndex(text, -1) {
			name := strings.TrimSpace(text[loc[2]:loc[3]])
			if !plausibleName(name) {
				continue
			}
			return &internal.Fact{
				Category: internal.FactPassengerName,
				Value:    name,
				Position: loc[2],
				RawMatch: text[loc[0]:loc[1]],
			}
		}
	}
	return nil
}

func plausibleName(name string) bool {
	if len([]rune(name)) < 4 {
		return false
	}
	for _, r := range name {
		if unicode.IsDigit(r) {
			return false
		}
	}
	first := strings.ToUpper(strings.Fields(name)[0])
	_, banned := passengerDenylist[first]
	return !banned
}
