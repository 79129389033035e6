package util

import (
	"regexp"
	"strings"
)

var (
	reSpaces = regexp.MustCompile(`\s+`)
	reDomain = regexp.MustCompile(`@([a-zA-Z0-9.-]+)`)
)

// NormalizeSpaces collapses whitespace runs to single spaces and trims.
func NormalizeSpaces(input string) string {
	return strings.TrimSpace(reSpaces.ReplaceAllString(input, " "))
}

// SenderDomain pulls the bare domain out of a From header, e.g.
// "easyJet <booking@easyjet.com>" -> "easyjet.com".
func SenderDomain(from string) string {
	if m := reDomain.FindStringSubmatch(from); m != nil {
		return strings.ToLower(strings.TrimSuffix(m[1], "."))
	}
	return strings.ToLower(strings.TrimSpace(from))
}

// FoldKey upper-cases and strips everything but letters and digits; used
// for case- and punctuation-insensitive comparisons of route endpoints.
func FoldKey(input string) string {
	out := strings.Builder{}
	for _, r := range strings.ToUpper(input) {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r > 127 {
			out.WriteRune(r)
		}
	}
	return out.String()
}

func StringPtr(v string) *string { return &v }

func FloatPtr(v float64) *float64 { return &v }
