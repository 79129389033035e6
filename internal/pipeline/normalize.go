package pipeline

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/jhillyerd/enmime"
	pdf "github.com/ledongthuc/pdf"

	"flightclaim/internal"
	"flightclaim/internal/util"
)

// NormalizedText is the plain-text projection of one email. All fact
// positions are byte offsets into Text. HeaderYear carries the year of the
// Date: header for date rules that match without one.
type NormalizedText struct {
	Text       string
	HeaderYear int
}

// ParseEnvelope turns a raw RFC 5322 message into the engine's input.
// Text from PDF attachments (e-tickets) is appended to the plain body; a
// part that fails to decode contributes an empty string, never an error.
func ParseEnvelope(raw []byte) (internal.RawEmail, error) {
	env, err := enmime.ReadEnvelope(bytes.NewReader(raw))
	if err != nil {
		return internal.RawEmail{}, fmt.Errorf("read envelope: %w", err)
	}

	plain := env.Text
	for _, att := range env.Attachments {
		if strings.HasSuffix(strings.ToLower(att.FileName), ".pdf") {
			if text := pdfText(att.Content); text != "" {
				plain += "\n" + text
			}
		}
	}

	return internal.RawEmail{
		Subject:    env.GetHeader("Subject"),
		From:       env.GetHeader("From"),
		DateHeader: env.GetHeader("Date"),
		HTMLBody:   env.HTML,
		PlainBody:  plain,
	}, nil
}

// Normalize projects an email to searchable plain text: plain parts
// verbatim, HTML parts with tags stripped and entities decoded, whitespace
// runs collapsed to a single space.
func Normalize(email internal.RawEmail) NormalizedText {
	parts := make([]string, 0, 3)
	if email.Subject != "" {
		parts = append(parts, email.Subject)
	}
	if email.PlainBody != "" {
		parts = append(parts, email.PlainBody)
	}
	if email.HTMLBody != "" {
		parts = append(parts, stripHTML(email.HTMLBody))
	}
	return NormalizedText{
		Text:       util.NormalizeSpaces(strings.Join(parts, " ")),
		HeaderYear: headerYear(email.DateHeader),
	}
}

var (
	reScriptBlock = regexp.MustCompile(`(?is)<(script|style|noscript)[^>]*>.*?</(script|style|noscript)>`)
	reTag         = regexp.MustCompile(`<[^>]+>`)

	entityReplacer = strings.NewReplacer(
		"&nbsp;", " ", "&#160;", " ",
		"&amp;", "&", "&lt;", "<", "&gt;", ">",
		"&quot;", `"`, "&#39;", "'",
		"&ndash;", "–", "&mdash;", "—",
		"&rarr;", "→", "&#8594;", "→",
	)
)

func stripHTML(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		// Crude fallback: drop script/style bodies, strip tags, decode
		// the common entities.
		text := reScriptBlock.ReplaceAllString(html, " ")
		text = reTag.ReplaceAllString(text, " ")
		return entityReplacer.Replace(text)
	}
	doc.Find("script, style, noscript").Remove()
	return doc.Text()
}

func pdfText(content []byte) string {
	r, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return ""
	}
	out := strings.Builder{}
	for i := 1; i <= r.NumPage(); i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}
		text, err := p.GetPlainText(nil)
		if err != nil {
			continue
		}
		out.WriteString(text)
		out.WriteString("\n")
	}
	return out.String()
}

var mailDateLayouts = []string{
	time.RFC1123Z, time.RFC1123, time.RFC822Z, time.RFC822, time.RFC850,
	time.ANSIC, "Mon, 2 Jan 2006 15:04:05 -0700 (MST)", "2 Jan 2006 15:04:05 -0700",
}

func headerYear(dateHeader string) int {
	value := strings.TrimSpace(dateHeader)
	if value == "" {
		return time.Now().UTC().Year()
	}
	for _, layout := range mailDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Year()
		}
	}
	return time.Now().UTC().Year()
}
