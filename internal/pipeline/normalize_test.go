package pipeline

import (
	"strings"
	"testing"

	"flightclaim/internal"
)

func TestNormalizeStripsHTML(t *testing.T) {
	doc := Normalize(internal.RawEmail{
		HTMLBody: `<html><head><style>p{color:red}</style></head>` +
			`<body><p>Flight FR 1234 to BCN</p><script>var tracker=1;</script></body></html>`,
	})
	if !strings.Contains(doc.Text, "Flight FR 1234 to BCN") {
		t.Fatalf("text=%q", doc.Text)
	}
	if strings.Contains(doc.Text, "tracker") || strings.Contains(doc.Text, "color") {
		t.Fatalf("script/style leaked: %q", doc.Text)
	}
}

func TestNormalizeIncludesSubjectAndCollapsesSpaces(t *testing.T) {
	doc := Normalize(internal.RawEmail{
		Subject:   "Booking ABC123",
		PlainBody: "line one\n\n  line   two",
	})
	if doc.Text != "Booking ABC123 line one line two" {
		t.Fatalf("text=%q", doc.Text)
	}
}

func TestNormalizeHeaderYear(t *testing.T) {
	doc := Normalize(internal.RawEmail{
		PlainBody:  "body",
		DateHeader: "Thu, 15 Jan 2026 10:00:00 +0000",
	})
	if doc.HeaderYear != 2026 {
		t.Fatalf("headerYear=%d", doc.HeaderYear)
	}
}

func TestParseEnvelopePlain(t *testing.T) {
	raw := []byte("From: easyJet <noreply@easyjet.com>\r\n" +
		"To: john.smith@example.com\r\n" +
		"Subject: Your booking confirmation K8QJ2Z\r\n" +
		"Date: Thu, 15 Jan 2026 10:00:00 +0000\r\n" +
		"Content-Type: text/plain; charset=utf-8\r\n" +
		"\r\n" +
		"Dear John Smith, your flight EZY8291 is confirmed.\r\n")

	email, err := ParseEnvelope(raw)
	if err != nil {
		t.Fatal(err)
	}
	if email.Subject != "Your booking confirmation K8QJ2Z" {
		t.Fatalf("subject=%q", email.Subject)
	}
	if !strings.Contains(email.From, "easyjet.com") {
		t.Fatalf("from=%q", email.From)
	}
	if !strings.Contains(email.PlainBody, "EZY8291") {
		t.Fatalf("plain=%q", email.PlainBody)
	}
}
