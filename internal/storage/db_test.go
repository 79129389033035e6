package storage

import (
	"path/filepath"
	"testing"

	"flightclaim/internal"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "app.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func seedEmail(t *testing.T, db *DB, messageID string) internal.EmailRow {
	t.Helper()
	row, err := db.UpsertEmail("gmail", messageID, "subj", "noreply@easyjet.com", "2026-01-15T10:00:00Z", "hash", "/tmp/raw.eml", "fetched")
	if err != nil {
		t.Fatal(err)
	}
	return row
}

func TestUpsertEmailIdempotent(t *testing.T) {
	db := openTestDB(t)

	first := seedEmail(t, db, "<m1@example.com>")
	second := seedEmail(t, db, "<m1@example.com>")
	if first.ID != second.ID {
		t.Fatalf("ids differ: %d %d", first.ID, second.ID)
	}
}

func TestUpsertFlightMergePolicy(t *testing.T) {
	db := openTestDB(t)
	email := seedEmail(t, db, "<m1@example.com>")

	weak := internal.FlightRecord{
		FlightNumber: "U2 8291", Airline: "U2", DepartureDate: "2026-10-15",
		BookingRef: "-", Confidence: 45, Source: internal.SourceHeuristic,
	}
	kept, err := db.UpsertFlight(email.ID, weak)
	if err != nil || !kept {
		t.Fatalf("kept=%v err=%v", kept, err)
	}

	// Lower confidence for the same key must not land.
	weaker := weak
	weaker.Confidence = 40
	kept, err = db.UpsertFlight(email.ID, weaker)
	if err != nil {
		t.Fatal(err)
	}
	if kept {
		t.Fatal("weaker record replaced stored one")
	}

	strong := internal.FlightRecord{
		FlightNumber: "U2 8291", Airline: "U2", From: "LGW", To: "BCN",
		DepartureDate: "2026-10-15", BookingRef: "K8QJ2Z", Confidence: 85,
		Source: internal.SourceHeuristic,
	}
	kept, err = db.UpsertFlight(email.ID, strong)
	if err != nil || !kept {
		t.Fatalf("kept=%v err=%v", kept, err)
	}

	stored, err := db.GetFlightByKey("U2 8291_2026-10-15")
	if err != nil {
		t.Fatal(err)
	}
	if stored == nil || stored.Confidence != 85 || stored.BookingRef != "K8QJ2Z" {
		t.Fatalf("stored=%+v", stored)
	}
}

func TestListFlightRecordsOrder(t *testing.T) {
	db := openTestDB(t)
	email := seedEmail(t, db, "<m1@example.com>")

	records := []internal.FlightRecord{
		{FlightNumber: "PC 397", Airline: "PC", Confidence: 40, BookingRef: "-", Source: internal.SourceHeuristic},
		{FlightNumber: "U2 8291", Airline: "U2", Confidence: 85, BookingRef: "-", Source: internal.SourceHeuristic},
		{FlightNumber: "FR 1234", Airline: "FR", Confidence: 40, BookingRef: "-", Source: internal.SourceHeuristic},
	}
	for _, rec := range records {
		if _, err := db.UpsertFlight(email.ID, rec); err != nil {
			t.Fatal(err)
		}
	}

	listed, err := db.ListFlightRecords()
	if err != nil {
		t.Fatal(err)
	}
	if len(listed) != 3 {
		t.Fatalf("len=%d", len(listed))
	}
	if listed[0].FlightNumber != "U2 8291" || listed[1].FlightNumber != "FR 1234" || listed[2].FlightNumber != "PC 397" {
		t.Fatalf("order=%+v", listed)
	}
}

func TestUpdateFlightRoute(t *testing.T) {
	db := openTestDB(t)
	email := seedEmail(t, db, "<m1@example.com>")

	rec := internal.FlightRecord{
		FlightNumber: "PC 398", Airline: "PC", From: "SAW", To: "LGW",
		DepartureDate: "2026-05-09", BookingRef: "T8K2VQ", Confidence: 80,
		Source: internal.SourceHeuristic,
	}
	if _, err := db.UpsertFlight(email.ID, rec); err != nil {
		t.Fatal(err)
	}
	if err := db.UpdateFlightRoute(rec.Key(), "LGW", "SAW"); err != nil {
		t.Fatal(err)
	}

	stored, err := db.GetFlightByKey(rec.Key())
	if err != nil {
		t.Fatal(err)
	}
	if stored.From != "LGW" || stored.To != "SAW" {
		t.Fatalf("stored=%+v", stored)
	}
}

func TestGetExportRowsJoin(t *testing.T) {
	db := openTestDB(t)
	email := seedEmail(t, db, "<m1@example.com>")
	other := seedEmail(t, db, "<m2@example.com>")

	if _, err := db.UpsertFlight(email.ID, internal.FlightRecord{
		FlightNumber: "U2 8291", Airline: "U2", Confidence: 85, BookingRef: "-", Source: internal.SourceHeuristic,
	}); err != nil {
		t.Fatal(err)
	}
	if _, err := db.UpsertFlight(other.ID, internal.FlightRecord{
		FlightNumber: "FR 1234", Airline: "FR", Confidence: 50, BookingRef: "-", Source: internal.SourceHeuristic,
	}); err != nil {
		t.Fatal(err)
	}

	all, err := db.GetExportRows(0)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 2 || all[0].FlightNumber != "U2 8291" {
		t.Fatalf("all=%+v", all)
	}
	if all[0].EmailSender != "noreply@easyjet.com" {
		t.Fatalf("sender=%q", all[0].EmailSender)
	}

	one, err := db.GetExportRows(other.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(one) != 1 || one[0].FlightNumber != "FR 1234" {
		t.Fatalf("one=%+v", one)
	}
}
