package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"flightclaim/internal"
)

type DB struct {
	conn *sql.DB
}

func Open(path string) (*DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	if _, err := conn.Exec(`PRAGMA journal_mode = WAL;`); err != nil {
		_ = conn.Close()
		return nil, err
	}

	db := &DB{conn: conn}
	if err := db.init(); err != nil {
		_ = conn.Close()
		return nil, err
	}

	return db, nil
}

func (d *DB) Close() error {
	return d.conn.Close()
}

func (d *DB) init() error {
	schema := `
CREATE TABLE IF NOT EXISTS emails (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  provider TEXT NOT NULL,
  messageId TEXT NOT NULL,
  subject TEXT,
  sender TEXT,
  receivedAt TEXT,
  hash TEXT NOT NULL,
  status TEXT NOT NULL DEFAULT 'fetched',
  rawRef TEXT NOT NULL,
  createdAt TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP,
  updatedAt TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP,
  UNIQUE(provider, messageId)
);

CREATE TABLE IF NOT EXISTS flights (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  flightKey TEXT NOT NULL UNIQUE,
  emailId INTEGER NOT NULL,
  flightNumber TEXT NOT NULL,
  airline TEXT NOT NULL,
  origin TEXT,
  destination TEXT,
  departureDate TEXT,
  bookingRef TEXT NOT NULL DEFAULT '-',
  passengerName TEXT,
  confidence INTEGER NOT NULL,
  breakdownJson TEXT NOT NULL,
  source TEXT NOT NULL,
  createdAt TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP,
  updatedAt TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP,
  FOREIGN KEY(emailId) REFERENCES emails(id)
);
CREATE INDEX IF NOT EXISTS idx_flights_emailId ON flights(emailId);
CREATE INDEX IF NOT EXISTS idx_flights_bookingRef ON flights(bookingRef);

CREATE TABLE IF NOT EXISTS runs (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  traceId TEXT NOT NULL,
  emailId INTEGER,
  timingsJson TEXT NOT NULL,
  countsJson TEXT NOT NULL,
  createdAt TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP,
  FOREIGN KEY(emailId) REFERENCES emails(id)
);

CREATE TABLE IF NOT EXISTS metadata (
  key TEXT PRIMARY KEY,
  value TEXT NOT NULL,
  updatedAt TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

	_, err := d.conn.Exec(schema)
	return err
}

func (d *DB) UpsertEmail(provider, messageID, subject, sender, receivedAt, hash, rawRef, status string) (internal.EmailRow, error) {
	_, err := d.conn.Exec(`
INSERT INTO emails (provider, messageId, subject, sender, receivedAt, hash, status, rawRef)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(provider, messageId) DO UPDATE SET
  subject=excluded.subject,
  sender=excluded.sender,
  receivedAt=excluded.receivedAt,
  hash=excluded.hash,
  rawRef=excluded.rawRef,
  updatedAt=CURRENT_TIMESTAMP
`, provider, messageID, subject, sender, receivedAt, hash, status, rawRef)
	if err != nil {
		return internal.EmailRow{}, err
	}

	row, err := d.GetEmailByProviderMessageID(provider, messageID)
	if err != nil {
		return internal.EmailRow{}, err
	}
	if row == nil {
		return internal.EmailRow{}, errors.New("failed to upsert email")
	}
	return *row, nil
}

func (d *DB) GetEmailByProviderMessageID(provider, messageID string) (*internal.EmailRow, error) {
	var row internal.EmailRow
	err := d.conn.QueryRow(`
SELECT id, provider, messageId, subject, sender, receivedAt, hash, status, rawRef
FROM emails WHERE provider = ? AND messageId = ?
`, provider, messageID).Scan(
		&row.ID, &row.Provider, &row.MessageID, &row.Subject, &row.Sender, &row.ReceivedAt, &row.Hash, &row.Status, &row.RawRef,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (d *DB) GetEmailByID(id int) (*internal.EmailRow, error) {
	var row internal.EmailRow
	err := d.conn.QueryRow(`
SELECT id, provider, messageId, subject, sender, receivedAt, hash, status, rawRef
FROM emails WHERE id = ?
`, id).Scan(
		&row.ID, &row.Provider, &row.MessageID, &row.Subject, &row.Sender, &row.ReceivedAt, &row.Hash, &row.Status, &row.RawRef,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (d *DB) ListEmailsByStatus(status string, limit int) ([]internal.EmailRow, error) {
	rows, err := d.conn.Query(`
SELECT id, provider, messageId, subject, sender, receivedAt, hash, status, rawRef
FROM emails WHERE status = ? ORDER BY receivedAt ASC LIMIT ?
`, status, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []internal.EmailRow
	for rows.Next() {
		var row internal.EmailRow
		if err := rows.Scan(&row.ID, &row.Provider, &row.MessageID, &row.Subject, &row.Sender, &row.ReceivedAt, &row.Hash, &row.Status, &row.RawRef); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

func (d *DB) UpdateEmailStatus(emailID int, status string) error {
	_, err := d.conn.Exec(`UPDATE emails SET status = ?, updatedAt = CURRENT_TIMESTAMP WHERE id = ?`, status, emailID)
	return err
}

// UpsertFlight applies the merge policy at storage level: a record for an
// already-known flight key only lands if it beats the stored one. Reports
// whether the candidate was written.
func (d *DB) UpsertFlight(emailID int, rec internal.FlightRecord) (bool, error) {
	existing, err := d.GetFlightByKey(rec.Key())
	if err != nil {
		return false, err
	}
	if existing != nil && !internal.ShouldReplace(*existing, rec) {
		return false, nil
	}

	breakdownJSON, _ := json.Marshal(rec.Breakdown)
	_, err = d.conn.Exec(`
INSERT INTO flights (
  flightKey, emailId, flightNumber, airline, origin, destination,
  departureDate, bookingRef, passengerName, confidence, breakdownJson, source
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(flightKey) DO UPDATE SET
  emailId=excluded.emailId,
  flightNumber=excluded.flightNumber,
  airline=excluded.airline,
  origin=excluded.origin,
  destination=excluded.destination,
  departureDate=excluded.departureDate,
  bookingRef=excluded.bookingRef,
  passengerName=excluded.passengerName,
  confidence=excluded.confidence,
  breakdownJson=excluded.breakdownJson,
  source=excluded.source,
  updatedAt=CURRENT_TIMESTAMP
`, rec.Key(), emailID, rec.FlightNumber, rec.Airline, rec.From, rec.To,
		rec.DepartureDate, rec.BookingRef, rec.PassengerName, rec.Confidence,
		string(breakdownJSON), string(rec.Source))
	if err != nil {
		return false, err
	}
	return true, nil
}

func (d *DB) GetFlightByKey(key string) (*internal.FlightRecord, error) {
	var rec internal.FlightRecord
	var breakdownJSON, source string
	err := d.conn.QueryRow(`
SELECT flightNumber, airline, origin, destination, departureDate,
       bookingRef, passengerName, confidence, breakdownJson, source
FROM flights WHERE flightKey = ?
`, key).Scan(
		&rec.FlightNumber, &rec.Airline, &rec.From, &rec.To, &rec.DepartureDate,
		&rec.BookingRef, &rec.PassengerName, &rec.Confidence, &breakdownJSON, &source,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	_ = json.Unmarshal([]byte(breakdownJSON), &rec.Breakdown)
	rec.Source = internal.RecordSource(source)
	return &rec, nil
}

// ListFlightRecords returns every stored flight ordered by descending
// confidence, then flight number.
func (d *DB) ListFlightRecords() ([]internal.FlightRecord, error) {
	rows, err := d.conn.Query(`
SELECT flightNumber, airline, origin, destination, departureDate,
       bookingRef, passengerName, confidence, breakdownJson, source
FROM flights
ORDER BY confidence DESC, flightNumber ASC, departureDate ASC
`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []internal.FlightRecord
	for rows.Next() {
		var rec internal.FlightRecord
		var breakdownJSON, source string
		if err := rows.Scan(
			&rec.FlightNumber, &rec.Airline, &rec.From, &rec.To, &rec.DepartureDate,
			&rec.BookingRef, &rec.PassengerName, &rec.Confidence, &breakdownJSON, &source,
		); err != nil {
			return nil, err
		}
		_ = json.Unmarshal([]byte(breakdownJSON), &rec.Breakdown)
		rec.Source = internal.RecordSource(source)
		out = append(out, rec)
	}
	return out, rows.Err()
}

// UpdateFlightRoute rewrites the endpoints of one stored flight; used by
// the post-batch return-flight reconciliation.
func (d *DB) UpdateFlightRoute(flightKey, origin, destination string) error {
	_, err := d.conn.Exec(`
UPDATE flights SET origin = ?, destination = ?, updatedAt = CURRENT_TIMESTAMP
WHERE flightKey = ?
`, origin, destination, flightKey)
	return err
}

func (d *DB) InsertRun(traceID string, emailID int, timings map[string]float64, counts map[string]int) error {
	timingsJSON, _ := json.Marshal(timings)
	countsJSON, _ := json.Marshal(counts)
	_, err := d.conn.Exec(`INSERT INTO runs (traceId, emailId, timingsJson, countsJson) VALUES (?, ?, ?, ?)`, traceID, emailID, string(timingsJSON), string(countsJSON))
	return err
}

func (d *DB) SetMetadata(key, value string) error {
	_, err := d.conn.Exec(`
INSERT INTO metadata (key, value) VALUES (?, ?)
ON CONFLICT(key) DO UPDATE SET value = excluded.value, updatedAt = CURRENT_TIMESTAMP
`, key, value)
	return err
}

func (d *DB) GetMetadata(key string) (*string, error) {
	var value string
	err := d.conn.QueryRow(`SELECT value FROM metadata WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &value, nil
}

// GetExportRows joins flights with their source email for the XLSX report.
// emailID of 0 means all emails.
func (d *DB) GetExportRows(emailID int) ([]internal.FlightExportRow, error) {
	query := `
SELECT
  f.flightNumber, f.airline, f.origin, f.destination, f.departureDate,
  f.bookingRef, f.passengerName, f.confidence, f.source,
  e.subject, e.sender, e.receivedAt
FROM flights f
JOIN emails e ON e.id = f.emailId
`
	args := []any{}
	if emailID != 0 {
		query += `WHERE f.emailId = ?
`
		args = append(args, emailID)
	}
	query += `ORDER BY f.confidence DESC, f.flightNumber ASC`

	rows, err := d.conn.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []internal.FlightExportRow
	for rows.Next() {
		var row internal.FlightExportRow
		if err := rows.Scan(
			&row.FlightNumber, &row.Airline, &row.From, &row.To, &row.DepartureDate,
			&row.BookingRef, &row.PassengerName, &row.Confidence, &row.Source,
			&row.EmailSubject, &row.EmailSender, &row.ReceivedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

func (d *DB) MustEmailByProviderMessageID(provider, messageID string) (internal.EmailRow, error) {
	row, err := d.GetEmailByProviderMessageID(provider, messageID)
	if err != nil {
		return internal.EmailRow{}, err
	}
	if row == nil {
		return internal.EmailRow{}, fmt.Errorf("email not found: provider=%s messageId=%s", provider, messageID)
	}
	return *row, nil
}
