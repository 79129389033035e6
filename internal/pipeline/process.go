package pipeline

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"sync"
	"time"

	"flightclaim/internal"
	"flightclaim/internal/config"
	"flightclaim/internal/storage"
)

// ProcessingService drives extraction over stored emails: read the raw
// message, run the engine, land the records through the storage merge
// policy, then reconcile return flights across the whole batch.
type ProcessingService struct {
	db     *storage.DB
	cfg    config.Config
	engine *Engine
}

func NewProcessingService(db *storage.DB, cfg config.Config, engine *Engine) *ProcessingService {
	return &ProcessingService{db: db, cfg: cfg, engine: engine}
}

type ProcessResult struct {
	EmailID int
	Flights int
	Skipped bool
}

func (s *ProcessingService) ProcessByProviderMessageID(provider, messageID string) (ProcessResult, error) {
	email, err := s.db.MustEmailByProviderMessageID(provider, messageID)
	if err != nil {
		return ProcessResult{}, err
	}
	res, err := s.ProcessEmail(email)
	if err != nil {
		return ProcessResult{}, err
	}
	if err := s.ReconcileReturnFlights(); err != nil {
		return res, err
	}
	return res, nil
}

// ProcessPending runs the engine over fetched emails. Extraction is pure
// and fans out over cfg.ProcessWorkers; all database writes stay on the
// calling goroutine, in the order the emails were listed.
func (s *ProcessingService) ProcessPending(limit int, provider string) (int, int, error) {
	pending, err := s.db.ListEmailsByStatus("fetched", limit)
	if err != nil {
		return 0, 0, err
	}
	if provider != "" {
		filtered := pending[:0]
		for _, email := range pending {
			if email.Provider == provider {
				filtered = append(filtered, email)
			}
		}
		pending = filtered
	}
	if len(pending) == 0 {
		return 0, 0, nil
	}

	extracted := s.extractAll(pending)

	processedEmails, processedFlights := 0, 0
	for i, email := range pending {
		res, err := s.storeExtraction(email, extracted[i])
		if err != nil {
			return processedEmails, processedFlights, err
		}
		processedEmails++
		processedFlights += res.Flights
	}

	if err := s.ReconcileReturnFlights(); err != nil {
		return processedEmails, processedFlights, err
	}
	return processedEmails, processedFlights, nil
}

type emailExtraction struct {
	records []internal.FlightRecord
	skipped bool
	elapsed time.Duration
	err     error
}

func (s *ProcessingService) extractAll(emails []internal.EmailRow) []emailExtraction {
	out := make([]emailExtraction, len(emails))
	workers := s.cfg.ProcessWorkers
	if workers < 1 {
		workers = 1
	}
	if workers > len(emails) {
		workers = len(emails)
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				out[i] = s.extractOne(emails[i])
			}
		}()
	}
	for i := range emails {
		jobs <- i
	}
	close(jobs)
	wg.Wait()
	return out
}

func (s *ProcessingService) extractOne(email internal.EmailRow) emailExtraction {
	start := time.Now()
	raw, err := os.ReadFile(email.RawRef)
	if err != nil {
		return emailExtraction{err: err}
	}
	parsed, err := ParseEnvelope(raw)
	if err != nil {
		return emailExtraction{err: err}
	}
	if parsed.Subject == "" {
		parsed.Subject = email.Subject
	}
	if parsed.From == "" {
		parsed.From = email.Sender
	}

	if !s.engine.LooksLikeFlightEmail(parsed) {
		return emailExtraction{skipped: true, elapsed: time.Since(start)}
	}
	return emailExtraction{records: s.engine.Extract(parsed), elapsed: time.Since(start)}
}

// ProcessEmail extracts and stores one email synchronously; batch-level
// return reconciliation is the caller's job.
func (s *ProcessingService) ProcessEmail(email internal.EmailRow) (ProcessResult, error) {
	return s.storeExtraction(email, s.extractOne(email))
}

func (s *ProcessingService) storeExtraction(email internal.EmailRow, ex emailExtraction) (ProcessResult, error) {
	if ex.err != nil {
		return ProcessResult{}, ex.err
	}

	timings := map[string]float64{"totalMs": float64(ex.elapsed.Milliseconds())}

	if ex.skipped {
		_ = s.db.UpdateEmailStatus(email.ID, "skipped")
		_ = s.db.InsertRun(traceID(), email.ID, timings, map[string]int{"extracted": 0, "stored": 0})
		return ProcessResult{EmailID: email.ID, Skipped: true}, nil
	}

	stored := 0
	for _, rec := range ex.records {
		kept, err := s.db.UpsertFlight(email.ID, rec)
		if err != nil {
			return ProcessResult{}, err
		}
		if kept {
			stored++
		}
	}

	if err := s.db.UpdateEmailStatus(email.ID, "processed"); err != nil {
		return ProcessResult{}, err
	}
	_ = s.db.InsertRun(traceID(), email.ID, timings, map[string]int{"extracted": len(ex.records), "stored": stored})

	return ProcessResult{EmailID: email.ID, Flights: len(ex.records)}, nil
}

// ReconcileReturnFlights reruns return inference over every stored flight
// so round-trip legs split across separate emails still complete each
// other's routes.
func (s *ProcessingService) ReconcileReturnFlights() error {
	records, err := s.db.ListFlightRecords()
	if err != nil {
		return err
	}
	before := make([]internal.FlightRecord, len(records))
	copy(before, records)

	InferReturnFlights(records)

	for i, rec := range records {
		if rec.From == before[i].From && rec.To == before[i].To {
			continue
		}
		if err := s.db.UpdateFlightRoute(rec.Key(), rec.From, rec.To); err != nil {
			return err
		}
	}
	return nil
}

func traceID() string {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		return fmt.Sprintf("run-%d", time.Now().UnixNano())
	}
	return hex.EncodeToString(b[:])
}
