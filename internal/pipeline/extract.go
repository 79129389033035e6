package pipeline

import (
	"flightclaim/internal"
	"flightclaim/internal/config"
	"flightclaim/internal/refdata"
)

// Engine runs the extraction pipeline for one email: structured JSON-LD
// first, then the heuristic path (normalize, rule tables, proximity
// association, scoring), then dedup and return-flight inference.
type Engine struct {
	cfg    config.Config
	tables *refdata.Tables
	rules  *ruleSet
	scorer Scorer
}

func NewEngine(cfg config.Config, tables *refdata.Tables) *Engine {
	return &Engine{
		cfg:    cfg,
		tables: tables,
		rules:  newRuleSet(tables),
		scorer: NewScorer(cfg),
	}
}

// Extract is deterministic and side-effect free: the same email always
// yields the same records in the same order. Structured markup, when
// present, short-circuits the heuristic path entirely.
func (e *Engine) Extract(email internal.RawEmail) []internal.FlightRecord {
	if records := ExtractStructured(email.HTMLBody, e.tables); len(records) > 0 {
		return e.finish(records)
	}

	doc := Normalize(email)
	facts := e.rules.extractFacts(doc)
	candidates := e.associate(doc, facts, email)

	records := make([]internal.FlightRecord, 0, len(candidates))
	for _, c := range candidates {
		records = append(records, e.candidateRecord(c))
	}
	return e.finish(records)
}

func (e *Engine) finish(records []internal.FlightRecord) []internal.FlightRecord {
	merger := NewMerger(e.cfg.AcceptThreshold)
	for _, rec := range records {
		merger.Add(rec)
	}
	out := InferReturnFlights(merger.Records())
	sortRecords(out)
	return out
}

func (e *Engine) candidateRecord(c internal.FlightCandidate) internal.FlightRecord {
	breakdown := e.scorer.Score(c)
	rec := internal.FlightRecord{
		FlightNumber:  c.Flight.Value,
		Airline:       c.Flight.Code,
		BookingRef:    internal.BookingRefAbsent,
		PassengerName: c.Passenger,
		Confidence:    breakdown.Total(),
		Breakdown:     breakdown,
		Source:        internal.SourceHeuristic,
	}
	if c.BookingRef != "" {
		rec.BookingRef = c.BookingRef
	}
	if c.Route != nil {
		rec.From, rec.To = c.Route.From, c.Route.To
	}
	if c.Date != nil {
		rec.DepartureDate = c.Date.Value
	}
	return rec
}
