package pipeline

import (
	"sort"

	"flightclaim/internal"
)

// Merger deduplicates records by flight key, keeping the best record per
// key and dropping anything under the accept threshold. Structured records
// pass through the same gate; at confidence 100 they always clear it and
// displace heuristic duplicates.
type Merger struct {
	threshold int
	records   map[string]internal.FlightRecord
}

func NewMerger(threshold int) *Merger {
	return &Merger{threshold: threshold, records: map[string]internal.FlightRecord{}}
}

// Add offers one record; it reports whether the record was kept (inserted
// or displaced an existing one).
func (m *Merger) Add(rec internal.FlightRecord) bool {
	if rec.Confidence < m.threshold {
		return false
	}
	key := rec.Key()
	existing, ok := m.records[key]
	if ok && !internal.ShouldReplace(existing, rec) {
		return false
	}
	m.records[key] = rec
	return true
}

// Records returns the surviving set ordered by descending confidence, then
// by flight number and date for a stable output.
func (m *Merger) Records() []internal.FlightRecord {
	out := make([]internal.FlightRecord, 0, len(m.records))
	for _, rec := range m.records {
		out = append(out, rec)
	}
	sortRecords(out)
	return out
}

func sortRecords(records []internal.FlightRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		if records[i].Confidence != records[j].Confidence {
			return records[i].Confidence > records[j].Confidence
		}
		if records[i].FlightNumber != records[j].FlightNumber {
			return records[i].FlightNumber < records[j].FlightNumber
		}
		return records[i].DepartureDate < records[j].DepartureDate
	})
}
