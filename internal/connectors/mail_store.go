package connectors

import (
	"crypto/sha256"
	"encoding/hex"
	"os"
	"path/filepath"

	"flightclaim/internal"
	"flightclaim/internal/storage"
)

// MailStoreService lands fetched messages on disk (content-addressed by
// sha256, so refetches are free) and registers them for processing.
type MailStoreService struct {
	db         *storage.DB
	rawMailDir string
}

func NewMailStoreService(db *storage.DB, rawMailDir string) *MailStoreService {
	return &MailStoreService{db: db, rawMailDir: rawMailDir}
}

// Store writes the raw message and upserts its email row with status
// "fetched". It reports whether the raw file was new.
func (s *MailStoreService) Store(msg internal.FetchedMailMessage) (internal.EmailRow, bool, error) {
	hashBytes := sha256.Sum256(msg.Raw)
	hash := hex.EncodeToString(hashBytes[:])

	if err := os.MkdirAll(s.rawMailDir, 0o755); err != nil {
		return internal.EmailRow{}, false, err
	}

	isNew := false
	rawPath := filepath.Join(s.rawMailDir, hash+".eml")
	if _, err := os.Stat(rawPath); os.IsNotExist(err) {
		if err := os.WriteFile(rawPath, msg.Raw, 0o644); err != nil {
			return internal.EmailRow{}, false, err
		}
		isNew = true
	}

	row, err := s.db.UpsertEmail(msg.Provider, msg.MessageID, msg.Subject, msg.From, msg.ReceivedAt, hash, rawPath, "fetched")
	return row, isNew, err
}
