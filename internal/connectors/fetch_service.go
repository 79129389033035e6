package connectors

import (
	"flightclaim/internal/storage"
)

type FetchService struct {
	db        *storage.DB
	connector MailConnector
	store     *MailStoreService
}

type FetchResult struct {
	Fetched    int
	Stored     int
	Duplicates int
}

func NewFetchService(db *storage.DB, rawMailDir string, connector MailConnector) *FetchService {
	return &FetchService{
		db:        db,
		connector: connector,
		store:     NewMailStoreService(db, rawMailDir),
	}
}

func (s *FetchService) FetchAndStore(label string, max int) (FetchResult, error) {
	messages, err := s.connector.FetchInbox(label, max)
	if err != nil {
		return FetchResult{}, err
	}

	res := FetchResult{Fetched: len(messages)}
	for _, msg := range messages {
		_, isNew, err := s.store.Store(msg)
		if err != nil {
			return res, err
		}
		if isNew {
			res.Stored++
		} else {
			res.Duplicates++
		}
	}

	return res, nil
}
