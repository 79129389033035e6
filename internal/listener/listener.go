package listener

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"flightclaim/internal/config"
	"flightclaim/internal/connectors"
	gmailconnector "flightclaim/internal/connectors/gmail"
	imapconnector "flightclaim/internal/connectors/imap"
	"flightclaim/internal/pipeline"
	"flightclaim/internal/refdata"
	"flightclaim/internal/storage"
)

// Service is the continuous mode: fetch new mail, run extraction, export
// the accumulated flight table, sleep, repeat.
type Service struct {
	db     *storage.DB
	cfg    config.Config
	engine *pipeline.Engine
}

func NewService(db *storage.DB, cfg config.Config) *Service {
	return &Service{db: db, cfg: cfg, engine: pipeline.NewEngine(cfg, refdata.Default())}
}

func (s *Service) Run(ctx context.Context) error {
	for {
		if err := s.runCycle(ctx); err != nil {
			fmt.Printf("listener cycle error: %v\n", err)
		}

		select {
		case <-ctx.Done():
			return nil
		case <-time.After(time.Duration(s.cfg.MailListenerIntervalSec) * time.Second):
		}
	}
}

func (s *Service) runCycle(ctx context.Context) error {
	provider := strings.ToLower(strings.TrimSpace(s.cfg.MailListenerProvider))
	mailConnector, err := s.makeConnector(provider)
	if err != nil {
		return err
	}

	fetchService := connectors.NewFetchService(s.db, s.cfg.RawMailDir, mailConnector)
	fetchResult, err := fetchService.FetchAndStore(s.cfg.MailListenerLabel, s.cfg.MailListenerFetchMax)
	if err != nil {
		return err
	}

	processor := pipeline.NewProcessingService(s.db, s.cfg, s.engine)
	processedEmails, processedFlights, err := processor.ProcessPending(s.cfg.MailListenerProcessBatch, provider)
	if err != nil {
		return err
	}

	if s.cfg.MailListenerAutoExport && processedEmails > 0 {
		if err := s.exportFlights(); err != nil {
			return err
		}
	}

	fmt.Printf("listener cycle done provider=%s fetched=%d stored=%d processed=%d flights=%d\n",
		provider, fetchResult.Fetched, fetchResult.Stored, processedEmails, processedFlights)
	_ = ctx
	return nil
}

// exportFlights rewrites the full flight table snapshot. One file per day
// keeps history without unbounded growth inside a cycle.
func (s *Service) exportFlights() error {
	rows, err := s.db.GetExportRows(0)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return nil
	}
	filename := fmt.Sprintf("flights_%s.xlsx", time.Now().UTC().Format("2006-01-02"))
	return pipeline.ExportFlightsToXLSX(rows, filepath.Join(s.cfg.OutputDir, "listener", filename))
}

func (s *Service) makeConnector(provider string) (connectors.MailConnector, error) {
	switch provider {
	case "gmail":
		return gmailconnector.NewConnector(s.cfg)
	case "imap":
		return imapconnector.NewConnector(s.cfg)
	default:
		return nil, fmt.Errorf("unsupported listener provider: %s", provider)
	}
}
