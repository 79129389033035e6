package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"flightclaim/internal"
	"flightclaim/internal/config"
	"flightclaim/internal/connectors"
	gmailconnector "flightclaim/internal/connectors/gmail"
	imapconnector "flightclaim/internal/connectors/imap"
	"flightclaim/internal/listener"
	"flightclaim/internal/pipeline"
	"flightclaim/internal/refdata"
	"flightclaim/internal/storage"
)

func main() {
	cfg, err := config.Load()
	must(err)

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	cmd := os.Args[1]

	// One-off extraction over a local file needs no database.
	if cmd == "run" {
		runOnce(cfg, os.Args[2:])
		return
	}

	db, err := storage.Open(cfg.DBPath)
	must(err)
	defer db.Close()

	switch cmd {
	case "mail:fetch":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		provider := fs.String("provider", "gmail", "gmail|imap")
		label := fs.String("label", "INBOX", "mailbox/label")
		max := fs.Int("max", 50, "max messages")
		_ = fs.Parse(os.Args[2:])
		conn, err := makeConnector(cfg, *provider)
		must(err)
		fetch := connectors.NewFetchService(db, cfg.RawMailDir, conn)
		result, err := fetch.FetchAndStore(*label, *max)
		must(err)
		fmt.Printf("mail fetch done provider=%s fetched=%d stored=%d duplicates=%d\n", *provider, result.Fetched, result.Stored, result.Duplicates)
	case "mail:process":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		provider := fs.String("provider", "gmail", "gmail|imap")
		messageID := fs.String("messageId", "", "specific message-id")
		batch := fs.Int("batch", 20, "batch size")
		_ = fs.Parse(os.Args[2:])
		engine := pipeline.NewEngine(cfg, refdata.Default())
		processor := pipeline.NewProcessingService(db, cfg, engine)
		if strings.TrimSpace(*messageID) != "" {
			res, err := processor.ProcessByProviderMessageID(*provider, *messageID)
			must(err)
			fmt.Printf("processed email id=%d flights=%d skipped=%v\n", res.EmailID, res.Flights, res.Skipped)
			return
		}
		processedEmails, processedFlights, err := processor.ProcessPending(*batch, *provider)
		must(err)
		fmt.Printf("processed pending emails=%d flights=%d\n", processedEmails, processedFlights)
	case "export:xlsx":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		emailID := fs.Int("emailId", 0, "limit to one internal email id (0 = all)")
		out := fs.String("out", "", "output xlsx path")
		_ = fs.Parse(os.Args[2:])
		if strings.TrimSpace(*out) == "" {
			must(fmt.Errorf("--out is required"))
		}
		rows, err := db.GetExportRows(*emailID)
		must(err)
		if len(rows) == 0 {
			must(fmt.Errorf("no flights to export"))
		}
		must(pipeline.ExportFlightsToXLSX(rows, *out))
		fmt.Printf("exported %d flights to %s\n", len(rows), *out)
	case "mail:listen":
		s := listener.NewService(db, cfg)
		must(s.Run(context.Background()))
	default:
		usage()
		os.Exit(1)
	}
}

// runOnce extracts flights from a single .eml, .html or .txt file and
// prints the records as JSON.
func runOnce(cfg config.Config, args []string) {
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	input := fs.String("input", "", "path to .eml, .html or .txt file")
	output := fs.String("output", "", "output json path (default stdout)")
	_ = fs.Parse(args)
	if strings.TrimSpace(*input) == "" {
		must(fmt.Errorf("--input is required"))
	}

	raw, err := os.ReadFile(*input)
	must(err)

	var email internal.RawEmail
	switch strings.ToLower(filepath.Ext(*input)) {
	case ".eml":
		email, err = pipeline.ParseEnvelope(raw)
		must(err)
	case ".html", ".htm":
		email = internal.RawEmail{HTMLBody: string(raw)}
	default:
		email = internal.RawEmail{PlainBody: string(raw)}
	}

	engine := pipeline.NewEngine(cfg, refdata.Default())
	records := engine.Extract(email)

	blob, err := json.MarshalIndent(records, "", "  ")
	must(err)
	if strings.TrimSpace(*output) == "" {
		fmt.Println(string(blob))
		return
	}
	must(os.WriteFile(*output, append(blob, '\n'), 0o644))
	fmt.Printf("run done flights=%d output=%s\n", len(records), *output)
}

func makeConnector(cfg config.Config, provider string) (connectors.MailConnector, error) {
	switch strings.ToLower(strings.TrimSpace(provider)) {
	case "gmail":
		return gmailconnector.NewConnector(cfg)
	case "imap":
		return imapconnector.NewConnector(cfg)
	default:
		return nil, fmt.Errorf("unsupported provider: %s", provider)
	}
}

func usage() {
	fmt.Println("usage: flightclaim <command>")
	fmt.Println("commands:")
	fmt.Println("  mail:fetch --provider=gmail|imap --label=INBOX --max=50")
	fmt.Println("  mail:process --provider=gmail|imap [--messageId=...] [--batch=20]")
	fmt.Println("  mail:listen")
	fmt.Println("  export:xlsx --out=./out/flights.xlsx [--emailId=1]")
	fmt.Println("  run --input=booking.eml [--output=flights.json]")
}

func must(err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
