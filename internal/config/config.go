package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	DBPath     string
	RawMailDir string
	OutputDir  string

	// Engine tuning. Defaults follow the weight table shipped with the
	// product; all are overridable per deployment.
	ContextWindow     int
	AcceptThreshold   int
	WeightFlight      int
	WeightBookingRef  int
	WeightAirport     int
	WeightCityOnly    int
	WeightDate        int
	WeightPassenger   int
	WeightKnownSender int

	ProcessWorkers int

	GmailClientID     string
	GmailClientSecret string
	GmailRedirectURI  string
	GmailRefreshToken string
	GmailQuery        string

	IMAPHost         string
	IMAPPort         int
	IMAPSecure       bool
	IMAPUser         string
	IMAPPassword     string
	IMAPMarkSeen     bool
	IMAPLookbackDays int

	MailListenerProvider     string
	MailListenerLabel        string
	MailListenerIntervalSec  int
	MailListenerFetchMax     int
	MailListenerProcessBatch int
	MailListenerAutoExport   bool
}

func Load() (Config, error) {
	_ = godotenv.Load()

	cwd, err := os.Getwd()
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		DBPath:     getEnv("DB_PATH", filepath.Join(cwd, "data", "app.db")),
		RawMailDir: getEnv("MAIL_RAW_DIR", filepath.Join(cwd, "data", "raw")),
		OutputDir:  getEnv("OUTPUT_DIR", filepath.Join(cwd, "out")),

		ContextWindow:     getEnvInt("EXTRACT_CONTEXT_WINDOW", 800),
		AcceptThreshold:   getEnvInt("EXTRACT_ACCEPT_THRESHOLD", 30),
		WeightFlight:      getEnvInt("EXTRACT_WEIGHT_FLIGHT", 15),
		WeightBookingRef:  getEnvInt("EXTRACT_WEIGHT_BOOKING_REF", 20),
		WeightAirport:     getEnvInt("EXTRACT_WEIGHT_AIRPORT", 10),
		WeightCityOnly:    getEnvInt("EXTRACT_WEIGHT_CITY_ONLY", 5),
		WeightDate:        getEnvInt("EXTRACT_WEIGHT_DATE", 15),
		WeightPassenger:   getEnvInt("EXTRACT_WEIGHT_PASSENGER", 5),
		WeightKnownSender: getEnvInt("EXTRACT_WEIGHT_KNOWN_SENDER", 10),

		ProcessWorkers: getEnvInt("PROCESS_WORKERS", 1),

		GmailClientID:     getEnv("GMAIL_CLIENT_ID", ""),
		GmailClientSecret: getEnv("GMAIL_CLIENT_SECRET", ""),
		GmailRedirectURI:  getEnv("GMAIL_REDIRECT_URI", "https://developers.google.com/oauthplayground"),
		GmailRefreshToken: getEnv("GMAIL_REFRESH_TOKEN", ""),
		GmailQuery:        getEnv("GMAIL_QUERY", defaultGmailQuery),

		IMAPHost:         getEnv("IMAP_HOST", ""),
		IMAPPort:         getEnvInt("IMAP_PORT", 993),
		IMAPSecure:       getEnvBool("IMAP_SECURE", true),
		IMAPUser:         getEnv("IMAP_USER", ""),
		IMAPPassword:     getEnv("IMAP_PASSWORD", ""),
		IMAPMarkSeen:     getEnvBool("IMAP_MARK_SEEN", false),
		IMAPLookbackDays: getEnvInt("IMAP_LOOKBACK_DAYS", 90),

		MailListenerProvider:     getEnv("MAIL_LISTENER_PROVIDER", "gmail"),
		MailListenerLabel:        getEnv("MAIL_LISTENER_LABEL", "INBOX"),
		MailListenerIntervalSec:  getEnvInt("MAIL_LISTENER_INTERVAL_SEC", 30),
		MailListenerFetchMax:     getEnvInt("MAIL_LISTENER_FETCH_MAX", 20),
		MailListenerProcessBatch: getEnvInt("MAIL_LISTENER_PROCESS_BATCH", 20),
		MailListenerAutoExport:   getEnvBool("MAIL_LISTENER_AUTO_EXPORT", true),
	}

	return cfg, nil
}

// Gmail search narrowing the inbox to likely flight confirmations before
// any extraction runs.
const defaultGmailQuery = `(from:ryanair.com OR from:easyjet.com OR from:info.easyjet.com ` +
	`OR from:flypgs.com OR from:lufthansa.com OR from:wizzair.com OR from:vueling.com ` +
	`OR from:turkishairlines.com OR from:qatarairways.com ` +
	`OR from:trip.com OR from:booking.com OR from:expedia.com ` +
	`OR subject:"flight confirmation" OR subject:"booking confirmation" ` +
	`OR subject:"e-ticket" OR subject:"itinerary" ` +
	`OR subject:"Бронирование авиабилета" OR subject:"электронный билет")`

func (c Config) Require(name, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("missing required env var: %s", name)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := getEnv(key, "")
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvBool(key string, fallback bool) bool {
	value := strings.ToLower(strings.TrimSpace(getEnv(key, "")))
	if value == "" {
		return fallback
	}
	if value == "1" || value == "true" || value == "yes" || value == "on" {
		return true
	}
	if value == "0" || value == "false" || value == "no" || value == "off" {
		return false
	}
	return fallback
}
