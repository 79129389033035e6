package connectors

import "flightclaim/internal"

// MailConnector pulls candidate booking emails from one provider. The
// query narrowing (Gmail search string, IMAP criteria) lives inside the
// connector; callers only pick a label and a cap.
type MailConnector interface {
	FetchInbox(label string, max int) ([]internal.FetchedMailMessage, error)
}
