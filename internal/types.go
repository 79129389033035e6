package internal

type RecordSource string

const (
	SourceStructured RecordSource = "structured"
	SourceHeuristic  RecordSource = "heuristic"
)

type FactCategory string

const (
	FactBookingRef    FactCategory = "BOOKING_REF"
	FactFlightNumber  FactCategory = "FLIGHT_NUMBER"
	FactRoute         FactCategory = "ROUTE"
	FactDate          FactCategory = "DATE"
	FactPassengerName FactCategory = "PASSENGER_NAME"
)

// BookingRefAbsent is the sentinel callers see when no booking reference
// could be extracted.
const BookingRefAbsent = "-"

// RawEmail is the immutable input handed over by a mail connector.
type RawEmail struct {
	Subject    string
	From       string
	DateHeader string
	HTMLBody   string
	PlainBody  string
}

// Fact is one positional match produced by a category rule. Position is a
// byte offset into the normalized text the rules ran against.
type Fact struct {
	Category FactCategory
	Value    string
	Position int
	RawMatch string

	// Route facts only. FromValid/ToValid record whether the endpoint
	// resolved to a known airport code (true) or only to a curated city
	// name (false).
	From      string
	To        string
	FromValid bool
	ToValid   bool

	// Flight-number facts only; Code is canonical (EZY/EJU folded to U2).
	Code string
	Num  string
}

// FlightCandidate is one flight-number fact with its associated route and
// date, plus the email-scoped booking reference and passenger name.
type FlightCandidate struct {
	Flight      Fact
	Route       *Fact
	Date        *Fact
	BookingRef  string
	Passenger   string
	KnownSender bool
}

type ConfidenceBreakdown struct {
	FlightNumber      int `json:"flightNumber"`
	BookingRef        int `json:"bookingRef"`
	DepartureAirport  int `json:"departureAirport"`
	ArrivalAirport    int `json:"arrivalAirport"`
	Date              int `json:"date"`
	PassengerName     int `json:"passengerName"`
	KnownSenderDomain int `json:"knownSenderDomain"`
}

func (b ConfidenceBreakdown) Total() int {
	return b.FlightNumber + b.BookingRef + b.DepartureAirport + b.ArrivalAirport +
		b.Date + b.PassengerName + b.KnownSenderDomain
}

// FlightRecord is the engine output for one flight.
type FlightRecord struct {
	FlightNumber  string              `json:"flightNumber"`
	Airline       string              `json:"airline"`
	From          string              `json:"from"`
	To            string              `json:"to"`
	DepartureDate string              `json:"departureDate"`
	BookingRef    string              `json:"bookingRef"`
	PassengerName string              `json:"passengerName,omitempty"`
	Confidence    int                 `json:"confidence"`
	Breakdown     ConfidenceBreakdown `json:"breakdown"`
	Source        RecordSource        `json:"source"`
}

// Key is the dedup key: canonical flight number plus normalized date, or
// the flight number alone when no date was associated.
func (r FlightRecord) Key() string {
	if r.DepartureDate == "" {
		return r.FlightNumber
	}
	return r.FlightNumber + "_" + r.DepartureDate
}

func (r FlightRecord) HasBookingRef() bool {
	return r.BookingRef != "" && r.BookingRef != BookingRefAbsent
}

type EmailRow struct {
	ID         int
	Provider   string
	MessageID  string
	Subject    string
	Sender     string
	ReceivedAt string
	Hash       string
	Status     string
	RawRef     string
}

type FetchedMailMessage struct {
	Provider   string
	MessageID  string
	Subject    string
	From       string
	ReceivedAt string
	Raw        []byte
}

type FlightExportRow struct {
	FlightNumber  string
	Airline       string
	From          string
	To            string
	DepartureDate string
	BookingRef    string
	PassengerName string
	Confidence    int
	Source        string
	EmailSubject  string
	EmailSender   string
	ReceivedAt    string
}
