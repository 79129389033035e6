package pipeline

import (
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"flightclaim/internal"
)

func ExportFlightsToXLSX(rows []internal.FlightExportRow, outputPath string) error {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	headers := []string{
		"flight_number", "airline", "from", "to", "departure_date",
		"booking_ref", "passenger_name", "confidence", "source",
		"email_subject", "email_sender", "received_at",
	}

	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	for i, row := range rows {
		r := i + 2
		set := func(col int, value any) {
			cell, _ := excelize.CoordinatesToCellName(col, r)
			_ = f.SetCellValue(sheet, cell, value)
		}

		set(1, row.FlightNumber)
		set(2, row.Airline)
		set(3, row.From)
		set(4, row.To)
		set(5, row.DepartureDate)
		set(6, row.BookingRef)
		set(7, row.PassengerName)
		set(8, row.Confidence)
		set(9, row.Source)
		set(10, row.EmailSubject)
		set(11, row.EmailSender)
		set(12, row.ReceivedAt)
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return err
	}
	return f.SaveAs(outputPath)
}
