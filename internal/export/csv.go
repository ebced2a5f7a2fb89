package export

import (
	"fmt"
	"io"

	"github.com/gocarina/gocsv"

	"arrivals-backend/internal/model"
)

// csvRow is the flat CSV representation of a guest record.
type csvRow struct {
	Tag            string `csv:"tag"`
	LastName       string `csv:"last_name"`
	RoomNumber     string `csv:"room"`
	NumberOfGuests int    `csv:"guests"`
	ArrivalDay     string `csv:"arrival"`
	DepartureDay   string `csv:"departure"`
	BookingCode    string `csv:"booking_code"`
}

// WriteCSV writes the guest records of a report as CSV.
func WriteCSV(w io.Writer, rpt *model.Report, guests []model.Guest) error {
	rows := make([]csvRow, 0, len(guests))
	for _, g := range guests {
		rows = append(rows, csvRow{
			Tag:            g.Tag,
			LastName:       g.LastName,
			RoomNumber:     g.RoomNumber,
			NumberOfGuests: g.NumberOfGuests,
			ArrivalDay:     g.ArrivalDay,
			DepartureDay:   g.DepartureDay,
			BookingCode:    g.BookingCode,
		})
	}

	if err := gocsv.Marshal(&rows, w); err != nil {
		return fmt.Errorf("failed to write csv for report %s: %w", rpt.ID, err)
	}
	return nil
}
