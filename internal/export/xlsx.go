// Package export renders persisted guest records as downloadable
// spreadsheet and CSV documents.
package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"arrivals-backend/internal/model"
)

const sheetName = "Guests"

var xlsxHeader = []any{"Tag", "Last Name", "Room", "Guests", "Arrival", "Departure", "Booking Code"}

// WriteXLSX writes the guest records of a report as an XLSX workbook.
func WriteXLSX(w io.Writer, rpt *model.Report, guests []model.Guest) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("failed to remove default sheet: %w", err)
	}

	if err := f.SetSheetRow(sheetName, "A1", &xlsxHeader); err != nil {
		return fmt.Errorf("failed to write header row: %w", err)
	}

	for i, g := range guests {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("failed to compute cell name: %w", err)
		}
		row := []any{g.Tag, g.LastName, g.RoomNumber, g.NumberOfGuests, g.ArrivalDay, g.DepartureDay, g.BookingCode}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return fmt.Errorf("failed to write guest row: %w", err)
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook for report %s: %w", rpt.ID, err)
	}
	return nil
}
