package admin

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/xuri/excelize/v2"

	"autocare/internal/domain"
)

// exportHeader fixes the column order for both export formats.
var exportHeader = []string{"Date", "Time", "Name", "Email", "Phone", "Vehicle", "Service", "Notes", "Status"}

func exportRow(a domain.Appointment) []string {
	return []string{
		a.PreferredDate,
		a.PreferredTime,
		a.CustomerName,
		a.CustomerEmail,
		a.CustomerPhone,
		a.VehicleInfo,
		a.ServiceType,
		a.AdditionalNotes,
		string(a.Status),
	}
}

// ExportCSV renders the appointment table as CSV: one header line plus one
// line per record.
func ExportCSV(appointments []domain.Appointment) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(exportHeader); err != nil {
		return nil, err
	}
	for _, a := range appointments {
		if err := w.Write(exportRow(a)); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ExportXLSX renders the same table as a styled spreadsheet.
func ExportXLSX(appointments []domain.Appointment) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheetName = "Appointments"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)

	for col, title := range exportHeader {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		_ = f.SetCellValue(sheetName, cell, title)
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#DDEBF7"}, Pattern: 1},
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	lastHeader, _ := excelize.CoordinatesToCellName(len(exportHeader), 1)
	_ = f.SetCellStyle(sheetName, "A1", lastHeader, headerStyle)

	for i, a := range appointments {
		for col, value := range exportRow(a) {
			cell, _ := excelize.CoordinatesToCellName(col+1, i+2)
			_ = f.SetCellValue(sheetName, cell, value)
		}
	}

	_ = f.SetColWidth(sheetName, "A", "I", 20)
	_ = f.DeleteSheet("Sheet1")

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write xlsx: %w", err)
	}
	return buf.Bytes(), nil
}
