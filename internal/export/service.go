// Package export produces XLSX workbooks from extracted order records.
package export

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/labelkit/labelkit/internal/label"
)

// Service is a tiny façade that turns record lists into XLSX bytes.
type Service struct {
	logger *slog.Logger
}

// NewService creates a new export service
func NewService(logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{logger: logger}
}

// OrdersXLSX returns an XLSX workbook (as bytes) with one row per order
// record, in record order.
func (s *Service) OrdersXLSX(records []label.OrderRecord) ([]byte, error) {
	start := time.Now()
	jobID := uuid.NewString()

	f := excelize.NewFile()
	const sheet = "Orders"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Index",
		"Name",
		"Phone",
		"Address1",
		"Address2",
		"City",
		"State",
		"Pincode",
		"Size",
		"Total",
		"Mode",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	for i, rec := range records {
		row := i + 2

		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, i+1)
		write(2, rec.Name)
		write(3, rec.Phone)
		write(4, rec.Address1)
		write(5, rec.Address2)
		write(6, rec.City)
		write(7, rec.State)
		write(8, rec.Pincode)
		write(9, rec.Size)
		write(10, rec.Total)
		write(11, rec.Mode)
	}

	// Widen a few columns
	_ = f.SetColWidth(sheet, "B", "B", 24) // name
	_ = f.SetColWidth(sheet, "C", "C", 16) // phone
	_ = f.SetColWidth(sheet, "D", "E", 40) // address lines
	_ = f.SetColWidth(sheet, "F", "G", 18) // city, state
	_ = f.SetColWidth(sheet, "J", "J", 12) // total

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"job_id", jobID,
		"rows", len(records),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}
