// Package export renders a finalized snapshot as a flat table
// (order number, barcode, quantity) for billing hand-off.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"mecanica_parts/internal/domain/entities"

	"github.com/xuri/excelize/v2"
)

var header = []string{"order_number", "barcode", "quantity"}

// WriteXLSX writes the snapshot as a single-sheet workbook.
func WriteXLSX(w io.Writer, entry entities.FinalizedEntry, lines []entities.FinalizedLine) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())

	headerRow := make([]interface{}, len(header))
	for i, h := range header {
		headerRow[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &headerRow); err != nil {
		return fmt.Errorf("export header: %w", err)
	}

	row := 2
	for _, line := range lines {
		cells := []interface{}{entry.OrderNumber, line.Barcode, line.Quantity}
		if err := f.SetSheetRow(sheet, fmt.Sprintf("A%d", row), &cells); err != nil {
			return fmt.Errorf("export row %d: %w", row, err)
		}
		row++
	}

	return f.Write(w)
}

// WriteCSV writes the same table as comma-delimited text.
func WriteCSV(w io.Writer, entry entities.FinalizedEntry, lines []entities.FinalizedLine) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, line := range lines {
		if err := cw.Write([]string{entry.OrderNumber, line.Barcode, strconv.Itoa(line.Quantity)}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
