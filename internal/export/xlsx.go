package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"docforensics/internal/domain"
)

// Sheet names in the XLSX export.
const (
	SheetReport = "Report"
	SheetItems  = "Line Items"
)

// XLSX renders the analysis as a workbook: one sheet of section/field/value
// rows and one sheet holding the price check line items.
func XLSX(a *domain.Analysis) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", SheetReport); err != nil {
		return nil, fmt.Errorf("naming sheet: %w", err)
	}
	if _, err := f.NewSheet(SheetItems); err != nil {
		return nil, fmt.Errorf("adding sheet: %w", err)
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("creating style: %w", err)
	}

	rows := [][]interface{}{{"Section", "Field", "Value"}}
	for _, h := range Header(a) {
		rows = append(rows, []interface{}{"Report", h.Label, h.Value})
	}
	for _, sec := range Sections(a.Result) {
		for _, fld := range sec.Fields {
			rows = append(rows, []interface{}{sec.Title, fld.Label, fld.Value})
		}
	}
	for _, w := range a.Warnings {
		rows = append(rows, []interface{}{"Warnings", "Consistency", w})
	}
	if err := writeRows(f, SheetReport, rows); err != nil {
		return nil, err
	}

	// Numeric cells stay numbers; unknown prices and margins fall back to text.
	items := [][]interface{}{make([]interface{}, len(ItemColumns))}
	for i, c := range ItemColumns {
		items[0][i] = c
	}
	for _, item := range a.Result.PriceCheck.ItemsReviewed {
		row := []interface{}{item.ItemName, item.Quantity, item.InvoicePrice, "unknown", "unknown", string(item.Status)}
		if item.EstimatedMarketPrice.Valid {
			row[3] = item.EstimatedMarketPrice.Value
		}
		if m, ok := item.MarginPercentage.Float(); ok {
			row[4] = m
		}
		items = append(items, row)
	}
	if err := writeRows(f, SheetItems, items); err != nil {
		return nil, err
	}

	for _, sheet := range []string{SheetReport, SheetItems} {
		if err := f.SetCellStyle(sheet, "A1", "F1", bold); err != nil {
			return nil, fmt.Errorf("styling %s: %w", sheet, err)
		}
	}
	_ = f.SetColWidth(SheetReport, "A", "B", 24)
	_ = f.SetColWidth(SheetReport, "C", "C", 80)
	_ = f.SetColWidth(SheetItems, "A", "A", 40)
	_ = f.SetColWidth(SheetItems, "B", "F", 16)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("writing workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &rows[i]); err != nil {
			return fmt.Errorf("writing %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}
