package export

import (
	"bytes"
	"encoding/csv"
	"io"
	"strconv"

	"docforensics/internal/domain"
)

// BOM is the UTF-8 byte order mark, written so Excel on Windows detects the encoding.
var BOM = []byte{0xEF, 0xBB, 0xBF}

var csvColumns = []string{"Report ID", "Section", "Field", "Value"}

// CSVWriter wraps csv.Writer for exporting analyses as section/field/value rows.
type CSVWriter struct {
	csv *csv.Writer
}

// NewCSVWriter creates a CSVWriter that writes to w.
func NewCSVWriter(w io.Writer) *CSVWriter {
	return &CSVWriter{csv: csv.NewWriter(w)}
}

// WriteHeader writes the column header row.
func (w *CSVWriter) WriteHeader() error {
	return w.csv.Write(csvColumns)
}

// WriteAnalysis writes one row per report field. Line items are flattened
// to "Item N <column>" fields in table order.
func (w *CSVWriter) WriteAnalysis(a *domain.Analysis) error {
	write := func(section, field, value string) error {
		return w.csv.Write([]string{a.ReportID, section, field, value})
	}
	for _, h := range Header(a) {
		if err := write("Report", h.Label, h.Value); err != nil {
			return err
		}
	}
	for _, sec := range Sections(a.Result) {
		for _, f := range sec.Fields {
			if err := write(sec.Title, f.Label, f.Value); err != nil {
				return err
			}
		}
		for n, row := range sec.Items {
			prefix := "Item " + strconv.Itoa(n+1) + " "
			for i, col := range ItemColumns {
				if err := write(sec.Title, prefix+col, row[i]); err != nil {
					return err
				}
			}
		}
	}
	for _, warning := range a.Warnings {
		if err := write("Warnings", "Consistency", warning); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes the underlying csv.Writer buffer.
func (w *CSVWriter) Flush() {
	w.csv.Flush()
}

// Error returns any error from the underlying csv.Writer.
func (w *CSVWriter) Error() error {
	return w.csv.Error()
}

// CSV renders the analysis as a BOM-prefixed CSV document.
func CSV(a *domain.Analysis) ([]byte, error) {
	var buf bytes.Buffer
	buf.Write(BOM)
	w := NewCSVWriter(&buf)
	if err := w.WriteHeader(); err != nil {
		return nil, err
	}
	if err := w.WriteAnalysis(a); err != nil {
		return nil, err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
