// Package export renders a completed analysis as downloadable reports.
package export

import (
	"fmt"
	"strings"

	"docforensics/internal/domain"
)

// Attribution is printed in the footer of every PDF page.
const Attribution = "Generated by docforensics automated document analysis. Verify findings before acting on them."

var contentTypes = map[domain.ExportFormat]string{
	domain.ExportFormatJSON: "application/json",
	domain.ExportFormatPDF:  "application/pdf",
	domain.ExportFormatXLSX: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	domain.ExportFormatCSV:  "text/csv; charset=utf-8",
}

// File is one rendered export.
type File struct {
	Name        string
	ContentType string
	Body        []byte
}

// ParseFormat resolves a format name, case-insensitively.
func ParseFormat(name string) (domain.ExportFormat, error) {
	f := domain.ExportFormat(strings.ToLower(strings.TrimSpace(name)))
	if !domain.ValidExportFormats[f] {
		return "", fmt.Errorf("%w: %q", domain.ErrUnsupportedExportFormat, name)
	}
	return f, nil
}

// Filename returns the download name for a report, e.g. forensic-report-FR-1.pdf.
func Filename(reportID string, format domain.ExportFormat) string {
	return fmt.Sprintf("forensic-report-%s.%s", reportID, format)
}

// Render produces the export of a in the given format.
func Render(a *domain.Analysis, format domain.ExportFormat) (*File, error) {
	if a == nil {
		return nil, domain.ErrNoAnalysis
	}

	var (
		body []byte
		err  error
	)
	switch format {
	case domain.ExportFormatJSON:
		body, err = JSON(a)
	case domain.ExportFormatPDF:
		body, err = PDF(a)
	case domain.ExportFormatXLSX:
		body, err = XLSX(a)
	case domain.ExportFormatCSV:
		body, err = CSV(a)
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedExportFormat, format)
	}
	if err != nil {
		return nil, fmt.Errorf("rendering %s export: %w", format, err)
	}

	return &File{
		Name:        Filename(a.ReportID, format),
		ContentType: contentTypes[format],
		Body:        body,
	}, nil
}
