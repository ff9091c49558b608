package export

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"

	"docforensics/internal/domain"
)

const (
	pdfMargin = 15.0
	pdfBottom = 20.0
	pdfLineH  = 6.0
	pdfLabelW = 50.0
	pdfTitle  = "Forensic Document Analysis Report"
	pdfFont   = "Helvetica"
)

// itemWidths sizes the price table columns; they sum to the printable width of A4.
var itemWidths = []float64{60, 15, 28, 28, 22, 27}

var riskColors = map[domain.RiskLevel][3]int{
	domain.RiskLevelLow:      {46, 125, 50},
	domain.RiskLevelMedium:   {249, 168, 37},
	domain.RiskLevelHigh:     {239, 108, 0},
	domain.RiskLevelCritical: {198, 40, 40},
}

type pdfWriter struct {
	doc *fpdf.Fpdf
	tr  func(string) string
}

// PDF renders every section of the analysis as a paginated A4 document.
// Every page carries a footer with its page number and the attribution line.
func PDF(a *domain.Analysis) ([]byte, error) {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	doc.SetAutoPageBreak(true, pdfBottom)
	doc.SetTitle(pdfTitle, true)
	doc.SetCreator("docforensics", true)
	doc.SetCreationDate(a.GeneratedAt)
	doc.AliasNbPages("")

	w := &pdfWriter{doc: doc, tr: doc.UnicodeTranslatorFromDescriptor("")}
	doc.SetFooterFunc(w.footer)
	doc.AddPage()

	w.title(a)
	for _, sec := range Sections(a.Result) {
		w.heading(sec.Title)
		for _, f := range sec.Fields {
			if sec.Title == "Risk Assessment" && f.Label == "Risk Level" {
				w.riskLevel(a.Result.RiskAssessment.RiskLevel)
				continue
			}
			w.field(f)
		}
		if sec.Items != nil {
			w.items(sec.Items)
		}
		doc.Ln(4)
	}
	if len(a.Warnings) > 0 {
		w.heading("Consistency Warnings")
		for _, warning := range a.Warnings {
			doc.MultiCell(0, pdfLineH, w.tr("- "+warning), "", "L", false)
		}
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("writing pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func (w *pdfWriter) title(a *domain.Analysis) {
	w.doc.SetFont(pdfFont, "B", 18)
	w.doc.CellFormat(0, 10, pdfTitle, "", 1, "L", false, 0, "")
	w.doc.SetFont(pdfFont, "", 10)
	for _, f := range Header(a) {
		if f.Label == "Generated" {
			f.Value = a.GeneratedAt.UTC().Format(time.RFC1123)
		}
		w.field(f)
	}
	w.doc.Ln(4)
}

func (w *pdfWriter) heading(s string) {
	_, pageH := w.doc.GetPageSize()
	if w.doc.GetY()+3*pdfLineH > pageH-pdfBottom {
		w.doc.AddPage()
	}
	w.doc.SetFont(pdfFont, "B", 14)
	w.doc.SetFillColor(236, 239, 241)
	w.doc.CellFormat(0, 9, w.tr(s), "", 1, "L", true, 0, "")
	w.doc.Ln(1)
	w.doc.SetFont(pdfFont, "", 10)
}

func (w *pdfWriter) field(f Field) {
	w.doc.SetFont(pdfFont, "B", 10)
	w.doc.CellFormat(pdfLabelW, pdfLineH, w.tr(f.Label), "", 0, "L", false, 0, "")
	w.doc.SetFont(pdfFont, "", 10)
	w.doc.MultiCell(0, pdfLineH, w.tr(orDash(f.Value)), "", "L", false)
}

func (w *pdfWriter) riskLevel(level domain.RiskLevel) {
	w.doc.SetFont(pdfFont, "B", 10)
	w.doc.CellFormat(pdfLabelW, pdfLineH, "Risk Level", "", 0, "L", false, 0, "")
	if c, ok := riskColors[level]; ok {
		w.doc.SetTextColor(c[0], c[1], c[2])
	}
	w.doc.CellFormat(0, pdfLineH, w.tr(string(level)), "", 1, "L", false, 0, "")
	w.doc.SetTextColor(0, 0, 0)
	w.doc.SetFont(pdfFont, "", 10)
}

func (w *pdfWriter) items(rows [][]string) {
	w.doc.Ln(2)
	if len(rows) == 0 {
		w.doc.CellFormat(0, pdfLineH, "No line items reviewed.", "", 1, "L", false, 0, "")
		return
	}
	w.itemHeader()
	_, pageH := w.doc.GetPageSize()
	for _, row := range rows {
		if w.doc.GetY()+pdfLineH > pageH-pdfBottom {
			w.doc.AddPage()
			w.itemHeader()
		}
		for i, cell := range row {
			align := "L"
			if i > 0 && i < 5 {
				align = "R"
			}
			w.doc.CellFormat(itemWidths[i], pdfLineH, w.fit(cell, itemWidths[i]), "1", 0, align, false, 0, "")
		}
		w.doc.Ln(-1)
	}
}

func (w *pdfWriter) itemHeader() {
	w.doc.SetFont(pdfFont, "B", 9)
	w.doc.SetFillColor(220, 224, 228)
	for i, col := range ItemColumns {
		w.doc.CellFormat(itemWidths[i], pdfLineH, col, "1", 0, "C", true, 0, "")
	}
	w.doc.Ln(-1)
	w.doc.SetFont(pdfFont, "", 9)
}

// fit truncates s to one line of the given cell width.
func (w *pdfWriter) fit(s string, width float64) string {
	s = w.tr(s)
	lines := w.doc.SplitText(s, width-2)
	if len(lines) <= 1 {
		return s
	}
	return strings.TrimSpace(lines[0]) + "..."
}

func (w *pdfWriter) footer() {
	w.doc.SetY(-pdfBottom + 5)
	w.doc.SetFont(pdfFont, "I", 8)
	w.doc.SetTextColor(110, 110, 110)
	w.doc.CellFormat(0, 5, fmt.Sprintf("Page %d of {nb}", w.doc.PageNo()), "", 1, "C", false, 0, "")
	w.doc.CellFormat(0, 5, Attribution, "", 0, "C", false, 0, "")
	w.doc.SetTextColor(0, 0, 0)
}
