package export

import (
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"docforensics/internal/domain"
)

// TextMode selects the text renderer output.
type TextMode int

const (
	TextASCII    TextMode = iota // box-drawn terminal tables
	TextMarkdown                 // GitHub-flavoured Markdown tables
)

// Text renders the analysis as a sequence of titled tables, one per section.
func Text(a *domain.Analysis, mode TextMode) string {
	var b strings.Builder

	b.WriteString(render(newTable("Forensic Document Analysis Report", fieldRows(Header(a))), mode))
	for _, sec := range Sections(a.Result) {
		b.WriteString("\n\n")
		b.WriteString(render(newTable(sec.Title, fieldRows(sec.Fields)), mode))
		if len(sec.Items) == 0 {
			continue
		}
		t := newTable("", nil)
		header := make(table.Row, len(ItemColumns))
		for i, c := range ItemColumns {
			header[i] = c
		}
		t.AppendHeader(header)
		for _, row := range sec.Items {
			r := make(table.Row, len(row))
			for i, v := range row {
				r[i] = v
			}
			t.AppendRow(r)
		}
		t.SetColumnConfigs([]table.ColumnConfig{
			{Number: 1, WidthMax: 40},
			{Number: 2, Align: text.AlignRight},
			{Number: 3, Align: text.AlignRight},
			{Number: 4, Align: text.AlignRight},
			{Number: 5, Align: text.AlignRight},
		})
		b.WriteString("\n")
		b.WriteString(render(t, mode))
	}
	if len(a.Warnings) > 0 {
		rows := make([]table.Row, 0, len(a.Warnings))
		for _, w := range a.Warnings {
			rows = append(rows, table.Row{w})
		}
		b.WriteString("\n\n")
		b.WriteString(render(newTable("Consistency Warnings", rows), mode))
	}
	b.WriteString("\n")
	return b.String()
}

// RiskRow is the compact one-line summary used when listing many analyses.
func RiskRow(a *domain.Analysis) table.Row {
	risk := a.Result.RiskAssessment
	return table.Row{a.FileName, a.ReportID, risk.FraudScore, risk.RiskLevel, risk.FinalDecision, len(a.Warnings)}
}

// RiskTable renders analyses as one summary row each.
func RiskTable(analyses []*domain.Analysis, mode TextMode) string {
	t := newTable("", nil)
	t.AppendHeader(table.Row{"File", "Report", "Score", "Risk", "Decision", "Warnings"})
	for _, a := range analyses {
		t.AppendRow(RiskRow(a))
	}
	t.SetColumnConfigs([]table.ColumnConfig{{Number: 3, Align: text.AlignRight}})
	return render(t, mode) + "\n"
}

func newTable(title string, rows []table.Row) table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	if title != "" {
		t.SetTitle(title)
	}
	t.AppendRows(rows)
	return t
}

func fieldRows(fields []Field) []table.Row {
	rows := make([]table.Row, 0, len(fields))
	for _, f := range fields {
		rows = append(rows, table.Row{f.Label, orDash(f.Value)})
	}
	return rows
}

func render(t table.Writer, mode TextMode) string {
	if mode == TextMarkdown {
		return t.RenderMarkdown()
	}
	return t.Render()
}
