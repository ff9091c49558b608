package export_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docforensics/internal/domain"
	"docforensics/internal/export"
)

func TestParseFormat(t *testing.T) {
	for _, name := range []string{"json", "PDF", " xlsx ", "csv"} {
		_, err := export.ParseFormat(name)
		assert.NoError(t, err, name)
	}
	_, err := export.ParseFormat("docx")
	assert.ErrorIs(t, err, domain.ErrUnsupportedExportFormat)
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "forensic-report-FR-42.pdf", export.Filename("FR-42", domain.ExportFormatPDF))
	assert.Equal(t, "forensic-report-FR-42.json", export.Filename("FR-42", domain.ExportFormatJSON))
}

func TestRender_AllFormats(t *testing.T) {
	a := sampleAnalysis(3)
	for format := range domain.ValidExportFormats {
		t.Run(string(format), func(t *testing.T) {
			f, err := export.Render(a, format)
			require.NoError(t, err)
			assert.Equal(t, export.Filename(a.ReportID, format), f.Name)
			assert.NotEmpty(t, f.ContentType)
			assert.NotEmpty(t, f.Body)
		})
	}
}

func TestRender_Errors(t *testing.T) {
	_, err := export.Render(nil, domain.ExportFormatJSON)
	assert.ErrorIs(t, err, domain.ErrNoAnalysis)

	_, err = export.Render(sampleAnalysis(0), domain.ExportFormat("docx"))
	assert.ErrorIs(t, err, domain.ErrUnsupportedExportFormat)
}

func TestJSON_Envelope(t *testing.T) {
	a := sampleAnalysis(1)

	body, err := export.JSON(a)
	require.NoError(t, err)

	var got map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Len(t, got, 3)
	assert.JSONEq(t, `"FR-1791970200000"`, string(got["report_id"]))
	assert.JSONEq(t, `"2026-10-14T09:30:00Z"`, string(got["generated_at"]))

	var result domain.ForensicResult
	require.NoError(t, json.Unmarshal(got["analysis"], &result))
	assert.Equal(t, 62, result.RiskAssessment.FraudScore)
	assert.Equal(t, "Widget 1", result.PriceCheck.ItemsReviewed[0].ItemName)
}
