package export_test

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docforensics/internal/export"
)

func TestCSV_Rows(t *testing.T) {
	body, err := export.CSV(sampleAnalysis(1))
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(body, export.BOM))

	rows, err := csv.NewReader(bytes.NewReader(body[len(export.BOM):])).ReadAll()
	require.NoError(t, err)

	assert.Equal(t, []string{"Report ID", "Section", "Field", "Value"}, rows[0])
	for _, row := range rows[1:] {
		assert.Len(t, row, 4)
		assert.Equal(t, "FR-1791970200000", row[0])
	}
	assert.Contains(t, rows, []string{"FR-1791970200000", "Risk Assessment", "Decision", "Reject"})
	assert.Contains(t, rows, []string{"FR-1791970200000", "Price Analysis", "Item 1 Margin", "25.0%"})
	assert.Contains(t, rows, []string{"FR-1791970200000", "Price Analysis", "Total Overpricing", "INR 12,34,567.50"})
	assert.Equal(t, "Warnings", rows[len(rows)-1][1])
}

func TestCSVWriter_QuotesEmbeddedCommas(t *testing.T) {
	a := sampleAnalysis(0)
	a.Result.Summary = "High prices, edited totals"

	var buf bytes.Buffer
	w := export.NewCSVWriter(&buf)
	require.NoError(t, w.WriteAnalysis(a))
	w.Flush()
	require.NoError(t, w.Error())

	assert.Contains(t, buf.String(), `"High prices, edited totals"`)
}
