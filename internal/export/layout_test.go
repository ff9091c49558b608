package export_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docforensics/internal/domain"
	"docforensics/internal/export"
)

func TestSections_Order(t *testing.T) {
	secs := export.Sections(sampleAnalysis(2).Result)

	titles := make([]string, 0, len(secs))
	for _, s := range secs {
		titles = append(titles, s.Title)
	}
	assert.Equal(t, []string{
		"Risk Assessment", "Summary", "Logo Verification", "Company Verification",
		"Price Analysis", "Template Structure", "Anomaly Detection",
	}, titles)

	price := secs[4]
	require.Len(t, price.Items, 2)
	assert.Equal(t, []string{"Widget 1", "1", "INR 150.00", "INR 120.00", "25.0%", "inflated"}, price.Items[0])
	assert.Equal(t, []string{"Widget 2", "2", "INR 150.00", "unknown", "unknown", "inflated"}, price.Items[1])
}

func TestMoney(t *testing.T) {
	tests := []struct {
		amount   float64
		currency string
		want     string
	}{
		{0, "", "0.00"},
		{999.5, "usd", "USD 999.50"},
		{1234567.891, "USD", "USD 1,234,567.89"},
		{1234567.5, "INR", "INR 12,34,567.50"},
		{-1500, "EUR", "EUR -1,500.00"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, export.Money(tt.amount, tt.currency))
	}
}

func TestMarginPercent(t *testing.T) {
	assert.Equal(t, "25.0%", export.MarginPercent(domain.NewMargin(25)))
	assert.Equal(t, "12.3%", export.MarginPercent(domain.NewMargin(12.345)))
	assert.Equal(t, "unknown", export.MarginPercent(domain.NewMargin(math.Inf(1))))
	assert.Equal(t, "unknown", export.MarginPercent(domain.MarginText("n/a")))
	assert.Equal(t, "unknown", export.MarginPercent(domain.Margin{}))
}
