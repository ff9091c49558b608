package export

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"docforensics/internal/domain"
)

// Field is one labelled value in a report section.
type Field struct {
	Label string
	Value string
}

// Section is a titled group of fields. Items is set only for the price check.
type Section struct {
	Title  string
	Fields []Field
	Items  [][]string
}

// ItemColumns heads the line item table.
var ItemColumns = []string{"Item", "Qty", "Invoice Price", "Market Price", "Margin", "Status"}

// Header returns the report metadata printed above the sections.
func Header(a *domain.Analysis) []Field {
	fields := []Field{
		{"Report ID", a.ReportID},
		{"Generated", a.GeneratedAt.UTC().Format(time.RFC3339)},
		{"File", a.FileName},
		{"Content Type", a.ContentType},
	}
	if a.PageCount > 0 {
		fields = append(fields, Field{"Pages", strconv.Itoa(a.PageCount)})
	}
	model := a.ModelUsed
	if a.SecondaryModel != "" {
		model += " + " + a.SecondaryModel
	}
	return append(fields, Field{"Model", model})
}

// Sections lays out every field of the result in report order: risk
// assessment, summary, logo, company, price, template, anomaly.
func Sections(r domain.ForensicResult) []Section {
	risk := r.RiskAssessment
	logo := r.LogoVerification
	company := r.CompanyVerification
	price := r.PriceCheck
	tmpl := r.TemplateCheck
	anomaly := r.AnomalyDetection
	b := risk.Detail.ScoreBreakdown

	return []Section{
		{
			Title: "Risk Assessment",
			Fields: []Field{
				{"Document Type", string(r.DocumentType)},
				{"Risk Level", string(risk.RiskLevel)},
				{"Fraud Score", fmt.Sprintf("%d/100", risk.FraudScore)},
				{"Decision", string(risk.FinalDecision)},
				{"Reasoning", risk.Detail.Reasoning},
				{"Score Breakdown", fmt.Sprintf("logo %d, template %d, anomaly %d, company %d, price %d",
					b.Logo, b.Template, b.Anomaly, b.Company, b.Price)},
				{"Needs Manual Review", yesNo(risk.Detail.NeedsManualReview)},
			},
		},
		{
			Title:  "Summary",
			Fields: []Field{{"Summary", r.Summary}},
		},
		{
			Title: "Logo Verification",
			Fields: []Field{
				{"Company", logo.CompanyName},
				{"Status", string(logo.Status)},
				{"Confidence", percent(logo.Confidence)},
				{"Logo Reference", nullString(logo.LogoReference)},
				{"Logo Detected", yesNo(logo.Detail.LogoDetected)},
				{"Matches Known Brand", yesNo(logo.Detail.MatchesKnownBrand)},
				{"Needs Manual Review", yesNo(logo.Detail.NeedsManualReview)},
				{"Notes", logo.Detail.Notes},
			},
		},
		{
			Title: "Company Verification",
			Fields: []Field{
				{"Status", string(company.Status)},
				{"Match Found", nullBool(company.Matched)},
				{"Website", nullString(company.Website)},
				{"Registration Found", yesNo(company.Detail.RegistrationFound)},
				{"Address Verified", yesNo(company.Detail.AddressVerified)},
				{"Contact Verified", yesNo(company.Detail.ContactVerified)},
				{"Needs Manual Review", yesNo(company.Detail.NeedsManualReview)},
				{"Notes", company.Detail.Notes},
			},
		},
		{
			Title: "Price Analysis",
			Fields: []Field{
				{"Overall Status", string(price.OverallStatus)},
				{"Total Overpricing", Money(price.TotalOverpricing, price.Detail.Currency)},
				{"Currency", orDash(price.Detail.Currency)},
				{"Market Data Available", yesNo(price.Detail.MarketDataAvailable)},
				{"Needs Manual Review", yesNo(price.Detail.NeedsManualReview)},
				{"Notes", price.Detail.Notes},
			},
			Items: itemRows(price),
		},
		{
			Title: "Template Structure",
			Fields: []Field{
				{"Format", standardFormat(tmpl.StandardFormat)},
				{"Confidence", percent(tmpl.Confidence)},
				{"Missing Fields", list(tmpl.MissingFields)},
				{"Layout Consistent", yesNo(tmpl.Detail.LayoutConsistent)},
				{"Tax Fields Present", yesNo(tmpl.Detail.TaxFieldsPresent)},
				{"Needs Manual Review", yesNo(tmpl.Detail.NeedsManualReview)},
				{"Notes", tmpl.Detail.Notes},
			},
		},
		{
			Title: "Anomaly Detection",
			Fields: []Field{
				{"Tampering Detected", yesNo(anomaly.TamperingDetected)},
				{"Confidence", percent(anomaly.Confidence)},
				{"Suspicious Regions", list(anomaly.SuspiciousRegions)},
				{"Font Inconsistency", yesNo(anomaly.Detail.FontInconsistency)},
				{"Alignment Issues", yesNo(anomaly.Detail.AlignmentIssues)},
				{"Compression Artifacts", yesNo(anomaly.Detail.CompressionArtifacts)},
				{"Needs Manual Review", yesNo(anomaly.Detail.NeedsManualReview)},
				{"Notes", anomaly.Detail.Notes},
			},
		},
	}
}

func itemRows(p domain.PriceCheck) [][]string {
	rows := make([][]string, 0, len(p.ItemsReviewed))
	for _, item := range p.ItemsReviewed {
		market := "unknown"
		if item.EstimatedMarketPrice.Valid {
			market = Money(item.EstimatedMarketPrice.Value, p.Detail.Currency)
		}
		rows = append(rows, []string{
			item.ItemName,
			strconv.Itoa(item.Quantity),
			Money(item.InvoicePrice, p.Detail.Currency),
			market,
			MarginPercent(item.MarginPercentage),
			string(item.Status),
		})
	}
	return rows
}

// MarginPercent renders a margin with one decimal, or "unknown".
func MarginPercent(m domain.Margin) string {
	v, ok := m.Float()
	if !ok || math.IsNaN(v) || math.IsInf(v, 0) {
		return "unknown"
	}
	return strconv.FormatFloat(v, 'f', 1, 64) + "%"
}

// Money formats an amount with two decimals and digit grouping, prefixed by
// the currency code when known. INR amounts use lakh/crore grouping.
func Money(amount float64, currency string) string {
	currency = strings.ToUpper(strings.TrimSpace(currency))
	s := strconv.FormatFloat(math.Abs(amount), 'f', 2, 64)
	whole, frac, _ := strings.Cut(s, ".")
	out := group(whole, currency == "INR") + "." + frac
	if amount < 0 {
		out = "-" + out
	}
	if currency != "" {
		out = currency + " " + out
	}
	return out
}

func group(digits string, indian bool) string {
	if len(digits) <= 3 {
		return digits
	}
	head, tail := digits[:len(digits)-3], digits[len(digits)-3:]
	step := 3
	if indian {
		step = 2
	}
	var parts []string
	for len(head) > step {
		parts = append([]string{head[len(head)-step:]}, parts...)
		head = head[:len(head)-step]
	}
	parts = append([]string{head}, parts...)
	return strings.Join(parts, ",") + "," + tail
}

func percent(confidence float64) string {
	return strconv.FormatFloat(confidence*100, 'f', 1, 64) + "%"
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}

func nullBool(v domain.NullBool) string {
	if !v.Valid {
		return "unknown"
	}
	return yesNo(v.Value)
}

func nullString(v domain.NullString) string {
	if !v.Valid {
		return "-"
	}
	return orDash(v.Value)
}

func standardFormat(v bool) string {
	if v {
		return "Standard"
	}
	return "Non-standard"
}

func list(items []string) string {
	if len(items) == 0 {
		return "none"
	}
	return strings.Join(items, ", ")
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}
