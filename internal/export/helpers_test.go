package export_test

import (
	"fmt"
	"time"

	"docforensics/internal/domain"
	"docforensics/internal/forensic"
)

func sampleAnalysis(items int) *domain.Analysis {
	r := forensic.Default()
	r.DocumentType = domain.DocumentTypeInvoice
	r.Summary = "Two line items are priced well above market."
	r.RiskAssessment = domain.RiskAssessment{
		FraudScore:    62,
		RiskLevel:     domain.RiskLevelHigh,
		FinalDecision: domain.DecisionReject,
	}
	r.LogoVerification.CompanyName = "Acme Supplies"
	r.CompanyVerification.Website = domain.SomeString("https://acme.example")
	r.PriceCheck.Detail.Currency = "INR"
	r.PriceCheck.TotalOverpricing = 1234567.5
	for i := 0; i < items; i++ {
		item := domain.LineItem{
			ItemName:     fmt.Sprintf("Widget %d", i+1),
			Quantity:     i + 1,
			InvoicePrice: 150,
			Status:       domain.ItemStatusInflated,
		}
		if i%2 == 0 {
			item.EstimatedMarketPrice = domain.SomeFloat(120)
			item.MarginPercentage = domain.NewMargin(25)
		}
		r.PriceCheck.ItemsReviewed = append(r.PriceCheck.ItemsReviewed, item)
	}
	return &domain.Analysis{
		ReportID:    "FR-1791970200000",
		FileName:    "invoice.pdf",
		ContentType: "application/pdf",
		PageCount:   2,
		ModelUsed:   "gemini-2.0-flash",
		GeneratedAt: time.Date(2026, 10, 14, 9, 30, 0, 0, time.UTC),
		Result:      r,
		Warnings:    []string{"final_decision \"Reject\" does not match risk_level \"High\""},
	}
}
