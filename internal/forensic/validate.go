package forensic

import (
	"errors"
	"fmt"
	"math"

	"docforensics/internal/domain"
)

// Validate checks that r is complete and within range. It returns every
// violation joined into one error, or nil.
func Validate(r domain.ForensicResult) error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf(format, args...))
	}

	if !domain.ValidDocumentTypes[r.DocumentType] {
		fail("document_type: invalid value %q", r.DocumentType)
	}
	if !domain.ValidLogoStatuses[r.LogoVerification.Status] {
		fail("logo_verification.status: invalid value %q", r.LogoVerification.Status)
	}
	if !domain.ValidCompanyStatuses[r.CompanyVerification.Status] {
		fail("company_verification.status: invalid value %q", r.CompanyVerification.Status)
	}
	if !domain.ValidPriceStatuses[r.PriceCheck.OverallStatus] {
		fail("price_check.overall_status: invalid value %q", r.PriceCheck.OverallStatus)
	}
	if !domain.ValidRiskLevels[r.RiskAssessment.RiskLevel] {
		fail("risk_assessment.risk_level: invalid value %q", r.RiskAssessment.RiskLevel)
	}
	if !domain.ValidDecisions[r.RiskAssessment.FinalDecision] {
		fail("risk_assessment.final_decision: invalid value %q", r.RiskAssessment.FinalDecision)
	}

	for name, c := range map[string]float64{
		"logo_verification.confidence": r.LogoVerification.Confidence,
		"template_check.confidence":    r.TemplateCheck.Confidence,
		"anomaly_detection.confidence": r.AnomalyDetection.Confidence,
	} {
		if math.IsNaN(c) || c < 0 || c > 1 {
			fail("%s: %v outside [0,1]", name, c)
		}
	}
	if s := r.RiskAssessment.FraudScore; s < 0 || s > 100 {
		fail("risk_assessment.fraud_score: %d outside [0,100]", s)
	}
	if t := r.PriceCheck.TotalOverpricing; math.IsNaN(t) || t < 0 {
		fail("price_check.total_overpricing: %v is negative", t)
	}

	if r.TemplateCheck.MissingFields == nil {
		fail("template_check.missing_fields: missing")
	}
	if r.AnomalyDetection.SuspiciousRegions == nil {
		fail("anomaly_detection.suspicious_regions: missing")
	}
	if r.PriceCheck.ItemsReviewed == nil {
		fail("price_check.items_reviewed: missing")
	}
	for i, item := range r.PriceCheck.ItemsReviewed {
		if item.Quantity < 1 {
			fail("price_check.items_reviewed[%d].quantity: %d is not positive", i, item.Quantity)
		}
		if item.InvoicePrice < 0 {
			fail("price_check.items_reviewed[%d].invoice_price: %v is negative", i, item.InvoicePrice)
		}
		if mp := item.EstimatedMarketPrice; mp.Valid && mp.Value < 0 {
			fail("price_check.items_reviewed[%d].estimated_market_price: %v is negative", i, mp.Value)
		}
		if !domain.ValidItemStatuses[item.Status] {
			fail("price_check.items_reviewed[%d].status: invalid value %q", i, item.Status)
		}
	}
	if r.Summary == "" {
		fail("summary: missing")
	}
	return errors.Join(errs...)
}
