package forensic

import "docforensics/internal/domain"

// Default fraud score and its bucket when the classifier supplies nothing usable.
const (
	DefaultFraudScore = 50
	DefaultRiskLevel  = domain.RiskLevelMedium
	DefaultDecision   = domain.DecisionReviewManually
)

// Default returns the neutral, inconclusive verdict used as the merge base.
// Every enum is at its most cautious value, every confidence is 0, every list
// is empty, and only the needs-manual-review flags are set.
func Default() domain.ForensicResult {
	return domain.ForensicResult{
		DocumentType: domain.DocumentTypeUnknown,
		LogoVerification: domain.LogoVerification{
			Status:      domain.LogoStatusInconclusive,
			CompanyName: "",
			Confidence:  0,
			Detail: domain.LogoDetail{
				NeedsManualReview: true,
			},
		},
		TemplateCheck: domain.TemplateCheck{
			StandardFormat: false,
			MissingFields:  []string{},
			Detail: domain.TemplateDetail{
				NeedsManualReview: true,
			},
		},
		AnomalyDetection: domain.AnomalyDetection{
			TamperingDetected: false,
			SuspiciousRegions: []string{},
			Detail: domain.AnomalyDetail{
				NeedsManualReview: true,
			},
		},
		CompanyVerification: domain.CompanyVerification{
			Status: domain.CompanyStatusInconclusive,
			Detail: domain.CompanyDetail{
				NeedsManualReview: true,
			},
		},
		PriceCheck: domain.PriceCheck{
			ItemsReviewed:    []domain.LineItem{},
			TotalOverpricing: 0,
			OverallStatus:    domain.PriceStatusInconclusive,
			Detail: domain.PriceDetail{
				NeedsManualReview: true,
			},
		},
		RiskAssessment: domain.RiskAssessment{
			FraudScore:    DefaultFraudScore,
			RiskLevel:     DefaultRiskLevel,
			FinalDecision: DefaultDecision,
			Detail: domain.RiskDetail{
				NeedsManualReview: true,
			},
		},
		Summary: "Automated analysis was inconclusive; manual review is required.",
	}
}
