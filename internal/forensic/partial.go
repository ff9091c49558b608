package forensic

import "docforensics/internal/domain"

// Partial is the optional-everything mirror of domain.ForensicResult. A nil
// pointer (or empty slice) means the classifier did not supply the field.
// Field names must match their canonical counterparts; Merge pairs them by name.
type Partial struct {
	DocumentType        *domain.DocumentType
	LogoVerification    *PartialLogoVerification
	TemplateCheck       *PartialTemplateCheck
	AnomalyDetection    *PartialAnomalyDetection
	CompanyVerification *PartialCompanyVerification
	PriceCheck          *PartialPriceCheck
	RiskAssessment      *PartialRiskAssessment
	Summary             *string
}

type PartialLogoVerification struct {
	Status        *domain.LogoStatus
	CompanyName   *string
	LogoReference *domain.NullString
	Confidence    *float64
	Detail        *PartialLogoDetail
}

type PartialLogoDetail struct {
	Notes             *string `json:"notes"`
	LogoDetected      *bool   `json:"logo_detected"`
	MatchesKnownBrand *bool   `json:"matches_known_brand"`
	NeedsManualReview *bool   `json:"needs_manual_review"`
}

type PartialTemplateCheck struct {
	StandardFormat *bool
	MissingFields  []string
	Confidence     *float64
	Detail         *PartialTemplateDetail
}

type PartialTemplateDetail struct {
	Notes             *string `json:"notes"`
	LayoutConsistent  *bool   `json:"layout_consistent"`
	TaxFieldsPresent  *bool   `json:"tax_fields_present"`
	NeedsManualReview *bool   `json:"needs_manual_review"`
}

type PartialAnomalyDetection struct {
	TamperingDetected *bool
	SuspiciousRegions []string
	Confidence        *float64
	Detail            *PartialAnomalyDetail
}

type PartialAnomalyDetail struct {
	Notes                *string `json:"notes"`
	FontInconsistency    *bool   `json:"font_inconsistency"`
	AlignmentIssues      *bool   `json:"alignment_issues"`
	CompressionArtifacts *bool   `json:"compression_artifacts"`
	NeedsManualReview    *bool   `json:"needs_manual_review"`
}

type PartialCompanyVerification struct {
	Status  *domain.CompanyStatus
	Matched *domain.NullBool
	Website *domain.NullString
	Detail  *PartialCompanyDetail
}

type PartialCompanyDetail struct {
	Notes             *string `json:"notes"`
	RegistrationFound *bool   `json:"registration_found"`
	AddressVerified   *bool   `json:"address_verified"`
	ContactVerified   *bool   `json:"contact_verified"`
	NeedsManualReview *bool   `json:"needs_manual_review"`
}

type PartialPriceCheck struct {
	ItemsReviewed    []domain.LineItem
	TotalOverpricing *float64
	OverallStatus    *domain.PriceStatus
	Detail           *PartialPriceDetail
}

type PartialPriceDetail struct {
	Notes               *string `json:"notes"`
	Currency            *string `json:"currency"`
	MarketDataAvailable *bool   `json:"market_data_available"`
	NeedsManualReview   *bool   `json:"needs_manual_review"`
}

type PartialRiskAssessment struct {
	FraudScore    *int
	RiskLevel     *domain.RiskLevel
	FinalDecision *domain.Decision
	Detail        *PartialRiskDetail
}

type PartialRiskDetail struct {
	Reasoning         *string                `json:"reasoning"`
	ScoreBreakdown    *PartialScoreBreakdown `json:"score_breakdown"`
	NeedsManualReview *bool                  `json:"needs_manual_review"`
}

type PartialScoreBreakdown struct {
	Logo     *int `json:"logo"`
	Template *int `json:"template"`
	Anomaly  *int `json:"anomaly"`
	Company  *int `json:"company"`
	Price    *int `json:"price"`
}

// IsEmpty reports whether no section or scalar was extracted.
func (p *Partial) IsEmpty() bool {
	return p == nil || *p == Partial{}
}

// Sections lists the names of the top-level fields that are present.
func (p *Partial) Sections() []string {
	if p == nil {
		return nil
	}
	var out []string
	add := func(present bool, name string) {
		if present {
			out = append(out, name)
		}
	}
	add(p.DocumentType != nil, "document_type")
	add(p.LogoVerification != nil, "logo_verification")
	add(p.TemplateCheck != nil, "template_check")
	add(p.AnomalyDetection != nil, "anomaly_detection")
	add(p.CompanyVerification != nil, "company_verification")
	add(p.PriceCheck != nil, "price_check")
	add(p.RiskAssessment != nil, "risk_assessment")
	add(p.Summary != nil, "summary")
	return out
}
