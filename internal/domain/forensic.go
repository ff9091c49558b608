package domain

// DocumentType is the classifier's view of what kind of document was uploaded.
type DocumentType string

const (
	DocumentTypeInvoice DocumentType = "invoice"
	DocumentTypeReceipt DocumentType = "receipt"
	DocumentTypeUnknown DocumentType = "unknown"
)

// LogoStatus is the outcome of the logo authenticity check.
type LogoStatus string

const (
	LogoStatusVerified     LogoStatus = "verified"
	LogoStatusUnverified   LogoStatus = "unverified"
	LogoStatusNotFound     LogoStatus = "not_found"
	LogoStatusInconclusive LogoStatus = "inconclusive"
)

// CompanyStatus is the outcome of the issuing-company lookup.
type CompanyStatus string

const (
	CompanyStatusVerified     CompanyStatus = "verified"
	CompanyStatusUnverified   CompanyStatus = "unverified"
	CompanyStatusInconclusive CompanyStatus = "inconclusive"
)

// PriceStatus is the overall verdict of the price check.
type PriceStatus string

const (
	PriceStatusValid        PriceStatus = "valid"
	PriceStatusSuspicious   PriceStatus = "suspicious"
	PriceStatusInconclusive PriceStatus = "inconclusive"
)

// ItemStatus is the per-line-item price verdict.
type ItemStatus string

const (
	ItemStatusValid        ItemStatus = "valid"
	ItemStatusInflated     ItemStatus = "inflated"
	ItemStatusInconclusive ItemStatus = "inconclusive"
)

// RiskLevel buckets the fraud score.
type RiskLevel string

const (
	RiskLevelLow      RiskLevel = "Low"
	RiskLevelMedium   RiskLevel = "Medium"
	RiskLevelHigh     RiskLevel = "High"
	RiskLevelCritical RiskLevel = "Critical"
)

// Decision is the recommended action for the document.
type Decision string

const (
	DecisionAccept         Decision = "Accept"
	DecisionReviewManually Decision = "Review Manually"
	DecisionReject         Decision = "Reject"
)

// Valid enum values, used by schema validation.
var (
	ValidDocumentTypes = map[DocumentType]bool{
		DocumentTypeInvoice: true,
		DocumentTypeReceipt: true,
		DocumentTypeUnknown: true,
	}
	ValidLogoStatuses = map[LogoStatus]bool{
		LogoStatusVerified:     true,
		LogoStatusUnverified:   true,
		LogoStatusNotFound:     true,
		LogoStatusInconclusive: true,
	}
	ValidCompanyStatuses = map[CompanyStatus]bool{
		CompanyStatusVerified:     true,
		CompanyStatusUnverified:   true,
		CompanyStatusInconclusive: true,
	}
	ValidPriceStatuses = map[PriceStatus]bool{
		PriceStatusValid:        true,
		PriceStatusSuspicious:   true,
		PriceStatusInconclusive: true,
	}
	ValidItemStatuses = map[ItemStatus]bool{
		ItemStatusValid:        true,
		ItemStatusInflated:     true,
		ItemStatusInconclusive: true,
	}
	ValidRiskLevels = map[RiskLevel]bool{
		RiskLevelLow:      true,
		RiskLevelMedium:   true,
		RiskLevelHigh:     true,
		RiskLevelCritical: true,
	}
	ValidDecisions = map[Decision]bool{
		DecisionAccept:         true,
		DecisionReviewManually: true,
		DecisionReject:         true,
	}
)

// ForensicResult is the canonical, fully populated verdict for one analysis run.
// Every field is always set; nullable values use the Null* wrappers so readers
// never need a nil check.
type ForensicResult struct {
	DocumentType        DocumentType        `json:"document_type"`
	LogoVerification    LogoVerification    `json:"logo_verification"`
	TemplateCheck       TemplateCheck       `json:"template_check"`
	AnomalyDetection    AnomalyDetection    `json:"anomaly_detection"`
	CompanyVerification CompanyVerification `json:"company_verification"`
	PriceCheck          PriceCheck          `json:"price_check"`
	RiskAssessment      RiskAssessment      `json:"risk_assessment"`
	Summary             string              `json:"summary"`
}

// LogoVerification holds the logo authenticity section.
type LogoVerification struct {
	Status        LogoStatus `json:"status"`
	CompanyName   string     `json:"company_name"`
	LogoReference NullString `json:"logo_reference"`
	Confidence    float64    `json:"confidence"`
	Detail        LogoDetail `json:"detail"`
}

// LogoDetail carries diagnostics for the logo check.
type LogoDetail struct {
	Notes             string `json:"notes"`
	LogoDetected      bool   `json:"logo_detected"`
	MatchesKnownBrand bool   `json:"matches_known_brand"`
	NeedsManualReview bool   `json:"needs_manual_review"`
}

// TemplateCheck holds the document layout section.
type TemplateCheck struct {
	StandardFormat bool           `json:"standard_format"`
	MissingFields  []string       `json:"missing_fields"`
	Confidence     float64        `json:"confidence"`
	Detail         TemplateDetail `json:"detail"`
}

// TemplateDetail carries diagnostics for the template check.
type TemplateDetail struct {
	Notes             string `json:"notes"`
	LayoutConsistent  bool   `json:"layout_consistent"`
	TaxFieldsPresent  bool   `json:"tax_fields_present"`
	NeedsManualReview bool   `json:"needs_manual_review"`
}

// AnomalyDetection holds the image tampering section.
type AnomalyDetection struct {
	TamperingDetected bool          `json:"tampering_detected"`
	SuspiciousRegions []string      `json:"suspicious_regions"`
	Confidence        float64       `json:"confidence"`
	Detail            AnomalyDetail `json:"detail"`
}

// AnomalyDetail carries diagnostics for the anomaly check.
type AnomalyDetail struct {
	Notes                string `json:"notes"`
	FontInconsistency    bool   `json:"font_inconsistency"`
	AlignmentIssues      bool   `json:"alignment_issues"`
	CompressionArtifacts bool   `json:"compression_artifacts"`
	NeedsManualReview    bool   `json:"needs_manual_review"`
}

// CompanyVerification holds the issuing-company section.
type CompanyVerification struct {
	Status  CompanyStatus `json:"status"`
	Matched NullBool      `json:"matched"`
	Website NullString    `json:"website"`
	Detail  CompanyDetail `json:"detail"`
}

// CompanyDetail carries diagnostics for the company check.
type CompanyDetail struct {
	Notes             string `json:"notes"`
	RegistrationFound bool   `json:"registration_found"`
	AddressVerified   bool   `json:"address_verified"`
	ContactVerified   bool   `json:"contact_verified"`
	NeedsManualReview bool   `json:"needs_manual_review"`
}

// PriceCheck holds the line-item pricing section.
type PriceCheck struct {
	ItemsReviewed    []LineItem  `json:"items_reviewed"`
	TotalOverpricing float64     `json:"total_overpricing"`
	OverallStatus    PriceStatus `json:"overall_status"`
	Detail           PriceDetail `json:"detail"`
}

// PriceDetail carries diagnostics for the price check.
type PriceDetail struct {
	Notes               string `json:"notes"`
	Currency            string `json:"currency"`
	MarketDataAvailable bool   `json:"market_data_available"`
	NeedsManualReview   bool   `json:"needs_manual_review"`
}

// LineItem is one reviewed invoice row.
type LineItem struct {
	ItemName             string     `json:"item_name"`
	Quantity             int        `json:"quantity"`
	InvoicePrice         float64    `json:"invoice_price"`
	EstimatedMarketPrice NullFloat  `json:"estimated_market_price"`
	MarginPercentage     Margin     `json:"margin_percentage"`
	Status               ItemStatus `json:"status"`
}

// RiskAssessment holds the aggregate verdict.
type RiskAssessment struct {
	FraudScore    int        `json:"fraud_score"`
	RiskLevel     RiskLevel  `json:"risk_level"`
	FinalDecision Decision   `json:"final_decision"`
	Detail        RiskDetail `json:"detail"`
}

// RiskDetail carries the reasoning behind the fraud score.
type RiskDetail struct {
	Reasoning         string         `json:"reasoning"`
	ScoreBreakdown    ScoreBreakdown `json:"score_breakdown"`
	NeedsManualReview bool           `json:"needs_manual_review"`
}

// ScoreBreakdown holds per-section risk contributions, each 0-100.
type ScoreBreakdown struct {
	Logo     int `json:"logo"`
	Template int `json:"template"`
	Anomaly  int `json:"anomaly"`
	Company  int `json:"company"`
	Price    int `json:"price"`
}

// IsZero reports whether no component was supplied.
func (b ScoreBreakdown) IsZero() bool {
	return b == ScoreBreakdown{}
}
