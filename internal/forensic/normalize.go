package forensic

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"docforensics/internal/domain"
)

var (
	leadingFence  = regexp.MustCompile("^\\s*```[A-Za-z0-9_+-]*[ \\t]*\\r?\\n?")
	trailingFence = regexp.MustCompile("\\r?\\n?[ \\t]*```\\s*$")

	errTrailingData = errors.New("trailing data after JSON value")
)

var canonicalSections = []string{
	"document_type", "logo_verification", "template_check", "anomaly_detection",
	"company_verification", "price_check", "risk_assessment", "summary",
}

var envelopeKeys = []string{"analysis", "data"}

var (
	documentTypes = map[string]domain.DocumentType{
		"invoice": domain.DocumentTypeInvoice,
		"receipt": domain.DocumentTypeReceipt,
		"unknown": domain.DocumentTypeUnknown,
		"other":   domain.DocumentTypeUnknown,
	}
	logoStatuses = map[string]domain.LogoStatus{
		"verified":     domain.LogoStatusVerified,
		"unverified":   domain.LogoStatusUnverified,
		"suspicious":   domain.LogoStatusUnverified,
		"not_found":    domain.LogoStatusNotFound,
		"notfound":     domain.LogoStatusNotFound,
		"missing":      domain.LogoStatusNotFound,
		"inconclusive": domain.LogoStatusInconclusive,
		"unknown":      domain.LogoStatusInconclusive,
	}
	companyStatuses = map[string]domain.CompanyStatus{
		"verified":     domain.CompanyStatusVerified,
		"unverified":   domain.CompanyStatusUnverified,
		"suspicious":   domain.CompanyStatusUnverified,
		"not_found":    domain.CompanyStatusUnverified,
		"inconclusive": domain.CompanyStatusInconclusive,
		"unknown":      domain.CompanyStatusInconclusive,
	}
	priceStatuses = map[string]domain.PriceStatus{
		"valid":        domain.PriceStatusValid,
		"suspicious":   domain.PriceStatusSuspicious,
		"fraudulent":   domain.PriceStatusSuspicious,
		"inflated":     domain.PriceStatusSuspicious,
		"inconclusive": domain.PriceStatusInconclusive,
		"unknown":      domain.PriceStatusInconclusive,
	}
	itemStatuses = map[string]domain.ItemStatus{
		"valid":        domain.ItemStatusValid,
		"inflated":     domain.ItemStatusInflated,
		"overpriced":   domain.ItemStatusInflated,
		"suspicious":   domain.ItemStatusInflated,
		"inconclusive": domain.ItemStatusInconclusive,
		"unknown":      domain.ItemStatusInconclusive,
	}
	riskLevels = map[string]domain.RiskLevel{
		"low":      domain.RiskLevelLow,
		"medium":   domain.RiskLevelMedium,
		"moderate": domain.RiskLevelMedium,
		"high":     domain.RiskLevelHigh,
		"critical": domain.RiskLevelCritical,
	}
	decisions = map[string]domain.Decision{
		"accept":              domain.DecisionAccept,
		"accepted":            domain.DecisionAccept,
		"approve":             domain.DecisionAccept,
		"approved":            domain.DecisionAccept,
		"review_manually":     domain.DecisionReviewManually,
		"manual_review":       domain.DecisionReviewManually,
		"review":              domain.DecisionReviewManually,
		"needs_review":        domain.DecisionReviewManually,
		"needs_manual_review": domain.DecisionReviewManually,
		"needs_manual_check":  domain.DecisionReviewManually,
		"manual_check":        domain.DecisionReviewManually,
		"reject":              domain.DecisionReject,
		"rejected":            domain.DecisionReject,
		"decline":             domain.DecisionReject,
		"declined":            domain.DecisionReject,
	}
)

// StripCodeFences removes a leading ```lang line and a trailing ``` marker.
func StripCodeFences(text string) string {
	text = leadingFence.ReplaceAllString(text, "")
	text = trailingFence.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}

// Normalize projects raw classifier output onto a Partial. It never fails:
// undecodable text yields an empty Partial, and sections that cannot be read
// are left absent. An internal fault keeps the sections built before it.
func Normalize(raw string) (p *Partial) {
	p = &Partial{}
	defer func() {
		_ = recover()
	}()

	v, ok := decode(StripCodeFences(raw))
	if !ok {
		return p
	}
	project(p, v)
	return p
}

// NormalizeBytes is Normalize for a byte payload.
func NormalizeBytes(raw []byte) *Partial {
	return Normalize(string(raw))
}

func decode(text string) (any, bool) {
	if v, err := decodeJSON(text); err == nil {
		return v, true
	}
	start, end := strings.IndexByte(text, '{'), strings.LastIndexByte(text, '}')
	if start >= 0 && end > start {
		if v, err := decodeJSON(text[start : end+1]); err == nil {
			return v, true
		}
	}
	return nil, false
}

func decodeJSON(text string) (any, error) {
	dec := json.NewDecoder(strings.NewReader(text))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("decoding classifier output: %w", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errTrailingData
	}
	return v, nil
}

func project(p *Partial, v any) {
	var m map[string]any
	switch t := v.(type) {
	case []any:
		if items := lineItems(t); len(items) > 0 {
			p.PriceCheck = &PartialPriceCheck{ItemsReviewed: items}
		}
		return
	case map[string]any:
		m = unwrap(t)
	default:
		return
	}

	if !hasAny(m, canonicalSections...) {
		if hasAny(m, "items_reviewed", "total_overpricing", "overall_status") {
			p.PriceCheck = priceSection(m)
		}
		return
	}

	p.DocumentType = enumValue(m["document_type"], documentTypes)
	if s, ok := object(m, "logo_verification"); ok {
		p.LogoVerification = logoSection(s)
	}
	if s, ok := object(m, "template_check"); ok {
		p.TemplateCheck = templateSection(s)
	}
	if s, ok := object(m, "anomaly_detection"); ok {
		p.AnomalyDetection = anomalySection(s)
	}
	if s, ok := object(m, "company_verification"); ok {
		p.CompanyVerification = companySection(s)
	}
	if s, ok := object(m, "price_check"); ok {
		p.PriceCheck = priceSection(s)
	} else if items, ok := m["price_check"].([]any); ok {
		p.PriceCheck = present(&PartialPriceCheck{ItemsReviewed: lineItems(items)})
	}
	if s, ok := object(m, "risk_assessment"); ok {
		p.RiskAssessment = riskSection(s)
	}
	p.Summary = nonEmptyString(m["summary"])
}

// unwrap descends through {"analysis": ...} and {"data": ...} envelopes.
func unwrap(m map[string]any) map[string]any {
	for range 3 {
		if hasAny(m, canonicalSections...) {
			return m
		}
		inner, found := map[string]any(nil), false
		for _, k := range envelopeKeys {
			if o, ok := object(m, k); ok {
				inner, found = o, true
				break
			}
		}
		if !found {
			return m
		}
		m = inner
	}
	return m
}

func hasAny(m map[string]any, keys ...string) bool {
	_, ok := firstOf(m, keys...)
	return ok
}

func logoSection(m map[string]any) *PartialLogoVerification {
	ref, hasRef := firstOf(m, "logo_reference", "logo_url_checked")
	conf, _ := firstOf(m, "confidence", "confidence_score")
	return present(&PartialLogoVerification{
		Status:        enumValue(m["status"], logoStatuses),
		CompanyName:   nonEmptyString(m["company_name"]),
		LogoReference: nullString(ref, hasRef),
		Confidence:    confidence(conf),
		Detail:        detail[PartialLogoDetail](m),
	})
}

func templateSection(m map[string]any) *PartialTemplateCheck {
	conf, _ := firstOf(m, "confidence", "confidence_score")
	return present(&PartialTemplateCheck{
		StandardFormat: boolPtr(m["standard_format"]),
		MissingFields:  stringList(m["missing_fields"]),
		Confidence:     confidence(conf),
		Detail:         detail[PartialTemplateDetail](m),
	})
}

func anomalySection(m map[string]any) *PartialAnomalyDetection {
	conf, _ := firstOf(m, "confidence", "confidence_score")
	return present(&PartialAnomalyDetection{
		TamperingDetected: boolPtr(m["tampering_detected"]),
		SuspiciousRegions: stringList(m["suspicious_regions"]),
		Confidence:        confidence(conf),
		Detail:            detail[PartialAnomalyDetail](m),
	})
}

func companySection(m map[string]any) *PartialCompanyVerification {
	matched, hasMatched := m["matched"]
	site, hasSite := firstOf(m, "website", "website_checked")
	return present(&PartialCompanyVerification{
		Status:  enumValue(m["status"], companyStatuses),
		Matched: nullBool(matched, hasMatched),
		Website: nullString(site, hasSite),
		Detail:  detail[PartialCompanyDetail](m),
	})
}

func priceSection(m map[string]any) *PartialPriceCheck {
	items, _ := m["items_reviewed"].([]any)
	return present(&PartialPriceCheck{
		ItemsReviewed:    lineItems(items),
		TotalOverpricing: nonNegative(m["total_overpricing"]),
		OverallStatus:    enumValue(m["overall_status"], priceStatuses),
		Detail:           detail[PartialPriceDetail](m),
	})
}

func riskSection(m map[string]any) *PartialRiskAssessment {
	return present(&PartialRiskAssessment{
		FraudScore:    score(m["fraud_score"]),
		RiskLevel:     enumValue(m["risk_level"], riskLevels),
		FinalDecision: decision(m["final_decision"]),
		Detail:        detail[PartialRiskDetail](m),
	})
}

// decision matches the leading clause of free text such as
// "REJECT - likely forged" against whole decision phrases. Anything else,
// including negated phrases like "do not accept", is absent.
func decision(v any) *domain.Decision {
	s, ok := v.(string)
	if !ok {
		return nil
	}
	head, _, _ := strings.Cut(s, " - ")
	if i := strings.IndexAny(head, ":;,.("); i >= 0 {
		head = head[:i]
	}
	return enumValue(head, decisions)
}

func lineItems(list []any) []domain.LineItem {
	var out []domain.LineItem
	for _, e := range list {
		if m, ok := e.(map[string]any); ok {
			out = append(out, lineItem(m))
		}
	}
	return out
}

func lineItem(m map[string]any) domain.LineItem {
	item := domain.LineItem{
		Quantity: 1,
		Status:   domain.ItemStatusInconclusive,
	}
	if name, ok := firstOf(m, "item_name", "name", "description"); ok {
		item.ItemName, _ = asString(name)
	}
	if q, ok := asInt(m["quantity"]); ok && q > 1 {
		item.Quantity = q
	}
	if price, ok := firstOf(m, "invoice_price", "price", "unit_price"); ok {
		if f := nonNegative(price); f != nil {
			item.InvoicePrice = *f
		}
	}
	if f, ok := asFloat(m["estimated_market_price"]); ok && f >= 0 {
		item.EstimatedMarketPrice = domain.SomeFloat(f)
	}
	item.MarginPercentage = margin(m["margin_percentage"])
	if st := enumValue(m["status"], itemStatuses); st != nil {
		item.Status = *st
	}
	return item
}

// margin keeps numbers at two decimals and anything else as opaque text.
func margin(v any) domain.Margin {
	switch t := v.(type) {
	case nil:
		return domain.Margin{}
	case json.Number:
		if f, err := t.Float64(); err == nil {
			return domain.NewMargin(f)
		}
		return domain.MarginText(t.String())
	case float64:
		return domain.NewMargin(t)
	case string:
		if s := strings.TrimSpace(t); s != "" {
			return domain.MarginText(s)
		}
		return domain.Margin{}
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return domain.Margin{}
		}
		return domain.MarginText(string(b))
	}
}
