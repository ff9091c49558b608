package forensic

import (
	"fmt"
	"math"

	"docforensics/internal/domain"
)

// Section weights used to derive the fraud score from per-section risk.
const (
	WeightLogo     = 0.20
	WeightTemplate = 0.15
	WeightAnomaly  = 0.20
	WeightCompany  = 0.15
	WeightPrice    = 0.30
)

// RiskLevelForScore buckets a 0-100 fraud score: 0-25 Low, 26-50 Medium,
// 51-75 High, 76-100 Critical. Out-of-range scores are clamped first.
func RiskLevelForScore(score int) domain.RiskLevel {
	switch s := ClampScore(score); {
	case s <= 25:
		return domain.RiskLevelLow
	case s <= 50:
		return domain.RiskLevelMedium
	case s <= 75:
		return domain.RiskLevelHigh
	default:
		return domain.RiskLevelCritical
	}
}

// DecisionForLevel maps a risk level to its recommended action.
func DecisionForLevel(level domain.RiskLevel) domain.Decision {
	switch level {
	case domain.RiskLevelLow:
		return domain.DecisionAccept
	case domain.RiskLevelHigh, domain.RiskLevelCritical:
		return domain.DecisionReject
	default:
		return domain.DecisionReviewManually
	}
}

// DecisionForScore is DecisionForLevel(RiskLevelForScore(score)).
func DecisionForScore(score int) domain.Decision {
	return DecisionForLevel(RiskLevelForScore(score))
}

// WeightedFraudScore combines per-section risk into a single 0-100 score.
func WeightedFraudScore(b domain.ScoreBreakdown) int {
	total := WeightLogo*float64(ClampScore(b.Logo)) +
		WeightTemplate*float64(ClampScore(b.Template)) +
		WeightAnomaly*float64(ClampScore(b.Anomaly)) +
		WeightCompany*float64(ClampScore(b.Company)) +
		WeightPrice*float64(ClampScore(b.Price))
	return ClampScore(int(math.Round(total)))
}

// ClampScore limits a score to [0, 100].
func ClampScore(score int) int {
	return min(max(score, 0), 100)
}

// CheckConsistency reports where the supplied risk assessment disagrees with
// the canonical score mapping. It never changes the result.
func CheckConsistency(r domain.ForensicResult) []string {
	ra := r.RiskAssessment
	var warnings []string

	if want := RiskLevelForScore(ra.FraudScore); ra.RiskLevel != want {
		warnings = append(warnings, fmt.Sprintf(
			"risk_level %q does not match fraud_score %d (expected %q)", ra.RiskLevel, ra.FraudScore, want))
	}
	if want := DecisionForLevel(ra.RiskLevel); ra.FinalDecision != want {
		warnings = append(warnings, fmt.Sprintf(
			"final_decision %q does not match risk_level %q (expected %q)", ra.FinalDecision, ra.RiskLevel, want))
	}
	if b := ra.Detail.ScoreBreakdown; !b.IsZero() {
		if weighted := WeightedFraudScore(b); abs(weighted-ra.FraudScore) > 1 {
			warnings = append(warnings, fmt.Sprintf(
				"weighted score breakdown totals %d but fraud_score is %d", weighted, ra.FraudScore))
		}
	}
	return warnings
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
