package port

import "context"

// RiskAlert summarizes a rejected document for the alert recipient.
type RiskAlert struct {
	ToEmail    string
	ReportID   string
	FileName   string
	FraudScore int
	RiskLevel  string
	Decision   string
	Summary    string
}

// AlertSender defines the contract for delivering high-risk alerts.
type AlertSender interface {
	SendRiskAlert(ctx context.Context, alert RiskAlert) error
}
