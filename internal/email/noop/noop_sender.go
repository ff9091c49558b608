package noop

import (
	"context"
	"log/slog"

	"docforensics/internal/logging"
	"docforensics/internal/port"
)

type noopSender struct {
	log *slog.Logger
}

// NewNoopSender creates an AlertSender that only logs the alert.
func NewNoopSender() port.AlertSender {
	return &noopSender{log: logging.New("email.noop")}
}

func (s *noopSender) SendRiskAlert(_ context.Context, alert port.RiskAlert) error {
	s.log.Info("risk alert (not sent)",
		"to", alert.ToEmail,
		"report_id", alert.ReportID,
		"file_name", alert.FileName,
		"fraud_score", alert.FraudScore,
		"risk_level", alert.RiskLevel,
		"decision", alert.Decision,
	)
	return nil
}
