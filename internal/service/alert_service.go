package service

import (
	"context"
	"log/slog"

	"docforensics/internal/domain"
	"docforensics/internal/logging"
	"docforensics/internal/port"
)

// AlertService notifies a reviewer about rejected documents.
type AlertService interface {
	NotifyIfRejected(ctx context.Context, analysis *domain.Analysis) bool
}

type alertService struct {
	sender    port.AlertSender
	recipient string
	log       *slog.Logger
}

// NewAlertService creates an AlertService. With an empty recipient no alert is sent.
func NewAlertService(sender port.AlertSender, recipient string) AlertService {
	return &alertService{
		sender:    sender,
		recipient: recipient,
		log:       logging.New("service.alert"),
	}
}

// NotifyIfRejected sends an alert when the analysis recommends rejection and
// reports whether one was delivered. Delivery failures are logged only.
func (s *alertService) NotifyIfRejected(ctx context.Context, analysis *domain.Analysis) bool {
	risk := analysis.Result.RiskAssessment
	if s.recipient == "" || risk.FinalDecision != domain.DecisionReject {
		return false
	}

	err := s.sender.SendRiskAlert(ctx, port.RiskAlert{
		ToEmail:    s.recipient,
		ReportID:   analysis.ReportID,
		FileName:   analysis.FileName,
		FraudScore: risk.FraudScore,
		RiskLevel:  string(risk.RiskLevel),
		Decision:   string(risk.FinalDecision),
		Summary:    analysis.Result.Summary,
	})
	if err != nil {
		s.log.Warn("failed to send risk alert", "report_id", analysis.ReportID, "error", err)
		return false
	}
	return true
}
