package noop_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"docforensics/internal/email/noop"
	"docforensics/internal/logging"
	"docforensics/internal/port"
)

func TestNoopSender_LogsAlert(t *testing.T) {
	var buf bytes.Buffer
	logging.Init(slog.LevelInfo, "text", &buf)

	err := noop.NewNoopSender().SendRiskAlert(context.Background(), port.RiskAlert{
		ToEmail:    "ops@example.com",
		ReportID:   "FR-1",
		FraudScore: 90,
	})

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "report_id=FR-1")
	assert.Contains(t, buf.String(), "component=email.noop")
}
