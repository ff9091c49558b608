package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"docforensics/internal/port"
)

// MockAlertSender is a mock implementation of port.AlertSender.
type MockAlertSender struct {
	mock.Mock
}

func (m *MockAlertSender) SendRiskAlert(ctx context.Context, alert port.RiskAlert) error {
	args := m.Called(ctx, alert)
	return args.Error(0)
}
