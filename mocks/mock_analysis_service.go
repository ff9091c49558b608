package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"docforensics/internal/domain"
	"docforensics/internal/service"
)

// MockAnalysisService is a mock implementation of service.AnalysisService.
type MockAnalysisService struct {
	mock.Mock
}

func (m *MockAnalysisService) Ready() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockAnalysisService) Analyze(ctx context.Context, input service.AnalyzeInput) (*domain.Analysis, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Analysis), args.Error(1)
}

func (m *MockAnalysisService) Current() (*domain.Analysis, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Analysis), args.Error(1)
}
