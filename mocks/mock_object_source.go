package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"docforensics/internal/port"
)

// MockObjectSource is a mock implementation of port.ObjectSource.
type MockObjectSource struct {
	mock.Mock
}

func (m *MockObjectSource) Download(ctx context.Context, bucket, key string) (*port.DownloadOutput, error) {
	args := m.Called(ctx, bucket, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*port.DownloadOutput), args.Error(1)
}
