package llm

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockChat is a mock implementation of Chat using testify/mock.
type MockChat struct {
	mock.Mock
}

func (m *MockChat) Complete(ctx context.Context, req Request) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}

func (m *MockChat) CallTool(ctx context.Context, req ToolRequest) (ToolCall, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(ToolCall), args.Error(1)
}
