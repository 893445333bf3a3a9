package testutil

import (
	"context"

	"medinabot/internal/completion"
	"medinabot/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockActivitySink is a mock for ActivitySink
type MockActivitySink struct {
	mock.Mock
}

func (m *MockActivitySink) Append(ctx context.Context, entry domain.ActivityEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockActivitySink) CleanOldEntries(ctx context.Context, days int) error {
	args := m.Called(ctx, days)
	return args.Error(0)
}

// MockActivityRepository is a mock for ActivityRepository
type MockActivityRepository struct {
	mock.Mock
}

func (m *MockActivityRepository) Append(entry domain.ActivityEntry) error {
	args := m.Called(entry)
	return args.Error(0)
}

func (m *MockActivityRepository) Recent(userID int64, limit int) ([]domain.ActivityEntry, error) {
	args := m.Called(userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ActivityEntry), args.Error(1)
}

// MockCompleter is a mock for the completion client
type MockCompleter struct {
	mock.Mock
}

func (m *MockCompleter) Complete(ctx context.Context, req completion.Request) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}
