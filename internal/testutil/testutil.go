package testutil

import (
	"go.uber.org/zap"
)

// AdminID is the privileged id used across tests
const AdminID int64 = 1

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}
