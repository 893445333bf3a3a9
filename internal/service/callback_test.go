package service

import (
	"testing"

	"medinabot/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestParseCallback(t *testing.T) {
	tests := []struct {
		name           string
		data           string
		expectedAction string
		expectedID     int64
		expectedError  bool
	}{
		{name: "detail", data: "detail_123", expectedAction: CallbackDetail, expectedID: 123},
		{name: "set limit", data: "setlimit_7092312411", expectedAction: CallbackSetLimit, expectedID: 7092312411},
		{name: "unlimited", data: "unlimited_5", expectedAction: CallbackUnlimited, expectedID: 5},
		{name: "block", data: "block_5", expectedAction: CallbackBlock, expectedID: 5},
		{name: "unblock", data: "unblock_5", expectedAction: CallbackUnblock, expectedID: 5},
		{name: "cancel", data: "cancel", expectedAction: CallbackCancel},
		{name: "unknown action", data: "delete_5", expectedError: true},
		{name: "missing id", data: "block_", expectedError: true},
		{name: "non numeric id", data: "block_abc", expectedError: true},
		{name: "no separator", data: "block", expectedError: true},
		{name: "empty", data: "", expectedError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, id, err := ParseCallback(tt.data)

			if tt.expectedError {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedAction, action)
			assert.Equal(t, tt.expectedID, id)
		})
	}
}

func TestCallbackData_RoundTrip(t *testing.T) {
	action, id, err := ParseCallback(CallbackData(CallbackBlock, 42))

	assert.NoError(t, err)
	assert.Equal(t, CallbackBlock, action)
	assert.Equal(t, int64(42), id)
}

func TestParseLimits(t *testing.T) {
	tests := []struct {
		name             string
		input            string
		expectedFatwa    int
		expectedQuestion int
		expectedError    bool
	}{
		{name: "valid", input: "3 7", expectedFatwa: 3, expectedQuestion: 7},
		{name: "extra whitespace", input: "  3\t 7 ", expectedFatwa: 3, expectedQuestion: 7},
		{name: "zeros", input: "0 0", expectedFatwa: 0, expectedQuestion: 0},
		{name: "missing token", input: "3", expectedError: true},
		{name: "too many tokens", input: "3 7 9", expectedError: true},
		{name: "non numeric", input: "three 7", expectedError: true},
		{name: "negative", input: "-1 7", expectedError: true},
		{name: "empty", input: "", expectedError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fatwa, question, err := ParseLimits(tt.input)

			if tt.expectedError {
				assert.ErrorIs(t, err, domain.ErrInvalidLimits)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedFatwa, fatwa)
			assert.Equal(t, tt.expectedQuestion, question)
		})
	}
}
