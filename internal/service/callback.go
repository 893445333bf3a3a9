package service

import (
	"fmt"
	"strconv"
	"strings"

	"medinabot/internal/domain"
)

// Callback actions carried by inline admin buttons as "<action>_<userID>"
const (
	CallbackDetail    = "detail"
	CallbackSetLimit  = "setlimit"
	CallbackUnlimited = "unlimited"
	CallbackBlock     = "block"
	CallbackUnblock   = "unblock"
	CallbackCancel    = "cancel"
)

var targetCallbacks = map[string]bool{
	CallbackDetail:    true,
	CallbackSetLimit:  true,
	CallbackUnlimited: true,
	CallbackBlock:     true,
	CallbackUnblock:   true,
}

// CallbackData builds the callback id of a target-bound button
func CallbackData(action string, userID int64) string {
	return fmt.Sprintf("%s_%d", action, userID)
}

// ParseCallback splits a callback id into its action and target.
// CallbackCancel carries no target.
func ParseCallback(data string) (string, int64, error) {
	if data == CallbackCancel {
		return CallbackCancel, 0, nil
	}

	action, rawID, found := strings.Cut(data, "_")
	if !found || !targetCallbacks[action] {
		return "", 0, fmt.Errorf("unknown callback %q", data)
	}

	id, err := parseUserID(rawID)
	if err != nil {
		return "", 0, err
	}
	return action, id, nil
}

func parseUserID(text string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(text), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", domain.ErrInvalidUserID, text)
	}
	return id, nil
}

// ParseLimits parses "<fatwaLimit> <questionLimit>" as two non-negative integers
func ParseLimits(text string) (int, int, error) {
	fields := strings.Fields(text)
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("%w: expected 2 values, got %d", domain.ErrInvalidLimits, len(fields))
	}

	values := make([]int, 2)
	for i, field := range fields {
		v, err := strconv.Atoi(field)
		if err != nil {
			return 0, 0, fmt.Errorf("%w: %q is not a number", domain.ErrInvalidLimits, field)
		}
		if v < 0 {
			return 0, 0, fmt.Errorf("%w: %d is negative", domain.ErrInvalidLimits, v)
		}
		values[i] = v
	}
	return values[0], values[1], nil
}
