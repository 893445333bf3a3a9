package memory

import (
	"fmt"
	"testing"
	"time"

	"medinabot/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entry(userID int64, action string) domain.ActivityEntry {
	return domain.ActivityEntry{UserID: userID, Action: action, At: time.Now()}
}

func TestActivityLog_AppendAndRecent(t *testing.T) {
	log := NewActivityLog(10)

	require.NoError(t, log.Append(entry(1, "a")))
	require.NoError(t, log.Append(entry(1, "b")))
	require.NoError(t, log.Append(entry(2, "other")))

	entries, err := log.Recent(1, 0)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "a", entries[0].Action)
	assert.Equal(t, "b", entries[1].Action)
}

func TestActivityLog_RecentLimit(t *testing.T) {
	log := NewActivityLog(10)
	for i := 0; i < 5; i++ {
		require.NoError(t, log.Append(entry(1, fmt.Sprint(i))))
	}

	entries, err := log.Recent(1, 2)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "3", entries[0].Action)
	assert.Equal(t, "4", entries[1].Action)
}

func TestActivityLog_Bounded(t *testing.T) {
	log := NewActivityLog(3)
	for i := 0; i < 7; i++ {
		require.NoError(t, log.Append(entry(1, fmt.Sprint(i))))
	}

	entries, err := log.Recent(1, 0)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "4", entries[0].Action)
	assert.Equal(t, "5", entries[1].Action)
	assert.Equal(t, "6", entries[2].Action)

	entries, err = log.Recent(1, 2)
	require.NoError(t, err)
	assert.Equal(t, "5", entries[0].Action)
	assert.Equal(t, "6", entries[1].Action)
}

func TestActivityLog_UnknownUser(t *testing.T) {
	log := NewActivityLog(0)

	entries, err := log.Recent(99, 5)

	assert.NoError(t, err)
	assert.Empty(t, entries)
}
