package memory

import (
	"testing"

	"medinabot/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestPendingStore_SetReplaces(t *testing.T) {
	store := NewPendingStore()

	store.Set(1, domain.AwaitTargetForBlock{})
	store.Set(1, domain.AwaitLimitValues{TargetID: 7})

	action, ok := store.Get(1)
	assert.True(t, ok)
	assert.Equal(t, domain.AwaitLimitValues{TargetID: 7}, action)
}

func TestPendingStore_Clear(t *testing.T) {
	store := NewPendingStore()
	store.Set(1, domain.AwaitTargetForDetail{})

	store.Clear(1)

	_, ok := store.Get(1)
	assert.False(t, ok)
}

func TestPendingStore_SetNilClears(t *testing.T) {
	store := NewPendingStore()
	store.Set(1, domain.AwaitTargetForDetail{})

	store.Set(1, nil)

	_, ok := store.Get(1)
	assert.False(t, ok)
}

func TestPendingStore_OperatorsIsolated(t *testing.T) {
	store := NewPendingStore()
	store.Set(1, domain.AwaitTargetForBlock{})

	_, ok := store.Get(2)
	assert.False(t, ok)
}
