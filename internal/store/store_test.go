package store

import (
	"context"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thereayou/spyfall-lite/internal/models"
)

func TestMemorySessionStore(t *testing.T) {
	s := NewMemorySessionStore()
	ctx := context.Background()

	_, err := s.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	session := &models.Session{ID: "abc", Name: "Alice"}
	require.NoError(t, s.Put(ctx, session))

	got, err := s.Get(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, "Alice", got.Name)
	assert.NotZero(t, got.LastSeen)
}

func newTestRegistry(now *time.Time) *RoomRegistry {
	return NewRoomRegistry(func() time.Time { return *now }, rand.New(rand.NewSource(7)))
}

func TestRegistryCreateAndGet(t *testing.T) {
	now := time.UnixMilli(1_700_000_000_000)
	reg := newTestRegistry(&now)
	host := &models.Session{ID: "h1", Name: "Host"}

	room := reg.Create(host, models.DefaultSettings())
	require.Len(t, room.Code, 4)
	for _, ch := range room.Code {
		assert.Contains(t, roomCodeAlphabet, string(ch))
	}
	assert.Equal(t, models.PhaseLobby, room.Phase)
	assert.Equal(t, "h1", room.HostID)
	require.Len(t, room.Players, 1)
	assert.Equal(t, "Host", room.Players[0].Name)

	got, err := reg.Get(room.Code)
	require.NoError(t, err)
	assert.Same(t, room, got)

	// Join codes are case-insensitive.
	got, err = reg.Get(strings.ToLower(room.Code))
	require.NoError(t, err)
	assert.Same(t, room, got)

	_, err = reg.Get("ZZZZ")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRegistryCodesAreUnique(t *testing.T) {
	now := time.UnixMilli(1_700_000_000_000)
	reg := newTestRegistry(&now)
	host := &models.Session{ID: "h1", Name: "Host"}

	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		room := reg.Create(host, models.DefaultSettings())
		assert.False(t, seen[room.Code], "duplicate code %s", room.Code)
		seen[room.Code] = true
	}
}

func TestRegistrySweepsIdleRooms(t *testing.T) {
	now := time.UnixMilli(1_700_000_000_000)
	reg := newTestRegistry(&now)
	host := &models.Session{ID: "h1", Name: "Host"}

	stale := reg.Create(host, models.DefaultSettings())

	now = now.Add(roomIdleLimit + time.Minute)
	fresh := reg.Create(host, models.DefaultSettings())

	_, err := reg.Get(stale.Code)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = reg.Get(fresh.Code)
	assert.NoError(t, err)
}

func TestRegistryGetKeepsRoomAlive(t *testing.T) {
	now := time.UnixMilli(1_700_000_000_000)
	reg := newTestRegistry(&now)
	host := &models.Session{ID: "h1", Name: "Host"}

	room := reg.Create(host, models.DefaultSettings())

	// Regular polls refresh activity, so the room survives the sweep.
	now = now.Add(roomIdleLimit - time.Minute)
	_, err := reg.Get(room.Code)
	require.NoError(t, err)

	now = now.Add(2 * time.Minute)
	reg.Create(host, models.DefaultSettings())

	_, err = reg.Get(room.Code)
	assert.NoError(t, err)
}
