package models

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPushChatCapsLog(t *testing.T) {
	room := &Room{}
	now := time.UnixMilli(1_700_000_000_000)
	for i := 0; i < 150; i++ {
		room.PushSystem(fmt.Sprintf("msg %d", i), now)
	}

	require.Len(t, room.Chat, ChatLimit)
	assert.Equal(t, "msg 30", room.Chat[0].Message)
	assert.Equal(t, "msg 149", room.Chat[len(room.Chat)-1].Message)
}

func TestAliveSpiesIgnoresEliminatedAndDeparted(t *testing.T) {
	room := &Room{
		Players: []*RoomPlayer{
			{ID: "a"},
			{ID: "b", Eliminated: true},
		},
		SpyIDs: []string{"a", "b", "gone"},
	}
	assert.Equal(t, 1, room.AliveSpies())
}

func TestClampSettings(t *testing.T) {
	assert.Equal(t, 1, ClampSpyCount(0))
	assert.Equal(t, 2, ClampSpyCount(9))
	assert.Equal(t, 2, ClampSpyCount(2))
	assert.Equal(t, 5, ClampTimerMinutes(1))
	assert.Equal(t, 25, ClampTimerMinutes(60))
	assert.Equal(t, 10, ClampTimerMinutes(10))
}
