package models

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// ChatLimit caps the room's chat log; oldest entries are dropped first.
const ChatLimit = 120

// LastVote records the human-readable outcome of the most recent
// elimination vote.
type LastVote struct {
	EliminatedID string `json:"eliminatedId,omitempty"`
	WasSpy       bool   `json:"wasSpy,omitempty"`
	Message      string `json:"message"`
}

// Room is the aggregate for one game session. All deadline fields are unix
// milliseconds; zero means unset. Requests mutate a room while holding Mu —
// the polling protocol relies on every request observing and advancing the
// room sequentially.
type Room struct {
	Code         string
	HostID       string
	Settings     Settings
	Phase        Phase
	Players      []*RoomPlayer
	SpyIDs       []string
	Location     string
	RevealEndsAt int64
	TimerEndsAt  int64
	Turn         *TurnState
	TurnCursor   int
	VoteEndsAt   int64
	Votes        map[string]string
	EndVotes     map[string]EndChoice
	Winner       Role
	Chat         []ChatMessage
	CaughtSpies  int
	LastVote     *LastVote
	ClosedReason string
	LastActive   int64

	Mu sync.Mutex
}

func (r *Room) FindPlayer(id string) *RoomPlayer {
	for _, p := range r.Players {
		if p.ID == id {
			return p
		}
	}
	return nil
}

func (r *Room) AlivePlayers() []*RoomPlayer {
	alive := make([]*RoomPlayer, 0, len(r.Players))
	for _, p := range r.Players {
		if !p.Eliminated {
			alive = append(alive, p)
		}
	}
	return alive
}

func (r *Room) IsSpy(id string) bool {
	for _, spyID := range r.SpyIDs {
		if spyID == id {
			return true
		}
	}
	return false
}

// AliveSpies counts spies that have not been eliminated or removed.
func (r *Room) AliveSpies() int {
	count := 0
	for _, id := range r.SpyIDs {
		if p := r.FindPlayer(id); p != nil && !p.Eliminated {
			count++
		}
	}
	return count
}

func (r *Room) PushChat(msg ChatMessage) {
	r.Chat = append(r.Chat, msg)
	if len(r.Chat) > ChatLimit {
		r.Chat = r.Chat[len(r.Chat)-ChatLimit:]
	}
}

func (r *Room) PushSystem(text string, now time.Time) {
	r.PushChat(ChatMessage{
		ID:        uuid.NewString(),
		Message:   text,
		CreatedAt: now.UnixMilli(),
		System:    true,
	})
}
