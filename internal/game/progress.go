// Package game holds the deterministic state machine for a room. Every
// function takes the current time (and, where needed, a random source) as an
// argument: there are no background timers, so time-based transitions only
// happen when a request calls Progress.
package game

import (
	"time"

	"github.com/thereayou/spyfall-lite/internal/models"
)

const (
	RevealDelay  = 5 * time.Second
	AskWindow    = 30 * time.Second
	AnswerWindow = 10 * time.Second
	VoteWindow   = 30 * time.Second
)

// Rand is the slice of math/rand the game core needs. Injected so role and
// location assignment are seedable in tests.
type Rand interface {
	Intn(n int) int
}

// Progress advances every time-based transition that is due at now: reveal
// countdown expiry, the mission timer, vote resolution, and ask/answer
// window timeouts. It is called at the top of every request that touches a
// room, so a client polling for state also drives the clock.
func Progress(room *models.Room, now time.Time) {
	ms := now.UnixMilli()

	if room.ClosedReason != "" {
		room.Turn = nil
		room.VoteEndsAt = 0
		room.EndVotes = map[string]models.EndChoice{}
		room.Phase = models.PhaseFinished
		return
	}

	if room.Phase == models.PhaseFinished {
		room.Turn = nil
		room.VoteEndsAt = 0
		if room.EndVotes == nil {
			room.EndVotes = map[string]models.EndChoice{}
		}
		return
	}

	if room.Phase == models.PhaseReveal && room.RevealEndsAt != 0 && ms >= room.RevealEndsAt {
		room.Phase = models.PhasePlaying
		room.TimerEndsAt = ms + int64(room.Settings.TimerMinutes)*60_000
		room.Turn = nil
		room.PushSystem("Roles locked in. Interrogation begins.", now)
	}

	if room.Phase == models.PhasePlaying && room.TimerEndsAt != 0 && ms >= room.TimerEndsAt {
		room.Winner = models.RoleSpy
		room.Phase = models.PhaseFinished
	}

	if room.Phase == models.PhaseVoting {
		ResolveVote(room, now)
	}

	if room.Phase != models.PhasePlaying {
		return
	}

	if room.Turn == nil {
		askerID := pickNextAsker(room)
		if askerID != "" {
			room.Turn = &models.TurnState{
				AskerID:         askerID,
				AskWindowEndsAt: ms + AskWindow.Milliseconds(),
				Status:          models.TurnAwaitingQuestion,
			}
			name := "Player"
			if p := room.FindPlayer(askerID); p != nil {
				name = p.Name
			}
			room.PushSystem(name+" is up to question.", now)
		}
		return
	}

	turn := room.Turn

	if turn.Status == models.TurnAwaitingQuestion && ms >= turn.AskWindowEndsAt {
		name := "Player"
		if asker := room.FindPlayer(turn.AskerID); asker != nil {
			asker.LockedOutOfAsking = true
			name = asker.Name
		}
		room.PushSystem(name+" timed out and lost their turn.", now)
		room.Turn = nil
		return
	}

	if turn.Status == models.TurnAwaitingAnswer && turn.AnswerWindowEndsAt != 0 &&
		ms >= turn.AnswerWindowEndsAt && turn.Answer == "" {
		if target := room.FindPlayer(turn.TargetID); target != nil {
			target.LockedOutOfAsking = true
			if room.IsSpy(target.ID) {
				target.Eliminated = true
				room.CaughtSpies++
				room.PushSystem(target.Name+" failed to answer and was exposed as a spy.", now)
				if room.AliveSpies() == 0 {
					room.Winner = models.RoleCivilian
					room.Phase = models.PhaseFinished
					room.Turn = nil
					return
				}
			} else {
				room.PushSystem(target.Name+" failed to answer in time and cannot ask questions again.", now)
			}
		}
		room.Turn = nil
		return
	}
}

// pickNextAsker walks the alive roster round-robin from the cursor, skipping
// players locked out of asking. When everyone alive is locked out it hands
// the turn to the cursor position anyway so a stalled room never deadlocks.
func pickNextAsker(room *models.Room) string {
	alive := room.AlivePlayers()
	if len(alive) == 0 {
		return ""
	}
	start := room.TurnCursor % len(alive)
	for i := 0; i < len(alive); i++ {
		idx := (start + i) % len(alive)
		candidate := alive[idx]
		if !candidate.LockedOutOfAsking {
			room.TurnCursor = (idx + 1) % len(alive)
			return candidate.ID
		}
	}
	room.TurnCursor = (start + 1) % len(alive)
	return alive[start].ID
}
