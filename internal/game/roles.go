package game

import (
	"time"

	"github.com/thereayou/spyfall-lite/internal/models"
)

// AssignRoles resets every player to a fresh civilian, then draws distinct
// spies until min(spyCount, players-1) are assigned, so at least one
// civilian always survives assignment. The secret location is drawn from the
// configured list.
func AssignRoles(room *models.Room, rng Rand) {
	for _, p := range room.Players {
		p.Role = models.RoleCivilian
		p.Eliminated = false
		p.LockedOutOfAsking = false
		p.CalledVote = false
	}
	room.SpyIDs = nil

	want := room.Settings.SpyCount
	if max := len(room.Players) - 1; want > max {
		want = max
	}
	for len(room.SpyIDs) < want {
		pick := room.Players[rng.Intn(len(room.Players))]
		if !room.IsSpy(pick.ID) {
			room.SpyIDs = append(room.SpyIDs, pick.ID)
			pick.Role = models.RoleSpy
		}
	}

	if len(room.Settings.Locations) > 0 {
		room.Location = room.Settings.Locations[rng.Intn(len(room.Settings.Locations))]
	} else {
		room.Location = "Unknown Site"
	}
}

// StartRound assigns roles and a location, then enters the reveal phase with
// its fixed countdown. Turn, vote and rematch state from any previous round
// is discarded; the mission timer starts only when reveal ends.
func StartRound(room *models.Room, rng Rand, now time.Time) {
	AssignRoles(room, rng)
	room.Phase = models.PhaseReveal
	room.RevealEndsAt = now.UnixMilli() + RevealDelay.Milliseconds()
	room.TimerEndsAt = 0
	room.Turn = nil
	room.TurnCursor = 0
	room.VoteEndsAt = 0
	room.Votes = map[string]string{}
	room.Winner = ""
	room.CaughtSpies = 0
	room.EndVotes = map[string]models.EndChoice{}
}

// PrepareRestart soft-resets a finished room back to lobby state while
// keeping roster and settings, with everyone marked ready. Used when the
// host starts again straight from the finished phase.
func PrepareRestart(room *models.Room) {
	for _, p := range room.Players {
		p.IsReady = true
		p.Eliminated = false
		p.LockedOutOfAsking = false
		p.CalledVote = false
	}
	room.SpyIDs = nil
	room.Winner = ""
	room.ClosedReason = ""
	room.Turn = nil
	room.TurnCursor = 0
	room.VoteEndsAt = 0
	room.TimerEndsAt = 0
	room.RevealEndsAt = 0
	room.Phase = models.PhaseLobby
	room.EndVotes = map[string]models.EndChoice{}
}

// ResetToLobby wipes all round state and readiness so the host can adjust
// settings. Used when the rematch vote lands on "new".
func ResetToLobby(room *models.Room) {
	room.Phase = models.PhaseLobby
	room.SpyIDs = nil
	room.Winner = ""
	room.Location = ""
	room.RevealEndsAt = 0
	room.TimerEndsAt = 0
	room.Turn = nil
	room.TurnCursor = 0
	room.VoteEndsAt = 0
	room.Votes = map[string]string{}
	room.CaughtSpies = 0
	room.EndVotes = map[string]models.EndChoice{}
	for _, p := range room.Players {
		p.IsReady = false
		p.Eliminated = false
		p.LockedOutOfAsking = false
		p.CalledVote = false
		p.Role = ""
	}
}

// Rematch restarts a finished room with the same settings and the surviving
// roster. Returns false when fewer than four players remain alive.
func Rematch(room *models.Room, rng Rand, now time.Time) bool {
	alive := room.AlivePlayers()
	if len(alive) < 4 {
		return false
	}
	room.Players = alive
	for _, p := range room.Players {
		p.IsReady = true
	}
	room.ClosedReason = ""
	StartRound(room, rng, now)
	room.PushSystem("Rematch starting with same settings.", now)
	return true
}
