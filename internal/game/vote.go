package game

import (
	"time"

	"github.com/thereayou/spyfall-lite/internal/models"
)

// ResolveVote tallies the elimination vote once its window has passed. A tie
// for first place or an empty ballot eliminates nobody and returns the round
// to playing. A clear winner is eliminated: an innocent hands the game to
// the spies; the last living spy hands it to the civilians.
func ResolveVote(room *models.Room, now time.Time) {
	if room.Phase != models.PhaseVoting || room.VoteEndsAt == 0 || now.UnixMilli() < room.VoteEndsAt {
		return
	}

	room.Phase = models.PhasePlaying
	tally := make(map[string]int)
	for _, targetID := range room.Votes {
		if targetID != "" {
			tally[targetID]++
		}
	}
	clear := func() {
		room.VoteEndsAt = 0
		room.Votes = map[string]string{}
	}

	if len(tally) == 0 {
		room.PushSystem("Vote ended with no selections.", now)
		room.LastVote = &models.LastVote{Message: "No votes were cast."}
		clear()
		return
	}

	topID := ""
	topCount := -1
	tie := false
	for id, count := range tally {
		if count > topCount {
			topID = id
			topCount = count
			tie = false
		} else if count == topCount {
			tie = true
		}
	}

	if tie {
		room.PushSystem("Vote tied. Nobody was eliminated, interrogation continues.", now)
		room.LastVote = &models.LastVote{Message: "Vote tied, no elimination."}
		clear()
		return
	}

	candidate := room.FindPlayer(topID)
	if candidate == nil {
		room.LastVote = &models.LastVote{Message: "Invalid vote target."}
		clear()
		return
	}

	candidate.Eliminated = true
	clear()

	wasSpy := room.IsSpy(candidate.ID)
	message := candidate.Name + " was innocent."
	if wasSpy {
		message = candidate.Name + " was a spy."
	}
	room.LastVote = &models.LastVote{
		EliminatedID: candidate.ID,
		WasSpy:       wasSpy,
		Message:      message,
	}

	if wasSpy {
		room.CaughtSpies++
		room.PushSystem(candidate.Name+" was a SPY.", now)
	} else {
		room.PushSystem(candidate.Name+" was innocent. Spies gained the upper hand.", now)
	}

	if !wasSpy {
		room.Winner = models.RoleSpy
		room.Phase = models.PhaseFinished
		return
	}
	if room.AliveSpies() == 0 {
		room.Winner = models.RoleCivilian
		room.Phase = models.PhaseFinished
		return
	}

	room.Phase = models.PhasePlaying
	room.Turn = nil
}
