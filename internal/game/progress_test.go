package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thereayou/spyfall-lite/internal/models"
)

var base = time.UnixMilli(1_700_000_000_000)

func TestRevealExpiryEntersPlaying(t *testing.T) {
	room := testRoom(4)
	StartRound(room, testRNG(), base)

	require.Equal(t, models.PhaseReveal, room.Phase)
	require.Equal(t, base.UnixMilli()+5_000, room.RevealEndsAt)

	// Polling before the countdown ends changes nothing.
	Progress(room, base.Add(3*time.Second))
	assert.Equal(t, models.PhaseReveal, room.Phase)
	assert.Nil(t, room.Turn)

	at := base.Add(5 * time.Second)
	Progress(room, at)
	assert.Equal(t, models.PhasePlaying, room.Phase)
	assert.Equal(t, at.UnixMilli()+10*60_000, room.TimerEndsAt)
	require.NotNil(t, room.Turn)
	assert.Equal(t, models.TurnAwaitingQuestion, room.Turn.Status)
	assert.Equal(t, at.UnixMilli()+30_000, room.Turn.AskWindowEndsAt)
}

func TestMissionTimerExpirySpiesWin(t *testing.T) {
	room := testRoom(4)
	StartRound(room, testRNG(), base)
	Progress(room, base.Add(5*time.Second))
	require.Equal(t, models.PhasePlaying, room.Phase)

	Progress(room, base.Add(5*time.Second).Add(10*time.Minute))
	assert.Equal(t, models.PhaseFinished, room.Phase)
	assert.Equal(t, models.RoleSpy, room.Winner)
	assert.Nil(t, room.Turn)
}

func TestAskWindowTimeoutLocksOutAsker(t *testing.T) {
	room := testRoom(4)
	StartRound(room, testRNG(), base)
	playing := base.Add(5 * time.Second)
	Progress(room, playing)
	require.NotNil(t, room.Turn)
	askerID := room.Turn.AskerID

	expired := playing.Add(30 * time.Second)
	Progress(room, expired)
	assert.Nil(t, room.Turn)
	asker := room.FindPlayer(askerID)
	require.NotNil(t, asker)
	assert.True(t, asker.LockedOutOfAsking)

	// Repeated polls are idempotent: the lockout sticks and a new asker
	// is selected on the following pass.
	Progress(room, expired.Add(time.Second))
	require.NotNil(t, room.Turn)
	assert.NotEqual(t, askerID, room.Turn.AskerID)
	assert.True(t, room.FindPlayer(askerID).LockedOutOfAsking)
}

func TestAnswerTimeoutLocksOutCivilianTarget(t *testing.T) {
	room := testRoom(4)
	StartRound(room, testRNG(), base)
	now := base.Add(5 * time.Second)
	Progress(room, now)
	require.NotNil(t, room.Turn)

	var target *models.RoomPlayer
	for _, p := range room.Players {
		if p.ID != room.Turn.AskerID && !room.IsSpy(p.ID) {
			target = p
			break
		}
	}
	require.NotNil(t, target)

	room.Turn.TargetID = target.ID
	room.Turn.Question = "Is it loud here?"
	room.Turn.Status = models.TurnAwaitingAnswer
	room.Turn.AnswerWindowEndsAt = now.UnixMilli() + 10_000

	Progress(room, now.Add(10*time.Second))
	assert.Nil(t, room.Turn)
	assert.True(t, target.LockedOutOfAsking)
	assert.False(t, target.Eliminated)
	assert.Equal(t, models.PhasePlaying, room.Phase)
}

func TestAnswerTimeoutExposesSpy(t *testing.T) {
	room := testRoom(4)
	StartRound(room, testRNG(), base)
	now := base.Add(5 * time.Second)
	Progress(room, now)
	require.Len(t, room.SpyIDs, 1)
	spy := room.FindPlayer(room.SpyIDs[0])

	room.Turn.TargetID = spy.ID
	room.Turn.Status = models.TurnAwaitingAnswer
	room.Turn.AnswerWindowEndsAt = now.UnixMilli() + 10_000

	Progress(room, now.Add(10*time.Second))
	assert.True(t, spy.Eliminated)
	assert.Equal(t, 1, room.CaughtSpies)
	assert.Equal(t, models.RoleCivilian, room.Winner)
	assert.Equal(t, models.PhaseFinished, room.Phase)
}

func TestPickNextAskerSkipsLockedOut(t *testing.T) {
	room := testRoom(4)
	room.Players[0].LockedOutOfAsking = true
	room.Players[1].LockedOutOfAsking = true

	askerID := pickNextAsker(room)
	assert.Equal(t, "p3", askerID)
}

func TestPickNextAskerFallbackWhenAllLockedOut(t *testing.T) {
	room := testRoom(4)
	for _, p := range room.Players {
		p.LockedOutOfAsking = true
	}

	// Everyone is locked out: the cursor player still gets the turn so a
	// stalled room never produces no asker.
	askerID := pickNextAsker(room)
	assert.NotEmpty(t, askerID)
}

func TestProgressRoundRobinAdvancesCursor(t *testing.T) {
	room := testRoom(4)
	first := pickNextAsker(room)
	second := pickNextAsker(room)
	third := pickNextAsker(room)
	fourth := pickNextAsker(room)
	fifth := pickNextAsker(room)

	assert.Equal(t, []string{"p1", "p2", "p3", "p4"}, []string{first, second, third, fourth})
	assert.Equal(t, first, fifth)
}

func TestClosedRoomStaysFinished(t *testing.T) {
	room := testRoom(4)
	StartRound(room, testRNG(), base)
	room.ClosedReason = "Spy disconnected. Civilians win."

	Progress(room, base.Add(time.Second))
	assert.Equal(t, models.PhaseFinished, room.Phase)
	assert.Nil(t, room.Turn)
	assert.Empty(t, room.EndVotes)
}
