package game

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thereayou/spyfall-lite/internal/models"
)

func TestAssignRolesSpyCountInvariant(t *testing.T) {
	cases := []struct {
		players  int
		spyCount int
		want     int
	}{
		{4, 1, 1},
		{4, 2, 2},
		{5, 2, 2},
		{2, 2, 1}, // never zero civilians
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("%dp_%dspies", tc.players, tc.spyCount), func(t *testing.T) {
			room := testRoom(tc.players)
			room.Settings.SpyCount = tc.spyCount
			AssignRoles(room, testRNG())

			require.Len(t, room.SpyIDs, tc.want)
			spies, civilians := 0, 0
			for _, p := range room.Players {
				switch p.Role {
				case models.RoleSpy:
					spies++
					assert.True(t, room.IsSpy(p.ID))
				case models.RoleCivilian:
					civilians++
				default:
					t.Fatalf("player %s has no role", p.ID)
				}
			}
			assert.Equal(t, tc.want, spies)
			assert.Greater(t, civilians, 0)
		})
	}
}

func TestAssignRolesSpiesAreDistinct(t *testing.T) {
	room := testRoom(5)
	room.Settings.SpyCount = 2
	AssignRoles(room, testRNG())

	require.Len(t, room.SpyIDs, 2)
	assert.NotEqual(t, room.SpyIDs[0], room.SpyIDs[1])
}

func TestAssignRolesPicksConfiguredLocation(t *testing.T) {
	room := testRoom(4)
	AssignRoles(room, testRNG())
	assert.Contains(t, room.Settings.Locations, room.Location)
}

func TestStartRoundResetsRoundState(t *testing.T) {
	room := testRoom(4)
	room.CaughtSpies = 2
	room.Winner = models.RoleSpy
	room.Votes["p1"] = "p2"
	room.EndVotes["p1"] = models.EndSame
	room.TurnCursor = 3
	room.Players[1].Eliminated = true
	room.Players[2].LockedOutOfAsking = true
	room.Players[3].CalledVote = true

	StartRound(room, testRNG(), base)

	assert.Equal(t, models.PhaseReveal, room.Phase)
	assert.Equal(t, base.UnixMilli()+5_000, room.RevealEndsAt)
	assert.Zero(t, room.TimerEndsAt)
	assert.Nil(t, room.Turn)
	assert.Zero(t, room.TurnCursor)
	assert.Empty(t, room.Votes)
	assert.Empty(t, room.EndVotes)
	assert.Empty(t, room.Winner)
	assert.Zero(t, room.CaughtSpies)
	for _, p := range room.Players {
		assert.False(t, p.Eliminated)
		assert.False(t, p.LockedOutOfAsking)
		assert.False(t, p.CalledVote)
	}
}

func TestRematchNeedsFourAlive(t *testing.T) {
	room := testRoom(4)
	StartRound(room, testRNG(), base)
	room.Phase = models.PhaseFinished
	room.Players[0].Eliminated = true

	assert.False(t, Rematch(room, testRNG(), base))
	assert.Equal(t, models.PhaseFinished, room.Phase)
}

func TestRematchDropsEliminatedPlayers(t *testing.T) {
	room := testRoom(5)
	StartRound(room, testRNG(), base)
	room.Phase = models.PhaseFinished
	room.Winner = models.RoleCivilian
	room.Players[4].Eliminated = true

	require.True(t, Rematch(room, testRNG(), base))
	assert.Len(t, room.Players, 4)
	assert.Equal(t, models.PhaseReveal, room.Phase)
	assert.Empty(t, room.Winner)
	for _, p := range room.Players {
		assert.True(t, p.IsReady)
	}
}

func TestResetToLobbyClearsEverything(t *testing.T) {
	room := testRoom(4)
	StartRound(room, testRNG(), base)
	room.Phase = models.PhaseFinished
	room.Winner = models.RoleSpy

	ResetToLobby(room)

	assert.Equal(t, models.PhaseLobby, room.Phase)
	assert.Empty(t, room.SpyIDs)
	assert.Empty(t, room.Location)
	assert.Empty(t, room.Winner)
	assert.Zero(t, room.RevealEndsAt)
	for _, p := range room.Players {
		assert.False(t, p.IsReady)
		assert.Empty(t, p.Role)
	}
}
