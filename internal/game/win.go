package game

import (
	"time"

	"github.com/thereayou/spyfall-lite/internal/models"
)

// HandleDeparture applies the win conditions a disconnect can trigger,
// after the player has already been removed from the roster: the lone spy
// leaving hands an immediate win to the civilians, and a mid-round roster
// below four players hands the game to the spies. Both close the room.
func HandleDeparture(room *models.Room, wasSpy bool, now time.Time) {
	if room.Phase == models.PhaseLobby || room.Winner != "" {
		return
	}

	if wasSpy && room.AliveSpies() == 0 {
		room.Winner = models.RoleCivilian
		room.Phase = models.PhaseFinished
		room.ClosedReason = "Spy disconnected. Civilians win."
		room.PushSystem("Spy disconnected. Civilians win.", now)
		return
	}

	if len(room.AlivePlayers()) < 4 {
		room.Winner = models.RoleSpy
		room.Phase = models.PhaseFinished
		room.ClosedReason = "Player count dropped below 4. Spies win."
		room.PushSystem("Too few players remaining. Spies win.", now)
	}
}
