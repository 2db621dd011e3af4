package game

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/thereayou/spyfall-lite/internal/models"
)

func testRoom(n int) *models.Room {
	room := &models.Room{
		Code:   "TEST",
		HostID: "p1",
		Phase:  models.PhaseLobby,
		Settings: models.Settings{
			SpyCount:     1,
			TimerMinutes: 10,
			Locations:    []string{"Bank", "Cinema", "Hotel"},
		},
		Votes:    map[string]string{},
		EndVotes: map[string]models.EndChoice{},
	}
	for i := 0; i < n; i++ {
		id := fmt.Sprintf("p%d", i+1)
		room.Players = append(room.Players, &models.RoomPlayer{
			ID:      id,
			Name:    strings.ToUpper(id),
			IsReady: true,
		})
	}
	return room
}

func testRNG() *rand.Rand {
	return rand.New(rand.NewSource(42))
}
