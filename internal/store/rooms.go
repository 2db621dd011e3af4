package store

import (
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/thereayou/spyfall-lite/internal/models"
)

const (
	roomCodeLength = 4
	// No 0/O/1/I: codes are typed by hand between phones.
	roomCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

	// Rooms idle longer than this are swept on the next room creation.
	// All housekeeping happens inside request handling; there is no
	// background ticker anywhere in the process.
	roomIdleLimit = 6 * time.Hour
)

// RoomRegistry owns every live room, keyed by join code. The registry lock
// covers the map only; mutating a room's state happens under the room's own
// mutex. The clock and random source are injected so tests stay
// deterministic.
type RoomRegistry struct {
	mu    sync.Mutex
	rooms map[string]*models.Room

	now func() time.Time

	rngMu sync.Mutex
	rng   *rand.Rand
}

func NewRoomRegistry(now func() time.Time, rng *rand.Rand) *RoomRegistry {
	return &RoomRegistry{
		rooms: make(map[string]*models.Room),
		now:   now,
		rng:   rng,
	}
}

// Intn exposes the registry's random source behind a lock, satisfying the
// game core's Rand dependency.
func (reg *RoomRegistry) Intn(n int) int {
	reg.rngMu.Lock()
	defer reg.rngMu.Unlock()
	return reg.rng.Intn(n)
}

// Create builds a lobby room with the given host as its only player. Idle
// rooms are swept here, and the generated code is retried until unique
// among live rooms.
func (reg *RoomRegistry) Create(host *models.Session, settings models.Settings) *models.Room {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	reg.sweepLocked()

	code := reg.generateCodeLocked()
	room := &models.Room{
		Code:     code,
		HostID:   host.ID,
		Settings: settings,
		Phase:    models.PhaseLobby,
		Players: []*models.RoomPlayer{{
			ID:   host.ID,
			Name: host.Name,
		}},
		Votes:      map[string]string{},
		EndVotes:   map[string]models.EndChoice{},
		LastActive: reg.now().UnixMilli(),
	}
	reg.rooms[code] = room
	return room
}

// Get resolves a join code case-insensitively and marks the room active.
func (reg *RoomRegistry) Get(code string) (*models.Room, error) {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	room, ok := reg.rooms[strings.ToUpper(code)]
	if !ok {
		return nil, ErrNotFound
	}
	room.LastActive = reg.now().UnixMilli()
	return room, nil
}

func (reg *RoomRegistry) Delete(code string) {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	delete(reg.rooms, strings.ToUpper(code))
}

func (reg *RoomRegistry) generateCodeLocked() string {
	for {
		b := make([]byte, roomCodeLength)
		for i := range b {
			b[i] = roomCodeAlphabet[reg.Intn(len(roomCodeAlphabet))]
		}
		code := string(b)
		if _, taken := reg.rooms[code]; !taken {
			return code
		}
	}
}

func (reg *RoomRegistry) sweepLocked() {
	cutoff := reg.now().Add(-roomIdleLimit).UnixMilli()
	for code, room := range reg.rooms {
		if room.LastActive < cutoff {
			delete(reg.rooms, code)
			logrus.WithField("room", code).Info("idle room evicted")
		}
	}
}
