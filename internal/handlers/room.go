package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/thereayou/spyfall-lite/internal/game"
	"github.com/thereayou/spyfall-lite/internal/handlers/dto"
	"github.com/thereayou/spyfall-lite/internal/middleware"
	"github.com/thereayou/spyfall-lite/internal/models"
	"github.com/thereayou/spyfall-lite/internal/store"
)

// RoomHandler serves every room operation. Each handler resolves the room,
// takes its mutex, applies the mutation, and replies with the caller's
// viewer-scoped snapshot, which itself progresses the room clock first.
type RoomHandler struct {
	rooms *store.RoomRegistry
	now   func() time.Time
}

func NewRoomHandler(rooms *store.RoomRegistry, now func() time.Time) *RoomHandler {
	return &RoomHandler{rooms: rooms, now: now}
}

func (h *RoomHandler) lookupRoom(c *gin.Context) (*models.Room, bool) {
	room, err := h.rooms.Get(c.Param("code"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Room not found"})
		return nil, false
	}
	return room, true
}

// memberOrForbid requires the session to be part of the room.
func memberOrForbid(c *gin.Context, room *models.Room, id string) (*models.RoomPlayer, bool) {
	player := room.FindPlayer(id)
	if player == nil {
		c.JSON(http.StatusForbidden, gin.H{"message": "You are not part of this room."})
		return nil, false
	}
	return player, true
}

func (h *RoomHandler) respondRoom(c *gin.Context, room *models.Room, viewerID string) {
	c.JSON(http.StatusOK, game.Snapshot(room, viewerID, h.now()))
}

// Create opens a lobby with the caller as host and sole player.
func (h *RoomHandler) Create(c *gin.Context) {
	session := middleware.CurrentSession(c)

	var req dto.RoomSettingsRequest
	_ = c.ShouldBindJSON(&req)

	settings := models.DefaultSettings()
	if req.SpyCount != nil {
		settings.SpyCount = models.ClampSpyCount(*req.SpyCount)
	}
	if req.TimerMinutes != nil {
		settings.TimerMinutes = models.ClampTimerMinutes(*req.TimerMinutes)
	}
	if req.Locations != nil {
		settings.Locations = req.Locations
	}

	room := h.rooms.Create(session, settings)
	room.Mu.Lock()
	defer room.Mu.Unlock()
	room.PushSystem(session.Name+" created the room.", h.now())
	h.respondRoom(c, room, session.ID)
}

// Join adds the caller to the roster, or just refreshes their stored name
// if they are already in.
func (h *RoomHandler) Join(c *gin.Context) {
	session := middleware.CurrentSession(c)
	room, ok := h.lookupRoom(c)
	if !ok {
		return
	}
	room.Mu.Lock()
	defer room.Mu.Unlock()

	existing := room.FindPlayer(session.ID)
	if existing == nil {
		room.Players = append(room.Players, &models.RoomPlayer{
			ID:   session.ID,
			Name: session.Name,
		})
		room.PushSystem(session.Name+" joined the room.", h.now())
	} else {
		existing.Name = session.Name
	}
	h.respondRoom(c, room, session.ID)
}

// State is the poll endpoint: reading state also drives the room clock.
func (h *RoomHandler) State(c *gin.Context) {
	session := middleware.CurrentSession(c)
	room, ok := h.lookupRoom(c)
	if !ok {
		return
	}
	room.Mu.Lock()
	defer room.Mu.Unlock()
	if _, ok := memberOrForbid(c, room, session.ID); !ok {
		return
	}
	h.respondRoom(c, room, session.ID)
}

func (h *RoomHandler) Ready(c *gin.Context) {
	session := middleware.CurrentSession(c)
	room, ok := h.lookupRoom(c)
	if !ok {
		return
	}
	room.Mu.Lock()
	defer room.Mu.Unlock()
	player, ok := memberOrForbid(c, room, session.ID)
	if !ok {
		return
	}
	var req dto.ReadyRequest
	_ = c.ShouldBindJSON(&req)
	player.IsReady = req.Ready
	h.respondRoom(c, room, session.ID)
}

// UpdateSettings applies a host-only partial settings update. Locations are
// replaced only when at least two are given; field clamps match creation.
func (h *RoomHandler) UpdateSettings(c *gin.Context) {
	session := middleware.CurrentSession(c)
	room, ok := h.lookupRoom(c)
	if !ok {
		return
	}
	room.Mu.Lock()
	defer room.Mu.Unlock()

	if room.HostID != session.ID {
		c.JSON(http.StatusForbidden, gin.H{"message": "Only the host can update settings."})
		return
	}

	var req dto.RoomSettingsRequest
	_ = c.ShouldBindJSON(&req)

	if req.SpyCount != nil {
		room.Settings.SpyCount = models.ClampSpyCount(*req.SpyCount)
	}
	if req.TimerMinutes != nil {
		room.Settings.TimerMinutes = models.ClampTimerMinutes(*req.TimerMinutes)
	}
	if len(req.Locations) >= 2 {
		room.Settings.Locations = req.Locations
	}

	room.PushSystem("Host updated room settings.", h.now())
	room.EndVotes = map[string]models.EndChoice{}
	h.respondRoom(c, room, session.ID)
}

// Start launches a round: host-only, at least two locations and four ready
// players. Starting from the finished phase first soft-resets the room.
// Players who are not ready are dropped from the roster.
func (h *RoomHandler) Start(c *gin.Context) {
	session := middleware.CurrentSession(c)
	room, ok := h.lookupRoom(c)
	if !ok {
		return
	}
	room.Mu.Lock()
	defer room.Mu.Unlock()

	if room.HostID != session.ID {
		c.JSON(http.StatusForbidden, gin.H{"message": "Only the host can start the game."})
		return
	}
	if len(room.Settings.Locations) < 2 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "At least 2 locations required."})
		return
	}
	if room.Phase != models.PhaseLobby && room.Phase != models.PhaseFinished {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Game already started."})
		return
	}
	if room.Phase == models.PhaseFinished {
		game.PrepareRestart(room)
	}

	ready := make([]*models.RoomPlayer, 0, len(room.Players))
	for _, p := range room.Players {
		if p.IsReady && !p.Eliminated {
			ready = append(ready, p)
		}
	}
	if len(ready) < 4 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "At least 4 ready players required."})
		return
	}

	room.Players = ready
	game.StartRound(room, h.rooms, h.now())
	room.PushSystem("Game launched. Reveal your roles now.", h.now())
	h.respondRoom(c, room, session.ID)
}

// Leave removes the caller from the room. Leaving can transfer host
// privilege, hand civilians the win if the last spy walks, or hand spies
// the win if the mid-round roster drops below four.
func (h *RoomHandler) Leave(c *gin.Context) {
	session := middleware.CurrentSession(c)
	room, ok := h.lookupRoom(c)
	if !ok {
		return
	}
	room.Mu.Lock()
	defer room.Mu.Unlock()

	if room.FindPlayer(session.ID) == nil {
		c.JSON(http.StatusOK, gin.H{"message": "Left"})
		return
	}

	wasSpy := room.IsSpy(session.ID)

	players := room.Players[:0]
	for _, p := range room.Players {
		if p.ID != session.ID {
			players = append(players, p)
		}
	}
	room.Players = players

	spyIDs := room.SpyIDs[:0]
	for _, id := range room.SpyIDs {
		if id != session.ID {
			spyIDs = append(spyIDs, id)
		}
	}
	room.SpyIDs = spyIDs

	if room.Turn != nil && (room.Turn.AskerID == session.ID || room.Turn.TargetID == session.ID) {
		room.Turn = nil
	}

	if len(room.Players) > 0 && room.HostID == session.ID {
		room.HostID = room.Players[0].ID
		room.PushSystem(session.Name+" left. "+room.Players[0].Name+" is now host.", h.now())
	} else {
		room.PushSystem(session.Name+" left the room.", h.now())
	}

	game.HandleDeparture(room, wasSpy, h.now())

	if len(room.Players) > 0 {
		room.TurnCursor %= len(room.Players)
	} else {
		room.TurnCursor = 0
	}

	h.respondRoom(c, room, session.ID)
}
