package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/thereayou/spyfall-lite/internal/game"
	"github.com/thereayou/spyfall-lite/internal/handlers/dto"
	"github.com/thereayou/spyfall-lite/internal/middleware"
	"github.com/thereayou/spyfall-lite/internal/models"
)

// CallVote opens an elimination vote. Each player may trigger one vote per
// round.
func (h *RoomHandler) CallVote(c *gin.Context) {
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

	now := h.now()
	game.Progress(room, now)

	if room.Phase != models.PhasePlaying {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Voting not allowed right now."})
		return
	}
	if player.CalledVote {
		c.JSON(http.StatusBadRequest, gin.H{"message": "You already called for a vote."})
		return
	}

	player.CalledVote = true
	room.Phase = models.PhaseVoting
	room.VoteEndsAt = now.UnixMilli() + game.VoteWindow.Milliseconds()
	room.Votes = map[string]string{}
	room.PushSystem(player.Name+" called for a vote!", now)
	h.respondRoom(c, room, session.ID)
}

// Vote records (or overwrites) the caller's single ballot for a living
// player. Resolution happens lazily when the vote window expires.
func (h *RoomHandler) Vote(c *gin.Context) {
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

	now := h.now()
	game.Progress(room, now)

	if room.Phase != models.PhaseVoting {
		c.JSON(http.StatusBadRequest, gin.H{"message": "No active vote."})
		return
	}

	var req dto.VoteRequest
	_ = c.ShouldBindJSON(&req)

	target := room.FindPlayer(req.TargetID)
	if target == nil || target.Eliminated {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Select a valid player."})
		return
	}

	room.Votes[session.ID] = target.ID
	h.respondRoom(c, room, session.ID)
}

// EndVote records a rematch preference after a game. The first directional
// majority wins immediately: "same" relaunches with current settings and the
// surviving roster, "new" returns everyone to the lobby.
func (h *RoomHandler) EndVote(c *gin.Context) {
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

	if room.Phase != models.PhaseFinished {
		c.JSON(http.StatusBadRequest, gin.H{"message": "End voting only available after game ends."})
		return
	}

	var req dto.EndVoteRequest
	_ = c.ShouldBindJSON(&req)
	choice := models.EndChoice(req.Choice)
	if choice != models.EndSame && choice != models.EndNew {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid choice."})
		return
	}

	now := h.now()
	if room.EndVotes == nil {
		room.EndVotes = map[string]models.EndChoice{}
	}
	room.EndVotes[session.ID] = choice
	if choice == models.EndSame {
		room.PushSystem(session.Name+" votes to replay same settings.", now)
	} else {
		room.PushSystem(session.Name+" votes to replay with new settings.", now)
	}

	same, newCount := 0, 0
	for _, v := range room.EndVotes {
		if v == models.EndSame {
			same++
		} else {
			newCount++
		}
	}

	canRestart := len(room.Settings.Locations) >= 2 && len(room.Players) >= 4

	if same > newCount && same >= 1 && canRestart {
		game.Rematch(room, h.rooms, now)
	} else if newCount > same && newCount >= 1 {
		game.ResetToLobby(room)
		room.PushSystem("Returning to lobby to adjust settings.", now)
	}

	h.respondRoom(c, room, session.ID)
}
