package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/thereayou/spyfall-lite/internal/game"
	"github.com/thereayou/spyfall-lite/internal/handlers/dto"
	"github.com/thereayou/spyfall-lite/internal/middleware"
	"github.com/thereayou/spyfall-lite/internal/models"
)

const (
	maxQuestionLength = 200
	defaultQuestion   = "Is this place ...?"
)

// Question binds a target and question text to the current turn and opens
// the answer window. Only the current asker may do this, and only while the
// turn is still awaiting a question.
func (h *RoomHandler) Question(c *gin.Context) {
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

	if room.Phase != models.PhasePlaying || room.Turn == nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Not your turn to ask."})
		return
	}
	if room.Turn.AskerID != player.ID {
		c.JSON(http.StatusForbidden, gin.H{"message": "Wait for your turn to ask."})
		return
	}
	if room.Turn.Status != models.TurnAwaitingQuestion {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Question already asked."})
		return
	}

	var req dto.QuestionRequest
	_ = c.ShouldBindJSON(&req)

	target := room.FindPlayer(req.TargetID)
	if target == nil || target.Eliminated {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Choose a valid target."})
		return
	}

	question := strings.TrimSpace(req.Question)
	if runes := []rune(question); len(runes) > maxQuestionLength {
		question = string(runes[:maxQuestionLength])
	}
	if question == "" {
		question = defaultQuestion
	}

	room.Turn.TargetID = target.ID
	room.Turn.Question = question
	room.Turn.Status = models.TurnAwaitingAnswer
	room.Turn.AnswerWindowEndsAt = now.UnixMilli() + game.AnswerWindow.Milliseconds()

	room.PushChat(models.ChatMessage{
		ID:         uuid.NewString(),
		SenderID:   player.ID,
		SenderName: player.Name,
		Message:    "Agent " + player.Name + " asks " + target.Name + ": " + question,
		CreatedAt:  now.UnixMilli(),
	})
	h.respondRoom(c, room, session.ID)
}

// Answer records the target's yes/no and closes the exchange; the next poll
// hands the turn to a new asker.
func (h *RoomHandler) Answer(c *gin.Context) {
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

	if room.Phase != models.PhasePlaying || room.Turn == nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "No active question."})
		return
	}
	if room.Turn.TargetID != player.ID {
		c.JSON(http.StatusForbidden, gin.H{"message": "You are not the target."})
		return
	}
	if room.Turn.Status != models.TurnAwaitingAnswer {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Answer already provided."})
		return
	}

	var req dto.AnswerRequest
	_ = c.ShouldBindJSON(&req)
	answer := "no"
	if req.Answer == "yes" {
		answer = "yes"
	}

	room.PushChat(models.ChatMessage{
		ID:         uuid.NewString(),
		SenderID:   player.ID,
		SenderName: player.Name,
		Message:    "Agent " + player.Name + " responds: " + strings.ToUpper(answer),
		CreatedAt:  now.UnixMilli(),
	})

	room.Turn = nil
	if len(room.Players) > 0 {
		room.TurnCursor %= len(room.Players)
	}
	h.respondRoom(c, room, session.ID)
}
