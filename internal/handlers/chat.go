package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/thereayou/spyfall-lite/internal/handlers/dto"
	"github.com/thereayou/spyfall-lite/internal/middleware"
	"github.com/thereayou/spyfall-lite/internal/models"
)

const maxChatLength = 240

// Chat appends a player message to the room feed.
func (h *RoomHandler) Chat(c *gin.Context) {
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

	var req dto.ChatRequest
	_ = c.ShouldBindJSON(&req)

	text := strings.TrimSpace(req.Message)
	if text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Message cannot be empty."})
		return
	}
	if runes := []rune(text); len(runes) > maxChatLength {
		text = string(runes[:maxChatLength])
	}

	room.PushChat(models.ChatMessage{
		ID:         uuid.NewString(),
		SenderID:   player.ID,
		SenderName: player.Name,
		Message:    text,
		CreatedAt:  h.now().UnixMilli(),
	})
	h.respondRoom(c, room, session.ID)
}
