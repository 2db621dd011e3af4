package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/thereayou/spyfall-lite/internal/handlers/dto"
	"github.com/thereayou/spyfall-lite/internal/models"
	"github.com/thereayou/spyfall-lite/internal/store"
)

const maxNameLength = 24

type AuthHandler struct {
	sessions store.SessionStore
	now      func() time.Time
}

func NewAuthHandler(sessions store.SessionStore, now func() time.Time) *AuthHandler {
	return &AuthHandler{sessions: sessions, now: now}
}

// Login issues a fresh session for a display name. There are no accounts: a
// repeat name gets a new id every time, and a client holding a stale id is
// expected to log in again and rejoin.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Name must be at least 2 characters."})
		return
	}

	name := strings.TrimSpace(req.Name)
	runes := []rune(name)
	if len(runes) < 2 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Name must be at least 2 characters."})
		return
	}
	if len(runes) > maxNameLength {
		name = string(runes[:maxNameLength])
	}

	session := &models.Session{
		ID:       uuid.NewString(),
		Name:     name,
		LastSeen: h.now().UnixMilli(),
	}
	if err := h.sessions.Put(c.Request.Context(), session); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not create session."})
		return
	}

	c.JSON(http.StatusOK, session)
}
