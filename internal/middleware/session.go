package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/thereayou/spyfall-lite/internal/models"
	"github.com/thereayou/spyfall-lite/internal/store"
)

const SessionKey = "session"

// RequireSession resolves the caller's session from the playerId carried in
// the JSON body or the query string. The body is re-buffered so handlers can
// still bind it. Failure to resolve is the 401 the client answers with a
// re-login.
func RequireSession(sessions store.SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		playerID := extractPlayerID(c)
		if playerID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Login required"})
			c.Abort()
			return
		}

		session, err := sessions.Get(c.Request.Context(), playerID)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Login required"})
			c.Abort()
			return
		}

		c.Set(SessionKey, session)
		c.Next()
	}
}

// CurrentSession returns the session RequireSession stored on the context.
func CurrentSession(c *gin.Context) *models.Session {
	return c.MustGet(SessionKey).(*models.Session)
}

func extractPlayerID(c *gin.Context) string {
	if c.Request.Body != nil && c.Request.Body != http.NoBody {
		raw, err := io.ReadAll(c.Request.Body)
		if err == nil {
			c.Request.Body = io.NopCloser(bytes.NewReader(raw))
			var probe struct {
				PlayerID string `json:"playerId"`
			}
			if json.Unmarshal(raw, &probe) == nil && probe.PlayerID != "" {
				return probe.PlayerID
			}
		}
	}
	return c.Query("playerId")
}
