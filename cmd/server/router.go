package server

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"github.com/thereayou/spyfall-lite/internal/handlers"
	"github.com/thereayou/spyfall-lite/internal/middleware"
	"github.com/thereayou/spyfall-lite/internal/store"
)

func APIEndpoints(r *gin.Engine, authH *handlers.AuthHandler, roomH *handlers.RoomHandler, sessions store.SessionStore, rdb *redis.Client) {
	api := r.Group("/api")
	api.POST("/login", authH.Login)

	rooms := api.Group("/rooms")
	rooms.Use(middleware.RateLimit(rdb, 10), middleware.RequireSession(sessions))
	{
		rooms.POST("", roomH.Create)
		rooms.POST("/:code/join", roomH.Join)
		rooms.GET("/:code/state", roomH.State)
		rooms.POST("/:code/ready", roomH.Ready)
		rooms.POST("/:code/settings", roomH.UpdateSettings)
		rooms.POST("/:code/start", roomH.Start)
		rooms.POST("/:code/question", roomH.Question)
		rooms.POST("/:code/answer", roomH.Answer)
		rooms.POST("/:code/call-vote", roomH.CallVote)
		rooms.POST("/:code/vote", roomH.Vote)
		rooms.POST("/:code/chat", roomH.Chat)
		rooms.POST("/:code/leave", roomH.Leave)
		rooms.POST("/:code/end-vote", roomH.EndVote)
	}
}
