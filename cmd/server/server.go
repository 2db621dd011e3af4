package server

import (
	"context"
	"math/rand"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/thereayou/spyfall-lite/internal/handlers"
	"github.com/thereayou/spyfall-lite/internal/store"
)

var log = logrus.New()

type Server struct {
	Router   *gin.Engine
	Redis    *redis.Client
	Sessions store.SessionStore
	Rooms    *store.RoomRegistry
}

func NewServer() *Server {
	if err := godotenv.Load(".env.local"); err != nil {
		if err := godotenv.Load(); err != nil {
			log.Info(".env not found, using environment variables")
		}
	}

	var rdb *redis.Client
	var sessions store.SessionStore
	if url := os.Getenv("REDIS_URL"); url != "" {
		opts, err := redis.ParseURL(url)
		if err != nil {
			log.Fatalf("invalid REDIS_URL: %v", err)
		}
		rdb = redis.NewClient(opts)
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			log.Fatalf("Redis connect failed: %v", err)
		}
		sessions = store.NewRedisSessionStore(rdb)
	} else {
		log.Info("REDIS_URL not set, keeping sessions in memory")
		sessions = store.NewMemorySessionStore()
	}

	rooms := store.NewRoomRegistry(time.Now, rand.New(rand.NewSource(time.Now().UnixNano())))

	authH := handlers.NewAuthHandler(sessions, time.Now)
	roomH := handlers.NewRoomHandler(rooms, time.Now)

	router := gin.Default()
	router.Use(cors.New(corsConfig()))
	APIEndpoints(router, authH, roomH, sessions, rdb)

	return &Server{
		Router:   router,
		Redis:    rdb,
		Sessions: sessions,
		Rooms:    rooms,
	}
}

func corsConfig() cors.Config {
	cfg := cors.DefaultConfig()
	origin := os.Getenv("CORS_ORIGIN")
	if origin == "" || origin == "*" {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = []string{origin}
	}
	cfg.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	return cfg
}

func (s *Server) Run() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Infof("Server starting on port %s", port)
	if err := s.Router.Run(":" + port); err != nil {
		log.Fatalf("Server run error: %v", err)
	}
}
