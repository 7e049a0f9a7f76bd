package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/solomonk/bunker/internal/common/clock"
	"github.com/solomonk/bunker/internal/common/uuid"
	"github.com/solomonk/bunker/internal/draw"
	wsHandler "github.com/solomonk/bunker/internal/handlers/ws"
	"github.com/solomonk/bunker/internal/registry"
	contentRepo "github.com/solomonk/bunker/internal/repositories/content"
	sessionRepo "github.com/solomonk/bunker/internal/repositories/session"
	"github.com/solomonk/bunker/internal/services/discovery"
	gameService "github.com/solomonk/bunker/internal/services/game"
)

func main() {
	// Local .env is optional
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file loaded")
	}

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       0,
	})

	// Test Redis connection
	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	// Initialize repositories
	contentRepository, err := contentRepo.NewRedis(&contentRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create content repository: %v", err)
	}

	sessionRepository, err := sessionRepo.NewRedis(&sessionRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create session repository: %v", err)
	}

	// Initialize connection registry
	connRegistry := registry.New(nil)

	// Initialize game service
	gameSvc, err := gameService.New(&gameService.Config{
		SessionRepo:   sessionRepository,
		ContentRepo:   contentRepository,
		Registry:      connRegistry,
		Advertiser:    discovery.NewNop(),
		Clock:         &clock.DefaultClock{},
		UUIDGenerator: uuid.New(),
		Picker:        draw.New(&draw.Config{}),
	})
	if err != nil {
		log.Fatalf("Failed to create game service: %v", err)
	}

	// Initialize websocket handler
	handler, err := wsHandler.New(&wsHandler.Config{
		GameService: gameSvc,
		Registry:    connRegistry,
	})
	if err != nil {
		log.Fatalf("Failed to create websocket handler: %v", err)
	}

	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	router.Get("/game", handler.HandleGame)

	server := &http.Server{
		Addr:    getEnv("LISTEN_ADDR", ":8080"),
		Handler: router,
	}

	go func() {
		log.Printf("listening on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Keep serving until interrupted
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	log.Println("Shutting down...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
