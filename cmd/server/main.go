package main

import (
	"context"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/KirkDiggler/skullking/internal/common/clock"
	"github.com/KirkDiggler/skullking/internal/common/uuid"
	"github.com/KirkDiggler/skullking/internal/handlers/httpapi"
	"github.com/KirkDiggler/skullking/internal/repositories/session"
	"github.com/KirkDiggler/skullking/internal/services/tracker"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       0,
	})

	// Test Redis connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}

	// Initialize repositories
	sessionRepo, err := session.NewRedis(&session.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create session repository")
	}

	// Initialize tracker service
	trackerSvc, err := tracker.New(ctx, &tracker.Config{
		SessionRepo:   sessionRepo,
		UUIDGenerator: uuid.New(),
		Clock:         clock.New(),
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create tracker service")
	}

	// Initialize HTTP server
	server, err := httpapi.New(&httpapi.Config{
		TrackerService: trackerSvc,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create HTTP server")
	}

	addr := ":" + getEnv("PORT", "8080")
	log.Info().Str("addr", addr).Msg("Starting server")
	if err := server.Run(addr); err != nil {
		log.Fatal().Err(err).Msg("Server stopped")
	}
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
