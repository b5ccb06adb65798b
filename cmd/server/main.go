package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/initials/internal/common/clock"
	"github.com/KirkDiggler/initials/internal/common/uuid"
	"github.com/KirkDiggler/initials/internal/encyclopedia"
	"github.com/KirkDiggler/initials/internal/gamecode"
	"github.com/KirkDiggler/initials/internal/handlers/httpapi"
	"github.com/KirkDiggler/initials/internal/letters"
	"github.com/KirkDiggler/initials/internal/realtime"
	answerRepo "github.com/KirkDiggler/initials/internal/repositories/answer"
	gameRepo "github.com/KirkDiggler/initials/internal/repositories/game"
	playerRepo "github.com/KirkDiggler/initials/internal/repositories/player"
	scoreRepo "github.com/KirkDiggler/initials/internal/repositories/score"
	gameService "github.com/KirkDiggler/initials/internal/services/game"
	scoringService "github.com/KirkDiggler/initials/internal/services/scoring"
)

func main() {
	// Load .env if present; real environments set variables directly
	_ = godotenv.Load()

	cfg := &config{}
	cobra.CheckErr(newCmd(cfg).Execute())
}

func serve(ctx context.Context, cfg *config) error {
	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.redisAddr,
		Password: cfg.redisPassword,
		DB:       0,
	})

	// Test Redis connection
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}

	// Initialize the change feed
	feed, err := realtime.NewRedis(&realtime.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		return fmt.Errorf("failed to create change feed: %w", err)
	}

	// Initialize repositories
	games, err := gameRepo.NewRedis(&gameRepo.Config{
		RedisClient: redisClient,
		Feed:        feed,
	})
	if err != nil {
		return fmt.Errorf("failed to create game repository: %w", err)
	}

	players, err := playerRepo.NewRedis(&playerRepo.Config{
		RedisClient: redisClient,
		Feed:        feed,
	})
	if err != nil {
		return fmt.Errorf("failed to create player repository: %w", err)
	}

	answers, err := answerRepo.NewRedis(&answerRepo.Config{
		RedisClient: redisClient,
		Feed:        feed,
	})
	if err != nil {
		return fmt.Errorf("failed to create answer repository: %w", err)
	}

	scores, err := scoreRepo.NewRedis(&scoreRepo.Config{
		RedisClient: redisClient,
		Feed:        feed,
	})
	if err != nil {
		return fmt.Errorf("failed to create score repository: %w", err)
	}

	// Initialize services
	gameSvc, err := gameService.NewService(&gameService.Config{
		DefaultNumTeams:     cfg.numTeams,
		DefaultTimerSeconds: cfg.timerSeconds,
		GameRepo:            games,
		PlayerRepo:          players,
		AnswerRepo:          answers,
		ScoreRepo:           scores,
		Letters:             letters.New(&letters.Config{}),
		GameCodes:           gamecode.New(&gamecode.Config{}),
		Clock:               &clock.DefaultClock{},
		UUIDGenerator:       uuid.New(),
	})
	if err != nil {
		return fmt.Errorf("failed to create game service: %w", err)
	}

	scoringSvc, err := scoringService.NewService(&scoringService.Config{
		GameRepo:     games,
		AnswerRepo:   answers,
		ScoreRepo:    scores,
		Encyclopedia: encyclopedia.NewWikipedia(&encyclopedia.Config{}),
		Clock:        &clock.DefaultClock{},
	})
	if err != nil {
		return fmt.Errorf("failed to create scoring service: %w", err)
	}

	// Initialize the HTTP handler
	handler, err := httpapi.New(&httpapi.Config{
		GameService:    gameSvc,
		ScoringService: scoringSvc,
		Feed:           feed,
		BaseURL:        cfg.baseURL,
	})
	if err != nil {
		return fmt.Errorf("failed to create HTTP handler: %w", err)
	}

	server := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.bind, cfg.port),
		Handler: handler.Router(),
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Listening on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)

	select {
	case err := <-errCh:
		return err
	case <-sc:
	case <-ctx.Done():
	}

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error shutting down server: %v", err)
	}

	log.Println("Server has been shut down")

	return nil
}
