package game

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/KirkDiggler/initials/internal/models"
	"github.com/KirkDiggler/initials/internal/realtime"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	gameKeyPrefix = "game:"
	codeKeyPrefix = "gamecode:" // lowercased join code -> game ID
)

// ErrGameNotFound is returned when a game is not found
var ErrGameNotFound = errors.New("game not found")

// ErrGameCodeTaken is returned when another game already claimed the join code
var ErrGameCodeTaken = errors.New("game code already taken")

// Config holds configuration for the Redis game repository
type Config struct {
	// Redis client
	RedisClient *redis.Client

	// Optional change feed; writes are announced when set
	Feed realtime.Publisher
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
	feed   realtime.Publisher
}

// NewRedis creates a new Redis-backed game repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	return &redisRepository{
		client: cfg.RedisClient,
		feed:   cfg.Feed,
	}, nil
}

func codeKey(code string) string {
	return codeKeyPrefix + strings.ToLower(code)
}

// SaveGame persists a game to Redis. The join code is claimed atomically
// on the first save; saving a game whose code belongs to another game
// returns ErrGameCodeTaken.
func (r *redisRepository) SaveGame(ctx context.Context, input *SaveGameInput) error {
	if input == nil || input.Game == nil {
		return errors.New("input and game cannot be nil")
	}

	if input.Game.Code != "" {
		claimed, err := r.client.SetNX(ctx, codeKey(input.Game.Code), input.Game.ID, 0).Result()
		if err != nil {
			return fmt.Errorf("failed to claim game code: %w", err)
		}

		if !claimed {
			owner, err := r.client.Get(ctx, codeKey(input.Game.Code)).Result()
			if err != nil {
				return fmt.Errorf("failed to check game code owner: %w", err)
			}
			if owner != input.Game.ID {
				return ErrGameCodeTaken
			}
		}
	}

	gameJSON, err := json.Marshal(input.Game)
	if err != nil {
		return fmt.Errorf("failed to marshal game: %w", err)
	}

	gameKey := fmt.Sprintf("%s%s", gameKeyPrefix, input.Game.ID)
	if err := r.client.Set(ctx, gameKey, gameJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to save game: %w", err)
	}

	r.announce(ctx, input.Game.ID)

	return nil
}

// GetGame retrieves a game by ID from Redis
func (r *redisRepository) GetGame(ctx context.Context, input *GetGameInput) (*models.Game, error) {
	if input == nil || input.GameID == "" {
		return nil, errors.New("input and game ID cannot be empty")
	}

	gameKey := fmt.Sprintf("%s%s", gameKeyPrefix, input.GameID)
	gameJSON, err := r.client.Get(ctx, gameKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrGameNotFound
		}
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	var game models.Game
	if err := json.Unmarshal([]byte(gameJSON), &game); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game: %w", err)
	}

	return &game, nil
}

// GetGameByCode retrieves a game by its join code from Redis
func (r *redisRepository) GetGameByCode(ctx context.Context, input *GetGameByCodeInput) (*models.Game, error) {
	if input == nil || input.Code == "" {
		return nil, errors.New("input and code cannot be empty")
	}

	gameID, err := r.client.Get(ctx, codeKey(input.Code)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrGameNotFound
		}
		return nil, fmt.Errorf("failed to get game ID for code: %w", err)
	}

	return r.GetGame(ctx, &GetGameInput{
		GameID: gameID,
	})
}

// DeleteGame removes a game from Redis and releases its join code
func (r *redisRepository) DeleteGame(ctx context.Context, input *DeleteGameInput) error {
	if input == nil || input.GameID == "" {
		return errors.New("input and game ID cannot be empty")
	}

	game, err := r.GetGame(ctx, &GetGameInput{
		GameID: input.GameID,
	})
	if err != nil {
		return err
	}

	pipe := r.client.Pipeline()

	gameKey := fmt.Sprintf("%s%s", gameKeyPrefix, input.GameID)
	pipe.Del(ctx, gameKey)

	if game.Code != "" {
		pipe.Del(ctx, codeKey(game.Code))
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}

	r.announce(ctx, input.GameID)

	return nil
}

// announce publishes a change event; feed failures are logged, never
// propagated, so a flaky feed cannot fail a completed write.
func (r *redisRepository) announce(ctx context.Context, gameID string) {
	if r.feed == nil {
		return
	}

	err := r.feed.Publish(ctx, &realtime.Event{
		Table:  realtime.TableGames,
		Type:   realtime.EventUpdate,
		GameID: gameID,
	})
	if err != nil {
		log.Printf("failed to publish games change for %s: %v", gameID, err)
	}
}
