package score

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/KirkDiggler/initials/internal/models"
	"github.com/KirkDiggler/initials/internal/realtime"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	overrideKeyPrefix   = "scoreoverride:"
	validationKeyPrefix = "scorevalidation:"
	overrideIndexPrefix = "game_overrides:"   // set of override keys per game
	validationIdxPrefix = "game_validations:" // set of validation keys per game
)

// Config holds configuration for the Redis score repository
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

// NewRedis creates a new Redis-backed score repository
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

func overrideKey(gameID string, rowIndex, teamNumber int) string {
	return fmt.Sprintf("%s%s:%d:%d", overrideKeyPrefix, gameID, rowIndex, teamNumber)
}

func validationKey(gameID string, rowIndex, teamNumber int) string {
	return fmt.Sprintf("%s%s:%d:%d", validationKeyPrefix, gameID, rowIndex, teamNumber)
}

// SaveOverride writes an override to Redis, replacing any previous
// override for the same cell
func (r *redisRepository) SaveOverride(ctx context.Context, input *SaveOverrideInput) error {
	if input == nil || input.Override == nil {
		return errors.New("input and override cannot be nil")
	}

	o := input.Override
	overrideJSON, err := json.Marshal(o)
	if err != nil {
		return fmt.Errorf("failed to marshal override: %w", err)
	}

	key := overrideKey(o.GameID, o.RowIndex, o.TeamNumber)

	pipe := r.client.Pipeline()
	pipe.Set(ctx, key, overrideJSON, 0)
	pipe.SAdd(ctx, fmt.Sprintf("%s%s", overrideIndexPrefix, o.GameID), key)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save override: %w", err)
	}

	r.announce(ctx, o.GameID, realtime.EventUpdate)

	return nil
}

// GetOverridesForGame retrieves every override for a game from Redis
func (r *redisRepository) GetOverridesForGame(ctx context.Context, input *GetOverridesForGameInput) (*GetOverridesForGameOutput, error) {
	if input == nil || input.GameID == "" {
		return nil, errors.New("input and game ID cannot be empty")
	}

	values, err := r.fetchAll(ctx, fmt.Sprintf("%s%s", overrideIndexPrefix, input.GameID))
	if err != nil {
		return nil, fmt.Errorf("failed to get overrides: %w", err)
	}

	overrides := make([]*models.ScoreOverride, 0, len(values))
	for key, raw := range values {
		var o models.ScoreOverride
		if err := json.Unmarshal([]byte(raw), &o); err != nil {
			return nil, fmt.Errorf("failed to unmarshal override %s: %w", key, err)
		}

		overrides = append(overrides, &o)
	}

	return &GetOverridesForGameOutput{
		Overrides: overrides,
	}, nil
}

// SaveValidation writes a validation verdict to Redis, replacing any
// previous verdict for the same cell
func (r *redisRepository) SaveValidation(ctx context.Context, input *SaveValidationInput) error {
	if input == nil || input.Validation == nil {
		return errors.New("input and validation cannot be nil")
	}

	v := input.Validation
	validationJSON, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal validation: %w", err)
	}

	key := validationKey(v.GameID, v.RowIndex, v.TeamNumber)

	pipe := r.client.Pipeline()
	pipe.Set(ctx, key, validationJSON, 0)
	pipe.SAdd(ctx, fmt.Sprintf("%s%s", validationIdxPrefix, v.GameID), key)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save validation: %w", err)
	}

	r.announce(ctx, v.GameID, realtime.EventUpdate)

	return nil
}

// GetValidationsForGame retrieves every validation verdict for a game
// from Redis
func (r *redisRepository) GetValidationsForGame(ctx context.Context, input *GetValidationsForGameInput) (*GetValidationsForGameOutput, error) {
	if input == nil || input.GameID == "" {
		return nil, errors.New("input and game ID cannot be empty")
	}

	values, err := r.fetchAll(ctx, fmt.Sprintf("%s%s", validationIdxPrefix, input.GameID))
	if err != nil {
		return nil, fmt.Errorf("failed to get validations: %w", err)
	}

	validations := make([]*models.AnswerValidation, 0, len(values))
	for key, raw := range values {
		var v models.AnswerValidation
		if err := json.Unmarshal([]byte(raw), &v); err != nil {
			return nil, fmt.Errorf("failed to unmarshal validation %s: %w", key, err)
		}

		validations = append(validations, &v)
	}

	return &GetValidationsForGameOutput{
		Validations: validations,
	}, nil
}

// DeleteScoresForGame removes all of a game's overrides and validations
// from Redis
func (r *redisRepository) DeleteScoresForGame(ctx context.Context, input *DeleteScoresForGameInput) error {
	if input == nil || input.GameID == "" {
		return errors.New("input and game ID cannot be empty")
	}

	overrideIdx := fmt.Sprintf("%s%s", overrideIndexPrefix, input.GameID)
	validationIdx := fmt.Sprintf("%s%s", validationIdxPrefix, input.GameID)

	overrideKeys, err := r.client.SMembers(ctx, overrideIdx).Result()
	if err != nil {
		return fmt.Errorf("failed to get override keys: %w", err)
	}

	validationKeys, err := r.client.SMembers(ctx, validationIdx).Result()
	if err != nil {
		return fmt.Errorf("failed to get validation keys: %w", err)
	}

	pipe := r.client.Pipeline()
	for _, key := range overrideKeys {
		pipe.Del(ctx, key)
	}
	for _, key := range validationKeys {
		pipe.Del(ctx, key)
	}
	pipe.Del(ctx, overrideIdx)
	pipe.Del(ctx, validationIdx)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete scores: %w", err)
	}

	r.announce(ctx, input.GameID, realtime.EventDelete)

	return nil
}

// fetchAll reads every member of an index set and pipeline-fetches the
// referenced values, skipping entries cleared between the two reads
func (r *redisRepository) fetchAll(ctx context.Context, indexKey string) (map[string]string, error) {
	keys, err := r.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, err
	}

	if len(keys) == 0 {
		return map[string]string{}, nil
	}

	pipe := r.client.Pipeline()
	commands := make(map[string]*redis.StringCmd, len(keys))

	for _, key := range keys {
		commands[key] = pipe.Get(ctx, key)
	}

	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, err
	}

	values := make(map[string]string, len(keys))
	for key, cmd := range commands {
		raw, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				continue
			}
			return nil, err
		}

		values[key] = raw
	}

	return values, nil
}

func (r *redisRepository) announce(ctx context.Context, gameID string, eventType realtime.EventType) {
	if r.feed == nil {
		return
	}

	err := r.feed.Publish(ctx, &realtime.Event{
		Table:  realtime.TableScores,
		Type:   eventType,
		GameID: gameID,
	})
	if err != nil {
		log.Printf("failed to publish scores change for %s: %v", gameID, err)
	}
}
