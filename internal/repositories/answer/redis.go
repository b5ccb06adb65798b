package answer

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
	answerKeyPrefix = "answer:"
	gameIndexPrefix = "game_answers:" // set of cell keys per game
)

// Config holds configuration for the Redis answer repository
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

// NewRedis creates a new Redis-backed answer repository
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

func cellKey(gameID string, teamNumber, rowIndex, column int) string {
	return fmt.Sprintf("%s%s:%d:%d:%d", answerKeyPrefix, gameID, teamNumber, rowIndex, column)
}

// SaveAnswer writes a cell to Redis, replacing any previous write by the
// same team for that row and column
func (r *redisRepository) SaveAnswer(ctx context.Context, input *SaveAnswerInput) error {
	if input == nil || input.Answer == nil {
		return errors.New("input and answer cannot be nil")
	}

	a := input.Answer
	answerJSON, err := json.Marshal(a)
	if err != nil {
		return fmt.Errorf("failed to marshal answer: %w", err)
	}

	key := cellKey(a.GameID, a.TeamNumber, a.RowIndex, a.Column)

	pipe := r.client.Pipeline()
	pipe.Set(ctx, key, answerJSON, 0)
	pipe.SAdd(ctx, fmt.Sprintf("%s%s", gameIndexPrefix, a.GameID), key)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save answer: %w", err)
	}

	r.announce(ctx, a.GameID, realtime.EventInsert)

	return nil
}

// DeleteAnswer clears one cell in Redis
func (r *redisRepository) DeleteAnswer(ctx context.Context, input *DeleteAnswerInput) error {
	if input == nil || input.GameID == "" {
		return errors.New("input and game ID cannot be empty")
	}

	key := cellKey(input.GameID, input.TeamNumber, input.RowIndex, input.Column)

	pipe := r.client.Pipeline()
	pipe.Del(ctx, key)
	pipe.SRem(ctx, fmt.Sprintf("%s%s", gameIndexPrefix, input.GameID), key)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete answer: %w", err)
	}

	r.announce(ctx, input.GameID, realtime.EventDelete)

	return nil
}

// GetAnswersForGame retrieves every written cell in a game from Redis
func (r *redisRepository) GetAnswersForGame(ctx context.Context, input *GetAnswersForGameInput) (*GetAnswersForGameOutput, error) {
	if input == nil || input.GameID == "" {
		return nil, errors.New("input and game ID cannot be empty")
	}

	indexKey := fmt.Sprintf("%s%s", gameIndexPrefix, input.GameID)
	cellKeys, err := r.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get answer keys: %w", err)
	}

	if len(cellKeys) == 0 {
		return &GetAnswersForGameOutput{
			Answers: []*models.Answer{},
		}, nil
	}

	pipe := r.client.Pipeline()
	answerCommands := make(map[string]*redis.StringCmd, len(cellKeys))

	for _, key := range cellKeys {
		answerCommands[key] = pipe.Get(ctx, key)
	}

	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get answers: %w", err)
	}

	answers := make([]*models.Answer, 0, len(cellKeys))
	for key, cmd := range answerCommands {
		answerJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				// Cell was cleared between reading the index and the fetch
				continue
			}
			return nil, fmt.Errorf("failed to get answer %s: %w", key, err)
		}

		var a models.Answer
		if err := json.Unmarshal([]byte(answerJSON), &a); err != nil {
			return nil, fmt.Errorf("failed to unmarshal answer %s: %w", key, err)
		}

		answers = append(answers, &a)
	}

	return &GetAnswersForGameOutput{
		Answers: answers,
	}, nil
}

// DeleteAnswersForGame removes all of a game's cells from Redis
func (r *redisRepository) DeleteAnswersForGame(ctx context.Context, input *DeleteAnswersForGameInput) error {
	if input == nil || input.GameID == "" {
		return errors.New("input and game ID cannot be empty")
	}

	indexKey := fmt.Sprintf("%s%s", gameIndexPrefix, input.GameID)
	cellKeys, err := r.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return fmt.Errorf("failed to get answer keys: %w", err)
	}

	pipe := r.client.Pipeline()
	for _, key := range cellKeys {
		pipe.Del(ctx, key)
	}
	pipe.Del(ctx, indexKey)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete answers: %w", err)
	}

	r.announce(ctx, input.GameID, realtime.EventDelete)

	return nil
}

func (r *redisRepository) announce(ctx context.Context, gameID string, eventType realtime.EventType) {
	if r.feed == nil {
		return
	}

	err := r.feed.Publish(ctx, &realtime.Event{
		Table:  realtime.TableAnswers,
		Type:   eventType,
		GameID: gameID,
	})
	if err != nil {
		log.Printf("failed to publish answers change for %s: %v", gameID, err)
	}
}
