// Package realtime carries change-notification events between writers and
// views. Repositories publish an event after every successful write;
// views subscribe per table and game and recompute from scratch on each
// event rather than patching state incrementally.
package realtime

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Tables events are published for
const (
	TableGames   = "games"
	TablePlayers = "players"
	TableAnswers = "answers"
	TableScores  = "scores"
)

// EventType represents the kind of change that occurred
type EventType string

const (
	// EventInsert indicates a record was created
	EventInsert EventType = "insert"

	// EventUpdate indicates a record was modified
	EventUpdate EventType = "update"

	// EventDelete indicates records were removed
	EventDelete EventType = "delete"
)

// Event describes one change to a table, scoped to a game
type Event struct {
	// Table is the collection that changed
	Table string `json:"table"`

	// Type is the kind of change
	Type EventType `json:"type"`

	// GameID scopes the change to one game
	GameID string `json:"game_id"`
}

// Publisher is the write side of the feed
type Publisher interface {
	// Publish delivers an event to all current subscribers
	Publish(ctx context.Context, event *Event) error
}

// Feed is the full change-notification contract
type Feed interface {
	Publisher

	// Subscribe opens a stream of events for one table and game.
	// The caller must Close the subscription on teardown.
	Subscribe(ctx context.Context, input *SubscribeInput) (*Subscription, error)
}

// SubscribeInput contains parameters for opening a subscription
type SubscribeInput struct {
	// Table is the collection to watch
	Table string

	// GameID scopes the stream to one game
	GameID string
}

// Subscription is a handle on an open event stream
type Subscription struct {
	events chan *Event
	pubsub *redis.PubSub
}

// Events returns the stream; it is closed when the subscription is closed.
func (s *Subscription) Events() <-chan *Event {
	return s.events
}

// Close tears down the subscription and closes the event channel.
func (s *Subscription) Close() error {
	return s.pubsub.Close()
}

// Config holds configuration for the Redis feed
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisFeed implements Feed over Redis pub/sub
type redisFeed struct {
	client *redis.Client
}

// NewRedis creates a Redis-backed change feed
func NewRedis(cfg *Config) (*redisFeed, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	return &redisFeed{
		client: cfg.RedisClient,
	}, nil
}

func channelName(table, gameID string) string {
	return fmt.Sprintf("changes:%s:%s", table, gameID)
}

// Publish delivers an event to the table's per-game channel
func (f *redisFeed) Publish(ctx context.Context, event *Event) error {
	if event == nil || event.Table == "" || event.GameID == "" {
		return errors.New("event, table and game ID cannot be empty")
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	if err := f.client.Publish(ctx, channelName(event.Table, event.GameID), payload).Err(); err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}

	return nil
}

// Subscribe opens a stream of change events for one table and game
func (f *redisFeed) Subscribe(ctx context.Context, input *SubscribeInput) (*Subscription, error) {
	if input == nil || input.Table == "" || input.GameID == "" {
		return nil, errors.New("input, table and game ID cannot be empty")
	}

	pubsub := f.client.Subscribe(ctx, channelName(input.Table, input.GameID))

	// Confirm the subscription before returning so no event published
	// after Subscribe returns can be missed.
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, fmt.Errorf("failed to subscribe: %w", err)
	}

	sub := &Subscription{
		events: make(chan *Event),
		pubsub: pubsub,
	}

	go func() {
		defer close(sub.events)

		for msg := range pubsub.Channel() {
			var event Event
			if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
				continue
			}
			sub.events <- &event
		}
	}()

	return sub, nil
}
