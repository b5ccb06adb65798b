package game

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/initials/internal/repositories/game Repository

import (
	"context"

	"github.com/KirkDiggler/initials/internal/models"
)

// Repository defines the interface for game data persistence
type Repository interface {
	// SaveGame persists a game, claiming its join code on first save
	SaveGame(ctx context.Context, input *SaveGameInput) error

	// GetGame retrieves a game by ID
	GetGame(ctx context.Context, input *GetGameInput) (*models.Game, error)

	// GetGameByCode retrieves a game by join code, case-insensitively
	GetGameByCode(ctx context.Context, input *GetGameByCodeInput) (*models.Game, error)

	// DeleteGame removes a game and releases its code
	DeleteGame(ctx context.Context, input *DeleteGameInput) error
}
