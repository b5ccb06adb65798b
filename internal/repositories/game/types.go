package game

import "github.com/KirkDiggler/initials/internal/models"

// SaveGameInput contains parameters for saving a game
type SaveGameInput struct {
	Game *models.Game
}

// GetGameInput contains parameters for retrieving a game
type GetGameInput struct {
	GameID string
}

// GetGameByCodeInput contains parameters for retrieving a game by join code
type GetGameByCodeInput struct {
	Code string
}

// DeleteGameInput contains parameters for deleting a game
type DeleteGameInput struct {
	GameID string
}
