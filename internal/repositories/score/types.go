package score

import "github.com/KirkDiggler/initials/internal/models"

// SaveOverrideInput is the input for the SaveOverride operation.
type SaveOverrideInput struct {
	// Override is the override to persist. Required.
	Override *models.ScoreOverride
}

// GetOverridesForGameInput is the input for the GetOverridesForGame operation.
type GetOverridesForGameInput struct {
	// GameID is the ID of the game. Required.
	GameID string
}

// GetOverridesForGameOutput is the output for the GetOverridesForGame operation.
type GetOverridesForGameOutput struct {
	// Overrides holds every override recorded for the game.
	Overrides []*models.ScoreOverride
}

// SaveValidationInput is the input for the SaveValidation operation.
type SaveValidationInput struct {
	// Validation is the verdict to persist. Required.
	Validation *models.AnswerValidation
}

// GetValidationsForGameInput is the input for the GetValidationsForGame operation.
type GetValidationsForGameInput struct {
	// GameID is the ID of the game. Required.
	GameID string
}

// GetValidationsForGameOutput is the output for the GetValidationsForGame operation.
type GetValidationsForGameOutput struct {
	// Validations holds every verdict recorded for the game.
	Validations []*models.AnswerValidation
}

// DeleteScoresForGameInput is the input for the DeleteScoresForGame operation.
type DeleteScoresForGameInput struct {
	// GameID is the ID of the game. Required.
	GameID string
}
