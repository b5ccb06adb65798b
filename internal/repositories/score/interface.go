package score

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/initials/internal/repositories/score Repository

// Repository stores manual score overrides and encyclopedia validation
// verdicts. Both are keyed by (game, row, team) and carry the normalized
// answer they were issued against, so stale entries can be ignored once
// the underlying answer changes.
type Repository interface {
	// SaveOverride writes a manual score override, replacing any
	// previous override for the same cell.
	SaveOverride(ctx context.Context, input *SaveOverrideInput) error

	// GetOverridesForGame returns all overrides recorded for a game.
	GetOverridesForGame(ctx context.Context, input *GetOverridesForGameInput) (*GetOverridesForGameOutput, error)

	// SaveValidation writes an encyclopedia validation verdict,
	// replacing any previous verdict for the same cell.
	SaveValidation(ctx context.Context, input *SaveValidationInput) error

	// GetValidationsForGame returns all validation verdicts recorded
	// for a game.
	GetValidationsForGame(ctx context.Context, input *GetValidationsForGameInput) (*GetValidationsForGameOutput, error)

	// DeleteScoresForGame removes every override and validation for a
	// game. Used when a game is reset.
	DeleteScoresForGame(ctx context.Context, input *DeleteScoresForGameInput) error
}
