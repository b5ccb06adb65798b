package answer

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/initials/internal/repositories/answer Repository

import (
	"context"
)

// Repository defines the interface for answer-cell persistence. A cell is
// keyed by (game, team, row, column), so writing a cell replaces whatever
// any teammate wrote there before: last write wins.
type Repository interface {
	// SaveAnswer writes a cell
	SaveAnswer(ctx context.Context, input *SaveAnswerInput) error

	// DeleteAnswer clears a cell
	DeleteAnswer(ctx context.Context, input *DeleteAnswerInput) error

	// GetAnswersForGame retrieves every written cell in a game
	GetAnswersForGame(ctx context.Context, input *GetAnswersForGameInput) (*GetAnswersForGameOutput, error)

	// DeleteAnswersForGame removes all of a game's cells
	DeleteAnswersForGame(ctx context.Context, input *DeleteAnswersForGameInput) error
}
