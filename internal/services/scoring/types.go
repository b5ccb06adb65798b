package scoring

import (
	"github.com/KirkDiggler/initials/internal/common/clock"
	"github.com/KirkDiggler/initials/internal/encyclopedia"
	"github.com/KirkDiggler/initials/internal/models"
	answerRepo "github.com/KirkDiggler/initials/internal/repositories/answer"
	gameRepo "github.com/KirkDiggler/initials/internal/repositories/game"
	scoreRepo "github.com/KirkDiggler/initials/internal/repositories/score"
)

// Config holds configuration for the scoring service
type Config struct {
	// Repository dependencies
	GameRepo   gameRepo.Repository
	AnswerRepo answerRepo.Repository
	ScoreRepo  scoreRepo.Repository

	// Service dependencies
	Encyclopedia encyclopedia.Client
	Clock        clock.Clock
}

// GetScoreboardInput contains parameters for computing a scoreboard
type GetScoreboardInput struct {
	GameID string
}

// GetScoreboardOutput contains the computed scoreboard
type GetScoreboardOutput struct {
	// Entries holds one entry per row per team, row-major
	Entries []*models.ScoreEntry

	// Totals holds per-team sums, highest first
	Totals []*models.TeamTotal
}

// OverrideScoreInput contains parameters for overriding a cell's score
type OverrideScoreInput struct {
	GameID   string
	PlayerID string

	// RowIndex is the grid row, 0 through 25
	RowIndex int

	// TeamNumber is the 1-based team whose score is overridden
	TeamNumber int

	// Score is the pinned value; must be one of the standard scores
	Score int
}

// ValidateAnswerInput contains parameters for validating an answer
type ValidateAnswerInput struct {
	GameID   string
	PlayerID string

	// RowIndex is the grid row, 0 through 25
	RowIndex int

	// TeamNumber is the 1-based team whose answer is checked
	TeamNumber int
}

// ValidateAnswerOutput contains the validation verdict
type ValidateAnswerOutput struct {
	// Status is the recorded verdict
	Status models.ValidationStatus

	// URL is the encyclopedia page for valid answers
	URL string
}
