package scoring

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/initials/internal/services/scoring Service

// Service defines the interface for scoreboard operations
type Service interface {
	// GetScoreboard recomputes the full scoreboard for a game
	GetScoreboard(ctx context.Context, input *GetScoreboardInput) (*GetScoreboardOutput, error)

	// OverrideScore pins a manual score to one answered cell
	OverrideScore(ctx context.Context, input *OverrideScoreInput) error

	// ValidateAnswer checks one team's answer against the encyclopedia
	ValidateAnswer(ctx context.Context, input *ValidateAnswerInput) (*ValidateAnswerOutput, error)
}
