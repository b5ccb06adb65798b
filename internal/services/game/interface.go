package game

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/initials/internal/services/game Service

// Service defines the interface for game lifecycle operations
type Service interface {
	// CreateGame creates a new game, its prompt grid and join code, and
	// registers the creating player as the initiator on team 1
	CreateGame(ctx context.Context, input *CreateGameInput) (*CreateGameOutput, error)

	// JoinGame adds a player to a waiting game by its join code
	JoinGame(ctx context.Context, input *JoinGameInput) (*JoinGameOutput, error)

	// JoinTeam places a player on a team during the waiting phase
	JoinTeam(ctx context.Context, input *JoinTeamInput) error

	// StartGame moves a waiting game to playing and starts the countdown
	StartGame(ctx context.Context, input *StartGameInput) error

	// BeginScoring moves a playing game to scoring
	BeginScoring(ctx context.Context, input *BeginScoringInput) error

	// SubmitAnswer writes or clears one answer cell for the player's team
	SubmitAnswer(ctx context.Context, input *SubmitAnswerInput) error

	// ResetGame returns a game to the waiting phase, clearing all answers
	// and score records
	ResetGame(ctx context.Context, input *ResetGameInput) error

	// GetGame returns a game and its derived countdown
	GetGame(ctx context.Context, input *GetGameInput) (*GetGameOutput, error)

	// GetPlayers returns every player in a game, oldest join first
	GetPlayers(ctx context.Context, input *GetPlayersInput) (*GetPlayersOutput, error)
}
