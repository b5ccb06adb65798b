package game

import (
	"github.com/KirkDiggler/initials/internal/common/clock"
	"github.com/KirkDiggler/initials/internal/common/uuid"
	"github.com/KirkDiggler/initials/internal/gamecode"
	"github.com/KirkDiggler/initials/internal/letters"
	"github.com/KirkDiggler/initials/internal/models"
	answerRepo "github.com/KirkDiggler/initials/internal/repositories/answer"
	gameRepo "github.com/KirkDiggler/initials/internal/repositories/game"
	playerRepo "github.com/KirkDiggler/initials/internal/repositories/player"
	scoreRepo "github.com/KirkDiggler/initials/internal/repositories/score"
)

// Config holds configuration for the game service
type Config struct {
	// DefaultNumTeams is used when CreateGame does not specify a team count
	DefaultNumTeams int

	// DefaultTimerSeconds is used when CreateGame does not specify a duration
	DefaultTimerSeconds int

	// MaxCodeAttempts bounds the retries on join-code collisions
	MaxCodeAttempts int

	// Repository dependencies
	GameRepo   gameRepo.Repository
	PlayerRepo playerRepo.Repository
	AnswerRepo answerRepo.Repository
	ScoreRepo  scoreRepo.Repository

	// Service dependencies
	Letters       *letters.Generator
	GameCodes     *gamecode.Generator
	Clock         clock.Clock
	UUIDGenerator uuid.UUID
}

// CreateGameInput contains parameters for creating a new game
type CreateGameInput struct {
	// InitiatorName is the display name of the player creating the game
	InitiatorName string

	// NumTeams is the number of teams; defaults when zero
	NumTeams int

	// TimerSeconds is the countdown duration; defaults when zero
	TimerSeconds int

	// FirstLetter configures how the left-hand letters are generated
	FirstLetter *letters.SideConfig

	// SecondLetter configures how the right-hand letters are generated
	SecondLetter *letters.SideConfig
}

// CreateGameOutput contains the result of creating a new game
type CreateGameOutput struct {
	// Game is the created game, including its prompt grid and join code
	Game *models.Game

	// Player is the initiator's player record
	Player *models.Player
}

// JoinGameInput contains parameters for joining a game
type JoinGameInput struct {
	// Code is the join code, matched case-insensitively
	Code string

	// PlayerName is the display name of the joining player
	PlayerName string
}

// JoinGameOutput contains the result of joining a game
type JoinGameOutput struct {
	// Game is the joined game
	Game *models.Game

	// Player is the created player record, not yet on a team
	Player *models.Player
}

// JoinTeamInput contains parameters for joining a team
type JoinTeamInput struct {
	GameID     string
	PlayerID   string
	TeamNumber int
}

// StartGameInput contains parameters for starting a game
type StartGameInput struct {
	GameID   string
	PlayerID string
}

// BeginScoringInput contains parameters for moving a game to scoring
type BeginScoringInput struct {
	GameID   string
	PlayerID string
}

// SubmitAnswerInput contains parameters for writing one answer cell
type SubmitAnswerInput struct {
	GameID   string
	PlayerID string

	// RowIndex is the grid row, 0 through 25
	RowIndex int

	// Column selects the first or second word
	Column int

	// Text is the answer; empty after trimming clears the cell
	Text string
}

// ResetGameInput contains parameters for resetting a game
type ResetGameInput struct {
	GameID   string
	PlayerID string
}

// GetGameInput contains parameters for retrieving a game
type GetGameInput struct {
	GameID string
}

// GetGameOutput contains the result of retrieving a game
type GetGameOutput struct {
	// Game is the retrieved game
	Game *models.Game

	// SecondsRemaining is the derived countdown, floored at zero.
	// Zero when the game has not started.
	SecondsRemaining int
}

// GetPlayersInput contains parameters for retrieving a game's players
type GetPlayersInput struct {
	GameID string
}

// GetPlayersOutput contains the result of retrieving a game's players
type GetPlayersOutput struct {
	Players []*models.Player
}
