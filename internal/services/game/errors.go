package game

// GameError is a custom error type for game-related errors
type GameError string

// Error implements the error interface
func (e GameError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrGameNotFound       GameError = "game not found"
	ErrPlayerNotFound     GameError = "player not found"
	ErrPlayerNotInGame    GameError = "player not in game"
	ErrGameAlreadyStarted GameError = "game has already started"
	ErrGameCodeExhausted  GameError = "could not allocate a unique game code"
	ErrNotInitiator       GameError = "only the game initiator may do this"
	ErrInvalidGameState   GameError = "invalid game state"
	ErrInvalidTeam        GameError = "team number out of range"
	ErrInvalidNumTeams    GameError = "team count must be between 2 and 8"
	ErrInvalidTimer       GameError = "timer must be between 60 and 600 seconds"
	ErrNoTeam             GameError = "player has not joined a team"
	ErrInvalidRow         GameError = "row index out of range"
	ErrInvalidColumn      GameError = "invalid answer column"
	ErrNotEnoughPlayers   GameError = "at least two players are required"
	ErrCountdownRunning   GameError = "the countdown has not finished"
	ErrNilConfig          GameError = "config cannot be nil"
	ErrNilGameRepo        GameError = "game repository cannot be nil"
	ErrNilPlayerRepo      GameError = "player repository cannot be nil"
	ErrNilAnswerRepo      GameError = "answer repository cannot be nil"
	ErrNilScoreRepo       GameError = "score repository cannot be nil"
	ErrNilLetters         GameError = "letter generator cannot be nil"
	ErrNilGameCodes       GameError = "code generator cannot be nil"
	ErrNilClock           GameError = "clock cannot be nil"
	ErrNilUUIDGenerator   GameError = "UUID generator cannot be nil"
)
