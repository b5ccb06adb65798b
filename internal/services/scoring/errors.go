package scoring

// ScoringError is a custom error type for scoring-related errors
type ScoringError string

// Error implements the error interface
func (e ScoringError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrGameNotFound     ScoringError = "game not found"
	ErrNotInitiator     ScoringError = "only the game initiator may do this"
	ErrInvalidGameState ScoringError = "invalid game state"
	ErrInvalidTeam      ScoringError = "team number out of range"
	ErrInvalidRow       ScoringError = "row index out of range"
	ErrInvalidScore     ScoringError = "score must be 0, 1, 3 or 5"
	ErrCellNotAnswered  ScoringError = "the team has not answered that row"
	ErrNilConfig        ScoringError = "config cannot be nil"
	ErrNilGameRepo      ScoringError = "game repository cannot be nil"
	ErrNilAnswerRepo    ScoringError = "answer repository cannot be nil"
	ErrNilScoreRepo     ScoringError = "score repository cannot be nil"
	ErrNilEncyclopedia  ScoringError = "encyclopedia client cannot be nil"
	ErrNilClock         ScoringError = "clock cannot be nil"
)
