package models

import (
	"time"
)

// NumRows is the number of prompt rows in every game, one per letter of the alphabet.
const NumRows = 26

// GameStatus represents the current state of a game
type GameStatus string

const (
	// GameStatusWaiting indicates a game is waiting for players to join
	GameStatusWaiting GameStatus = "waiting"

	// GameStatusPlaying indicates the countdown is running and teams are filling in answers
	GameStatusPlaying GameStatus = "playing"

	// GameStatusScoring indicates answers are locked and being scored
	GameStatusScoring GameStatus = "scoring"
)

// IsWaiting returns true if the game is waiting for players
func (s GameStatus) IsWaiting() bool {
	return s == GameStatusWaiting
}

// IsPlaying returns true if the game is in the play phase
func (s GameStatus) IsPlaying() bool {
	return s == GameStatusPlaying
}

// IsScoring returns true if the game is being scored
func (s GameStatus) IsScoring() bool {
	return s == GameStatusScoring
}

// RowPrompt is the letter pair assigned to one of the 26 rows
type RowPrompt struct {
	// RowIndex is the row position, 0..25
	RowIndex int

	// FirstLetter is the uppercase initial for the first word
	FirstLetter string

	// SecondLetter is the uppercase initial for the second word
	SecondLetter string
}

// Game represents a word game session
type Game struct {
	// ID is the unique identifier for the game
	ID string

	// Code is the human-friendly join code, unique case-insensitively
	Code string

	// NumTeams is the number of teams playing
	NumTeams int

	// TimerDuration is the play-phase length in seconds
	TimerDuration int

	// Status is the current state of the game
	Status GameStatus

	// StartedAt is when the initiator started the game; nil while waiting
	StartedAt *time.Time

	// RowPrompts holds the 26 letter pairs, generated once at creation
	RowPrompts []RowPrompt

	// InitiatorID is the ID of the player with authority to start, score and override
	InitiatorID string

	// CreatedAt is when the game was created
	CreatedAt time.Time

	// UpdatedAt is when the game was last updated
	UpdatedAt time.Time
}
