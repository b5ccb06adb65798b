package models

import (
	"time"
)

// Player represents a participant in a game
type Player struct {
	// ID is the unique identifier for the player
	ID string

	// GameID is the ID of the game the player belongs to
	GameID string

	// Name is the display name of the player
	Name string

	// IsInitiator indicates if this player created the game
	IsInitiator bool

	// TeamNumber is the 1-based team the player joined; 0 means unassigned
	TeamNumber int

	// JoinedAt is when the player joined the game
	JoinedAt time.Time
}
