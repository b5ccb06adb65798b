package models

import (
	"time"
)

const (
	// ColumnFirstWord is the board column holding a row's first word
	ColumnFirstWord = 2

	// ColumnSecondWord is the board column holding a row's second word
	ColumnSecondWord = 3
)

// Answer represents one team's text for a single board cell.
// A cell is identified by (game, team, row, column); the most recent
// write to a cell wins, regardless of which teammate made it.
type Answer struct {
	// ID is the unique identifier for the answer record
	ID string

	// GameID is the ID of the game the answer belongs to
	GameID string

	// TeamNumber is the 1-based team the answer belongs to
	TeamNumber int

	// RowIndex is the row position, 0..25
	RowIndex int

	// Column is the board column, ColumnFirstWord or ColumnSecondWord
	Column int

	// Text is the submitted word
	Text string

	// PlayerID is the teammate who last wrote the cell
	PlayerID string

	// UpdatedAt is when the cell was last written
	UpdatedAt time.Time
}
