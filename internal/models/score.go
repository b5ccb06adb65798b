package models

import (
	"time"
)

// Classification represents how a team's row answer compared against the other teams
type Classification string

const (
	// ClassificationNoAnswer indicates the team left one or both words blank
	ClassificationNoAnswer Classification = "no_answer"

	// ClassificationSharedMatch indicates another team submitted the same normalized answer
	ClassificationSharedMatch Classification = "shared_match"

	// ClassificationSoleAnswer indicates the team was the only one to answer the row
	ClassificationSoleAnswer Classification = "sole_answer"

	// ClassificationUniqueButContested indicates a unique answer in a row other teams also answered
	ClassificationUniqueButContested Classification = "unique_contested"
)

// Score values awarded per classification
const (
	// ScoreNoAnswer is awarded when a team did not answer a row
	ScoreNoAnswer = 0

	// ScoreSharedMatch is awarded when two or more teams matched
	ScoreSharedMatch = 1

	// ScoreUniqueButContested is awarded for a unique answer in a contested row
	ScoreUniqueButContested = 3

	// ScoreSoleAnswer is awarded to the only team that answered a row
	ScoreSoleAnswer = 5
)

// ValidScore reports whether v is one of the allowed score values.
func ValidScore(v int) bool {
	switch v {
	case ScoreNoAnswer, ScoreSharedMatch, ScoreUniqueButContested, ScoreSoleAnswer:
		return true
	}
	return false
}

// ValidationStatus represents the outcome of an encyclopedia lookup for an answer
type ValidationStatus string

const (
	// ValidationStatusValid indicates the lookup found a matching entry
	ValidationStatusValid ValidationStatus = "valid"

	// ValidationStatusInvalid indicates the lookup found nothing, or failed
	ValidationStatusInvalid ValidationStatus = "invalid"
)

// ScoreEntry is one cell of the score matrix: one team's result for one row
type ScoreEntry struct {
	// RowIndex is the row position, 0..25
	RowIndex int

	// TeamNumber is the 1-based team
	TeamNumber int

	// TeamName is the display name for the team
	TeamName string

	// Word1 is the raw first word, empty if absent
	Word1 string

	// Word2 is the raw second word, empty if absent
	Word2 string

	// Answered indicates both words were non-empty after trimming
	Answered bool

	// Classification is the comparison result against the other teams
	Classification Classification

	// Score is the points awarded for this row
	Score int

	// Overridable indicates the initiator may replace the score
	Overridable bool

	// ValidationStatus is the recorded lookup outcome, empty if never validated
	ValidationStatus ValidationStatus

	// ValidationURL is the canonical reference URL for a valid answer
	ValidationURL string
}

// ScoreOverride records an initiator's explicit score replacement for one cell.
// It applies only while the team's answer still normalizes to AnswerKey.
type ScoreOverride struct {
	// GameID is the ID of the game
	GameID string

	// RowIndex is the row position, 0..25
	RowIndex int

	// TeamNumber is the 1-based team
	TeamNumber int

	// Score is the replacement value
	Score int

	// AnswerKey is the normalized answer the override was applied to
	AnswerKey string

	// CreatedAt is when the override was recorded
	CreatedAt time.Time
}

// AnswerValidation records the outcome of an encyclopedia lookup for one cell.
// Like an override, it lapses once the team's answer changes.
type AnswerValidation struct {
	// GameID is the ID of the game
	GameID string

	// RowIndex is the row position, 0..25
	RowIndex int

	// TeamNumber is the 1-based team
	TeamNumber int

	// Status is the lookup outcome
	Status ValidationStatus

	// URL is the canonical reference URL when Status is valid
	URL string

	// AnswerKey is the normalized answer that was looked up
	AnswerKey string

	// CreatedAt is when the validation was recorded
	CreatedAt time.Time
}

// TeamTotal is one team's summed score across all rows
type TeamTotal struct {
	// TeamNumber is the 1-based team
	TeamNumber int

	// TeamName is the display name for the team
	TeamName string

	// Total is the sum of the team's row scores
	Total int
}
