package answer

import "github.com/KirkDiggler/initials/internal/models"

// SaveAnswerInput contains parameters for writing a cell
type SaveAnswerInput struct {
	Answer *models.Answer
}

// DeleteAnswerInput identifies the cell to clear
type DeleteAnswerInput struct {
	GameID     string
	TeamNumber int
	RowIndex   int
	Column     int
}

// GetAnswersForGameInput contains parameters for retrieving a game's answers
type GetAnswersForGameInput struct {
	GameID string
}

// GetAnswersForGameOutput contains the result of retrieving a game's answers
type GetAnswersForGameOutput struct {
	Answers []*models.Answer
}

// DeleteAnswersForGameInput contains parameters for clearing a game's answers
type DeleteAnswersForGameInput struct {
	GameID string
}
