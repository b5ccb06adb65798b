package scoring

import (
	"context"
	"errors"
	"strings"

	"github.com/KirkDiggler/initials/internal/encyclopedia"
	"github.com/KirkDiggler/initials/internal/models"
	answerRepo "github.com/KirkDiggler/initials/internal/repositories/answer"
	gameRepo "github.com/KirkDiggler/initials/internal/repositories/game"
	scoreRepo "github.com/KirkDiggler/initials/internal/repositories/score"
	"github.com/KirkDiggler/initials/internal/scoring"
)

// service implements the Service interface
type service struct {
	config *Config
}

// NewService creates a new scoring service
func NewService(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.GameRepo == nil {
		return nil, ErrNilGameRepo
	}

	if cfg.AnswerRepo == nil {
		return nil, ErrNilAnswerRepo
	}

	if cfg.ScoreRepo == nil {
		return nil, ErrNilScoreRepo
	}

	if cfg.Encyclopedia == nil {
		return nil, ErrNilEncyclopedia
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	return &service{
		config: cfg,
	}, nil
}

// GetScoreboard recomputes the full scoreboard from the stored answers,
// overrides and validation verdicts. Playing games are allowed so the
// score view can show a live recompute before answers lock.
func (s *service) GetScoreboard(ctx context.Context, input *GetScoreboardInput) (*GetScoreboardOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	game, err := s.getGame(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	if game.Status.IsWaiting() {
		return nil, ErrInvalidGameState
	}

	answers, overrides, validations, err := s.loadRecords(ctx, game.ID)
	if err != nil {
		return nil, err
	}

	entries := scoring.Scoreboard(game.NumTeams, answers, overrides, validations)

	return &GetScoreboardOutput{
		Entries: entries,
		Totals:  scoring.TeamTotals(game.NumTeams, entries),
	}, nil
}

// OverrideScore pins a manual score to one answered cell. The override is
// stored with the cell's current normalized answer, so it lapses if the
// team later changes the answer.
func (s *service) OverrideScore(ctx context.Context, input *OverrideScoreInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	if !models.ValidScore(input.Score) {
		return ErrInvalidScore
	}

	game, err := s.checkCell(ctx, input.GameID, input.PlayerID, input.RowIndex, input.TeamNumber)
	if err != nil {
		return err
	}

	word1, word2, answered, err := s.teamWords(ctx, game.ID, input.RowIndex, input.TeamNumber)
	if err != nil {
		return err
	}

	if !answered {
		return ErrCellNotAnswered
	}

	return s.config.ScoreRepo.SaveOverride(ctx, &scoreRepo.SaveOverrideInput{
		Override: &models.ScoreOverride{
			GameID:     game.ID,
			RowIndex:   input.RowIndex,
			TeamNumber: input.TeamNumber,
			Score:      input.Score,
			AnswerKey:  scoring.Normalize(word1, word2),
			CreatedAt:  s.config.Clock.Now(),
		},
	})
}

// ValidateAnswer joins the team's two words and looks the phrase up in
// the encyclopedia. Lookup failures count as invalid: a phrase the
// encyclopedia cannot vouch for scores zero until re-validated.
func (s *service) ValidateAnswer(ctx context.Context, input *ValidateAnswerInput) (*ValidateAnswerOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	game, err := s.checkCell(ctx, input.GameID, input.PlayerID, input.RowIndex, input.TeamNumber)
	if err != nil {
		return nil, err
	}

	word1, word2, answered, err := s.teamWords(ctx, game.ID, input.RowIndex, input.TeamNumber)
	if err != nil {
		return nil, err
	}

	if !answered {
		return nil, ErrCellNotAnswered
	}

	status := models.ValidationStatusInvalid
	url := ""

	lookup, err := s.config.Encyclopedia.LookupTitle(ctx, &encyclopedia.LookupTitleInput{
		Title: word1 + " " + word2,
	})
	if err == nil && lookup.Found {
		status = models.ValidationStatusValid
		url = lookup.URL
	}

	err = s.config.ScoreRepo.SaveValidation(ctx, &scoreRepo.SaveValidationInput{
		Validation: &models.AnswerValidation{
			GameID:     game.ID,
			RowIndex:   input.RowIndex,
			TeamNumber: input.TeamNumber,
			Status:     status,
			URL:        url,
			AnswerKey:  scoring.Normalize(word1, word2),
			CreatedAt:  s.config.Clock.Now(),
		},
	})
	if err != nil {
		return nil, err
	}

	return &ValidateAnswerOutput{
		Status: status,
		URL:    url,
	}, nil
}

func (s *service) getGame(ctx context.Context, gameID string) (*models.Game, error) {
	game, err := s.config.GameRepo.GetGame(ctx, &gameRepo.GetGameInput{
		GameID: gameID,
	})
	if err != nil {
		if errors.Is(err, gameRepo.ErrGameNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, err
	}

	return game, nil
}

// checkCell loads the game and enforces the shared preconditions of the
// initiator-only cell operations
func (s *service) checkCell(ctx context.Context, gameID, playerID string, rowIndex, teamNumber int) (*models.Game, error) {
	if rowIndex < 0 || rowIndex >= models.NumRows {
		return nil, ErrInvalidRow
	}

	game, err := s.getGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	if game.InitiatorID != playerID {
		return nil, ErrNotInitiator
	}

	if teamNumber < 1 || teamNumber > game.NumTeams {
		return nil, ErrInvalidTeam
	}

	return game, nil
}

// teamWords returns the team's raw words for a row. answered is true only
// when both columns hold non-blank text, matching how the scoring engine
// decides whether a cell counts.
func (s *service) teamWords(ctx context.Context, gameID string, rowIndex, teamNumber int) (string, string, bool, error) {
	answers, err := s.config.AnswerRepo.GetAnswersForGame(ctx, &answerRepo.GetAnswersForGameInput{
		GameID: gameID,
	})
	if err != nil {
		return "", "", false, err
	}

	var word1, word2 string
	for _, a := range answers.Answers {
		if a.RowIndex != rowIndex || a.TeamNumber != teamNumber {
			continue
		}

		switch a.Column {
		case models.ColumnFirstWord:
			word1 = a.Text
		case models.ColumnSecondWord:
			word2 = a.Text
		}
	}

	answered := strings.TrimSpace(word1) != "" && strings.TrimSpace(word2) != ""

	return word1, word2, answered, nil
}

func (s *service) loadRecords(ctx context.Context, gameID string) ([]*models.Answer, []*models.ScoreOverride, []*models.AnswerValidation, error) {
	answers, err := s.config.AnswerRepo.GetAnswersForGame(ctx, &answerRepo.GetAnswersForGameInput{
		GameID: gameID,
	})
	if err != nil {
		return nil, nil, nil, err
	}

	overrides, err := s.config.ScoreRepo.GetOverridesForGame(ctx, &scoreRepo.GetOverridesForGameInput{
		GameID: gameID,
	})
	if err != nil {
		return nil, nil, nil, err
	}

	validations, err := s.config.ScoreRepo.GetValidationsForGame(ctx, &scoreRepo.GetValidationsForGameInput{
		GameID: gameID,
	})
	if err != nil {
		return nil, nil, nil, err
	}

	return answers.Answers, overrides.Overrides, validations.Validations, nil
}
