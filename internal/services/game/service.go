package game

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/KirkDiggler/initials/internal/models"
	answerRepo "github.com/KirkDiggler/initials/internal/repositories/answer"
	gameRepo "github.com/KirkDiggler/initials/internal/repositories/game"
	playerRepo "github.com/KirkDiggler/initials/internal/repositories/player"
	scoreRepo "github.com/KirkDiggler/initials/internal/repositories/score"
)

const (
	defaultNumTeams     = 2
	defaultTimerSeconds = 180
	defaultCodeAttempts = 5

	minNumTeams     = 2
	maxNumTeams     = 8
	minTimerSeconds = 60
	maxTimerSeconds = 600
)

// service implements the Service interface
type service struct {
	config *Config
}

// NewService creates a new game service
func NewService(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.GameRepo == nil {
		return nil, ErrNilGameRepo
	}

	if cfg.PlayerRepo == nil {
		return nil, ErrNilPlayerRepo
	}

	if cfg.AnswerRepo == nil {
		return nil, ErrNilAnswerRepo
	}

	if cfg.ScoreRepo == nil {
		return nil, ErrNilScoreRepo
	}

	if cfg.Letters == nil {
		return nil, ErrNilLetters
	}

	if cfg.GameCodes == nil {
		return nil, ErrNilGameCodes
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	if cfg.DefaultNumTeams == 0 {
		cfg.DefaultNumTeams = defaultNumTeams
	}

	if cfg.DefaultTimerSeconds == 0 {
		cfg.DefaultTimerSeconds = defaultTimerSeconds
	}

	if cfg.MaxCodeAttempts == 0 {
		cfg.MaxCodeAttempts = defaultCodeAttempts
	}

	return &service{
		config: cfg,
	}, nil
}

// CreateGame generates the prompt grid and a join code, persists the game,
// and registers the creating player as the initiator on team 1. Join code
// collisions are retried with a fresh code a bounded number of times.
func (s *service) CreateGame(ctx context.Context, input *CreateGameInput) (*CreateGameOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	numTeams := input.NumTeams
	if numTeams == 0 {
		numTeams = s.config.DefaultNumTeams
	}
	if numTeams < minNumTeams || numTeams > maxNumTeams {
		return nil, ErrInvalidNumTeams
	}

	timerSeconds := input.TimerSeconds
	if timerSeconds == 0 {
		timerSeconds = s.config.DefaultTimerSeconds
	}
	if timerSeconds < minTimerSeconds || timerSeconds > maxTimerSeconds {
		return nil, ErrInvalidTimer
	}

	prompts, err := s.config.Letters.GeneratePrompts(input.FirstLetter, input.SecondLetter)
	if err != nil {
		return nil, err
	}

	now := s.config.Clock.Now()
	initiatorID := s.config.UUIDGenerator.NewUUID()

	game := &models.Game{
		ID:            s.config.UUIDGenerator.NewUUID(),
		NumTeams:      numTeams,
		TimerDuration: timerSeconds,
		Status:        models.GameStatusWaiting,
		RowPrompts:    prompts,
		InitiatorID:   initiatorID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	saved := false
	for attempt := 0; attempt < s.config.MaxCodeAttempts; attempt++ {
		game.Code = s.config.GameCodes.Generate()

		err := s.config.GameRepo.SaveGame(ctx, &gameRepo.SaveGameInput{
			Game: game,
		})
		if err == nil {
			saved = true
			break
		}

		if !errors.Is(err, gameRepo.ErrGameCodeTaken) {
			return nil, err
		}
	}

	if !saved {
		return nil, ErrGameCodeExhausted
	}

	player := &models.Player{
		ID:          initiatorID,
		GameID:      game.ID,
		Name:        input.InitiatorName,
		IsInitiator: true,
		TeamNumber:  1,
		JoinedAt:    now,
	}

	err = s.config.PlayerRepo.SavePlayer(ctx, &playerRepo.SavePlayerInput{
		Player: player,
	})
	if err != nil {
		return nil, err
	}

	return &CreateGameOutput{
		Game:   game,
		Player: player,
	}, nil
}

// JoinGame adds a player to a waiting game by its join code
func (s *service) JoinGame(ctx context.Context, input *JoinGameInput) (*JoinGameOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	game, err := s.config.GameRepo.GetGameByCode(ctx, &gameRepo.GetGameByCodeInput{
		Code: input.Code,
	})
	if err != nil {
		if errors.Is(err, gameRepo.ErrGameNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, err
	}

	if !game.Status.IsWaiting() {
		return nil, ErrGameAlreadyStarted
	}

	player := &models.Player{
		ID:       s.config.UUIDGenerator.NewUUID(),
		GameID:   game.ID,
		Name:     input.PlayerName,
		JoinedAt: s.config.Clock.Now(),
	}

	err = s.config.PlayerRepo.SavePlayer(ctx, &playerRepo.SavePlayerInput{
		Player: player,
	})
	if err != nil {
		return nil, err
	}

	return &JoinGameOutput{
		Game:   game,
		Player: player,
	}, nil
}

// JoinTeam places a player on a team during the waiting phase
func (s *service) JoinTeam(ctx context.Context, input *JoinTeamInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	game, err := s.getGame(ctx, input.GameID)
	if err != nil {
		return err
	}

	if !game.Status.IsWaiting() {
		return ErrInvalidGameState
	}

	if input.TeamNumber < 1 || input.TeamNumber > game.NumTeams {
		return ErrInvalidTeam
	}

	player, err := s.getPlayerInGame(ctx, game, input.PlayerID)
	if err != nil {
		return err
	}

	player.TeamNumber = input.TeamNumber

	return s.config.PlayerRepo.SavePlayer(ctx, &playerRepo.SavePlayerInput{
		Player: player,
	})
}

// StartGame moves a waiting game to playing and starts the countdown.
// Only the initiator may start, and at least two players must have joined.
func (s *service) StartGame(ctx context.Context, input *StartGameInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	game, err := s.getGame(ctx, input.GameID)
	if err != nil {
		return err
	}

	if game.InitiatorID != input.PlayerID {
		return ErrNotInitiator
	}

	if !game.Status.IsWaiting() {
		return ErrInvalidGameState
	}

	players, err := s.config.PlayerRepo.GetPlayersInGame(ctx, &playerRepo.GetPlayersInGameInput{
		GameID: game.ID,
	})
	if err != nil {
		return err
	}

	if len(players.Players) < 2 {
		return ErrNotEnoughPlayers
	}

	now := s.config.Clock.Now()
	game.Status = models.GameStatusPlaying
	game.StartedAt = &now
	game.UpdatedAt = now

	return s.config.GameRepo.SaveGame(ctx, &gameRepo.SaveGameInput{
		Game: game,
	})
}

// BeginScoring moves a playing game to scoring. The initiator may force
// it at any time; anyone else only once the countdown has run out.
func (s *service) BeginScoring(ctx context.Context, input *BeginScoringInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	game, err := s.getGame(ctx, input.GameID)
	if err != nil {
		return err
	}

	if !game.Status.IsPlaying() {
		return ErrInvalidGameState
	}

	now := s.config.Clock.Now()
	if game.InitiatorID != input.PlayerID && remaining(now, game.StartedAt, game.TimerDuration) > 0 {
		return ErrCountdownRunning
	}

	game.Status = models.GameStatusScoring
	game.UpdatedAt = now

	return s.config.GameRepo.SaveGame(ctx, &gameRepo.SaveGameInput{
		Game: game,
	})
}

// SubmitAnswer writes or clears one answer cell for the player's team.
// The last write to a cell wins; there is no merging of teammate edits.
func (s *service) SubmitAnswer(ctx context.Context, input *SubmitAnswerInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	if input.RowIndex < 0 || input.RowIndex >= models.NumRows {
		return ErrInvalidRow
	}

	if input.Column != models.ColumnFirstWord && input.Column != models.ColumnSecondWord {
		return ErrInvalidColumn
	}

	game, err := s.getGame(ctx, input.GameID)
	if err != nil {
		return err
	}

	if !game.Status.IsPlaying() {
		return ErrInvalidGameState
	}

	player, err := s.getPlayerInGame(ctx, game, input.PlayerID)
	if err != nil {
		return err
	}

	if player.TeamNumber == 0 {
		return ErrNoTeam
	}

	if strings.TrimSpace(input.Text) == "" {
		return s.config.AnswerRepo.DeleteAnswer(ctx, &answerRepo.DeleteAnswerInput{
			GameID:     game.ID,
			TeamNumber: player.TeamNumber,
			RowIndex:   input.RowIndex,
			Column:     input.Column,
		})
	}

	return s.config.AnswerRepo.SaveAnswer(ctx, &answerRepo.SaveAnswerInput{
		Answer: &models.Answer{
			ID:         s.config.UUIDGenerator.NewUUID(),
			GameID:     game.ID,
			TeamNumber: player.TeamNumber,
			RowIndex:   input.RowIndex,
			Column:     input.Column,
			Text:       input.Text,
			PlayerID:   player.ID,
			UpdatedAt:  s.config.Clock.Now(),
		},
	})
}

// ResetGame returns a game to the waiting phase. All answers, overrides
// and validation verdicts are cleared and the countdown is reset.
func (s *service) ResetGame(ctx context.Context, input *ResetGameInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	game, err := s.getGame(ctx, input.GameID)
	if err != nil {
		return err
	}

	if game.InitiatorID != input.PlayerID {
		return ErrNotInitiator
	}

	err = s.config.AnswerRepo.DeleteAnswersForGame(ctx, &answerRepo.DeleteAnswersForGameInput{
		GameID: game.ID,
	})
	if err != nil {
		return err
	}

	err = s.config.ScoreRepo.DeleteScoresForGame(ctx, &scoreRepo.DeleteScoresForGameInput{
		GameID: game.ID,
	})
	if err != nil {
		return err
	}

	game.Status = models.GameStatusWaiting
	game.StartedAt = nil
	game.UpdatedAt = s.config.Clock.Now()

	return s.config.GameRepo.SaveGame(ctx, &gameRepo.SaveGameInput{
		Game: game,
	})
}

// GetGame returns a game and its derived countdown
func (s *service) GetGame(ctx context.Context, input *GetGameInput) (*GetGameOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	game, err := s.getGame(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	return &GetGameOutput{
		Game:             game,
		SecondsRemaining: remaining(s.config.Clock.Now(), game.StartedAt, game.TimerDuration),
	}, nil
}

// GetPlayers returns every player in a game, oldest join first
func (s *service) GetPlayers(ctx context.Context, input *GetPlayersInput) (*GetPlayersOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	players, err := s.config.PlayerRepo.GetPlayersInGame(ctx, &playerRepo.GetPlayersInGameInput{
		GameID: input.GameID,
	})
	if err != nil {
		return nil, err
	}

	return &GetPlayersOutput{
		Players: players.Players,
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

func (s *service) getPlayerInGame(ctx context.Context, game *models.Game, playerID string) (*models.Player, error) {
	player, err := s.config.PlayerRepo.GetPlayer(ctx, &playerRepo.GetPlayerInput{
		PlayerID: playerID,
	})
	if err != nil {
		if errors.Is(err, playerRepo.ErrPlayerNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, err
	}

	if player.GameID != game.ID {
		return nil, ErrPlayerNotInGame
	}

	return player, nil
}

// remaining derives the countdown from the start time. Clients poll this
// rather than receiving a pushed tick.
func remaining(now time.Time, startedAt *time.Time, durationSeconds int) int {
	if startedAt == nil {
		return 0
	}

	elapsed := int(now.Sub(*startedAt) / time.Second)
	left := durationSeconds - elapsed
	if left < 0 {
		return 0
	}

	return left
}
