package game

import (
	"context"
	"errors"
	"testing"
	"time"

	clockMocks "github.com/KirkDiggler/initials/internal/common/clock/mocks"
	uuidMocks "github.com/KirkDiggler/initials/internal/common/uuid/mocks"
	"github.com/KirkDiggler/initials/internal/gamecode"
	"github.com/KirkDiggler/initials/internal/letters"
	"github.com/KirkDiggler/initials/internal/models"
	answerRepo "github.com/KirkDiggler/initials/internal/repositories/answer"
	answerMocks "github.com/KirkDiggler/initials/internal/repositories/answer/mocks"
	gameRepo "github.com/KirkDiggler/initials/internal/repositories/game"
	gameMocks "github.com/KirkDiggler/initials/internal/repositories/game/mocks"
	playerRepo "github.com/KirkDiggler/initials/internal/repositories/player"
	playerMocks "github.com/KirkDiggler/initials/internal/repositories/player/mocks"
	scoreRepo "github.com/KirkDiggler/initials/internal/repositories/score"
	scoreMocks "github.com/KirkDiggler/initials/internal/repositories/score/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type GameServiceTestSuite struct {
	suite.Suite
	mockCtrl       *gomock.Controller
	mockGameRepo   *gameMocks.MockRepository
	mockPlayerRepo *playerMocks.MockRepository
	mockAnswerRepo *answerMocks.MockRepository
	mockScoreRepo  *scoreMocks.MockRepository
	mockClock      *clockMocks.MockClock
	mockUUID       *uuidMocks.MockUUID
	gameService    Service
	ctx            context.Context

	// Test data
	testTime          time.Time
	testGameID        string
	testInitiatorID   string
	testInitiatorName string
	testPlayerID      string
	testPlayerName    string

	// Reusable test fixtures
	waitingGame *models.Game
	playingGame *models.Game
	initiator   *models.Player
	player      *models.Player
}

func (s *GameServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockGameRepo = gameMocks.NewMockRepository(s.mockCtrl)
	s.mockPlayerRepo = playerMocks.NewMockRepository(s.mockCtrl)
	s.mockAnswerRepo = answerMocks.NewMockRepository(s.mockCtrl)
	s.mockScoreRepo = scoreMocks.NewMockRepository(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.mockUUID = uuidMocks.NewMockUUID(s.mockCtrl)

	s.ctx = context.Background()

	// Initialize test data
	s.testTime = time.Date(2025, 11, 2, 12, 0, 0, 0, time.UTC)
	s.testGameID = "test-game-id"
	s.testInitiatorID = "test-initiator-id"
	s.testInitiatorName = "Test Initiator"
	s.testPlayerID = "test-player-id"
	s.testPlayerName = "Test Player"

	// Set up the clock mock to return our test time
	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()

	s.waitingGame = &models.Game{
		ID:            s.testGameID,
		Code:          "IcyApple",
		NumTeams:      2,
		TimerDuration: 180,
		Status:        models.GameStatusWaiting,
		InitiatorID:   s.testInitiatorID,
		CreatedAt:     s.testTime,
		UpdatedAt:     s.testTime,
	}

	startedAt := s.testTime.Add(-time.Minute)
	s.playingGame = &models.Game{
		ID:            s.testGameID,
		Code:          "IcyApple",
		NumTeams:      2,
		TimerDuration: 180,
		Status:        models.GameStatusPlaying,
		StartedAt:     &startedAt,
		InitiatorID:   s.testInitiatorID,
		CreatedAt:     s.testTime,
		UpdatedAt:     s.testTime,
	}

	s.initiator = &models.Player{
		ID:          s.testInitiatorID,
		GameID:      s.testGameID,
		Name:        s.testInitiatorName,
		IsInitiator: true,
		TeamNumber:  1,
		JoinedAt:    s.testTime,
	}

	s.player = &models.Player{
		ID:         s.testPlayerID,
		GameID:     s.testGameID,
		Name:       s.testPlayerName,
		TeamNumber: 2,
		JoinedAt:   s.testTime,
	}

	svc, err := NewService(&Config{
		GameRepo:      s.mockGameRepo,
		PlayerRepo:    s.mockPlayerRepo,
		AnswerRepo:    s.mockAnswerRepo,
		ScoreRepo:     s.mockScoreRepo,
		Letters:       letters.New(&letters.Config{Seed: 42}),
		GameCodes:     gamecode.New(&gamecode.Config{Seed: 42}),
		Clock:         s.mockClock,
		UUIDGenerator: s.mockUUID,
	})
	s.Require().NoError(err)
	s.gameService = svc
}

func (s *GameServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestGameServiceTestSuite(t *testing.T) {
	suite.Run(t, new(GameServiceTestSuite))
}

func (s *GameServiceTestSuite) TestNewServiceValidatesConfig() {
	_, err := NewService(nil)
	s.ErrorIs(err, ErrNilConfig)

	_, err = NewService(&Config{})
	s.ErrorIs(err, ErrNilGameRepo)
}

func (s *GameServiceTestSuite) TestCreateGame() {
	s.mockUUID.EXPECT().NewUUID().Return(s.testInitiatorID)
	s.mockUUID.EXPECT().NewUUID().Return(s.testGameID)

	s.mockGameRepo.EXPECT().
		SaveGame(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *gameRepo.SaveGameInput) error {
			s.Equal(s.testGameID, input.Game.ID)
			s.Equal(models.GameStatusWaiting, input.Game.Status)
			s.Equal(s.testInitiatorID, input.Game.InitiatorID)
			s.NotEmpty(input.Game.Code)
			s.Len(input.Game.RowPrompts, models.NumRows)
			s.Nil(input.Game.StartedAt)
			return nil
		})

	s.mockPlayerRepo.EXPECT().
		SavePlayer(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *playerRepo.SavePlayerInput) error {
			s.Equal(s.testInitiatorID, input.Player.ID)
			s.True(input.Player.IsInitiator)
			s.Equal(1, input.Player.TeamNumber)
			return nil
		})

	out, err := s.gameService.CreateGame(s.ctx, &CreateGameInput{
		InitiatorName: s.testInitiatorName,
		FirstLetter:   &letters.SideConfig{Direction: letters.DirectionAToZ},
		SecondLetter:  &letters.SideConfig{Direction: letters.DirectionUniqueRandom},
	})
	s.Require().NoError(err)

	s.Equal(2, out.Game.NumTeams)
	s.Equal(180, out.Game.TimerDuration)
	s.Equal(s.testInitiatorName, out.Player.Name)
}

func (s *GameServiceTestSuite) TestCreateGameRetriesTakenCode() {
	s.mockUUID.EXPECT().NewUUID().Return(s.testInitiatorID)
	s.mockUUID.EXPECT().NewUUID().Return(s.testGameID)

	first := s.mockGameRepo.EXPECT().
		SaveGame(s.ctx, gomock.Any()).
		Return(gameRepo.ErrGameCodeTaken)

	var savedCode string
	s.mockGameRepo.EXPECT().
		SaveGame(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *gameRepo.SaveGameInput) error {
			savedCode = input.Game.Code
			return nil
		}).
		After(first)

	s.mockPlayerRepo.EXPECT().SavePlayer(s.ctx, gomock.Any()).Return(nil)

	out, err := s.gameService.CreateGame(s.ctx, &CreateGameInput{
		InitiatorName: s.testInitiatorName,
		FirstLetter:   &letters.SideConfig{Direction: letters.DirectionAToZ},
		SecondLetter:  &letters.SideConfig{Direction: letters.DirectionAToZ},
	})
	s.Require().NoError(err)
	s.Equal(savedCode, out.Game.Code)
}

func (s *GameServiceTestSuite) TestCreateGameExhaustsCodes() {
	s.mockUUID.EXPECT().NewUUID().Return(s.testInitiatorID)
	s.mockUUID.EXPECT().NewUUID().Return(s.testGameID)

	s.mockGameRepo.EXPECT().
		SaveGame(s.ctx, gomock.Any()).
		Return(gameRepo.ErrGameCodeTaken).
		Times(5)

	_, err := s.gameService.CreateGame(s.ctx, &CreateGameInput{
		InitiatorName: s.testInitiatorName,
		FirstLetter:   &letters.SideConfig{Direction: letters.DirectionAToZ},
		SecondLetter:  &letters.SideConfig{Direction: letters.DirectionAToZ},
	})
	s.ErrorIs(err, ErrGameCodeExhausted)
}

func (s *GameServiceTestSuite) TestCreateGameRejectsOutOfRangeSettings() {
	tests := []struct {
		name    string
		input   *CreateGameInput
		wantErr error
	}{
		{
			name:    "negative team count",
			input:   &CreateGameInput{NumTeams: -3},
			wantErr: ErrInvalidNumTeams,
		},
		{
			name:    "single team",
			input:   &CreateGameInput{NumTeams: 1},
			wantErr: ErrInvalidNumTeams,
		},
		{
			name:    "too many teams",
			input:   &CreateGameInput{NumTeams: 9},
			wantErr: ErrInvalidNumTeams,
		},
		{
			name:    "timer too short",
			input:   &CreateGameInput{TimerSeconds: 30},
			wantErr: ErrInvalidTimer,
		},
		{
			name:    "timer too long",
			input:   &CreateGameInput{TimerSeconds: 999999},
			wantErr: ErrInvalidTimer,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			tt.input.InitiatorName = s.testInitiatorName
			tt.input.FirstLetter = &letters.SideConfig{Direction: letters.DirectionAToZ}
			tt.input.SecondLetter = &letters.SideConfig{Direction: letters.DirectionZToA}

			_, err := s.gameService.CreateGame(s.ctx, tt.input)
			s.ErrorIs(err, tt.wantErr)
		})
	}
}

func (s *GameServiceTestSuite) TestJoinGame() {
	s.mockGameRepo.EXPECT().
		GetGameByCode(s.ctx, &gameRepo.GetGameByCodeInput{Code: "icyapple"}).
		Return(s.waitingGame, nil)

	s.mockUUID.EXPECT().NewUUID().Return(s.testPlayerID)

	s.mockPlayerRepo.EXPECT().
		SavePlayer(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *playerRepo.SavePlayerInput) error {
			s.Equal(s.testPlayerID, input.Player.ID)
			s.Equal(s.testGameID, input.Player.GameID)
			s.False(input.Player.IsInitiator)
			s.Equal(0, input.Player.TeamNumber)
			return nil
		})

	out, err := s.gameService.JoinGame(s.ctx, &JoinGameInput{
		Code:       "icyapple",
		PlayerName: s.testPlayerName,
	})
	s.Require().NoError(err)
	s.Equal(s.testGameID, out.Game.ID)
}

func (s *GameServiceTestSuite) TestJoinGameNotFound() {
	s.mockGameRepo.EXPECT().
		GetGameByCode(s.ctx, gomock.Any()).
		Return(nil, gameRepo.ErrGameNotFound)

	_, err := s.gameService.JoinGame(s.ctx, &JoinGameInput{
		Code:       "NoSuchCode",
		PlayerName: s.testPlayerName,
	})
	s.ErrorIs(err, ErrGameNotFound)
}

func (s *GameServiceTestSuite) TestJoinGameAlreadyStarted() {
	s.mockGameRepo.EXPECT().
		GetGameByCode(s.ctx, gomock.Any()).
		Return(s.playingGame, nil)

	_, err := s.gameService.JoinGame(s.ctx, &JoinGameInput{
		Code:       "IcyApple",
		PlayerName: s.testPlayerName,
	})
	s.ErrorIs(err, ErrGameAlreadyStarted)
}

func (s *GameServiceTestSuite) TestJoinTeam() {
	s.mockGameRepo.EXPECT().
		GetGame(s.ctx, &gameRepo.GetGameInput{GameID: s.testGameID}).
		Return(s.waitingGame, nil)

	s.mockPlayerRepo.EXPECT().
		GetPlayer(s.ctx, &playerRepo.GetPlayerInput{PlayerID: s.testPlayerID}).
		Return(s.player, nil)

	s.mockPlayerRepo.EXPECT().
		SavePlayer(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *playerRepo.SavePlayerInput) error {
			s.Equal(1, input.Player.TeamNumber)
			return nil
		})

	err := s.gameService.JoinTeam(s.ctx, &JoinTeamInput{
		GameID:     s.testGameID,
		PlayerID:   s.testPlayerID,
		TeamNumber: 1,
	})
	s.NoError(err)
}

func (s *GameServiceTestSuite) TestJoinTeamOutOfRange() {
	s.mockGameRepo.EXPECT().
		GetGame(s.ctx, gomock.Any()).
		Return(s.waitingGame, nil).
		Times(2)

	err := s.gameService.JoinTeam(s.ctx, &JoinTeamInput{
		GameID:     s.testGameID,
		PlayerID:   s.testPlayerID,
		TeamNumber: 0,
	})
	s.ErrorIs(err, ErrInvalidTeam)

	err = s.gameService.JoinTeam(s.ctx, &JoinTeamInput{
		GameID:     s.testGameID,
		PlayerID:   s.testPlayerID,
		TeamNumber: 3,
	})
	s.ErrorIs(err, ErrInvalidTeam)
}

func (s *GameServiceTestSuite) TestJoinTeamAfterStartRejected() {
	s.mockGameRepo.EXPECT().
		GetGame(s.ctx, gomock.Any()).
		Return(s.playingGame, nil)

	err := s.gameService.JoinTeam(s.ctx, &JoinTeamInput{
		GameID:     s.testGameID,
		PlayerID:   s.testPlayerID,
		TeamNumber: 1,
	})
	s.ErrorIs(err, ErrInvalidGameState)
}

func (s *GameServiceTestSuite) TestStartGame() {
	s.mockGameRepo.EXPECT().
		GetGame(s.ctx, gomock.Any()).
		Return(s.waitingGame, nil)

	s.mockPlayerRepo.EXPECT().
		GetPlayersInGame(s.ctx, &playerRepo.GetPlayersInGameInput{GameID: s.testGameID}).
		Return(&playerRepo.GetPlayersInGameOutput{
			Players: []*models.Player{s.initiator, s.player},
		}, nil)

	s.mockGameRepo.EXPECT().
		SaveGame(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *gameRepo.SaveGameInput) error {
			s.Equal(models.GameStatusPlaying, input.Game.Status)
			s.Require().NotNil(input.Game.StartedAt)
			s.Equal(s.testTime, *input.Game.StartedAt)
			return nil
		})

	err := s.gameService.StartGame(s.ctx, &StartGameInput{
		GameID:   s.testGameID,
		PlayerID: s.testInitiatorID,
	})
	s.NoError(err)
}

func (s *GameServiceTestSuite) TestStartGameRequiresInitiator() {
	s.mockGameRepo.EXPECT().
		GetGame(s.ctx, gomock.Any()).
		Return(s.waitingGame, nil)

	err := s.gameService.StartGame(s.ctx, &StartGameInput{
		GameID:   s.testGameID,
		PlayerID: s.testPlayerID,
	})
	s.ErrorIs(err, ErrNotInitiator)
}

func (s *GameServiceTestSuite) TestStartGameRequiresTwoPlayers() {
	s.mockGameRepo.EXPECT().
		GetGame(s.ctx, gomock.Any()).
		Return(s.waitingGame, nil)

	s.mockPlayerRepo.EXPECT().
		GetPlayersInGame(s.ctx, gomock.Any()).
		Return(&playerRepo.GetPlayersInGameOutput{
			Players: []*models.Player{s.initiator},
		}, nil)

	err := s.gameService.StartGame(s.ctx, &StartGameInput{
		GameID:   s.testGameID,
		PlayerID: s.testInitiatorID,
	})
	s.ErrorIs(err, ErrNotEnoughPlayers)
}

func (s *GameServiceTestSuite) TestBeginScoringInitiatorMayForce() {
	// One minute in, 120 seconds still on the clock.
	s.mockGameRepo.EXPECT().
		GetGame(s.ctx, gomock.Any()).
		Return(s.playingGame, nil)

	s.mockGameRepo.EXPECT().
		SaveGame(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *gameRepo.SaveGameInput) error {
			s.Equal(models.GameStatusScoring, input.Game.Status)
			return nil
		})

	err := s.gameService.BeginScoring(s.ctx, &BeginScoringInput{
		GameID:   s.testGameID,
		PlayerID: s.testInitiatorID,
	})
	s.NoError(err)
}

func (s *GameServiceTestSuite) TestBeginScoringOthersMustWait() {
	s.mockGameRepo.EXPECT().
		GetGame(s.ctx, gomock.Any()).
		Return(s.playingGame, nil)

	err := s.gameService.BeginScoring(s.ctx, &BeginScoringInput{
		GameID:   s.testGameID,
		PlayerID: s.testPlayerID,
	})
	s.ErrorIs(err, ErrCountdownRunning)
}

func (s *GameServiceTestSuite) TestBeginScoringAnyoneAfterCountdown() {
	expired := s.testTime.Add(-200 * time.Second)
	game := *s.playingGame
	game.StartedAt = &expired

	s.mockGameRepo.EXPECT().
		GetGame(s.ctx, gomock.Any()).
		Return(&game, nil)

	s.mockGameRepo.EXPECT().
		SaveGame(s.ctx, gomock.Any()).
		Return(nil)

	err := s.gameService.BeginScoring(s.ctx, &BeginScoringInput{
		GameID:   s.testGameID,
		PlayerID: s.testPlayerID,
	})
	s.NoError(err)
}

func (s *GameServiceTestSuite) TestSubmitAnswer() {
	s.mockGameRepo.EXPECT().
		GetGame(s.ctx, gomock.Any()).
		Return(s.playingGame, nil)

	s.mockPlayerRepo.EXPECT().
		GetPlayer(s.ctx, gomock.Any()).
		Return(s.player, nil)

	s.mockUUID.EXPECT().NewUUID().Return("test-answer-id")

	s.mockAnswerRepo.EXPECT().
		SaveAnswer(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *answerRepo.SaveAnswerInput) error {
			s.Equal(s.testGameID, input.Answer.GameID)
			s.Equal(2, input.Answer.TeamNumber)
			s.Equal(4, input.Answer.RowIndex)
			s.Equal(models.ColumnFirstWord, input.Answer.Column)
			s.Equal("Elton", input.Answer.Text)
			s.Equal(s.testPlayerID, input.Answer.PlayerID)
			return nil
		})

	err := s.gameService.SubmitAnswer(s.ctx, &SubmitAnswerInput{
		GameID:   s.testGameID,
		PlayerID: s.testPlayerID,
		RowIndex: 4,
		Column:   models.ColumnFirstWord,
		Text:     "Elton",
	})
	s.NoError(err)
}

func (s *GameServiceTestSuite) TestSubmitAnswerEmptyTextClearsCell() {
	s.mockGameRepo.EXPECT().
		GetGame(s.ctx, gomock.Any()).
		Return(s.playingGame, nil)

	s.mockPlayerRepo.EXPECT().
		GetPlayer(s.ctx, gomock.Any()).
		Return(s.player, nil)

	s.mockAnswerRepo.EXPECT().
		DeleteAnswer(s.ctx, &answerRepo.DeleteAnswerInput{
			GameID:     s.testGameID,
			TeamNumber: 2,
			RowIndex:   4,
			Column:     models.ColumnFirstWord,
		}).
		Return(nil)

	err := s.gameService.SubmitAnswer(s.ctx, &SubmitAnswerInput{
		GameID:   s.testGameID,
		PlayerID: s.testPlayerID,
		RowIndex: 4,
		Column:   models.ColumnFirstWord,
		Text:     "   ",
	})
	s.NoError(err)
}

func (s *GameServiceTestSuite) TestSubmitAnswerValidatesCell() {
	err := s.gameService.SubmitAnswer(s.ctx, &SubmitAnswerInput{
		GameID:   s.testGameID,
		PlayerID: s.testPlayerID,
		RowIndex: 26,
		Column:   models.ColumnFirstWord,
		Text:     "Apple",
	})
	s.ErrorIs(err, ErrInvalidRow)

	err = s.gameService.SubmitAnswer(s.ctx, &SubmitAnswerInput{
		GameID:   s.testGameID,
		PlayerID: s.testPlayerID,
		RowIndex: 0,
		Column:   7,
		Text:     "Apple",
	})
	s.ErrorIs(err, ErrInvalidColumn)
}

func (s *GameServiceTestSuite) TestSubmitAnswerRequiresTeam() {
	unassigned := *s.player
	unassigned.TeamNumber = 0

	s.mockGameRepo.EXPECT().
		GetGame(s.ctx, gomock.Any()).
		Return(s.playingGame, nil)

	s.mockPlayerRepo.EXPECT().
		GetPlayer(s.ctx, gomock.Any()).
		Return(&unassigned, nil)

	err := s.gameService.SubmitAnswer(s.ctx, &SubmitAnswerInput{
		GameID:   s.testGameID,
		PlayerID: s.testPlayerID,
		RowIndex: 0,
		Column:   models.ColumnFirstWord,
		Text:     "Apple",
	})
	s.ErrorIs(err, ErrNoTeam)
}

func (s *GameServiceTestSuite) TestSubmitAnswerRequiresPlayingPhase() {
	s.mockGameRepo.EXPECT().
		GetGame(s.ctx, gomock.Any()).
		Return(s.waitingGame, nil)

	err := s.gameService.SubmitAnswer(s.ctx, &SubmitAnswerInput{
		GameID:   s.testGameID,
		PlayerID: s.testPlayerID,
		RowIndex: 0,
		Column:   models.ColumnFirstWord,
		Text:     "Apple",
	})
	s.ErrorIs(err, ErrInvalidGameState)
}

func (s *GameServiceTestSuite) TestResetGame() {
	s.mockGameRepo.EXPECT().
		GetGame(s.ctx, gomock.Any()).
		Return(s.playingGame, nil)

	s.mockAnswerRepo.EXPECT().
		DeleteAnswersForGame(s.ctx, &answerRepo.DeleteAnswersForGameInput{GameID: s.testGameID}).
		Return(nil)

	s.mockScoreRepo.EXPECT().
		DeleteScoresForGame(s.ctx, &scoreRepo.DeleteScoresForGameInput{GameID: s.testGameID}).
		Return(nil)

	s.mockGameRepo.EXPECT().
		SaveGame(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *gameRepo.SaveGameInput) error {
			s.Equal(models.GameStatusWaiting, input.Game.Status)
			s.Nil(input.Game.StartedAt)
			return nil
		})

	err := s.gameService.ResetGame(s.ctx, &ResetGameInput{
		GameID:   s.testGameID,
		PlayerID: s.testInitiatorID,
	})
	s.NoError(err)
}

func (s *GameServiceTestSuite) TestResetGameRequiresInitiator() {
	s.mockGameRepo.EXPECT().
		GetGame(s.ctx, gomock.Any()).
		Return(s.playingGame, nil)

	err := s.gameService.ResetGame(s.ctx, &ResetGameInput{
		GameID:   s.testGameID,
		PlayerID: s.testPlayerID,
	})
	s.ErrorIs(err, ErrNotInitiator)
}

func (s *GameServiceTestSuite) TestGetGameDerivesCountdown() {
	s.mockGameRepo.EXPECT().
		GetGame(s.ctx, gomock.Any()).
		Return(s.playingGame, nil)

	out, err := s.gameService.GetGame(s.ctx, &GetGameInput{GameID: s.testGameID})
	s.Require().NoError(err)
	s.Equal(120, out.SecondsRemaining)
}

func (s *GameServiceTestSuite) TestGetGameCountdownFloorsAtZero() {
	expired := s.testTime.Add(-time.Hour)
	game := *s.playingGame
	game.StartedAt = &expired

	s.mockGameRepo.EXPECT().
		GetGame(s.ctx, gomock.Any()).
		Return(&game, nil)

	out, err := s.gameService.GetGame(s.ctx, &GetGameInput{GameID: s.testGameID})
	s.Require().NoError(err)
	s.Equal(0, out.SecondsRemaining)
}

func (s *GameServiceTestSuite) TestGetGameNotStarted() {
	s.mockGameRepo.EXPECT().
		GetGame(s.ctx, gomock.Any()).
		Return(s.waitingGame, nil)

	out, err := s.gameService.GetGame(s.ctx, &GetGameInput{GameID: s.testGameID})
	s.Require().NoError(err)
	s.Equal(0, out.SecondsRemaining)
}

func (s *GameServiceTestSuite) TestRepoErrorsPassThrough() {
	repoErr := errors.New("redis exploded")

	s.mockGameRepo.EXPECT().
		GetGame(s.ctx, gomock.Any()).
		Return(nil, repoErr)

	_, err := s.gameService.GetGame(s.ctx, &GetGameInput{GameID: s.testGameID})
	s.ErrorIs(err, repoErr)
}
