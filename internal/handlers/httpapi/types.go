package httpapi

import (
	"time"

	"github.com/KirkDiggler/initials/internal/letters"
	"github.com/KirkDiggler/initials/internal/models"
)

// sideConfigRequest selects how one side's letters are generated
type sideConfigRequest struct {
	Direction  string `json:"direction"`
	Weights    string `json:"weights,omitempty"` // "first_names" or "last_names"
	CustomText string `json:"custom_text,omitempty"`
}

func (r *sideConfigRequest) toSideConfig() *letters.SideConfig {
	if r == nil {
		return nil
	}

	cfg := &letters.SideConfig{
		Direction:  letters.Direction(r.Direction),
		CustomText: r.CustomText,
	}

	switch r.Weights {
	case "first_names":
		cfg.Weights = &letters.FirstNameWeights
	case "last_names":
		cfg.Weights = &letters.LastNameWeights
	}

	return cfg
}

type createGameRequest struct {
	InitiatorName string             `json:"initiator_name"`
	NumTeams      int                `json:"num_teams"`
	TimerSeconds  int                `json:"timer_seconds"`
	FirstLetter   *sideConfigRequest `json:"first_letter"`
	SecondLetter  *sideConfigRequest `json:"second_letter"`
}

type joinGameRequest struct {
	Code       string `json:"code"`
	PlayerName string `json:"player_name"`
}

type joinTeamRequest struct {
	PlayerID   string `json:"player_id"`
	TeamNumber int    `json:"team_number"`
}

type playerActionRequest struct {
	PlayerID string `json:"player_id"`
}

type submitAnswerRequest struct {
	PlayerID string `json:"player_id"`
	RowIndex int    `json:"row_index"`
	Column   int    `json:"column"`
	Text     string `json:"text"`
}

type overrideScoreRequest struct {
	PlayerID   string `json:"player_id"`
	RowIndex   int    `json:"row_index"`
	TeamNumber int    `json:"team_number"`
	Score      int    `json:"score"`
}

type validateAnswerRequest struct {
	PlayerID   string `json:"player_id"`
	RowIndex   int    `json:"row_index"`
	TeamNumber int    `json:"team_number"`
}

type rowPromptResponse struct {
	RowIndex     int    `json:"row_index"`
	FirstLetter  string `json:"first_letter"`
	SecondLetter string `json:"second_letter"`
}

type gameResponse struct {
	ID               string              `json:"id"`
	Code             string              `json:"code"`
	NumTeams         int                 `json:"num_teams"`
	TimerDuration    int                 `json:"timer_duration"`
	Status           string              `json:"status"`
	StartedAt        *time.Time          `json:"started_at,omitempty"`
	RowPrompts       []rowPromptResponse `json:"row_prompts"`
	SecondsRemaining int                 `json:"seconds_remaining"`
}

type playerResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	IsInitiator bool      `json:"is_initiator"`
	TeamNumber  int       `json:"team_number"`
	JoinedAt    time.Time `json:"joined_at"`
}

type joinedResponse struct {
	Game   gameResponse   `json:"game"`
	Player playerResponse `json:"player"`
}

type scoreEntryResponse struct {
	RowIndex         int    `json:"row_index"`
	TeamNumber       int    `json:"team_number"`
	TeamName         string `json:"team_name"`
	Word1            string `json:"word1"`
	Word2            string `json:"word2"`
	Answered         bool   `json:"answered"`
	Classification   string `json:"classification"`
	Score            int    `json:"score"`
	Overridable      bool   `json:"overridable"`
	ValidationStatus string `json:"validation_status,omitempty"`
	ValidationURL    string `json:"validation_url,omitempty"`
}

type teamTotalResponse struct {
	TeamNumber int    `json:"team_number"`
	TeamName   string `json:"team_name"`
	Total      int    `json:"total"`
}

type scoreboardResponse struct {
	Entries []scoreEntryResponse `json:"entries"`
	Totals  []teamTotalResponse  `json:"totals"`
}

type validationResponse struct {
	Status string `json:"status"`
	URL    string `json:"url,omitempty"`
}

func toGameResponse(g *models.Game, secondsRemaining int) gameResponse {
	prompts := make([]rowPromptResponse, 0, len(g.RowPrompts))
	for _, p := range g.RowPrompts {
		prompts = append(prompts, rowPromptResponse{
			RowIndex:     p.RowIndex,
			FirstLetter:  p.FirstLetter,
			SecondLetter: p.SecondLetter,
		})
	}

	return gameResponse{
		ID:               g.ID,
		Code:             g.Code,
		NumTeams:         g.NumTeams,
		TimerDuration:    g.TimerDuration,
		Status:           string(g.Status),
		StartedAt:        g.StartedAt,
		RowPrompts:       prompts,
		SecondsRemaining: secondsRemaining,
	}
}

func toPlayerResponse(p *models.Player) playerResponse {
	return playerResponse{
		ID:          p.ID,
		Name:        p.Name,
		IsInitiator: p.IsInitiator,
		TeamNumber:  p.TeamNumber,
		JoinedAt:    p.JoinedAt,
	}
}
