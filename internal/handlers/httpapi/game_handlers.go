package httpapi

import (
	"log"
	"net/http"

	"github.com/julienschmidt/httprouter"

	gameService "github.com/KirkDiggler/initials/internal/services/game"
)

func (h *Handler) createGame(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req createGameRequest
	if !decodeBody(w, r, &req) {
		return
	}

	out, err := h.gameService.CreateGame(r.Context(), &gameService.CreateGameInput{
		InitiatorName: req.InitiatorName,
		NumTeams:      req.NumTeams,
		TimerSeconds:  req.TimerSeconds,
		FirstLetter:   req.FirstLetter.toSideConfig(),
		SecondLetter:  req.SecondLetter.toSideConfig(),
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, joinedResponse{
		Game:   toGameResponse(out.Game, 0),
		Player: toPlayerResponse(out.Player),
	})
}

func (h *Handler) joinGame(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req joinGameRequest
	if !decodeBody(w, r, &req) {
		return
	}

	out, err := h.gameService.JoinGame(r.Context(), &gameService.JoinGameInput{
		Code:       req.Code,
		PlayerName: req.PlayerName,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, joinedResponse{
		Game:   toGameResponse(out.Game, 0),
		Player: toPlayerResponse(out.Player),
	})
}

func (h *Handler) getGame(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	out, err := h.gameService.GetGame(r.Context(), &gameService.GetGameInput{
		GameID: ps.ByName("gameid"),
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toGameResponse(out.Game, out.SecondsRemaining))
}

func (h *Handler) getPlayers(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	out, err := h.gameService.GetPlayers(r.Context(), &gameService.GetPlayersInput{
		GameID: ps.ByName("gameid"),
	})
	if err != nil {
		writeError(w, err)
		return
	}

	players := make([]playerResponse, 0, len(out.Players))
	for _, p := range out.Players {
		players = append(players, toPlayerResponse(p))
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"players": players,
	})
}

func (h *Handler) joinTeam(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var req joinTeamRequest
	if !decodeBody(w, r, &req) {
		return
	}

	err := h.gameService.JoinTeam(r.Context(), &gameService.JoinTeamInput{
		GameID:     ps.ByName("gameid"),
		PlayerID:   req.PlayerID,
		TeamNumber: req.TeamNumber,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) startGame(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var req playerActionRequest
	if !decodeBody(w, r, &req) {
		return
	}

	err := h.gameService.StartGame(r.Context(), &gameService.StartGameInput{
		GameID:   ps.ByName("gameid"),
		PlayerID: req.PlayerID,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) beginScoring(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var req playerActionRequest
	if !decodeBody(w, r, &req) {
		return
	}

	err := h.gameService.BeginScoring(r.Context(), &gameService.BeginScoringInput{
		GameID:   ps.ByName("gameid"),
		PlayerID: req.PlayerID,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) resetGame(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var req playerActionRequest
	if !decodeBody(w, r, &req) {
		return
	}

	err := h.gameService.ResetGame(r.Context(), &gameService.ResetGameInput{
		GameID:   ps.ByName("gameid"),
		PlayerID: req.PlayerID,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// submitAnswer acknowledges every well-formed submission. A failed write
// is logged and dropped rather than surfaced: the countdown keeps running
// and the client will resend on its next edit anyway.
func (h *Handler) submitAnswer(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var req submitAnswerRequest
	if !decodeBody(w, r, &req) {
		return
	}

	gameID := ps.ByName("gameid")

	err := h.gameService.SubmitAnswer(r.Context(), &gameService.SubmitAnswerInput{
		GameID:   gameID,
		PlayerID: req.PlayerID,
		RowIndex: req.RowIndex,
		Column:   req.Column,
		Text:     req.Text,
	})
	if err != nil {
		log.Printf("dropped answer for game %s row %d: %v", gameID, req.RowIndex, err)
	}

	w.WriteHeader(http.StatusNoContent)
}
