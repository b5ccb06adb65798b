package httpapi

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	scoringService "github.com/KirkDiggler/initials/internal/services/scoring"
)

func (h *Handler) getScoreboard(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	out, err := h.scoringService.GetScoreboard(r.Context(), &scoringService.GetScoreboardInput{
		GameID: ps.ByName("gameid"),
	})
	if err != nil {
		writeError(w, err)
		return
	}

	entries := make([]scoreEntryResponse, 0, len(out.Entries))
	for _, e := range out.Entries {
		entries = append(entries, scoreEntryResponse{
			RowIndex:         e.RowIndex,
			TeamNumber:       e.TeamNumber,
			TeamName:         e.TeamName,
			Word1:            e.Word1,
			Word2:            e.Word2,
			Answered:         e.Answered,
			Classification:   string(e.Classification),
			Score:            e.Score,
			Overridable:      e.Overridable,
			ValidationStatus: string(e.ValidationStatus),
			ValidationURL:    e.ValidationURL,
		})
	}

	totals := make([]teamTotalResponse, 0, len(out.Totals))
	for _, t := range out.Totals {
		totals = append(totals, teamTotalResponse{
			TeamNumber: t.TeamNumber,
			TeamName:   t.TeamName,
			Total:      t.Total,
		})
	}

	writeJSON(w, http.StatusOK, scoreboardResponse{
		Entries: entries,
		Totals:  totals,
	})
}

func (h *Handler) overrideScore(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var req overrideScoreRequest
	if !decodeBody(w, r, &req) {
		return
	}

	err := h.scoringService.OverrideScore(r.Context(), &scoringService.OverrideScoreInput{
		GameID:     ps.ByName("gameid"),
		PlayerID:   req.PlayerID,
		RowIndex:   req.RowIndex,
		TeamNumber: req.TeamNumber,
		Score:      req.Score,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) validateAnswer(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var req validateAnswerRequest
	if !decodeBody(w, r, &req) {
		return
	}

	out, err := h.scoringService.ValidateAnswer(r.Context(), &scoringService.ValidateAnswerInput{
		GameID:     ps.ByName("gameid"),
		PlayerID:   req.PlayerID,
		RowIndex:   req.RowIndex,
		TeamNumber: req.TeamNumber,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, validationResponse{
		Status: string(out.Status),
		URL:    out.URL,
	})
}
