// Package httpapi exposes the game and scoring services over JSON
// endpoints, a WebSocket change stream, and a QR code for sharing the
// join URL. It is thin glue: all game rules live in the services.
package httpapi

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"

	"github.com/KirkDiggler/initials/internal/realtime"
	gameService "github.com/KirkDiggler/initials/internal/services/game"
	scoringService "github.com/KirkDiggler/initials/internal/services/scoring"
)

// Config holds configuration for the HTTP handler
type Config struct {
	// GameService drives the game lifecycle
	GameService gameService.Service

	// ScoringService drives the scoreboard
	ScoringService scoringService.Service

	// Feed streams change events to WebSocket clients
	Feed realtime.Feed

	// BaseURL is the externally visible URL used in QR codes,
	// e.g. "https://initials.example.com"
	BaseURL string
}

// Handler serves the HTTP and WebSocket API
type Handler struct {
	gameService    gameService.Service
	scoringService scoringService.Service
	feed           realtime.Feed
	baseURL        string
	upgrader       websocket.Upgrader
}

// New creates a new HTTP handler
func New(cfg *Config) (*Handler, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.GameService == nil {
		return nil, errors.New("game service cannot be nil")
	}

	if cfg.ScoringService == nil {
		return nil, errors.New("scoring service cannot be nil")
	}

	if cfg.Feed == nil {
		return nil, errors.New("feed cannot be nil")
	}

	return &Handler{
		gameService:    cfg.GameService,
		scoringService: cfg.ScoringService,
		feed:           cfg.Feed,
		baseURL:        cfg.BaseURL,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}, nil
}

// Router builds the route table
func (h *Handler) Router() *httprouter.Router {
	router := httprouter.New()

	router.POST("/api/games", h.createGame)
	router.POST("/api/games/join", h.joinGame)
	router.GET("/api/games/:gameid", h.getGame)
	router.GET("/api/games/:gameid/players", h.getPlayers)
	router.POST("/api/games/:gameid/team", h.joinTeam)
	router.POST("/api/games/:gameid/start", h.startGame)
	router.POST("/api/games/:gameid/scoring", h.beginScoring)
	router.POST("/api/games/:gameid/reset", h.resetGame)
	router.POST("/api/games/:gameid/answers", h.submitAnswer)
	router.GET("/api/games/:gameid/scoreboard", h.getScoreboard)
	router.POST("/api/games/:gameid/override", h.overrideScore)
	router.POST("/api/games/:gameid/validate", h.validateAnswer)
	router.GET("/api/games/:gameid/events", h.serveEvents)
	router.GET("/api/games/:gameid/qr", h.serveQR)

	return router
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("failed to write response: %v", err)
	}
}

func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, statusFor(err), map[string]string{
		"error": err.Error(),
	})
}

// statusFor maps service errors onto HTTP statuses. Unknown errors are
// treated as internal.
func statusFor(err error) int {
	switch {
	case errors.Is(err, gameService.ErrGameNotFound),
		errors.Is(err, gameService.ErrPlayerNotFound),
		errors.Is(err, scoringService.ErrGameNotFound):
		return http.StatusNotFound
	case errors.Is(err, gameService.ErrNotInitiator),
		errors.Is(err, scoringService.ErrNotInitiator):
		return http.StatusForbidden
	case errors.Is(err, gameService.ErrGameAlreadyStarted),
		errors.Is(err, gameService.ErrInvalidGameState),
		errors.Is(err, gameService.ErrCountdownRunning),
		errors.Is(err, gameService.ErrNotEnoughPlayers),
		errors.Is(err, scoringService.ErrInvalidGameState):
		return http.StatusConflict
	case errors.Is(err, gameService.ErrInvalidTeam),
		errors.Is(err, gameService.ErrInvalidNumTeams),
		errors.Is(err, gameService.ErrInvalidTimer),
		errors.Is(err, gameService.ErrInvalidRow),
		errors.Is(err, gameService.ErrInvalidColumn),
		errors.Is(err, gameService.ErrNoTeam),
		errors.Is(err, gameService.ErrPlayerNotInGame),
		errors.Is(err, scoringService.ErrInvalidTeam),
		errors.Is(err, scoringService.ErrInvalidRow),
		errors.Is(err, scoringService.ErrInvalidScore),
		errors.Is(err, scoringService.ErrCellNotAnswered):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, into any) bool {
	if err := json.NewDecoder(r.Body).Decode(into); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"error": "invalid request body",
		})
		return false
	}

	return true
}
