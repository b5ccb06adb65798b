package httpapi

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/skip2/go-qrcode"

	gameService "github.com/KirkDiggler/initials/internal/services/game"
)

const qrSize = 320 // mobile-friendly size

// serveQR renders a PNG QR code of the join URL so the initiator can put
// it on a shared screen
func (h *Handler) serveQR(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	out, err := h.gameService.GetGame(r.Context(), &gameService.GetGameInput{
		GameID: ps.ByName("gameid"),
	})
	if err != nil {
		writeError(w, err)
		return
	}

	base := h.baseURL
	if base == "" {
		scheme := "http"
		if r.TLS != nil {
			scheme = "https"
		}
		if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
			scheme = proto
		}
		base = scheme + "://" + r.Host
	}

	png, err := qrcode.Encode(base+"/join/"+out.Game.Code, qrcode.Medium, qrSize)
	if err != nil {
		http.Error(w, "qr generation failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	_, _ = w.Write(png)
}
