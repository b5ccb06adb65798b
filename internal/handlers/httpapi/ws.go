package httpapi

import (
	"log"
	"net/http"
	"sync"

	"github.com/julienschmidt/httprouter"

	"github.com/KirkDiggler/initials/internal/realtime"
)

var watchedTables = []string{
	realtime.TableGames,
	realtime.TablePlayers,
	realtime.TableAnswers,
	realtime.TableScores,
}

// serveEvents bridges the change feed onto a WebSocket. Every table is
// watched for the requested game; the client recomputes its view from
// the REST endpoints on each event rather than receiving state diffs.
func (h *Handler) serveEvents(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	gameID := ps.ByName("gameid")

	subs := make([]*realtime.Subscription, 0, len(watchedTables))
	for _, table := range watchedTables {
		sub, err := h.feed.Subscribe(r.Context(), &realtime.SubscribeInput{
			Table:  table,
			GameID: gameID,
		})
		if err != nil {
			for _, s := range subs {
				s.Close()
			}
			writeError(w, err)
			return
		}
		subs = append(subs, sub)
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		for _, s := range subs {
			s.Close()
		}
		log.Printf("websocket upgrade failed for game %s: %v", gameID, err)
		return
	}

	events := merge(subs)

	// Reader: we never expect client messages, but reading is what
	// surfaces the close frame.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	defer func() {
		for _, s := range subs {
			s.Close()
		}
		conn.Close()
		// Drain so the merge goroutines can finish
		go func() {
			for range events {
			}
		}()
	}()

	for {
		select {
		case event, ok := <-events:
			if !ok {
				return
			}
			if err := conn.WriteJSON(event); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}

// merge fans the per-table subscriptions into one channel, closed once
// every subscription has ended
func merge(subs []*realtime.Subscription) <-chan *realtime.Event {
	out := make(chan *realtime.Event)

	var wg sync.WaitGroup
	wg.Add(len(subs))
	for _, sub := range subs {
		go func(sub *realtime.Subscription) {
			defer wg.Done()
			for event := range sub.Events() {
				out <- event
			}
		}(sub)
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}
