package http

import (
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/gorilla/websocket"

	"propdesk/domain"
	"propdesk/service"
)

// LiveHandler recomputes the calculator on every edit pushed over a
// WebSocket. Edits arriving within the debounce window collapse into one
// recompute of the latest values.
type LiveHandler struct {
	service  *service.LoanService
	debounce time.Duration
	upgrader websocket.Upgrader
}

func NewLiveHandler(service *service.LoanService, debounce time.Duration) *LiveHandler {
	return &LiveHandler{
		service:  service,
		debounce: debounce,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

func (h *LiveHandler) Serve(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("Warning: live upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	var mu sync.Mutex
	send := func(v any) {
		payload, err := json.Marshal(v)
		if err != nil {
			log.Printf("Error encoding live message: %v", err)
			return
		}
		mu.Lock()
		defer mu.Unlock()
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			log.Printf("Warning: live write failed: %v", err)
		}
	}

	var pending *time.Timer
	defer func() {
		if pending != nil {
			pending.Stop()
		}
	}()

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Printf("Warning: live read failed: %v", err)
			}
			return
		}

		var in domain.RawLoanInput
		if err := json.Unmarshal(msg, &in); err != nil {
			send(ErrorResponse{Status: http.StatusBadRequest, Message: "invalid message"})
			continue
		}

		if h.debounce <= 0 {
			send(h.service.Evaluate(in))
			continue
		}
		if pending != nil {
			pending.Stop()
		}
		pending = time.AfterFunc(h.debounce, func() {
			send(h.service.Evaluate(in))
		})
	}
}
