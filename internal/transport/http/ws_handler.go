package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"triviahost/internal/domain"
	"triviahost/internal/game"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// WSHandler upgrades connections and routes their events into the game
// session. Payloads are validated here, at the transport boundary; the
// game core never sees malformed input.
type WSHandler struct {
	session  *game.Session
	hub      *Hub
	upgrader websocket.Upgrader
}

func NewWSHandler(session *game.Session, hub *Hub) *WSHandler {
	return &WSHandler{
		session: session,
		hub:     hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

type inboundMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type startPayload struct {
	Limit int `json:"limit"`
	Time  int `json:"time"`
}

type answerPayload struct {
	Option   int     `json:"option"`
	TimeLeft float64 `json:"time_left"`
}

type importPayload struct {
	Questions []domain.Question `json:"questions"`
}

// ServeWS handles one player connection for its whole lifetime.
func (h *WSHandler) ServeWS(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		http.Error(w, "missing name", http.StatusBadRequest)
		return
	}
	avatar := r.URL.Query().Get("avatar")
	forceAdmin := r.URL.Query().Get("admin") == "true"

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Error("ws upgrade failed", "err", err)
		return
	}
	defer conn.Close()

	connID := uuid.NewString()
	h.hub.add(newClient(connID, conn))
	defer h.hub.remove(connID)

	h.session.Join(connID, name, avatar, forceAdmin)
	defer h.session.Leave(connID)
	slog.Info("player connected", "conn", connID, "name", name)

	for {
		var inbound inboundMessage
		if err := conn.ReadJSON(&inbound); err != nil {
			slog.Info("player disconnected", "conn", connID, "name", name)
			return
		}
		h.dispatch(r, connID, inbound)
	}
}

func (h *WSHandler) dispatch(r *http.Request, connID string, inbound inboundMessage) {
	switch inbound.Type {
	case "start":
		var payload startPayload
		if err := json.Unmarshal(inbound.Payload, &payload); err != nil {
			h.rejectPayload(connID, "invalid start payload")
			return
		}
		h.session.Start(r.Context(), connID, payload.Limit, payload.Time)
	case "answer":
		var payload answerPayload
		if err := json.Unmarshal(inbound.Payload, &payload); err != nil {
			h.rejectPayload(connID, "invalid answer payload")
			return
		}
		h.session.SubmitAnswer(connID, payload.Option, payload.TimeLeft)
	case "next":
		h.session.Advance(connID)
	case "show_scores":
		h.session.ShowScores(connID)
	case "import":
		var payload importPayload
		if err := json.Unmarshal(inbound.Payload, &payload); err != nil {
			h.rejectPayload(connID, "invalid import payload")
			return
		}
		h.session.Import(connID, payload.Questions)
	default:
		h.rejectPayload(connID, "unsupported message type")
	}
}

func (h *WSHandler) rejectPayload(connID, msg string) {
	h.hub.Unicast(connID, game.EventError, game.ErrorPayload{Message: msg})
}
