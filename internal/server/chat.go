package server

import (
	"context"
	"encoding/json"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/gorilla/websocket"
	"github.com/huangsam/gridiron/internal/assistant"
)

const (
	// Time allowed to write a reply to the peer
	writeWait = 10 * time.Second

	// Idle connections are dropped after this long without a message
	idleWait = 5 * time.Minute

	// Maximum message size allowed from peer
	maxMessageSize = 4096
)

// Error texts shared by the chat endpoints.
const (
	messageRequired = "Message is required"
	invalidMessage  = "Invalid message"
	generateFailed  = "Local response generation failed"
)

type chatRequest struct {
	Message string `json:"message"`
}

type chatResponse struct {
	Reply   string `json:"reply,omitempty"`
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// reply runs the assistant and maps a failure to the fallback reply.
func (s *Server) reply(ctx context.Context, message string) chatResponse {
	text, err := s.assistant.Respond(ctx, message)
	if err != nil {
		s.log.WithError(err).Warn("chat response failed")
		return chatResponse{Reply: assistant.Fallback, Success: false, Error: generateFailed}
	}
	return chatResponse{Reply: text, Success: true}
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.Message) == "" {
		s.respondError(w, r, http.StatusBadRequest, messageRequired, nil)
		return
	}
	s.log.WithField("message", req.Message).Debug("received chat message")
	s.respondJSON(w, http.StatusOK, s.reply(r.Context(), req.Message))
}

// upgrader returns a websocket upgrader honoring the configured CORS origins.
func (s *Server) upgrader() websocket.Upgrader {
	return websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			if origin == "" || slices.Contains(s.cfg.CORSOrigins, "*") {
				return true
			}
			return slices.Contains(s.cfg.CORSOrigins, origin)
		},
	}
}

// handleChatSocket answers every text frame with one reply frame.
func (s *Server) handleChatSocket(w http.ResponseWriter, r *http.Request) {
	upgrader := s.upgrader()
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.WithError(err).Warn("websocket upgrade failed")
		return
	}
	defer func() { _ = conn.Close() }()

	conn.SetReadLimit(maxMessageSize)
	for {
		_ = conn.SetReadDeadline(time.Now().Add(idleWait))
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.log.WithError(err).Warn("websocket closed unexpectedly")
			}
			return
		}

		var resp chatResponse
		var req chatRequest
		switch {
		case json.Unmarshal(data, &req) != nil:
			resp = chatResponse{Error: invalidMessage}
		case strings.TrimSpace(req.Message) == "":
			resp = chatResponse{Error: messageRequired}
		default:
			resp = s.reply(r.Context(), req.Message)
		}

		_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteJSON(resp); err != nil {
			s.log.WithError(err).Warn("websocket write failed")
			return
		}
	}
}
