package server

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"
)

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.log.WithError(err).Error("error encoding response")
	}
}

// respondError logs err, when present, and writes message as the error body.
func (s *Server) respondError(w http.ResponseWriter, r *http.Request, status int, message string, err error) {
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"path":   r.URL.Path,
			"status": status,
		}).WithError(err).Error(message)
	}
	s.respondJSON(w, status, errorResponse{Error: message})
}
