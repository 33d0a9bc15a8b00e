package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/huangsam/gridiron/core"
	"github.com/huangsam/gridiron/internal/contract"
	"github.com/huangsam/gridiron/schema"
)

// HealthResponse reports readiness and the size of the loaded data.
type HealthResponse struct {
	Status             string    `json:"status"`
	Service            string    `json:"service"`
	Timestamp          time.Time `json:"timestamp"`
	Players            int       `json:"players"`
	LeaderboardPlayers int       `json:"leaderboardPlayers"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.respondJSON(w, http.StatusOK, HealthResponse{
		Status:             "healthy",
		Service:            "gridiron",
		Timestamp:          time.Now().UTC(),
		Players:            s.resolver.Directory().Len(),
		LeaderboardPlayers: s.resolver.Leaderboard().Len(),
	})
}

// handlePlayerSearch lists directory matches for ?q= and counts exact hits.
func (s *Server) handlePlayerSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		s.respondError(w, r, http.StatusBadRequest, "Query parameter q is required", nil)
		return
	}
	limit := parseIntParam(r, "limit", s.cfg.ResultLimit)

	matches := s.resolver.Directory().Search(query, limit)
	if matches == nil {
		matches = []schema.AthleteSummary{}
	}

	if athlete, ok := s.resolver.Directory().FindByName(query); ok {
		s.recordSearch(r, athlete, query)
	}

	s.respondJSON(w, http.StatusOK, map[string]any{
		"players": matches,
		"count":   len(matches),
	})
}

// recordSearch bumps the search count for an exact directory hit.
func (s *Server) recordSearch(r *http.Request, athlete schema.AthleteSummary, term string) {
	store := s.searchStore()
	if store == nil {
		return
	}
	player, err := s.resolver.Provider().GetPlayer(r.Context(), athlete.ID)
	if err != nil {
		player = schema.Player{ID: athlete.ID, Name: athlete.FullName, Jersey: athlete.Jersey}
	}
	if _, err := store.RecordSearch(player, term); err != nil {
		s.log.WithError(err).WithField("player_id", athlete.ID).Warn("failed to record search")
	}
}

func (s *Server) handlePlayer(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	player, err := s.resolver.Provider().GetPlayer(r.Context(), id)
	if err != nil {
		s.respondError(w, r, http.StatusBadGateway, "failed to fetch player", err)
		return
	}
	if points, err := s.resolver.PlayerPoints(r.Context(), id); err == nil {
		player.FantasyPoints = points
	}
	s.respondJSON(w, http.StatusOK, player)
}

func (s *Server) handlePlayerSeasons(w http.ResponseWriter, r *http.Request) {
	report, err := core.NewPlayerReportBuilder(r.Context(), s.cfg, s.resolver.Provider(), chi.URLParam(r, "id")).
		FetchProfile().
		FetchStats().
		ScoreSeasons().
		Build()
	if err != nil {
		s.respondError(w, r, http.StatusBadGateway, "failed to build player report", err)
		return
	}
	s.respondJSON(w, http.StatusOK, report)
}

// handlePlayerProjection projects next season with situational flags from the query.
func (s *Server) handlePlayerProjection(w http.ResponseWriter, r *http.Request) {
	situation, err := parseSituation(r)
	if err != nil {
		s.respondError(w, r, http.StatusBadRequest, err.Error(), nil)
		return
	}
	report, err := core.NewPlayerReportBuilder(r.Context(), s.cfg, s.resolver.Provider(), chi.URLParam(r, "id")).
		FetchProfile().
		FetchStats().
		ScoreSeasons().
		Project(situation).
		Build()
	if err != nil {
		s.respondError(w, r, http.StatusBadGateway, "failed to build player report", err)
		return
	}
	if report.Projection.Error != "" {
		s.respondError(w, r, http.StatusUnprocessableEntity, report.Projection.Error, nil)
		return
	}
	s.respondJSON(w, http.StatusOK, report.Projection)
}

func parseSituation(r *http.Request) (schema.SituationalFactors, error) {
	var situation schema.SituationalFactors
	flags := []struct {
		key  string
		dest *bool
	}{
		{"injury", &situation.InjuryHistory},
		{"newTeam", &situation.NewTeam},
		{"newCoordinator", &situation.NewOffensiveCoordinator},
	}
	for _, f := range flags {
		raw := r.URL.Query().Get(f.key)
		if raw == "" {
			continue
		}
		value, err := contract.ParseBoolString(raw)
		if err != nil {
			return situation, errors.New("invalid " + f.key + " value: " + raw)
		}
		*f.dest = value
	}
	return situation, nil
}

// ScoreRequest scores raw category lines. Weights in Scoring are applied on
// top of Preset, or on top of the server's weights when Preset is empty.
// Weights Scoring leaves out keep their base value.
type ScoreRequest struct {
	Preset  schema.ScoringPreset      `json:"preset,omitempty"`
	Scoring json.RawMessage           `json:"scoring,omitempty"`
	Lines   []schema.CategoryStatLine `json:"lines"`
}

// ScoreResponse is the per-line and total fantasy points.
type ScoreResponse struct {
	Total   float64                `json:"total"`
	Scores  []schema.CategoryScore `json:"scores"`
	Scoring schema.ScoringConfig   `json:"scoring"`
}

func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	var req ScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, r, http.StatusBadRequest, "Invalid request body", nil)
		return
	}
	if len(req.Lines) == 0 {
		s.respondError(w, r, http.StatusBadRequest, "At least one stat line is required", nil)
		return
	}

	scoring, err := s.requestScoring(req)
	if err != nil {
		s.respondError(w, r, http.StatusBadRequest, err.Error(), nil)
		return
	}

	resp := ScoreResponse{Scores: make([]schema.CategoryScore, len(req.Lines)), Scoring: scoring}
	for i, line := range req.Lines {
		resp.Scores[i] = core.ScoreCategory(line, scoring)
		resp.Total += resp.Scores[i].Total
	}
	resp.Total = core.Round2(resp.Total)
	s.respondJSON(w, http.StatusOK, resp)
}

// requestScoring resolves the base weights and overlays the request's weights on a copy.
func (s *Server) requestScoring(req ScoreRequest) (schema.ScoringConfig, error) {
	scoring := s.cfg.Scoring
	if req.Preset != "" {
		preset, err := schema.PresetScoringConfig(req.Preset)
		if err != nil {
			return scoring, err
		}
		scoring = preset
	}
	if len(req.Scoring) > 0 && string(req.Scoring) != "null" {
		if err := json.Unmarshal(req.Scoring, &scoring); err != nil {
			return scoring, errors.New("invalid scoring weights: " + err.Error())
		}
		if err := scoring.Validate(); err != nil {
			return scoring, err
		}
	}
	return scoring, nil
}

func (s *Server) handleTrending(w http.ResponseWriter, r *http.Request) {
	store := s.searchStore()
	if store == nil {
		s.respondError(w, r, http.StatusServiceUnavailable, "Search tracking is disabled", nil)
		return
	}
	records, err := store.Trending(parseIntParam(r, "limit", s.cfg.ResultLimit))
	if err != nil {
		s.respondError(w, r, http.StatusInternalServerError, "failed to load trending players", err)
		return
	}
	s.respondJSON(w, http.StatusOK, map[string]any{
		"players": records,
		"count":   len(records),
	})
}

// handleDebugPlayer shows how a name resolves. A miss is still a 200.
func (s *Server) handleDebugPlayer(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	player, err := s.resolver.FindPlayer(r.Context(), name)
	if err != nil {
		if !errors.Is(err, contract.ErrPlayerNotFound) {
			s.log.WithError(err).WithField("name", name).Warn("debug lookup failed")
		}
		s.respondJSON(w, http.StatusOK, errorResponse{Error: "Player not found"})
		return
	}
	s.respondJSON(w, http.StatusOK, map[string]any{
		"player":             player,
		"totalPlayers":       s.resolver.Directory().Len(),
		"leaderboardPlayers": s.resolver.Leaderboard().Len(),
	})
}

// parseIntParam reads a positive integer query parameter.
func parseIntParam(r *http.Request, key string, defaultVal int) int {
	val, err := strconv.Atoi(r.URL.Query().Get(key))
	if err != nil || val <= 0 {
		return defaultVal
	}
	return min(val, contract.MaxResultLimit)
}
