package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/huangsam/gridiron/core"
	"github.com/huangsam/gridiron/internal/assistant"
	"github.com/huangsam/gridiron/internal/contract"
	"github.com/huangsam/gridiron/internal/iocache"
	"github.com/huangsam/gridiron/internal/roster"
	"github.com/huangsam/gridiron/schema"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func boolPtr(b bool) *bool { return &b }

var lamar = schema.Player{
	ID: "3916387", Name: "Lamar Jackson", Position: schema.QB, Team: "Baltimore Ravens",
	Jersey: "8", Age: 28, Experience: 7,
}

func lamarStats() schema.StatsResponse {
	row := func(year int, stats ...schema.StatValue) schema.SeasonStatistic {
		return schema.SeasonStatistic{Season: schema.SeasonRef{Year: year}, TeamSlug: "baltimore-ravens", Stats: stats}
	}
	return schema.StatsResponse{Categories: []schema.StatCategory{{
		Name:   "passing",
		Labels: []string{"GP", "YDS", "TD", "INT"},
		Statistics: []schema.SeasonStatistic{
			row(2023, "16", "3,678", "24", "7"),
			row(2024, "17", "4,172", "41", "4"),
		},
	}}}
}

func newTestServer(provider contract.StatsProvider, cache contract.CacheManager) *Server {
	cfg := &contract.Config{
		Scoring:     schema.DefaultScoringConfig(),
		ResultLimit: contract.DefaultResultLimit,
		CORSOrigins: []string{"*"},
	}
	directory := roster.NewDirectory([]schema.AthleteSummary{
		{ID: "3916387", FullName: "Lamar Jackson", Jersey: "8", Active: boolPtr(true)},
		{ID: "3918298", FullName: "Josh Allen", Jersey: "17"},
		{ID: "4362628", FullName: "Ja'Marr Chase", Jersey: "1"},
	})
	leaderboard := roster.NewLeaderboard([]schema.LeaderboardEntry{
		{ID: "3916387", Name: "Lamar Jackson", Position: schema.QB, Team: "Baltimore Ravens", FantasyPoints: 430.38},
		{ID: "3918298", Name: "Josh Allen", Position: schema.QB, Team: "Buffalo Bills", FantasyPoints: 385},
	})
	log := logrus.New()
	log.SetOutput(io.Discard)
	return New(cfg, core.NewResolver(cfg, provider, directory, leaderboard), cache, log)
}

func do(t *testing.T, s *Server, method, target string, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	rec := httptest.NewRecorder()
	s.Routes().ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func TestHealth(t *testing.T) {
	s := newTestServer(&contract.MockStatsProvider{}, nil)
	rec := do(t, s, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	health := decode[HealthResponse](t, rec)
	assert.Equal(t, "healthy", health.Status)
	assert.Equal(t, 3, health.Players)
	assert.Equal(t, 2, health.LeaderboardPlayers)
}

func TestChat(t *testing.T) {
	s := newTestServer(&contract.MockStatsProvider{}, nil)

	t.Run("reply", func(t *testing.T) {
		rec := do(t, s, http.MethodPost, "/api/chat", `{"message": "help"}`)
		assert.Equal(t, http.StatusOK, rec.Code)
		resp := decode[chatResponse](t, rec)
		assert.True(t, resp.Success)
		assert.Contains(t, resp.Reply, "Next Season Projections")
		assert.Empty(t, resp.Error)
	})

	t.Run("missing message", func(t *testing.T) {
		for _, body := range []string{`{}`, `{"message": "  "}`, `not json`} {
			rec := do(t, s, http.MethodPost, "/api/chat", body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.JSONEq(t, `{"error":"Message is required"}`, rec.Body.String())
		}
	})
}

func TestChatFallback(t *testing.T) {
	provider := &contract.MockStatsProvider{}
	provider.On("GetPlayer", mock.Anything, mock.Anything).Return(schema.Player{}, context.Canceled)
	provider.On("GetStats", mock.Anything, mock.Anything).Return(schema.StatsResponse{}, context.Canceled)
	s := newTestServer(provider, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(`{"message": "project Josh Allen"}`)).WithContext(ctx)
	rec := httptest.NewRecorder()
	s.Routes().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decode[chatResponse](t, rec)
	assert.False(t, resp.Success)
	assert.Equal(t, assistant.Fallback, resp.Reply)
	assert.Equal(t, "Local response generation failed", resp.Error)
}

func TestChatSocket(t *testing.T) {
	s := newTestServer(&contract.MockStatsProvider{}, nil)
	ts := httptest.NewServer(s.Routes())
	defer ts.Close()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(ts.URL, "http")+"/ws/chat", nil)
	require.NoError(t, err)
	defer func() { _ = conn.Close() }()

	exchange := func(frame string) chatResponse {
		require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(frame)))
		var resp chatResponse
		require.NoError(t, conn.ReadJSON(&resp))
		return resp
	}

	resp := exchange(`{"message": "help"}`)
	assert.True(t, resp.Success)
	assert.Contains(t, resp.Reply, "How I Can Help")

	resp = exchange(`{"message": "recommend a qb"}`)
	assert.True(t, resp.Success)
	assert.Contains(t, resp.Reply, "Lamar Jackson")

	resp = exchange(`{"message": ""}`)
	assert.False(t, resp.Success)
	assert.Equal(t, "Message is required", resp.Error)

	resp = exchange(`garbage`)
	assert.Equal(t, "Invalid message", resp.Error)
}

func TestChatSocketOrigin(t *testing.T) {
	s := newTestServer(&contract.MockStatsProvider{}, nil)
	s.cfg.CORSOrigins = []string{"http://localhost:3000"}
	ts := httptest.NewServer(s.Routes())
	defer ts.Close()

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws/chat"

	header := http.Header{"Origin": []string{"http://evil.example"}}
	_, resp, err := websocket.DefaultDialer.Dial(url, header)
	require.Error(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	header = http.Header{"Origin": []string{"http://localhost:3000"}}
	conn, _, err := websocket.DefaultDialer.Dial(url, header)
	require.NoError(t, err)
	_ = conn.Close()
}

func TestPlayerSearch(t *testing.T) {
	t.Run("partial match", func(t *testing.T) {
		s := newTestServer(&contract.MockStatsProvider{}, nil)
		rec := do(t, s, http.MethodGet, "/api/players/search?q=ja", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		body := decode[struct {
			Players []schema.AthleteSummary `json:"players"`
			Count   int                     `json:"count"`
		}](t, rec)
		assert.Equal(t, 2, body.Count) // Lamar Jackson, Ja'Marr Chase
	})

	t.Run("exact match records search", func(t *testing.T) {
		provider := &contract.MockStatsProvider{}
		provider.On("GetPlayer", mock.Anything, "3916387").Return(lamar, nil)
		searches := &iocache.MockSearchStore{}
		searches.On("RecordSearch", lamar, "lamar jackson").Return(schema.SearchRecord{Count: 1}, nil)
		mgr := &iocache.MockCacheManager{}
		mgr.On("GetSearchStore").Return(searches)

		s := newTestServer(provider, mgr)
		rec := do(t, s, http.MethodGet, "/api/players/search?q=lamar+jackson", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		searches.AssertExpectations(t)
	})

	t.Run("missing query", func(t *testing.T) {
		s := newTestServer(&contract.MockStatsProvider{}, nil)
		rec := do(t, s, http.MethodGet, "/api/players/search", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"error":"Query parameter q is required"}`, rec.Body.String())
	})
}

func TestPlayer(t *testing.T) {
	provider := &contract.MockStatsProvider{}
	provider.On("GetPlayer", mock.Anything, "3916387").Return(lamar, nil)
	provider.On("GetPlayer", mock.Anything, "404").Return(schema.Player{}, errors.New("status 404"))
	s := newTestServer(provider, nil)

	rec := do(t, s, http.MethodGet, "/api/players/3916387", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	player := decode[schema.Player](t, rec)
	assert.Equal(t, "Lamar Jackson", player.Name)
	assert.Equal(t, 430.38, player.FantasyPoints, "leaderboard points")

	rec = do(t, s, http.MethodGet, "/api/players/404", "")
	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestPlayerRescoresStaleLeaderboard(t *testing.T) {
	provider := &contract.MockStatsProvider{}
	provider.On("GetPlayer", mock.Anything, "3916387").Return(lamar, nil)
	provider.On("GetStats", mock.Anything, "3916387").Return(lamarStats(), nil)
	s := newTestServer(provider, nil)
	nonPPR, err := schema.PresetScoringConfig(schema.NonPPRPreset)
	require.NoError(t, err)
	s.cfg.Scoring = nonPPR

	rec := do(t, s, http.MethodGet, "/api/players/3916387", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 322.88, decode[schema.Player](t, rec).FantasyPoints, "scored live, not from the full-PPR board")
	provider.AssertExpectations(t)
}

func TestPlayerSeasonsAndProjection(t *testing.T) {
	provider := &contract.MockStatsProvider{}
	provider.On("GetPlayer", mock.Anything, "3916387").Return(lamar, nil)
	provider.On("GetStats", mock.Anything, "3916387").Return(lamarStats(), nil)
	s := newTestServer(provider, nil)

	rec := do(t, s, http.MethodGet, "/api/players/3916387/seasons", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	report := decode[schema.PlayerReport](t, rec)
	assert.Equal(t, 2024, report.Season)
	assert.Len(t, report.Seasons, 2)
	assert.Nil(t, report.Projection)

	rec = do(t, s, http.MethodGet, "/api/players/3916387/projection", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	base := decode[schema.ProjectionResult](t, rec)
	assert.Positive(t, base.FantasyPoints)

	rec = do(t, s, http.MethodGet, "/api/players/3916387/projection?injury=true&newTeam=yes", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	hurt := decode[schema.ProjectionResult](t, rec)
	assert.Less(t, hurt.Factors.Situation, base.Factors.Situation)

	rec = do(t, s, http.MethodGet, "/api/players/3916387/projection?injury=maybe", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestProjectionWithoutHistory(t *testing.T) {
	provider := &contract.MockStatsProvider{}
	provider.On("GetPlayer", mock.Anything, "1").Return(schema.Player{ID: "1", Name: "Rookie"}, nil)
	provider.On("GetStats", mock.Anything, "1").Return(schema.StatsResponse{}, nil)
	s := newTestServer(provider, nil)

	rec := do(t, s, http.MethodGet, "/api/players/1/projection", "")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestScore(t *testing.T) {
	s := newTestServer(&contract.MockStatsProvider{}, nil)

	tests := []struct {
		name  string
		body  string
		code  int
		total float64
	}{
		{"passing", `{"lines":[{"category":"passing","values":{"YDS":"4,000","TD":"30","INT":"10"}}]}`, http.StatusOK, 260},
		{"ppr receiving", `{"lines":[{"category":"receiving","values":{"REC":"100","YDS":"1000","TD":"10"}}]}`, http.StatusOK, 260},
		{"non-ppr preset", `{"preset":"non-ppr","lines":[{"category":"receiving","values":{"REC":"100","YDS":"1000","TD":"10"}}]}`, http.StatusOK, 160},
		{"custom weights", `{"scoring":{"rushingYards":1},"lines":[{"category":"rushing","values":{"YDS":"10"}}]}`, http.StatusOK, 10},
		{"partial weights keep defaults", `{"scoring":{"receptions":0.5},"lines":[{"category":"passing","values":{"YDS":"4,000","TD":"30"}}]}`, http.StatusOK, 280},
		{"weights on top of preset", `{"preset":"non-ppr","scoring":{"receivingTDs":4},"lines":[{"category":"receiving","values":{"REC":"100","YDS":"1000","TD":"10"}}]}`, http.StatusOK, 140},
		{"null weights", `{"scoring":null,"lines":[{"category":"rushing","values":{"YDS":"100"}}]}`, http.StatusOK, 10},
		{"bad weights", `{"scoring":{"receptions":"lots"},"lines":[{"category":"rushing","values":{"YDS":"10"}}]}`, http.StatusBadRequest, 0},
		{"multiple lines", `{"lines":[{"category":"rushing","values":{"YDS":"100"}},{"category":"kicking","values":{"FG":"2","XPM":"3"}}]}`, http.StatusOK, 20},
		{"bad preset", `{"preset":"superflex","lines":[{"category":"rushing","values":{"YDS":"10"}}]}`, http.StatusBadRequest, 0},
		{"no lines", `{"lines":[]}`, http.StatusBadRequest, 0},
		{"bad body", `[`, http.StatusBadRequest, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, s, http.MethodPost, "/api/score", tt.body)
			require.Equal(t, tt.code, rec.Code, rec.Body.String())
			if tt.code == http.StatusOK {
				assert.Equal(t, tt.total, decode[ScoreResponse](t, rec).Total)
			}
		})
	}
}

func TestScorePartialWeights(t *testing.T) {
	s := newTestServer(&contract.MockStatsProvider{}, nil)

	rec := do(t, s, http.MethodPost, "/api/score", `{"scoring":{"receptions":0.5},"lines":[{"category":"receiving","values":{"REC":"10"}}]}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	want := schema.DefaultScoringConfig()
	want.Receptions = 0.5
	resp := decode[ScoreResponse](t, rec)
	assert.Equal(t, want, resp.Scoring)
	assert.Equal(t, 5.0, resp.Total)
	assert.Equal(t, 1.0, s.cfg.Scoring.Receptions, "server weights are untouched")
}

func TestTrending(t *testing.T) {
	t.Run("disabled", func(t *testing.T) {
		s := newTestServer(&contract.MockStatsProvider{}, nil)
		rec := do(t, s, http.MethodGet, "/api/trending", "")
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})

	t.Run("records", func(t *testing.T) {
		searches := &iocache.MockSearchStore{}
		searches.On("Trending", 3).Return([]schema.SearchRecord{
			{PlayerID: "3916387", Name: "Lamar Jackson", Count: 4, HeadshotURL: schema.FallbackHeadshot},
		}, nil)
		mgr := &iocache.MockCacheManager{}
		mgr.On("GetSearchStore").Return(searches)
		s := newTestServer(&contract.MockStatsProvider{}, mgr)

		rec := do(t, s, http.MethodGet, "/api/trending?limit=3", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		body := decode[struct {
			Players []schema.SearchRecord `json:"players"`
			Count   int                   `json:"count"`
		}](t, rec)
		require.Len(t, body.Players, 1)
		assert.Equal(t, 4, body.Players[0].Count)
	})

	t.Run("store error", func(t *testing.T) {
		searches := &iocache.MockSearchStore{}
		searches.On("Trending", contract.DefaultResultLimit).Return(nil, errors.New("db down"))
		mgr := &iocache.MockCacheManager{}
		mgr.On("GetSearchStore").Return(searches)
		s := newTestServer(&contract.MockStatsProvider{}, mgr)

		rec := do(t, s, http.MethodGet, "/api/trending", "")
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestDebugPlayer(t *testing.T) {
	provider := &contract.MockStatsProvider{}
	provider.On("GetPlayer", mock.Anything, "3918298").Return(schema.Player{ID: "3918298", Name: "Josh Allen", Position: schema.QB}, nil)
	s := newTestServer(provider, nil)

	rec := do(t, s, http.MethodGet, "/api/debug/player/josh%20allen", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	body := decode[struct {
		Player             schema.Player `json:"player"`
		TotalPlayers       int           `json:"totalPlayers"`
		LeaderboardPlayers int           `json:"leaderboardPlayers"`
	}](t, rec)
	assert.Equal(t, "Josh Allen", body.Player.Name)
	assert.Equal(t, 385.0, body.Player.FantasyPoints)
	assert.Equal(t, 3, body.TotalPlayers)

	rec = do(t, s, http.MethodGet, "/api/debug/player/Tom%20Brady", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"error":"Player not found"}`, rec.Body.String())
}

func TestCORSPreflight(t *testing.T) {
	s := newTestServer(&contract.MockStatsProvider{}, nil)
	req := httptest.NewRequest(http.MethodOptions, "/api/chat", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	s.Routes().ServeHTTP(rec, req)

	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestNewLogger(t *testing.T) {
	assert.Equal(t, logrus.DebugLevel, NewLogger("debug").GetLevel())
	assert.Equal(t, logrus.InfoLevel, NewLogger("chatty").GetLevel())
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	log := logrus.New()
	log.SetOutput(&buf)
	log.SetFormatter(&logrus.JSONFormatter{})

	handler := requestLogger(log)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/brew", nil))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "/brew", entry["path"])
	assert.Equal(t, float64(http.StatusTeapot), entry["status"])
}
