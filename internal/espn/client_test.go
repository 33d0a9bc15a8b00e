package espn

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/huangsam/gridiron/internal/contract"
	"github.com/huangsam/gridiron/internal/iocache"
	"github.com/huangsam/gridiron/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const athletesJSON = `{"count": 3, "items": [
	{"id": "3916387", "fullName": "Lamar Jackson", "jersey": "8", "active": true},
	{"id": "3918298", "fullName": "Josh Allen", "jersey": "17"},
	{"id": "1", "fullName": "Retired Guy", "active": false}
]}`

const statsJSON = `{"categories": [{
	"name": "passing",
	"labels": ["GP", "YDS", "TD", "INT"],
	"statistics": [
		{"season": {"year": 2024, "displayName": "2024"}, "teamSlug": "baltimore-ravens", "stats": ["17", "4,172", 41, null]}
	]
}]}`

// newTestServer serves a small slice of the ESPN API and counts requests.
func newTestServer(t *testing.T, hits *atomic.Int64) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	var server *httptest.Server

	mux.HandleFunc("/v3/sports/football/nfl/athletes", func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		assert.Equal(t, "20000", r.URL.Query().Get("limit"))
		assert.Contains(t, r.Header.Get("User-Agent"), "gridiron")
		_, _ = fmt.Fprint(w, athletesJSON)
	})
	mux.HandleFunc("/v2/sports/football/leagues/nfl/athletes/3916387", func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		_, _ = fmt.Fprintf(w, `{"id": "3916387", "fullName": "Lamar Jackson", "jersey": "8", "age": 27,
			"displayHeight": "6' 2\"", "displayWeight": "205 lbs",
			"position": {"abbreviation": "QB"}, "experience": {"years": 7},
			"headshot": {"href": "https://a.espncdn.com/lamar.png"},
			"team": {"$ref": "%s/v2/teams/33"}}`, server.URL)
	})
	mux.HandleFunc("/v2/sports/football/leagues/nfl/athletes/42", func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		_, _ = fmt.Fprintf(w, `{"id": "42", "fullName": "Unsigned Guy", "team": {"$ref": "%s/v2/teams/missing"}}`, server.URL)
	})
	mux.HandleFunc("/v2/sports/football/leagues/nfl/athletes/7", func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		_, _ = fmt.Fprint(w, `{"id": "7", "fullName": "Inline Guy", "position": {"abbreviation": "wr"}, "team": {"name": "Bills"}}`)
	})
	mux.HandleFunc("/v2/teams/33", func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		_, _ = fmt.Fprint(w, `{"displayName": "Baltimore Ravens", "name": "Ravens"}`)
	})
	mux.HandleFunc("/v2/teams/missing", func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		http.Error(w, "not found", http.StatusNotFound)
	})
	mux.HandleFunc("/apis/common/v3/sports/football/nfl/athletes/3916387/stats", func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		_, _ = fmt.Fprint(w, statsJSON)
	})
	mux.HandleFunc("/apis/common/v3/sports/football/nfl/athletes/500/stats", func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		http.Error(w, "upstream exploded", http.StatusBadGateway)
	})

	server = httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func testClient(server *httptest.Server, cache contract.CacheStore) *Client {
	return NewClient(&contract.Config{
		ESPNCoreURL: server.URL,
		ESPNSiteURL: server.URL + "/",
		HTTPTimeout: 5 * time.Second,
		CacheTTL:    time.Hour,
	}, cache)
}

func TestListAthletes(t *testing.T) {
	var hits atomic.Int64
	client := testClient(newTestServer(t, &hits), nil)

	athletes, err := client.ListAthletes(context.Background())
	require.NoError(t, err)
	require.Len(t, athletes, 3)
	assert.Equal(t, "Lamar Jackson", athletes[0].FullName)
	require.NotNil(t, athletes[2].Active)
	assert.False(t, *athletes[2].Active)
}

func TestGetPlayerFollowsTeamRef(t *testing.T) {
	var hits atomic.Int64
	client := testClient(newTestServer(t, &hits), nil)

	player, err := client.GetPlayer(context.Background(), "3916387")
	require.NoError(t, err)
	assert.Equal(t, schema.Player{
		ID:          "3916387",
		Name:        "Lamar Jackson",
		Position:    schema.QB,
		Team:        "Baltimore Ravens",
		Jersey:      "8",
		Age:         27,
		Height:      `6' 2"`,
		Weight:      "205 lbs",
		Experience:  7,
		HeadshotURL: "https://a.espncdn.com/lamar.png",
	}, player)
	assert.Equal(t, int64(2), hits.Load())
}

func TestGetPlayerFallbacks(t *testing.T) {
	var hits atomic.Int64
	client := testClient(newTestServer(t, &hits), nil)

	unsigned, err := client.GetPlayer(context.Background(), "42")
	require.NoError(t, err)
	assert.Equal(t, FreeAgent, unsigned.Team)
	assert.Equal(t, schema.Position(UnknownPosition), unsigned.Position)

	inline, err := client.GetPlayer(context.Background(), "7")
	require.NoError(t, err)
	assert.Equal(t, "Bills", inline.Team)
	assert.Equal(t, schema.WR, inline.Position)

	_, err = client.GetPlayer(context.Background(), "does-not-exist")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
}

func TestGetStats(t *testing.T) {
	var hits atomic.Int64
	client := testClient(newTestServer(t, &hits), nil)

	stats, err := client.GetStats(context.Background(), "3916387")
	require.NoError(t, err)
	require.Len(t, stats.Categories, 1)
	row := stats.Categories[0].Statistics[0]
	assert.Equal(t, 2024, row.Season.Year)
	assert.Equal(t, []schema.StatValue{"17", "4,172", "41", ""}, row.Stats)

	_, err = client.GetStats(context.Background(), "500")
	assert.ErrorContains(t, err, "status=502")
	assert.ErrorContains(t, err, "upstream exploded")
}

func TestGetStatsHonorsContext(t *testing.T) {
	var hits atomic.Int64
	client := testClient(newTestServer(t, &hits), nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := client.GetStats(ctx, "3916387")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestResponseCache(t *testing.T) {
	var hits atomic.Int64
	server := newTestServer(t, &hits)
	statsURL := server.URL + "/apis/common/v3/sports/football/nfl/athletes/3916387/stats"
	key := cacheKey(statsURL)

	t.Run("miss fetches and stores", func(t *testing.T) {
		hits.Store(0)
		store := &iocache.MockCacheStore{}
		store.On("Get", key).Return(nil, 0, int64(0), errors.New("miss"))
		store.On("Set", key, mock.Anything, currentCacheVersion, mock.AnythingOfType("int64")).Return(nil)

		_, err := testClient(server, store).GetStats(context.Background(), "3916387")
		require.NoError(t, err)
		assert.Equal(t, int64(1), hits.Load())
		store.AssertExpectations(t)
	})

	t.Run("fresh hit skips the network", func(t *testing.T) {
		hits.Store(0)
		store := &iocache.MockCacheStore{}
		store.On("Get", key).Return([]byte(statsJSON), currentCacheVersion, time.Now().Unix(), nil)

		stats, err := testClient(server, store).GetStats(context.Background(), "3916387")
		require.NoError(t, err)
		assert.Len(t, stats.Categories, 1)
		assert.Equal(t, int64(0), hits.Load())
		store.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("stale entry is refetched", func(t *testing.T) {
		hits.Store(0)
		store := &iocache.MockCacheStore{}
		stale := time.Now().Add(-2 * time.Hour).Unix()
		store.On("Get", key).Return([]byte(statsJSON), currentCacheVersion, stale, nil)
		store.On("Set", key, mock.Anything, currentCacheVersion, mock.AnythingOfType("int64")).Return(nil)

		_, err := testClient(server, store).GetStats(context.Background(), "3916387")
		require.NoError(t, err)
		assert.Equal(t, int64(1), hits.Load())
	})

	t.Run("old version is refetched", func(t *testing.T) {
		hits.Store(0)
		store := &iocache.MockCacheStore{}
		store.On("Get", key).Return([]byte(statsJSON), currentCacheVersion+1, time.Now().Unix(), nil)
		store.On("Set", key, mock.Anything, currentCacheVersion, mock.AnythingOfType("int64")).Return(nil)

		_, err := testClient(server, store).GetStats(context.Background(), "3916387")
		require.NoError(t, err)
		assert.Equal(t, int64(1), hits.Load())
	})

	t.Run("errors are not cached", func(t *testing.T) {
		store := &iocache.MockCacheStore{}
		store.On("Get", mock.Anything).Return(nil, 0, int64(0), errors.New("miss"))

		_, err := testClient(server, store).GetStats(context.Background(), "500")
		assert.Error(t, err)
		store.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestNewClientDefaults(t *testing.T) {
	client := NewClient(&contract.Config{}, nil)
	assert.Equal(t, contract.DefaultESPNCoreURL, client.coreURL)
	assert.Equal(t, contract.DefaultESPNSiteURL, client.siteURL)
	assert.Equal(t, contract.DefaultHTTPTimeout, client.httpClient.Timeout)
	assert.Equal(t, contract.DefaultCacheTTL, client.cacheTTL)
}

func TestCacheKey(t *testing.T) {
	assert.Len(t, cacheKey("https://example.com/a"), 64)
	assert.NotEqual(t, cacheKey("https://example.com/a"), cacheKey("https://example.com/b"))
}
