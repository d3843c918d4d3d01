package oddsapi_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mtlusa01/mattev-sports/internal/providers/oddsapi"
	"github.com/mtlusa01/mattev-sports/pkg/models"
)

var teamMap = map[string]string{
	"Los Angeles Lakers": "LAL",
	"Boston Celtics":     "BOS",
	"New York Knicks":    "NYK",
	"Miami Heat":         "MIA",
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *oddsapi.Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := oddsapi.New("test-key")
	client.BaseURL = server.URL
	return client
}

func TestFetchScores(t *testing.T) {
	payload := `[
		{
			"away_team": "Los Angeles Lakers",
			"home_team": "Boston Celtics",
			"completed": true,
			"scores": [
				{"name": "Los Angeles Lakers", "score": "100"},
				{"name": "Boston Celtics", "score": "108"}
			]
		},
		{
			"away_team": "New York Knicks",
			"home_team": "Miami Heat",
			"completed": false,
			"scores": [
				{"name": "New York Knicks", "score": "55"},
				{"name": "Miami Heat", "score": "60"}
			]
		}
	]`

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.URL.Query().Get("apiKey"))
		assert.Equal(t, "2", r.URL.Query().Get("daysFrom"))
		w.Header().Set("x-requests-remaining", "487")
		w.Write([]byte(payload))
	})

	scores := client.FetchScores(context.Background(), "basketball_nba", teamMap)

	require.Len(t, scores, 2)
	assert.Equal(t, models.ScoreRecord{AwayScore: 100, HomeScore: 108, Completed: true}, scores["LAL@BOS"])
	assert.Equal(t, models.ScoreRecord{AwayScore: 55, HomeScore: 60, Completed: false}, scores["NYK@MIA"])
}

func TestFetchScoresDropsUnmappedTeams(t *testing.T) {
	payload := `[
		{
			"away_team": "Seattle SuperSonics",
			"home_team": "Boston Celtics",
			"completed": true,
			"scores": [
				{"name": "Seattle SuperSonics", "score": "100"},
				{"name": "Boston Celtics", "score": "108"}
			]
		}
	]`

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(payload))
	})

	scores := client.FetchScores(context.Background(), "basketball_nba", teamMap)
	assert.Empty(t, scores)
}

func TestFetchScoresDropsMissingScores(t *testing.T) {
	// Upcoming games carry a null scores array
	payload := `[
		{
			"away_team": "Los Angeles Lakers",
			"home_team": "Boston Celtics",
			"completed": false,
			"scores": null
		},
		{
			"away_team": "New York Knicks",
			"home_team": "Miami Heat",
			"completed": false,
			"scores": [
				{"name": "New York Knicks", "score": ""},
				{"name": "Miami Heat", "score": "60"}
			]
		}
	]`

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(payload))
	})

	scores := client.FetchScores(context.Background(), "basketball_nba", teamMap)
	assert.Empty(t, scores)
}

func TestFetchScoresDegradesOnErrors(t *testing.T) {
	t.Run("non-200 status", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "quota exceeded", http.StatusUnauthorized)
		})
		assert.Empty(t, client.FetchScores(context.Background(), "basketball_nba", teamMap))
	})

	t.Run("malformed payload", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"not": "a list"}`))
		})
		assert.Empty(t, client.FetchScores(context.Background(), "basketball_nba", teamMap))
	})

	t.Run("missing api key skips fetch", func(t *testing.T) {
		called := false
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
		}))
		t.Cleanup(server.Close)

		client := oddsapi.New("")
		client.BaseURL = server.URL

		assert.Empty(t, client.FetchScores(context.Background(), "basketball_nba", teamMap))
		assert.False(t, called)
	})
}
