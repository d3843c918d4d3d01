package oddsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/mtlusa01/mattev-sports/pkg/models"
)

const (
	// BaseURL is The Odds API v4 sports root
	BaseURL = "https://api.the-odds-api.com/v4/sports"

	// DaysFrom is the lookback window requested on every scores call
	DaysFrom = 2
)

// Client fetches scores from The Odds API
type Client struct {
	BaseURL    string
	apiKey     string
	httpClient *http.Client
}

// New creates an Odds API client. An empty key is allowed; fetches are
// skipped until one is configured.
func New(apiKey string) *Client {
	return &Client{
		BaseURL: BaseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// HasKey reports whether an API key is configured
func (c *Client) HasKey() bool {
	return c.apiKey != ""
}

// scoreEvent is one event in the scores payload. Per-team scores arrive
// as strings keyed by full team name.
type scoreEvent struct {
	AwayTeam  string `json:"away_team"`
	HomeTeam  string `json:"home_team"`
	Completed bool   `json:"completed"`
	Scores    []struct {
		Name  string `json:"name"`
		Score string `json:"score"`
	} `json:"scores"`
}

// FetchScores fetches scores for a sport and normalizes them into a
// ScoreSet keyed "AWAY@HOME" using the supplied full-name to
// abbreviation map. Provider failures degrade to an empty set with a
// warning; they never fail the run. Games with unmapped team names or
// unresolvable scores are dropped.
func (c *Client) FetchScores(ctx context.Context, sportKey string, teamMap map[string]string) models.ScoreSet {
	log := logrus.WithField("sport_key", sportKey)

	if !c.HasKey() {
		log.Warn("No Odds API key configured, skipping score fetch")
		return models.ScoreSet{}
	}

	events, err := c.fetchEvents(ctx, sportKey)
	if err != nil {
		log.WithError(err).Warn("Score fetch failed")
		return models.ScoreSet{}
	}

	scores := models.ScoreSet{}
	for _, ev := range events {
		awayAbbr := teamMap[ev.AwayTeam]
		homeAbbr := teamMap[ev.HomeTeam]
		if awayAbbr == "" || homeAbbr == "" {
			continue
		}

		awayScore, awayOK := findScore(ev, ev.AwayTeam)
		homeScore, homeOK := findScore(ev, ev.HomeTeam)
		if !awayOK || !homeOK {
			continue
		}

		scores[awayAbbr+"@"+homeAbbr] = models.ScoreRecord{
			AwayScore: awayScore,
			HomeScore: homeScore,
			Completed: ev.Completed,
		}
	}

	log.Infof("Got scores for %d games", len(scores))
	return scores
}

// fetchEvents performs the HTTP call and decodes the payload
func (c *Client) fetchEvents(ctx context.Context, sportKey string) ([]scoreEvent, error) {
	params := url.Values{}
	params.Set("apiKey", c.apiKey)
	params.Set("daysFrom", strconv.Itoa(DaysFrom))
	reqURL := fmt.Sprintf("%s/%s/scores/?%s", c.BaseURL, sportKey, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("making request: %w", err)
	}
	defer resp.Body.Close()

	// Quota visibility only; the header is never acted on
	logrus.WithFields(logrus.Fields{
		"sport_key":          sportKey,
		"status":             resp.StatusCode,
		"requests_remaining": resp.Header.Get("x-requests-remaining"),
	}).Info("Odds API response")

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API returned %d", resp.StatusCode)
	}

	var events []scoreEvent
	if err := json.NewDecoder(resp.Body).Decode(&events); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	return events, nil
}

// findScore resolves a team's score by full name. Empty or non-numeric
// scores count as missing.
func findScore(ev scoreEvent, teamName string) (int, bool) {
	for _, s := range ev.Scores {
		if s.Name != teamName || s.Score == "" {
			continue
		}
		n, err := strconv.Atoi(s.Score)
		if err != nil {
			return 0, false
		}
		return n, true
	}
	return 0, false
}
