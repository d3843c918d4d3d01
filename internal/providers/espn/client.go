package espn

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/mtlusa01/mattev-sports/pkg/models"
)

const (
	// BaseURL is the ESPN site API root
	BaseURL = "https://site.api.espn.com/apis/site/v2/sports"

	// StatusFinal is ESPN's sentinel for a completed game
	StatusFinal = "STATUS_FINAL"

	// scoreboard paging parameters; groups=50 is all of Division I
	scoreboardLimit  = 300
	scoreboardGroups = 50
)

// Client fetches scoreboards from the free ESPN site API
type Client struct {
	BaseURL    string
	httpClient *http.Client
	userAgent  string
}

// New creates an ESPN API client
func New() *Client {
	return &Client{
		BaseURL: BaseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		userAgent: "Mozilla/5.0 (compatible; MattevGrader/1.0)",
	}
}

// scoreboardResponse is the subset of the scoreboard payload the
// grader needs: events -> competitions -> competitors
type scoreboardResponse struct {
	Events []struct {
		Status struct {
			Type struct {
				Name string `json:"name"`
			} `json:"type"`
		} `json:"status"`
		Competitions []struct {
			Competitors []competitor `json:"competitors"`
		} `json:"competitions"`
	} `json:"events"`
}

type competitor struct {
	HomeAway string `json:"homeAway"`
	Score    string `json:"score"`
	Team     struct {
		Abbreviation string `json:"abbreviation"`
	} `json:"team"`
}

// FetchScoreboard fetches one day's scoreboard for a sport and
// normalizes it into a ScoreSet keyed "AWAY@HOME" using the payload's
// own team abbreviations. Failures degrade to an empty set with a
// warning; they never fail the run.
func (c *Client) FetchScoreboard(ctx context.Context, sportPath string, date time.Time) models.ScoreSet {
	log := logrus.WithFields(logrus.Fields{
		"sport_path": sportPath,
		"date":       date.Format("2006-01-02"),
	})

	board, err := c.fetch(ctx, sportPath, date)
	if err != nil {
		log.WithError(err).Warn("Scoreboard fetch failed")
		return models.ScoreSet{}
	}

	scores := models.ScoreSet{}
	for _, ev := range board.Events {
		if len(ev.Competitions) == 0 {
			continue
		}
		competitors := ev.Competitions[0].Competitors
		if len(competitors) != 2 {
			continue
		}

		var home, away *competitor
		for i := range competitors {
			if competitors[i].HomeAway == "home" {
				home = &competitors[i]
			} else {
				away = &competitors[i]
			}
		}
		if home == nil || away == nil {
			continue
		}

		key := away.Team.Abbreviation + "@" + home.Team.Abbreviation
		scores[key] = models.ScoreRecord{
			AwayScore: parseScore(away.Score),
			HomeScore: parseScore(home.Score),
			Completed: ev.Status.Type.Name == StatusFinal,
		}
	}

	log.Infof("Got scores for %d games", len(scores))
	return scores
}

// fetch makes the scoreboard request and decodes the response
func (c *Client) fetch(ctx context.Context, sportPath string, date time.Time) (*scoreboardResponse, error) {
	params := url.Values{}
	params.Set("dates", date.Format("20060102"))
	params.Set("limit", strconv.Itoa(scoreboardLimit))
	params.Set("groups", strconv.Itoa(scoreboardGroups))
	reqURL := fmt.Sprintf("%s/%s/scoreboard?%s", c.BaseURL, sportPath, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("making request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("ESPN API error: status=%d, body=%s", resp.StatusCode, string(body))
	}

	var board scoreboardResponse
	if err := json.NewDecoder(resp.Body).Decode(&board); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	return &board, nil
}

// parseScore converts ESPN's string score; unparseable scores read as 0,
// matching pre-game scoreboard entries
func parseScore(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
