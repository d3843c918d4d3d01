package store_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mtlusa01/mattev-sports/internal/store"
	"github.com/mtlusa01/mattev-sports/pkg/models"
)

func TestLoadProjectionsMissingFile(t *testing.T) {
	st := store.New(t.TempDir())

	proj, err := st.LoadProjections("game_projections.json")

	require.NoError(t, err)
	assert.Nil(t, proj)
}

func TestLoadResultsMissingFileStartsEmpty(t *testing.T) {
	st := store.New(t.TempDir())

	results, err := st.LoadResults("results.json")

	require.NoError(t, err)
	require.NotNil(t, results)
	assert.Empty(t, results.Days)
	assert.Equal(t, "", results.Updated)
}

func TestProjectionsRoundTrip(t *testing.T) {
	st := store.New(t.TempDir())
	line := 210.5
	away := 100
	home := 108

	proj := &models.Projections{
		Date:    "2026-01-10",
		Updated: "2026-01-10T18:00:00",
		Games: []models.Game{{
			AwayTeam:     "LAL",
			HomeTeam:     "BOS",
			SpreadPick:   "BOS -4.5",
			SpreadConf:   71,
			TotalPick:    "OVER",
			TotalLine:    &line,
			MLPick:       "BOS",
			AwayScore:    &away,
			HomeScore:    &home,
			Status:       models.StatusFinal,
			SpreadResult: models.GradeWin,
			TotalResult:  models.GradeLoss,
			MLResult:     models.GradeWin,
		}},
	}

	require.NoError(t, st.SaveProjections("game_projections.json", proj))

	loaded, err := st.LoadProjections("game_projections.json")
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, proj, loaded)
}

func TestResultsRoundTrip(t *testing.T) {
	st := store.New(t.TempDir())
	hit := true

	results := &models.Results{
		Updated: "2026-01-10T18:00:00",
		AllTime: models.AllTime{
			Spreads: models.AllTimeStat{Wins: 3, Losses: 1, Pushes: 2, Pct: 75.0, ROI: 2.2},
		},
		Days: []models.DayStats{{
			Date:    "2026-01-10",
			Spreads: models.CategoryStat{Wins: 1, Record: "1-0", Pct: 100},
			Picks: []models.Pick{{
				Date:       "2026-01-10",
				Type:       models.BetTypeSpread,
				Game:       "LAL @ BOS",
				Pick:       "BOS -4.5",
				Result:     "100-108",
				Hit:        &hit,
				Confidence: 71,
				BestBet:    true,
			}},
		}},
	}

	require.NoError(t, st.SaveResults("results.json", results))

	loaded, err := st.LoadResults("results.json")
	require.NoError(t, err)
	assert.Equal(t, results, loaded)
}

func TestLoadMalformedFileErrors(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "results.json"), []byte("{truncated"), 0o644))

	st := store.New(dir)
	_, err := st.LoadResults("results.json")
	assert.Error(t, err)
}
