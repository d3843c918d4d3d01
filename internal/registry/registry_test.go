package registry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mtlusa01/mattev-sports/internal/registry"
)

func TestEnabledSportsOrder(t *testing.T) {
	reg := registry.New()

	sports := reg.EnabledSports()
	require.Len(t, sports, 3)

	// Grading order: NBA, NHL, NCAAB
	assert.Equal(t, "basketball_nba", sports[0].Key())
	assert.Equal(t, "icehockey_nhl", sports[1].Key())
	assert.Equal(t, "basketball_ncaab", sports[2].Key())
}

func TestGetSport(t *testing.T) {
	reg := registry.New()

	sport, err := reg.GetSport("icehockey_nhl")
	require.NoError(t, err)
	assert.Equal(t, "NHL", sport.DisplayName())
	assert.Equal(t, "nhl_game_projections.json", sport.ProjectionFile())
	assert.Equal(t, "nhl_results.json", sport.ResultsFile())

	_, err = reg.GetSport("baseball_mlb")
	assert.Error(t, err)
}

func TestSportConfiguration(t *testing.T) {
	reg := registry.New()

	nba, err := reg.GetSport("basketball_nba")
	require.NoError(t, err)
	assert.True(t, nba.PreserveProps())
	assert.Equal(t, "LAL", nba.TeamAbbreviations()["Los Angeles Lakers"])

	ncaab, err := reg.GetSport("basketball_ncaab")
	require.NoError(t, err)
	assert.False(t, ncaab.PreserveProps())
	assert.Nil(t, ncaab.TeamAbbreviations())
	assert.Equal(t, "basketball/mens-college-basketball", ncaab.ESPNSportPath())

	nhl, err := reg.GetSport("icehockey_nhl")
	require.NoError(t, err)
	// Alias spellings resolve to the same abbreviation
	abbr := nhl.TeamAbbreviations()
	assert.Equal(t, abbr["Montréal Canadiens"], abbr["Montreal Canadiens"])
	assert.Equal(t, abbr["Utah Hockey Club"], abbr["Utah Mammoth"])
}
