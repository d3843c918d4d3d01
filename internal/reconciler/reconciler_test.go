package reconciler_test

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mtlusa01/mattev-sports/internal/reconciler"
	"github.com/mtlusa01/mattev-sports/pkg/models"
)

func testLog() *logrus.Entry {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logrus.NewEntry(logger)
}

func floatPtr(f float64) *float64 { return &f }

func projectedGame() models.Game {
	return models.Game{
		AwayTeam:   "LAL",
		HomeTeam:   "BOS",
		SpreadPick: "BOS -4.5",
		SpreadConf: 71.0,
		TotalPick:  "OVER",
		TotalLine:  floatPtr(210.5),
		TotalConf:  64.5,
		MLPick:     "BOS",
		MLConf:     68.0,
		Status:     models.StatusScheduled,
	}
}

func TestReconcileFinalGradesAllBetTypes(t *testing.T) {
	games := []models.Game{projectedGame()}
	scores := models.ScoreSet{
		"LAL@BOS": {AwayScore: 100, HomeScore: 108, Completed: true},
	}

	out := reconciler.Reconcile(testLog(), games, scores)

	assert.True(t, out.Changed)
	assert.Equal(t, 1, out.Graded)
	assert.Equal(t, 1, out.Final)

	g := games[0]
	require.NotNil(t, g.AwayScore)
	require.NotNil(t, g.HomeScore)
	assert.Equal(t, 100, *g.AwayScore)
	assert.Equal(t, 108, *g.HomeScore)
	assert.Equal(t, models.StatusFinal, g.Status)
	assert.Equal(t, models.GradeWin, g.SpreadResult)
	assert.Equal(t, models.GradeLoss, g.TotalResult)
	assert.Equal(t, models.GradeWin, g.MLResult)
}

func TestReconcileNoScoreRecordLeavesGameUntouched(t *testing.T) {
	games := []models.Game{projectedGame()}
	before := games[0]

	out := reconciler.Reconcile(testLog(), games, models.ScoreSet{
		"NYK@MIA": {AwayScore: 90, HomeScore: 95, Completed: true},
	})

	assert.False(t, out.Changed)
	assert.Equal(t, before, games[0])
	assert.Equal(t, 1, out.Scheduled)
}

func TestReconcileLiveUpdate(t *testing.T) {
	games := []models.Game{projectedGame()}
	scores := models.ScoreSet{
		"LAL@BOS": {AwayScore: 55, HomeScore: 60, Completed: false},
	}

	out := reconciler.Reconcile(testLog(), games, scores)

	assert.True(t, out.Changed)
	assert.Equal(t, 0, out.Graded)
	assert.Equal(t, models.StatusLive, games[0].Status)
	assert.Equal(t, 55, *games[0].AwayScore)
	assert.Equal(t, 60, *games[0].HomeScore)
	assert.Equal(t, models.NotGraded, games[0].SpreadResult)

	// Same in-progress scores again: no-op
	out = reconciler.Reconcile(testLog(), games, scores)
	assert.False(t, out.Changed)
}

func TestReconcileFinalNeverDowngradedToLive(t *testing.T) {
	games := []models.Game{projectedGame()}

	reconciler.Reconcile(testLog(), games, models.ScoreSet{
		"LAL@BOS": {AwayScore: 100, HomeScore: 108, Completed: true},
	})
	require.Equal(t, models.StatusFinal, games[0].Status)

	// A stale in-progress record for the same key arrives later
	out := reconciler.Reconcile(testLog(), games, models.ScoreSet{
		"LAL@BOS": {AwayScore: 98, HomeScore: 103, Completed: false},
	})

	assert.False(t, out.Changed)
	assert.Equal(t, models.StatusFinal, games[0].Status)
	assert.Equal(t, 100, *games[0].AwayScore)
	assert.Equal(t, 108, *games[0].HomeScore)
}

// Re-grade guard: a final game with unchanged scores and a stored
// spread result must come out of a second pass identical, with no
// change reported
func TestReconcileRegradeGuard(t *testing.T) {
	games := []models.Game{projectedGame()}
	scores := models.ScoreSet{
		"LAL@BOS": {AwayScore: 100, HomeScore: 108, Completed: true},
	}

	out := reconciler.Reconcile(testLog(), games, scores)
	require.True(t, out.Changed)
	before := games[0]

	out = reconciler.Reconcile(testLog(), games, scores)

	assert.False(t, out.Changed)
	assert.Equal(t, 0, out.Graded)
	assert.Equal(t, before, games[0])
}

// A corrected final score re-grades the game
func TestReconcileScoreCorrectionRegrades(t *testing.T) {
	games := []models.Game{projectedGame()}

	reconciler.Reconcile(testLog(), games, models.ScoreSet{
		"LAL@BOS": {AwayScore: 100, HomeScore: 108, Completed: true},
	})
	require.Equal(t, models.GradeWin, games[0].SpreadResult)

	out := reconciler.Reconcile(testLog(), games, models.ScoreSet{
		"LAL@BOS": {AwayScore: 100, HomeScore: 104, Completed: true},
	})

	assert.True(t, out.Changed)
	assert.Equal(t, 1, out.Graded)
	assert.Equal(t, models.GradeLoss, games[0].SpreadResult)
	assert.Equal(t, 104, *games[0].HomeScore)
}

// Whole-number spread line landing exactly: LAL +4 at 100-104 pushes
func TestReconcileSpreadPush(t *testing.T) {
	game := projectedGame()
	game.SpreadPick = "LAL +4"
	games := []models.Game{game}

	reconciler.Reconcile(testLog(), games, models.ScoreSet{
		"LAL@BOS": {AwayScore: 100, HomeScore: 104, Completed: true},
	})

	assert.Equal(t, models.GradePush, games[0].SpreadResult)
}

func TestReconcileMalformedSpreadStillGradesOthers(t *testing.T) {
	game := projectedGame()
	game.SpreadPick = "BOS"
	games := []models.Game{game}

	reconciler.Reconcile(testLog(), games, models.ScoreSet{
		"LAL@BOS": {AwayScore: 100, HomeScore: 108, Completed: true},
	})

	assert.Equal(t, models.NotGraded, games[0].SpreadResult)
	assert.Equal(t, models.GradeLoss, games[0].TotalResult)
	assert.Equal(t, models.GradeWin, games[0].MLResult)
}

func TestReconcileStatusTally(t *testing.T) {
	games := []models.Game{projectedGame(), projectedGame(), projectedGame()}
	games[1].AwayTeam, games[1].HomeTeam = "NYK", "MIA"
	games[2].AwayTeam, games[2].HomeTeam = "DEN", "PHX"

	out := reconciler.Reconcile(testLog(), games, models.ScoreSet{
		"LAL@BOS": {AwayScore: 100, HomeScore: 108, Completed: true},
		"NYK@MIA": {AwayScore: 40, HomeScore: 44, Completed: false},
	})

	assert.Equal(t, 1, out.Final)
	assert.Equal(t, 1, out.Live)
	assert.Equal(t, 1, out.Scheduled)
}
