// Package reconciler applies a run's score snapshot to a sport's
// projection games: live score updates for in-progress games, full
// grading for completed ones.
package reconciler

import (
	"github.com/sirupsen/logrus"

	"github.com/mtlusa01/mattev-sports/internal/grader"
	"github.com/mtlusa01/mattev-sports/pkg/models"
)

// Outcome summarizes one reconciliation pass
type Outcome struct {
	Changed bool
	Graded  int
	// Status tallies after the pass
	Scheduled int
	Live      int
	Final     int
}

// Reconcile walks every projection game, looks up its score record by
// exact "AWAY@HOME" key and applies the update policy:
//   - no record: untouched
//   - in-progress record: update scores and set status live, unless the
//     game is already final (final is never downgraded)
//   - completed record: grade all three bet types, unless the game is
//     already final with the same scores and a spread result (re-grade
//     guard; keeps repeated runs idempotent)
//
// Games are mutated in place.
func Reconcile(log *logrus.Entry, games []models.Game, scores models.ScoreSet) Outcome {
	var out Outcome

	for i := range games {
		g := &games[i]
		rec, ok := scores[g.MatchupKey()]
		if !ok {
			continue
		}

		if rec.Completed {
			if alreadyGraded(g, rec) {
				continue
			}
			gradeGame(log, g, rec)
			out.Graded++
			out.Changed = true
		} else if g.Status != models.StatusFinal {
			if !scoresMatch(g, rec) {
				g.AwayScore = intPtr(rec.AwayScore)
				g.HomeScore = intPtr(rec.HomeScore)
				g.Status = models.StatusLive
				out.Changed = true
			}
		}
	}

	for i := range games {
		switch games[i].Status {
		case models.StatusLive:
			out.Live++
		case models.StatusFinal:
			out.Final++
		default:
			out.Scheduled++
		}
	}

	log.Infof("Status: %d scheduled, %d live, %d final", out.Scheduled, out.Live, out.Final)

	return out
}

// alreadyGraded is the re-grade guard: a final game with matching
// scores and a stored spread result is left byte-for-byte unchanged
func alreadyGraded(g *models.Game, rec models.ScoreRecord) bool {
	return g.Status == models.StatusFinal &&
		scoresMatch(g, rec) &&
		g.SpreadResult != models.NotGraded
}

// gradeGame stores final scores and grades all three bet types
func gradeGame(log *logrus.Entry, g *models.Game, rec models.ScoreRecord) {
	g.AwayScore = intPtr(rec.AwayScore)
	g.HomeScore = intPtr(rec.HomeScore)
	g.Status = models.StatusFinal

	g.SpreadResult = grader.Spread(g.SpreadPick, g.HomeTeam, rec.AwayScore, rec.HomeScore)
	g.TotalResult = grader.Total(g.TotalPick, g.TotalLine, rec.AwayScore, rec.HomeScore)
	g.MLResult = grader.Moneyline(g.MLPick, g.HomeTeam, rec.AwayScore, rec.HomeScore)

	log.Infof("%s: %d-%d | Spread:%s Total:%s ML:%s",
		g.MatchupKey(), rec.AwayScore, rec.HomeScore,
		g.SpreadResult, g.TotalResult, g.MLResult)
}

func scoresMatch(g *models.Game, rec models.ScoreRecord) bool {
	return g.AwayScore != nil && *g.AwayScore == rec.AwayScore &&
		g.HomeScore != nil && *g.HomeScore == rec.HomeScore
}

func intPtr(n int) *int {
	return &n
}
