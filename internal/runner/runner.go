// Package runner orchestrates one check-and-grade run: fetch scores,
// reconcile each sport's projections, aggregate results, rewrite files.
// Sports are processed sequentially; a failure anywhere degrades to
// "no update for that sport" and the run continues.
package runner

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/mtlusa01/mattev-sports/internal/aggregator"
	"github.com/mtlusa01/mattev-sports/internal/cache"
	"github.com/mtlusa01/mattev-sports/internal/providers/espn"
	"github.com/mtlusa01/mattev-sports/internal/providers/oddsapi"
	"github.com/mtlusa01/mattev-sports/internal/reconciler"
	"github.com/mtlusa01/mattev-sports/internal/registry"
	"github.com/mtlusa01/mattev-sports/internal/store"
	"github.com/mtlusa01/mattev-sports/internal/writer"
	"github.com/mtlusa01/mattev-sports/pkg/contracts"
	"github.com/mtlusa01/mattev-sports/pkg/models"
)

// timestampLayout matches the `updated` stamps in the JSON files
const timestampLayout = "2006-01-02T15:04:05"

// Runner owns one run's collaborators. Cache and history are optional
// sinks; nil disables them.
type Runner struct {
	store    *store.Store
	registry *registry.Registry
	odds     *oddsapi.Client
	espn     *espn.Client
	cache    *cache.RedisWriter
	history  *writer.HistoryWriter

	now func() time.Time
}

// New creates a runner
func New(st *store.Store, reg *registry.Registry, odds *oddsapi.Client, espnClient *espn.Client) *Runner {
	return &Runner{
		store:    st,
		registry: reg,
		odds:     odds,
		espn:     espnClient,
		now:      time.Now,
	}
}

// WithCache attaches the optional Redis score snapshot writer
func (r *Runner) WithCache(c *cache.RedisWriter) *Runner {
	r.cache = c
	return r
}

// WithHistory attaches the optional Postgres graded-pick writer
func (r *Runner) WithHistory(h *writer.HistoryWriter) *Runner {
	r.history = h
	return r
}

// Run executes one full check-and-grade pass over every enabled sport
// and reports whether any file changed
func (r *Runner) Run(ctx context.Context) bool {
	runID := uuid.NewString()
	log := logrus.WithField("run_id", runID)
	log.Info("Score check and auto-grade run starting")

	anyChanges := false
	for _, sport := range r.registry.EnabledSports() {
		if r.runSport(ctx, runID, sport) {
			anyChanges = true
		}
	}

	if anyChanges {
		log.Info("Done, files updated")
	} else {
		log.Info("Done, no changes")
	}
	return anyChanges
}

// runSport grades one sport: load projections, fetch scores, reconcile
// and, when anything changed, rewrite the projection file and rebuild
// the results file
func (r *Runner) runSport(ctx context.Context, runID string, sport contracts.Sport) bool {
	log := logrus.WithField("sport", sport.DisplayName())

	proj, err := r.store.LoadProjections(sport.ProjectionFile())
	if err != nil {
		log.WithError(err).Warn("Failed to load projections, skipping")
		return false
	}
	if proj == nil || len(proj.Games) == 0 {
		log.Info("No projection file or no games, skipping")
		return false
	}
	if proj.Date == "" {
		proj.Date = r.now().Format("2006-01-02")
	}

	scores := r.fetchScores(ctx, sport)
	if len(scores) == 0 {
		log.Info("No scores available, skipping")
		return false
	}

	if r.cache != nil {
		if err := r.cache.WriteSnapshot(ctx, sport.Key(), scores); err != nil {
			log.WithError(err).Warn("Failed to cache score snapshot")
		}
	}

	outcome := reconciler.Reconcile(log, proj.Games, scores)
	if outcome.Graded > 0 {
		log.Infof("Graded %d games", outcome.Graded)
	}
	if !outcome.Changed {
		return false
	}

	proj.Updated = r.now().Format(timestampLayout)
	if err := r.store.SaveProjections(sport.ProjectionFile(), proj); err != nil {
		log.WithError(err).Warn("Failed to save projections")
		return false
	}

	r.updateResults(ctx, runID, log, sport, proj)

	return true
}

// updateResults rebuilds the sport's results document from the now
// current projections
func (r *Runner) updateResults(ctx context.Context, runID string, log *logrus.Entry, sport contracts.Sport, proj *models.Projections) {
	results, err := r.store.LoadResults(sport.ResultsFile())
	if err != nil {
		log.WithError(err).Warn("Failed to load results, starting empty")
		results = models.NewResults()
	}

	if !aggregator.Apply(log, results, proj, sport.PreserveProps()) {
		return
	}

	results.Updated = r.now().Format(timestampLayout)
	if err := r.store.SaveResults(sport.ResultsFile(), results); err != nil {
		log.WithError(err).Warn("Failed to save results")
		return
	}

	if r.history != nil {
		picks := dayPicks(results, proj.Date)
		if err := r.history.WritePicks(ctx, runID, sport.Key(), picks); err != nil {
			log.WithError(err).Warn("Failed to write pick history")
		}
	}
}

// fetchScores picks the sport's provider. ESPN sports pull yesterday's
// board before today's so late finishes that cross midnight still
// grade; today's records win on key collisions.
func (r *Runner) fetchScores(ctx context.Context, sport contracts.Sport) models.ScoreSet {
	switch sport.Source() {
	case contracts.SourceESPN:
		today := r.now()
		scores := models.ScoreSet{}
		scores.Merge(r.espn.FetchScoreboard(ctx, sport.ESPNSportPath(), today.AddDate(0, 0, -1)))
		scores.Merge(r.espn.FetchScoreboard(ctx, sport.ESPNSportPath(), today))
		return scores
	default:
		return r.odds.FetchScores(ctx, sport.OddsAPISportKey(), sport.TeamAbbreviations())
	}
}

func dayPicks(results *models.Results, date string) []models.Pick {
	for i := range results.Days {
		if results.Days[i].Date == date {
			return results.Days[i].Picks
		}
	}
	return nil
}
