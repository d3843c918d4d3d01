// Package aggregator turns a sport's graded games into the results
// document: flat pick records, best-bet tags, per-day category records
// and the recomputed all-time totals.
package aggregator

import (
	"fmt"
	"math"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/mtlusa01/mattev-sports/pkg/models"
)

// BestBetCount is how many of the highest-confidence picks get the
// best-bet tag each day
const BestBetCount = 5

// Standard -110 pricing: a winning bet nets 90.91 units per 100
// wagered, a losing bet costs the full 100. Applied to every pick
// regardless of its actual odds.
const (
	winPayout = 90.91
	lossCost  = 100.0
)

// Apply merges a sport's freshly reconciled projections into its
// results document: builds the day entry for the projection date,
// replaces or appends it, re-sorts the day list and recomputes the
// all-time totals from scratch. When mergeProps is set, prop picks and
// prop statistics already present for the date are preserved rather
// than replaced. Returns false when the projections produced no
// gradeable picks, in which case the document is untouched.
func Apply(log *logrus.Entry, results *models.Results, proj *models.Projections, mergeProps bool) bool {
	picks := buildGamePicks(proj)
	if len(picks) == 0 {
		return false
	}

	tagBestBets(picks)

	if mergeProps {
		mergeDay(results, proj.Date, picks)
	} else {
		replaceDay(results, proj.Date, picks)
	}

	sort.SliceStable(results.Days, func(i, j int) bool {
		return results.Days[i].Date > results.Days[j].Date
	})

	recomputeAllTime(results)

	day := dayFor(results, proj.Date)
	log.Infof("Results: Spread %s, Total %s, ML %s, Best Bets %s",
		day.Spreads.Record, day.Totals.Record, day.Moneylines.Record, day.BestBets.Record)

	return true
}

// buildGamePicks emits one pick record per final game per bet type that
// produced an actual W/L/P outcome. Order is deterministic: games in
// projection order, spread then total then moneyline within a game.
func buildGamePicks(proj *models.Projections) []models.Pick {
	var picks []models.Pick

	for i := range proj.Games {
		g := &proj.Games[i]
		if g.Status != models.StatusFinal || g.AwayScore == nil || g.HomeScore == nil {
			continue
		}

		matchup := fmt.Sprintf("%s @ %s", g.AwayTeam, g.HomeTeam)
		resultStr := fmt.Sprintf("%d-%d", *g.AwayScore, *g.HomeScore)

		if g.SpreadResult.Decided() {
			picks = append(picks, models.Pick{
				Date:       proj.Date,
				Type:       models.BetTypeSpread,
				Game:       matchup,
				Pick:       g.SpreadPick,
				Result:     resultStr,
				Hit:        g.SpreadResult.Hit(),
				Confidence: g.SpreadConf,
			})
		}
		if g.TotalResult.Decided() {
			label := g.TotalPick
			if g.TotalLine != nil {
				label = fmt.Sprintf("%s %g", g.TotalPick, *g.TotalLine)
			}
			picks = append(picks, models.Pick{
				Date:       proj.Date,
				Type:       models.BetTypeTotal,
				Game:       matchup,
				Pick:       label,
				Result:     resultStr,
				Hit:        g.TotalResult.Hit(),
				Confidence: g.TotalConf,
			})
		}
		if g.MLResult == models.GradeWin || g.MLResult == models.GradeLoss {
			picks = append(picks, models.Pick{
				Date:       proj.Date,
				Type:       models.BetTypeMoneyline,
				Game:       matchup,
				Pick:       g.MLPick,
				Result:     resultStr,
				Hit:        g.MLResult.Hit(),
				Confidence: g.MLConf,
			})
		}
	}

	return picks
}

// tagBestBets flags the top min(5, N) picks by confidence. The sort is
// stable, so confidence ties keep original pick order.
func tagBestBets(picks []models.Pick) {
	byConf := make([]*models.Pick, len(picks))
	for i := range picks {
		byConf[i] = &picks[i]
	}

	sort.SliceStable(byConf, func(i, j int) bool {
		return byConf[i].Confidence > byConf[j].Confidence
	})

	n := BestBetCount
	if len(byConf) < n {
		n = len(byConf)
	}
	for _, p := range byConf[:n] {
		p.BestBet = true
	}
}

// replaceDay builds the day entry for the date and swaps it in,
// replacing any existing entry with the same date string
func replaceDay(results *models.Results, date string, picks []models.Pick) {
	entry := models.DayStats{
		Date:       date,
		Spreads:    statFor(picks, models.BetTypeSpread),
		Totals:     statFor(picks, models.BetTypeTotal),
		Moneylines: statFor(picks, models.BetTypeMoneyline),
		BestBets:   bestBetStat(picks),
		Picks:      picks,
	}

	for i := range results.Days {
		if results.Days[i].Date == date {
			results.Days[i] = entry
			return
		}
	}
	results.Days = append(results.Days, entry)
}

// mergeDay updates the day entry for a props sport: prop picks already
// recorded for the date are kept verbatim ahead of the new game picks,
// and the prop category stat is left untouched. Game-category stats
// reflect only the new game picks.
func mergeDay(results *models.Results, date string, gamePicks []models.Pick) {
	var existing *models.DayStats
	for i := range results.Days {
		if results.Days[i].Date == date {
			existing = &results.Days[i]
			break
		}
	}

	if existing == nil {
		replaceDay(results, date, gamePicks)
		return
	}

	var propPicks []models.Pick
	for _, p := range existing.Picks {
		if p.Type == models.BetTypeProp {
			propPicks = append(propPicks, p)
		}
	}

	existing.Picks = append(propPicks, gamePicks...)
	existing.Spreads = statFor(gamePicks, models.BetTypeSpread)
	existing.Totals = statFor(gamePicks, models.BetTypeTotal)
	existing.Moneylines = statFor(gamePicks, models.BetTypeMoneyline)
	existing.BestBets = bestBetStat(gamePicks)
	// existing.Props stays as the prop subsystem wrote it
}

// tally counts wins, losses and pushes across a pick list
func tally(picks []models.Pick) (wins, losses, pushes int) {
	for _, p := range picks {
		switch {
		case p.Hit == nil:
			pushes++
		case *p.Hit:
			wins++
		default:
			losses++
		}
	}
	return
}

// makeStat builds a day category record. Pushes are excluded from the
// win-percentage denominator and from the record string when zero.
func makeStat(wins, losses, pushes int) models.CategoryStat {
	record := fmt.Sprintf("%d-%d", wins, losses)
	if pushes > 0 {
		record = fmt.Sprintf("%d-%d-%d", wins, losses, pushes)
	}
	return models.CategoryStat{
		Wins:   wins,
		Losses: losses,
		Pushes: pushes,
		Record: record,
		Pct:    winPct(wins, losses),
	}
}

func statFor(picks []models.Pick, betType string) models.CategoryStat {
	var subset []models.Pick
	for _, p := range picks {
		if p.Type == betType {
			subset = append(subset, p)
		}
	}
	return makeStat(tally(subset))
}

func bestBetStat(picks []models.Pick) models.CategoryStat {
	var subset []models.Pick
	for _, p := range picks {
		if p.BestBet {
			subset = append(subset, p)
		}
	}
	return makeStat(tally(subset))
}

// recomputeAllTime rebuilds every all-time category from the full day
// list. Always a full recomputation, never an incremental merge.
// Prop totals are only recomputed when the document already tracks
// them; the best-prop fields belong to the prop subsystem and are
// carried forward as-is.
func recomputeAllTime(results *models.Results) {
	prev := results.AllTime

	results.AllTime = models.AllTime{
		Spreads:      sumCategory(results.Days, func(d *models.DayStats) *models.CategoryStat { return &d.Spreads }),
		Totals:       sumCategory(results.Days, func(d *models.DayStats) *models.CategoryStat { return &d.Totals }),
		Moneylines:   sumCategory(results.Days, func(d *models.DayStats) *models.CategoryStat { return &d.Moneylines }),
		BestBets:     sumCategory(results.Days, func(d *models.DayStats) *models.CategoryStat { return &d.BestBets }),
		BestPropType: prev.BestPropType,
		BestPropPct:  prev.BestPropPct,
	}

	if prev.Props != nil {
		props := sumCategory(results.Days, func(d *models.DayStats) *models.CategoryStat { return d.Props })
		results.AllTime.Props = &props
	}
}

// sumCategory sums one category across all days and derives the
// cumulative percentage and ROI
func sumCategory(days []models.DayStats, get func(*models.DayStats) *models.CategoryStat) models.AllTimeStat {
	var wins, losses, pushes int
	for i := range days {
		stat := get(&days[i])
		if stat == nil {
			continue
		}
		wins += stat.Wins
		losses += stat.Losses
		pushes += stat.Pushes
	}

	return models.AllTimeStat{
		Wins:   wins,
		Losses: losses,
		Pushes: pushes,
		Pct:    winPct(wins, losses),
		ROI:    roi(wins, losses),
	}
}

// winPct is the win percentage over decided bets only, one decimal
func winPct(wins, losses int) float64 {
	decided := wins + losses
	if decided == 0 {
		return 0
	}
	return round1(float64(wins) / float64(decided) * 100)
}

// roi is the return on investment assuming 100 units staked per
// decided bet at -110
func roi(wins, losses int) float64 {
	decided := wins + losses
	if decided == 0 {
		return 0
	}
	profit := float64(wins)*winPayout - float64(losses)*lossCost
	return round1(profit / (float64(decided) * 100) * 100)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func dayFor(results *models.Results, date string) *models.DayStats {
	for i := range results.Days {
		if results.Days[i].Date == date {
			return &results.Days[i]
		}
	}
	return &models.DayStats{}
}
