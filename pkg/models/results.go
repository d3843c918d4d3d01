package models

// Bet type values used in pick records
const (
	BetTypeSpread    = "spread"
	BetTypeTotal     = "total"
	BetTypeMoneyline = "ml"
	BetTypeProp      = "prop"
)

// Pick is one graded bet, flattened for the results file.
// Hit is true for a win, false for a loss, nil for a push.
type Pick struct {
	Date       string  `json:"date"`
	Type       string  `json:"type"`
	Game       string  `json:"game"`
	Pick       string  `json:"pick"`
	Result     string  `json:"result"`
	Hit        *bool   `json:"hit"`
	Confidence float64 `json:"confidence"`
	BestBet    bool    `json:"best_bet,omitempty"`
}

// CategoryStat is one category's record for a single day
type CategoryStat struct {
	Wins   int     `json:"wins"`
	Losses int     `json:"losses"`
	Pushes int     `json:"pushes"`
	Record string  `json:"record"`
	Pct    float64 `json:"pct"`
}

// AllTimeStat is one category's cumulative record with ROI under the
// fixed -110 pricing assumption
type AllTimeStat struct {
	Wins   int     `json:"wins"`
	Losses int     `json:"losses"`
	Pushes int     `json:"pushes"`
	Pct    float64 `json:"pct"`
	ROI    float64 `json:"roi"`
}

// DayStats is one day's graded picks and per-category records.
// Props is only present for sports whose prop picks are graded by a
// separate subsystem; this service preserves it but never computes it.
type DayStats struct {
	Date       string        `json:"date"`
	Spreads    CategoryStat  `json:"spreads"`
	Totals     CategoryStat  `json:"totals"`
	Moneylines CategoryStat  `json:"moneylines"`
	BestBets   CategoryStat  `json:"best_bets"`
	Props      *CategoryStat `json:"props,omitempty"`
	Picks      []Pick        `json:"picks"`
}

// AllTime is the cumulative record across every recorded day.
// The prop fields are carried forward from the prop-grading subsystem
// when present and otherwise omitted.
type AllTime struct {
	Spreads      AllTimeStat  `json:"spreads"`
	Totals       AllTimeStat  `json:"totals"`
	Moneylines   AllTimeStat  `json:"moneylines"`
	BestBets     AllTimeStat  `json:"best_bets"`
	Props        *AllTimeStat `json:"props,omitempty"`
	BestPropType *string      `json:"best_prop_type,omitempty"`
	BestPropPct  *float64     `json:"best_prop_pct,omitempty"`
}

// Results is a sport's results file: all-time record plus the full
// day-by-day history, newest first
type Results struct {
	Updated string     `json:"updated"`
	AllTime AllTime    `json:"allTime"`
	Days    []DayStats `json:"days"`
}

// NewResults returns an empty results document, the starting point
// when a sport has no results file yet
func NewResults() *Results {
	return &Results{Days: []DayStats{}}
}
