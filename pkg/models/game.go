package models

// GameStatus tracks where a game is in its lifecycle
type GameStatus string

const (
	StatusScheduled GameStatus = "scheduled"
	StatusLive      GameStatus = "live"
	StatusFinal     GameStatus = "final"
)

// GradeResult is the outcome of grading one bet type for one game.
// NotGraded means the pick was missing or unparseable, not that it lost.
type GradeResult string

const (
	GradeWin  GradeResult = "W"
	GradeLoss GradeResult = "L"
	GradePush GradeResult = "P"
	NotGraded GradeResult = ""
)

// Decided reports whether the result is an actual W/L/P outcome
func (g GradeResult) Decided() bool {
	return g == GradeWin || g == GradeLoss || g == GradePush
}

// Hit converts a grade to the pick-record hit value:
// true for a win, false for a loss, nil for a push
func (g GradeResult) Hit() *bool {
	switch g {
	case GradeWin:
		t := true
		return &t
	case GradeLoss:
		f := false
		return &f
	default:
		return nil
	}
}

// Game is one projected contest in a sport's projection file.
// Team fields hold the abbreviations used in matchup keys ("LAL", "BOS").
// Score, status and result fields are mutated in place by the reconciler;
// everything else is written by the projection stage and read-only here.
type Game struct {
	AwayTeam string `json:"away_team"`
	HomeTeam string `json:"home_team"`

	SpreadPick string   `json:"spread_pick,omitempty"`
	SpreadConf float64  `json:"spread_conf,omitempty"`
	TotalPick  string   `json:"total_pick,omitempty"`
	TotalLine  *float64 `json:"total_line,omitempty"`
	TotalConf  float64  `json:"total_conf,omitempty"`
	MLPick     string   `json:"ml_pick,omitempty"`
	MLConf     float64  `json:"ml_conf,omitempty"`

	AwayScore *int       `json:"away_score"`
	HomeScore *int       `json:"home_score"`
	Status    GameStatus `json:"status,omitempty"`

	SpreadResult GradeResult `json:"spread_result,omitempty"`
	TotalResult  GradeResult `json:"total_result,omitempty"`
	MLResult     GradeResult `json:"ml_result,omitempty"`
}

// MatchupKey builds the exact key used to look up score records
func (g *Game) MatchupKey() string {
	return g.AwayTeam + "@" + g.HomeTeam
}

// Projections is a sport's projection file: one date, a list of games
type Projections struct {
	Date    string `json:"date"`
	Updated string `json:"updated"`
	Games   []Game `json:"games"`
}
