package contracts

// ScoreSource identifies which provider supplies a sport's scores
type ScoreSource int

const (
	// SourceOddsAPI fetches from The Odds API (requires ODDS_API_KEY)
	SourceOddsAPI ScoreSource = iota
	// SourceESPN fetches from the free ESPN scoreboard API
	SourceESPN
)

// Sport is the pluggable interface for adding new graded sports.
// Same shape as Mercury's SportModule pattern: pure configuration,
// no behavior — the runner and providers do the work.
type Sport interface {
	// Identification
	Key() string         // "basketball_nba", "icehockey_nhl"
	DisplayName() string // "NBA", "NHL"

	// Storage
	ProjectionFile() string
	ResultsFile() string

	// Score fetching. OddsAPISportKey and TeamAbbreviations (full name
	// to abbreviation) apply to Odds API sports; ESPNSportPath applies
	// to ESPN sports. The others return zero values.
	Source() ScoreSource
	OddsAPISportKey() string
	ESPNSportPath() string
	TeamAbbreviations() map[string]string

	// PreserveProps reports whether the sport's results days carry
	// prop picks graded by a separate subsystem that must be merged
	// rather than replaced
	PreserveProps() bool

	IsEnabled() bool
}
