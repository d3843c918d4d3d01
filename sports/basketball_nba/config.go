package basketball_nba

import "github.com/mtlusa01/mattev-sports/pkg/contracts"

// Sport is the NBA configuration for the grading pipeline
type Sport struct{}

// New creates the NBA sport module
func New() *Sport {
	return &Sport{}
}

func (s *Sport) Key() string { return "basketball_nba" }
func (s *Sport) DisplayName() string { return "NBA" }

func (s *Sport) ProjectionFile() string { return "game_projections.json" }
func (s *Sport) ResultsFile() string { return "results.json" }

func (s *Sport) Source() contracts.ScoreSource { return contracts.SourceOddsAPI }
func (s *Sport) OddsAPISportKey() string { return "basketball_nba" }
func (s *Sport) ESPNSportPath() string { return "" }

func (s *Sport) TeamAbbreviations() map[string]string { return teamAbbreviations }

// PreserveProps is true for the NBA: player-prop picks are graded by the
// daily props subsystem and merged into the same results file
func (s *Sport) PreserveProps() bool { return true }

func (s *Sport) IsEnabled() bool { return true }
