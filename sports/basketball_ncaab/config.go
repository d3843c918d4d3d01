package basketball_ncaab

import "github.com/mtlusa01/mattev-sports/pkg/contracts"

// Sport is the college basketball configuration for the grading
// pipeline. Scores come from the ESPN scoreboard, which reports team
// abbreviations directly, so no name mapping table is needed.
type Sport struct{}

// New creates the NCAAB sport module
func New() *Sport {
	return &Sport{}
}

func (s *Sport) Key() string { return "basketball_ncaab" }
func (s *Sport) DisplayName() string { return "NCAAB" }

func (s *Sport) ProjectionFile() string { return "ncaab_projections.json" }
func (s *Sport) ResultsFile() string { return "ncaab_results.json" }

func (s *Sport) Source() contracts.ScoreSource { return contracts.SourceESPN }
func (s *Sport) OddsAPISportKey() string { return "" }
func (s *Sport) ESPNSportPath() string { return "basketball/mens-college-basketball" }

func (s *Sport) TeamAbbreviations() map[string]string { return nil }

func (s *Sport) PreserveProps() bool { return false }

func (s *Sport) IsEnabled() bool { return true }
