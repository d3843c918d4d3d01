package icehockey_nhl

import "github.com/mtlusa01/mattev-sports/pkg/contracts"

// Sport is the NHL configuration for the grading pipeline
type Sport struct{}

// New creates the NHL sport module
func New() *Sport {
	return &Sport{}
}

func (s *Sport) Key() string { return "icehockey_nhl" }
func (s *Sport) DisplayName() string { return "NHL" }

func (s *Sport) ProjectionFile() string { return "nhl_game_projections.json" }
func (s *Sport) ResultsFile() string { return "nhl_results.json" }

func (s *Sport) Source() contracts.ScoreSource { return contracts.SourceOddsAPI }
func (s *Sport) OddsAPISportKey() string { return "icehockey_nhl" }
func (s *Sport) ESPNSportPath() string { return "" }

func (s *Sport) TeamAbbreviations() map[string]string { return teamAbbreviations }

func (s *Sport) PreserveProps() bool { return false }

func (s *Sport) IsEnabled() bool { return true }
