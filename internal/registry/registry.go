package registry

import (
	"fmt"

	"github.com/mtlusa01/mattev-sports/pkg/contracts"
	"github.com/mtlusa01/mattev-sports/sports/basketball_nba"
	"github.com/mtlusa01/mattev-sports/sports/basketball_ncaab"
	"github.com/mtlusa01/mattev-sports/sports/icehockey_nhl"
)

// Registry manages available sport modules. Registration order is the
// order the runner processes sports in.
type Registry struct {
	order   []string
	modules map[string]contracts.Sport
}

// New creates a sport registry with all available sports
func New() *Registry {
	r := &Registry{
		modules: make(map[string]contracts.Sport),
	}

	r.Register(basketball_nba.New())
	r.Register(icehockey_nhl.New())
	r.Register(basketball_ncaab.New())

	// Future sports (uncomment when ready):
	// r.Register(american_football_nfl.New())

	return r
}

// Register adds a sport module to the registry
func (r *Registry) Register(sport contracts.Sport) {
	key := sport.Key()
	if _, exists := r.modules[key]; !exists {
		r.order = append(r.order, key)
	}
	r.modules[key] = sport
}

// GetSport retrieves a sport module by key
func (r *Registry) GetSport(key string) (contracts.Sport, error) {
	sport, ok := r.modules[key]
	if !ok {
		return nil, fmt.Errorf("sport not found: %s", key)
	}
	return sport, nil
}

// EnabledSports returns all enabled sport modules in registration order
func (r *Registry) EnabledSports() []contracts.Sport {
	var enabled []contracts.Sport
	for _, key := range r.order {
		if m := r.modules[key]; m.IsEnabled() {
			enabled = append(enabled, m)
		}
	}
	return enabled
}

// AllSportKeys returns all registered sport keys in registration order
func (r *Registry) AllSportKeys() []string {
	keys := make([]string, len(r.order))
	copy(keys, r.order)
	return keys
}
