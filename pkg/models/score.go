package models

// ScoreRecord is one game's score snapshot from a provider
type ScoreRecord struct {
	AwayScore int  `json:"away_score"`
	HomeScore int  `json:"home_score"`
	Completed bool `json:"completed"`
}

// ScoreSet maps "AWAY@HOME" matchup keys to score records for one fetch.
// Built fresh each run; never persisted to the results files.
type ScoreSet map[string]ScoreRecord

// Merge copies every record from other into the set, overwriting on
// key collision (later fetches win)
func (s ScoreSet) Merge(other ScoreSet) {
	for key, rec := range other {
		s[key] = rec
	}
}
