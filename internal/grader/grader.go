// Package grader holds the pure pick-grading functions. Everything here
// is deterministic on its inputs: grading the same pick against the same
// final score twice always yields the same result.
package grader

import (
	"strconv"
	"strings"

	"github.com/mtlusa01/mattev-sports/pkg/models"
)

// Spread grades a spread pick of the form "<team> <line>" ("BOS -4.5",
// "LAL +4") against a final score. The line is always the trailing
// whitespace-delimited token; a missing or unparseable pick returns
// NotGraded. The margin is computed from the perspective of the picked
// team: own score minus opponent score plus the line.
func Spread(pick, homeTeam string, awayScore, homeScore int) models.GradeResult {
	if pick == "" || pick == "N/A" {
		return models.NotGraded
	}

	idx := strings.LastIndex(pick, " ")
	if idx < 0 {
		return models.NotGraded
	}

	team := pick[:idx]
	line, err := strconv.ParseFloat(pick[idx+1:], 64)
	if err != nil {
		return models.NotGraded
	}

	var margin float64
	if team == homeTeam {
		margin = float64(homeScore-awayScore) + line
	} else {
		margin = float64(awayScore-homeScore) + line
	}

	switch {
	case margin > 0:
		return models.GradeWin
	case margin < 0:
		return models.GradeLoss
	default:
		return models.GradePush
	}
}

// Total grades an OVER/UNDER pick against the combined final score.
// A missing pick or line returns NotGraded; landing exactly on the
// line is a push either way.
func Total(pick string, line *float64, awayScore, homeScore int) models.GradeResult {
	if pick == "" || line == nil {
		return models.NotGraded
	}

	actual := float64(awayScore + homeScore)

	over := actual > *line
	under := actual < *line

	if pick == "OVER" {
		switch {
		case over:
			return models.GradeWin
		case under:
			return models.GradeLoss
		default:
			return models.GradePush
		}
	}

	// UNDER
	switch {
	case under:
		return models.GradeWin
	case over:
		return models.GradeLoss
	default:
		return models.GradePush
	}
}

// Moneyline grades an outright-winner pick. Ties are not modeled;
// anything short of a strict win grades as a loss.
func Moneyline(pick, homeTeam string, awayScore, homeScore int) models.GradeResult {
	if pick == "" {
		return models.NotGraded
	}

	if pick == homeTeam {
		if homeScore > awayScore {
			return models.GradeWin
		}
		return models.GradeLoss
	}

	if awayScore > homeScore {
		return models.GradeWin
	}
	return models.GradeLoss
}
