// Package rating contains the pure scoring and coloring functions of the
// rating board: the per-contest rating contribution formula and the mappings
// from ratings and rating deltas to display colors.
package rating

import (
	"math"

	"github.com/AsMaNick/RatingCalculator/internal/domain/model"
)

// Formula constants.
const (
	maxContribution = 100
	topScale        = 50

	// DefaultMinFieldSize floors the effective field size so tiny contests
	// do not over-reward mid-field finishes. Set to 1 for the unfloored
	// historical variant of the formula.
	DefaultMinFieldSize = 10
)

// Contribution converts a contest result into a normalized rating
// contribution in [0,100].
//
// maxPoints is the winner score of the contest, participants the official
// participant count, points and place the participant's own result.
// minFieldSize floors the effective field size n.
func Contribution(maxPoints float64, participants int, points float64, place int, minFieldSize int) float64 {
	if maxPoints == 0 {
		return 0
	}
	if participants == 1 {
		return maxContribution
	}
	if minFieldSize < 1 {
		minFieldSize = 1
	}
	n := participants
	if n < minFieldSize {
		n = minFieldSize
	}
	v := topScale * points / maxPoints * float64(2*n-2) / float64(n+place-2)
	return math.Min(maxContribution, v)
}

// Round2 rounds a contribution to two decimals for display.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// WinnerScore selects the contest's winner score: the points of the first
// official result in payload order, falling back to the maximum points over
// all results when the payload carries no official entries.
func WinnerScore(results []model.ContestResult) float64 {
	maxPoints := 0.0
	for _, r := range results {
		if r.IsOfficial {
			return r.Points
		}
		if r.Points > maxPoints {
			maxPoints = r.Points
		}
	}
	return maxPoints
}
