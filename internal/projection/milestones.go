package projection

import (
	"math"

	"github.com/mdjourney/goal-forecast/pkg/constants"
	"github.com/mdjourney/goal-forecast/pkg/mathutil"
)

// MilestoneProgress describes progress toward a single milestone amount.
type MilestoneProgress struct {
	Amount     float64 `json:"amount"`
	Percentage float64 `json:"percentage"`
	Remaining  float64 `json:"remaining"`
	Achieved   bool    `json:"achieved"`
}

// ProgressToward reports progress toward one milestone. Percentage is capped
// at 100 and Remaining is clamped at zero.
func ProgressToward(currentAmount, milestoneAmount float64) MilestoneProgress {
	return MilestoneProgress{
		Amount:     milestoneAmount,
		Percentage: math.Min(100, mathutil.CalculatePercentage(currentAmount, milestoneAmount)),
		Remaining:  math.Max(0, milestoneAmount-currentAmount),
		Achieved:   currentAmount >= milestoneAmount,
	}
}

// MilestoneLadder evaluates progress against the standard milestone ladder.
func MilestoneLadder(currentAmount float64) []MilestoneProgress {
	ladder := make([]MilestoneProgress, 0, len(constants.Milestones))
	for _, amount := range constants.Milestones {
		ladder = append(ladder, ProgressToward(currentAmount, amount))
	}
	return ladder
}
