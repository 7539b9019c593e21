package projection

import (
	"time"

	"go.uber.org/zap"

	"github.com/mdjourney/goal-forecast/pkg/currency"
	"github.com/mdjourney/goal-forecast/pkg/holdings"
	"github.com/mdjourney/goal-forecast/pkg/timevalue"
)

// TimelinePoint is one year of the projected trajectory.
type TimelinePoint struct {
	Year           int       `json:"year"`
	Date           time.Time `json:"date"`
	ProjectedValue float64   `json:"projectedValue"`
}

// Timeline projects net worth year by year assuming a level monthly
// contribution. Investments are grown in aggregate at the single growth rate
// and cash is carried flat; this is the chart view of the trajectory, coarser
// than the per-account projection in Calculate.
func Timeline(logger *zap.Logger, accounts []holdings.Account, monthlyContribution float64, years int, growthRate float64, rates currency.Rates, now time.Time) []TimelinePoint {
	if logger == nil {
		logger = zap.NewNop()
	}

	current := holdings.Aggregate(logger, accounts, rates)

	points := make([]TimelinePoint, 0, years+1)
	for year := 0; year <= years; year++ {
		fvHoldings := timevalue.FutureValue(current.Investments, growthRate, float64(year)) + current.Cash
		fvContributions := timevalue.FutureValueOfPayments(monthlyContribution, growthRate, float64(year))

		points = append(points, TimelinePoint{
			Year:           year,
			Date:           now.AddDate(year, 0, 0),
			ProjectedValue: fvHoldings + fvContributions,
		})
	}
	return points
}
