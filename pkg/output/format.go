// Package output provides utilities for formatting and displaying projection results.
package output

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/mdjourney/goal-forecast/internal/projection"
	"github.com/mdjourney/goal-forecast/pkg/constants"
	"github.com/mdjourney/goal-forecast/pkg/format"
)

// PrettyFormat outputs a human-readable summary of a projection result with
// the milestone ladder underneath.
func PrettyFormat(result projection.Result, ladder []projection.MilestoneProgress) {
	p := message.NewPrinter(language.English)

	fmt.Printf("--- Projection for target %s by %s ---\n",
		format.USD(result.TargetAmount), result.TargetDate.Format(constants.DateLayout))
	fmt.Printf("Current net worth:         %s (investments %s, cash %s)\n",
		format.USD(result.CurrentNetWorthUSD),
		format.USD(result.CurrentInvestmentsUSD),
		format.USD(result.CurrentCashUSD))
	fmt.Printf("Future value of holdings:  %s\n", format.USD(result.FutureValueOfCurrentHoldings))
	fmt.Printf("Gap to target:             %s\n", format.USD(result.GapToTarget))
	fmt.Printf("Monthly contribution:      %s\n", format.USD(result.MonthlyContributionNeeded))
	fmt.Printf("Projected net worth:       %s\n", format.USD(result.ProjectedNetWorthUSD))
	_, _ = p.Printf("Time remaining:            %d months (%.1f years)\n",
		result.MonthsRemaining, result.YearsRemaining)
	_, _ = p.Printf("Progress:                  %.1f%%\n", result.ProgressPercentage)
	if result.OnTrack {
		fmt.Printf("On track:                  yes\n")
	} else {
		fmt.Printf("On track:                  no\n")
	}

	if len(ladder) == 0 {
		return
	}
	fmt.Printf("\nMilestones\n")
	fmt.Printf("Amount      | Progress | Remaining\n")
	fmt.Printf("______      | ________ | _________\n")
	for _, milestone := range ladder {
		marker := ""
		if milestone.Achieved {
			marker = " (achieved)"
		}
		_, _ = p.Printf("%-11s | %6.1f%% | %s%s\n",
			format.USD(milestone.Amount), milestone.Percentage, format.USD(milestone.Remaining), marker)
	}
}

// CsvFormat outputs the year-by-year projection timeline in comma-separated
// value format.
func CsvFormat(timeline []projection.TimelinePoint) {
	fmt.Printf("\"year\",\"date\",\"projectedValue\"\n")
	for _, point := range timeline {
		fmt.Printf("\"%d\",\"%s\",\"%.2f\"\n",
			point.Year, point.Date.Format(constants.DateLayout), point.ProjectedValue)
	}
}
