// Package projection computes goal projections from account snapshots: what
// the holdings are worth today, what they will be worth at the target date,
// and the level monthly contribution required to close the remaining gap.
package projection

import (
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/mdjourney/goal-forecast/pkg/constants"
	"github.com/mdjourney/goal-forecast/pkg/currency"
	"github.com/mdjourney/goal-forecast/pkg/holdings"
	"github.com/mdjourney/goal-forecast/pkg/mathutil"
	"github.com/mdjourney/goal-forecast/pkg/timevalue"
)

// Parameters holds the goal inputs for a projection run.
type Parameters struct {
	// TargetAmount is the net-worth goal in USD.
	TargetAmount float64

	// TargetDate is the date by which the target should be reached.
	TargetDate time.Time

	// GrowthRate is the assumed annual rate in percent for new contributions
	// and for investment accounts without a configured rate.
	GrowthRate float64

	// Rates is the exchange-rate snapshot; nil means the fallback snapshot.
	Rates currency.Rates
}

// DefaultParameters returns the standard goal: one million USD by the default
// target date at the default growth rate.
func DefaultParameters() Parameters {
	targetDate, err := time.Parse(constants.DateLayout, constants.DefaultTargetDate)
	if err != nil {
		panic("constants.DefaultTargetDate does not parse: " + err.Error())
	}
	return Parameters{
		TargetAmount: constants.DefaultTargetAmountUSD,
		TargetDate:   targetDate,
		GrowthRate:   constants.DefaultGrowthRate,
	}
}

// Result is the immutable outcome of a single projection run.
//
// CurrentNetWorthUSD and FutureValueOfCurrentHoldings answer different
// questions and are computed differently: the former is a flat sum of
// today's balances, the latter grows each account independently at its own
// rate until the target date.
type Result struct {
	CurrentNetWorthUSD    float64 `json:"currentNetWorthUSD"`
	CurrentInvestmentsUSD float64 `json:"currentInvestmentsUSD"`
	CurrentCashUSD        float64 `json:"currentCashUSD"`

	ProjectedNetWorthUSD         float64 `json:"projectedNetWorthUSD"`
	FutureValueOfCurrentHoldings float64 `json:"futureValueOfCurrentHoldings"`

	GapToTarget float64 `json:"gapToTarget"`

	MonthlyContributionNeeded float64 `json:"monthlyContributionNeeded"`

	MonthsRemaining int       `json:"monthsRemaining"`
	YearsRemaining  float64   `json:"yearsRemaining"`
	TargetDate      time.Time `json:"targetDate"`
	TargetAmount    float64   `json:"targetAmount"`

	ProgressPercentage float64 `json:"progressPercentage"`
	OnTrack            bool    `json:"onTrack"`
}

// Calculate produces the full projection for the given accounts. It never
// returns an error: every numeric edge case degrades to a defined fallback
// value, and a missing rate snapshot falls back to the default one.
func Calculate(logger *zap.Logger, accounts []holdings.Account, params Parameters, now time.Time) Result {
	if logger == nil {
		logger = zap.NewNop()
	}

	remaining := timevalue.TimeRemaining(params.TargetDate, now)
	current := holdings.Aggregate(logger, accounts, params.Rates)

	// Target date has passed or is now: nothing further can be contributed.
	if remaining.Years <= 0 {
		return Result{
			CurrentNetWorthUSD:           current.Total,
			CurrentInvestmentsUSD:        current.Investments,
			CurrentCashUSD:               current.Cash,
			ProjectedNetWorthUSD:         current.Total,
			FutureValueOfCurrentHoldings: current.Total,
			GapToTarget:                  math.Max(0, params.TargetAmount-current.Total),
			MonthlyContributionNeeded:    0,
			MonthsRemaining:              0,
			YearsRemaining:               0,
			TargetDate:                   params.TargetDate,
			TargetAmount:                 params.TargetAmount,
			ProgressPercentage:           mathutil.CalculatePercentage(current.Total, params.TargetAmount),
			OnTrack:                      current.Total >= params.TargetAmount,
		}
	}

	// Grow each account independently at its own rate. This is deliberately
	// not the same number as current.Total grown at a single rate.
	futureHoldings := 0.0
	for _, account := range accounts {
		balanceUSD := currency.ToUSD(logger, account.Balance, account.Currency, params.Rates)
		if rate, grows := account.GrowthRate(params.GrowthRate); grows {
			futureHoldings += timevalue.FutureValue(balanceUSD, rate, remaining.Years)
		} else {
			futureHoldings += balanceUSD
		}
	}

	gap := math.Max(0, params.TargetAmount-futureHoldings)

	contribution := 0.0
	if gap > 0 {
		contribution = timevalue.RequiredMonthlyPayment(gap, params.GrowthRate, remaining.Years)
	}
	futureContributions := timevalue.FutureValueOfPayments(contribution, params.GrowthRate, remaining.Years)

	onTrack := contribution <= 0 ||
		(current.Total > 0 && contribution < current.Total*constants.OnTrackContributionShare)

	logger.Debug("projection computed",
		zap.String("op", "projection.Calculate"),
		zap.Float64("currentNetWorthUSD", current.Total),
		zap.Float64("futureValueOfCurrentHoldings", futureHoldings),
		zap.Float64("monthlyContributionNeeded", contribution),
		zap.Bool("onTrack", onTrack),
	)

	return Result{
		CurrentNetWorthUSD:           current.Total,
		CurrentInvestmentsUSD:        current.Investments,
		CurrentCashUSD:               current.Cash,
		ProjectedNetWorthUSD:         futureHoldings + futureContributions,
		FutureValueOfCurrentHoldings: futureHoldings,
		GapToTarget:                  gap,
		MonthlyContributionNeeded:    contribution,
		MonthsRemaining:              remaining.Months,
		YearsRemaining:               remaining.Years,
		TargetDate:                   params.TargetDate,
		TargetAmount:                 params.TargetAmount,
		ProgressPercentage:           mathutil.CalculatePercentage(current.Total, params.TargetAmount),
		OnTrack:                      onTrack,
	}
}
