// Package timevalue provides time-value-of-money primitives: compound future
// value, the annuity payment formulas, and the years-to-target search.
//
// Every function is total: degenerate inputs (non-positive amounts, rates, or
// durations) degrade to defined fallback values rather than errors.
package timevalue

import (
	"math"
	"time"

	"github.com/mdjourney/goal-forecast/pkg/constants"
)

// FutureValue computes the future value of a present amount with monthly
// compound interest: FV = PV * (1 + r/n)^(n*t).
func FutureValue(presentValue, annualRate, years float64) float64 {
	return FutureValueWithCompounding(presentValue, annualRate, years, constants.CompoundsPerYear)
}

// FutureValueWithCompounding is FutureValue with an explicit compounding
// frequency. annualRate is a percentage, years may be fractional.
func FutureValueWithCompounding(presentValue, annualRate, years float64, periodsPerYear int) float64 {
	if presentValue <= 0 {
		return 0
	}
	if annualRate <= 0 {
		return presentValue // no growth
	}
	if years <= 0 {
		return presentValue
	}

	periodicRate := annualRate / (constants.PercentageMultiplier * float64(periodsPerYear))
	return presentValue * math.Pow(1+periodicRate, float64(periodsPerYear)*years)
}

// RequiredMonthlyPayment solves the future value of an annuity for the level
// monthly payment: PMT = FV * (r/n) / ((1 + r/n)^(n*t) - 1).
//
// With years <= 0 the full amount is returned (it must be funded
// immediately); with a non-positive rate the formula degrades to simple
// division over the number of payments.
func RequiredMonthlyPayment(futureValueNeeded, annualRate, years float64) float64 {
	if futureValueNeeded <= 0 {
		return 0
	}
	if years <= 0 {
		return futureValueNeeded
	}

	totalPeriods := constants.MonthsPerYear * years
	if annualRate <= 0 {
		return futureValueNeeded / totalPeriods
	}

	monthlyRate := annualRate / (constants.PercentageMultiplier * constants.MonthsPerYear)
	growthFactor := math.Pow(1+monthlyRate, totalPeriods) - 1
	return futureValueNeeded * monthlyRate / growthFactor
}

// FutureValueOfPayments computes the future value of a level monthly payment
// stream: FV = PMT * (((1 + r/n)^(n*t) - 1) / (r/n)).
func FutureValueOfPayments(monthlyPayment, annualRate, years float64) float64 {
	if monthlyPayment <= 0 {
		return 0
	}
	if years <= 0 {
		return 0
	}
	if annualRate <= 0 {
		return monthlyPayment * constants.MonthsPerYear * years
	}

	monthlyRate := annualRate / (constants.PercentageMultiplier * constants.MonthsPerYear)
	growthFactor := math.Pow(1+monthlyRate, constants.MonthsPerYear*years) - 1
	return monthlyPayment * growthFactor / monthlyRate
}

// Remaining is the time left until a target date.
type Remaining struct {
	Months int
	Years  float64
}

// TimeRemaining reports the months and years between now and the target date.
// Past target dates yield zero, never negative values.
func TimeRemaining(targetDate, now time.Time) Remaining {
	days := targetDate.Sub(now).Hours() / 24
	years := days / constants.DaysPerYear
	months := math.Floor(years * constants.MonthsPerYear)

	return Remaining{
		Months: int(math.Max(0, months)),
		Years:  math.Max(0, years),
	}
}

// YearsToTarget binary-searches for the smallest horizon at which current
// holdings plus a level monthly contribution reach the target amount.
//
// The search is capped at constants.SearchHorizonYears with resolution
// constants.SearchToleranceYears, and the result is rounded up to one decimal
// place (search resolution, not true precision). ok is false when the target
// can never be reached: no growth and no new money.
func YearsToTarget(currentAmount, monthlyContribution, targetAmount, annualRate float64) (years float64, ok bool) {
	if currentAmount >= targetAmount {
		return 0, true
	}
	if monthlyContribution <= 0 && annualRate <= 0 {
		return 0, false
	}

	low := 0.0
	high := constants.SearchHorizonYears
	for high-low > constants.SearchToleranceYears {
		mid := (low + high) / 2
		total := FutureValue(currentAmount, annualRate, mid) +
			FutureValueOfPayments(monthlyContribution, annualRate, mid)
		if total < targetAmount {
			low = mid
		} else {
			high = mid
		}
	}

	return math.Ceil(high*10) / 10, true
}
