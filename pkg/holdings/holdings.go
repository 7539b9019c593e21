// Package holdings aggregates account balances into USD totals.
package holdings

import (
	"go.uber.org/zap"

	"github.com/mdjourney/goal-forecast/pkg/currency"
)

// Account is a read-only snapshot of a single account as supplied by the
// caller. Balance is in Currency units and may be negative. InterestRate is
// percent per year; nil means no rate was configured, which is distinct from
// an explicit zero.
type Account struct {
	Name         string
	Balance      float64
	Currency     currency.Code
	Investment   bool
	InterestRate *float64
}

// GrowthRate returns the annual percentage rate at which the account balance
// compounds, and whether it compounds at all.
//
// Investment accounts grow at their own rate when one is configured
// (an explicit zero means no growth), otherwise at defaultRate.
// Non-investment accounts grow only when they carry a positive rate
// (interest-bearing savings); plain cash is carried flat.
func (a Account) GrowthRate(defaultRate float64) (rate float64, grows bool) {
	if a.Investment {
		if a.InterestRate != nil {
			return *a.InterestRate, true
		}
		return defaultRate, true
	}
	if a.InterestRate != nil && *a.InterestRate > 0 {
		return *a.InterestRate, true
	}
	return 0, false
}

// Totals holds USD subtotals of current holdings.
type Totals struct {
	Total       float64
	Investments float64
	Cash        float64
}

// Aggregate converts every balance to USD and splits the sum into investment
// and cash subtotals. Total is always Investments + Cash. No rounding is
// applied here; presentation rounds.
func Aggregate(logger *zap.Logger, accounts []Account, rates currency.Rates) Totals {
	if logger == nil {
		logger = zap.NewNop()
	}

	var totals Totals
	for _, account := range accounts {
		balanceUSD := currency.ToUSD(logger, account.Balance, account.Currency, rates)
		if account.Investment {
			totals.Investments += balanceUSD
		} else {
			totals.Cash += balanceUSD
		}
	}
	totals.Total = totals.Investments + totals.Cash
	return totals
}
