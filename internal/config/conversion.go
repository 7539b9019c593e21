// Package config defines conversion utilities for configuration objects.
package config

import (
	"fmt"

	"github.com/mdjourney/goal-forecast/internal/projection"
	"github.com/mdjourney/goal-forecast/pkg/constants"
	"github.com/mdjourney/goal-forecast/pkg/currency"
	"github.com/mdjourney/goal-forecast/pkg/holdings"
)

// ToAccounts converts the configured accounts into engine value objects.
// An unsupported account currency is a hard error; the engine cannot
// meaningfully interpret the balance.
func (c *Configuration) ToAccounts() ([]holdings.Account, error) {
	accounts := make([]holdings.Account, 0, len(c.Accounts))
	for i, account := range c.Accounts {
		code, err := currency.ParseCode(account.Currency)
		if err != nil {
			name := account.Name
			if name == "" {
				name = fmt.Sprintf("account %d", i+1)
			}
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		accounts = append(accounts, holdings.Account{
			Name:         account.Name,
			Balance:      account.Balance,
			Currency:     code,
			Investment:   account.Investment,
			InterestRate: account.InterestRate,
		})
	}
	return accounts, nil
}

// ToRates converts the configured rate table into a snapshot, skipping
// entries with unsupported codes. An empty result means "no snapshot
// supplied" and lets the engine fall back to its defaults.
func (c *Configuration) ToRates() (currency.Rates, []string) {
	if len(c.Rates) == 0 {
		return nil, nil
	}

	var skipped []string
	rates := make(currency.Rates, len(c.Rates))
	for key, rate := range c.Rates {
		code, err := currency.ParseCode(key)
		if err != nil {
			skipped = append(skipped, key)
			continue
		}
		rates[code] = rate
	}
	// The base currency always prices at 1.
	rates[currency.Base] = 1
	return rates, skipped
}

// ToParameters converts the configured goal and rates into projection
// parameters, substituting application defaults for unset values.
func (c *Configuration) ToParameters() (projection.Parameters, error) {
	targetDate, err := c.ParseTargetDate()
	if err != nil {
		return projection.Parameters{}, err
	}

	params := projection.Parameters{
		TargetAmount: c.Goal.TargetAmount,
		TargetDate:   targetDate,
		GrowthRate:   c.Goal.GrowthRate,
	}
	if params.TargetAmount == 0 {
		params.TargetAmount = constants.DefaultTargetAmountUSD
	}
	if params.GrowthRate == 0 {
		params.GrowthRate = constants.DefaultGrowthRate
	}
	params.Rates, _ = c.ToRates()

	return params, nil
}
