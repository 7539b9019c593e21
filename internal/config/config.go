// Package config defines the data structures related to configuration and
// includes functions for loading and validating the config.
package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/mdjourney/goal-forecast/pkg/constants"
	"github.com/mdjourney/goal-forecast/pkg/currency"
)

// DateLayout is the format expected for dates in config files and is also the
// output date format.
const DateLayout = constants.DateLayout

// Configuration holds all configuration for goal-forecast.
type Configuration struct {
	Accounts []Account
	Goal     Goal
	Rates    map[string]float64 `yaml:"rates,omitempty"`
	Logging  LoggingConfig      `yaml:"logging,omitempty"`
	Output   OutputConfig       `yaml:"output,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv
}

// Account describes one account in the configuration file. Balance is in
// Currency units; liabilities are represented as negative balances.
type Account struct {
	Name       string
	Balance    float64
	Currency   string
	Investment bool
	// InterestRate is percent per year. Omit it to let investment accounts
	// grow at the default growth rate; an explicit 0 means no growth.
	InterestRate *float64 `yaml:"interestRate,omitempty"`
}

// Goal describes the target the projection aims for. Zero values fall back
// to the application defaults.
type Goal struct {
	TargetAmount float64
	TargetDate   string
	GrowthRate   float64
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	viper.SetConfigFile(configPath)
	viper.AutomaticEnv()

	viper.SetConfigType("yml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	var configuration Configuration
	err := viper.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	return &configuration, nil
}

// ParseTargetDate returns the goal's target date, substituting the default
// when unset.
func (c *Configuration) ParseTargetDate() (time.Time, error) {
	raw := c.Goal.TargetDate
	if raw == "" {
		raw = constants.DefaultTargetDate
	}
	date, err := time.Parse(DateLayout, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse target date %s: %w", raw, err)
	}
	return date, nil
}

// ValidateConfiguration performs general validation of the configuration and
// returns warnings. Recoverable issues never fail the run.
func (c *Configuration) ValidateConfiguration() []string {
	var warnings []string

	if len(c.Accounts) == 0 {
		warnings = append(warnings, "no accounts configured; projection starts from zero")
	}

	for i, account := range c.Accounts {
		label := account.Name
		if label == "" {
			label = fmt.Sprintf("account %d", i+1)
			warnings = append(warnings, fmt.Sprintf("%s has no name", label))
		}
		if _, err := currency.ParseCode(account.Currency); err != nil {
			warnings = append(warnings, fmt.Sprintf("%s: %v", label, err))
			continue
		}
		if account.InterestRate != nil && *account.InterestRate < 0 {
			warnings = append(warnings, fmt.Sprintf("%s has a negative interest rate", label))
		}
	}

	if c.Goal.TargetAmount < 0 {
		warnings = append(warnings, "goal target amount is negative")
	}
	if c.Goal.GrowthRate < 0 {
		warnings = append(warnings, "goal growth rate is negative; projections will not grow")
	}
	if targetDate, err := c.ParseTargetDate(); err != nil {
		warnings = append(warnings, err.Error())
	} else if !targetDate.After(time.Now()) {
		warnings = append(warnings, fmt.Sprintf("target date %s is not in the future", targetDate.Format(DateLayout)))
	}

	warnings = append(warnings, c.validateRates()...)

	return warnings
}

// validateRates warns about rate-table entries that cannot be used and about
// configured currencies that a supplied table does not cover. The latter is
// important: balances in an uncovered currency pass through unconverted.
func (c *Configuration) validateRates() []string {
	var warnings []string

	for key := range c.Rates {
		if _, err := currency.ParseCode(key); err != nil {
			warnings = append(warnings, fmt.Sprintf("rates: %v; entry ignored", err))
		}
	}

	if len(c.Rates) == 0 {
		return warnings
	}

	rates, _ := c.ToRates()
	for _, account := range c.Accounts {
		code, err := currency.ParseCode(account.Currency)
		if err != nil || code == currency.Base {
			continue
		}
		if rate, ok := rates[code]; !ok || rate == 0 {
			warnings = append(warnings, fmt.Sprintf(
				"rates table has no usable entry for %s; balances in %s will not be converted", code, code))
		}
	}
	return warnings
}
