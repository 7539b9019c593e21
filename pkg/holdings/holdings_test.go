package holdings

import (
	"testing"

	"go.uber.org/zap"

	"github.com/mdjourney/goal-forecast/pkg/currency"
	"github.com/mdjourney/goal-forecast/pkg/mathutil"
)

func floatPtr(v float64) *float64 {
	return &v
}

func TestAggregate(t *testing.T) {
	rates := currency.Rates{currency.USD: 1, currency.EUR: 0.92, currency.CZK: 23.5}

	tests := []struct {
		name                string
		accounts            []Account
		expectedTotal       float64
		expectedInvestments float64
		expectedCash        float64
		tolerance           float64
	}{
		{
			name:                "No accounts",
			accounts:            nil,
			expectedTotal:       0,
			expectedInvestments: 0,
			expectedCash:        0,
			tolerance:           0,
		},
		{
			name: "Single USD investment",
			accounts: []Account{
				{Name: "Brokerage", Balance: 50000, Currency: currency.USD, Investment: true},
			},
			expectedTotal:       50000,
			expectedInvestments: 50000,
			expectedCash:        0,
			tolerance:           0,
		},
		{
			name: "Mixed currencies split into investments and cash",
			accounts: []Account{
				{Name: "Brokerage", Balance: 50000, Currency: currency.USD, Investment: true},
				{Name: "Retirement", Balance: 9200, Currency: currency.EUR, Investment: true},
				{Name: "Savings", Balance: 23500, Currency: currency.CZK},
				{Name: "Cash", Balance: 1500, Currency: currency.USD},
			},
			expectedTotal:       62500, // 50000 + 10000 + 1000 + 1500
			expectedInvestments: 60000,
			expectedCash:        2500,
			tolerance:           0.01,
		},
		{
			name: "Negative balances reduce the subtotals",
			accounts: []Account{
				{Name: "Cash", Balance: 5000, Currency: currency.USD},
				{Name: "Credit card", Balance: -1200, Currency: currency.USD},
			},
			expectedTotal:       3800,
			expectedInvestments: 0,
			expectedCash:        3800,
			tolerance:           0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			totals := Aggregate(zap.NewNop(), tt.accounts, rates)

			if !mathutil.WithinTolerance(totals.Total, tt.expectedTotal, tt.tolerance) {
				t.Errorf("Total = %.4f, expected %.4f", totals.Total, tt.expectedTotal)
			}
			if !mathutil.WithinTolerance(totals.Investments, tt.expectedInvestments, tt.tolerance) {
				t.Errorf("Investments = %.4f, expected %.4f", totals.Investments, tt.expectedInvestments)
			}
			if !mathutil.WithinTolerance(totals.Cash, tt.expectedCash, tt.tolerance) {
				t.Errorf("Cash = %.4f, expected %.4f", totals.Cash, tt.expectedCash)
			}

			// Additive invariant holds for every input combination.
			if !mathutil.WithinTolerance(totals.Total, totals.Investments+totals.Cash, 1e-9) {
				t.Errorf("Total %.6f != Investments %.6f + Cash %.6f",
					totals.Total, totals.Investments, totals.Cash)
			}
		})
	}
}

func TestAggregateNilLogger(t *testing.T) {
	accounts := []Account{{Name: "Cash", Balance: 100, Currency: currency.USD}}
	totals := Aggregate(nil, accounts, nil)
	if totals.Total != 100 {
		t.Errorf("Total = %.2f, expected 100", totals.Total)
	}
}

func TestGrowthRate(t *testing.T) {
	tests := []struct {
		name         string
		account      Account
		defaultRate  float64
		expectedRate float64
		expectGrows  bool
	}{
		{
			name:         "Investment without a rate uses the default",
			account:      Account{Investment: true},
			defaultRate:  8,
			expectedRate: 8,
			expectGrows:  true,
		},
		{
			name:         "Investment with its own rate uses it",
			account:      Account{Investment: true, InterestRate: floatPtr(5.5)},
			defaultRate:  8,
			expectedRate: 5.5,
			expectGrows:  true,
		},
		{
			name:         "Investment with an explicit zero rate grows at zero",
			account:      Account{Investment: true, InterestRate: floatPtr(0)},
			defaultRate:  8,
			expectedRate: 0,
			expectGrows:  true,
		},
		{
			name:         "Interest-bearing cash grows at its own rate",
			account:      Account{InterestRate: floatPtr(2)},
			defaultRate:  8,
			expectedRate: 2,
			expectGrows:  true,
		},
		{
			name:        "Plain cash does not grow",
			account:     Account{},
			defaultRate: 8,
			expectGrows: false,
		},
		{
			name:        "Cash with an explicit zero rate does not grow",
			account:     Account{InterestRate: floatPtr(0)},
			defaultRate: 8,
			expectGrows: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rate, grows := tt.account.GrowthRate(tt.defaultRate)
			if grows != tt.expectGrows {
				t.Fatalf("grows = %v, expected %v", grows, tt.expectGrows)
			}
			if grows && rate != tt.expectedRate {
				t.Errorf("rate = %.2f, expected %.2f", rate, tt.expectedRate)
			}
		})
	}
}
