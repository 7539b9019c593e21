package projection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mdjourney/goal-forecast/pkg/currency"
	"github.com/mdjourney/goal-forecast/pkg/holdings"
)

func TestTimeline(t *testing.T) {
	accounts := []holdings.Account{
		{Name: "Brokerage", Balance: 100_000, Currency: currency.USD, Investment: true},
		{Name: "Cash", Balance: 20_000, Currency: currency.USD},
	}
	rates := currency.Rates{currency.USD: 1}

	points := Timeline(zap.NewNop(), accounts, 500, 10, 8, rates, testNow)

	require.Len(t, points, 11, "ten years produces eleven points including year zero")

	assert.Equal(t, 0, points[0].Year)
	assert.Equal(t, testNow, points[0].Date)
	assert.Equal(t, 120_000.0, points[0].ProjectedValue,
		"year zero is just the current total")

	assert.Equal(t, 10, points[10].Year)
	assert.Equal(t, testNow.AddDate(10, 0, 0), points[10].Date)
	// FV(100k, 8%, 10y) + 20k cash + FV of 500/mo at 8% over 10y.
	assert.InDelta(t, 221_964+20_000+91_473, points[10].ProjectedValue, 100)

	for i := 1; i < len(points); i++ {
		assert.Greater(t, points[i].ProjectedValue, points[i-1].ProjectedValue,
			"positive rate and positive contributions keep the trajectory rising")
	}
}

func TestTimelineZeroYears(t *testing.T) {
	points := Timeline(zap.NewNop(), nil, 0, 0, 8, nil, testNow)
	require.Len(t, points, 1)
	assert.Equal(t, 0.0, points[0].ProjectedValue)
}

func TestTimelineCashStaysFlatWithoutContributions(t *testing.T) {
	accounts := []holdings.Account{
		{Name: "Cash", Balance: 5_000, Currency: currency.USD},
	}

	points := Timeline(nil, accounts, 0, 5, 8, currency.Rates{currency.USD: 1}, testNow)

	for _, point := range points {
		assert.Equal(t, 5_000.0, point.ProjectedValue)
	}
}

func TestMilestoneProgressToward(t *testing.T) {
	tests := []struct {
		name               string
		current            float64
		milestone          float64
		expectedPercentage float64
		expectedRemaining  float64
		expectedAchieved   bool
	}{
		{
			name:               "Halfway there",
			current:            5_000,
			milestone:          10_000,
			expectedPercentage: 50,
			expectedRemaining:  5_000,
		},
		{
			name:               "Exactly achieved",
			current:            10_000,
			milestone:          10_000,
			expectedPercentage: 100,
			expectedRemaining:  0,
			expectedAchieved:   true,
		},
		{
			name:               "Overshoot caps the percentage and clamps remaining",
			current:            30_000,
			milestone:          10_000,
			expectedPercentage: 100,
			expectedRemaining:  0,
			expectedAchieved:   true,
		},
		{
			name:               "Nothing saved yet",
			current:            0,
			milestone:          10_000,
			expectedPercentage: 0,
			expectedRemaining:  10_000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			progress := ProgressToward(tt.current, tt.milestone)
			assert.Equal(t, tt.milestone, progress.Amount)
			assert.InDelta(t, tt.expectedPercentage, progress.Percentage, 1e-9)
			assert.InDelta(t, tt.expectedRemaining, progress.Remaining, 1e-9)
			assert.Equal(t, tt.expectedAchieved, progress.Achieved)
		})
	}
}

func TestMilestoneLadder(t *testing.T) {
	ladder := MilestoneLadder(120_000)

	require.Len(t, ladder, 8)

	achieved := 0
	for _, milestone := range ladder {
		if milestone.Achieved {
			achieved++
		}
	}
	assert.Equal(t, 4, achieved, "120k clears 10k through 100k")

	// Ladder is ordered ascending by amount.
	for i := 1; i < len(ladder); i++ {
		assert.Greater(t, ladder[i].Amount, ladder[i-1].Amount)
	}

	last := ladder[len(ladder)-1]
	assert.Equal(t, 1_000_000.0, last.Amount)
	assert.InDelta(t, 12, last.Percentage, 1e-9)
	assert.Equal(t, 880_000.0, last.Remaining)
}
