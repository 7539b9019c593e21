package output

import (
	"io"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/mdjourney/goal-forecast/internal/projection"
)

// captureStdout redirects stdout for the duration of fn and returns whatever
// it printed.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()

	original := os.Stdout
	reader, writer, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	os.Stdout = writer

	fn()

	os.Stdout = original
	if err := writer.Close(); err != nil {
		t.Fatalf("failed to close pipe writer: %v", err)
	}
	captured, err := io.ReadAll(reader)
	if err != nil {
		t.Fatalf("failed to read captured output: %v", err)
	}
	return string(captured)
}

func testResult() projection.Result {
	return projection.Result{
		CurrentNetWorthUSD:           120000,
		CurrentInvestmentsUSD:        100000,
		CurrentCashUSD:               20000,
		ProjectedNetWorthUSD:         1000000,
		FutureValueOfCurrentHoldings: 241964,
		GapToTarget:                  758036,
		MonthlyContributionNeeded:    4143.72,
		MonthsRemaining:              100,
		YearsRemaining:               8.3,
		TargetDate:                   time.Date(2035, time.January, 1, 0, 0, 0, 0, time.UTC),
		TargetAmount:                 1000000,
		ProgressPercentage:           12,
		OnTrack:                      false,
	}
}

func TestPrettyFormat(t *testing.T) {
	out := captureStdout(t, func() {
		PrettyFormat(testResult(), projection.MilestoneLadder(120000))
	})

	expectedFragments := []string{
		"target $1,000,000.00 by 2035-01-01",
		"Current net worth:         $120,000.00",
		"investments $100,000.00",
		"cash $20,000.00",
		"Gap to target:             $758,036.00",
		"Monthly contribution:      $4,143.72",
		"100 months (8.3 years)",
		"Progress:                  12.0%",
		"On track:                  no",
		"Milestones",
		"(achieved)",
	}
	for _, fragment := range expectedFragments {
		if !strings.Contains(out, fragment) {
			t.Errorf("output missing %q\noutput:\n%s", fragment, out)
		}
	}
}

func TestPrettyFormatOnTrack(t *testing.T) {
	result := testResult()
	result.OnTrack = true

	out := captureStdout(t, func() {
		PrettyFormat(result, nil)
	})

	if !strings.Contains(out, "On track:                  yes") {
		t.Errorf("output missing on-track line:\n%s", out)
	}
	if strings.Contains(out, "Milestones") {
		t.Error("empty ladder should omit the milestone table")
	}
}

func TestCsvFormat(t *testing.T) {
	timeline := []projection.TimelinePoint{
		{Year: 0, Date: time.Date(2026, time.August, 28, 0, 0, 0, 0, time.UTC), ProjectedValue: 120000},
		{Year: 1, Date: time.Date(2027, time.August, 28, 0, 0, 0, 0, time.UTC), ProjectedValue: 135000.5},
	}

	out := captureStdout(t, func() {
		CsvFormat(timeline)
	})

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d lines", len(lines))
	}
	if lines[0] != `"year","date","projectedValue"` {
		t.Errorf("unexpected header: %s", lines[0])
	}
	if lines[1] != `"0","2026-08-28","120000.00"` {
		t.Errorf("unexpected first row: %s", lines[1])
	}
	if lines[2] != `"1","2027-08-28","135000.50"` {
		t.Errorf("unexpected second row: %s", lines[2])
	}
}
