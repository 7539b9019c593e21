// Package format renders monetary amounts for display.
package format

import (
	"fmt"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"

	"github.com/mdjourney/goal-forecast/pkg/currency"
)

// Amount renders a float amount in the given currency with the currency's
// own symbol and minor-unit count, e.g. "$1,234.56" or "¥1,235".
//
// Engine math stays in float64; only the display conversion goes through
// decimal, so cents do not drift when shifting to minor units.
func Amount(value float64, code currency.Code) string {
	cur := money.GetCurrency(string(code))
	if cur == nil {
		return fmt.Sprintf("%s %s", decimal.NewFromFloat(value).StringFixed(2), code)
	}

	minorUnits := decimal.NewFromFloat(value).Shift(int32(cur.Fraction)).Round(0).IntPart()
	return money.New(minorUnits, string(code)).Display()
}

// USD renders a float amount as US dollars.
func USD(value float64) string {
	return Amount(value, currency.USD)
}
