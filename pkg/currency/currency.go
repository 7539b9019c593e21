// Package currency defines the supported currency set and conversion into the
// USD base using an exchange-rate snapshot.
package currency

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// Code is a supported currency code.
type Code string

// Supported currency codes. USD is the base currency; every rate snapshot is
// expressed in units of currency per 1 USD.
const (
	USD Code = "USD"
	EUR Code = "EUR"
	GBP Code = "GBP"
	CZK Code = "CZK"
	JPY Code = "JPY"
	CHF Code = "CHF"
	CAD Code = "CAD"
	AUD Code = "AUD"
)

// Base is the currency all engine totals are normalized to.
const Base = USD

// Rates maps a currency code to its price in units per 1 USD. The base
// currency maps to 1.
type Rates map[Code]float64

// FallbackRates is the hardcoded last-resort snapshot substituted when no
// rate snapshot is supplied at all. These are static defaults and must never
// be treated as live rates.
var FallbackRates = Rates{
	USD: 1,
	CZK: 20.63,
	EUR: 0.85,
	GBP: 0.79,
	JPY: 149.5,
	CHF: 0.88,
	CAD: 1.36,
	AUD: 1.53,
}

// Supported returns the supported currency codes in display order.
func Supported() []Code {
	return []Code{USD, EUR, GBP, CZK, JPY, CHF, CAD, AUD}
}

// Valid reports whether the code belongs to the supported set.
func (c Code) Valid() bool {
	switch c {
	case USD, EUR, GBP, CZK, JPY, CHF, CAD, AUD:
		return true
	}
	return false
}

// ParseCode parses a currency code case-insensitively.
func ParseCode(s string) (Code, error) {
	code := Code(strings.ToUpper(strings.TrimSpace(s)))
	if !code.Valid() {
		return "", fmt.Errorf("unsupported currency code %q", s)
	}
	return code, nil
}

// ToUSD converts an amount from the given currency into USD.
//
// A nil or empty rates snapshot substitutes FallbackRates transparently. If a
// referenced currency is missing from a present snapshot the raw amount is
// returned unconverted with a warning; see Convert.
func ToUSD(logger *zap.Logger, amount float64, from Code, rates Rates) float64 {
	return Convert(logger, amount, from, USD, rates)
}

// Convert converts an amount between two supported currencies.
//
// When either rate is missing or zero in a present snapshot, the raw amount
// is returned unconverted. That passthrough is a deliberate
// availability-over-precision contract inherited from the product; it is
// logged but never an error.
func Convert(logger *zap.Logger, amount float64, from, to Code, rates Rates) float64 {
	if from == to {
		return amount
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	active := rates
	if len(active) == 0 {
		logger.Warn("no exchange-rate snapshot supplied, using fallback rates",
			zap.String("op", "currency.Convert"),
		)
		active = FallbackRates
	}

	fromRate, fromOK := active[from]
	toRate, toOK := active[to]
	if !fromOK || fromRate == 0 || !toOK || toRate == 0 {
		logger.Warn("missing exchange rate, returning unconverted amount",
			zap.String("op", "currency.Convert"),
			zap.String("from", string(from)),
			zap.String("to", string(to)),
		)
		return amount
	}

	amountUSD := amount / fromRate
	return amountUSD * toRate
}

// Rate returns the exchange rate from one currency to another, or 0 when
// either side is missing from the active snapshot.
func Rate(from, to Code, rates Rates) float64 {
	if from == to {
		return 1
	}

	active := rates
	if len(active) == 0 {
		active = FallbackRates
	}

	fromRate, fromOK := active[from]
	toRate, toOK := active[to]
	if !fromOK || fromRate == 0 || !toOK {
		return 0
	}
	return toRate / fromRate
}
