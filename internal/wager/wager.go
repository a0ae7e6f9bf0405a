// Package wager resolves bet expressions against a wallet balance.
package wager

import (
	"math"
	"strconv"
	"strings"

	"github.com/fortunabot/fortuna/internal/models"
	"github.com/fortunabot/fortuna/internal/rng"
)

// WagerError is a custom error type for bet validation failures
type WagerError string

// Error implements the error interface
func (e WagerError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrInvalidExpression WagerError = "invalid bet expression"
	ErrNonPositive       WagerError = "bet must be greater than zero"
	ErrInsufficientFunds WagerError = "bet exceeds wallet balance"
	ErrTooManyBands      WagerError = "at most two bands may be wagered"
	ErrRelativeBandClash WagerError = "relative bets cannot cover both bronze and silver"
	ErrRelativeOverspend WagerError = "relative bets cannot exceed the whole balance"
)

// fractions maps the relative keywords to their share of the balance.
var fractions = map[string]float64{
	"quarter": 0.25,
	"half":    0.5,
	"all":     1.0,
}

// parseLiteral parses a decimal bet. ParseFloat accepts "nan" and "inf",
// which would slip through the range checks below, so non-finite values are
// rejected here.
func parseLiteral(expr string) (float64, error) {
	parsed, err := strconv.ParseFloat(expr, 64)
	if err != nil || math.IsNaN(parsed) || math.IsInf(parsed, 0) {
		return 0, ErrInvalidExpression
	}
	return rng.Round2(parsed), nil
}

// Resolve turns a bet expression into a concrete amount. The expression is
// either a relative keyword (quarter, half, all) applied to the balance, or a
// positive decimal literal. The result is rounded to cents and must fit in the
// balance.
func Resolve(expr string, balance float64) (float64, error) {
	expr = strings.ToLower(strings.TrimSpace(expr))

	var amount float64
	if frac, ok := fractions[expr]; ok {
		amount = rng.Round2(balance * frac)
	} else {
		parsed, err := parseLiteral(expr)
		if err != nil {
			return 0, err
		}
		amount = parsed
	}

	if amount <= 0 {
		return 0, ErrNonPositive
	}
	if amount > balance {
		return 0, ErrInsufficientFunds
	}

	return amount, nil
}

// ResolveSplit resolves a set of per-band bet expressions for a slider stake.
// Rules: at most two distinct bands; relative keywords may appear on at most
// two bands but never on both bronze and silver; the relative fractions sum to
// at most 1.0; the resolved total is positive and within the balance. Returns
// the per-band amounts and their total.
func ResolveSplit(bets map[models.Band]string, balance float64) (map[models.Band]float64, float64, error) {
	if len(bets) == 0 {
		return nil, 0, ErrNonPositive
	}
	if len(bets) > 2 {
		return nil, 0, ErrTooManyBands
	}

	var fracSum float64
	relative := make(map[models.Band]bool, len(bets))
	for band, expr := range bets {
		if frac, ok := fractions[strings.ToLower(strings.TrimSpace(expr))]; ok {
			relative[band] = true
			fracSum += frac
		}
	}
	if relative[models.BandBronze] && relative[models.BandSilver] {
		return nil, 0, ErrRelativeBandClash
	}
	if fracSum > 1.0 {
		return nil, 0, ErrRelativeOverspend
	}

	amounts := make(map[models.Band]float64, len(bets))
	var total float64
	for band, expr := range bets {
		expr = strings.ToLower(strings.TrimSpace(expr))

		var amount float64
		if frac, ok := fractions[expr]; ok {
			amount = rng.Round2(balance * frac)
		} else {
			parsed, err := parseLiteral(expr)
			if err != nil {
				return nil, 0, err
			}
			amount = parsed
		}
		if amount <= 0 {
			return nil, 0, ErrNonPositive
		}

		amounts[band] = amount
		total += amount
	}

	total = rng.Round2(total)
	if total <= 0 {
		return nil, 0, ErrNonPositive
	}
	if total > balance {
		return nil, 0, ErrInsufficientFunds
	}

	return amounts, total, nil
}
