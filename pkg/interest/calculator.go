// Package interest computes interest accruals from per-strategy annual rates.
// Calculation is pure; persisting the resulting balance and watermark is the
// ledger engine's job.
package interest

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/chris/banking-ledger/pkg/models"
	"github.com/shopspring/decimal"
)

// ErrUnknownStrategy is returned when no annual rate is configured for a
// strategy key.
var ErrUnknownStrategy = errors.New("unknown interest strategy")

// ErrInvalidDate is returned when the as-of date precedes the account's
// last interest date.
var ErrInvalidDate = errors.New("as-of date precedes last interest date")

// Strategy identifies an interest strategy and its annual rate.
type Strategy struct {
	Key        string
	AnnualRate decimal.Decimal
}

// Calculator resolves strategy keys to rates and computes accruals.
type Calculator struct {
	rates map[string]decimal.Decimal
}

// NewCalculator creates a Calculator from a strategy-key -> annual-rate table.
func NewCalculator(rates map[string]decimal.Decimal) *Calculator {
	return &Calculator{rates: rates}
}

// NewCalculatorFromFile loads the rate table from a JSON file of the form
// {"checking": 0.005, "savings": 0.02}.
func NewCalculatorFromFile(path string) (*Calculator, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read interest rates file: %w", err)
	}

	var rates map[string]decimal.Decimal
	if err := json.Unmarshal(data, &rates); err != nil {
		return nil, fmt.Errorf("failed to parse interest rates file: %w", err)
	}
	return &Calculator{rates: rates}, nil
}

// StrategyFor resolves a strategy key against the configured rate table.
func (c *Calculator) StrategyFor(key string) (Strategy, error) {
	rate, ok := c.rates[key]
	if !ok {
		return Strategy{}, fmt.Errorf("%w: %q", ErrUnknownStrategy, key)
	}
	return Strategy{Key: key, AnnualRate: rate}, nil
}

// DefaultStrategyKey maps an account type to its default strategy key.
func DefaultStrategyKey(t models.AccountType) string {
	if t == models.SAVINGS {
		return "savings"
	}
	return "checking"
}

var two = decimal.NewFromInt(2)
var daysPerYear = decimal.NewFromInt(365)

// effectiveRate applies the checking asymmetry: checking accounts earn half
// the configured annual rate. This mirrors the bank's actual product rule,
// not a bug.
func effectiveRate(s Strategy) decimal.Decimal {
	if s.Key == "checking" {
		return s.AnnualRate.Div(two)
	}
	return s.AnnualRate
}

// Calculate computes the interest accrued on an account between its last
// interest date and asOf. It never mutates the account.
func (c *Calculator) Calculate(account *models.Account, strategy Strategy, asOf time.Time) (decimal.Decimal, error) {
	days := elapsedDays(account.LastInterestDate, asOf)
	if days < 0 {
		return decimal.Zero, ErrInvalidDate
	}

	interest := account.Balance.
		Mul(effectiveRate(strategy)).
		Mul(decimal.NewFromInt(int64(days))).
		Div(daysPerYear)
	return interest, nil
}

// Apply computes the accrual, adds it to the account's balance and advances
// the watermark to asOf. The caller must persist the account in the same
// logical operation, otherwise a retry would double-apply.
func (c *Calculator) Apply(account *models.Account, strategy Strategy, asOf time.Time) (decimal.Decimal, error) {
	amount, err := c.Calculate(account, strategy, asOf)
	if err != nil {
		return decimal.Zero, err
	}

	account.Balance = account.Balance.Add(amount)
	account.LastInterestDate = dateOnly(asOf)
	return amount, nil
}

// elapsedDays counts whole calendar days between two dates, ignoring the
// time-of-day component.
func elapsedDays(from, to time.Time) int {
	return int(dateOnly(to).Sub(dateOnly(from)).Hours() / 24)
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
