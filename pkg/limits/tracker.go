// Package limits enforces per-account daily and monthly transaction limits
// with time-bucketed usage counters.
package limits

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/chris/banking-ledger/pkg/models"
	"github.com/shopspring/decimal"
)

// ErrLimitExceeded is returned when an operation would push a usage bucket
// over its configured cap.
var ErrLimitExceeded = errors.New("transaction limit exceeded")

// Tracker owns the usage counters for every account. Check-and-record is a
// single critical section, so two concurrent operations can never both pass
// the check before either records its usage.
type Tracker struct {
	mu          sync.Mutex
	constraints map[string]*models.LimitConstraint
}

// NewTracker creates an empty Tracker.
func NewTracker() *Tracker {
	return &Tracker{constraints: make(map[string]*models.LimitConstraint)}
}

// constraint returns the live record for an account, creating an
// unconstrained one on first access. Caller must hold t.mu.
func (t *Tracker) constraint(accountID string) *models.LimitConstraint {
	c, ok := t.constraints[accountID]
	if !ok {
		c = &models.LimitConstraint{
			DailyUsed:   decimal.Zero,
			MonthlyUsed: decimal.Zero,
		}
		t.constraints[accountID] = c
	}
	return c
}

// rollover resets the usage buckets when the date moved past the last
// recorded one. A new day always clears the daily bucket; the monthly bucket
// clears only when the month (or year) changed.
func rollover(c *models.LimitConstraint, today time.Time) {
	if sameDay(c.LastRecordDate, today) {
		return
	}
	if c.LastRecordDate.IsZero() || !sameMonth(c.LastRecordDate, today) {
		c.MonthlyUsed = decimal.Zero
	}
	c.DailyUsed = decimal.Zero
	c.LastRecordDate = dateOnly(today)
}

// CheckAndReserve verifies that amount fits within the account's remaining
// daily and monthly headroom for today and, if so, records the usage. On
// failure no usage is recorded.
func (t *Tracker) CheckAndReserve(accountID string, amount decimal.Decimal, today time.Time) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	c := t.constraint(accountID)
	rollover(c, today)

	if c.DailyLimit != nil && c.DailyUsed.Add(amount).GreaterThan(*c.DailyLimit) {
		return fmt.Errorf("daily limit of %s exceeded: %w", c.DailyLimit.String(), ErrLimitExceeded)
	}
	if c.MonthlyLimit != nil && c.MonthlyUsed.Add(amount).GreaterThan(*c.MonthlyLimit) {
		return fmt.Errorf("monthly limit of %s exceeded: %w", c.MonthlyLimit.String(), ErrLimitExceeded)
	}

	c.DailyUsed = c.DailyUsed.Add(amount)
	c.MonthlyUsed = c.MonthlyUsed.Add(amount)
	c.LastRecordDate = dateOnly(today)
	return nil
}

// Release returns headroom reserved by CheckAndReserve after the operation
// it was reserved for failed to commit. Usage never drops below zero.
func (t *Tracker) Release(accountID string, amount decimal.Decimal, today time.Time) {
	t.mu.Lock()
	defer t.mu.Unlock()

	c := t.constraint(accountID)
	rollover(c, today)

	c.DailyUsed = c.DailyUsed.Sub(amount)
	if c.DailyUsed.IsNegative() {
		c.DailyUsed = decimal.Zero
	}
	c.MonthlyUsed = c.MonthlyUsed.Sub(amount)
	if c.MonthlyUsed.IsNegative() {
		c.MonthlyUsed = decimal.Zero
	}
}

// Configure sets or replaces the caps for an account. Usage counters carry
// over; a nil cap means unconstrained in that bucket.
func (t *Tracker) Configure(accountID string, daily, monthly *decimal.Decimal) {
	t.mu.Lock()
	defer t.mu.Unlock()

	c := t.constraint(accountID)
	c.DailyLimit = copyDecimal(daily)
	c.MonthlyLimit = copyDecimal(monthly)
}

// Get returns a snapshot of the account's constraint, implicitly creating a
// default record on first access.
func (t *Tracker) Get(accountID string) models.LimitConstraint {
	t.mu.Lock()
	defer t.mu.Unlock()

	c := t.constraint(accountID)
	cp := *c
	cp.DailyLimit = copyDecimal(c.DailyLimit)
	cp.MonthlyLimit = copyDecimal(c.MonthlyLimit)
	return cp
}

// ResetDaily clears the daily bucket for every account. Intended to be
// triggered by an external scheduler at midnight.
func (t *Tracker) ResetDaily() {
	t.mu.Lock()
	defer t.mu.Unlock()

	for _, c := range t.constraints {
		c.DailyUsed = decimal.Zero
	}
}

// ResetMonthly clears the monthly bucket for every account. Intended to be
// triggered by an external scheduler at the month boundary.
func (t *Tracker) ResetMonthly() {
	t.mu.Lock()
	defer t.mu.Unlock()

	for _, c := range t.constraints {
		c.MonthlyUsed = decimal.Zero
	}
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func sameMonth(a, b time.Time) bool {
	ay, am, _ := a.Date()
	by, bm, _ := b.Date()
	return ay == by && am == bm
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func copyDecimal(d *decimal.Decimal) *decimal.Decimal {
	if d == nil {
		return nil
	}
	cp := *d
	return &cp
}
