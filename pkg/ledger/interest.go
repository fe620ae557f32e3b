package ledger

import (
	"context"
	"time"

	"github.com/chris/banking-ledger/pkg/interest"
	"github.com/chris/banking-ledger/pkg/models"
	"github.com/shopspring/decimal"
)

// resolveStrategy returns the account's assigned strategy, falling back to
// the default for its type. When persist is true the fallback assignment is
// recorded so subsequent accruals use the same strategy.
func (e *Engine) resolveStrategy(account *models.Account, persist bool) (interest.Strategy, error) {
	key, ok := e.assignments.Lookup(account.ID)
	if !ok {
		key = interest.DefaultStrategyKey(account.Type)
		if persist {
			e.assignments.Assign(account.ID, key)
		}
	}
	return e.calc.StrategyFor(key)
}

// ApplyInterest accrues interest on an account up to asOf, persists the new
// balance together with the advanced watermark, and records an INTEREST
// transaction for audit.
func (e *Engine) ApplyInterest(ctx context.Context, accountID string, asOf time.Time) (decimal.Decimal, error) {
	mu := e.accountLock(accountID)
	mu.Lock()
	defer mu.Unlock()

	account, err := e.accounts.GetAccount(ctx, accountID)
	if err != nil {
		return decimal.Zero, err
	}
	if account.Status == models.CLOSED {
		return decimal.Zero, ErrAccountClosed
	}

	strategy, err := e.resolveStrategy(account, true)
	if err != nil {
		return decimal.Zero, err
	}

	before := *account
	amount, err := e.calc.Apply(account, strategy, asOf)
	if err != nil {
		return decimal.Zero, err
	}

	// Balance and watermark land in one update; a gap between them would
	// double-apply interest on retry.
	if err := e.accounts.UpdateAccount(ctx, account); err != nil {
		return decimal.Zero, err
	}

	// A zero accrual (retry at the same as-of date, or a zero balance) only
	// advances the watermark; transaction amounts are strictly positive.
	if amount.IsZero() {
		return amount, nil
	}

	tx, err := e.ledger.AppendTransaction(ctx, &models.Transaction{
		Type:      models.INTEREST,
		Amount:    amount,
		AccountID: accountID,
	})
	if err != nil {
		e.restoreAccount(ctx, &before)
		return decimal.Zero, err
	}

	e.notifyTransaction(ctx, tx)
	return amount, nil
}

// ApplyInterestBatch accrues interest on each account independently. A
// failing account is reported in its BatchResult and never aborts the rest.
func (e *Engine) ApplyInterestBatch(ctx context.Context, accountIDs []string, asOf time.Time) []BatchResult {
	results := make([]BatchResult, 0, len(accountIDs))
	for _, id := range accountIDs {
		amount, err := e.ApplyInterest(ctx, id, asOf)
		results = append(results, BatchResult{AccountID: id, Amount: amount, Err: err})
	}
	return results
}

// PreviewInterest computes the accrual an account would receive as of the
// given date without mutating anything: no balance change, no watermark
// advance, no strategy assignment persisted.
func (e *Engine) PreviewInterest(ctx context.Context, accountID string, asOf time.Time) (decimal.Decimal, error) {
	account, err := e.accounts.GetAccount(ctx, accountID)
	if err != nil {
		return decimal.Zero, err
	}

	strategy, err := e.resolveStrategy(account, false)
	if err != nil {
		return decimal.Zero, err
	}
	return e.calc.Calculate(account, strategy, asOf)
}

// SetInterestStrategy assigns a strategy to an account. The key must exist
// in the configured rate table.
func (e *Engine) SetInterestStrategy(ctx context.Context, accountID, strategyKey string) error {
	if _, err := e.accounts.GetAccount(ctx, accountID); err != nil {
		return err
	}
	if _, err := e.calc.StrategyFor(strategyKey); err != nil {
		return err
	}
	e.assignments.Assign(accountID, strategyKey)
	return nil
}
