// Package ledger implements the invariant-preserving engine over accounts
// and transactions: deposits, withdrawals, atomic transfers, interest
// accrual, limit enforcement and statement extraction.
package ledger

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/chris/banking-ledger/pkg/interest"
	"github.com/chris/banking-ledger/pkg/limits"
	"github.com/chris/banking-ledger/pkg/models"
	"github.com/chris/banking-ledger/pkg/notify"
	"github.com/chris/banking-ledger/pkg/storage"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Engine orchestrates the account store, limit tracker, interest calculator
// and transaction ledger. It holds no domain state of its own beyond the
// per-account lock map that serializes read-modify-write cycles.
type Engine struct {
	accounts    storage.AccountStore
	ledger      storage.TransactionLedger
	limits      *limits.Tracker
	calc        *interest.Calculator
	assignments *interest.Assignments
	notifier    notify.Notifier
	logger      *slog.Logger

	savingsMinimum decimal.Decimal
	now            func() time.Time

	lockMu sync.Mutex
	locks  map[string]*sync.Mutex // account ID -> its mutation lock
}

// NewEngine creates an Engine. The notifier may be nil, in which case no
// notifications are delivered.
func NewEngine(accounts storage.AccountStore, ledgerStore storage.TransactionLedger, tracker *limits.Tracker, calc *interest.Calculator, notifier notify.Notifier, logger *slog.Logger) *Engine {
	return &Engine{
		accounts:       accounts,
		ledger:         ledgerStore,
		limits:         tracker,
		calc:           calc,
		assignments:    interest.NewAssignments(),
		notifier:       notifier,
		logger:         logger,
		savingsMinimum: models.DefaultSavingsMinimum,
		now:            func() time.Time { return time.Now().UTC() },
		locks:          make(map[string]*sync.Mutex),
	}
}

// Make sure we conform to the interface
var _ Service = (*Engine)(nil)

// accountLock returns the mutation lock for one account, creating it on
// first use.
func (e *Engine) accountLock(accountID string) *sync.Mutex {
	e.lockMu.Lock()
	defer e.lockMu.Unlock()

	mu, ok := e.locks[accountID]
	if !ok {
		mu = &sync.Mutex{}
		e.locks[accountID] = mu
	}
	return mu
}

// lockPair acquires both accounts' locks in ascending ID order so that two
// opposite-direction transfers cannot deadlock. The returned func releases
// both.
func (e *Engine) lockPair(aID, bID string) func() {
	first, second := e.accountLock(aID), e.accountLock(bID)
	if aID > bID {
		first, second = second, first
	}
	first.Lock()
	second.Lock()
	return func() {
		second.Unlock()
		first.Unlock()
	}
}

// minimumBalance returns the balance floor for an account type.
func (e *Engine) minimumBalance(t models.AccountType) decimal.Decimal {
	if t == models.SAVINGS {
		return e.savingsMinimum
	}
	return decimal.Zero
}

// notifyTransaction delivers the completed transaction best-effort. A
// delivery failure is logged and never propagated: the ledger operation has
// already committed.
func (e *Engine) notifyTransaction(ctx context.Context, tx *models.Transaction) {
	if e.notifier == nil {
		return
	}
	if err := e.notifier.NotifyTransaction(ctx, tx); err != nil {
		e.logger.Error("CRITICAL: transaction recorded but notification failed",
			slog.String("transaction_id", tx.ID),
			slog.String("error", err.Error()),
		)
	}
}

// restoreAccount writes an account record back after a later step of the
// operation failed, so a failed operation leaves no balance change behind.
// A restore failure is logged; the original error still reaches the caller.
func (e *Engine) restoreAccount(ctx context.Context, account *models.Account) {
	if err := e.accounts.UpdateAccount(ctx, account); err != nil {
		e.logger.Error("CRITICAL: failed to restore balance after ledger append failure",
			slog.String("account_id", account.ID),
			slog.String("error", err.Error()),
		)
	}
}

// CreateAccount validates the initial deposit and stores a new ACTIVE
// account. SAVINGS accounts must open at or above their minimum balance.
func (e *Engine) CreateAccount(ctx context.Context, accountType models.AccountType, owner string, initialDeposit decimal.Decimal) (*models.Account, error) {
	switch accountType {
	case models.CHECKING, models.SAVINGS:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAccountType, accountType)
	}

	if initialDeposit.IsNegative() {
		return nil, fmt.Errorf("%w: deposit is negative", ErrInvalidInitialDeposit)
	}
	if accountType == models.SAVINGS && initialDeposit.LessThan(e.savingsMinimum) {
		return nil, fmt.Errorf("%w: savings accounts require a minimum deposit of %s", ErrInvalidInitialDeposit, e.savingsMinimum.String())
	}

	now := e.now()
	account := &models.Account{
		ID:               uuid.New().String(),
		Type:             accountType,
		Owner:            owner,
		Balance:          initialDeposit,
		Status:           models.ACTIVE,
		CreatedAt:        now,
		LastInterestDate: dateOnly(now),
	}

	if err := e.accounts.CreateAccount(ctx, account); err != nil {
		return nil, err
	}
	return account, nil
}

// GetAccount retrieves an account snapshot.
func (e *Engine) GetAccount(ctx context.Context, accountID string) (*models.Account, error) {
	return e.accounts.GetAccount(ctx, accountID)
}

// CloseAccount transitions an account to CLOSED. Accounts are never
// physically deleted. Closing requires a zero balance.
func (e *Engine) CloseAccount(ctx context.Context, accountID string) (*models.Account, error) {
	mu := e.accountLock(accountID)
	mu.Lock()
	defer mu.Unlock()

	account, err := e.accounts.GetAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if account.Status == models.CLOSED {
		return nil, ErrAccountClosed
	}
	if !account.Balance.IsZero() {
		return nil, ErrBalanceNotZero
	}

	account.Status = models.CLOSED
	if err := e.accounts.UpdateAccount(ctx, account); err != nil {
		return nil, err
	}
	return account, nil
}

// Deposit credits an amount to an account and records a DEPOSIT transaction.
func (e *Engine) Deposit(ctx context.Context, accountID string, amount decimal.Decimal) (*models.Transaction, error) {
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}

	mu := e.accountLock(accountID)
	mu.Lock()
	defer mu.Unlock()

	account, err := e.accounts.GetAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if account.Status == models.CLOSED {
		return nil, ErrAccountClosed
	}

	account.Balance = account.Balance.Add(amount)
	if err := e.accounts.UpdateAccount(ctx, account); err != nil {
		return nil, err
	}

	tx, err := e.ledger.AppendTransaction(ctx, &models.Transaction{
		Type:      models.DEPOSIT,
		Amount:    amount,
		AccountID: accountID,
	})
	if err != nil {
		account.Balance = account.Balance.Sub(amount)
		e.restoreAccount(ctx, account)
		return nil, err
	}

	e.notifyTransaction(ctx, tx)
	return tx, nil
}

// Withdraw debits an amount from an account, enforcing the minimum-balance
// floor and the daily/monthly limits, and records a WITHDRAWAL transaction.
// The limit reservation happens last, after every other check has passed, so
// a rejected withdrawal never consumes limit headroom.
func (e *Engine) Withdraw(ctx context.Context, accountID string, amount decimal.Decimal) (*models.Transaction, error) {
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}

	mu := e.accountLock(accountID)
	mu.Lock()
	defer mu.Unlock()

	account, err := e.accounts.GetAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if account.Status == models.CLOSED {
		return nil, ErrAccountClosed
	}

	available := account.Balance.Sub(e.minimumBalance(account.Type))
	if amount.GreaterThan(available) {
		return nil, fmt.Errorf("%w: available balance is %s", ErrInsufficientFunds, available.String())
	}

	today := e.now()
	if err := e.limits.CheckAndReserve(accountID, amount, today); err != nil {
		return nil, err
	}

	account.Balance = account.Balance.Sub(amount)
	if err := e.accounts.UpdateAccount(ctx, account); err != nil {
		e.limits.Release(accountID, amount, today)
		return nil, err
	}

	tx, err := e.ledger.AppendTransaction(ctx, &models.Transaction{
		Type:      models.WITHDRAWAL,
		Amount:    amount,
		AccountID: accountID,
	})
	if err != nil {
		e.limits.Release(accountID, amount, today)
		account.Balance = account.Balance.Add(amount)
		e.restoreAccount(ctx, account)
		return nil, err
	}

	e.notifyTransaction(ctx, tx)
	return tx, nil
}

// Transfer atomically moves an amount between two accounts. The withdrawal
// rules apply to the source and the deposit rules to the destination; both
// balance changes land via UpdateAccountPair so the source is never left
// debited with the credit missing. One TRANSFER transaction references both
// accounts.
func (e *Engine) Transfer(ctx context.Context, sourceID, destinationID string, amount decimal.Decimal) (*models.Transaction, error) {
	if sourceID == destinationID {
		return nil, ErrSameAccount
	}
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}

	unlock := e.lockPair(sourceID, destinationID)
	defer unlock()

	source, err := e.accounts.GetAccount(ctx, sourceID)
	if err != nil {
		return nil, fmt.Errorf("source account: %w", err)
	}
	destination, err := e.accounts.GetAccount(ctx, destinationID)
	if err != nil {
		return nil, fmt.Errorf("destination account: %w", err)
	}

	if source.Status == models.CLOSED {
		return nil, fmt.Errorf("source account: %w", ErrAccountClosed)
	}
	if destination.Status == models.CLOSED {
		return nil, fmt.Errorf("destination account: %w", ErrAccountClosed)
	}

	available := source.Balance.Sub(e.minimumBalance(source.Type))
	if amount.GreaterThan(available) {
		return nil, fmt.Errorf("%w: available balance is %s", ErrInsufficientFunds, available.String())
	}

	today := e.now()
	if err := e.limits.CheckAndReserve(sourceID, amount, today); err != nil {
		return nil, err
	}

	source.Balance = source.Balance.Sub(amount)
	destination.Balance = destination.Balance.Add(amount)

	if err := e.accounts.UpdateAccountPair(ctx, source, destination); err != nil {
		e.limits.Release(sourceID, amount, today)
		return nil, err
	}

	tx, err := e.ledger.AppendTransaction(ctx, &models.Transaction{
		Type:                 models.TRANSFER,
		Amount:               amount,
		AccountID:            sourceID,
		DestinationAccountID: destinationID,
	})
	if err != nil {
		e.limits.Release(sourceID, amount, today)
		source.Balance = source.Balance.Add(amount)
		destination.Balance = destination.Balance.Sub(amount)
		if restoreErr := e.accounts.UpdateAccountPair(ctx, source, destination); restoreErr != nil {
			e.logger.Error("CRITICAL: failed to restore balances after ledger append failure",
				slog.String("source_account_id", sourceID),
				slog.String("destination_account_id", destinationID),
				slog.String("error", restoreErr.Error()),
			)
		}
		return nil, err
	}

	e.notifyTransaction(ctx, tx)
	return tx, nil
}

// GetTransaction retrieves a single transaction record.
func (e *Engine) GetTransaction(ctx context.Context, transactionID string) (*models.Transaction, error) {
	return e.ledger.GetTransaction(ctx, transactionID)
}

// ListTransactions retrieves the transaction history of an account.
func (e *Engine) ListTransactions(ctx context.Context, accountID string) ([]models.Transaction, error) {
	if _, err := e.accounts.GetAccount(ctx, accountID); err != nil {
		return nil, err
	}
	return e.ledger.ListTransactionsByAccount(ctx, accountID)
}

// ConfigureLimits sets the daily/monthly caps for an account.
func (e *Engine) ConfigureLimits(ctx context.Context, accountID string, daily, monthly *decimal.Decimal) error {
	if _, err := e.accounts.GetAccount(ctx, accountID); err != nil {
		return err
	}
	e.limits.Configure(accountID, daily, monthly)
	return nil
}

// GetLimits returns the account's limit constraint, creating an
// unconstrained default on first access.
func (e *Engine) GetLimits(ctx context.Context, accountID string) (models.LimitConstraint, error) {
	if _, err := e.accounts.GetAccount(ctx, accountID); err != nil {
		return models.LimitConstraint{}, err
	}
	return e.limits.Get(accountID), nil
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
