package ledger

import (
	"context"
	"time"

	"github.com/chris/banking-ledger/pkg/models"
	"github.com/shopspring/decimal"
)

// BatchResult is the per-account outcome of a batch interest run. One
// account's failure never aborts the others.
type BatchResult struct {
	AccountID string
	Amount    decimal.Decimal
	Err       error
}

// Service defines the full set of ledger operations exposed to the
// presentation layer. Every mutating operation is atomic: fully applied with
// exactly one transaction recorded, or fully rejected with no side effects.
type Service interface {
	CreateAccount(ctx context.Context, accountType models.AccountType, owner string, initialDeposit decimal.Decimal) (*models.Account, error)
	GetAccount(ctx context.Context, accountID string) (*models.Account, error)
	CloseAccount(ctx context.Context, accountID string) (*models.Account, error)

	Deposit(ctx context.Context, accountID string, amount decimal.Decimal) (*models.Transaction, error)
	Withdraw(ctx context.Context, accountID string, amount decimal.Decimal) (*models.Transaction, error)
	Transfer(ctx context.Context, sourceID, destinationID string, amount decimal.Decimal) (*models.Transaction, error)

	ApplyInterest(ctx context.Context, accountID string, asOf time.Time) (decimal.Decimal, error)
	ApplyInterestBatch(ctx context.Context, accountIDs []string, asOf time.Time) []BatchResult
	PreviewInterest(ctx context.Context, accountID string, asOf time.Time) (decimal.Decimal, error)
	SetInterestStrategy(ctx context.Context, accountID, strategyKey string) error

	ConfigureLimits(ctx context.Context, accountID string, daily, monthly *decimal.Decimal) error
	GetLimits(ctx context.Context, accountID string) (models.LimitConstraint, error)

	GetTransaction(ctx context.Context, transactionID string) (*models.Transaction, error)
	ListTransactions(ctx context.Context, accountID string) ([]models.Transaction, error)

	ExtractStatementData(ctx context.Context, accountID string, year int, month time.Month, asOf time.Time) (*models.MonthlyStatement, error)
}
