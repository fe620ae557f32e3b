package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountType defines the kinds of accounts the ledger manages.
type AccountType string

const (
	CHECKING AccountType = "CHECKING"
	SAVINGS  AccountType = "SAVINGS"
)

// AccountStatus defines the lifecycle states of an account.
type AccountStatus string

const (
	ACTIVE AccountStatus = "ACTIVE"
	CLOSED AccountStatus = "CLOSED"
)

// DefaultSavingsMinimum is the balance floor enforced for SAVINGS accounts
// at creation and on every withdrawal, unless overridden at wiring time.
var DefaultSavingsMinimum = decimal.NewFromInt(100)

// Account represents the internal domain model for a bank account.
// Balance is a decimal, never a float; monetary drift across repeated
// deposit/withdraw cycles is not acceptable in a ledger.
type Account struct {
	ID               string          `json:"id"`
	Type             AccountType     `json:"account_type"`
	Owner            string          `json:"owner"`
	Balance          decimal.Decimal `json:"balance"`
	Status           AccountStatus   `json:"status"`
	CreatedAt        time.Time       `json:"created_at"`
	LastInterestDate time.Time       `json:"last_interest_date"`
}

// TransactionType defines the possible kinds of ledger transactions.
type TransactionType string

const (
	DEPOSIT    TransactionType = "DEPOSIT"
	WITHDRAWAL TransactionType = "WITHDRAWAL"
	TRANSFER   TransactionType = "TRANSFER"
	INTEREST   TransactionType = "INTEREST"
)

// Transaction is an immutable, append-only ledger record. Amount is always
// positive; the signed effect is implied by Type. DestinationAccountID is
// set only for transfers.
type Transaction struct {
	ID                   string          `json:"id"`
	Type                 TransactionType `json:"transaction_type"`
	Amount               decimal.Decimal `json:"amount"`
	AccountID            string          `json:"account_id"`
	DestinationAccountID string          `json:"destination_account_id,omitempty"`
	Timestamp            time.Time       `json:"timestamp"`
}

// LimitConstraint tracks daily/monthly usage for one account. A nil limit
// means unconstrained in that bucket.
type LimitConstraint struct {
	DailyLimit     *decimal.Decimal `json:"daily_limit,omitempty"`
	MonthlyLimit   *decimal.Decimal `json:"monthly_limit,omitempty"`
	DailyUsed      decimal.Decimal  `json:"daily_used"`
	MonthlyUsed    decimal.Decimal  `json:"monthly_used"`
	LastRecordDate time.Time        `json:"last_record_date"`
}

// MonthlyStatement is the read model handed to statement renderers.
// OpeningBalance is reconstructed by reversing the month's transactions and
// is an approximation when transactions outside the window are unaccounted.
type MonthlyStatement struct {
	AccountID      string          `json:"account_id"`
	Year           int             `json:"year"`
	Month          time.Month      `json:"month"`
	OpeningBalance decimal.Decimal `json:"opening_balance"`
	ClosingBalance decimal.Decimal `json:"closing_balance"`
	InterestEarned decimal.Decimal `json:"interest_earned"`
	Transactions   []Transaction   `json:"transactions"`
	GeneratedOn    time.Time       `json:"generated_on"`
}
