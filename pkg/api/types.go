// Package api defines the wire-level request and response types exposed by
// the HTTP layer. Domain models never cross the transport boundary directly;
// the mapping package converts between the two.
package api

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/shopspring/decimal"
)

// NewAccount is the request body for creating an account.
type NewAccount struct {
	AccountType    string          `json:"account_type"`
	Owner          string          `json:"owner"`
	InitialDeposit decimal.Decimal `json:"initial_deposit"`
}

// Account is the API representation of an account.
type Account struct {
	Id               string             `json:"id"`
	AccountType      string             `json:"account_type"`
	Owner            string             `json:"owner"`
	Balance          decimal.Decimal    `json:"balance"`
	Status           string             `json:"status"`
	CreatedAt        time.Time          `json:"created_at"`
	LastInterestDate openapi_types.Date `json:"last_interest_date"`
}

// AmountRequest is the request body for deposits and withdrawals.
type AmountRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

// TransferRequest is the request body for transfers between two accounts.
type TransferRequest struct {
	SourceAccountId      string          `json:"source_account_id"`
	DestinationAccountId string          `json:"destination_account_id"`
	Amount               decimal.Decimal `json:"amount"`
}

// Transaction is the API representation of a ledger transaction.
type Transaction struct {
	Id                   string          `json:"id"`
	TransactionType      string          `json:"transaction_type"`
	Amount               decimal.Decimal `json:"amount"`
	AccountId            string          `json:"account_id"`
	DestinationAccountId *string         `json:"destination_account_id,omitempty"`
	Timestamp            time.Time       `json:"timestamp"`
}

// InterestRequest is the request body for applying interest to one account.
type InterestRequest struct {
	AsOf openapi_types.Date `json:"as_of"`
}

// InterestAmount reports an accrual (applied or previewed).
type InterestAmount struct {
	AccountId string             `json:"account_id"`
	Amount    decimal.Decimal    `json:"amount"`
	AsOf      openapi_types.Date `json:"as_of"`
}

// BatchInterestRequest is the request body for a batch accrual run.
type BatchInterestRequest struct {
	AccountIds []string           `json:"account_ids"`
	AsOf       openapi_types.Date `json:"as_of"`
}

// BatchInterestResult is the per-account outcome of a batch accrual run.
type BatchInterestResult struct {
	AccountId string          `json:"account_id"`
	Amount    decimal.Decimal `json:"amount"`
	Error     *string         `json:"error,omitempty"`
}

// StrategyRequest assigns an interest strategy to an account.
type StrategyRequest struct {
	Strategy string `json:"strategy"`
}

// LimitsRequest configures daily/monthly transaction limits. A null limit
// means unconstrained.
type LimitsRequest struct {
	DailyLimit   *decimal.Decimal `json:"daily_limit"`
	MonthlyLimit *decimal.Decimal `json:"monthly_limit"`
}

// Limits is the API representation of an account's limit constraint.
type Limits struct {
	DailyLimit     *decimal.Decimal `json:"daily_limit,omitempty"`
	MonthlyLimit   *decimal.Decimal `json:"monthly_limit,omitempty"`
	DailyUsed      decimal.Decimal  `json:"daily_used"`
	MonthlyUsed    decimal.Decimal  `json:"monthly_used"`
	LastRecordDate *openapi_types.Date `json:"last_record_date,omitempty"`
}

// Statement is the API representation of a monthly statement.
type Statement struct {
	AccountId      string          `json:"account_id"`
	Year           int             `json:"year"`
	Month          int             `json:"month"`
	OpeningBalance decimal.Decimal `json:"opening_balance"`
	ClosingBalance decimal.Decimal `json:"closing_balance"`
	InterestEarned decimal.Decimal `json:"interest_earned"`
	Transactions   []Transaction   `json:"transactions"`
	GeneratedOn    openapi_types.Date `json:"generated_on"`
}
