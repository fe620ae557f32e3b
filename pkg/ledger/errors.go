package ledger

import "errors"

var (
	// ErrInvalidAmount is returned when a deposit, withdrawal or transfer
	// amount is zero or negative.
	ErrInvalidAmount = errors.New("amount must be positive")

	// ErrInvalidInitialDeposit is returned when an account is created with a
	// negative initial deposit, or a SAVINGS account is created below its
	// minimum balance.
	ErrInvalidInitialDeposit = errors.New("invalid initial deposit")

	// ErrUnknownAccountType is returned for account types the ledger does
	// not manage.
	ErrUnknownAccountType = errors.New("unknown account type")

	// ErrAccountClosed is returned when a mutating operation targets a
	// CLOSED account.
	ErrAccountClosed = errors.New("account is closed")

	// ErrInsufficientFunds is returned when a withdrawal or transfer would
	// take the account below its minimum balance.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrSameAccount is returned when a transfer names the same account as
	// source and destination.
	ErrSameAccount = errors.New("source and destination accounts are the same")

	// ErrBalanceNotZero is returned when closing an account that still
	// carries a balance.
	ErrBalanceNotZero = errors.New("account balance must be zero to close")
)
