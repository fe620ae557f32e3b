// Package mapping converts between domain models and API models.
package mapping

import (
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/chris/banking-ledger/pkg/api"
	"github.com/chris/banking-ledger/pkg/ledger"
	"github.com/chris/banking-ledger/pkg/models"
)

// ToApiAccount converts a domain Account model to an API Account model.
func ToApiAccount(account *models.Account) *api.Account {
	return &api.Account{
		Id:               account.ID,
		AccountType:      string(account.Type),
		Owner:            account.Owner,
		Balance:          account.Balance,
		Status:           string(account.Status),
		CreatedAt:        account.CreatedAt,
		LastInterestDate: openapi_types.Date{Time: account.LastInterestDate},
	}
}

// ToApiTransaction converts a domain Transaction model to an API Transaction model.
func ToApiTransaction(tx *models.Transaction) *api.Transaction {
	out := &api.Transaction{
		Id:              tx.ID,
		TransactionType: string(tx.Type),
		Amount:          tx.Amount,
		AccountId:       tx.AccountID,
		Timestamp:       tx.Timestamp,
	}
	if tx.DestinationAccountID != "" {
		dest := tx.DestinationAccountID
		out.DestinationAccountId = &dest
	}
	return out
}

// ToApiLimits converts a domain LimitConstraint to an API Limits model.
func ToApiLimits(c *models.LimitConstraint) *api.Limits {
	out := &api.Limits{
		DailyLimit:   c.DailyLimit,
		MonthlyLimit: c.MonthlyLimit,
		DailyUsed:    c.DailyUsed,
		MonthlyUsed:  c.MonthlyUsed,
	}
	if !c.LastRecordDate.IsZero() {
		d := openapi_types.Date{Time: c.LastRecordDate}
		out.LastRecordDate = &d
	}
	return out
}

// ToApiStatement converts a domain MonthlyStatement to an API Statement model.
func ToApiStatement(st *models.MonthlyStatement) *api.Statement {
	transactions := make([]api.Transaction, len(st.Transactions))
	for i := range st.Transactions {
		transactions[i] = *ToApiTransaction(&st.Transactions[i])
	}
	return &api.Statement{
		AccountId:      st.AccountID,
		Year:           st.Year,
		Month:          int(st.Month),
		OpeningBalance: st.OpeningBalance,
		ClosingBalance: st.ClosingBalance,
		InterestEarned: st.InterestEarned,
		Transactions:   transactions,
		GeneratedOn:    openapi_types.Date{Time: st.GeneratedOn},
	}
}

// ToApiBatchResults converts the engine's batch accrual outcomes to API models.
func ToApiBatchResults(results []ledger.BatchResult) []api.BatchInterestResult {
	out := make([]api.BatchInterestResult, len(results))
	for i, r := range results {
		out[i] = api.BatchInterestResult{
			AccountId: r.AccountID,
			Amount:    r.Amount,
		}
		if r.Err != nil {
			msg := r.Err.Error()
			out[i].Error = &msg
		}
	}
	return out
}
