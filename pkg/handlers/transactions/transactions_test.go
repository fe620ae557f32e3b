package transactions_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/chris/banking-ledger/pkg/api"
	"github.com/chris/banking-ledger/pkg/handlers/transactions"
	"github.com/chris/banking-ledger/pkg/ledger"
	"github.com/chris/banking-ledger/pkg/ledger/mocks"
	"github.com/chris/banking-ledger/pkg/limits"
	"github.com/chris/banking-ledger/pkg/models"
	"github.com/chris/banking-ledger/pkg/storage"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func testTransaction(txType models.TransactionType) *models.Transaction {
	return &models.Transaction{
		ID:        "tx-1",
		Type:      txType,
		Amount:    decimal.RequireFromString("100"),
		AccountID: "acc-1",
		Timestamp: time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestDeposit(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := new(mocks.Service)
		mockService.On("Deposit", mock.Anything, "acc-1", mock.Anything).Return(testTransaction(models.DEPOSIT), nil)

		h := transactions.NewTransactionsHandler(mockService)

		body, _ := json.Marshal(api.AmountRequest{Amount: decimal.RequireFromString("100")})
		req := httptest.NewRequest(http.MethodPost, "/accounts/acc-1/deposit", bytes.NewReader(body))
		rr := httptest.NewRecorder()

		h.Deposit(rr, req, "acc-1")

		assert.Equal(t, http.StatusCreated, rr.Code)

		var got api.Transaction
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&got))
		assert.Equal(t, "DEPOSIT", got.TransactionType)
		assert.Nil(t, got.DestinationAccountId)
		mockService.AssertExpectations(t)
	})

	t.Run("Closed Account", func(t *testing.T) {
		mockService := new(mocks.Service)
		mockService.On("Deposit", mock.Anything, "acc-1", mock.Anything).Return(nil, ledger.ErrAccountClosed)

		h := transactions.NewTransactionsHandler(mockService)

		body, _ := json.Marshal(api.AmountRequest{Amount: decimal.RequireFromString("100")})
		req := httptest.NewRequest(http.MethodPost, "/accounts/acc-1/deposit", bytes.NewReader(body))
		rr := httptest.NewRecorder()

		h.Deposit(rr, req, "acc-1")

		assert.Equal(t, http.StatusConflict, rr.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("Invalid Body", func(t *testing.T) {
		mockService := new(mocks.Service)
		h := transactions.NewTransactionsHandler(mockService)

		req := httptest.NewRequest(http.MethodPost, "/accounts/acc-1/deposit", bytes.NewReader([]byte("{")))
		rr := httptest.NewRecorder()

		h.Deposit(rr, req, "acc-1")

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestWithdraw(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := new(mocks.Service)
		mockService.On("Withdraw", mock.Anything, "acc-1", mock.Anything).Return(testTransaction(models.WITHDRAWAL), nil)

		h := transactions.NewTransactionsHandler(mockService)

		body, _ := json.Marshal(api.AmountRequest{Amount: decimal.RequireFromString("100")})
		req := httptest.NewRequest(http.MethodPost, "/accounts/acc-1/withdraw", bytes.NewReader(body))
		rr := httptest.NewRecorder()

		h.Withdraw(rr, req, "acc-1")

		assert.Equal(t, http.StatusCreated, rr.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("Insufficient Funds", func(t *testing.T) {
		mockService := new(mocks.Service)
		mockService.On("Withdraw", mock.Anything, "acc-1", mock.Anything).Return(nil, ledger.ErrInsufficientFunds)

		h := transactions.NewTransactionsHandler(mockService)

		body, _ := json.Marshal(api.AmountRequest{Amount: decimal.RequireFromString("1000000")})
		req := httptest.NewRequest(http.MethodPost, "/accounts/acc-1/withdraw", bytes.NewReader(body))
		rr := httptest.NewRecorder()

		h.Withdraw(rr, req, "acc-1")

		assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("Limit Exceeded", func(t *testing.T) {
		mockService := new(mocks.Service)
		mockService.On("Withdraw", mock.Anything, "acc-1", mock.Anything).Return(nil, limits.ErrLimitExceeded)

		h := transactions.NewTransactionsHandler(mockService)

		body, _ := json.Marshal(api.AmountRequest{Amount: decimal.RequireFromString("500")})
		req := httptest.NewRequest(http.MethodPost, "/accounts/acc-1/withdraw", bytes.NewReader(body))
		rr := httptest.NewRecorder()

		h.Withdraw(rr, req, "acc-1")

		assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
		mockService.AssertExpectations(t)
	})
}

func TestTransfer(t *testing.T) {
	transferBody := api.TransferRequest{
		SourceAccountId:      "acc-1",
		DestinationAccountId: "acc-2",
		Amount:               decimal.RequireFromString("100"),
	}

	t.Run("Success", func(t *testing.T) {
		tx := testTransaction(models.TRANSFER)
		tx.DestinationAccountID = "acc-2"

		mockService := new(mocks.Service)
		mockService.On("Transfer", mock.Anything, "acc-1", "acc-2", mock.Anything).Return(tx, nil)

		h := transactions.NewTransactionsHandler(mockService)

		body, _ := json.Marshal(transferBody)
		req := httptest.NewRequest(http.MethodPost, "/transfers", bytes.NewReader(body))
		rr := httptest.NewRecorder()

		h.Transfer(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)

		var got api.Transaction
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&got))
		assert.Equal(t, "TRANSFER", got.TransactionType)
		assert.NotNil(t, got.DestinationAccountId)
		assert.Equal(t, "acc-2", *got.DestinationAccountId)
		mockService.AssertExpectations(t)
	})

	t.Run("Same Account", func(t *testing.T) {
		mockService := new(mocks.Service)
		mockService.On("Transfer", mock.Anything, "acc-1", "acc-1", mock.Anything).Return(nil, ledger.ErrSameAccount)

		h := transactions.NewTransactionsHandler(mockService)

		body, _ := json.Marshal(api.TransferRequest{SourceAccountId: "acc-1", DestinationAccountId: "acc-1", Amount: decimal.RequireFromString("10")})
		req := httptest.NewRequest(http.MethodPost, "/transfers", bytes.NewReader(body))
		rr := httptest.NewRecorder()

		h.Transfer(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockService.AssertExpectations(t)
	})
}

func TestGetTransactionById(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := new(mocks.Service)
		mockService.On("GetTransaction", mock.Anything, "tx-1").Return(testTransaction(models.DEPOSIT), nil)

		h := transactions.NewTransactionsHandler(mockService)

		req := httptest.NewRequest(http.MethodGet, "/transactions/tx-1", nil)
		rr := httptest.NewRecorder()

		h.GetTransactionById(rr, req, "tx-1")

		assert.Equal(t, http.StatusOK, rr.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("Not Found", func(t *testing.T) {
		mockService := new(mocks.Service)
		mockService.On("GetTransaction", mock.Anything, "missing").Return(nil, storage.ErrTransactionNotFound)

		h := transactions.NewTransactionsHandler(mockService)

		req := httptest.NewRequest(http.MethodGet, "/transactions/missing", nil)
		rr := httptest.NewRecorder()

		h.GetTransactionById(rr, req, "missing")

		assert.Equal(t, http.StatusNotFound, rr.Code)
		mockService.AssertExpectations(t)
	})
}

func TestListTransactionsByAccount(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		history := []models.Transaction{*testTransaction(models.DEPOSIT), *testTransaction(models.WITHDRAWAL)}

		mockService := new(mocks.Service)
		mockService.On("ListTransactions", mock.Anything, "acc-1").Return(history, nil)

		h := transactions.NewTransactionsHandler(mockService)

		req := httptest.NewRequest(http.MethodGet, "/accounts/acc-1/transactions", nil)
		rr := httptest.NewRecorder()

		h.ListTransactionsByAccount(rr, req, "acc-1")

		assert.Equal(t, http.StatusOK, rr.Code)

		var got []api.Transaction
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&got))
		assert.Len(t, got, 2)
		mockService.AssertExpectations(t)
	})

	t.Run("Account Not Found", func(t *testing.T) {
		mockService := new(mocks.Service)
		mockService.On("ListTransactions", mock.Anything, "missing").Return(nil, storage.ErrAccountNotFound)

		h := transactions.NewTransactionsHandler(mockService)

		req := httptest.NewRequest(http.MethodGet, "/accounts/missing/transactions", nil)
		rr := httptest.NewRecorder()

		h.ListTransactionsByAccount(rr, req, "missing")

		assert.Equal(t, http.StatusNotFound, rr.Code)
		mockService.AssertExpectations(t)
	})
}
