package interest_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/chris/banking-ledger/pkg/api"
	interesthandler "github.com/chris/banking-ledger/pkg/handlers/interest"
	"github.com/chris/banking-ledger/pkg/interest"
	"github.com/chris/banking-ledger/pkg/ledger"
	"github.com/chris/banking-ledger/pkg/ledger/mocks"
	"github.com/chris/banking-ledger/pkg/storage"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestApplyInterest(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := new(mocks.Service)
		mockService.On("ApplyInterest", mock.Anything, "acc-1", mock.AnythingOfType("time.Time")).Return(decimal.RequireFromString("3"), nil)

		h := interesthandler.NewInterestHandler(mockService)

		body := []byte(`{"as_of":"2026-03-01"}`)
		req := httptest.NewRequest(http.MethodPost, "/accounts/acc-1/interest", bytes.NewReader(body))
		rr := httptest.NewRecorder()

		h.ApplyInterest(rr, req, "acc-1")

		assert.Equal(t, http.StatusOK, rr.Code)

		var got api.InterestAmount
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&got))
		assert.Equal(t, "acc-1", got.AccountId)
		assert.True(t, got.Amount.Equal(decimal.RequireFromString("3")))
		mockService.AssertExpectations(t)
	})

	t.Run("AsOf Before Watermark", func(t *testing.T) {
		mockService := new(mocks.Service)
		mockService.On("ApplyInterest", mock.Anything, "acc-1", mock.AnythingOfType("time.Time")).Return(decimal.Zero, interest.ErrInvalidDate)

		h := interesthandler.NewInterestHandler(mockService)

		body := []byte(`{"as_of":"2020-01-01"}`)
		req := httptest.NewRequest(http.MethodPost, "/accounts/acc-1/interest", bytes.NewReader(body))
		rr := httptest.NewRecorder()

		h.ApplyInterest(rr, req, "acc-1")

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("Closed Account", func(t *testing.T) {
		mockService := new(mocks.Service)
		mockService.On("ApplyInterest", mock.Anything, "acc-1", mock.AnythingOfType("time.Time")).Return(decimal.Zero, ledger.ErrAccountClosed)

		h := interesthandler.NewInterestHandler(mockService)

		body := []byte(`{"as_of":"2026-03-01"}`)
		req := httptest.NewRequest(http.MethodPost, "/accounts/acc-1/interest", bytes.NewReader(body))
		rr := httptest.NewRecorder()

		h.ApplyInterest(rr, req, "acc-1")

		assert.Equal(t, http.StatusConflict, rr.Code)
		mockService.AssertExpectations(t)
	})
}

func TestPreviewInterest(t *testing.T) {
	t.Run("Success With Explicit Date", func(t *testing.T) {
		mockService := new(mocks.Service)
		mockService.On("PreviewInterest", mock.Anything, "acc-1", mock.AnythingOfType("time.Time")).Return(decimal.RequireFromString("20"), nil)

		h := interesthandler.NewInterestHandler(mockService)

		req := httptest.NewRequest(http.MethodGet, "/accounts/acc-1/interest/preview?as_of=2026-03-01", nil)
		rr := httptest.NewRecorder()

		h.PreviewInterest(rr, req, "acc-1")

		assert.Equal(t, http.StatusOK, rr.Code)

		var got api.InterestAmount
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&got))
		assert.True(t, got.Amount.Equal(decimal.RequireFromString("20")))
		mockService.AssertExpectations(t)
	})

	t.Run("Defaults To Today", func(t *testing.T) {
		mockService := new(mocks.Service)
		mockService.On("PreviewInterest", mock.Anything, "acc-1", mock.AnythingOfType("time.Time")).Return(decimal.Zero, nil)

		h := interesthandler.NewInterestHandler(mockService)

		req := httptest.NewRequest(http.MethodGet, "/accounts/acc-1/interest/preview", nil)
		rr := httptest.NewRecorder()

		h.PreviewInterest(rr, req, "acc-1")

		assert.Equal(t, http.StatusOK, rr.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("Malformed Date", func(t *testing.T) {
		mockService := new(mocks.Service)
		h := interesthandler.NewInterestHandler(mockService)

		req := httptest.NewRequest(http.MethodGet, "/accounts/acc-1/interest/preview?as_of=March+1st", nil)
		rr := httptest.NewRecorder()

		h.PreviewInterest(rr, req, "acc-1")

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Account Not Found", func(t *testing.T) {
		mockService := new(mocks.Service)
		mockService.On("PreviewInterest", mock.Anything, "missing", mock.AnythingOfType("time.Time")).Return(decimal.Zero, storage.ErrAccountNotFound)

		h := interesthandler.NewInterestHandler(mockService)

		req := httptest.NewRequest(http.MethodGet, "/accounts/missing/interest/preview", nil)
		rr := httptest.NewRecorder()

		h.PreviewInterest(rr, req, "missing")

		assert.Equal(t, http.StatusNotFound, rr.Code)
		mockService.AssertExpectations(t)
	})
}

func TestApplyInterestBatch(t *testing.T) {
	t.Run("Reports Per-Account Outcomes", func(t *testing.T) {
		results := []ledger.BatchResult{
			{AccountID: "acc-1", Amount: decimal.RequireFromString("20")},
			{AccountID: "missing", Amount: decimal.Zero, Err: storage.ErrAccountNotFound},
		}

		mockService := new(mocks.Service)
		mockService.On("ApplyInterestBatch", mock.Anything, []string{"acc-1", "missing"}, mock.AnythingOfType("time.Time")).Return(results)

		h := interesthandler.NewInterestHandler(mockService)

		body := []byte(`{"account_ids":["acc-1","missing"],"as_of":"2026-03-01"}`)
		req := httptest.NewRequest(http.MethodPost, "/interest/batch", bytes.NewReader(body))
		rr := httptest.NewRecorder()

		h.ApplyInterestBatch(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var got []api.BatchInterestResult
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&got))
		assert.Len(t, got, 2)
		assert.Nil(t, got[0].Error)
		assert.NotNil(t, got[1].Error)
		mockService.AssertExpectations(t)
	})

	t.Run("Invalid Body", func(t *testing.T) {
		mockService := new(mocks.Service)
		h := interesthandler.NewInterestHandler(mockService)

		req := httptest.NewRequest(http.MethodPost, "/interest/batch", bytes.NewReader([]byte("[")))
		rr := httptest.NewRecorder()

		h.ApplyInterestBatch(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}
