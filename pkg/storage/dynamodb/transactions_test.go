package dynamodb

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/chris/banking-ledger/pkg/models"
	"github.com/chris/banking-ledger/pkg/storage"
	"github.com/chris/banking-ledger/pkg/storage/dynamodb/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func testTransaction(id string, ts time.Time) *models.Transaction {
	return &models.Transaction{
		ID:        id,
		Type:      models.DEPOSIT,
		Amount:    decimal.RequireFromString("42.50"),
		AccountID: "acc-1",
		Timestamp: ts,
	}
}

func TestAppendTransaction(t *testing.T) {
	t.Run("Assigns ID And Timestamp", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("PutItem", mock.Anything, mock.Anything).Return(&dynamodb.PutItemOutput{}, nil)

		store := New(mockClient, "accounts", "transactions")
		tx, err := store.AppendTransaction(context.Background(), &models.Transaction{
			Type:      models.DEPOSIT,
			Amount:    decimal.RequireFromString("10"),
			AccountID: "acc-1",
		})

		assert.NoError(t, err)
		assert.NotEmpty(t, tx.ID)
		assert.False(t, tx.Timestamp.IsZero())
		mockClient.AssertExpectations(t)
	})

	t.Run("Keeps Explicit ID", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("PutItem", mock.Anything, mock.Anything).Return(&dynamodb.PutItemOutput{}, nil)

		ts := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
		store := New(mockClient, "accounts", "transactions")
		tx, err := store.AppendTransaction(context.Background(), testTransaction("tx-1", ts))

		assert.NoError(t, err)
		assert.Equal(t, "tx-1", tx.ID)
		assert.Equal(t, ts, tx.Timestamp)
		mockClient.AssertExpectations(t)
	})

	t.Run("Storage Error", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("PutItem", mock.Anything, mock.Anything).Return(nil, errors.New("throttled"))

		store := New(mockClient, "accounts", "transactions")
		_, err := store.AppendTransaction(context.Background(), testTransaction("tx-1", time.Now().UTC()))

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to append transaction to DynamoDB")
		mockClient.AssertExpectations(t)
	})
}

func TestGetTransaction(t *testing.T) {
	ts := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	tx := testTransaction("tx-1", ts)

	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		av, _ := attributevalue.MarshalMap(toTransactionRecord(tx))
		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{Item: av}, nil)

		store := New(mockClient, "accounts", "transactions")
		got, err := store.GetTransaction(context.Background(), "tx-1")

		assert.NoError(t, err)
		assert.Equal(t, tx.ID, got.ID)
		assert.Equal(t, models.DEPOSIT, got.Type)
		assert.True(t, got.Amount.Equal(tx.Amount))
		mockClient.AssertExpectations(t)
	})

	t.Run("Not Found", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{Item: nil}, nil)

		store := New(mockClient, "accounts", "transactions")
		_, err := store.GetTransaction(context.Background(), "tx-1")

		assert.ErrorIs(t, err, storage.ErrTransactionNotFound)
		mockClient.AssertExpectations(t)
	})
}

func TestListTransactionsByAccount(t *testing.T) {
	t.Run("Merges Both Indexes In Timestamp Order", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)

		later := testTransaction("tx-2", time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC))
		earlier := &models.Transaction{
			ID:                   "tx-1",
			Type:                 models.TRANSFER,
			Amount:               decimal.RequireFromString("5"),
			AccountID:            "acc-other",
			DestinationAccountID: "acc-1",
			Timestamp:            time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC),
		}

		sourcedAV, _ := attributevalue.MarshalMap(toTransactionRecord(later))
		incomingAV, _ := attributevalue.MarshalMap(toTransactionRecord(earlier))

		// First query hits the account index, second the destination index.
		mockClient.On("Query", mock.Anything, mock.Anything).Return(&dynamodb.QueryOutput{
			Items: []map[string]types.AttributeValue{sourcedAV},
		}, nil).Once()
		mockClient.On("Query", mock.Anything, mock.Anything).Return(&dynamodb.QueryOutput{
			Items: []map[string]types.AttributeValue{incomingAV},
		}, nil).Once()

		store := New(mockClient, "accounts", "transactions")
		txs, err := store.ListTransactionsByAccount(context.Background(), "acc-1")

		assert.NoError(t, err)
		assert.Len(t, txs, 2)
		assert.Equal(t, "tx-1", txs[0].ID)
		assert.Equal(t, "tx-2", txs[1].ID)
		mockClient.AssertExpectations(t)
	})

	t.Run("Query Error", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("Query", mock.Anything, mock.Anything).Return(nil, errors.New("index missing"))

		store := New(mockClient, "accounts", "transactions")
		_, err := store.ListTransactionsByAccount(context.Background(), "acc-1")

		assert.Error(t, err)
		mockClient.AssertExpectations(t)
	})
}
