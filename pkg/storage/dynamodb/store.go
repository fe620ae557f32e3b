// Package dynamodb implements the storage interfaces on AWS DynamoDB.
// The all-or-nothing pair update contract maps onto TransactWriteItems.
package dynamodb

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/chris/banking-ledger/pkg/models"
	"github.com/chris/banking-ledger/pkg/storage"
	"github.com/shopspring/decimal"
)

// DynamoDBAPI defines the subset of the DynamoDB client used by the store.
type DynamoDBAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	TransactWriteItems(ctx context.Context, params *dynamodb.TransactWriteItemsInput, optFns ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error)
}

// Store implements the Storage interface using AWS DynamoDB.
type Store struct {
	Client                DynamoDBAPI
	AccountsTableName     string
	TransactionsTableName string
}

// New creates a new Store.
func New(client DynamoDBAPI, accountsTable, transactionsTable string) *Store {
	return &Store{
		Client:                client,
		AccountsTableName:     accountsTable,
		TransactionsTableName: transactionsTable,
	}
}

// Make sure we conform to the interface
var _ storage.Storage = (*Store)(nil)

// accountRecord is the DynamoDB shape of an account. Monetary amounts travel
// as decimal strings; attributevalue cannot marshal decimal.Decimal.
type accountRecord struct {
	ID               string    `dynamodbav:"id"`
	Type             string    `dynamodbav:"account_type"`
	Owner            string    `dynamodbav:"owner"`
	Balance          string    `dynamodbav:"balance"`
	Status           string    `dynamodbav:"status"`
	CreatedAt        time.Time `dynamodbav:"created_at"`
	LastInterestDate time.Time `dynamodbav:"last_interest_date"`
}

// transactionRecord is the DynamoDB shape of a ledger transaction.
type transactionRecord struct {
	ID                   string    `dynamodbav:"id"`
	Type                 string    `dynamodbav:"transaction_type"`
	Amount               string    `dynamodbav:"amount"`
	AccountID            string    `dynamodbav:"account_id"`
	DestinationAccountID string    `dynamodbav:"destination_account_id,omitempty"`
	Timestamp            time.Time `dynamodbav:"timestamp"`
}

func toAccountRecord(a *models.Account) accountRecord {
	return accountRecord{
		ID:               a.ID,
		Type:             string(a.Type),
		Owner:            a.Owner,
		Balance:          a.Balance.String(),
		Status:           string(a.Status),
		CreatedAt:        a.CreatedAt,
		LastInterestDate: a.LastInterestDate,
	}
}

func fromAccountRecord(r *accountRecord) (*models.Account, error) {
	balance, err := decimal.NewFromString(r.Balance)
	if err != nil {
		return nil, fmt.Errorf("failed to parse balance %q: %w", r.Balance, err)
	}
	return &models.Account{
		ID:               r.ID,
		Type:             models.AccountType(r.Type),
		Owner:            r.Owner,
		Balance:          balance,
		Status:           models.AccountStatus(r.Status),
		CreatedAt:        r.CreatedAt,
		LastInterestDate: r.LastInterestDate,
	}, nil
}

func toTransactionRecord(tx *models.Transaction) transactionRecord {
	return transactionRecord{
		ID:                   tx.ID,
		Type:                 string(tx.Type),
		Amount:               tx.Amount.String(),
		AccountID:            tx.AccountID,
		DestinationAccountID: tx.DestinationAccountID,
		Timestamp:            tx.Timestamp,
	}
}

func fromTransactionRecord(r *transactionRecord) (*models.Transaction, error) {
	amount, err := decimal.NewFromString(r.Amount)
	if err != nil {
		return nil, fmt.Errorf("failed to parse amount %q: %w", r.Amount, err)
	}
	return &models.Transaction{
		ID:                   r.ID,
		Type:                 models.TransactionType(r.Type),
		Amount:               amount,
		AccountID:            r.AccountID,
		DestinationAccountID: r.DestinationAccountID,
		Timestamp:            r.Timestamp,
	}, nil
}
