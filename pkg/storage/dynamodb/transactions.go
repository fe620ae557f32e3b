package dynamodb

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/chris/banking-ledger/pkg/models"
	"github.com/chris/banking-ledger/pkg/storage"
	"github.com/google/uuid"
)

const (
	accountIndex     = "account_id-timestamp-index"
	destinationIndex = "destination_account_id-timestamp-index"
)

// AppendTransaction stores a new transaction record. The id condition makes
// the log effectively append-only: an existing record can never be replaced.
func (s *Store) AppendTransaction(ctx context.Context, tx *models.Transaction) (*models.Transaction, error) {
	cp := *tx
	if cp.ID == "" {
		cp.ID = uuid.New().String()
	}
	if cp.Timestamp.IsZero() {
		cp.Timestamp = time.Now().UTC()
	}

	av, err := attributevalue.MarshalMap(toTransactionRecord(&cp))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal transaction: %w", err)
	}

	input := &dynamodb.PutItemInput{
		TableName:           aws.String(s.TransactionsTableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(id)"),
	}

	if _, err := s.Client.PutItem(ctx, input); err != nil {
		return nil, fmt.Errorf("failed to append transaction to DynamoDB: %w", err)
	}

	return &cp, nil
}

// GetTransaction retrieves a transaction from DynamoDB by its ID.
func (s *Store) GetTransaction(ctx context.Context, transactionID string) (*models.Transaction, error) {
	key, err := attributevalue.MarshalMap(map[string]string{"id": transactionID})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal transaction ID: %w", err)
	}

	input := &dynamodb.GetItemInput{
		TableName: aws.String(s.TransactionsTableName),
		Key:       key,
	}

	result, err := s.Client.GetItem(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction from DynamoDB: %w", err)
	}

	if result.Item == nil {
		return nil, storage.ErrTransactionNotFound
	}

	var record transactionRecord
	if err := attributevalue.UnmarshalMap(result.Item, &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal transaction: %w", err)
	}

	return fromTransactionRecord(&record)
}

// ListTransactionsByAccount queries the account GSI and the transfer
// destination GSI, merges both result sets and orders them by timestamp so
// incoming transfers appear in the account's history.
func (s *Store) ListTransactionsByAccount(ctx context.Context, accountID string) ([]models.Transaction, error) {
	sourced, err := s.queryIndex(ctx, accountIndex, "account_id", accountID)
	if err != nil {
		return nil, err
	}
	incoming, err := s.queryIndex(ctx, destinationIndex, "destination_account_id", accountID)
	if err != nil {
		return nil, err
	}

	merged := append(sourced, incoming...)

	transactions := make([]models.Transaction, 0, len(merged))
	for i := range merged {
		tx, err := fromTransactionRecord(&merged[i])
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, *tx)
	}

	sort.SliceStable(transactions, func(i, j int) bool {
		return transactions[i].Timestamp.Before(transactions[j].Timestamp)
	})

	return transactions, nil
}

func (s *Store) queryIndex(ctx context.Context, index, keyAttr, accountID string) ([]transactionRecord, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(s.TransactionsTableName),
		IndexName:              aws.String(index),
		KeyConditionExpression: aws.String("#k = :account_id"),
		ExpressionAttributeNames: map[string]string{
			"#k": keyAttr,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":account_id": &types.AttributeValueMemberS{Value: accountID},
		},
	}

	result, err := s.Client.Query(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", index, err)
	}

	var records []transactionRecord
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &records); err != nil {
		return nil, fmt.Errorf("failed to unmarshal transactions: %w", err)
	}

	return records, nil
}
