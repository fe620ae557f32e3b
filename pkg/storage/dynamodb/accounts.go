package dynamodb

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/chris/banking-ledger/pkg/models"
	"github.com/chris/banking-ledger/pkg/storage"
)

// CreateAccount stores a new account record.
func (s *Store) CreateAccount(ctx context.Context, account *models.Account) error {
	av, err := attributevalue.MarshalMap(toAccountRecord(account))
	if err != nil {
		return fmt.Errorf("failed to marshal account: %w", err)
	}

	input := &dynamodb.PutItemInput{
		TableName:           aws.String(s.AccountsTableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(id)"), // Prevent overwriting existing accounts.
	}

	_, err = s.Client.PutItem(ctx, input)
	if err != nil {
		var condCheckFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailed) {
			return storage.ErrDuplicateAccount
		}
		return fmt.Errorf("failed to create account in DynamoDB: %w", err)
	}

	return nil
}

// GetAccount retrieves an account by its ID.
func (s *Store) GetAccount(ctx context.Context, accountID string) (*models.Account, error) {
	key, err := attributevalue.MarshalMap(map[string]string{"id": accountID})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal account ID: %w", err)
	}

	input := &dynamodb.GetItemInput{
		TableName: aws.String(s.AccountsTableName),
		Key:       key,
	}

	result, err := s.Client.GetItem(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to get account from DynamoDB: %w", err)
	}

	if result.Item == nil {
		return nil, storage.ErrAccountNotFound
	}

	var record accountRecord
	if err := attributevalue.UnmarshalMap(result.Item, &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal account: %w", err)
	}

	return fromAccountRecord(&record)
}

// UpdateAccount replaces an existing account record wholesale.
func (s *Store) UpdateAccount(ctx context.Context, account *models.Account) error {
	av, err := attributevalue.MarshalMap(toAccountRecord(account))
	if err != nil {
		return fmt.Errorf("failed to marshal account: %w", err)
	}

	input := &dynamodb.PutItemInput{
		TableName:           aws.String(s.AccountsTableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(id)"), // Update, never upsert.
	}

	_, err = s.Client.PutItem(ctx, input)
	if err != nil {
		var condCheckFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailed) {
			return storage.ErrAccountNotFound
		}
		return fmt.Errorf("failed to update account in DynamoDB: %w", err)
	}

	return nil
}

// UpdateAccountPair replaces two account records in a single DynamoDB
// transaction. If either account is missing the whole write is cancelled and
// neither record changes.
func (s *Store) UpdateAccountPair(ctx context.Context, a, b *models.Account) error {
	avA, err := attributevalue.MarshalMap(toAccountRecord(a))
	if err != nil {
		return fmt.Errorf("failed to marshal account %s: %w", a.ID, err)
	}
	avB, err := attributevalue.MarshalMap(toAccountRecord(b))
	if err != nil {
		return fmt.Errorf("failed to marshal account %s: %w", b.ID, err)
	}

	input := &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Put: &types.Put{
					TableName:           aws.String(s.AccountsTableName),
					Item:                avA,
					ConditionExpression: aws.String("attribute_exists(id)"),
				},
			},
			{
				Put: &types.Put{
					TableName:           aws.String(s.AccountsTableName),
					Item:                avB,
					ConditionExpression: aws.String("attribute_exists(id)"),
				},
			},
		},
	}

	_, err = s.Client.TransactWriteItems(ctx, input)
	if err != nil {
		// Check for specific transaction cancellation reasons.
		var txc *types.TransactionCanceledException
		if errors.As(err, &txc) {
			for _, reason := range txc.CancellationReasons {
				if reason.Code != nil && *reason.Code == "ConditionalCheckFailed" {
					return storage.ErrAccountNotFound
				}
			}
		}
		return fmt.Errorf("failed to execute pair update transaction: %w", err)
	}

	return nil
}

// ListAccounts retrieves all accounts from DynamoDB.
func (s *Store) ListAccounts(ctx context.Context) ([]models.Account, error) {
	input := &dynamodb.ScanInput{
		TableName: aws.String(s.AccountsTableName),
	}

	result, err := s.Client.Scan(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to scan accounts table: %w", err)
	}

	var records []accountRecord
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &records); err != nil {
		return nil, fmt.Errorf("failed to unmarshal accounts: %w", err)
	}

	accounts := make([]models.Account, 0, len(records))
	for i := range records {
		account, err := fromAccountRecord(&records[i])
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, *account)
	}

	return accounts, nil
}
