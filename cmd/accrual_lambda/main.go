package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"github.com/chris/banking-ledger/pkg/interest"
	"github.com/chris/banking-ledger/pkg/ledger"
	"github.com/chris/banking-ledger/pkg/limits"
	"github.com/chris/banking-ledger/pkg/models"
	"github.com/chris/banking-ledger/pkg/notify"
	"github.com/chris/banking-ledger/pkg/storage"
	dydbstore "github.com/chris/banking-ledger/pkg/storage/dynamodb"
)

var store storage.Storage
var engine ledger.Service

var defaultRates = map[string]decimal.Decimal{
	"checking": decimal.RequireFromString("0.005"),
	"savings":  decimal.RequireFromString("0.02"),
}

func init() {
	// Load environment variables for local testing.
	godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// Initialize dependencies once.
	cfg, err := config.LoadDefaultConfig(context.TODO())
	if err != nil {
		log.Fatalf("unable to load SDK config, %v", err)
	}

	dbClient := dynamodb.NewFromConfig(cfg)
	accountsTable := os.Getenv("DYNAMODB_ACCOUNTS_TABLE_NAME")
	transactionsTable := os.Getenv("DYNAMODB_TRANSACTIONS_TABLE_NAME")

	if accountsTable == "" || transactionsTable == "" {
		log.Fatal("One or more DynamoDB table name environment variables are not set")
	}

	store = dydbstore.New(dbClient, accountsTable, transactionsTable)

	var notifier notify.Notifier = notify.NewLogNotifier(logger)
	if queueURL := os.Getenv("SQS_NOTIFICATIONS_QUEUE_URL"); queueURL != "" {
		notifier = notify.NewSQSNotifier(sqs.NewFromConfig(cfg), queueURL)
	}

	calc := interest.NewCalculator(defaultRates)
	if path := os.Getenv("INTEREST_RATES_PATH"); path != "" {
		calc, err = interest.NewCalculatorFromFile(path)
		if err != nil {
			log.Fatalf("failed to load interest rates: %v", err)
		}
	}

	engine = ledger.NewEngine(store, store, limits.NewTracker(), calc, notifier, logger)
}

// HandleRequest is triggered by an EventBridge Schedule. It accrues interest
// on every open account; each account succeeds or fails independently.
func HandleRequest(ctx context.Context) error {
	log.Println("Starting interest accrual run...")

	accounts, err := store.ListAccounts(ctx)
	if err != nil {
		log.Printf("ERROR: failed to list accounts: %v", err)
		return err
	}

	ids := make([]string, 0, len(accounts))
	for _, account := range accounts {
		if account.Status != models.ACTIVE {
			continue
		}
		ids = append(ids, account.ID)
	}

	results := engine.ApplyInterestBatch(ctx, ids, time.Now().UTC())

	var failed int
	for _, result := range results {
		if result.Err != nil {
			failed++
			log.Printf("ERROR: failed to accrue interest on account %s: %v", result.AccountID, result.Err)
			// Continue to the next account, don't let one failure stop the whole batch.
			continue
		}
		log.Printf("Accrued %s on account %s", result.Amount.String(), result.AccountID)
	}

	log.Printf("Interest accrual run finished: %d accounts, %d failures", len(results), failed)
	return nil
}

func main() {
	lambda.Start(HandleRequest)
}
