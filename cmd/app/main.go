package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"github.com/chris/banking-ledger/pkg/handlers/accounts"
	interesthandler "github.com/chris/banking-ledger/pkg/handlers/interest"
	"github.com/chris/banking-ledger/pkg/handlers/statements"
	"github.com/chris/banking-ledger/pkg/handlers/transactions"
	"github.com/chris/banking-ledger/pkg/interest"
	"github.com/chris/banking-ledger/pkg/ledger"
	"github.com/chris/banking-ledger/pkg/limits"
	"github.com/chris/banking-ledger/pkg/middleware"
	"github.com/chris/banking-ledger/pkg/notify"
	"github.com/chris/banking-ledger/pkg/storage"
	dydbstore "github.com/chris/banking-ledger/pkg/storage/dynamodb"
	"github.com/chris/banking-ledger/pkg/storage/memory"
)

// defaultRates backs the interest calculator when no rates file is supplied.
var defaultRates = map[string]decimal.Decimal{
	"checking": decimal.RequireFromString("0.005"),
	"savings":  decimal.RequireFromString("0.02"),
}

func main() {
	// Load environment variables from .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// Storage backend: volatile in-memory by default, DynamoDB when configured.
	var store storage.Storage
	if os.Getenv("STORAGE_BACKEND") == "dynamodb" {
		cfg, err := awsconfig.LoadDefaultConfig(context.TODO())
		if err != nil {
			log.Fatalf("unable to load SDK config, %v", err)
		}

		accountsTable := os.Getenv("DYNAMODB_ACCOUNTS_TABLE_NAME")
		transactionsTable := os.Getenv("DYNAMODB_TRANSACTIONS_TABLE_NAME")
		if accountsTable == "" || transactionsTable == "" {
			log.Fatal("One or more DynamoDB table name environment variables are not set")
		}

		store = dydbstore.New(dynamodb.NewFromConfig(cfg), accountsTable, transactionsTable)
	} else {
		store = memory.New()
	}

	// Notification adapter: SQS when a queue is configured, otherwise log only.
	var notifier notify.Notifier
	if queueURL := os.Getenv("SQS_NOTIFICATIONS_QUEUE_URL"); queueURL != "" {
		cfg, err := awsconfig.LoadDefaultConfig(context.TODO())
		if err != nil {
			log.Fatalf("unable to load SDK config, %v", err)
		}
		notifier = notify.NewSQSNotifier(sqs.NewFromConfig(cfg), queueURL)
	} else {
		notifier = notify.NewLogNotifier(logger)
	}

	// Interest rates: JSON file when configured, built-in defaults otherwise.
	var calc *interest.Calculator
	if path := os.Getenv("INTEREST_RATES_PATH"); path != "" {
		calc, err = interest.NewCalculatorFromFile(path)
		if err != nil {
			log.Fatalf("failed to load interest rates: %v", err)
		}
	} else {
		calc = interest.NewCalculator(defaultRates)
	}

	tracker := limits.NewTracker()
	engine := ledger.NewEngine(store, store, tracker, calc, notifier, logger)

	router := newRouter(engine, tracker, logger)

	port := os.Getenv("HTTP_PORT")
	if port == "" {
		port = "8080" // Default port if not specified
	}

	log.Printf("Starting server on port %s", port)

	// Start the server
	err = http.ListenAndServe(":"+port, router)
	if err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// newRouter mounts the per-resource handlers on a chi router.
func newRouter(engine ledger.Service, tracker *limits.Tracker, logger *slog.Logger) chi.Router {
	accountsHandler := accounts.NewAccountsHandler(engine)
	transactionsHandler := transactions.NewTransactionsHandler(engine)
	interestHandler := interesthandler.NewInterestHandler(engine)
	statementsHandler := statements.NewStatementsHandler(engine)

	r := chi.NewRouter()
	r.Use(middleware.NewStructuredLogger(logger))

	r.Route("/accounts", func(r chi.Router) {
		r.Post("/", accountsHandler.CreateAccount)
		r.Route("/{accountID}", func(r chi.Router) {
			r.Get("/", func(w http.ResponseWriter, req *http.Request) {
				accountsHandler.GetAccountById(w, req, chi.URLParam(req, "accountID"))
			})
			r.Post("/close", func(w http.ResponseWriter, req *http.Request) {
				accountsHandler.CloseAccount(w, req, chi.URLParam(req, "accountID"))
			})
			r.Put("/limits", func(w http.ResponseWriter, req *http.Request) {
				accountsHandler.ConfigureLimits(w, req, chi.URLParam(req, "accountID"))
			})
			r.Get("/limits", func(w http.ResponseWriter, req *http.Request) {
				accountsHandler.GetLimits(w, req, chi.URLParam(req, "accountID"))
			})
			r.Put("/strategy", func(w http.ResponseWriter, req *http.Request) {
				accountsHandler.SetInterestStrategy(w, req, chi.URLParam(req, "accountID"))
			})
			r.Post("/deposit", func(w http.ResponseWriter, req *http.Request) {
				transactionsHandler.Deposit(w, req, chi.URLParam(req, "accountID"))
			})
			r.Post("/withdraw", func(w http.ResponseWriter, req *http.Request) {
				transactionsHandler.Withdraw(w, req, chi.URLParam(req, "accountID"))
			})
			r.Get("/transactions", func(w http.ResponseWriter, req *http.Request) {
				transactionsHandler.ListTransactionsByAccount(w, req, chi.URLParam(req, "accountID"))
			})
			r.Post("/interest", func(w http.ResponseWriter, req *http.Request) {
				interestHandler.ApplyInterest(w, req, chi.URLParam(req, "accountID"))
			})
			r.Get("/interest/preview", func(w http.ResponseWriter, req *http.Request) {
				interestHandler.PreviewInterest(w, req, chi.URLParam(req, "accountID"))
			})
			r.Get("/statements/{year}/{month}", func(w http.ResponseWriter, req *http.Request) {
				statementsHandler.GetStatement(w, req,
					chi.URLParam(req, "accountID"),
					chi.URLParam(req, "year"),
					chi.URLParam(req, "month"))
			})
		})
	})

	r.Post("/transfers", transactionsHandler.Transfer)
	r.Post("/interest/batch", interestHandler.ApplyInterestBatch)

	r.Get("/transactions/{transactionID}", func(w http.ResponseWriter, req *http.Request) {
		transactionsHandler.GetTransactionById(w, req, chi.URLParam(req, "transactionID"))
	})

	// Rollover endpoints for the scheduled limits reset job.
	r.Post("/admin/limits/reset/daily", func(w http.ResponseWriter, req *http.Request) {
		tracker.ResetDaily()
		w.WriteHeader(http.StatusNoContent)
	})
	r.Post("/admin/limits/reset/monthly", func(w http.ResponseWriter, req *http.Request) {
		tracker.ResetMonthly()
		w.WriteHeader(http.StatusNoContent)
	})

	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	return r
}
