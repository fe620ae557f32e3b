package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/joho/godotenv"
)

var baseURL string
var client *http.Client

func init() {
	// Load environment variables for local testing.
	godotenv.Load()

	baseURL = os.Getenv("LEDGER_BASE_URL")
	if baseURL == "" {
		log.Fatal("LEDGER_BASE_URL environment variable not set")
	}

	client = &http.Client{Timeout: 30 * time.Second}
}

// HandleRequest is triggered by a daily EventBridge Schedule. It tells the
// ledger service to roll over spending limit windows: daily counters every
// run, monthly counters on the first of the month.
func HandleRequest(ctx context.Context) error {
	log.Println("Starting limit window rollover...")

	if err := reset(ctx, "daily"); err != nil {
		log.Printf("ERROR: failed to reset daily limits: %v", err)
		return err
	}

	if time.Now().UTC().Day() == 1 {
		if err := reset(ctx, "monthly"); err != nil {
			log.Printf("ERROR: failed to reset monthly limits: %v", err)
			return err
		}
	}

	log.Println("Limit window rollover finished.")
	return nil
}

func reset(ctx context.Context, window string) error {
	url := fmt.Sprintf("%s/admin/limits/reset/%s", baseURL, window)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, nil)
	if err != nil {
		return err
	}

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNoContent {
		return fmt.Errorf("unexpected status %d from %s", resp.StatusCode, url)
	}

	log.Printf("Reset %s limit windows", window)
	return nil
}

func main() {
	lambda.Start(HandleRequest)
}
