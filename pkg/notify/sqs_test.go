package notify_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/chris/banking-ledger/pkg/models"
	"github.com/chris/banking-ledger/pkg/notify"
	"github.com/chris/banking-ledger/pkg/notify/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestSQSNotifier(t *testing.T) {
	tx := &models.Transaction{
		ID:        "tx-1",
		Type:      models.DEPOSIT,
		Amount:    decimal.RequireFromString("100"),
		AccountID: "acc-1",
		Timestamp: time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC),
	}

	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.SQSAPI)
		mockClient.On("SendMessage", mock.Anything, mock.MatchedBy(func(input *sqs.SendMessageInput) bool {
			return *input.QueueUrl == "https://queue.example/notifications" &&
				*input.MessageBody != ""
		})).Return(&sqs.SendMessageOutput{}, nil)

		notifier := notify.NewSQSNotifier(mockClient, "https://queue.example/notifications")
		err := notifier.NotifyTransaction(context.Background(), tx)

		assert.NoError(t, err)
		mockClient.AssertExpectations(t)
	})

	t.Run("Send Failure", func(t *testing.T) {
		mockClient := new(mocks.SQSAPI)
		mockClient.On("SendMessage", mock.Anything, mock.Anything).Return(nil, errors.New("queue unavailable"))

		notifier := notify.NewSQSNotifier(mockClient, "https://queue.example/notifications")
		err := notifier.NotifyTransaction(context.Background(), tx)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to send message to SQS")
		mockClient.AssertExpectations(t)
	})
}
