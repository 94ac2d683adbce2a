// Package sqsqueue implements the notification publisher port over Amazon SQS.
package sqsqueue

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
)

// SQSAPI is the narrow slice of the SQS client the publisher needs.
// Kept minimal so tests can substitute a fake without the full SDK surface.
type SQSAPI interface {
	SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error)
}

// Publisher sends notification payloads to the customer-notification queue.
type Publisher struct {
	client   SQSAPI
	queueURL string
}

// NewPublisher returns a Publisher bound to a queue URL.
func NewPublisher(client SQSAPI, queueURL string) *Publisher {
	return &Publisher{
		client:   client,
		queueURL: queueURL,
	}
}

// Publish sends one payload. The payload is already serialized JSON; the
// publisher does not inspect it.
func (p *Publisher) Publish(ctx context.Context, payload []byte) error {
	_, err := p.client.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:    aws.String(p.queueURL),
		MessageBody: aws.String(string(payload)),
	})
	if err != nil {
		return fmt.Errorf("send message: %w", err)
	}
	return nil
}
