// Package queue provides the inbound SQS consumer worker loops.
//
// Each consumer long-polls one queue and routes message bodies to a handler.
// Deletion is explicit and happens only after the handler succeeds: a failed
// or malformed message stays in the queue and the broker redelivers it after
// the visibility timeout (poison messages are expected to be drained by the
// queue's redrive policy).
package queue

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
)

const (
	maxMessagesPerPoll = 10
	waitTimeSeconds    = 20
	receiveErrorPause  = time.Second
)

// SQSAPI is the narrow slice of the SQS client the consumers need.
type SQSAPI interface {
	ReceiveMessage(ctx context.Context, params *sqs.ReceiveMessageInput, optFns ...func(*sqs.Options)) (*sqs.ReceiveMessageOutput, error)
	DeleteMessage(ctx context.Context, params *sqs.DeleteMessageInput, optFns ...func(*sqs.Options)) (*sqs.DeleteMessageOutput, error)
}

// HandlerFunc processes one raw message body.
type HandlerFunc func(ctx context.Context, body string) error

// Consumer long-polls an SQS queue and dispatches message bodies to a
// handler function.
type Consumer struct {
	client   SQSAPI
	queueURL string
	handle   HandlerFunc
	logger   *slog.Logger

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewConsumer creates a consumer for one queue. The name scopes the
// consumer's log entries.
func NewConsumer(client SQSAPI, queueURL, name string, handle HandlerFunc, logger *slog.Logger) *Consumer {
	return &Consumer{
		client:   client,
		queueURL: queueURL,
		handle:   handle,
		logger:   logger.With("component", name),
	}
}

// Start launches the polling loop in a background goroutine. The loop stops
// when Stop is called or the parent context is cancelled.
func (c *Consumer) Start(ctx context.Context) {
	loopCtx, cancel := context.WithCancel(ctx)
	c.cancel = cancel

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		c.logger.InfoContext(loopCtx, "consumer started", "queue_url", c.queueURL)
		for {
			if loopCtx.Err() != nil {
				return
			}
			c.poll(loopCtx)
		}
	}()
}

// Stop cancels the polling loop and waits for in-flight handling to finish.
func (c *Consumer) Stop() {
	if c.cancel != nil {
		c.cancel()
	}
	c.wg.Wait()
	c.logger.Info("consumer stopped", "queue_url", c.queueURL)
}

// poll runs one receive cycle: long-poll, handle each message, delete only
// the ones handled successfully.
func (c *Consumer) poll(ctx context.Context) {
	output, err := c.client.ReceiveMessage(ctx, &sqs.ReceiveMessageInput{
		QueueUrl:            aws.String(c.queueURL),
		MaxNumberOfMessages: maxMessagesPerPoll,
		WaitTimeSeconds:     waitTimeSeconds,
	})
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		c.logger.ErrorContext(ctx, "receive failed", "error", err)
		// do not hammer a broken broker
		select {
		case <-ctx.Done():
		case <-time.After(receiveErrorPause):
		}
		return
	}

	for _, message := range output.Messages {
		body := aws.ToString(message.Body)
		if err = c.handle(ctx, body); err != nil {
			c.logger.ErrorContext(ctx, "message handling failed, leaving for redelivery",
				"error", err,
			)
			continue
		}

		_, err = c.client.DeleteMessage(ctx, &sqs.DeleteMessageInput{
			QueueUrl:      aws.String(c.queueURL),
			ReceiptHandle: message.ReceiptHandle,
		})
		if err != nil {
			c.logger.ErrorContext(ctx, "delete failed, message will be redelivered", "error", err)
		}
	}
}
