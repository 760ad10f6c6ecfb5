// gosqs ingests SNS envelopes delivered to an SQS queue subscribed to
// the same SES event topic. The queue subscription is the trust
// boundary on this path, so the transport-header validation used on
// the HTTP path does not apply; envelopes enter the pipeline after
// decoding.
package gosqs

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"

	"github.com/ggarcia209/go-ses-webhooks/gohook"
	"github.com/ggarcia209/go-ses-webhooks/goses"
	"github.com/ggarcia209/go-ses-webhooks/gosns"
)

const (
	maxReceiveBatch   = 10
	receiveErrorPause = time.Second
)

// SQSClientAPI defines the interface for the AWS SQS client methods used by this package.
//
//go:generate mockgen -destination=./sqs_client_api_test.go -package=gosqs . SQSClientAPI
type SQSClientAPI interface {
	ReceiveMessage(ctx context.Context, params *sqs.ReceiveMessageInput, optFns ...func(*sqs.Options)) (*sqs.ReceiveMessageOutput, error)
	DeleteMessage(ctx context.Context, params *sqs.DeleteMessageInput, optFns ...func(*sqs.Options)) (*sqs.DeleteMessageOutput, error)
}

// EnvelopeProcessor is the pipeline entry point the poller feeds.
type EnvelopeProcessor interface {
	ProcessEnvelope(ctx context.Context, env *gosns.Envelope) ([]goses.TrackingEvent, error)
}

// Poller long-polls a queue and feeds each message body through the
// pipeline. Successfully processed messages are deleted; transient
// failures are left for redrive; permanently malformed bodies are
// deleted so they cannot poison the queue.
type Poller struct {
	svc       SQSClientAPI
	processor EnvelopeProcessor
	queueURL  string
	waitTime  int32
	logger    *slog.Logger
}

func NewPoller(cfg aws.Config, queueURL string, waitSeconds int, processor EnvelopeProcessor, logger *slog.Logger) *Poller {
	return &Poller{
		svc:       sqs.NewFromConfig(cfg),
		processor: processor,
		queueURL:  queueURL,
		waitTime:  int32(waitSeconds),
		logger:    logger,
	}
}

// Run polls until ctx is canceled.
func (p *Poller) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		out, err := p.svc.ReceiveMessage(ctx, &sqs.ReceiveMessageInput{
			QueueUrl:            aws.String(p.queueURL),
			MaxNumberOfMessages: maxReceiveBatch,
			WaitTimeSeconds:     p.waitTime,
		})
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			p.logger.Error("receive messages", "queue", p.queueURL, "error", err)
			time.Sleep(receiveErrorPause)
			continue
		}

		for _, msg := range out.Messages {
			p.handle(ctx, msg)
		}
	}
}

func (p *Poller) handle(ctx context.Context, msg types.Message) {
	env, err := gosns.DecodeEnvelope([]byte(aws.ToString(msg.Body)), "")
	if err != nil {
		p.logger.Error("malformed envelope from queue", "message_id", aws.ToString(msg.MessageId), "error", err)
		p.delete(ctx, msg)
		return
	}

	evs, err := p.processor.ProcessEnvelope(ctx, env)
	if err != nil {
		var werr gohook.WebhookError
		if errors.As(err, &werr) && (werr.ValidationFailure() || werr.Malformed()) {
			// Bad payload, not a transient fault: redriving would
			// fail the same way forever. Internal failures (sink,
			// AWS) stay on the queue instead.
			p.logger.Error("rejected envelope from queue", "message_id", env.MessageID, "error", err)
			p.delete(ctx, msg)
			return
		}
		p.logger.Error("process envelope", "message_id", env.MessageID, "error", err)
		return // left on the queue for redrive
	}

	p.logger.Info("processed envelope from queue", "message_id", env.MessageID, "events", len(evs))
	p.delete(ctx, msg)
}

func (p *Poller) delete(ctx context.Context, msg types.Message) {
	_, err := p.svc.DeleteMessage(ctx, &sqs.DeleteMessageInput{
		QueueUrl:      aws.String(p.queueURL),
		ReceiptHandle: msg.ReceiptHandle,
	})
	if err != nil {
		p.logger.Error("delete message", "message_id", aws.ToString(msg.MessageId), "error", err)
	}
}
