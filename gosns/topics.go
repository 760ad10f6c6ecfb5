package gosns

import (
	"context"
	"fmt"
	"net/url"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"

	"github.com/ggarcia209/go-ses-webhooks/gohook"
)

// TopicsLogic defines the operator-side operations for wiring a
// webhook endpoint to an SES event topic.
//
//go:generate mockgen -destination=../mocks/gosnsmock/topics.go -package=gosnsmock . TopicsLogic
type TopicsLogic interface {
	CreateTopic(ctx context.Context, name string) (string, error)
	SubscribeEndpoint(ctx context.Context, topicArn, endpoint string) (string, error)
	ConfirmSubscription(ctx context.Context, topicArn, token string) (string, error)
}

// SNSClientAPI defines the interface for the AWS SNS client methods used by this package.
//
//go:generate mockgen -destination=./sns_client_api_test.go -package=gosns . SNSClientAPI
type SNSClientAPI interface {
	CreateTopic(ctx context.Context, params *sns.CreateTopicInput, optFns ...func(*sns.Options)) (*sns.CreateTopicOutput, error)
	Subscribe(ctx context.Context, params *sns.SubscribeInput, optFns ...func(*sns.Options)) (*sns.SubscribeOutput, error)
	ConfirmSubscription(ctx context.Context, params *sns.ConfirmSubscriptionInput, optFns ...func(*sns.Options)) (*sns.ConfirmSubscriptionOutput, error)
}

// Topics wires webhook endpoints to SNS topics: create the topic,
// subscribe the HTTPS endpoint, and (when the automatic handshake was
// rejected) redeem a manual confirmation token.
type Topics struct {
	svc SNSClientAPI
}

func NewTopics(cfg aws.Config) *Topics {
	return &Topics{
		svc: sns.NewFromConfig(cfg),
	}
}

// CreateTopic creates a new SNS topic and returns its ARN.
func (t *Topics) CreateTopic(ctx context.Context, name string) (string, error) {
	result, err := t.svc.CreateTopic(ctx, &sns.CreateTopicInput{
		Name: aws.String(name),
	})
	if err != nil {
		return "", gohook.NewInternalError(fmt.Errorf("t.svc.CreateTopic: %w", err))
	}

	var topicArn string
	if result.TopicArn != nil {
		topicArn = *result.TopicArn
	}
	return topicArn, nil
}

// SubscribeEndpoint subscribes a webhook endpoint URL to a topic.
// The protocol is derived from the URL scheme; only http and https
// endpoints are accepted. SNS will deliver a SubscriptionConfirmation
// envelope to the endpoint, which the Confirmer handles.
func (t *Topics) SubscribeEndpoint(ctx context.Context, topicArn, endpoint string) (string, error) {
	parsed, err := url.Parse(endpoint)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return "", NewInvalidEndpointError(endpoint)
	}

	result, err := t.svc.Subscribe(ctx, &sns.SubscribeInput{
		Endpoint:              aws.String(endpoint),
		Protocol:              aws.String(parsed.Scheme),
		ReturnSubscriptionArn: true, // return the ARN even before the endpoint confirms
		TopicArn:              aws.String(topicArn),
	})
	if err != nil {
		return "", gohook.NewInternalError(fmt.Errorf("t.svc.Subscribe: %w", err))
	}

	var subscriptionArn string
	if result.SubscriptionArn != nil {
		subscriptionArn = *result.SubscriptionArn
	}
	return subscriptionArn, nil
}

// ConfirmSubscription redeems a confirmation token by hand. The token
// is the one surfaced in the unexpected-confirmation diagnostic.
func (t *Topics) ConfirmSubscription(ctx context.Context, topicArn, token string) (string, error) {
	result, err := t.svc.ConfirmSubscription(ctx, &sns.ConfirmSubscriptionInput{
		Token:    aws.String(token),
		TopicArn: aws.String(topicArn),
	})
	if err != nil {
		return "", gohook.NewInternalError(fmt.Errorf("t.svc.ConfirmSubscription: %w", err))
	}

	var subscriptionArn string
	if result.SubscriptionArn != nil {
		subscriptionArn = *result.SubscriptionArn
	}
	return subscriptionArn, nil
}
