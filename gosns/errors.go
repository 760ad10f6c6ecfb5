package gosns

import (
	"errors"
	"fmt"

	"github.com/ggarcia209/go-ses-webhooks/gohook"
)

var (
	errNotAnObject        = errors.New("body is not a JSON object")
	errInvalidEncoding    = errors.New("body is not valid in the declared character set")
	errUnsupportedCharset = errors.New("unsupported character set")
)

func NewMalformedEnvelopeError(body []byte, err error) error {
	return gohook.NewMalformedError(fmt.Errorf("malformed SNS message body %q: %v", body, err))
}

func NewTypeMismatchError(headerType, bodyType string) error {
	return gohook.NewValidationError(fmt.Errorf(
		`SNS header "x-amz-sns-message-type: %s" doesn't match body "Type": "%s"`, headerType, bodyType))
}

func NewUnknownTypeError(messageType string) error {
	return gohook.NewValidationError(fmt.Errorf("unknown SNS message type '%s'", messageType))
}

func NewMessageIDMismatchError(headerID, bodyID string) error {
	return gohook.NewValidationError(fmt.Errorf(
		`SNS header "x-amz-sns-message-id: %s" doesn't match body "MessageId": "%s"`, headerID, bodyID))
}

// NewUnexpectedConfirmationError reports a SubscriptionConfirmation
// that arrived without proof of shared-secret possession. It carries
// the topic ARN and the manual-confirmation token so an operator can
// confirm the subscription by hand if it is genuine.
func NewUnexpectedConfirmationError(topicArn, token string) error {
	return gohook.NewValidationError(fmt.Errorf(
		"unexpected SubscriptionConfirmation request for Amazon SNS topic '%s'. "+
			"Set a webhook secret and use it in your SNS notification url to confirm "+
			"subscriptions automatically, or confirm this subscription manually in the "+
			"SNS dashboard with token '%s'", topicArn, token))
}

// NewConfirmationFailedError reports a non-success response from the
// outbound confirmation fetch.
func NewConfirmationFailedError(topicArn string, statusCode int, text string) error {
	return gohook.NewValidationError(fmt.Errorf(
		"received a %d error trying to automatically confirm a subscription to "+
			"Amazon SNS topic '%s'. The response was '%s'", statusCode, topicArn, text))
}

func NewInvalidEndpointError(endpoint string) error {
	return gohook.NewValidationError(fmt.Errorf("endpoint is not an http(s) url: %s", endpoint))
}
