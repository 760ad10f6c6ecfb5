package gosns

import "time"

// EnvelopeType enumerates the SNS message types the pipeline handles.
type EnvelopeType string

const (
	TypeNotification             EnvelopeType = "Notification"
	TypeSubscriptionConfirmation EnvelopeType = "SubscriptionConfirmation"
	TypeUnsubscribeConfirmation  EnvelopeType = "UnsubscribeConfirmation"
	TypeUnknown                  EnvelopeType = "Unknown"
)

// ParseEnvelopeType maps a wire value to an EnvelopeType. Anything
// outside the three recognized SNS message types is TypeUnknown.
func ParseEnvelopeType(s string) EnvelopeType {
	switch s {
	case "Notification":
		return TypeNotification
	case "SubscriptionConfirmation":
		return TypeSubscriptionConfirmation
	case "UnsubscribeConfirmation":
		return TypeUnsubscribeConfirmation
	default:
		return TypeUnknown
	}
}

// envelopeBody is the raw SNS wire format posted to the endpoint.
// https://docs.aws.amazon.com/sns/latest/dg/sns-message-and-json-formats.html
type envelopeBody struct {
	Type             string `json:"Type"`
	MessageId        string `json:"MessageId"`
	TopicArn         string `json:"TopicArn"`
	Subject          string `json:"Subject"`
	Message          string `json:"Message"`
	Timestamp        string `json:"Timestamp"`
	SignatureVersion string `json:"SignatureVersion"`
	Signature        string `json:"Signature"`
	SigningCertURL   string `json:"SigningCertURL"`
	SubscribeURL     string `json:"SubscribeURL"`
	Token            string `json:"Token"`
	UnsubscribeURL   string `json:"UnsubscribeURL"`
}

// Envelope is one decoded SNS transport message. It is constructed
// once per request and treated as immutable.
type Envelope struct {
	Type      EnvelopeType
	RawType   string // body "Type" exactly as received
	MessageID string
	TopicArn  string
	Subject   string

	// Message carries the nested SES event document for Notification
	// envelopes.
	Message string

	// Timestamp is nil when absent or unparsable; that is never fatal.
	Timestamp *time.Time

	// SubscribeURL and Token are set on SubscriptionConfirmation
	// envelopes. Token supports manual confirmation by an operator.
	SubscribeURL string
	Token        string

	UnsubscribeURL string

	// Signature material, retained for the (not yet implemented)
	// authenticity check.
	SignatureVersion string
	Signature        string
	SigningCertURL   string
}

func newEnvelope(body envelopeBody) *Envelope {
	return &Envelope{
		Type:             ParseEnvelopeType(body.Type),
		RawType:          body.Type,
		MessageID:        body.MessageId,
		TopicArn:         body.TopicArn,
		Subject:          body.Subject,
		Message:          body.Message,
		Timestamp:        parseTimestamp(body.Timestamp),
		SubscribeURL:     body.SubscribeURL,
		Token:            body.Token,
		UnsubscribeURL:   body.UnsubscribeURL,
		SignatureVersion: body.SignatureVersion,
		Signature:        body.Signature,
		SigningCertURL:   body.SigningCertURL,
	}
}

// parseTimestamp parses the SNS ISO-8601 timestamp. Absent or
// unparsable values yield nil rather than an error.
func parseTimestamp(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil
	}
	return &t
}
