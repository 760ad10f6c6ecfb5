// package events contains the SES event payload models embedded in
// SNS Notification envelopes. SES publishes two nearly identical
// formats (event publishing and the legacy notification contents);
// these models handle either.
//
// https://docs.aws.amazon.com/ses/latest/DeveloperGuide/event-publishing-retrieving-sns-contents.html
// https://docs.aws.amazon.com/ses/latest/DeveloperGuide/notification-contents.html
package events

// Notification wraps the SES event data type. Detail objects are
// pointers so that an absent detail is distinguishable from an empty
// one.
type Notification struct {
	EventType        string `json:"eventType"`
	NotificationType string `json:"notificationType"` // legacy alias for EventType

	Bounce           *Bounce           `json:"bounce,omitempty"`
	Complaint        *Complaint        `json:"complaint,omitempty"`
	Delivery         *Delivery         `json:"delivery,omitempty"`
	Send             *Send             `json:"send,omitempty"`
	Reject           *Reject           `json:"reject,omitempty"`
	Open             *Open             `json:"open,omitempty"`
	Click            *Click            `json:"click,omitempty"`
	RenderingFailure *RenderingFailure `json:"failure,omitempty"` // SES uses "failure", not "rendering failure"
	DeliveryDelay    *DeliveryDelay    `json:"deliveryDelay,omitempty"`

	Mail Mail `json:"mail"`
}

// Subtype returns the provider event subtype, preferring the event
// publishing field over the legacy notification field. Empty when
// neither is present.
func (n *Notification) Subtype() string {
	if n.EventType != "" {
		return n.EventType
	}
	return n.NotificationType
}

type Mail struct {
	Timestamp        string              `json:"timestamp"`
	Source           string              `json:"source"`
	SourceArn        string              `json:"sourceArn"`
	SendingAcctId    string              `json:"sendingAccountId"`
	MessageId        string              `json:"messageId"`
	Destination      []string            `json:"destination"`
	HeadersTruncated bool                `json:"headersTruncated"`
	Headers          []Header            `json:"headers"`
	CommonHeaders    map[string]any      `json:"commonHeaders"`
	Tags             map[string][]string `json:"tags"`
}

// Header is one echoed custom header from the original message.
type Header struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}
