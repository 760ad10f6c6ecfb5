package goses

import (
	"time"

	"github.com/ggarcia209/go-ses-webhooks/goses/events"
)

// EventType is the closed taxonomy of normalized tracking events.
type EventType string

const (
	EventSent       EventType = "sent"
	EventDelivered  EventType = "delivered"
	EventBounced    EventType = "bounced"
	EventComplained EventType = "complained"
	EventRejected   EventType = "rejected"
	EventOpened     EventType = "opened"
	EventClicked    EventType = "clicked"
	EventFailed     EventType = "failed" // rendering failure
	EventUnknown    EventType = "unknown"
)

// RejectReason classifies terminal negative outcomes.
type RejectReason string

const (
	RejectBounced RejectReason = "bounced"
	RejectSpam    RejectReason = "spam"
	RejectBlocked RejectReason = "blocked"
)

// TrackingEvent is one normalized per-recipient event. A notification
// with N affected recipients yields N events sharing the common
// fields and differing in Recipient (and MTAResponse for bounces).
type TrackingEvent struct {
	EventType EventType `json:"event_type"`

	// EventID is the SNS envelope message id, unique per notification.
	EventID string `json:"event_id"`

	// MessageID is the SES mail message id; it may differ from EventID.
	MessageID string `json:"message_id"`

	Recipient string `json:"recipient"`

	RejectReason RejectReason `json:"reject_reason,omitempty"`
	Description  string       `json:"description,omitempty"`
	MTAResponse  string       `json:"mta_response,omitempty"`
	UserAgent    string       `json:"user_agent,omitempty"`
	ClickURL     string       `json:"click_url,omitempty"`

	// Tags preserves insertion order; duplicates are allowed.
	Tags     []string       `json:"tags,omitempty"`
	Metadata map[string]any `json:"metadata,omitempty"`

	Timestamp *time.Time `json:"timestamp,omitempty"`

	// RawEvent retains the decoded SES payload for diagnostics and
	// forward compatibility.
	RawEvent *events.Notification `json:"-"`
}

// commonFields is the field set shared by every event fanned out from
// one notification.
type commonFields struct {
	eventType    EventType
	eventID      string
	messageID    string
	rejectReason RejectReason
	description  string
	mtaResponse  string
	userAgent    string
	clickURL     string
	tags         []string
	metadata     map[string]any
	timestamp    *time.Time
	raw          *events.Notification
}

// recipientFields is the per-recipient field set. Its fields never
// collide with populated common fields by construction: only bounces
// set the per-recipient MTA response, and bounces never set the
// common one.
type recipientFields struct {
	recipient   string
	mtaResponse string
}

func newTrackingEvent(c commonFields, r recipientFields) TrackingEvent {
	ev := TrackingEvent{
		EventType:    c.eventType,
		EventID:      c.eventID,
		MessageID:    c.messageID,
		Recipient:    r.recipient,
		RejectReason: c.rejectReason,
		Description:  c.description,
		MTAResponse:  c.mtaResponse,
		UserAgent:    c.userAgent,
		ClickURL:     c.clickURL,
		Tags:         c.tags,
		Metadata:     c.metadata,
		Timestamp:    c.timestamp,
		RawEvent:     c.raw,
	}
	if r.mtaResponse != "" {
		ev.MTAResponse = r.mtaResponse
	}
	return ev
}
