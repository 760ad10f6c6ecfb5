// goses normalizes SES event payloads into the unified tracking-event
// taxonomy, fanning one notification out into zero or more
// per-recipient events.
package goses

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ggarcia209/go-ses-webhooks/goses/events"
	"github.com/ggarcia209/go-ses-webhooks/gosns"
)

// topicValidationMessage is published by SES right after a
// subscription is confirmed. It is an acknowledgment, not an event
// payload, and decodes to zero events.
const topicValidationMessage = "Successfully validated SNS topic for Amazon SES event publishing."

// missingSubtype stands in for a payload that declares no subtype in
// either of the two field aliases.
const missingSubtype = "<<type missing>>"

// Custom header names SES echoes back from the original message.
const (
	tagHeader      = "x-tag"
	metadataHeader = "x-metadata"
)

type Normalizer struct{}

// Normalize decodes the SES payload embedded in a Notification
// envelope and fans it out into one tracking event per affected
// recipient. The topic-validation acknowledgment yields zero events;
// any other unparsable payload is a validation failure.
func (Normalizer) Normalize(env *gosns.Envelope) ([]TrackingEvent, error) {
	var note events.Notification
	if err := json.Unmarshal([]byte(env.Message), &note); err != nil {
		if env.Message == topicValidationMessage {
			return nil, nil
		}
		return nil, NewUnparsableMessageError(env.Message)
	}
	return EventsFromNotification(&note, env)
}

// EventsFromNotification maps a decoded SES payload onto tracking
// events. Required detail fields missing for a given subtype fail the
// whole notification: a malformed required field means the provider
// format changed and deserves visibility, not silent partial data.
// Unrecognized subtypes instead degrade to EventUnknown events.
func EventsFromNotification(note *events.Notification, env *gosns.Envelope) ([]TrackingEvent, error) {
	tags, metadata := tagsAndMetadata(note.Mail.Headers)

	common := commonFields{
		eventID:   env.MessageID,
		messageID: note.Mail.MessageId,
		tags:      tags,
		metadata:  metadata,
		timestamp: env.Timestamp,
		raw:       note,
	}

	// Default fan-out: one event per destination address. Subtypes
	// with their own recipient lists replace this below.
	perRecipient := make([]recipientFields, 0, len(note.Mail.Destination))
	for _, addr := range note.Mail.Destination {
		perRecipient = append(perRecipient, recipientFields{recipient: addr})
	}

	subtype := note.Subtype()
	switch subtype {
	case "Bounce":
		b := note.Bounce
		if b == nil || b.BouncedRecipients == nil {
			return nil, NewMissingFieldError(subtype, "bouncedRecipients")
		}
		if b.BounceType == "" {
			return nil, NewMissingFieldError(subtype, "bounceType")
		}
		if b.BounceSubType == "" {
			return nil, NewMissingFieldError(subtype, "bounceSubType")
		}
		common.eventType = EventBounced
		common.description = fmt.Sprintf("%s: %s", b.BounceType, b.BounceSubType)
		common.rejectReason = RejectBounced
		perRecipient = perRecipient[:0]
		for _, r := range b.BouncedRecipients {
			if r.EmailAddress == "" {
				return nil, NewMissingFieldError(subtype, "emailAddress")
			}
			perRecipient = append(perRecipient, recipientFields{
				recipient:   r.EmailAddress,
				mtaResponse: r.DiagnosticCode,
			})
		}

	case "Complaint":
		c := note.Complaint
		if c == nil || c.ComplainedRecipients == nil {
			return nil, NewMissingFieldError(subtype, "complainedRecipients")
		}
		common.eventType = EventComplained
		common.description = c.ComplaintFeedbackType
		common.rejectReason = RejectSpam
		common.userAgent = c.UserAgent
		perRecipient = perRecipient[:0]
		for _, r := range c.ComplainedRecipients {
			if r.EmailAddress == "" {
				return nil, NewMissingFieldError(subtype, "emailAddress")
			}
			perRecipient = append(perRecipient, recipientFields{recipient: r.EmailAddress})
		}

	case "Delivery":
		d := note.Delivery
		if d == nil || d.Recipients == nil {
			return nil, NewMissingFieldError(subtype, "recipients")
		}
		common.eventType = EventDelivered
		common.mtaResponse = d.SmtpResponse
		perRecipient = perRecipient[:0]
		for _, addr := range d.Recipients {
			perRecipient = append(perRecipient, recipientFields{recipient: addr})
		}

	case "Send":
		common.eventType = EventSent

	case "Reject":
		if note.Reject == nil || note.Reject.Reason == "" {
			return nil, NewMissingFieldError(subtype, "reason")
		}
		common.eventType = EventRejected
		common.description = note.Reject.Reason
		common.rejectReason = RejectBlocked

	case "Open":
		common.eventType = EventOpened
		if note.Open != nil {
			common.userAgent = note.Open.UserAgent
		}

	case "Click":
		common.eventType = EventClicked
		if note.Click != nil {
			common.userAgent = note.Click.UserAgent
			common.clickURL = note.Click.Link
		}

	case "Rendering Failure":
		f := note.RenderingFailure
		if f == nil || f.ErrorMessage == "" {
			return nil, NewMissingFieldError(subtype, "errorMessage")
		}
		common.eventType = EventFailed
		common.description = f.ErrorMessage

	default:
		if subtype == "" {
			subtype = missingSubtype
		}
		common.eventType = EventUnknown
		common.description = fmt.Sprintf("Unknown SES eventType '%s'", subtype)
	}

	out := make([]TrackingEvent, 0, len(perRecipient))
	for _, r := range perRecipient {
		out = append(out, newTrackingEvent(common, r))
	}
	return out, nil
}

// tagsAndMetadata recovers tags and metadata from the echoed custom
// headers. The tag header is repeatable and order-preserving; the
// metadata header holds a JSON object, last valid occurrence wins,
// and a decode failure is ignored rather than failing the event.
func tagsAndMetadata(headers []events.Header) ([]string, map[string]any) {
	tags := []string{}
	metadata := map[string]any{}
	for _, h := range headers {
		switch strings.ToLower(h.Name) {
		case tagHeader:
			tags = append(tags, h.Value)
		case metadataHeader:
			var decoded map[string]any
			if err := json.Unmarshal([]byte(h.Value), &decoded); err == nil && decoded != nil {
				metadata = decoded
			}
		}
	}
	return tags, metadata
}
