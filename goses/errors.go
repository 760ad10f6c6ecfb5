package goses

import (
	"fmt"

	"github.com/ggarcia209/go-ses-webhooks/gohook"
)

// NewUnparsableMessageError reports an embedded payload that is
// neither valid JSON nor the known topic-validation acknowledgment.
func NewUnparsableMessageError(message string) error {
	return gohook.NewValidationError(fmt.Errorf("unparsable SNS Message %q", message))
}

// NewMissingFieldError reports a required subtype-specific field that
// is absent. Deliberately a plain error, not a validation failure:
// it signals provider schema drift rather than a bad request.
func NewMissingFieldError(subtype, field string) error {
	return fmt.Errorf("SES %s event missing required field %q", subtype, field)
}
