// package gohook contains configuration loading and the shared error
// taxonomy for the webhook ingestion pipeline. Service packages build
// their own error constructors on top of these types.
package gohook

// WebhookError is a generic interface for implementing
// error handling for each pipeline stage.
type WebhookError interface {
	Error() string
	ValidationFailure() bool
	Malformed() bool
}

// ValidationError reports a structural or semantic mismatch in an
// otherwise parseable envelope. Always fatal for the request.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

func (e *ValidationError) ValidationFailure() bool {
	return true
}

func (e *ValidationError) Malformed() bool {
	return false
}

func NewValidationError(err error) *ValidationError {
	if err == nil {
		return nil
	}
	return &ValidationError{
		msg: err.Error(),
	}
}

// MalformedError reports a request body that could not be parsed as
// an envelope at all. Always fatal for the request.
type MalformedError struct {
	msg string
}

func (e *MalformedError) Error() string {
	return e.msg
}

func (e *MalformedError) ValidationFailure() bool {
	return false
}

func (e *MalformedError) Malformed() bool {
	return true
}

func NewMalformedError(err error) *MalformedError {
	if err == nil {
		return nil
	}
	return &MalformedError{
		msg: err.Error(),
	}
}

// InternalError reports a failure in a collaborator (AWS API call,
// sink write) rather than in the inbound request itself.
type InternalError struct {
	msg string
}

func (e *InternalError) Error() string {
	return e.msg
}

func (e *InternalError) ValidationFailure() bool {
	return false
}

func (e *InternalError) Malformed() bool {
	return false
}

func NewInternalError(err error) *InternalError {
	if err == nil {
		return nil
	}
	return &InternalError{
		msg: err.Error(),
	}
}
