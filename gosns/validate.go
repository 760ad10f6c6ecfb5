package gosns

// Transport header names set by SNS on every webhook delivery.
const (
	HeaderMessageType = "x-amz-sns-message-type"
	HeaderMessageID   = "x-amz-sns-message-id"
)

// missingValue stands in for an absent header or body field so that
// mismatch diagnostics show the absence explicitly.
const missingValue = "<<missing>>"

// Validator cross-checks the transport headers against the decoded
// envelope body. It is a pure check with no side effects; the first
// failing rule short-circuits the rest.
type Validator struct{}

// Validate verifies that the header-declared type and message id match
// the body-declared values and that the type is one of the recognized
// SNS message types. Anything else is a validation failure, not a
// silent correction.
func (Validator) Validate(req *Request) error {
	env, err := req.Envelope()
	if err != nil {
		return err
	}

	headerType := orMissing(req.Header(HeaderMessageType))
	bodyType := orMissing(env.RawType)
	if headerType != bodyType {
		return NewTypeMismatchError(headerType, bodyType)
	}
	if ParseEnvelopeType(headerType) == TypeUnknown {
		return NewUnknownTypeError(headerType)
	}

	headerID := orMissing(req.Header(HeaderMessageID))
	bodyID := orMissing(env.MessageID)
	if headerID != bodyID {
		return NewMessageIDMismatchError(headerID, bodyID)
	}

	// TODO: verify the SNS message signature against the signing cert.
	// https://docs.aws.amazon.com/sns/latest/dg/SendMessageToHttp.verify.signature.html
	// Note that a valid signature alone would not make auto-confirming
	// subscriptions safe; see Confirmer.

	return nil
}

func orMissing(s string) string {
	if s == "" {
		return missingValue
	}
	return s
}
