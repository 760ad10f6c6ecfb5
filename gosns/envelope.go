// gosns handles the SNS transport side of SES event webhooks:
// envelope decoding, structural validation, the subscription
// confirmation handshake, and an operator-side topic helper built on
// the AWS SNS client.
package gosns

import (
	"encoding/json"
	"net/http"
	"strings"
	"sync"
	"unicode/utf8"

	"golang.org/x/text/encoding/ianaindex"
)

// DecodeEnvelope parses a raw request body into an Envelope. charset
// is the declared IANA character set name; empty means UTF-8. A body
// that is not valid text in that charset, not JSON, or JSON other
// than an object fails with a malformed-envelope error.
func DecodeEnvelope(body []byte, charset string) (*Envelope, error) {
	text, err := decodeCharset(body, charset)
	if err != nil {
		return nil, NewMalformedEnvelopeError(body, err)
	}

	// Reject JSON that is valid but not an object (arrays, strings,
	// null) before binding fields.
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(text, &obj); err != nil {
		return nil, NewMalformedEnvelopeError(body, err)
	}
	if obj == nil {
		return nil, NewMalformedEnvelopeError(body, errNotAnObject)
	}

	var raw envelopeBody
	if err := json.Unmarshal(text, &raw); err != nil {
		return nil, NewMalformedEnvelopeError(body, err)
	}
	return newEnvelope(raw), nil
}

func decodeCharset(body []byte, charset string) ([]byte, error) {
	name := strings.TrimSpace(charset)
	if name == "" || strings.EqualFold(name, "utf-8") || strings.EqualFold(name, "utf8") {
		if !utf8.Valid(body) {
			return nil, errInvalidEncoding
		}
		return body, nil
	}

	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil || enc == nil {
		return nil, errUnsupportedCharset
	}
	decoded, err := enc.NewDecoder().Bytes(body)
	if err != nil {
		return nil, errInvalidEncoding
	}
	return decoded, nil
}

// Request wraps one inbound webhook request so every pipeline stage
// reads the same decoded envelope. The decode runs at most once per
// request regardless of how many components call Envelope.
type Request struct {
	headers http.Header
	body    []byte
	charset string

	once sync.Once
	env  *Envelope
	err  error
}

// NewRequest builds a Request from raw transport metadata. charset is
// the declared body character set (empty for UTF-8).
func NewRequest(headers http.Header, body []byte, charset string) *Request {
	return &Request{
		headers: headers,
		body:    body,
		charset: charset,
	}
}

// Envelope returns the decoded transport envelope, decoding on first
// use and returning the identical result on every later call.
func (r *Request) Envelope() (*Envelope, error) {
	r.once.Do(func() {
		r.env, r.err = DecodeEnvelope(r.body, r.charset)
	})
	return r.env, r.err
}

// Header returns the named transport header value, or "".
func (r *Request) Header(name string) string {
	return r.headers.Get(name)
}

// Body returns the raw request body.
func (r *Request) Body() []byte {
	return r.body
}
