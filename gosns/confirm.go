package gosns

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/ggarcia209/go-ses-webhooks/gohook"
)

// maxConfirmBodyBytes caps how much of a failed confirmation response
// is copied into the diagnostic.
const maxConfirmBodyBytes = 4096

// HTTPClientAPI defines the outbound HTTP client methods used for the
// subscription confirmation fetch.
//
//go:generate mockgen -destination=./http_client_api_test.go -package=gosns . HTTPClientAPI
type HTTPClientAPI interface {
	Do(req *http.Request) (*http.Response, error)
}

// Confirmer performs the SNS subscription-confirmation handshake.
//
// Auto-confirmation is a privileged action: SNS signs
// SubscriptionConfirmation messages for any topic, including one a
// third party pointed at this endpoint, so only possession of the
// pre-shared secret proves the subscription is genuinely meant for us.
type Confirmer struct {
	autoConfirm  bool
	secretProven bool
	client       HTTPClientAPI
}

// NewConfirmer builds a Confirmer from the pipeline configuration.
// A nil client gets a default http.Client bounded by cfg.ConfirmTimeout
// so a slow confirmation endpoint cannot pin a worker indefinitely.
func NewConfirmer(cfg gohook.Config, client HTTPClientAPI) *Confirmer {
	if client == nil {
		timeout := cfg.ConfirmTimeout
		if timeout <= 0 {
			timeout = 30 * time.Second
		}
		client = &http.Client{Timeout: timeout}
	}
	return &Confirmer{
		autoConfirm:  cfg.AutoConfirmSubscriptions,
		secretProven: cfg.SharedSecretConfigured(),
		client:       client,
	}
}

// Confirm handles a SubscriptionConfirmation envelope. It is a no-op
// when auto-confirmation is disabled, fails when the caller has not
// proven possession of the shared secret, and otherwise issues a
// single GET to the confirmation URL. No retry.
func (c *Confirmer) Confirm(ctx context.Context, env *Envelope) error {
	if !c.autoConfirm {
		return nil
	}
	if !c.secretProven {
		return NewUnexpectedConfirmationError(env.TopicArn, env.Token)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, env.SubscribeURL, nil)
	if err != nil {
		return gohook.NewValidationError(fmt.Errorf("http.NewRequestWithContext: %w", err))
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("c.client.Do: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		text, _ := io.ReadAll(io.LimitReader(resp.Body, maxConfirmBodyBytes))
		return NewConfirmationFailedError(env.TopicArn, resp.StatusCode, string(text))
	}
	return nil
}
