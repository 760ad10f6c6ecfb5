// goingest orchestrates the ingestion pipeline: envelope validation,
// the branch on envelope type, normalization, and dispatch.
package goingest

import (
	"context"
	"fmt"

	"github.com/ggarcia209/go-ses-webhooks/godispatch"
	"github.com/ggarcia209/go-ses-webhooks/gohook"
	"github.com/ggarcia209/go-ses-webhooks/goses"
	"github.com/ggarcia209/go-ses-webhooks/gosns"
)

// Processor runs inbound SNS envelopes through the pipeline. Each
// request is processed independently; the Processor holds no mutable
// per-request state.
type Processor struct {
	validator  gosns.Validator
	confirmer  *gosns.Confirmer
	normalizer goses.Normalizer
	sink       godispatch.Sink
}

// NewProcessor wires the pipeline from configuration. The confirmer's
// outbound client is built from cfg; use NewProcessorWithConfirmer to
// supply a custom one.
func NewProcessor(cfg gohook.Config, sink godispatch.Sink) *Processor {
	return NewProcessorWithConfirmer(gosns.NewConfirmer(cfg, nil), sink)
}

func NewProcessorWithConfirmer(confirmer *gosns.Confirmer, sink godispatch.Sink) *Processor {
	return &Processor{
		confirmer: confirmer,
		sink:      sink,
	}
}

// Process validates one inbound request and runs the envelope through
// the type branch. It returns the events dispatched; producing zero
// events is still success. Decode and validation errors abort the
// whole request with no partial dispatch.
func (p *Processor) Process(ctx context.Context, req *gosns.Request) ([]goses.TrackingEvent, error) {
	if err := p.validator.Validate(req); err != nil {
		return nil, err
	}
	env, err := req.Envelope()
	if err != nil {
		return nil, err
	}
	return p.ProcessEnvelope(ctx, env)
}

// ProcessEnvelope runs an already-validated envelope through the type
// branch. Sources that receive envelopes over a trusted channel (the
// SQS poller) enter here directly.
func (p *Processor) ProcessEnvelope(ctx context.Context, env *gosns.Envelope) ([]goses.TrackingEvent, error) {
	switch env.Type {
	case gosns.TypeNotification:
		evs, err := p.normalizer.Normalize(env)
		if err != nil {
			return nil, err
		}
		if len(evs) > 0 {
			if err := p.sink.Dispatch(ctx, evs); err != nil {
				return nil, fmt.Errorf("p.sink.Dispatch: %w", err)
			}
		}
		return evs, nil

	case gosns.TypeSubscriptionConfirmation:
		return nil, p.confirmer.Confirm(ctx, env)

	default:
		// UnsubscribeConfirmation and anything a caller chose not to
		// validate: acknowledged, nothing to do.
		return nil, nil
	}
}
