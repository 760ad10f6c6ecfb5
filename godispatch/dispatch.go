// godispatch delivers normalized tracking events to interested
// consumers: a Kafka producer sink, a redis-backed dedup decorator,
// and an in-process func adapter.
package godispatch

import (
	"context"

	"github.com/ggarcia209/go-ses-webhooks/goses"
)

// Sink receives the ordered sequence of tracking events produced from
// one notification.
type Sink interface {
	Dispatch(ctx context.Context, evs []goses.TrackingEvent) error
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(ctx context.Context, evs []goses.TrackingEvent) error

func (f SinkFunc) Dispatch(ctx context.Context, evs []goses.TrackingEvent) error {
	return f(ctx, evs)
}
