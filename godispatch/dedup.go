package godispatch

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ggarcia209/go-ses-webhooks/goses"
)

// RedisAPI defines the redis client methods used by this package.
//
//go:generate mockgen -destination=./redis_api_test.go -package=godispatch . RedisAPI
type RedisAPI interface {
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd
}

// Deduper drops events already dispatched for the same
// (envelope message id, recipient) pair, using SETNX with a TTL.
// SNS delivers at-least-once, so redeliveries of one notification
// share a message id.
//
// Redis failures fail open: a duplicate delivered twice beats an
// event never delivered.
type Deduper struct {
	next Sink
	rdb  RedisAPI
	ttl  time.Duration
}

func NewDeduper(next Sink, rdb RedisAPI, ttl time.Duration) *Deduper {
	return &Deduper{
		next: next,
		rdb:  rdb,
		ttl:  ttl,
	}
}

func (d *Deduper) Dispatch(ctx context.Context, evs []goses.TrackingEvent) error {
	fresh := make([]goses.TrackingEvent, 0, len(evs))
	for _, ev := range evs {
		key := dedupKey(ev)
		ok, err := d.rdb.SetNX(ctx, key, 1, d.ttl).Result()
		if err != nil || ok {
			fresh = append(fresh, ev)
		}
	}
	if len(fresh) == 0 {
		return nil
	}
	return d.next.Dispatch(ctx, fresh)
}

func dedupKey(ev goses.TrackingEvent) string {
	return fmt.Sprintf("seshook:dedup:%s:%s", ev.EventID, ev.Recipient)
}
