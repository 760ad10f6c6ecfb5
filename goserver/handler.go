// goserver is the HTTP boundary for the webhook pipeline: a chi
// router, basic-auth enforcement of the pre-shared secret, and the
// tracking endpoint handler.
package goserver

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"mime"
	"net/http"

	"github.com/ggarcia209/go-ses-webhooks/gohook"
	"github.com/ggarcia209/go-ses-webhooks/goses"
	"github.com/ggarcia209/go-ses-webhooks/gosns"
)

// Pipeline is the processing entry point the handler feeds.
type Pipeline interface {
	Process(ctx context.Context, req *gosns.Request) ([]goses.TrackingEvent, error)
}

type Handler struct {
	pipeline Pipeline
	logger   *slog.Logger
}

func NewHandler(pipeline Pipeline, logger *slog.Logger) *Handler {
	return &Handler{
		pipeline: pipeline,
		logger:   logger,
	}
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// tracking receives SNS webhook deliveries. Success is 200 regardless
// of how many events were produced; validation failures are 400.
func (h *Handler) tracking(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "unreadable body", http.StatusBadRequest)
		return
	}

	req := gosns.NewRequest(r.Header, body, requestCharset(r))
	evs, err := h.pipeline.Process(r.Context(), req)
	if err != nil {
		// Only request faults map to 400. An InternalError is also a
		// WebhookError but reports our side failing, so it falls
		// through to 500 and SNS will redeliver.
		var werr gohook.WebhookError
		if errors.As(err, &werr) && (werr.ValidationFailure() || werr.Malformed()) {
			h.logger.Warn("rejected SNS message",
				"message_id", r.Header.Get(gosns.HeaderMessageID),
				"error", err,
			)
			http.Error(w, "invalid SNS message", http.StatusBadRequest)
			return
		}
		h.logger.Error("process SNS message",
			"message_id", r.Header.Get(gosns.HeaderMessageID),
			"error", err,
		)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	h.logger.Info("processed SNS message",
		"message_id", r.Header.Get(gosns.HeaderMessageID),
		"type", r.Header.Get(gosns.HeaderMessageType),
		"events", len(evs),
	)
	w.WriteHeader(http.StatusOK)
}

// requestCharset extracts the declared body charset from Content-Type.
// SNS posts text/plain; charset=UTF-8.
func requestCharset(r *http.Request) string {
	_, params, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		return ""
	}
	return params["charset"]
}
