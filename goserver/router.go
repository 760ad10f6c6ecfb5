package goserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ggarcia209/go-ses-webhooks/gohook"
)

func NewRouter(h *Handler, cfg gohook.Config) http.Handler {
	r := chi.NewRouter()
	r.Get("/health", h.health)

	r.Route("/webhooks/amazon-ses", func(r chi.Router) {
		r.Use(BasicAuth(cfg.WebhookSecrets, cfg.BasicAuthRealm))
		r.Post("/tracking", h.tracking)
	})
	return r
}
