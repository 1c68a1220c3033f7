package handlers

import (
	"net/http"

	"github.com/diegoclair/weekend-coverage/internal/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

// NewRouter wires the web routes. slackHandler is optional.
func NewRouter(coverage *CoverageHandler, slackHandler *SlackHandler) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.RequestID,
		middleware.RequestLogger(&middleware.DefaultLogFormatter{Logger: log.Logger, NoColor: true}),
		middleware.Recoverer,
	)

	r.Get("/", coverage.HandleIndex)
	r.Get("/weekend-coverage", coverage.HandleForm)
	r.Post("/submit-coverage", coverage.HandleSubmit)
	r.Get("/entry-log", coverage.HandleEntryLog)
	r.Get("/success", coverage.HandleSuccess)
	r.Get("/send-test-email", coverage.HandleTestEmail)

	if slackHandler != nil {
		r.Post("/slack/commands", slackHandler.HandleSlashCommand)
	}

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		render.PlainText(w, r, "OK")
	})

	return r
}
