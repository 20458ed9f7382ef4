package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/cloo-solutions/datachat/internal/api"
	"github.com/cloo-solutions/datachat/internal/api/handlers"
	"github.com/cloo-solutions/datachat/internal/api/middleware"
)

type RouterConfig struct {
	AskHandler       *handlers.AskHandler
	DocumentsHandler *handlers.DocumentsHandler
	SchemaHandler    *handlers.SchemaHandler
}

func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	const maxBodyBytes int64 = 1 * 1024 * 1024

	r.Use(middleware.RequestID)
	r.Use(middleware.SentryMiddleware)
	r.Use(middleware.AccessLog)
	r.Use(middleware.MaxBodyBytes(maxBodyBytes))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		api.Success(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Post("/ask", cfg.AskHandler.Ask)
	r.Post("/documents", cfg.DocumentsHandler.Ingest)
	r.Get("/schema", cfg.SchemaHandler.GetSchema)

	return r
}
