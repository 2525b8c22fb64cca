package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"bookmarkhub/internal/handlers"
	"bookmarkhub/internal/preview"
	"bookmarkhub/internal/service"
)

// Deps holds dependencies for the HTTP router.
type Deps struct {
	Service        service.BookmarkService
	Renderer       *preview.Renderer
	MaxUploadBytes int64
}

// NewRouter creates a new HTTP router with the provided dependencies.
func NewRouter(deps *Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(RequestLogger)
	r.Use(LoggerMiddleware)
	r.Use(Recoverer)
	r.Use(Metrics)

	// Add CORS middleware
	r.Use(CORS)

	renderer := deps.Renderer
	if renderer == nil {
		renderer = preview.New()
	}

	r.Route("/api", func(r chi.Router) {
		r.Method(http.MethodGet, "/ping", handlers.NewPingHandler())
		r.Method(http.MethodGet, "/data", handlers.NewDataHandler(deps.Service))
		r.Method(http.MethodPost, "/auth/login", handlers.NewLoginHandler(deps.Service))
		r.Method(http.MethodGet, "/file/{id}", handlers.NewFileHandler(deps.Service))
		r.Method(http.MethodGet, "/notes/{id}", handlers.NewNoteHandler(deps.Service, renderer))

		// Writes need the shared secret.
		r.Group(func(r chi.Router) {
			r.Use(RequireSecret(deps.Service))
			r.Method(http.MethodPost, "/categories", handlers.NewCategoriesHandler(deps.Service))
			r.Method(http.MethodPost, "/items", handlers.NewItemsHandler(deps.Service))
			r.Method(http.MethodPost, "/auth/password", handlers.NewPasswordHandler(deps.Service))
			r.Method(http.MethodPost, "/theme/default", handlers.NewDefaultThemeHandler(deps.Service))
			r.Method(http.MethodPost, "/upload", handlers.NewUploadHandler(deps.Service, deps.MaxUploadBytes))
		})
	})

	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		handlers.WriteError(w, http.StatusNotFound, "Not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		handlers.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
	})

	return r
}
