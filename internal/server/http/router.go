// Package httpserver exposes the MomentKeeper REST API over chi.
package httpserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/and161185/moment-keeper/internal/auth"
	"github.com/and161185/moment-keeper/internal/observability"
	"github.com/and161185/moment-keeper/internal/service"
)

// Deps are the collaborators of the router.
type Deps struct {
	Moments     service.MomentService
	Anniversary service.AnniversaryService
	Verifier    auth.Verifier
	Metrics     *observability.Collector // optional
	Logger      *zap.Logger
	CORSOrigins []string // empty disables CORS
}

// NewRouter configures every route and middleware.
func NewRouter(d Deps) http.Handler {
	if d.Logger == nil {
		d.Logger = zap.NewNop()
	}
	h := &handlers{moments: d.Moments, anniv: d.Anniversary, metrics: d.Metrics, log: d.Logger}

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(recoverer(d.Logger))
	r.Use(requestLogger(d.Logger))
	if d.Metrics != nil {
		r.Use(instrument(d.Metrics))
	}
	if len(d.CORSOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   d.CORSOrigins,
			AllowedMethods:   []string{"GET", "POST", "PUT", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
			ExposedHeaders:   []string{"X-Request-ID"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		respondError(w, http.StatusNotFound, "route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		respondError(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	if d.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", d.Metrics.Handler())
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(authenticate(d.Verifier, d.Logger))

		r.Route("/moments", func(r chi.Router) {
			r.Get("/", h.listMoments)
			r.Post("/", h.createMoment)
			r.Get("/{id}", h.getMoment)
			r.Put("/{id}", h.updateMoment)
		})
		r.Get("/anniversary", h.getAnniversary)
		r.Put("/anniversary", h.saveAnniversary)
		r.Get("/home", h.home)
		r.Get("/me", h.whoAmI)
	})
	return r
}
