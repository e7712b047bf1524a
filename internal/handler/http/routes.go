package http

import (
	"net/http"

	"github.com/MKhiriev/titanic-identity/internal/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, withLogging, withMetrics, middleware.Recoverer)

	router.Get("/", h.info)
	router.Method(http.MethodGet, "/metrics", promhttp.Handler())

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/register", h.register)
		r.Post("/login", h.login)
		r.Post("/refresh", h.refresh)
	})

	// active users
	router.Group(func(r chi.Router) {
		r.Use(h.active.Middleware(nil))
		r.Get("/me", h.me)
		r.Put("/me", h.updateMe)
		r.Post("/logout", h.logout)
	})

	// administrators
	router.Group(func(r chi.Router) {
		r.Use(h.admin.Middleware(nil))
		r.Get("/admin/stats", h.stats)
	})

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteError(w, http.StatusNotFound, http.StatusText(http.StatusNotFound))
	})
	router.MethodNotAllowed(CheckHTTPMethod())

	return router
}
