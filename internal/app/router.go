package app

import (
	"github.com/avc-dev/shortlink/internal/middleware"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// newRouter создает и настраивает роутер приложения
func newRouter(deps *dependencies, logger *zap.Logger) *chi.Mux {
	h := deps.handler
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Metrics(deps.metrics))
	r.Use(middleware.GzipMiddleware(logger))

	r.Get("/ping", h.Ping)
	r.Get("/weatherforecast", h.WeatherForecast)
	r.Method("GET", "/metrics", deps.metrics.Handler())
	r.Get("/{id}", h.GetURL)

	// Создание ссылок выдает новую личность, если ее нет
	r.Group(func(r chi.Router) {
		r.Use(deps.auth.OptionalAuth)
		r.Post("/", h.CreateURL)
		r.Post("/api/shorten", h.CreateURLJSON)
		r.Post("/api/shorten/batch", h.CreateURLBatch)
	})

	r.Group(func(r chi.Router) {
		r.Use(deps.auth.RequireAuth)
		r.Get("/api/user/urls", h.GetUserURLs)
		r.Delete("/api/user/urls", h.DeleteURLs)
	})

	return r
}
