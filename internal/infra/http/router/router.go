package router

import (
	"io/fs"
	"log/slog"
	"net/http"

	sentryhttp "github.com/getsentry/sentry-go/http"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/voxelia/landing/internal/infra/http/handlers"
	"github.com/voxelia/landing/internal/infra/http/middleware"
)

type Deps struct {
	Contact        *handlers.ContactHandler
	Health         *handlers.HealthHandler
	Static         fs.FS
	AllowedOrigins []string
	Logger         *slog.Logger
}

func New(d Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	if d.Logger != nil {
		r.Use(chimw.RequestLogger(&chimw.DefaultLogFormatter{
			Logger:  slog.NewLogLogger(d.Logger.Handler(), slog.LevelInfo),
			NoColor: true,
		}))
	} else {
		r.Use(chimw.Logger)
	}
	r.Use(sentryhttp.New(sentryhttp.Options{Repanic: true}).Handle)
	r.Use(chimw.Recoverer)
	r.Use(middleware.Metrics)

	r.Get("/health", d.Health.Handle)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: d.AllowedOrigins,
			AllowedMethods: []string{"POST", "OPTIONS"},
			AllowedHeaders: []string{"Content-Type"},
			MaxAge:         300,
		}))
		r.Post("/send-email", d.Contact.SendEmail)
	})

	if d.Static != nil {
		r.Handle("/*", handlers.NewLandingHandler(d.Static))
	}

	return r
}
