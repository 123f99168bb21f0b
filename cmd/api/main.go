package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/joho/godotenv"

	"github.com/voxelia/landing/internal/config"
	"github.com/voxelia/landing/internal/infra/http/handlers"
	"github.com/voxelia/landing/internal/infra/http/router"
	"github.com/voxelia/landing/internal/infra/mail"
	"github.com/voxelia/landing/internal/logger"
	"github.com/voxelia/landing/internal/usecase"
	"github.com/voxelia/landing/web"
)

func main() {
	dryRun := flag.Bool("dry-run", false, "keep emails in memory instead of sending them")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		slog.Info(".env not found, using process environment")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		Level:       cfg.LogLevel,
		SentryDSN:   cfg.SentryDSN,
		Environment: cfg.SentryEnvironment,
		Release:     cfg.Version,
	})
	slog.SetDefault(log)
	defer sentry.Flush(2 * time.Second)

	// 1. Transport
	var transport usecase.EmailTransport
	health := handlers.NewHealthHandler(cfg.SMTP, cfg.Version)
	if *dryRun {
		log.Warn("dry run: contact emails are kept in memory")
		transport = mail.NewOutbox()
		health = handlers.NewDryRunHealthHandler(cfg.Version)
	} else {
		if !cfg.SMTP.Configured() {
			log.Warn("SMTP is not fully configured; submissions will fail until it is")
		}
		transport = mail.NewEmailSender(cfg.SMTP)
	}

	// 2. UseCase
	sendContactUC := usecase.NewSendContactEmailUseCase(mail.NewRenderer(), transport, log)

	// 3. Handlers + router
	h := router.New(router.Deps{
		Contact:        handlers.NewContactHandler(sendContactUC, cfg.MaxBodyBytes, log),
		Health:         health,
		Static:         web.Static(),
		AllowedOrigins: cfg.CORSAllowedOrigins,
		Logger:         log,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      h,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	go func() {
		log.Info("server listening", slog.String("addr", srv.Addr), slog.String("version", cfg.Version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server stopped", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	// In-flight sends may take up to the SMTP timeout.
	ctx, cancel := context.WithTimeout(context.Background(), cfg.SMTP.Timeout+5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", slog.String("error", err.Error()))
	}
	log.Info("server stopped")
}
