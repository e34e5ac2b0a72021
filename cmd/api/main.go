package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"

	"github.com/readyforswiss/cvscan/internal/application"
	appscan "github.com/readyforswiss/cvscan/internal/application/scan"
	"github.com/readyforswiss/cvscan/internal/config"
	aiclient "github.com/readyforswiss/cvscan/internal/infra/ai/openai"
	"github.com/readyforswiss/cvscan/internal/infra/extract"
	"github.com/readyforswiss/cvscan/internal/infra/httpserver"
	"github.com/readyforswiss/cvscan/internal/infra/mail"
	"github.com/readyforswiss/cvscan/internal/middleware"
)

func main() {
	_ = godotenv.Load()

	// path config.yaml
	path := "config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		path = v
	}

	cfg, err := config.Load(path)
	if err != nil {
		log.Fatalf("config load error: %v", err)
	}

	// init pipeline dependencies
	analyzer := aiclient.NewClient(cfg.AI.APIKey, cfg.AI.BaseURL, cfg.AI.Model)
	sender := mail.NewSender(cfg.Mail.APIKey, cfg.Mail.From)

	svc := &appscan.Service{
		Extractor:      extract.New(),
		Analyzer:       analyzer,
		Sender:         sender,
		Clock:          application.SystemClock{},
		DefaultPersona: cfg.Scan.DefaultPersona,
		OperatorBCC:    cfg.Mail.OperatorBCC,
		AITimeout:      time.Duration(cfg.AI.TimeoutSeconds) * time.Second,
		MailTimeout:    time.Duration(cfg.Mail.TimeoutSeconds) * time.Second,
	}

	checkers := map[string]middleware.HealthChecker{
		"ai_credentials":   &middleware.ConfigHealthChecker{Name: "ai api key", Loaded: cfg.AI.APIKey != ""},
		"mail_credentials": &middleware.ConfigHealthChecker{Name: "mail api key", Loaded: cfg.Mail.APIKey != ""},
	}

	limiter := middleware.NewRateLimiter(cfg.RateLimit.Capacity, cfg.RateLimit.RefillRate)

	mux := chi.NewRouter()
	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))
	mux.Use(middleware.LoggingMiddleware)
	mux.Use(middleware.MetricsMiddleware)
	mux.Use(limiter.Middleware)
	mux.Mount("/", httpserver.NewRouter(svc, cfg.Scan.MaxUploadBytes, checkers))

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: mux,
		// ReadTimeout must cover slow resume uploads; WriteTimeout must
		// cover the AI plus email calls.
		ReadTimeout:  30 * time.Second,
		WriteTimeout: time.Duration(cfg.AI.TimeoutSeconds+cfg.Mail.TimeoutSeconds+15) * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("server listening on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	log.Println("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("shutdown error: %v", err)
	}
}
