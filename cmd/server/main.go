package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/elastic/go-elasticsearch/v9"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/bistroboss/backend/internal/config"
	"github.com/bistroboss/backend/internal/events"
	"github.com/bistroboss/backend/internal/gateway"
	"github.com/bistroboss/backend/internal/httpserver"
	authmw "github.com/bistroboss/backend/internal/middleware/auth"
	"github.com/bistroboss/backend/internal/repo"
	"github.com/bistroboss/backend/internal/service"
	"github.com/bistroboss/backend/internal/service/search"
	"github.com/bistroboss/backend/pkg/db"
	"github.com/bistroboss/backend/pkg/logging"
	loggingmw "github.com/bistroboss/backend/pkg/middleware/logging"
)

func main() {
	cfg := config.MustLoad()
	logger := logging.New(cfg.LogLevel).With("service", cfg.ServiceName)

	ctx := context.Background()

	database, err := db.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	if err := repo.Migrate(database); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	store := repo.New(database)
	producer := events.NewProducer(cfg.KafkaBrokers)
	stripeGW := gateway.NewStripeGateway(cfg.StripeSecretKey)

	var esClient *elasticsearch.Client
	if cfg.ESURL != "" {
		esClient, err = search.NewClient(cfg.ESURL, cfg.ESUser, cfg.ESPassword)
		if err != nil {
			log.Fatalf("elasticsearch: %v", err)
		}
	}

	authSvc := &service.AuthService{Repo: store, JWTSecret: cfg.JWTSecret}
	paymentSvc := &service.PaymentService{Repo: store, Gateway: stripeGW, Producer: producer}
	statsSvc := &service.StatsService{Repo: store}

	e := echo.New()
	e.HideBanner = true
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover(), middleware.RequestID(), middleware.CORS())
	e.Use(loggingmw.RequestLogger(logger))

	deps := &httpserver.Deps{
		AuthMW:         authmw.New(cfg.JWTSecret, store),
		AuthHandler:    &httpserver.AuthHTTP{Svc: authSvc},
		UserHandler:    &httpserver.UserHTTP{Repo: store, Producer: producer},
		MenuHandler:    &httpserver.MenuHTTP{Repo: store, ES: esClient, Index: "menu"},
		ReviewHandler:  &httpserver.ReviewHTTP{Repo: store},
		CartHandler:    &httpserver.CartHTTP{Repo: store},
		PaymentHandler: &httpserver.PaymentHTTP{Svc: paymentSvc},
		StatsHandler:   &httpserver.StatsHTTP{Svc: statsSvc},
	}
	httpserver.Register(e, deps)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      e,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	go func() {
		logger.Info("server starting", "port", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("http server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("server shutdown error: %v", err)
	}
	if err := db.Close(database); err != nil {
		log.Printf("db close error: %v", err)
	}
	if err := producer.Close(); err != nil {
		log.Printf("kafka close error: %v", err)
	}
}
