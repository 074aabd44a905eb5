package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/elastic/go-elasticsearch/v9"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/aishwaryaxerox/print_shop/internal/config"
	"github.com/aishwaryaxerox/print_shop/internal/db"
	"github.com/aishwaryaxerox/print_shop/internal/es"
	"github.com/aishwaryaxerox/print_shop/internal/events"
	"github.com/aishwaryaxerox/print_shop/internal/handlers"
	"github.com/aishwaryaxerox/print_shop/internal/logging"
	authmw "github.com/aishwaryaxerox/print_shop/internal/middleware/auth"
	loggingmw "github.com/aishwaryaxerox/print_shop/internal/middleware/logging"
	"github.com/aishwaryaxerox/print_shop/internal/service"
	httpserver "github.com/aishwaryaxerox/print_shop/internal/transport/http"
)

const ordersIndex = "orders"

func main() {
	configuration, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := logging.New(configuration.LOG_LEVEL)
	slog.SetDefault(logger)

	gormDB, err := db.Open(context.Background(), configuration.DSN())
	if err != nil {
		logger.Error("failed to connect to DB", "error", err)
		os.Exit(1)
	}

	if err := db.InitSchema(gormDB, configuration.ADMIN_PASSWORD); err != nil {
		logger.Error("failed to init DB schema", "error", err)
		os.Exit(1)
	}

	var producer *events.Producer
	if configuration.KAFKA_ADDRESS != "" {
		producer = events.NewProducer([]string{configuration.KAFKA_ADDRESS}, events.Topic)
	}

	var esClient *elasticsearch.Client
	if configuration.ES_URL != "" {
		esClient, err = es.NewClient(configuration.ES_URL, configuration.ES_USER, configuration.ES_PASSWORD)
		if err != nil {
			logger.Error("failed to connect to Elasticsearch", "error", err)
			os.Exit(1)
		}
	}

	authSvc := service.NewAuthService(gormDB, []byte(configuration.JWT_SECRET))
	orderSvc := service.NewOrderService(gormDB)

	e := echo.New()
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover(), middleware.RequestID())
	e.Use(loggingmw.RequestLogger(logger))

	deps := httpserver.Deps{
		AuthHandler:   &handlers.AuthHandler{Auth: authSvc},
		OrderHandler:  &handlers.OrderHandler{Orders: orderSvc, Producer: producer, ES: esClient, Index: ordersIndex},
		SearchHandler: &handlers.SearchHandler{ES: esClient, Index: ordersIndex},
		TokenMW:       &authmw.TokenMiddleware{Auth: authSvc},
	}
	httpserver.Register(e, &deps)

	srv := &http.Server{
		Addr:         ":" + configuration.PORT,
		Handler:      e,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("starting server", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown error", "error", err)
	}

	if sqlDB, err := gormDB.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			logger.Error("db close error", "error", err)
		}
	}

	if producer != nil {
		if err := producer.Close(); err != nil {
			logger.Error("kafka close error", "error", err)
		}
	}

	logger.Info("shutdown complete")
}
