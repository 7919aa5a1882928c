package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "underwriting_service/docs"
	"underwriting_service/internal/adapter/http/routes"
	"underwriting_service/internal/config"
	"underwriting_service/internal/infrastructure/logger"
	"underwriting_service/internal/infrastructure/observability"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Underwriting Service API
// @version         1.0
// @description     Vehicle insurance underwriting: proposal intake, decisions, one-time payment codes and policy lifecycle.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /

// @securityDefinitions.apikey Operator
// @in header
// @name X-Operator-ID
// @description Operator identifier recorded as the actor of every lifecycle change.

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.LogMode, cfg.LogHashSalt)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger init failed: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownOTel := observability.InitOTel(ctx, log, observability.OtelConfig{
		Enabled:     cfg.OTelEnabled,
		ServiceName: cfg.OTelServiceName,
		Endpoint:    cfg.OTelEndpoint,
		Version:     "1.0",
	})
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownOTel(sctx); err != nil {
			log.Warn("otel shutdown failed", "error", err)
		}
	}()

	if err := routes.Run(ctx, cfg, log); err != nil {
		log.Error("failed to start the application", "error", err)
		log.Sync()
		os.Exit(1)
	}
}
