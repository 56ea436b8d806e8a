package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "paintshop_lots/docs"
	"paintshop_lots/internal/adapter/http/routes"
	"paintshop_lots/internal/config"

	_ "github.com/joho/godotenv/autoload"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// @title           Paint Shop Lots API
// @version         1.0
// @description     Lot board, station scheduling, deliveries and payment reconciliation for a paint shop.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey ActorRole
// @in header
// @name X-Actor-Role
// @description Role forwarded by the identity provider (admin or operator).

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	// dev: pretty, prod: JSON
	zerolog.TimeFieldFormat = time.RFC3339Nano
	if !cfg.IsProduction() {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := routes.Run(ctx, cfg); err != nil {
		log.Fatal().Err(err).Msg("failed to startup the application")
	}
	log.Info().Msg("server stopped")
}
