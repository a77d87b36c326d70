package main

import (
	"context"
	"log"

	_ "rawasi_matching/docs"
	"rawasi_matching/internal/adapter/http/routes"
	"rawasi_matching/internal/config"
	"rawasi_matching/internal/infrastructure/logger"

	"go.uber.org/zap"
)

// @title           Rawasi Provider Matching API
// @version         1.0
// @description     Project wizard, provider recommendations, comparison and stage flow for construction project owners.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	l, err := logger.New(cfg.App.LogJSON, cfg.IsDebug())
	if err != nil {
		log.Fatalf("creating a logger: %v", err)
	}
	defer func() { _ = l.Sync() }()

	if err := routes.Run(context.Background(), cfg, l); err != nil {
		l.Fatal("server stopped", zap.Error(err))
	}
}
