package routes

import (
	"context"
	"fmt"
	"net/http"
	"time"

	_ "rawasi_matching/docs" // generated by swag init
	"rawasi_matching/internal/adapter/http/handlers"
	"rawasi_matching/internal/adapter/http/middleware"
	"rawasi_matching/internal/adapter/persistence/repository"
	"rawasi_matching/internal/config"
	"rawasi_matching/internal/infrastructure/database"
	"rawasi_matching/internal/usecase"
	"rawasi_matching/internal/usecase/interfaces"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Dependencies are the adapters the HTTP API is wired to.
type Dependencies struct {
	Sessions interfaces.ISessionRepository
	Catalog  interfaces.IProviderCatalog
	Log      *zap.Logger
}

// Run connects the configured stores and serves the API until the listener
// fails.
func Run(ctx context.Context, cfg *config.Config, log *zap.Logger) error {
	deps, closeAll, err := Connect(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeAll()

	if cfg.App.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := NewRouter(cfg, deps)

	log.Info("[http] listening", zap.String("port", cfg.Server.Port), zap.String("catalog_source", deps.Catalog.Source()))
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to startup the application: %w", err)
	}
	return nil
}

// Connect builds the session store and provider catalog selected by cfg.
// The returned func releases every opened connection.
func Connect(ctx context.Context, cfg *config.Config, log *zap.Logger) (Dependencies, func(), error) {
	if log == nil {
		log = zap.NewNop()
	}
	deps := Dependencies{Log: log}
	var closers []func()
	closeAll := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	switch cfg.Sessions.Store {
	case config.SessionStoreRedis:
		client, err := database.ConnectRedis(ctx, cfg.Redis)
		if err != nil {
			return Dependencies{}, func() {}, err
		}
		closers = append(closers, func() { _ = client.Close() })
		deps.Sessions = repository.NewSessionRedisRepository(client, cfg.Sessions.TTL)
	default:
		ddb, err := database.ConnectDynamoDB(ctx, cfg.AWS)
		if err != nil {
			return Dependencies{}, func() {}, fmt.Errorf("failed to create dynamodb client: %w", err)
		}
		deps.Sessions = repository.NewSessionDynamoRepository(ddb, cfg.Sessions.Table)
	}

	switch cfg.Catalog.Source {
	case config.CatalogSourcePostgres:
		pool, err := database.OpenPostgres(ctx, cfg.Database)
		if err != nil {
			closeAll()
			return Dependencies{}, func() {}, err
		}
		closers = append(closers, pool.Close)
		deps.Catalog = repository.NewProviderPostgresCatalog(pool)
	default:
		deps.Catalog = repository.NewFileProviderCatalog(cfg.Catalog.File, log)
	}

	log.Info("[http] dependencies ready",
		zap.String("session_store", cfg.Sessions.Store),
		zap.String("catalog_source", deps.Catalog.Source()),
	)
	return deps, closeAll, nil
}

// NewRouter builds the gin engine with every route registered.
func NewRouter(cfg *config.Config, deps Dependencies) *gin.Engine {
	if deps.Log == nil {
		deps.Log = zap.NewNop()
	}

	router := gin.New()
	setMiddlewares(router, cfg, deps.Log)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	sessionUseCase := usecase.NewSessionUseCase(deps.Sessions, deps.Catalog, deps.Log)
	recommendationUseCase := usecase.NewRecommendationUseCase(deps.Sessions, deps.Catalog, deps.Log)

	sessionHandler := handlers.NewSessionHandler(sessionUseCase)
	recommendationHandler := handlers.NewRecommendationHandler(recommendationUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addSessionRoutes(v1, sessionHandler, recommendationHandler)
	return router
}

func setMiddlewares(router *gin.Engine, cfg *config.Config, log *zap.Logger) {
	router.Use(middleware.RequestID(log))
	router.Use(cors.New(corsConfig(cfg.Server.CORSAllowedOrigins)))
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Error("[http] recovered from panic", zap.Any("panic", recovered), zap.String("path", c.Request.URL.Path))
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}

func corsConfig(origins []string) cors.Config {
	c := cors.Config{
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", middleware.HeaderRequestID},
		ExposeHeaders:    []string{middleware.HeaderRequestID},
		MaxAge:           12 * time.Hour,
		AllowCredentials: false,
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = origins
	}
	return c
}
