package routes

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "screenprint_estimator/docs" // generated by swag init
	"screenprint_estimator/internal/adapter/http/handlers"
	"screenprint_estimator/internal/adapter/http/middleware"
	"screenprint_estimator/internal/adapter/persistence/repository"
	"screenprint_estimator/internal/config"
	"screenprint_estimator/internal/infrastructure/identity"
	"screenprint_estimator/internal/infrastructure/logger"
	"screenprint_estimator/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

// Handlers groups everything the router mounts.
type Handlers struct {
	Estimate *handlers.EstimateHandler
	Pinned   *handlers.PinnedEstimateHandler
	Catalog  *handlers.CatalogHandler
}

// Run wires the service from the environment and serves until SIGINT/SIGTERM.
func Run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	rule, err := usecase.ParseQuantityRule(cfg.QuantityRule)
	if err != nil {
		return fmt.Errorf("invalid QUANTITY_RULE: %w", err)
	}
	ids, err := identity.NewSnowflakeGenerator(cfg.SnowflakeNode)
	if err != nil {
		return err
	}

	pinnedRepo := repository.NewPinnedEstimateMemoryRepository()
	estimateUseCase := usecase.NewEstimateUseCase(usecase.NewLineItemBuilder(rule), pinnedRepo, ids, log)

	router := NewRouter(cfg, log, Handlers{
		Estimate: handlers.NewEstimateHandler(estimateUseCase, log),
		Pinned:   handlers.NewPinnedEstimateHandler(estimateUseCase, log),
		Catalog:  handlers.NewCatalogHandler(),
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		log.Info("http server listening",
			zap.String("addr", srv.Addr),
			zap.String("quantity_rule", string(rule)),
			zap.Int64("snowflake_node", cfg.SnowflakeNode),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("failed to start the application: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, stop := context.WithTimeout(context.Background(), shutdownTimeout)
	defer stop()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	log.Info("server stopped gracefully")
	return nil
}

// NewRouter builds the gin engine with middlewares and every route mounted.
func NewRouter(cfg *config.Config, log *zap.Logger, h Handlers) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.New()
	setMiddlewares(router, log)

	if cfg.SwaggerEnabled {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addCatalogRoutes(v1, h.Catalog)
	addEstimateRoutes(v1, h.Estimate, h.Pinned)
	return router
}

func setMiddlewares(router *gin.Engine, log *zap.Logger) {
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(log))
	router.Use(middleware.Recovery(log))
}
