package app

import (
	"fmt"

	"employee-management/internal/config"
	"employee-management/internal/middleware"
	"employee-management/internal/shared/apperror"
	"employee-management/internal/shared/connection"
	"employee-management/internal/shared/migration"
	"employee-management/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewRouter returns an engine with the shared middleware chain. Unknown
// routes and unsupported methods answer with a NotFound envelope.
func NewRouter(logger *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.ContextLogger(logger),
		middleware.AccessLog(logger),
		middleware.Recovery(logger),
	)
	r.NoRoute(func(c *gin.Context) {
		response.Fail(c, apperror.NotFound("No handler found for %s %s", c.Request.Method, c.Request.URL.Path))
	})
	return r
}

// BuildApp connects to the database, migrates when configured to and
// registers every module on router. The returned func closes the pool.
func BuildApp(router *gin.Engine, cfg *config.Config, logger *zap.Logger) (func() error, error) {
	gormDB, err := connection.ConnectGORMWithRetry(cfg.Database, logger)
	if err != nil {
		return nil, err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB failed: %w", err)
	}

	if cfg.Migration.OnStart {
		if err := migration.Up(cfg.Database.URL(), cfg.Migration.Path, logger); err != nil {
			_ = sqlDB.Close()
			return nil, err
		}
	}

	router.GET("/healthz", healthHandler(sqlDB))
	registerModules(router, gormDB, logger)

	return sqlDB.Close, nil
}
