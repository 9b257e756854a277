package connection

import (
	"fmt"
	"time"

	"employee-management/internal/config"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const retryDelay = 5 * time.Second

var sleep = time.Sleep

// ConnectGORMWithRetry opens the postgres pool, retrying open and ping up to
// cfg.MaxRetries times.
func ConnectGORMWithRetry(cfg config.DatabaseConfig, logger *zap.Logger) (*gorm.DB, error) {
	if logger == nil {
		logger = zap.L()
	}
	logger = logger.Named("connection")

	var db *gorm.DB
	err := withRetry(cfg.MaxRetries, retryDelay, logger, func() error {
		conn, err := connect(cfg)
		if err != nil {
			return err
		}
		db = conn
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("connected to database", zap.String("host", cfg.Host), zap.String("database", cfg.Name))
	return db, nil
}

func connect(cfg config.DatabaseConfig) (*gorm.DB, error) {
	db, err := Open(postgres.Open(cfg.DSN()))
	if err != nil {
		return nil, fmt.Errorf("gorm open failed: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB failed: %w", err)
	}

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(time.Hour)
	return db, nil
}

// withRetry runs fn up to attempts times (at least once), sleeping delay
// between failures but not after the last one.
func withRetry(attempts int, delay time.Duration, logger *zap.Logger, fn func() error) error {
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for i := 1; i <= attempts; i++ {
		if lastErr = fn(); lastErr == nil {
			return nil
		}
		logger.Warn("database connect attempt failed", zap.Int("attempt", i), zap.Int("max", attempts), zap.Error(lastErr))
		if i < attempts {
			sleep(delay)
		}
	}

	return fmt.Errorf("database connection failed after %d retries: %w", attempts, lastErr)
}

// Open wraps gorm.Open with the settings every connection here uses. Each
// repository call is a single statement, so gorm's implicit write
// transaction is skipped.
func Open(dialector gorm.Dialector) (*gorm.DB, error) {
	return gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
	})
}
