package main

import (
	"errors"
	"fmt"
	"os"

	"employee-management/internal/config"
	"employee-management/internal/shared/migration"

	"go.uber.org/zap"
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("load config failed", zap.Error(err))
	}

	m, err := migration.New(cfg.Database.URL(), cfg.Migration.Path, logger)
	if err != nil {
		logger.Fatal("migration init failed", zap.Error(err))
	}
	defer m.Close()

	if err := migration.Run(m, os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, migration.ErrUsage) {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		logger.Fatal("migration failed", zap.Error(err))
	}
}
