package migration

import (
	"errors"
	"fmt"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"go.uber.org/zap"
)

// New builds a migrator reading SQL files from sourcePath.
func New(databaseURL, sourcePath string, logger *zap.Logger) (*migrate.Migrate, error) {
	m, err := migrate.New("file://"+sourcePath, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("migration init failed: %w", err)
	}
	m.Log = NewLogger(logger)
	return m, nil
}

// Up applies every pending migration. Having nothing to apply is not an error.
func Up(databaseURL, sourcePath string, logger *zap.Logger) error {
	m, err := New(databaseURL, sourcePath, logger)
	if err != nil {
		return err
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration up failed: %w", err)
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("migration version failed: %w", err)
	}
	m.Log.Printf("schema at version %d (dirty=%v)", version, dirty)
	return nil
}

// Logger adapts zap to migrate.Logger.
type Logger struct {
	logger *zap.Logger
}

func NewLogger(logger *zap.Logger) *Logger {
	if logger == nil {
		logger = zap.L()
	}
	return &Logger{logger: logger.Named("migrate")}
}

func (l *Logger) Printf(format string, v ...any) {
	l.logger.Info(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

func (l *Logger) Verbose() bool {
	return l.logger.Core().Enabled(zap.DebugLevel)
}
