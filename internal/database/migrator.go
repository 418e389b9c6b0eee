package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

var ErrMigrationsNotFound = errors.New("migrations directory not found")

// MigrationRunner applies the versioned schema under db/migrations and the optional seed files.
type MigrationRunner struct {
	db             *sql.DB
	logger         *slog.Logger
	migrationsPath string
	seedsPath      string
	pingAttempts   int
	pingInterval   time.Duration
}

type MigrationOption func(*MigrationRunner)

func WithMigrationsPath(path string) MigrationOption {
	return func(mr *MigrationRunner) {
		if path != "" {
			mr.migrationsPath = path
		}
	}
}

func WithSeedsPath(path string) MigrationOption {
	return func(mr *MigrationRunner) {
		if path != "" {
			mr.seedsPath = path
		}
	}
}

// WithReadiness sets how many pings WaitForDatabase makes and how long it sleeps between them.
func WithReadiness(attempts int, interval time.Duration) MigrationOption {
	return func(mr *MigrationRunner) {
		if attempts > 0 {
			mr.pingAttempts = attempts
		}
		mr.pingInterval = interval
	}
}

func NewMigrationRunner(db *sql.DB, logger *slog.Logger, opts ...MigrationOption) *MigrationRunner {
	mr := &MigrationRunner{
		db:             db,
		logger:         logger,
		migrationsPath: "db/migrations",
		seedsPath:      "db/seeds",
		pingAttempts:   30,
		pingInterval:   2 * time.Second,
	}
	for _, opt := range opts {
		opt(mr)
	}
	return mr
}

func (mr *MigrationRunner) WaitForDatabase(ctx context.Context) error {
	var lastErr error
	for attempt := 1; attempt <= mr.pingAttempts; attempt++ {
		if lastErr = mr.db.PingContext(ctx); lastErr == nil {
			return nil
		}

		mr.logger.Warn("database not ready",
			slog.Int("attempt", attempt),
			slog.Int("max_attempts", mr.pingAttempts),
			slog.String("error", lastErr.Error()),
		)

		if attempt == mr.pingAttempts {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(mr.pingInterval):
		}
	}

	return fmt.Errorf("database not ready after %d attempts: %w", mr.pingAttempts, lastErr)
}

func (mr *MigrationRunner) open() (*migrate.Migrate, error) {
	if _, err := os.Stat(mr.migrationsPath); os.IsNotExist(err) {
		return nil, ErrMigrationsNotFound
	}

	absPath, err := filepath.Abs(mr.migrationsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve migrations path: %w", err)
	}

	driver, err := postgres.WithInstance(mr.db, &postgres.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to create postgres migration driver: %w", err)
	}

	return migrate.NewWithDatabaseInstance("file://"+absPath, "postgres", driver)
}

// Up applies every pending migration and returns the resulting schema version.
// A dirty version left by a crashed run is forced clean before retrying.
func (mr *MigrationRunner) Up() (uint, error) {
	m, err := mr.open()
	if err != nil {
		return 0, err
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return 0, fmt.Errorf("failed to read schema version: %w", err)
	}
	if dirty {
		mr.logger.Warn("schema is dirty, forcing version", slog.Uint64("version", uint64(version)))
		if err := m.Force(int(version)); err != nil {
			return 0, fmt.Errorf("failed to force schema version %d: %w", version, err)
		}
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return 0, fmt.Errorf("migration failed: %w", err)
	}

	version, _, err = m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return 0, fmt.Errorf("failed to read schema version: %w", err)
	}
	return version, nil
}

// Status reports the applied schema version.
func (mr *MigrationRunner) Status() (version uint, dirty bool, err error) {
	m, err := mr.open()
	if err != nil {
		return 0, false, err
	}
	return m.Version()
}

// Seed executes *.sql under the seeds path in name order and returns how many applied.
// A file that fails to execute is logged and skipped; one that cannot be read aborts.
func (mr *MigrationRunner) Seed(ctx context.Context) (int, error) {
	files, err := filepath.Glob(filepath.Join(mr.seedsPath, "*.sql"))
	if err != nil {
		return 0, fmt.Errorf("failed to list seed files: %w", err)
	}
	sort.Strings(files)

	applied := 0
	for _, file := range files {
		content, err := os.ReadFile(file)
		if err != nil {
			return applied, fmt.Errorf("failed to read seed file %s: %w", file, err)
		}

		if _, err := mr.db.ExecContext(ctx, string(content)); err != nil {
			mr.logger.Warn("seed file failed",
				slog.String("file", filepath.Base(file)),
				slog.String("error", err.Error()),
			)
			continue
		}
		applied++
	}
	return applied, nil
}
