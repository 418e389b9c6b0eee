package database

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"walletboard/internal/config"
	"walletboard/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DB is the gorm handle shared by the repositories.
type DB struct {
	*gorm.DB
}

// fallbackIndexes mirror the partial indexes of db/migrations for schemas built by AutoMigrate.
var fallbackIndexes = []string{
	"CREATE INDEX IF NOT EXISTS idx_accounts_active_wallet ON accounts(is_active) WHERE wallet_address IS NOT NULL",
	"CREATE INDEX IF NOT EXISTS idx_accounts_public_portfolio ON accounts(portfolio_value DESC) WHERE is_public = true",
	"CREATE INDEX IF NOT EXISTS idx_posts_likes_created ON posts(likes_count DESC, created_at DESC)",
	"CREATE INDEX IF NOT EXISTS idx_audit_logs_created_at ON audit_logs(created_at)",
}

// Open connects to postgres and checks the pool answers within ctx.
func Open(ctx context.Context, cfg *config.DatabaseConfig, log *slog.Logger) (*DB, error) {
	gormDB, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger: logger.NewSlogLogger(log, logger.Config{
			SlowThreshold:             500 * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.MaxConnections)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return &DB{DB: gormDB}, nil
}

// AutoMigrate builds the schema from the models. Used by tests and when the SQL migrations cannot run.
func (db *DB) AutoMigrate() error {
	return db.DB.AutoMigrate(
		&models.Account{},
		&models.Post{},
		&models.PostLike{},
		&models.AuditLog{},
		&models.SnsLink{},
		&models.LinkedAddress{},
	)
}

func (db *DB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Initialize opens the database and brings the schema up to date. With AutoMigrate set the
// versioned migrations run first and gorm's AutoMigrate only covers a failed runner.
func Initialize(ctx context.Context, cfg *config.DatabaseConfig, log *slog.Logger) (*DB, error) {
	db, err := Open(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	if !cfg.AutoMigrate {
		log.Info("schema migration disabled")
		return db, nil
	}

	sqlDB, err := db.DB.DB()
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	runner := NewMigrationRunner(sqlDB, log,
		WithMigrationsPath(cfg.MigrationsPath),
		WithSeedsPath(cfg.SeedsPath),
	)
	if err := runner.WaitForDatabase(ctx); err != nil {
		db.Close()
		return nil, err
	}

	if version, err := runner.Up(); err == nil {
		log.Info("schema migrated", slog.Uint64("version", uint64(version)))
	} else {
		log.Warn("migration runner failed, falling back to AutoMigrate", slog.String("error", err.Error()))
		if err := db.AutoMigrate(); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to auto-migrate schema: %w", err)
		}
		for _, stmt := range fallbackIndexes {
			if err := db.Exec(stmt).Error; err != nil {
				log.Warn("failed to create index", slog.String("statement", stmt), slog.String("error", err.Error()))
			}
		}
	}

	if cfg.Seed {
		applied, err := runner.Seed(ctx)
		if err != nil {
			log.Warn("seeding aborted", slog.String("error", err.Error()))
		} else {
			log.Info("seed files applied", slog.Int("count", applied))
		}
	}

	return db, nil
}
