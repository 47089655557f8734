package database

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	"student-api/internal/config"
	"student-api/internal/models"

	"github.com/pressly/goose/v3"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:embed migrations/*/*.sql
var migrationsFS embed.FS

// AutoMigrate creates or updates the schema from the gorm models.
func AutoMigrate(db *gorm.DB) error {
	modelsToMigrate := []interface{}{
		&models.Subject{},
		&models.Topic{},
		&models.Student{},
		&models.CompletedTopic{},
		&models.StudentSubject{},
	}

	if err := db.AutoMigrate(modelsToMigrate...); err != nil {
		return fmt.Errorf("failed to migrate models: %w", err)
	}
	return nil
}

// DialectSQLite selects the SQLite migrations, used for throwaway test databases.
const DialectSQLite = "sqlite3"

// Migrator applies the versioned SQL migrations embedded for the configured driver.
type Migrator struct {
	db  *sql.DB
	dir string
	log *zap.Logger
}

func NewMigrator(db *gorm.DB, driver string, log *zap.Logger) (*Migrator, error) {
	switch driver {
	case config.DriverPostgres, config.DriverMySQL, DialectSQLite:
	default:
		return nil, fmt.Errorf("no migrations for driver %q", driver)
	}

	goose.SetBaseFS(migrationsFS)
	goose.SetLogger(zap.NewStdLog(log.Named("goose")))
	if err := goose.SetDialect(driver); err != nil {
		return nil, fmt.Errorf("set goose dialect: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	return &Migrator{db: sqlDB, dir: "migrations/" + driver, log: log}, nil
}

func (m *Migrator) Up(ctx context.Context) error {
	m.log.Info("Applying database migrations", zap.String("dir", m.dir))
	if err := goose.UpContext(ctx, m.db, m.dir); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	m.log.Info("Migrations applied successfully")
	return nil
}

func (m *Migrator) Down(ctx context.Context) error {
	if err := goose.DownContext(ctx, m.db, m.dir); err != nil {
		return fmt.Errorf("roll back migration: %w", err)
	}
	return nil
}

func (m *Migrator) Status(ctx context.Context) error {
	if err := goose.StatusContext(ctx, m.db, m.dir); err != nil {
		return fmt.Errorf("migration status: %w", err)
	}
	return nil
}

func (m *Migrator) Version(ctx context.Context) (int64, error) {
	version, err := goose.GetDBVersionContext(ctx, m.db)
	if err != nil {
		return 0, fmt.Errorf("get version: %w", err)
	}
	return version, nil
}

// Prepare brings the schema up to date according to the configured migration mode.
func Prepare(ctx context.Context, db *gorm.DB, cfg config.DatabaseConfig, log *zap.Logger) error {
	switch cfg.Migrate {
	case config.MigrateAuto:
		log.Info("Running GORM auto-migration")
		return AutoMigrate(db)
	case config.MigrateGoose:
		migrator, err := NewMigrator(db, cfg.Driver, log)
		if err != nil {
			return err
		}
		return migrator.Up(ctx)
	default:
		return nil
	}
}
