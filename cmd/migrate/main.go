package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"student-api/internal/config"
	"student-api/internal/database"
	"student-api/internal/logger"

	"go.uber.org/zap"
)

const usage = "usage: migrate [up|down|status|version]"

func main() {
	command := "up"
	if len(os.Args) > 1 {
		command = os.Args[1]
	}

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load config: ", err)
	}

	logg, err := logger.New(cfg.Env, cfg.LogLevel)
	if err != nil {
		log.Fatal("Failed to init logger: ", err)
	}
	defer func() { _ = logg.Sync() }()

	if err := run(context.Background(), cfg, logg, command); err != nil {
		logg.Fatal("Migration failed", zap.String("command", command), zap.Error(err))
	}
}

func run(ctx context.Context, cfg *config.Config, logg *zap.Logger, command string) error {
	db, err := database.NewConnection(cfg.Database, logg)
	if err != nil {
		return err
	}
	defer database.Close(db)

	logg.Info("Database connection established")

	migrator, err := database.NewMigrator(db, cfg.Database.Driver, logg)
	if err != nil {
		return err
	}

	switch command {
	case "up":
		return migrator.Up(ctx)
	case "down":
		return migrator.Down(ctx)
	case "status":
		return migrator.Status(ctx)
	case "version":
		version, err := migrator.Version(ctx)
		if err != nil {
			return err
		}
		logg.Info("Current schema version", zap.Int64("version", version))
		return nil
	default:
		return fmt.Errorf("unknown command %q; %s", command, usage)
	}
}
