// main.go
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"movie-review/cmd"
	"movie-review/internal/data/catalog"
	"movie-review/internal/data/repository"
	"movie-review/internal/wire"
	"movie-review/pkg/database"
	"movie-review/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig(".env")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.Name, config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.String("db_driver", config.Database.Driver),
		zap.Bool("debug", config.App.Debug),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Connect to the configured store
	repos, closeStore, err := openRepository(ctx, config, logger)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer closeStore()

	logger.Info("Database connected successfully", zap.String("driver", config.Database.Driver))

	// Wire all dependencies
	app := wire.Wiring(repos, catalog.NewBuiltin(), config, logger)
	defer app.Close()

	if err := cmd.APIServer(ctx, app.Router, config.App.Port, logger); err != nil {
		logger.Error("Server error", zap.Error(err))
	}
}

// openRepository connects to the store selected by DB_DRIVER and returns a
// func that releases it.
func openRepository(ctx context.Context, config *utils.Config, logger *zap.Logger) (*repository.Repository, func(), error) {
	switch config.Database.Driver {
	case utils.DriverMongo:
		mongo, err := database.InitMongo(ctx, config.Database)
		if err != nil {
			return nil, nil, err
		}
		closeMongo := func() {
			closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := mongo.Close(closeCtx); err != nil {
				logger.Warn("Failed to disconnect mongo", zap.Error(err))
			}
		}

		repos, err := repository.NewMongoRepository(ctx, mongo.DB, logger)
		if err != nil {
			closeMongo()
			return nil, nil, err
		}
		return repos, closeMongo, nil

	case utils.DriverPostgres:
		db, err := database.InitDB(ctx, config.Database)
		if err != nil {
			return nil, nil, err
		}

		repos, err := repository.NewPostgresRepository(ctx, db, logger)
		if err != nil {
			db.Close()
			return nil, nil, err
		}
		return repos, db.Close, nil

	case utils.DriverMemory:
		logger.Warn("Using in-memory store; data is lost on restart")
		return repository.NewMemoryRepository(), func() {}, nil

	default:
		return nil, nil, fmt.Errorf("unsupported DB_DRIVER %q", config.Database.Driver)
	}
}
