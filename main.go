package main

import (
	"log"

	"cinema-platform/cmd"
	"cinema-platform/internal/data/repository"
	"cinema-platform/internal/wire"
	"cinema-platform/pkg/cache"
	"cinema-platform/pkg/database"
	"cinema-platform/pkg/payment"
	"cinema-platform/pkg/queue"
	"cinema-platform/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	rdb, err := cache.InitRedis(config, logger)
	if err != nil {
		logger.Fatal("Failed to connect to redis", zap.Error(err))
	}

	events, err := queue.InitQueue(config, logger)
	if err != nil {
		logger.Fatal("Failed to connect to message broker", zap.Error(err))
	}
	defer events.Close()

	payments := payment.NewClient(config, logger)

	repos := repository.NewRepository(db, logger)

	app := wire.Wiring(repos, config, rdb, payments, events, logger)

	cmd.APIServer(app.Router, config.App.Port, logger)
}
