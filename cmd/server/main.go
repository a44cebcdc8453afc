package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/afero"
	"go.uber.org/zap"

	"ynvbites/internal/commons"
	"ynvbites/internal/config"
	"ynvbites/internal/contact"
	"ynvbites/internal/customer"
	"ynvbites/internal/infrastructure/logger"
	"ynvbites/internal/infrastructure/storage"
	"ynvbites/internal/order"
	"ynvbites/internal/product"
	"ynvbites/internal/server"
	"ynvbites/internal/stats"
	"ynvbites/internal/web"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, relying on environment variables")
	}

	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	zapLogger, err := logger.New(cfg.Log.Level)
	if err != nil {
		log.Fatalf("creating logger: %v", err)
	}
	defer zapLogger.Sync()

	store := storage.New(afero.NewOsFs(), cfg.Storage.DataFile, zapLogger)
	if _, err := store.EnsureSeeded(storage.SeedDocument()); err != nil {
		zapLogger.Fatal("initializing data file", zap.Error(err))
	}
	zapLogger.Info("data file ready", zap.String("path", cfg.Storage.DataFile))

	webCtrl, err := web.NewController(store, zapLogger)
	if err != nil {
		zapLogger.Fatal("initializing web views", zap.Error(err))
	}

	metrics := server.NewMetrics()
	router := server.NewRouter(server.Controllers{
		Customers: customer.NewModule(store, zapLogger),
		Orders:    order.NewModule(store, zapLogger),
		Products:  product.NewModule(store, zapLogger),
		Contacts:  contact.NewModule(store, zapLogger),
		Stats:     stats.NewController(store, zapLogger),
		Web:       webCtrl,
	}, metrics, zapLogger)

	srv := server.New(cfg.Server.Port, router, zapLogger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Start(); err != nil {
			zapLogger.Fatal("server error", zap.Error(err))
		}
	}()

	<-quit
	zapLogger.Info("received shutdown signal")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Fatal("server shutdown failed", zap.Error(err))
	}

	zapLogger.Info("server stopped gracefully")
}

func loadConfig() (*config.Config, error) {
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		return commons.LoadConfig(path)
	}
	return config.Load()
}
