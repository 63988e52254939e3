package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"kisan/config"
	"kisan/database"
	"kisan/logger"
	"kisan/routers"
)

func main() {
	cfg := config.LoadConfig()

	log, err := logger.Init(cfg.LogMode)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	database.ConnectDb()

	app := routers.NewApp(cfg)

	go func() {
		log.Info("Server is running", "port", cfg.Port, "prefix", cfg.APIPrefix, "driver", cfg.DBDriver)
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Fatal("Server stopped", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Error("Shutdown failed", "error", err)
	}
	if sqlDB, err := database.Database.Db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
