package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron"

	"github.com/jellevanwees/individuele-opdracht-Jelle-van-Wees/src/config"
	"github.com/jellevanwees/individuele-opdracht-Jelle-van-Wees/src/dataset"
	"github.com/jellevanwees/individuele-opdracht-Jelle-van-Wees/src/server"
	"github.com/jellevanwees/individuele-opdracht-Jelle-van-Wees/src/storage"
)

func main() {
	configDir := flag.String("config", "./config", "directory holding config.json")
	flag.Parse()

	cfg, err := config.LoadConfig(*configDir, "config.json")
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	logger, err := storage.NewLogger(cfg.LogName)
	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}

	store := dataset.NewStore(cfg.FlightsPath(), cfg.AirlinesPath(), cfg.AirportsPath(), cfg.RowLimit, logger)
	if err := store.Reload(); err != nil {
		logger.Fatal("Failed to load dataset: " + err.Error())
		log.Fatal("Failed to load dataset:", err)
	}

	if err := store.Watch(); err != nil {
		logger.Warning("File watching unavailable, relying on the poll interval: " + err.Error())
	}
	defer store.Close()

	c := cron.New()
	interval := time.Duration(cfg.PollInterval).String()
	cronSpec := fmt.Sprintf("@every %s", interval)
	err = c.AddFunc(cronSpec, func() {
		store.CheckStale()
		if err := logger.CheckRotate(cfg.LogMaxSize); err != nil {
			logger.Error("Log rotation failed: " + err.Error())
		}
	})
	if err != nil {
		logger.Error("Failed to schedule maintenance task: " + err.Error())
		return
	}
	c.Start()
	defer c.Stop()

	srv := server.New(store, logger)
	router := srv.Router("templates/*.html")

	go func() {
		logger.Info(fmt.Sprintf("Dashboard listening on %s (poll interval: %s)", cfg.Listen, interval))
		if err := router.Run(cfg.Listen); err != nil {
			logger.Fatal("Server stopped: " + err.Error())
			log.Fatal("Server stopped:", err)
		}
	}()

	waitForShutdown(logger)
}

func waitForShutdown(logger *storage.Logger) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigChan
	logger.Info("Received signal: " + sig.String() + ", shutting down...")
	logger.Close()
	os.Exit(0)
}
