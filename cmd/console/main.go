package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"edugraph/internal/console"
	"edugraph/internal/graph"
	"edugraph/internal/seed"
	"edugraph/pkg/config"
	"edugraph/pkg/logger"
)

func main() {
	// Load configuration first so the logger knows the environment.
	// Config errors are fatal at startup.
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Env); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Sync()

	log := logger.Get()
	log.Info("Starting learning graph console...")

	ctx := context.Background()

	// Connection errors are fatal: the menu never runs without a
	// verified handle.
	driver, err := graph.NewDriver(ctx, cfg)
	if err != nil {
		log.Fatal("Failed to connect to Neo4j", zap.Error(err))
	}
	defer driver.Close(context.Background())

	repo := graph.NewRepository(driver)
	loader := seed.NewLoader(repo)

	menu := console.NewMenu(repo, loader, os.Stdin, os.Stdout)
	menu.Run(ctx)

	log.Info("Console exited")
}
