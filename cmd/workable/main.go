// Package main is the entry point for the workable CLI.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"workable/internal/api"
	"workable/internal/cli"
	"workable/internal/commands"
	"workable/internal/config"
	"workable/internal/logger"
	"workable/internal/service"
)

func main() {
	// Create context that cancels on interrupt
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	// Create service factory
	factory := func(ctx context.Context, cfg *config.Config) (service.Service, error) {
		log := logger.Discard()
		if cfg.Debug {
			log = logger.Setup(os.Stderr)
		}
		return api.New(cfg, log), nil
	}

	// Create dispatcher
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, factory)

	// Run and exit with code
	code := dispatcher.Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	os.Exit(code)
}
