package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/HerbHall/specmatch/internal/catalog"
	"github.com/HerbHall/specmatch/internal/server"
	"go.uber.org/zap"
)

func runServe(args []string) {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	configPath := fs.String("config", "", "path to configuration file")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	a, err := bootstrap(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "startup failed: %v\n", err)
		os.Exit(1)
	}
	logger := a.logger
	defer func() { _ = logger.Sync() }()

	logger.Info("SpecMatch server starting")

	s := a.settings.Server
	addr := s.Addr()
	srv := server.New(addr, server.Options{
		ReadTimeout:  s.ReadTimeout,
		WriteTimeout: s.WriteTimeout,
		RateLimit:    s.RateLimit.RPS,
		RateBurst:    s.RateLimit.Burst,
	}, logger, catalog.NewHandler(a.engine, logger))

	// Start server in background
	go func() {
		if err := srv.Start(); err != nil {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	logger.Info("SpecMatch server ready",
		zap.String("addr", addr),
		zap.Int("products", a.engine.Catalog().Len()),
	)

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh

	logger.Info("received shutdown signal", zap.String("signal", sig.String()))

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", zap.Error(err))
	}

	logger.Info("SpecMatch server stopped")
}
