package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"auction-engine/internal/config"
	"auction-engine/internal/events"
	"auction-engine/internal/marketplace"
	"auction-engine/internal/repository"
	"auction-engine/internal/server"
	"auction-engine/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		utils.Fatal("failed to load config", map[string]any{"error": err.Error()})
	}
	if err := utils.SetLevel(cfg.LogLevel); err != nil {
		utils.Fatal("invalid log level", map[string]any{"error": err.Error()})
	}
	gin.SetMode(cfg.GinMode)

	repo := repository.NewMemoryRepo()
	hub := events.NewHub(cfg.EventBuffer)
	directory := marketplace.NewDirectory(repo,
		marketplace.WithPublisher(hub),
		marketplace.WithInitialBalance(cfg.InitialBalance),
	)

	if cfg.SeedDemoData {
		if err := directory.SeedDemoData(); err != nil {
			utils.Fatal("failed to seed demo data", map[string]any{"error": err.Error()})
		}
	}

	router := server.SetupRouter(directory, hub, cfg.TopBiddersLimit)
	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		utils.Info("starting auction server", map[string]any{"addr": cfg.HTTPAddr})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	if cfg.SweepInterval > 0 {
		g.Go(func() error {
			return directory.RunSweeper(ctx, cfg.SweepInterval)
		})
	}

	g.Go(func() error {
		<-ctx.Done()
		utils.Info("shutting down auction server", nil)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		utils.Fatal("server stopped with error", map[string]any{"error": err.Error()})
	}
}
