package main

import (
	"context"
	"errors"
	"net"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"spendmap/internal/cli"
	"spendmap/internal/geocode"
	appserver "spendmap/internal/http"
	"spendmap/internal/repository"
	"spendmap/internal/services"
	"spendmap/internal/session"
)

func main() {
	logger := cli.SetupLogger()
	cli.LoadEnvFile()
	cfg := cli.LoadAndValidateConfig(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store := cli.OpenStore(ctx, logger, cfg.SQLiteDBPath)
	defer store.Close()
	repo := repository.New(ctx, store)

	resolver := geocode.NewCached(
		geocode.NewClient(cfg.GeocodeBaseURL, cfg.GeocodeTimeout),
		cfg.GeocodeCacheSize,
		cfg.GeocodeCacheTTL,
	)
	capture := services.NewCaptureService(repo, resolver)
	sess := session.New()

	srv := appserver.NewServer(net.JoinHostPort("", cfg.Port), repo, capture, sess, cfg.LocateTimeout)
	srv.ReadTimeout = 10 * time.Second
	srv.WriteTimeout = 30 * time.Second
	srv.IdleTimeout = 120 * time.Second

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("Server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		ticker := time.NewTicker(10 * time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if removed := resolver.CleanExpired(); removed > 0 {
					logger.Info("Geocode cache cleaned", "removed", removed)
				}
			case <-gctx.Done():
				return nil
			}
		}
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("Server exited with error", "error", err)
		os.Exit(1)
	}
	logger.Info("Server stopped")
}
