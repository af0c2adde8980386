package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"wine_blog_writer/config"
	"wine_blog_writer/images"
	"wine_blog_writer/server"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	Long: `Serve the JSON API used by the writing UI: generation, revision,
summaries, previews, image search and the model price list.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (overrides server_addr)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	p, err := buildPipeline(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("build pipeline: %w", err)
	}

	searcher, closeCache := buildImageSearcher(ctx, cfg)
	defer closeCache()

	srv, err := server.New(server.Options{
		Agent:          p.agent,
		Editor:         p.editor,
		Summarizer:     p.summarizer,
		Images:         searcher,
		Logger:         logger,
		Provider:       cfg.ProviderName(),
		RequestTimeout: cfg.RequestTimeout.Std(),
	})
	if err != nil {
		return err
	}

	listen := cfg.ServerAddr
	if serveAddr != "" {
		listen = serveAddr
	}
	httpSrv := &http.Server{
		Addr:              listen,
		Handler:           srv,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting web server",
			zap.String("addr", listen),
			zap.String("provider", cfg.LLM.Provider),
			zap.String("default_model", p.agent.Catalog().DefaultModel()),
		)
		errCh <- httpSrv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		logger.Info("received shutdown signal")
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	logger.Info("server stopped")
	return nil
}

// buildImageSearcher attaches the redis cache when one is configured and reachable.
func buildImageSearcher(ctx context.Context, cfg config.Config) (*images.Searcher, func()) {
	scfg := images.Config{AccessKey: cfg.UnsplashAccessKey, Logger: logger}
	if cfg.UnsplashAccessKey == "" {
		logger.Info("UNSPLASH_ACCESS_KEY not set, image search serves default images")
	}
	if cfg.Redis.Addr == "" {
		return images.NewSearcher(scfg), func() {}
	}

	cache := images.NewRedisCache(images.RedisOptions{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		TTL:      cfg.Redis.TTL.Std(),
	}, logger)
	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := cache.Ping(pingCtx); err != nil {
		logger.Warn("redis unavailable, image cache disabled", zap.String("addr", cfg.Redis.Addr), zap.Error(err))
		_ = cache.Close()
		return images.NewSearcher(scfg), func() {}
	}
	scfg.Cache = cache
	return images.NewSearcher(scfg), func() { _ = cache.Close() }
}
