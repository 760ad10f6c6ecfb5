package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ggarcia209/go-ses-webhooks/godispatch"
	"github.com/ggarcia209/go-ses-webhooks/gohook"
	"github.com/ggarcia209/go-ses-webhooks/goingest"
	"github.com/ggarcia209/go-ses-webhooks/goserver"
	"github.com/ggarcia209/go-ses-webhooks/goses"
	"github.com/ggarcia209/go-ses-webhooks/gosqs"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the YAML config file")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	if err := run(*configPath, logger); err != nil {
		logger.Error("fatal", "error", err)
		os.Exit(1)
	}
}

func run(configPath string, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := gohook.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("gohook.LoadConfig: %w", err)
	}

	sink, cleanup := buildSink(cfg, logger)
	defer cleanup()

	processor := goingest.NewProcessor(cfg, sink)
	handler := goserver.NewHandler(processor, logger)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:           goserver.NewRouter(handler, cfg),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 2)
	go func() {
		logger.Info("http server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("srv.ListenAndServe: %w", err)
		}
	}()

	if cfg.SQSQueueURL != "" {
		awsCfg, err := gohook.LoadAwsConfig(ctx, cfg.AWSProfile)
		if err != nil {
			return fmt.Errorf("gohook.LoadAwsConfig: %w", err)
		}
		poller := gosqs.NewPoller(awsCfg, cfg.SQSQueueURL, cfg.SQSWaitSeconds, processor, logger)
		go func() {
			logger.Info("sqs poller started", "queue", cfg.SQSQueueURL)
			if err := poller.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				errCh <- fmt.Errorf("poller.Run: %w", err)
			}
		}()
	}

	select {
	case <-ctx.Done():
		logger.Info("shutting down")
	case err := <-errCh:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("srv.Shutdown: %w", err)
	}
	return nil
}

// buildSink assembles the dispatch chain: Kafka producer when brokers
// are configured (a logging sink otherwise), wrapped in the redis
// deduper when an address is configured.
func buildSink(cfg gohook.Config, logger *slog.Logger) (godispatch.Sink, func()) {
	cleanup := func() {}

	var sink godispatch.Sink
	if len(cfg.KafkaBrokers) > 0 {
		ks := godispatch.NewKafkaSink(cfg.KafkaBrokers, cfg.KafkaTopic)
		cleanup = func() { _ = ks.Close() }
		sink = ks
	} else {
		sink = godispatch.SinkFunc(func(ctx context.Context, evs []goses.TrackingEvent) error {
			for _, ev := range evs {
				logger.Info("tracking event",
					"event_type", ev.EventType,
					"event_id", ev.EventID,
					"message_id", ev.MessageID,
					"recipient", ev.Recipient,
				)
			}
			return nil
		})
	}

	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		prev := cleanup
		cleanup = func() {
			_ = rdb.Close()
			prev()
		}
		sink = godispatch.NewDeduper(sink, rdb, cfg.DedupTTL)
	}

	return sink, cleanup
}
