// nanowatch subscribes to a node's WebSocket topics and logs every event,
// optionally probing the RPC endpoint on startup. It doubles as a living
// example of wiring the nano/rpc and nano/ws clients together.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"nano/internal/config"
	"nano/rpc"
	"nano/ws"
)

func main() {
	configPath := flag.String("config", "config.json", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		// Basic logger for startup errors
		log := zerolog.New(os.Stderr).With().Timestamp().Logger()
		log.Fatal().Err(err).Msg("failed to load config")
	}

	logger := setupLogger(cfg.LogLevel)
	logger.Info().
		Str("config", *configPath).
		Str("rpcUrl", cfg.RPCURL).
		Str("wsUrl", cfg.WSURL).
		Int("subscriptions", len(cfg.Subscriptions)).
		Msg("starting nanowatch")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.Probe {
		probe(ctx, cfg.RPCURL, logger)
	}

	client := ws.New(cfg.WSURL,
		ws.WithLogger(logger),
		ws.WithAckTimeout(time.Duration(cfg.AckTimeout)*time.Millisecond),
		ws.WithReconnectInterval(time.Duration(cfg.ReconnectInterval)*time.Millisecond),
	)
	if err := client.Connect(ctx); err != nil {
		logger.Fatal().Err(err).Msg("failed to connect")
	}

	for _, sub := range cfg.Subscriptions {
		topic := ws.Topic(sub.Topic)
		opts := &ws.SubscribeOptions{Ack: sub.Ack, Options: sub.Options}
		err := client.Subscribe(ctx, topic, logEvent(logger, topic), opts)
		if err != nil {
			logger.Fatal().Str("topic", sub.Topic).Err(err).Msg("failed to subscribe")
		}
		logger.Info().Str("topic", sub.Topic).Msg("watching topic")
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	logger.Info().Str("signal", sig.String()).Msg("received shutdown signal")
	client.Close()
}

// probe issues a couple of read-only RPC calls so a misconfigured node URL
// shows up immediately rather than as silence on the socket.
func probe(ctx context.Context, url string, logger zerolog.Logger) {
	probeCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client := rpc.New(url, rpc.WithLogger(logger))

	version, err := client.Version(probeCtx)
	if err != nil {
		logger.Warn().Err(err).Msg("version probe failed")
		return
	}
	count, err := client.BlockCount(probeCtx)
	if err != nil {
		logger.Warn().Err(err).Msg("block_count probe failed")
		return
	}

	logger.Info().
		Str("vendor", version.NodeVendor).
		Str("network", version.Network).
		Uint64("blocks", uint64(count.Count)).
		Uint64("cemented", uint64(count.Cemented)).
		Msg("node probe ok")

	telemetry, err := client.Telemetry(probeCtx)
	if err != nil {
		logger.Warn().Err(err).Msg("telemetry probe failed")
		return
	}
	logger.Info().
		Uint64("peers", uint64(telemetry.PeerCount)).
		Uint64("uptime", uint64(telemetry.Uptime)).
		Msg("network telemetry")
}

func logEvent(logger zerolog.Logger, topic ws.Topic) ws.Handler {
	return func(payload any) {
		logger.Info().
			Str("topic", string(topic)).
			Interface("payload", payload).
			Msg("event")
	}
}

// setupLogger configures the zerolog logger
func setupLogger(level string) zerolog.Logger {
	var logLevel zerolog.Level
	switch level {
	case "debug":
		logLevel = zerolog.DebugLevel
	case "info":
		logLevel = zerolog.InfoLevel
	case "warn":
		logLevel = zerolog.WarnLevel
	case "error":
		logLevel = zerolog.ErrorLevel
	default:
		logLevel = zerolog.InfoLevel
	}

	zerolog.SetGlobalLevel(logLevel)

	output := zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: time.RFC3339,
	}

	return zerolog.New(output).With().Timestamp().Logger()
}
