package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"log/slog"
	"os"
	"os/signal"

	"go.opentelemetry.io/contrib/bridges/otelslog"

	"staticd/filesystem"
	"staticd/http"
	"staticd/telemetry"
)

func main() {
	if err := run(context.Background()); err != nil {
		log.Fatalln(err)
	}
}

func run(ctx context.Context) error {
	root := flag.String("root", "", "web root directory to serve")
	addr := flag.String("addr", "0.0.0.0:8080", "listen address")
	enableTelemetry := flag.Bool("telemetry", false,
		"export traces, metrics and logs over OTLP (configured via OTEL_* env)")
	flag.Parse()

	if *root == "" {
		return errors.New("missing -root: a web root directory is required")
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	if *enableTelemetry {
		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			return err
		}
		defer func() {
			if err := shutdown(context.Background()); err != nil {
				logger.Error("telemetry shutdown", "error", err)
			}
		}()
		logger = otelslog.NewLogger("staticd")
	}

	webRoot, err := filesystem.NewRoot(*root)
	if err != nil {
		return err
	}

	server, err := http.NewServer(webRoot, logger)
	if err != nil {
		return err
	}

	serverErrCh := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", *addr, "root", webRoot.Dir())
		serverErrCh <- server.ListenAndServe(ctx, *addr)
	}()

	select {
	case err := <-serverErrCh:
		return err
	case <-ctx.Done():
		stop()
	}
	return nil
}
