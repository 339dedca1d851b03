// Command filestored serves a directory-backed FileStore over Connect RPC.
// Remote clients use remote.Client (or any Connect/gRPC client speaking the
// FileService procedures) as their save/read handlers.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/tailored-agentic-units/filestore/observability"
	"github.com/tailored-agentic-units/filestore/remote"
	"github.com/tailored-agentic-units/filestore/store"
)

func main() {
	var (
		configFile = flag.String("config", "", "Path to daemon config JSON file")
		dir        = flag.String("dir", "", "Backing directory (overrides config)")
		addr       = flag.String("addr", "", "Listen address (overrides config)")
		verbose    = flag.Bool("verbose", false, "Enable verbose logging to stderr")
	)
	flag.Parse()

	cfg := DefaultConfig()
	if *configFile != "" {
		loaded, err := LoadConfig(*configFile)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		cfg = *loaded
	}
	if *dir != "" {
		cfg.Store.Directory = *dir
	}
	if *addr != "" {
		cfg.Addr = *addr
	}

	if cfg.Store.Directory == "" {
		fmt.Fprintln(os.Stderr, "Usage: filestored -dir <path> [-addr :8640]")
		flag.PrintDefaults()
		os.Exit(1)
	}

	logLevel := slog.LevelInfo
	if *verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))

	var observer observability.Observer = observability.NewSlogObserver(logger)
	if !*verbose {
		// Suppress per-file events; batch and error events still flow.
		observer = observability.NewFilterObserver(observer, observability.LevelInfo)
	}

	fs := store.NewStore(&cfg.Store, store.WithObserver(observer))
	service := remote.NewService(fs)

	server := &http.Server{
		Addr:    cfg.Addr,
		Handler: h2c.NewHandler(service.Handler(), &http2.Server{}),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("shutdown failed", "error", err)
		}
	}()

	logger.Info("filestored listening", "addr", cfg.Addr, "directory", cfg.Store.Directory)

	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("Server failed: %v", err)
	}
}
