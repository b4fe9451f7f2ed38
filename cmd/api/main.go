package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/qiscet/campusbot/internal/config"
	"github.com/qiscet/campusbot/internal/handler"
	"github.com/qiscet/campusbot/internal/service/ai"
	"github.com/qiscet/campusbot/internal/service/status"
	"github.com/qiscet/campusbot/internal/service/transport"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("warning: failed to load .env file: %v", err)
		log.Println("continuing with system environment variables only")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	// The transportation dataset is required context for every chat
	// request; refuse to start without it.
	transportData, err := transport.Load(cfg.Data.TransportPath)
	if err != nil {
		log.Fatalf("failed to load transportation data: %v", err)
	}
	log.Printf("loaded transportation data from %s (%d bytes)", cfg.Data.TransportPath, len(transportData))

	statusSvc := status.NewService()

	// Client construction failure is not fatal: /status and / keep
	// serving, and /chat short-circuits with a generic server error.
	aiSvc, err := ai.NewService(ctx, cfg.AI, transportData, statusSvc)
	if err != nil {
		log.Printf("warning: failed to initialize Gemini client: %v", err)
		log.Println("chat requests will be rejected until the service is restarted with a working credential")
		aiSvc = nil
	} else {
		log.Printf("Gemini client initialized, model=%s", cfg.AI.Model)
	}

	router := handler.NewRouter(statusSvc, aiSvc)

	startServer(ctx, cfg.Server, router)
}

func startServer(ctx context.Context, serverCfg config.ServerConfig, router http.Handler) {
	srv := &http.Server{
		Addr:              serverCfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("QIS campus bot listening on %s", serverCfg.Addr)
	if err := runServer(ctx, srv); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func runServer(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		err := <-errCh
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
