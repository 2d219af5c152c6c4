package server

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"PolicyTone/internal/handler/api"
	"PolicyTone/internal/usecase"
	"PolicyTone/pkg/cache"
	pkgch "PolicyTone/pkg/clickhouse"
	"PolicyTone/pkg/config"
	xhttp "PolicyTone/pkg/http"
	applogger "PolicyTone/pkg/logger"
)

// App encapsulates the entire application lifecycle.
type App struct {
	cfg        *config.Config
	svc        *usecase.ToneService
	ingestor   *usecase.MinutesIngestor
	proc       *usecase.DocumentProcessor
	chClient   *pkgch.Client
	cacheSvc   cache.Service
	l          *applogger.Logger
	httpServer *xhttp.Server
}

// New creates a new App instance with all dependencies.
func New(
	cfg *config.Config,
	svc *usecase.ToneService,
	ingestor *usecase.MinutesIngestor,
	proc *usecase.DocumentProcessor,
	chClient *pkgch.Client,
	cacheSvc cache.Service,
	l *applogger.Logger,
) *App {
	return &App{
		cfg:      cfg,
		svc:      svc,
		ingestor: ingestor,
		proc:     proc,
		chClient: chClient,
		cacheSvc: cacheSvc,
		l:        l,
	}
}

// Ingest crawls the configured years of minutes into the transcript
// directory before serving.
func (a *App) Ingest(ctx context.Context) error {
	n, err := a.ingestor.Ingest(ctx, a.cfg.BOK.Years)
	if err != nil {
		return err
	}
	a.l.Info("ingestion finished", applogger.Int("transcripts", n))
	return nil
}

// Run starts the application and blocks until interrupted.
func (a *App) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	handler := api.NewToneEchoHandler(a.l, a.svc)
	a.httpServer = xhttp.NewServer(handler,
		xhttp.WithPort(a.cfg.Server.Port),
		xhttp.WithTimeouts(a.cfg.Server.ReadTimeout, a.cfg.Server.WriteTimeout, a.cfg.Server.ShutdownTimeout),
		xhttp.WithRequestLogger(a.l),
	)

	if err := a.httpServer.Start(); err != nil {
		a.l.Error("http server start error", applogger.Error(err))
		return err
	}
	a.l.Info("serving",
		applogger.Int("port", a.cfg.Server.Port),
		applogger.String("backend", a.cfg.Backend.Type),
	)

	// Wait for interrupt
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	a.l.Info("shutdown signal received")
	return a.shutdown(ctx)
}

// shutdown gracefully stops all services.
func (a *App) shutdown(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, a.cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := a.httpServer.Stop(shutdownCtx); err != nil {
		a.l.Error("http shutdown error", applogger.Error(err))
	}

	// Close backend resources (publisher/storage)
	if a.proc != nil {
		a.proc.Close()
	}

	if a.chClient != nil {
		if err := a.chClient.Close(); err != nil {
			a.l.Warn("clickhouse close error", applogger.Error(err))
		}
	}

	if a.cacheSvc != nil {
		if err := a.cacheSvc.Close(); err != nil {
			a.l.Warn("cache close error", applogger.Error(err))
		}
	}

	a.l.Info("shutdown complete")
	return nil
}
