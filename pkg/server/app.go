package server

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"FinAdvisor/internal/domain/repository"
	"FinAdvisor/internal/usecase"
	pkgch "FinAdvisor/pkg/clickhouse"
	"FinAdvisor/pkg/config"
	xhttp "FinAdvisor/pkg/http"
	applogger "FinAdvisor/pkg/logger"
)

// App encapsulates the application lifecycle: the HTTP surface, the live
// quote collector, and the infrastructure clients that need closing.
type App struct {
	cfg        *config.Config
	l          *applogger.Logger
	handler    xhttp.Handler
	collector  *usecase.QuoteCollector
	publisher  repository.RecommendationPublisher
	chClient   *pkgch.Client
	httpServer *xhttp.Server
}

// New creates a new App instance with all dependencies.
func New(
	cfg *config.Config,
	l *applogger.Logger,
	handler xhttp.Handler,
	collector *usecase.QuoteCollector,
	publisher repository.RecommendationPublisher,
	chClient *pkgch.Client,
) *App {
	return &App{
		cfg:       cfg,
		l:         l,
		handler:   handler,
		collector: collector,
		publisher: publisher,
		chClient:  chClient,
	}
}

// Run starts the application and blocks until interrupted.
func (a *App) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	a.httpServer = xhttp.NewServer(a.handler,
		xhttp.WithPort(a.cfg.Server.Port),
		xhttp.WithTimeouts(a.cfg.Server.ReadTimeout, a.cfg.Server.WriteTimeout, a.cfg.Server.ShutdownTimeout),
	)

	// Live tick collector feeds the quote board; the recommendation
	// pipeline works without it, so a failed connect only logs.
	go func() {
		if err := a.collector.Start(ctx); err != nil {
			a.l.Error("quote collector error", applogger.Error(err))
		}
	}()
	a.l.Info("quote collector started", applogger.Strings("symbols", a.cfg.Analysis.Symbols))

	if err := a.httpServer.Start(); err != nil {
		a.l.Error("http server start error", applogger.Error(err))
		return err
	}
	a.l.Info("http server started", applogger.Int("port", a.cfg.Server.Port))

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	a.l.Info("shutdown signal received")
	return a.shutdown(ctx)
}

// shutdown gracefully stops all services.
func (a *App) shutdown(ctx context.Context) error {
	if err := a.collector.Shutdown(ctx); err != nil {
		a.l.Warn("collector stop error", applogger.Error(err))
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, a.cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := a.httpServer.Stop(shutdownCtx); err != nil {
		a.l.Error("http shutdown error", applogger.Error(err))
	}

	if a.publisher != nil {
		if err := a.publisher.Close(); err != nil {
			a.l.Warn("publisher close error", applogger.Error(err))
		}
	}

	if a.chClient != nil {
		if err := a.chClient.Close(); err != nil {
			a.l.Warn("clickhouse close error", applogger.Error(err))
		}
	}

	a.l.Info("shutdown complete")
	return nil
}
