package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fitstudio/pkg/config"
	"fitstudio/pkg/contracts"
	"fitstudio/pkg/middleware"

	"github.com/julienschmidt/httprouter"
)

// Application owns the HTTP server lifecycle: route registration, the
// middleware chain, and graceful shutdown.
type Application struct {
	cfg              *config.Config
	router           *httprouter.Router
	server           *http.Server
	idempotencyStore *middleware.InMemoryIdempotencyStore
	rateLimiter      *middleware.ClientRateLimiter
}

func NewApplication(cfg *config.Config) *Application {
	return &Application{
		cfg:    cfg,
		router: httprouter.New(),
	}
}

// SetApp registers all handlers and wraps the router in the middleware
// chain. Recovery is outermost so panics anywhere in the chain become
// 500 responses instead of killing the connection.
func (a *Application) SetApp(handlers ...contracts.Handler) {
	for _, h := range handlers {
		h.RegisterRoutes(a.router)
	}

	a.idempotencyStore = middleware.NewInMemoryIdempotencyStore(a.cfg.IdempotencyTTL)
	a.rateLimiter = middleware.NewClientRateLimiter(
		a.cfg.RateLimitRequests,
		a.cfg.RateLimitWindow,
		middleware.DefaultClientExtractor,
		a.cfg.Log,
	)

	var handler http.Handler = a.router
	handler = middleware.Idempotency(a.idempotencyStore, "Idempotency-Key")(handler)
	handler = middleware.RequestTimeout(a.cfg.RequestTimeout)(handler)
	handler = middleware.ClientRateLimit(a.rateLimiter)(handler)
	handler = middleware.ContentTypeValidation(a.cfg.Log)(handler)
	handler = middleware.MaxRequestSize(int64(a.cfg.MaxRequestSize))(handler)
	handler = middleware.RequestLogging(a.cfg.Log)(handler)
	handler = middleware.Recovery(a.cfg.Log)(handler)

	a.server = &http.Server{
		Addr:         ":" + a.cfg.Port,
		Handler:      handler,
		ReadTimeout:  a.cfg.ReadTimeout,
		WriteTimeout: a.cfg.WriteTimeout,
		IdleTimeout:  a.cfg.IdleTimeout,
	}
}

// Run blocks until the server exits or a termination signal arrives.
func (a *Application) Run() {
	log := a.cfg.Log

	serverErr := make(chan error, 1)
	go func() {
		log.Info("HTTP server starting", "addr", a.server.Addr)
		if err := a.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		log.Error("HTTP server failed", "error", err)
	case sig := <-quit:
		log.Info("Shutdown signal received", "signal", sig.String())
	}

	a.shutdown()
}

func (a *Application) shutdown() {
	log := a.cfg.Log

	ctx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()

	if err := a.server.Shutdown(ctx); err != nil {
		log.Error("HTTP server shutdown failed", "error", err)
		// Shutdown timed out with connections still open; force them closed.
		if closeErr := a.server.Close(); closeErr != nil {
			log.Error("HTTP server close failed", "error", closeErr)
		}
	}

	if a.idempotencyStore != nil {
		a.idempotencyStore.Stop()
	}
	if a.rateLimiter != nil {
		a.rateLimiter.Stop()
	}

	a.cfg.GracefulShutdown()

	// Give in-flight log writes a moment to flush.
	time.Sleep(100 * time.Millisecond)
	log.Info("Shutdown complete")
}
