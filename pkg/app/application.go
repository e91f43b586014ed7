package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"carpool/pkg/config"
	"carpool/pkg/contracts"
	"carpool/pkg/middleware"

	"github.com/julienschmidt/httprouter"
)

type Application struct {
	cfg              *config.Config
	router           *httprouter.Router
	server           *http.Server
	rateLimiter      *middleware.RenterRateLimiter
	idempotencyStore middleware.IdempotencyStore
}

func NewApplication(cfg *config.Config) *Application {
	return &Application{
		cfg:              cfg,
		router:           httprouter.New(),
		rateLimiter:      middleware.NewRenterRateLimiter(cfg.RateLimitRequests, cfg.RateLimitWindow),
		idempotencyStore: middleware.NewInMemoryIdempotencyStore(cfg.IdempotencyTTL),
	}
}

func (a *Application) SetApp(handlers ...contracts.Handler) {
	for _, h := range handlers {
		h.RegisterRoutes(a.router)
	}
}

// chain wraps the router in the shared middleware stack. Order matters:
// the outermost middleware runs first.
func (a *Application) chain() http.Handler {
	var handler http.Handler = a.router

	handler = middleware.Idempotency(a.idempotencyStore, "")(handler)
	handler = middleware.RequestTimeout(a.cfg.RequestTimeout)(handler)
	handler = middleware.RenterRateLimit(a.rateLimiter, a.cfg.Log)(handler)
	handler = middleware.ContentTypeValidation(a.cfg.Log)(handler)
	handler = middleware.MaxRequestSize(a.cfg.MaxRequestSize)(handler)
	handler = middleware.RenterIdentity()(handler)
	handler = middleware.RequestLogging(a.cfg.Log)(handler)
	handler = middleware.Recovery(a.cfg.Log)(handler)

	return handler
}

func (a *Application) Run() {
	a.server = &http.Server{
		Addr:         ":" + a.cfg.Port,
		Handler:      a.chain(),
		ReadTimeout:  a.cfg.ReadTimeout,
		WriteTimeout: a.cfg.WriteTimeout,
		IdleTimeout:  a.cfg.IdleTimeout,
	}

	go func() {
		a.cfg.Log.Info("Starting HTTP server", "port", a.cfg.Port)
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.cfg.Log.Fatal("HTTP server failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	a.cfg.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()

	if err := a.server.Shutdown(ctx); err != nil {
		a.cfg.Log.Error("Server forced to shutdown", "error", err)
	}

	a.rateLimiter.Stop()
	a.idempotencyStore.Stop()
	a.cfg.GracefulShutdown()

	a.cfg.Log.Info("Server stopped")
}
