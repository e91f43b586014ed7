package app

import (
	"context"
	"net/http"
	"time"

	"carpool/pkg/config"
	httputil "carpool/pkg/http"
	"carpool/pkg/logger"

	"github.com/julienschmidt/httprouter"
)

type HealthHandler struct {
	cfg *config.Config
	log *logger.Logger
}

func NewHealthHandler(cfg *config.Config) *HealthHandler {
	return &HealthHandler{
		cfg: cfg,
		log: cfg.Log,
	}
}

func (h *HealthHandler) Health(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	if err := httputil.WriteSuccess(w, map[string]string{"status": "ok"}); err != nil {
		h.log.Error("failed to write health response", "error", err)
	}
}

func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if h.cfg.Client.Mongo == nil || h.cfg.Client.Mongo.Ping(ctx, nil) != nil {
		if err := httputil.WriteJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"}); err != nil {
			h.log.Error("failed to write readiness response", "error", err)
		}
		return
	}

	if err := httputil.WriteSuccess(w, map[string]string{"status": "ready"}); err != nil {
		h.log.Error("failed to write readiness response", "error", err)
	}
}

func (h *HealthHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/health", h.Health)
	router.GET("/ready", h.Ready)
}
