package handler

import (
	"net/http"

	"carpool/internal/fleet/service"
	httputil "carpool/pkg/http"
	"carpool/pkg/logger"
	"carpool/pkg/urlstate"

	"github.com/julienschmidt/httprouter"
)

type CarHandler struct {
	service service.FleetService
	log     *logger.Logger
}

func NewCarHandler(service service.FleetService, log *logger.Logger) *CarHandler {
	return &CarHandler{
		service: service,
		log:     log,
	}
}

// GetAll serves the raw fleet snapshot: every car with its bookings embedded
// in start-time order. Browsing clients work from this plus the search
// endpoint below.
func (h *CarHandler) GetAll(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	cars, total, err := h.service.GetAll(r.Context())
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetAll", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteList(w, cars, total); err != nil {
		h.log.Error("failed to write list response", "handler", "GetAll", "error", err)
	}
}

func (h *CarHandler) GetByID(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")

	car, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetByID", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, car); err != nil {
		h.log.Error("failed to write success response", "handler", "GetByID", "error", err)
	}
}

// Search ranks the fleet for a candidate range and filter set, both carried
// in shareable URL query parameters. Without a date range every car comes
// back unavailable; the UI prompts for dates before anything is bookable.
func (h *CarHandler) Search(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	state := urlstate.Decode(r.URL.Query())

	results, err := h.service.Search(r.Context(), state.Range, state.Filters)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Search", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, results); err != nil {
		h.log.Error("failed to write success response", "handler", "Search", "error", err)
	}
}

func (h *CarHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/api/v1/cars", h.GetAll)
	router.GET("/api/v1/cars/search", h.Search)
	router.GET("/api/v1/cars/id/:id", h.GetByID)
}
