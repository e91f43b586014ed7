package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"carpool/internal/bookings/service"
	apperrors "carpool/pkg/errors"
	httputil "carpool/pkg/http"
	"carpool/pkg/interval"
	"carpool/pkg/logger"
	"carpool/pkg/middleware"
	"carpool/pkg/model"

	"github.com/julienschmidt/httprouter"
)

type BookingHandler struct {
	service service.BookingService
	log     *logger.Logger
}

func NewBookingHandler(service service.BookingService, log *logger.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log,
	}
}

// BookingRequest is the submission payload. Times arrive as naive local
// wall-clock strings (2006-01-02T15:04), exactly as the date pickers emit
// them; no timezone conversion happens on this path.
type BookingRequest struct {
	CarID     string `json:"car_id"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	BookedBy  string `json:"booked_by"`
}

func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req BookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if writeErr := httputil.WriteError(w, apperrors.InvalidInput("Invalid request body")); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Create", "error", writeErr)
		}
		return
	}

	rng, err := interval.Parse(req.StartTime, req.EndTime)
	if err != nil {
		if writeErr := httputil.WriteError(w, apperrors.Validation("Invalid booking time range", map[string]any{
			"error": err.Error(),
		})); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Create", "error", writeErr)
		}
		return
	}

	// The renter identity comes from the authenticated session header; the
	// body's booked_by is only a fallback for trusted internal callers.
	bookedBy := middleware.RenterFrom(r)
	if bookedBy == "" {
		bookedBy = req.BookedBy
	}

	booking := model.Booking{
		CarID:     req.CarID,
		StartTime: rng.Start,
		EndTime:   rng.End,
		BookedBy:  bookedBy,
	}

	if err := h.service.Create(r.Context(), &booking); err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Create", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteCreated(w, booking); err != nil {
		h.log.Error("failed to write created response", "handler", "Create", "error", err)
	}
}

func (h *BookingHandler) GetByID(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")

	booking, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetByID", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, booking); err != nil {
		h.log.Error("failed to write success response", "handler", "GetByID", "error", err)
	}
}

func (h *BookingHandler) GetAll(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	limit, offset, err := httputil.ExtractLimitOffset(r)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetAll", "error", writeErr)
		}
		return
	}

	bookings, total, err := h.service.GetAll(r.Context(), limit, offset)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetAll", "error", writeErr)
		}
		return
	}

	if err := httputil.WritePaginated(w, bookings, total, limit, offset); err != nil {
		h.log.Error("failed to write paginated response", "handler", "GetAll", "error", err)
	}
}

func (h *BookingHandler) Search(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	query := r.URL.Query()
	carID := query.Get("car_id")
	if carID == "" {
		if writeErr := httputil.WriteError(w, apperrors.InvalidInput("'car_id' query parameter is required")); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Search", "error", writeErr)
		}
		return
	}

	var startTime, endTime *time.Time
	if s := query.Get("start_time"); s != "" {
		parsed, err := time.ParseInLocation(interval.Layout, s, time.Local)
		if err != nil {
			if writeErr := httputil.WriteError(w, apperrors.InvalidInput("invalid start_time format, must be 2006-01-02T15:04")); writeErr != nil {
				h.log.Error("failed to write error response", "handler", "Search", "error", writeErr)
			}
			return
		}
		startTime = &parsed
	}
	if s := query.Get("end_time"); s != "" {
		parsed, err := time.ParseInLocation(interval.Layout, s, time.Local)
		if err != nil {
			if writeErr := httputil.WriteError(w, apperrors.InvalidInput("invalid end_time format, must be 2006-01-02T15:04")); writeErr != nil {
				h.log.Error("failed to write error response", "handler", "Search", "error", writeErr)
			}
			return
		}
		endTime = &parsed
	}

	limit, offset, err := httputil.ExtractLimitOffset(r)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Search", "error", writeErr)
		}
		return
	}

	bookings, total, err := h.service.SearchByCar(r.Context(), carID, startTime, endTime, limit, offset)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Search", "error", writeErr)
		}
		return
	}

	if err := httputil.WritePaginated(w, bookings, total, limit, offset); err != nil {
		h.log.Error("failed to write paginated response", "handler", "Search", "error", err)
	}
}

func (h *BookingHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/api/v1/bookings", h.Create)
	router.GET("/api/v1/bookings", h.GetAll)
	router.GET("/api/v1/bookings/id/:id", h.GetByID)
	router.GET("/api/v1/bookings/search", h.Search)
}
