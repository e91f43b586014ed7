package http

import (
	"encoding/json"
	"net/http"

	apperrors "carpool/pkg/errors"
)

type ListResponse struct {
	Data       any   `json:"data"`
	TotalCount int64 `json:"total_count"`
}

type PaginatedResponse struct {
	Data       any   `json:"data"`
	TotalCount int64 `json:"total_count"`
	Limit      int   `json:"limit"`
	Offset     int64 `json:"offset"`
}

func WriteJSON(w http.ResponseWriter, status int, payload any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(payload)
}

func WriteSuccess(w http.ResponseWriter, payload any) error {
	return WriteJSON(w, http.StatusOK, payload)
}

func WriteCreated(w http.ResponseWriter, payload any) error {
	return WriteJSON(w, http.StatusCreated, payload)
}

func WriteNoContent(w http.ResponseWriter) error {
	w.WriteHeader(http.StatusNoContent)
	return nil
}

func WriteList(w http.ResponseWriter, data any, totalCount int64) error {
	return WriteJSON(w, http.StatusOK, ListResponse{
		Data:       data,
		TotalCount: totalCount,
	})
}

func WritePaginated(w http.ResponseWriter, data any, totalCount int64, limit int, offset int64) error {
	return WriteJSON(w, http.StatusOK, PaginatedResponse{
		Data:       data,
		TotalCount: totalCount,
		Limit:      limit,
		Offset:     offset,
	})
}

func WriteError(w http.ResponseWriter, err error) error {
	appErr := apperrors.AsAppError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(appErr.StatusCode())
	_, writeErr := w.Write(appErr.ToJSON())
	return writeErr
}
