package http

import (
	"net/http"
	"strconv"

	"carpool/pkg/config"
	apperrors "carpool/pkg/errors"
)

// ExtractLimitOffset reads limit/offset query parameters and clamps them to
// the service-wide pagination bounds. Absent parameters fall back to the
// defaults rather than erroring.
func ExtractLimitOffset(r *http.Request) (int, int64, error) {
	query := r.URL.Query()

	limit := 0
	if s := query.Get("limit"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil {
			return 0, 0, apperrors.InvalidInput("limit must be an integer, got: " + s)
		}
		limit = v
	}

	var offset int64
	if s := query.Get("offset"); s != "" {
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return 0, 0, apperrors.InvalidInput("offset must be an integer, got: " + s)
		}
		offset = v
	}

	return config.NormalizePaginationLimit(limit), config.NormalizeOffset(offset), nil
}
