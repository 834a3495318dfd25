package shared

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"hrms/internal/transport/http/api"
	"hrms/internal/transport/http/middleware"
)

// PathID parses a numeric route parameter. On failure it writes the
// 400 response itself and reports ok=false.
func PathID(w http.ResponseWriter, r *http.Request, param string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, param), 10, 64)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "route parameter "+param+" must be a number", middleware.GetRequestID(r.Context()))
		return 0, false
	}
	return id, true
}
