package performancehandler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"hrms/internal/domain/performance"
	"hrms/internal/transport/http/api"
	"hrms/internal/transport/http/middleware"
	"hrms/internal/transport/http/shared"
)

type Handler struct {
	Service *performance.Service
}

func NewHandler(service *performance.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/performance-evaluations", func(r chi.Router) {
		r.Post("/", h.handleCreate)
		r.Get("/", h.handleList)
	})
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var payload performance.CreateEvaluationInput
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		shared.WriteInvalidPayload(w, r)
		return
	}
	created, err := h.Service.CreateEvaluation(r.Context(), payload)
	if err != nil {
		shared.WriteError(w, r, err)
		return
	}
	api.Created(w, created, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	evaluations, err := h.Service.ListEvaluations(r.Context())
	if err != nil {
		shared.WriteError(w, r, err)
		return
	}
	api.Success(w, evaluations, middleware.GetRequestID(r.Context()))
}
