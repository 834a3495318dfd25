package traininghandler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"hrms/internal/domain/training"
	"hrms/internal/transport/http/api"
	"hrms/internal/transport/http/middleware"
	"hrms/internal/transport/http/shared"
)

type Handler struct {
	Service *training.Service
}

func NewHandler(service *training.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/training-programs", func(r chi.Router) {
		r.Post("/", h.handleCreateProgram)
		r.Get("/", h.handleListPrograms)
	})
	r.Route("/training-enrollments", func(r chi.Router) {
		r.Post("/", h.handleCreateEnrollment)
		r.Get("/", h.handleListEnrollments)
	})
}

func (h *Handler) handleCreateProgram(w http.ResponseWriter, r *http.Request) {
	var payload training.CreateProgramInput
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		shared.WriteInvalidPayload(w, r)
		return
	}
	created, err := h.Service.CreateProgram(r.Context(), payload)
	if err != nil {
		shared.WriteError(w, r, err)
		return
	}
	api.Created(w, created, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleListPrograms(w http.ResponseWriter, r *http.Request) {
	programs, err := h.Service.ListPrograms(r.Context())
	if err != nil {
		shared.WriteError(w, r, err)
		return
	}
	api.Success(w, programs, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleCreateEnrollment(w http.ResponseWriter, r *http.Request) {
	var payload training.CreateEnrollmentInput
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		shared.WriteInvalidPayload(w, r)
		return
	}
	created, err := h.Service.CreateEnrollment(r.Context(), payload)
	if err != nil {
		shared.WriteError(w, r, err)
		return
	}
	api.Created(w, created, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleListEnrollments(w http.ResponseWriter, r *http.Request) {
	enrollments, err := h.Service.ListEnrollments(r.Context())
	if err != nil {
		shared.WriteError(w, r, err)
		return
	}
	api.Success(w, enrollments, middleware.GetRequestID(r.Context()))
}
