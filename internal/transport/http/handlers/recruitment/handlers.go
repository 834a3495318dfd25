package recruitmenthandler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"hrms/internal/domain/recruitment"
	"hrms/internal/transport/http/api"
	"hrms/internal/transport/http/middleware"
	"hrms/internal/transport/http/shared"
)

type Handler struct {
	Service *recruitment.Service
}

func NewHandler(service *recruitment.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/job-requests", func(r chi.Router) {
		r.Post("/", h.handleCreateJobRequest)
		r.Get("/", h.handleListJobRequests)
	})
	r.Route("/job-applications", func(r chi.Router) {
		r.Post("/", h.handleCreateJobApplication)
		r.Get("/", h.handleListJobApplications)
		r.Patch("/{applicationID}", h.handleUpdateJobApplication)
	})
	r.Route("/interviews", func(r chi.Router) {
		r.Post("/", h.handleCreateInterview)
		r.Get("/", h.handleListInterviews)
	})
}

func (h *Handler) handleCreateJobRequest(w http.ResponseWriter, r *http.Request) {
	var payload recruitment.CreateJobRequestInput
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		shared.WriteInvalidPayload(w, r)
		return
	}
	created, err := h.Service.CreateJobRequest(r.Context(), payload)
	if err != nil {
		shared.WriteError(w, r, err)
		return
	}
	api.Created(w, created, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleListJobRequests(w http.ResponseWriter, r *http.Request) {
	requests, err := h.Service.ListJobRequests(r.Context())
	if err != nil {
		shared.WriteError(w, r, err)
		return
	}
	api.Success(w, requests, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleCreateJobApplication(w http.ResponseWriter, r *http.Request) {
	var payload recruitment.CreateJobApplicationInput
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		shared.WriteInvalidPayload(w, r)
		return
	}
	created, err := h.Service.CreateJobApplication(r.Context(), payload)
	if err != nil {
		shared.WriteError(w, r, err)
		return
	}
	api.Created(w, created, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleListJobApplications(w http.ResponseWriter, r *http.Request) {
	applications, err := h.Service.ListJobApplications(r.Context())
	if err != nil {
		shared.WriteError(w, r, err)
		return
	}
	api.Success(w, applications, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleUpdateJobApplication(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.PathID(w, r, "applicationID")
	if !ok {
		return
	}
	var payload recruitment.UpdateJobApplicationInput
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		shared.WriteInvalidPayload(w, r)
		return
	}
	payload.ID = id
	updated, err := h.Service.UpdateJobApplication(r.Context(), payload)
	if err != nil {
		shared.WriteError(w, r, err)
		return
	}
	api.Success(w, updated, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleCreateInterview(w http.ResponseWriter, r *http.Request) {
	var payload recruitment.CreateInterviewInput
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		shared.WriteInvalidPayload(w, r)
		return
	}
	created, err := h.Service.CreateInterview(r.Context(), payload)
	if err != nil {
		shared.WriteError(w, r, err)
		return
	}
	api.Created(w, created, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleListInterviews(w http.ResponseWriter, r *http.Request) {
	interviews, err := h.Service.ListInterviews(r.Context())
	if err != nil {
		shared.WriteError(w, r, err)
		return
	}
	api.Success(w, interviews, middleware.GetRequestID(r.Context()))
}
