package leavehandler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"hrms/internal/domain/leave"
	"hrms/internal/transport/http/api"
	"hrms/internal/transport/http/middleware"
	"hrms/internal/transport/http/shared"
)

type Handler struct {
	Service *leave.Service
}

func NewHandler(service *leave.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/leave-requests", func(r chi.Router) {
		r.Post("/", h.handleCreate)
		r.Get("/", h.handleList)
		r.Patch("/{requestID}", h.handleUpdate)
	})
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var payload leave.CreateLeaveRequestInput
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		shared.WriteInvalidPayload(w, r)
		return
	}
	created, err := h.Service.CreateLeaveRequest(r.Context(), payload)
	if err != nil {
		shared.WriteError(w, r, err)
		return
	}
	api.Created(w, created, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	requests, err := h.Service.ListLeaveRequests(r.Context())
	if err != nil {
		shared.WriteError(w, r, err)
		return
	}
	api.Success(w, requests, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.PathID(w, r, "requestID")
	if !ok {
		return
	}
	var payload leave.UpdateLeaveRequestInput
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		shared.WriteInvalidPayload(w, r)
		return
	}
	payload.ID = id
	updated, err := h.Service.UpdateLeaveRequest(r.Context(), payload)
	if err != nil {
		shared.WriteError(w, r, err)
		return
	}
	api.Success(w, updated, middleware.GetRequestID(r.Context()))
}
