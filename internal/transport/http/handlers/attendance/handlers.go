package attendancehandler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"hrms/internal/domain/attendance"
	"hrms/internal/transport/http/api"
	"hrms/internal/transport/http/middleware"
	"hrms/internal/transport/http/shared"
)

type Handler struct {
	Service *attendance.Service
}

func NewHandler(service *attendance.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/attendance", func(r chi.Router) {
		r.Post("/", h.handleCreateAttendance)
		r.Get("/", h.handleListAttendance)
	})
	r.Route("/overtime-requests", func(r chi.Router) {
		r.Post("/", h.handleCreateOvertimeRequest)
		r.Get("/", h.handleListOvertimeRequests)
		r.Patch("/{requestID}", h.handleUpdateOvertimeRequest)
	})
}

func (h *Handler) handleCreateAttendance(w http.ResponseWriter, r *http.Request) {
	var payload attendance.CreateAttendanceInput
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		shared.WriteInvalidPayload(w, r)
		return
	}
	created, err := h.Service.CreateAttendance(r.Context(), payload)
	if err != nil {
		shared.WriteError(w, r, err)
		return
	}
	api.Created(w, created, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleListAttendance(w http.ResponseWriter, r *http.Request) {
	records, err := h.Service.ListAttendance(r.Context())
	if err != nil {
		shared.WriteError(w, r, err)
		return
	}
	api.Success(w, records, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleCreateOvertimeRequest(w http.ResponseWriter, r *http.Request) {
	var payload attendance.CreateOvertimeRequestInput
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		shared.WriteInvalidPayload(w, r)
		return
	}
	created, err := h.Service.CreateOvertimeRequest(r.Context(), payload)
	if err != nil {
		shared.WriteError(w, r, err)
		return
	}
	api.Created(w, created, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleListOvertimeRequests(w http.ResponseWriter, r *http.Request) {
	requests, err := h.Service.ListOvertimeRequests(r.Context())
	if err != nil {
		shared.WriteError(w, r, err)
		return
	}
	api.Success(w, requests, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleUpdateOvertimeRequest(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.PathID(w, r, "requestID")
	if !ok {
		return
	}
	var payload attendance.UpdateOvertimeRequestInput
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		shared.WriteInvalidPayload(w, r)
		return
	}
	payload.ID = id
	updated, err := h.Service.UpdateOvertimeRequest(r.Context(), payload)
	if err != nil {
		shared.WriteError(w, r, err)
		return
	}
	api.Success(w, updated, middleware.GetRequestID(r.Context()))
}
