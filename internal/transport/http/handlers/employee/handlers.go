package employeehandler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"hrms/internal/domain/employee"
	"hrms/internal/transport/http/api"
	"hrms/internal/transport/http/middleware"
	"hrms/internal/transport/http/shared"
)

type Handler struct {
	Service *employee.Service
}

func NewHandler(service *employee.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/employees", func(r chi.Router) {
		r.Post("/", h.handleCreate)
		r.Get("/", h.handleList)
		r.Patch("/{employeeID}", h.handleUpdate)
	})
	r.Route("/contracts", func(r chi.Router) {
		r.Post("/", h.handleCreateContract)
		r.Get("/", h.handleListContracts)
		r.Get("/{contractID}/document", h.handleContractDocument)
	})
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var payload employee.CreateEmployeeInput
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		shared.WriteInvalidPayload(w, r)
		return
	}
	created, err := h.Service.CreateEmployee(r.Context(), payload)
	if err != nil {
		shared.WriteError(w, r, err)
		return
	}
	api.Created(w, created, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	employees, err := h.Service.ListEmployees(r.Context())
	if err != nil {
		shared.WriteError(w, r, err)
		return
	}
	api.Success(w, employees, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.PathID(w, r, "employeeID")
	if !ok {
		return
	}
	var payload employee.UpdateEmployeeInput
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		shared.WriteInvalidPayload(w, r)
		return
	}
	payload.ID = id
	updated, err := h.Service.UpdateEmployee(r.Context(), payload)
	if err != nil {
		shared.WriteError(w, r, err)
		return
	}
	api.Success(w, updated, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleCreateContract(w http.ResponseWriter, r *http.Request) {
	var payload employee.CreateContractInput
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		shared.WriteInvalidPayload(w, r)
		return
	}
	created, err := h.Service.CreateContract(r.Context(), payload)
	if err != nil {
		shared.WriteError(w, r, err)
		return
	}
	api.Created(w, created, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleListContracts(w http.ResponseWriter, r *http.Request) {
	contracts, err := h.Service.ListContracts(r.Context())
	if err != nil {
		shared.WriteError(w, r, err)
		return
	}
	api.Success(w, contracts, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleContractDocument(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.PathID(w, r, "contractID")
	if !ok {
		return
	}
	path, err := h.Service.ContractDocument(r.Context(), id)
	if err != nil {
		shared.WriteError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	http.ServeFile(w, r, path)
}
