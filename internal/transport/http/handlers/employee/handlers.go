package employeehandler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"ponto/internal/auth"
	"ponto/internal/domain/employee"
	"ponto/internal/transport/http/api"
	"ponto/internal/transport/http/middleware"
)

type Handler struct {
	Store *employee.Store
}

func NewHandler(store *employee.Store) *Handler {
	return &Handler{Store: store}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/employees", func(r chi.Router) {
		r.Use(middleware.RequireAdmin)
		r.Get("/", h.HandleList)
		r.Post("/", h.HandleCreate)
		r.Get("/{employeeID}", h.HandleGet)
		r.Post("/{employeeID}/deactivate", h.HandleDeactivate)
	})
}

type createRequest struct {
	Name         string `json:"name"`
	PIN          string `json:"pin"`
	NationalID   string `json:"nationalId"`
	Email        string `json:"email"`
	ScheduleKind string `json:"scheduleKind"`
	ShiftStart   string `json:"shiftStart"`
	ShiftEnd     string `json:"shiftEnd"`
	HourlyRate   string `json:"hourlyRate"`
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.GetUser(r.Context())

	employees, err := h.Store.List(r.Context(), user.CompanyID)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "list_failed", "failed to list employees", middleware.GetRequestID(r.Context()))
		return
	}

	api.Success(w, employees, middleware.GetRequestID(r.Context()))
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	emp, err := h.Store.ByID(r.Context(), chi.URLParam(r, "employeeID"))
	if err != nil {
		if errors.Is(err, employee.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "not_found", "employee not found", middleware.GetRequestID(r.Context()))
			return
		}
		api.Fail(w, http.StatusInternalServerError, "lookup_failed", "failed to load employee", middleware.GetRequestID(r.Context()))
		return
	}

	api.Success(w, emp, middleware.GetRequestID(r.Context()))
}

func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.GetUser(r.Context())

	var payload createRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	emp, err := h.buildEmployee(payload)
	if err != nil {
		api.Fail(w, http.StatusUnprocessableEntity, "invalid_employee", err.Error(), middleware.GetRequestID(r.Context()))
		return
	}

	id, err := h.Store.Create(r.Context(), user.CompanyID, emp)
	if err != nil {
		if errors.Is(err, employee.ErrNameInUse) {
			api.Fail(w, http.StatusConflict, "name_in_use", "another employee already uses this name", middleware.GetRequestID(r.Context()))
			return
		}
		api.Fail(w, http.StatusInternalServerError, "create_failed", "failed to create employee", middleware.GetRequestID(r.Context()))
		return
	}

	created, err := h.Store.ByID(r.Context(), id)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "create_failed", "failed to load created employee", middleware.GetRequestID(r.Context()))
		return
	}

	api.Created(w, created, middleware.GetRequestID(r.Context()))
}

func (h *Handler) HandleDeactivate(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.GetUser(r.Context())

	if err := h.Store.Deactivate(r.Context(), user.CompanyID, chi.URLParam(r, "employeeID")); err != nil {
		if errors.Is(err, employee.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "not_found", "employee not found", middleware.GetRequestID(r.Context()))
			return
		}
		api.Fail(w, http.StatusInternalServerError, "deactivate_failed", "failed to deactivate employee", middleware.GetRequestID(r.Context()))
		return
	}

	api.Success(w, map[string]string{"status": "deactivated"}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) buildEmployee(payload createRequest) (employee.Employee, error) {
	name := strings.TrimSpace(payload.Name)
	if name == "" {
		return employee.Employee{}, errors.New("name is required")
	}
	pin := strings.TrimSpace(payload.PIN)
	if pin == "" {
		return employee.Employee{}, errors.New("pin is required")
	}

	kind := employee.ScheduleKind(payload.ScheduleKind)
	if !kind.Valid() {
		return employee.Employee{}, employee.ErrInvalidKind
	}

	// The PIN is never stored; only its bcrypt hash is.
	pinHash, err := auth.HashPassword(pin)
	if err != nil {
		return employee.Employee{}, err
	}

	emp := employee.Employee{
		Name:         name,
		PINHash:      pinHash,
		NationalID:   strings.TrimSpace(payload.NationalID),
		Email:        strings.TrimSpace(payload.Email),
		ScheduleKind: kind,
		Active:       true,
	}

	if payload.ShiftStart != "" {
		start, err := employee.ParseTimeOfDay(payload.ShiftStart)
		if err != nil {
			return employee.Employee{}, err
		}
		emp.ShiftStart = &start
	}
	if payload.ShiftEnd != "" {
		end, err := employee.ParseTimeOfDay(payload.ShiftEnd)
		if err != nil {
			return employee.Employee{}, err
		}
		emp.ShiftEnd = &end
	}
	if payload.HourlyRate != "" {
		rate, err := decimal.NewFromString(payload.HourlyRate)
		if err != nil {
			return employee.Employee{}, errors.New("hourlyRate must be a decimal number")
		}
		emp.HourlyRate = &rate
	}

	return emp, nil
}
