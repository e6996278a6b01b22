package punchhandler

import (
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"ponto/internal/domain/punch"
	"ponto/internal/platform/clock"
	"ponto/internal/platform/metrics"
	"ponto/internal/transport/http/api"
	"ponto/internal/transport/http/middleware"
	"ponto/internal/transport/http/shared"
)

type Handler struct {
	Service   *punch.Service
	Store     punch.StoreAPI
	Clock     clock.Clock
	Collector *metrics.Collector
}

func NewHandler(service *punch.Service, store punch.StoreAPI, clk clock.Clock, collector *metrics.Collector) *Handler {
	return &Handler{Service: service, Store: store, Clock: clk, Collector: collector}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/punches", h.HandleRegister)
	r.With(middleware.RequireAdmin).Post("/punches/manual", h.HandleRegisterManual)
	r.With(middleware.RequireAdmin).Get("/punches/day", h.HandleListDay)
	r.With(middleware.RequireAdmin).Get("/punches", h.HandleListRange)
}

type registerRequest struct {
	Name string     `json:"name"`
	PIN  string     `json:"pin"`
	Type punch.Type `json:"type"`
}

type manualRequest struct {
	EmployeeID    string     `json:"employeeId"`
	Type          punch.Type `json:"type"`
	At            time.Time  `json:"at"`
	Justification string     `json:"justification"`
}

// HandleRegister is the terminal endpoint: name plus PIN in, validated punch
// out. It is unauthenticated, as the physical clock device carries no
// credentials; the PIN check inside the service is the authentication.
func (h *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var payload registerRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	result, err := h.Service.Register(r.Context(), payload.Name, payload.PIN, payload.Type, clientIP(r))
	if err != nil {
		h.failPunch(w, r, err)
		return
	}

	api.Created(w, result, middleware.GetRequestID(r.Context()))
}

func (h *Handler) HandleRegisterManual(w http.ResponseWriter, r *http.Request) {
	var payload manualRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}
	if payload.At.IsZero() {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "at is required", middleware.GetRequestID(r.Context()))
		return
	}

	result, err := h.Service.RegisterManual(r.Context(), payload.EmployeeID, payload.Type, payload.At, payload.Justification)
	if err != nil {
		h.failPunch(w, r, err)
		return
	}

	api.Created(w, result, middleware.GetRequestID(r.Context()))
}

// HandleListDay returns an employee's raw punches for one civil day.
func (h *Handler) HandleListDay(w http.ResponseWriter, r *http.Request) {
	employeeID := r.URL.Query().Get("employeeId")
	if employeeID == "" {
		api.Fail(w, http.StatusBadRequest, "invalid_query", "employeeId is required", middleware.GetRequestID(r.Context()))
		return
	}

	loc := h.Clock.Location()
	day, err := shared.ParseDateIn(r.URL.Query().Get("date"), loc)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_query", "date must be RFC3339 or YYYY-MM-DD", middleware.GetRequestID(r.Context()))
		return
	}
	if day.IsZero() {
		day = h.Clock.Now()
	}

	from, to := clock.DayRange(day, loc)
	punches, err := h.Store.ListEmployeeRange(r.Context(), employeeID, from, to)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "list_failed", "failed to list punches", middleware.GetRequestID(r.Context()))
		return
	}

	api.Success(w, map[string]any{"day": from.Format("2006-01-02"), "punches": punches}, middleware.GetRequestID(r.Context()))
}

// HandleListRange returns an employee's raw punches over an inclusive civil
// date range.
func (h *Handler) HandleListRange(w http.ResponseWriter, r *http.Request) {
	employeeID := r.URL.Query().Get("employeeId")
	if employeeID == "" {
		api.Fail(w, http.StatusBadRequest, "invalid_query", "employeeId is required", middleware.GetRequestID(r.Context()))
		return
	}

	loc := h.Clock.Location()
	start, err := shared.ParseDateIn(r.URL.Query().Get("start"), loc)
	if err != nil || start.IsZero() {
		api.Fail(w, http.StatusBadRequest, "invalid_query", "start must be RFC3339 or YYYY-MM-DD", middleware.GetRequestID(r.Context()))
		return
	}
	end, err := shared.ParseDateIn(r.URL.Query().Get("end"), loc)
	if err != nil || end.IsZero() {
		api.Fail(w, http.StatusBadRequest, "invalid_query", "end must be RFC3339 or YYYY-MM-DD", middleware.GetRequestID(r.Context()))
		return
	}

	from := clock.StartOfDay(start, loc)
	to := clock.StartOfDay(end, loc).AddDate(0, 0, 1)
	if to.Before(from) {
		api.Fail(w, http.StatusBadRequest, "invalid_period", "end must not precede start", middleware.GetRequestID(r.Context()))
		return
	}

	punches, err := h.Store.ListEmployeeRange(r.Context(), employeeID, from, to)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "list_failed", "failed to list punches", middleware.GetRequestID(r.Context()))
		return
	}

	api.Success(w, punches, middleware.GetRequestID(r.Context()))
}

func (h *Handler) failPunch(w http.ResponseWriter, r *http.Request, err error) {
	var v *punch.ValidationError
	if errors.As(err, &v) {
		h.Collector.RecordRejectedPunch()
		status := http.StatusUnprocessableEntity
		if v == punch.ErrInvalidPIN {
			status = http.StatusNotFound
		}
		api.Fail(w, status, v.Code, v.Message, middleware.GetRequestID(r.Context()))
		return
	}
	api.Fail(w, http.StatusInternalServerError, "punch_failed", "failed to register punch", middleware.GetRequestID(r.Context()))
}

func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		return forwarded
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
