package timebankhandler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"ponto/internal/domain/timebank"
	"ponto/internal/platform/clock"
	"ponto/internal/transport/http/api"
	"ponto/internal/transport/http/middleware"
	"ponto/internal/transport/http/shared"
)

type Handler struct {
	Service *timebank.Service
	Clock   clock.Clock
}

func NewHandler(service *timebank.Service, clk clock.Clock) *Handler {
	return &Handler{Service: service, Clock: clk}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/timebank/{employeeID}", func(r chi.Router) {
		r.Use(middleware.RequireAdmin)
		r.Get("/balance", h.HandleBalance)
		r.Get("/statement", h.HandleStatement)
		r.Post("/adjustments", h.HandleAddAdjustment)
	})
}

type adjustmentRequest struct {
	Minutes int    `json:"minutes"`
	Reason  string `json:"reason"`
}

func (h *Handler) HandleBalance(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	start, end, ok := h.period(w, r)
	if !ok {
		return
	}

	balance, err := h.Service.Balance(r.Context(), employeeID, start, end)
	if err != nil {
		h.failTimebank(w, r, err)
		return
	}

	api.Success(w, map[string]any{
		"employeeId":     employeeID,
		"start":          start.Format("2006-01-02"),
		"end":            end.Format("2006-01-02"),
		"balanceMinutes": balance,
	}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) HandleStatement(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	start, end, ok := h.period(w, r)
	if !ok {
		return
	}

	entries, err := h.Service.Statement(r.Context(), employeeID, start, end)
	if err != nil {
		h.failTimebank(w, r, err)
		return
	}

	api.Success(w, entries, middleware.GetRequestID(r.Context()))
}

func (h *Handler) HandleAddAdjustment(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")

	var payload adjustmentRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}
	if payload.Minutes == 0 {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "minutes must be non-zero", middleware.GetRequestID(r.Context()))
		return
	}

	entry, err := h.Service.AddAdjustment(r.Context(), employeeID, payload.Minutes, payload.Reason)
	if err != nil {
		h.failTimebank(w, r, err)
		return
	}

	api.Created(w, entry, middleware.GetRequestID(r.Context()))
}

func (h *Handler) period(w http.ResponseWriter, r *http.Request) (time.Time, time.Time, bool) {
	loc := h.Clock.Location()
	query := r.URL.Query()

	start, err := shared.ParseDateIn(query.Get("start"), loc)
	if err != nil || start.IsZero() {
		api.Fail(w, http.StatusBadRequest, "invalid_query", "start must be RFC3339 or YYYY-MM-DD", middleware.GetRequestID(r.Context()))
		return time.Time{}, time.Time{}, false
	}
	end, err := shared.ParseDateIn(query.Get("end"), loc)
	if err != nil || end.IsZero() {
		api.Fail(w, http.StatusBadRequest, "invalid_query", "end must be RFC3339 or YYYY-MM-DD", middleware.GetRequestID(r.Context()))
		return time.Time{}, time.Time{}, false
	}

	return start, end, true
}

func (h *Handler) failTimebank(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, timebank.ErrInvalidPeriod):
		api.Fail(w, http.StatusBadRequest, "invalid_period", "end must not precede start", middleware.GetRequestID(r.Context()))
	case errors.Is(err, timebank.ErrReasonRequired):
		api.Fail(w, http.StatusUnprocessableEntity, "reason_required", "a reason is required for adjustments", middleware.GetRequestID(r.Context()))
	default:
		api.Fail(w, http.StatusInternalServerError, "timebank_failed", "time bank operation failed", middleware.GetRequestID(r.Context()))
	}
}
