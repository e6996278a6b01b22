package reporthandler

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"ponto/internal/domain/report"
	"ponto/internal/transport/http/api"
	"ponto/internal/transport/http/middleware"
	"ponto/internal/transport/http/shared"
)

type Handler struct {
	Service *report.Service
}

func NewHandler(service *report.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/reports", func(r chi.Router) {
		r.Use(middleware.RequireAdmin)
		r.Get("/summary", h.HandleSummary)
		r.Get("/mirror", h.HandleMirror)
		r.Get("/timesheet/pdf", h.HandleTimesheetPDF)
	})
}

func (h *Handler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	start, end, employeeID, ok := h.period(w, r)
	if !ok {
		return
	}

	summary, err := h.Service.PeriodSummary(r.Context(), start, end, employeeID)
	if err != nil {
		h.failReport(w, r, err)
		return
	}

	api.Success(w, summary, middleware.GetRequestID(r.Context()))
}

// HandleMirror returns the raw punch marks per civil day, the screen the
// employee signs off against.
func (h *Handler) HandleMirror(w http.ResponseWriter, r *http.Request) {
	start, end, employeeID, ok := h.period(w, r)
	if !ok {
		return
	}
	if employeeID == "" {
		api.Fail(w, http.StatusBadRequest, "invalid_query", "employeeId is required", middleware.GetRequestID(r.Context()))
		return
	}

	days, err := h.Service.Mirror(r.Context(), start, end, employeeID)
	if err != nil {
		h.failReport(w, r, err)
		return
	}

	api.Success(w, days, middleware.GetRequestID(r.Context()))
}

func (h *Handler) HandleTimesheetPDF(w http.ResponseWriter, r *http.Request) {
	start, end, employeeID, ok := h.period(w, r)
	if !ok {
		return
	}

	summary, err := h.Service.PeriodSummary(r.Context(), start, end, employeeID)
	if err != nil {
		h.failReport(w, r, err)
		return
	}

	output, err := report.RenderTimesheetPDF(summary)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "pdf_failed", "failed to render timesheet", middleware.GetRequestID(r.Context()))
		return
	}

	filename := fmt.Sprintf("timesheet-%s-%s.pdf", start.Format("2006-01-02"), end.Format("2006-01-02"))
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(output)
}

func (h *Handler) period(w http.ResponseWriter, r *http.Request) (time.Time, time.Time, string, bool) {
	loc := h.Service.Rules().Location
	query := r.URL.Query()

	start, err := shared.ParseDateIn(query.Get("start"), loc)
	if err != nil || start.IsZero() {
		api.Fail(w, http.StatusBadRequest, "invalid_query", "start must be RFC3339 or YYYY-MM-DD", middleware.GetRequestID(r.Context()))
		return time.Time{}, time.Time{}, "", false
	}
	end, err := shared.ParseDateIn(query.Get("end"), loc)
	if err != nil || end.IsZero() {
		api.Fail(w, http.StatusBadRequest, "invalid_query", "end must be RFC3339 or YYYY-MM-DD", middleware.GetRequestID(r.Context()))
		return time.Time{}, time.Time{}, "", false
	}

	return start, end, query.Get("employeeId"), true
}

func (h *Handler) failReport(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, report.ErrInvalidPeriod) {
		api.Fail(w, http.StatusBadRequest, "invalid_period", "end must not precede start", middleware.GetRequestID(r.Context()))
		return
	}
	api.Fail(w, http.StatusInternalServerError, "report_failed", "failed to build report", middleware.GetRequestID(r.Context()))
}
