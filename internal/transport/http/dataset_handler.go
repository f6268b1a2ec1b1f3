package http

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	apierrors "ukmcli/internal/errors"
	"ukmcli/internal/millennium"
	"ukmcli/internal/services"
)

// DatasetHandler handles dataset query requests with RFC 7807 compliance
type DatasetHandler struct {
	service      DatasetServiceInterface
	logger       *slog.Logger
	errorHandler *apierrors.ErrorHandler
}

// NewDatasetHandler creates a new dataset handler with RFC 7807 error handling
func NewDatasetHandler(service DatasetServiceInterface, logger *slog.Logger, errorHandler *apierrors.ErrorHandler) *DatasetHandler {
	return &DatasetHandler{
		service:      service,
		logger:       logger.With(slog.String("component", "dataset_handler")),
		errorHandler: errorHandler,
	}
}

// Routes returns the dataset routes with proper Chi patterns
func (h *DatasetHandler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Use(render.SetContentType(render.ContentTypeJSON))

	r.Route("/dataset", func(r chi.Router) {
		r.Get("/summary", h.GetSummary)
		r.Get("/records", h.GetRecords)
	})

	r.Route("/periods", func(r chi.Router) {
		r.Get("/", h.GetPeriods)
		r.Route("/{period}", func(r chi.Router) {
			r.Use(h.PeriodCtx)
			r.Get("/", h.GetPeriodSegment)
			r.Get("/records", h.GetPeriodRecords)
		})
	})

	r.Route("/indicators", func(r chi.Router) {
		r.Get("/", h.GetIndicators)
		r.Get("/{indicator}/series", h.GetSeries)
	})

	r.Get("/changepoints", h.GetChangePoints)

	return r
}

// PeriodCtx middleware validates the period parameter
func (h *DatasetHandler) PeriodCtx(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		period := chi.URLParam(r, "period")
		if period == "" {
			h.errorHandler.HandleError(w, r, apierrors.ErrValidation("period", "Period key is required"))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// GetSummary handles GET /api/dataset/summary
func (h *DatasetHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.service.Summary(r.Context())
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	render.JSON(w, r, map[string]interface{}{
		"status": "success",
		"data":   summary,
	})
}

// GetRecords handles GET /api/dataset/records
func (h *DatasetHandler) GetRecords(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetReqID(r.Context())

	records, err := h.service.Records(r.Context())
	if err != nil {
		h.logger.ErrorContext(r.Context(), "failed to get records",
			slog.String("error", err.Error()),
			slog.String("request_id", reqID),
		)
		h.handleServiceError(w, r, err)
		return
	}

	render.JSON(w, r, map[string]interface{}{
		"status": "success",
		"data":   records,
		"count":  len(records),
	})
}

// GetPeriods handles GET /api/periods
func (h *DatasetHandler) GetPeriods(w http.ResponseWriter, r *http.Request) {
	periods, err := h.service.Periods(r.Context())
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	render.JSON(w, r, map[string]interface{}{
		"status": "success",
		"data":   periods,
		"count":  len(periods),
	})
}

// GetPeriodSegment handles GET /api/periods/{period}
func (h *DatasetHandler) GetPeriodSegment(w http.ResponseWriter, r *http.Request) {
	key := millennium.PeriodKey(chi.URLParam(r, "period"))

	segment, err := h.service.PeriodSegment(r.Context(), key)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	render.JSON(w, r, map[string]interface{}{
		"status": "success",
		"data":   segment,
	})
}

// GetPeriodRecords handles GET /api/periods/{period}/records.
// The optional indicators query parameter is a comma-separated list of
// indicator keys to project the records down to.
func (h *DatasetHandler) GetPeriodRecords(w http.ResponseWriter, r *http.Request) {
	key := millennium.PeriodKey(chi.URLParam(r, "period"))

	var indicators []millennium.Indicator
	if raw := r.URL.Query().Get("indicators"); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			part = strings.TrimSpace(part)
			if part != "" {
				indicators = append(indicators, millennium.Indicator(part))
			}
		}
	}

	records, err := h.service.PeriodRecords(r.Context(), key, indicators)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	render.JSON(w, r, map[string]interface{}{
		"status": "success",
		"data":   records,
		"count":  len(records),
	})
}

// GetIndicators handles GET /api/indicators
func (h *DatasetHandler) GetIndicators(w http.ResponseWriter, r *http.Request) {
	indicators, err := h.service.Indicators(r.Context())
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	render.JSON(w, r, map[string]interface{}{
		"status": "success",
		"data":   indicators,
		"count":  len(indicators),
	})
}

// GetSeries handles GET /api/indicators/{indicator}/series with
// optional inclusive from and to year bounds.
func (h *DatasetHandler) GetSeries(w http.ResponseWriter, r *http.Request) {
	key := millennium.Indicator(chi.URLParam(r, "indicator"))

	from, ok := h.yearParam(w, r, "from")
	if !ok {
		return
	}
	to, ok := h.yearParam(w, r, "to")
	if !ok {
		return
	}

	series, err := h.service.Series(r.Context(), key, from, to)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	render.JSON(w, r, map[string]interface{}{
		"status":    "success",
		"indicator": key,
		"data":      series,
		"count":     len(series),
	})
}

// GetChangePoints handles GET /api/changepoints
func (h *DatasetHandler) GetChangePoints(w http.ResponseWriter, r *http.Request) {
	points, err := h.service.ChangePoints(r.Context())
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	render.JSON(w, r, map[string]interface{}{
		"status": "success",
		"data":   points,
		"count":  len(points),
	})
}

// yearParam parses an optional year query parameter; zero means unset.
func (h *DatasetHandler) yearParam(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, true
	}

	year, err := strconv.Atoi(raw)
	if err != nil || year < 0 {
		h.errorHandler.HandleError(w, r, apierrors.ErrValidation(name, "must be a non-negative year"))
		return 0, false
	}
	return year, true
}

// handleServiceError maps service sentinel errors to API errors
func (h *DatasetHandler) handleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, services.ErrDatasetNotLoaded):
		h.errorHandler.HandleError(w, r, apierrors.ErrDatasetNotLoaded)
	case errors.Is(err, services.ErrPeriodNotFound):
		h.errorHandler.HandleError(w, r, apierrors.PeriodNotFoundError(chi.URLParam(r, "period")))
	case errors.Is(err, services.ErrIndicatorNotFound):
		h.errorHandler.HandleError(w, r, apierrors.IndicatorNotFoundError(chi.URLParam(r, "indicator")))
	case errors.Is(err, services.ErrNoSeriesData):
		h.errorHandler.HandleError(w, r, apierrors.NewWithDetails(
			http.StatusNotFound,
			"NO_SERIES_DATA",
			"No observations for the requested indicator",
			err.Error(),
		))
	case errors.Is(err, millennium.ErrEmptyDataset):
		h.errorHandler.HandleError(w, r, apierrors.ErrEmptyDataset)
	default:
		h.errorHandler.HandleError(w, r, err)
	}
}
