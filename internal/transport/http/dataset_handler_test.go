package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apierrors "ukmcli/internal/errors"
	"ukmcli/internal/millennium"
	"ukmcli/internal/services"
)

// fakeDatasetService implements DatasetServiceInterface for handler tests.
type fakeDatasetService struct {
	loaded   bool
	loadedAt time.Time

	summary      *millennium.DatasetSummary
	records      []millennium.YearRecord
	changePoints []millennium.ChangePoint
	segment      *millennium.PeriodSegment
	series       []millennium.SeriesPoint

	err error

	gotPeriod     millennium.PeriodKey
	gotIndicators []millennium.Indicator
	gotFrom       int
	gotTo         int
}

func (f *fakeDatasetService) Loaded() bool        { return f.loaded }
func (f *fakeDatasetService) LoadedAt() time.Time { return f.loadedAt }

func (f *fakeDatasetService) Summary(ctx context.Context) (*millennium.DatasetSummary, error) {
	return f.summary, f.err
}

func (f *fakeDatasetService) Records(ctx context.Context) ([]millennium.YearRecord, error) {
	return f.records, f.err
}

func (f *fakeDatasetService) ChangePoints(ctx context.Context) ([]millennium.ChangePoint, error) {
	return f.changePoints, f.err
}

func (f *fakeDatasetService) Periods(ctx context.Context) ([]millennium.Period, error) {
	if f.err != nil {
		return nil, f.err
	}
	return millennium.Periods(), nil
}

func (f *fakeDatasetService) PeriodSegment(ctx context.Context, key millennium.PeriodKey) (*millennium.PeriodSegment, error) {
	f.gotPeriod = key
	return f.segment, f.err
}

func (f *fakeDatasetService) PeriodRecords(ctx context.Context, key millennium.PeriodKey, indicators []millennium.Indicator) ([]millennium.YearRecord, error) {
	f.gotPeriod = key
	f.gotIndicators = indicators
	return f.records, f.err
}

func (f *fakeDatasetService) Indicators(ctx context.Context) ([]millennium.Indicator, error) {
	if f.err != nil {
		return nil, f.err
	}
	return millennium.Indicators(), nil
}

func (f *fakeDatasetService) Series(ctx context.Context, key millennium.Indicator, from, to int) ([]millennium.SeriesPoint, error) {
	f.gotFrom, f.gotTo = from, to
	return f.series, f.err
}

func newTestRouter(svc DatasetServiceInterface) chi.Router {
	handler := NewDatasetHandler(svc, slog.Default(), apierrors.NewErrorHandler(slog.Default(), false))
	r := chi.NewRouter()
	r.Mount("/api", handler.Routes())
	return r
}

func doRequest(t *testing.T, router chi.Router, method, target string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(method, target, nil))

	var body map[string]interface{}
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	}
	return rec, body
}

func TestGetSummary(t *testing.T) {
	svc := &fakeDatasetService{
		summary: &millennium.DatasetSummary{
			TotalYears: 808,
			YearRange:  millennium.YearRange{Min: 1209, Max: 2016},
		},
	}

	rec, body := doRequest(t, newTestRouter(svc), http.MethodGet, "/api/dataset/summary")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "success", body["status"])
	data := body["data"].(map[string]interface{})
	assert.Equal(t, float64(808), data["total_years"])
}

func TestGetSummary_NotLoaded(t *testing.T) {
	svc := &fakeDatasetService{err: services.ErrDatasetNotLoaded}

	rec, body := doRequest(t, newTestRouter(svc), http.MethodGet, "/api/dataset/summary")

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "DATASET_NOT_LOADED", body["error_code"])
	assert.Equal(t, apierrors.TypeDatasetNotLoaded, body["type"])
}

func TestGetRecords(t *testing.T) {
	gdp := 100.0
	svc := &fakeDatasetService{
		records: []millennium.YearRecord{
			{Year: 1300, GDPReal: &gdp, Period: millennium.PeriodMedieval},
		},
	}

	rec, body := doRequest(t, newTestRouter(svc), http.MethodGet, "/api/dataset/records")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(1), body["count"])
}

func TestGetPeriods(t *testing.T) {
	rec, body := doRequest(t, newTestRouter(&fakeDatasetService{}), http.MethodGet, "/api/periods")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(5), body["count"])
}

func TestGetPeriodSegment(t *testing.T) {
	period, _ := millennium.PeriodByKey(millennium.PeriodMedieval)
	svc := &fakeDatasetService{
		segment: &millennium.PeriodSegment{Period: period},
	}

	rec, body := doRequest(t, newTestRouter(svc), http.MethodGet, "/api/periods/medieval")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "success", body["status"])
	assert.Equal(t, millennium.PeriodMedieval, svc.gotPeriod)
}

func TestGetPeriodSegment_NotFound(t *testing.T) {
	svc := &fakeDatasetService{err: services.ErrPeriodNotFound}

	rec, body := doRequest(t, newTestRouter(svc), http.MethodGet, "/api/periods/renaissance")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "PERIOD_NOT_FOUND", body["error_code"])
	assert.Contains(t, body["detail"], "renaissance")
}

func TestGetPeriodRecords_IndicatorProjection(t *testing.T) {
	svc := &fakeDatasetService{records: []millennium.YearRecord{{Year: 1400}}}

	rec, _ := doRequest(t, newTestRouter(svc), http.MethodGet,
		"/api/periods/medieval/records?indicators=gdpReal,%20population")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, millennium.PeriodMedieval, svc.gotPeriod)
	assert.Equal(t, []millennium.Indicator{
		millennium.IndicatorGDPReal,
		millennium.IndicatorPopulation,
	}, svc.gotIndicators)
}

func TestGetPeriodRecords_UnknownIndicator(t *testing.T) {
	svc := &fakeDatasetService{err: services.ErrIndicatorNotFound}

	rec, body := doRequest(t, newTestRouter(svc), http.MethodGet,
		"/api/periods/medieval/records?indicators=gini")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "INDICATOR_NOT_FOUND", body["error_code"])
}

func TestGetIndicators(t *testing.T) {
	rec, body := doRequest(t, newTestRouter(&fakeDatasetService{}), http.MethodGet, "/api/indicators")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(11), body["count"])
}

func TestGetSeries(t *testing.T) {
	svc := &fakeDatasetService{
		series: []millennium.SeriesPoint{{Year: 1800, Value: 100}, {Year: 1801, Value: 102}},
	}

	rec, body := doRequest(t, newTestRouter(svc), http.MethodGet,
		"/api/indicators/gdpReal/series?from=1800&to=1900")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(2), body["count"])
	assert.Equal(t, "gdpReal", body["indicator"])
	assert.Equal(t, 1800, svc.gotFrom)
	assert.Equal(t, 1900, svc.gotTo)
}

func TestGetSeries_InvalidYearParam(t *testing.T) {
	rec, body := doRequest(t, newTestRouter(&fakeDatasetService{}), http.MethodGet,
		"/api/indicators/gdpReal/series?from=medieval")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", body["error_code"])
}

func TestGetSeries_NoData(t *testing.T) {
	svc := &fakeDatasetService{err: services.ErrNoSeriesData}

	rec, body := doRequest(t, newTestRouter(svc), http.MethodGet,
		"/api/indicators/housePrice/series")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "NO_SERIES_DATA", body["error_code"])
}

func TestGetChangePoints(t *testing.T) {
	svc := &fakeDatasetService{changePoints: millennium.CuratedChangePoints()}

	rec, body := doRequest(t, newTestRouter(svc), http.MethodGet, "/api/changepoints")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(7), body["count"])
}
