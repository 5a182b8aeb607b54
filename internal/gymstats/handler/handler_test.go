package handler_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/2beens/gyminsights/internal/auth"
	"github.com/2beens/gyminsights/internal/gymstats/handler"
	"github.com/2beens/gyminsights/internal/gymstats/insights"
	"github.com/2beens/gyminsights/internal/telemetry/metrics"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var testNow = time.Date(2024, 5, 15, 12, 0, 0, 0, time.UTC)

func setup(t *testing.T) (*mux.Router, *MockinsightsEngine, *metrics.Manager) {
	t.Helper()
	ctrl := gomock.NewController(t)
	engine := NewMockinsightsEngine(ctrl)
	metricsManager := metrics.NewTestManager()

	r := mux.NewRouter()
	handler.NewHandler(engine, metricsManager).SetupRoutes(r)
	return r, engine, metricsManager
}

func requestAs(userID, path string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if userID != "" {
		req = req.WithContext(auth.WithUserID(req.Context(), userID))
	}
	return req
}

func TestHandler_HandleInsights(t *testing.T) {
	r, engine, metricsManager := setup(t)

	oneRepMax := 105.0
	list := []insights.Insight{
		{
			ID:       "pr-squat",
			Type:     insights.TypeProgress,
			Title:    "New personal record: Squat",
			Date:     testNow,
			Severity: insights.SeveritySuccess,
			Icon:     "trophy",
			Meta:     &insights.Meta{OneRepMax: &oneRepMax},
		},
		{
			ID:       "load-up-squat",
			Type:     insights.TypeLoad,
			Date:     testNow,
			Severity: insights.SeverityInfo,
			Icon:     "dumbbell",
		},
	}
	engine.EXPECT().ComputeInsights(gomock.Any(), "user-1").Return(list, nil)

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, requestAs("user-1", "/gymstats/insights"))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var raw map[string][]map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &raw))
	require.Len(t, raw["insights"], 2)
	pr := raw["insights"][0]
	assert.Equal(t, "pr-squat", pr["id"])
	assert.Equal(t, "progress", pr["type"])
	assert.Equal(t, "success", pr["severity"])
	assert.Equal(t, "2024-05-15T12:00:00Z", pr["date"])
	assert.Equal(t, map[string]any{"oneRepMax": 105.0}, pr["meta"])
	_, hasMeta := raw["insights"][1]["meta"]
	assert.False(t, hasMeta)

	assert.Equal(t, 1.0, testutil.ToFloat64(metricsManager.CounterInsights.WithLabelValues("progress")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metricsManager.CounterInsights.WithLabelValues("load")))
	assert.Equal(t, 1, testutil.CollectAndCount(metricsManager.HistogramInsightsDuration))
}

func TestHandler_HandleInsights_Anonymous(t *testing.T) {
	r, engine, _ := setup(t)
	engine.EXPECT().ComputeInsights(gomock.Any(), "").Return([]insights.Insight{}, nil)

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, requestAs("", "/gymstats/insights"))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"insights":[]}`, rr.Body.String())
}

func TestHandler_HandleInsights_EngineError(t *testing.T) {
	r, engine, metricsManager := setup(t)
	engine.EXPECT().ComputeInsights(gomock.Any(), "user-1").Return(nil, errors.New("list completed sets: timeout"))

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, requestAs("user-1", "/gymstats/insights"))
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Contains(t, rr.Body.String(), "failed to compute insights")
	assert.Equal(t, 1.0, testutil.ToFloat64(metricsManager.CounterInsightsErrors))
}

func TestHandler_HandleVolume(t *testing.T) {
	r, engine, _ := setup(t)
	engine.EXPECT().TrainingVolume(gomock.Any(), "user-1").Return(&insights.VolumeReport{
		From:          testNow.Add(-insights.LookbackWindow),
		To:            testNow,
		WeeklyVolume:  map[string]float64{"2024-05-13": 2500},
		TrainingDays:  3,
		LongestStreak: 3,
	}, nil)

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, requestAs("user-1", "/gymstats/insights/volume"))
	require.Equal(t, http.StatusOK, rr.Code)

	var report insights.VolumeReport
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &report))
	assert.Equal(t, 2500.0, report.WeeklyVolume["2024-05-13"])
	assert.Equal(t, 3, report.TrainingDays)
	assert.True(t, testNow.Equal(report.To))
}

func TestHandler_HandleVolume_Error(t *testing.T) {
	r, engine, _ := setup(t)
	engine.EXPECT().TrainingVolume(gomock.Any(), "user-1").Return(nil, errors.New("boom"))

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, requestAs("user-1", "/gymstats/insights/volume"))
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestHandler_Routes(t *testing.T) {
	r, _, _ := setup(t)

	for name, path := range map[string]string{
		"insights":        "/gymstats/insights",
		"insights-volume": "/gymstats/insights/volume",
	} {
		route := r.Get(name)
		require.NotNil(t, route, name)
		assert.True(t, route.Match(httptest.NewRequest(http.MethodGet, path, nil), &mux.RouteMatch{}), name)
		assert.False(t, route.Match(httptest.NewRequest(http.MethodPost, path, nil), &mux.RouteMatch{}), name)
	}
}
