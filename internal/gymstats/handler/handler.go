package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/2beens/gyminsights/internal/auth"
	"github.com/2beens/gyminsights/internal/gymstats/insights"
	"github.com/2beens/gyminsights/internal/telemetry/metrics"
	"github.com/2beens/gyminsights/internal/telemetry/tracing"
	"github.com/2beens/gyminsights/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=handler_test

type insightsEngine interface {
	ComputeInsights(ctx context.Context, userID string) ([]insights.Insight, error)
	TrainingVolume(ctx context.Context, userID string) (*insights.VolumeReport, error)
}

type InsightsResponse struct {
	Insights []insights.Insight `json:"insights"`
}

type Handler struct {
	engine         insightsEngine
	metricsManager *metrics.Manager
}

func NewHandler(engine insightsEngine, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		engine:         engine,
		metricsManager: metricsManager,
	}
}

func (handler *Handler) SetupRoutes(mainRouter *mux.Router) {
	insightsRouter := mainRouter.PathPrefix("/gymstats/insights").Subrouter()
	insightsRouter.HandleFunc("", handler.HandleInsights).Methods("GET", "OPTIONS").Name("insights")
	insightsRouter.HandleFunc("/volume", handler.HandleVolume).Methods("GET", "OPTIONS").Name("insights-volume")
}

// HandleInsights returns the insights of the acting user. Anonymous callers
// get an empty list.
func (handler *Handler) HandleInsights(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymstats.insights")
	defer span.End()

	userID := auth.UserIDFromContext(ctx)
	span.SetAttributes(attribute.String("user_id", userID))

	begin := time.Now()
	list, err := handler.engine.ComputeInsights(ctx, userID)
	handler.metricsManager.HistogramInsightsDuration.Observe(time.Since(begin).Seconds())
	if err != nil {
		handler.metricsManager.CounterInsightsErrors.Inc()
		log.Errorf("compute insights for user [%s]: %s", userID, err)
		http.Error(w, "failed to compute insights", http.StatusInternalServerError)
		return
	}

	for _, i := range list {
		handler.metricsManager.CounterInsights.WithLabelValues(string(i.Type)).Inc()
	}
	log.Tracef("computed %d insights for user [%s]", len(list), userID)

	pkg.SendJsonResponse(w, http.StatusOK, InsightsResponse{Insights: list})
}

// HandleVolume returns the weekly volume of the lookback window.
func (handler *Handler) HandleVolume(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymstats.insights.volume")
	defer span.End()

	userID := auth.UserIDFromContext(ctx)
	report, err := handler.engine.TrainingVolume(ctx, userID)
	if err != nil {
		log.Errorf("training volume for user [%s]: %s", userID, err)
		http.Error(w, "failed to compute training volume", http.StatusInternalServerError)
		return
	}

	pkg.SendJsonResponse(w, http.StatusOK, report)
}
