package itinerary

import (
	"context"
	"log/slog"
	"net/http"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/wanderplan/wanderplan/app/observability/metrics"
	"github.com/wanderplan/wanderplan/internal/api"
	"github.com/wanderplan/wanderplan/internal/api/research"
	"github.com/wanderplan/wanderplan/internal/types"
)

func recordItineraryRequest(ctx context.Context, status string) {
	if m := metrics.Get(); m != nil {
		m.ItineraryRequestsTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("status", status)))
	}
}

type HandlerImpl struct {
	itineraryService Service
	researchService  research.Service
	logger           *slog.Logger
}

func NewHandlerImpl(itineraryService Service, researchService research.Service, logger *slog.Logger) *HandlerImpl {
	return &HandlerImpl{
		itineraryService: itineraryService,
		researchService:  researchService,
		logger:           logger,
	}
}

// PlanTrip is the workflow entry point: gather research and synthesize the
// itinerary in one call.
func (h *HandlerImpl) PlanTrip(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("ItineraryHandler").Start(r.Context(), "PlanTrip", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/itineraries"),
	))
	defer span.End()

	l := h.logger.With(slog.String("handler", "PlanTrip"))
	l.DebugContext(ctx, "Plan trip handler invoked")

	var req types.TripRequest
	if err := api.DecodeJSONBody(w, r, &req); err != nil {
		l.ErrorContext(ctx, "Failed to decode request body", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		l.ErrorContext(ctx, "Invalid trip request", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.itineraryService.Plan(ctx, req)
	if err != nil {
		l.ErrorContext(ctx, "Failed to plan trip", slog.Any("error", err))
		recordItineraryRequest(ctx, "error")
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to generate itinerary")
		return
	}

	l.InfoContext(ctx, "Trip planned", slog.String("destination", req.Destination))
	recordItineraryRequest(ctx, "ok")
	api.WriteJSONResponse(w, r, http.StatusOK, result)
}
