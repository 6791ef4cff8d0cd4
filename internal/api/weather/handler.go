package weather

import (
	"log/slog"
	"net/http"

	"go.opentelemetry.io/otel"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/wanderplan/wanderplan/internal/api"
	"github.com/wanderplan/wanderplan/internal/types"
)

type HandlerImpl struct {
	weatherService Service
	logger         *slog.Logger
}

func NewHandlerImpl(weatherService Service, logger *slog.Logger) *HandlerImpl {
	return &HandlerImpl{
		weatherService: weatherService,
		logger:         logger,
	}
}

// GetForecast handles the weather forecast tool endpoint.
func (h *HandlerImpl) GetForecast(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("WeatherHandler").Start(r.Context(), "GetForecast", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/tools/weather-forecast"),
	))
	defer span.End()

	l := h.logger.With(slog.String("handler", "GetForecast"))
	l.DebugContext(ctx, "Weather forecast handler invoked")

	var in types.WeatherForecastInput
	if err := api.DecodeJSONBody(w, r, &in); err != nil {
		l.ErrorContext(ctx, "Failed to decode request body", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if err := in.Validate(); err != nil {
		l.ErrorContext(ctx, "Invalid forecast input", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}

	result := h.weatherService.GetForecast(ctx, in.Destination, in.StartDate.Time, in.EndDate.Time)
	api.WriteJSONResponse(w, r, http.StatusOK, result)
}
