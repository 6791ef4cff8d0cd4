package destination

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
	destinationService Service
	logger             *slog.Logger
}

func NewHandlerImpl(destinationService Service, logger *slog.Logger) *HandlerImpl {
	return &HandlerImpl{
		destinationService: destinationService,
		logger:             logger,
	}
}

// Research handles the destination research tool endpoint.
func (h *HandlerImpl) Research(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("DestinationHandler").Start(r.Context(), "Research", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/tools/destination-research"),
	))
	defer span.End()

	l := h.logger.With(slog.String("handler", "Research"))
	l.DebugContext(ctx, "Destination research handler invoked")

	var in types.DestinationResearchInput
	if err := api.DecodeJSONBody(w, r, &in); err != nil {
		l.ErrorContext(ctx, "Failed to decode request body", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if err := in.Validate(); err != nil {
		l.ErrorContext(ctx, "Invalid research input", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}

	profile := h.destinationService.Research(ctx, in.Destination, in.TravelStyle, in.Travelers)
	api.WriteJSONResponse(w, r, http.StatusOK, profile)
}
