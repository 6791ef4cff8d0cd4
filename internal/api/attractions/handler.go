package attractions

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
	attractionsService Service
	logger             *slog.Logger
}

func NewHandlerImpl(attractionsService Service, logger *slog.Logger) *HandlerImpl {
	return &HandlerImpl{
		attractionsService: attractionsService,
		logger:             logger,
	}
}

// Find handles the attractions finder tool endpoint.
func (h *HandlerImpl) Find(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("AttractionsHandler").Start(r.Context(), "Find", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/tools/attractions"),
	))
	defer span.End()

	l := h.logger.With(slog.String("handler", "Find"))
	l.DebugContext(ctx, "Attractions finder handler invoked")

	var in types.AttractionsInput
	if err := api.DecodeJSONBody(w, r, &in); err != nil {
		l.ErrorContext(ctx, "Failed to decode request body", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if err := in.Validate(); err != nil {
		l.ErrorContext(ctx, "Invalid attractions input", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}

	result := h.attractionsService.Find(ctx, in)
	api.WriteJSONResponse(w, r, http.StatusOK, result)
}
