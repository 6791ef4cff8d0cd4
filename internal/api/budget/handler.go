package budget

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
	logger *slog.Logger
}

func NewHandlerImpl(logger *slog.Logger) *HandlerImpl {
	return &HandlerImpl{logger: logger}
}

// Calculate handles the budget calculator tool endpoint.
func (h *HandlerImpl) Calculate(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("BudgetHandler").Start(r.Context(), "Calculate", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/tools/budget-plan"),
	))
	defer span.End()

	l := h.logger.With(slog.String("handler", "Calculate"))
	l.DebugContext(ctx, "Budget calculator handler invoked")

	var in types.BudgetPlanInput
	if err := api.DecodeJSONBody(w, r, &in); err != nil {
		l.ErrorContext(ctx, "Failed to decode request body", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}

	plan, err := Calculate(in)
	if err != nil {
		l.ErrorContext(ctx, "Invalid budget input", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}
	api.WriteJSONResponse(w, r, http.StatusOK, plan)
}
