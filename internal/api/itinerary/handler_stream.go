package itinerary

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/wanderplan/wanderplan/internal/api"
	"github.com/wanderplan/wanderplan/internal/types"
)

// StreamEvent is one SSE frame of the streaming workflow.
type StreamEvent struct {
	Type      string      `json:"type"`
	Data      interface{} `json:"data,omitempty"`
	Error     string      `json:"error,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
	EventID   string      `json:"event_id"`
	IsFinal   bool        `json:"is_final,omitempty"`
}

const (
	EventTypeStart    = "start"
	EventTypeResearch = "research"
	EventTypeChunk    = "chunk"
	EventTypeComplete = "complete"
	EventTypeError    = "error"
)

// PlanTripStream runs the workflow and streams research progress and
// itinerary fragments to the client as server-sent events.
func (h *HandlerImpl) PlanTripStream(w http.ResponseWriter, r *http.Request) {
	// Set SSE headers
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")

	flusher, ok := w.(http.Flusher)
	if !ok {
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Streaming not supported")
		return
	}

	ctx := r.Context()
	l := h.logger.With(slog.String("handler", "PlanTripStream"))

	var req types.TripRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeSSEEvent(w, flusher, StreamEvent{Type: EventTypeError, Error: "Invalid request body", IsFinal: true})
		return
	}
	if err := req.Validate(); err != nil {
		h.writeSSEEvent(w, flusher, StreamEvent{Type: EventTypeError, Error: err.Error(), IsFinal: true})
		return
	}

	h.writeSSEEvent(w, flusher, StreamEvent{Type: EventTypeStart, Data: map[string]interface{}{
		"destination": req.Destination,
		"duration":    req.Duration(),
	}})

	bundle, err := h.researchService.Gather(ctx, req)
	if err != nil {
		l.ErrorContext(ctx, "Research failed during streamed planning", slog.Any("error", err))
		h.writeSSEEvent(w, flusher, StreamEvent{Type: EventTypeError, Error: "Research failed", IsFinal: true})
		return
	}
	h.writeSSEEvent(w, flusher, StreamEvent{Type: EventTypeResearch, Data: bundle})

	result, err := h.itineraryService.GenerateStream(ctx, req, bundle, func(chunk string) {
		h.writeSSEEvent(w, flusher, StreamEvent{Type: EventTypeChunk, Data: chunk})
	})
	if err != nil {
		l.ErrorContext(ctx, "Synthesis failed during streamed planning", slog.Any("error", err))
		h.writeSSEEvent(w, flusher, StreamEvent{Type: EventTypeError, Error: "Failed to generate itinerary", IsFinal: true})
		return
	}

	h.writeSSEEvent(w, flusher, StreamEvent{Type: EventTypeComplete, Data: result.Summary, IsFinal: true})
	l.InfoContext(ctx, "Streamed trip planned", slog.String("destination", req.Destination))
}

func (h *HandlerImpl) writeSSEEvent(w http.ResponseWriter, flusher http.Flusher, event StreamEvent) {
	if event.EventID == "" {
		event.EventID = uuid.New().String()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	data, err := json.Marshal(event)
	if err != nil {
		h.logger.Error("Failed to marshal stream event", slog.Any("error", err))
		return
	}

	fmt.Fprintf(w, "id: %s\n", event.EventID)
	fmt.Fprintf(w, "event: %s\n", event.Type)
	fmt.Fprintf(w, "data: %s\n\n", data)
	flusher.Flush()
}
