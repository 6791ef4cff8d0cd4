package itinerary

import (
	"context"
	"fmt"
	"iter"
	"log/slog"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/genai"

	"github.com/wanderplan/wanderplan/app/observability/metrics"
	"github.com/wanderplan/wanderplan/internal/api/research"
	"github.com/wanderplan/wanderplan/internal/types"
)

var _ Service = (*ServiceImpl)(nil)

// Generator is the streaming text-generation dependency. Satisfied by
// generativeAI.AIClient.
type Generator interface {
	GenerateContentStream(ctx context.Context, prompt string, config *genai.GenerateContentConfig) (iter.Seq2[*genai.GenerateContentResponse, error], error)
}

// Service is the workflow surface: research gathering plus itinerary
// synthesis.
type Service interface {
	Plan(ctx context.Context, req types.TripRequest) (*types.ItineraryResult, error)
	Generate(ctx context.Context, req types.TripRequest, bundle *types.ResearchBundle) (*types.ItineraryResult, error)
	GenerateStream(ctx context.Context, req types.TripRequest, bundle *types.ResearchBundle, onChunk func(string)) (*types.ItineraryResult, error)
}

type ServiceImpl struct {
	researchService research.Service
	generator       Generator
	temperature     float32
	logger          *slog.Logger
}

func NewServiceImpl(researchService research.Service, generator Generator, temperature float32, logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{
		researchService: researchService,
		generator:       generator,
		temperature:     temperature,
		logger:          logger,
	}
}

// Plan is the workflow entry point: gather research, then synthesize the
// itinerary. Research degrades internally; synthesis failure is fatal.
func (s *ServiceImpl) Plan(ctx context.Context, req types.TripRequest) (*types.ItineraryResult, error) {
	ctx, span := otel.Tracer("ItineraryService").Start(ctx, "Plan", trace.WithAttributes(
		attribute.String("trip.destination", req.Destination),
	))
	defer span.End()

	bundle, err := s.researchService.Gather(ctx, req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Research failed")
		return nil, fmt.Errorf("research failed: %w", err)
	}

	result, err := s.Generate(ctx, req, bundle)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Synthesis failed")
		return nil, err
	}

	span.SetStatus(codes.Ok, "Itinerary planned")
	return result, nil
}

// Generate synthesizes the itinerary from an already-gathered bundle.
func (s *ServiceImpl) Generate(ctx context.Context, req types.TripRequest, bundle *types.ResearchBundle) (*types.ItineraryResult, error) {
	return s.GenerateStream(ctx, req, bundle, nil)
}

// GenerateStream synthesizes the itinerary, invoking onChunk for every text
// fragment as it arrives. A stream error aborts the whole generation; no
// partial itinerary is returned.
func (s *ServiceImpl) GenerateStream(ctx context.Context, req types.TripRequest, bundle *types.ResearchBundle, onChunk func(string)) (*types.ItineraryResult, error) {
	ctx, span := otel.Tracer("ItineraryService").Start(ctx, "GenerateStream", trace.WithAttributes(
		attribute.String("trip.destination", req.Destination),
		attribute.Int("trip.duration", bundle.Duration),
	))
	defer span.End()

	l := s.logger.With(slog.String("tool", "itinerary_synthesis"), slog.String("destination", req.Destination))

	prompt := buildItineraryPrompt(req, bundle)
	span.SetAttributes(attribute.Int("prompt.length", len(prompt)))
	streamStart := time.Now()

	stream, err := s.generator.GenerateContentStream(ctx, prompt, &genai.GenerateContentConfig{
		Temperature: genai.Ptr[float32](s.temperature),
	})
	if err != nil {
		l.ErrorContext(ctx, "Failed to start generation stream", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to start stream")
		return nil, fmt.Errorf("failed to start itinerary generation: %w", err)
	}

	var text strings.Builder
	for resp, err := range stream {
		if err != nil {
			l.ErrorContext(ctx, "Generation stream failed", slog.Any("error", err))
			span.RecordError(err)
			span.SetStatus(codes.Error, "Stream failed")
			return nil, fmt.Errorf("itinerary generation stream: %w", err)
		}
		chunk := resp.Text()
		if chunk == "" {
			continue
		}
		text.WriteString(chunk)
		if onChunk != nil {
			onChunk(chunk)
		}
	}

	if m := metrics.Get(); m != nil {
		m.LLMStreamDurationSeconds.Record(ctx, time.Since(streamStart).Seconds())
	}

	result := &types.ItineraryResult{
		Itinerary: text.String(),
		Summary:   buildSummary(req, bundle),
	}

	l.InfoContext(ctx, "Itinerary generated", slog.Int("length", len(result.Itinerary)))
	span.SetAttributes(attribute.Int("itinerary.length", len(result.Itinerary)))
	span.SetStatus(codes.Ok, "Itinerary generated")
	return result, nil
}

// buildSummary computes the headline numbers returned alongside the
// generated text.
func buildSummary(req types.TripRequest, bundle *types.ResearchBundle) types.ItinerarySummary {
	highlights := make([]string, 0, 5)
	for i, attraction := range bundle.Attractions.Attractions {
		if i == 3 {
			break
		}
		highlights = append(highlights, attraction.Name)
	}

	sunnyDays := 0
	for _, day := range bundle.Weather.Forecast {
		if day.PrecipitationChance < 30 {
			sunnyDays++
		}
	}
	highlights = append(highlights, fmt.Sprintf("%d sunny days", sunnyDays))
	highlights = append(highlights, fmt.Sprintf("%d cultural insights included", len(bundle.Destination.CulturalTips)))

	return types.ItinerarySummary{
		Destination: req.Destination,
		Duration:    req.Duration(),
		TotalBudget: req.Budget,
		Travelers:   req.Travelers,
		Highlights:  highlights,
	}
}
