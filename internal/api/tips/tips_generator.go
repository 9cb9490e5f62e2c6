package tips

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/genai"

	"github.com/FACorreiaa/go-travel-itinerary/internal/types"
)

var ErrTipsFailed = errors.New("tips: generation failed")

const maxTips = 5

// Generator asks Gemini for short practical tips about a planned trip.
type Generator struct {
	client *genai.Client
	model  string
	logger *slog.Logger
}

func NewGenerator(ctx context.Context, apiKey, model string, logger *slog.Logger) (*Generator, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &Generator{client: client, model: model, logger: logger}, nil
}

// Tips returns up to five tips for the trip. Tips never influence which places
// were selected.
func (g *Generator) Tips(ctx context.Context, req types.TripRequest, itinerary *types.Itinerary) ([]string, error) {
	ctx, span := otel.Tracer("TipsGenerator").Start(ctx, "Tips", trace.WithAttributes(
		attribute.String("model", g.model),
		attribute.String("trip.city", req.Destination),
	))
	defer span.End()

	prompt := buildPrompt(req, itinerary)
	result, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), &genai.GenerateContentConfig{
		Temperature: genai.Ptr[float32](0.4),
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "generate content failed")
		return nil, fmt.Errorf("%w: %w", ErrTipsFailed, err)
	}

	out := parseTips(result.Text())
	if len(out) == 0 {
		err := errors.New("model returned no tips")
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("%w: %w", ErrTipsFailed, err)
	}

	g.logger.DebugContext(ctx, "Generated trip tips", slog.String("city", req.Destination), slog.Int("count", len(out)))
	span.SetAttributes(attribute.Int("tips.count", len(out)))
	span.SetStatus(codes.Ok, "tips generated")
	return out, nil
}

func buildPrompt(req types.TripRequest, itinerary *types.Itinerary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Give at most %d short, practical travel tips for a %d-day %s trip to %s.\n",
		maxTips, req.Duration, strings.ToLower(string(req.Vibe)), req.Destination)
	fmt.Fprintf(&b, "Budget: %s. Pace: %s.\n", req.Budget, req.Intensity)
	if req.Hotel != "" {
		fmt.Fprintf(&b, "The traveller is staying at %s.\n", req.Hotel)
	}
	if itinerary != nil && len(itinerary.Places) > 0 {
		names := make([]string, 0, len(itinerary.Places))
		for _, p := range itinerary.Places {
			names = append(names, p.Name)
		}
		fmt.Fprintf(&b, "Planned stops: %s.\n", strings.Join(names, ", "))
	}
	b.WriteString("Answer with one tip per line and no introduction.")
	return b.String()
}

// parseTips keeps one tip per non-empty line, with list markers removed.
func parseTips(text string) []string {
	out := make([]string, 0, maxTips)
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimLeft(line, "-*•# ")
		line = trimNumbering(line)
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		out = append(out, line)
		if len(out) == maxTips {
			break
		}
	}
	return out
}

// trimNumbering strips "1." or "2)" prefixes.
func trimNumbering(line string) string {
	i := 0
	for i < len(line) && line[i] >= '0' && line[i] <= '9' {
		i++
	}
	if i > 0 && i < len(line) && (line[i] == '.' || line[i] == ')') {
		return line[i+1:]
	}
	return line
}
