package appraisal

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"google.golang.org/genai"

	"becsus/pkg/formatting"
)

// Valuer delegates estimation to an external multimodal reasoning service.
// A nil or failing Valuer degrades the system to the fallback calculator.
type Valuer interface {
	Estimate(ctx context.Context, req Request) (*Estimate, error)
}

// GeminiValuer implements Valuer against the Gemini API.
type GeminiValuer struct {
	client  *genai.Client
	model   string
	timeout time.Duration
	logger  *slog.Logger
}

// NewGeminiValuer creates a Gemini-backed valuer.
func NewGeminiValuer(ctx context.Context, apiKey, model string, timeout time.Duration, logger *slog.Logger) (*GeminiValuer, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	return &GeminiValuer{
		client:  client,
		model:   model,
		timeout: timeout,
		logger:  logger.With("system", "valuer"),
	}, nil
}

// estimatePayload is the structured answer the model is instructed to return.
// Pointers distinguish absent fields from zero values.
type estimatePayload struct {
	MarketValue *float64 `json:"marketValue"`
	LowerBound  *float64 `json:"lowerBound"`
	Confidence  string   `json:"confidence"`
	Notes       string   `json:"notes"`
}

func (g *GeminiValuer) Estimate(ctx context.Context, req Request) (*Estimate, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	parts := []*genai.Part{
		genai.NewPartFromText(buildPrompt(req)),
	}
	for _, img := range req.Images {
		parts = append(parts, &genai.Part{
			InlineData: &genai.Blob{Data: img, MIMEType: "image/jpeg"},
		})
	}

	result, err := g.client.Models.GenerateContent(ctx, g.model, []*genai.Content{
		genai.NewContentFromParts(parts, genai.RoleUser),
	}, nil)
	if err != nil {
		return nil, fmt.Errorf("generate content: %w", err)
	}

	text := result.Text()
	if text == "" {
		return nil, fmt.Errorf("empty model response")
	}

	payload, err := formatting.Parse[estimatePayload](text)
	if err != nil {
		g.logger.Debug("unparseable model response", "response", text)
		return nil, fmt.Errorf("parse model response: %w", err)
	}

	if payload.MarketValue == nil || payload.LowerBound == nil {
		return nil, fmt.Errorf("model response missing required fields")
	}
	if *payload.MarketValue < 0 || *payload.LowerBound < 0 || *payload.LowerBound > *payload.MarketValue {
		return nil, fmt.Errorf("model response violates value bounds")
	}

	return &Estimate{
		MarketValue: *payload.MarketValue,
		LowerBound:  *payload.LowerBound,
		Confidence:  payload.Confidence,
		Notes:       payload.Notes,
		Source:      SourceExternal,
	}, nil
}

// buildPrompt renders the Hungarian valuation instruction, omitting optional
// fields that were not supplied.
func buildPrompt(req Request) string {
	var b strings.Builder

	b.WriteString("Te egy szakértő ékszer értékbecslő vagy. A mellékelt képek és a következő adatok alapján becsüld meg egy ékszer piaci értékét Hungarian Forint (HUF) valutában.\n\n")
	b.WriteString("Ékszer adatok:\n")
	fmt.Fprintf(&b, "- Súly: %s gramm\n", req.Weight)
	if req.Material != MaterialUnspecified {
		fmt.Fprintf(&b, "- Anyag: %s\n", req.Material)
	}
	if req.Karat != KaratUnspecified {
		fmt.Fprintf(&b, "- Karát: %s\n", req.Karat)
	}
	fmt.Fprintf(&b, "- Fémjelzés van-e: %s\n", req.Hallmark)
	if req.Length != "" {
		fmt.Fprintf(&b, "- Hosszúság: %s mm\n", req.Length)
	}
	if req.Width != "" {
		fmt.Fprintf(&b, "- Szélesség: %s mm\n", req.Width)
	}
	if req.Thickness != "" {
		fmt.Fprintf(&b, "- Vastagság: %s mm\n", req.Thickness)
	}

	b.WriteString(`
Fontos tudnivalók:
1. Elemezd a képeket: állapot, kidolgozottság, anyagminőség, fémjelzés
2. A nemesfém világpiaci árakat kell figyelembe venni (arany, ezüst, platina aktuális ára)
3. Az értékbecslést HUF valutában add meg
4. Készíts egy piaci értéket és egy alsó értéket (világpiaci érték - 15%)
5. Legyen reális és konzervatív a becslésben
6. A válasz CSAK egy JSON formátumú legyen, semmi más szöveg
7. Az alábbi formátumban válaszolj:

{
  "marketValue": 150000,
  "lowerBound": 127500,
  "confidence": "medium",
  "notes": "Rövid magyarázat a becslésről 1-2 mondatban, beleértve a képeken látott állapotot és minőséget"
}

CSAK a JSON-t add vissza, más szöveget ne!
`)

	return b.String()
}
