package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// GeminiGenerator implements TextGenerator on top of the Gemini API.
type GeminiGenerator struct {
	client *genai.Client
	model  string
}

var _ TextGenerator = (*GeminiGenerator)(nil)

// NewGeminiGenerator creates a generator bound to one model.
func NewGeminiGenerator(ctx context.Context, apiKey, model string) (*GeminiGenerator, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, err
	}
	if model == "" {
		model = "gemini-2.5-flash"
	}
	return &GeminiGenerator{client: client, model: model}, nil
}

func (g *GeminiGenerator) generate(ctx context.Context, prompt, system, mimeType string) (string, error) {
	cfg := &genai.GenerateContentConfig{
		Temperature:      genai.Ptr[float32](1.0),
		MaxOutputTokens:  1024,
		ResponseMIMEType: mimeType,
	}
	if system != "" {
		cfg.SystemInstruction = genai.NewContentFromText(system, genai.RoleUser)
	}

	result, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), cfg)
	if err != nil {
		return "", err
	}
	if result == nil || len(result.Candidates) == 0 {
		return "", fmt.Errorf("gemini returned no candidates")
	}
	cand := result.Candidates[0]
	if cand.Content == nil || len(cand.Content.Parts) == 0 {
		// Blocked or empty candidates carry a finish reason worth surfacing.
		return "", fmt.Errorf("gemini response empty or blocked: %s", cand.FinishReason)
	}
	return cand.Content.Parts[0].Text, nil
}

// GenerateText returns trimmed plain text, stripping the wrapping quotes the
// model sometimes adds.
func (g *GeminiGenerator) GenerateText(ctx context.Context, prompt, system string) (string, error) {
	text, err := g.generate(ctx, prompt, system, "text/plain")
	if err != nil {
		return "", err
	}
	text = strings.TrimSpace(text)
	text = strings.Trim(text, `"`)
	if text == "" {
		return "", fmt.Errorf("gemini returned empty text")
	}
	return text, nil
}

// GenerateStructured asks for a JSON response and decodes its top-level
// string fields. Non-string fields are ignored.
func (g *GeminiGenerator) GenerateStructured(ctx context.Context, prompt, system string) (map[string]string, error) {
	raw, err := g.generate(ctx, prompt, system, "application/json")
	if err != nil {
		return nil, err
	}
	return DecodeStructured(raw)
}

// DecodeStructured extracts the first JSON object from model output and
// returns its string fields. Models occasionally wrap JSON in fences or
// prose, so the object is located positionally rather than parsed strictly.
func DecodeStructured(raw string) (map[string]string, error) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start < 0 || end <= start {
		return nil, fmt.Errorf("response did not contain a JSON object")
	}

	var loose map[string]any
	if err := json.Unmarshal([]byte(raw[start:end+1]), &loose); err != nil {
		return nil, fmt.Errorf("invalid JSON in response: %w", err)
	}

	fields := make(map[string]string, len(loose))
	for k, v := range loose {
		if s, ok := v.(string); ok {
			fields[k] = strings.TrimSpace(s)
		}
	}
	return fields, nil
}
