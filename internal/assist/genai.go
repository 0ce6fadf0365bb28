package assist

import (
	"context"

	"github.com/pkg/errors"
	"google.golang.org/genai" // Google Gen AI SDK
)

// DefaultModel is used when no model name is configured
const DefaultModel = "gemini-2.5-flash"

// ErrNoAPIKey is returned by NewGenAI when the credential is empty
var ErrNoAPIKey = errors.New("no API key configured")

// GenAI is a Generator backed by the Gemini API
type GenAI struct {
	client *genai.Client
	model  string
}

// NewGenAI connects to the Gemini API with the given key
func NewGenAI(ctx context.Context, apiKey, model string) (*GenAI, error) {
	if apiKey == "" {
		return nil, ErrNoAPIKey
	}
	if model == "" {
		model = DefaultModel
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, errors.Wrap(err, "create genai client")
	}
	return &GenAI{client: client, model: model}, nil
}

// Generate sends the prompt and returns the response text
func (g *GenAI) Generate(ctx context.Context, req Request) (string, error) {
	cfg := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(req.Temperature),
		TopP:        req.TopP,
	}
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(req.Prompt), cfg)
	if err != nil {
		return "", errors.Wrapf(err, "generate content with %s", g.model)
	}
	return resp.Text(), nil
}
