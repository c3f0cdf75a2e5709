package oracle

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiClient implements Embedder and Generator on top of the Gemini API.
// One client is shared by every per-document index in a run.
type GeminiClient struct {
	client *genai.Client
	model  *genai.GenerativeModel
	embed  *genai.EmbeddingModel
}

// NewGeminiClient creates a client for the given models. The API key must be
// non-empty; configuration validates that before any processing starts.
func NewGeminiClient(ctx context.Context, apiKey, model, embeddingModel string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is empty")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	gen := client.GenerativeModel(model)
	gen.SetTemperature(0.2) // Low temperature for extraction accuracy

	return &GeminiClient{
		client: client,
		model:  gen,
		embed:  client.EmbeddingModel(embeddingModel),
	}, nil
}

// Close cleans up resources.
func (c *GeminiClient) Close() {
	if c.client != nil {
		c.client.Close()
	}
}

// Embed generates a vector for the given text.
func (c *GeminiClient) Embed(ctx context.Context, text string) ([]float32, error) {
	if text == "" {
		return nil, fmt.Errorf("empty text for embedding")
	}

	res, err := c.embed.EmbedContent(ctx, genai.Text(text))
	if err != nil {
		return nil, fmt.Errorf("embedding generation failed: %w", err)
	}

	if res.Embedding == nil || len(res.Embedding.Values) == 0 {
		return nil, fmt.Errorf("no embedding values returned")
	}

	return res.Embedding.Values, nil
}

// Generate answers a prompt, concatenating all text parts of the first
// candidate.
func (c *GeminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		log.Printf("Gemini GenerateContent Failed: %v", err)
		return "", fmt.Errorf("gemini request failed: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("gemini returned no candidates")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			sb.WriteString(string(txt))
		}
	}

	return sb.String(), nil
}
