package llm

import (
	"context"
	"errors"
	"fmt"
	"os"

	"google.golang.org/genai"

	"maternal-chat/config"
)

// Client wraps the hosted model API for both chat completion and text
// embedding. Calls are synchronous and rely on the SDK's own timeouts.
type Client struct {
	client         *genai.Client
	model          string
	embeddingModel string
}

func NewClient(ctx context.Context, cfg config.LLMConfig) (*Client, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, errors.New("GEMINI_API_KEY environment variable is not set")
	}
	if cfg.Provider != "google" {
		return nil, fmt.Errorf("unsupported LLM provider: %s", cfg.Provider)
	}

	cl, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, err
	}
	return &Client{
		client:         cl,
		model:          cfg.ModelName,
		embeddingModel: cfg.EmbeddingModel,
	}, nil
}

// Complete sends the prompt to the chat model and returns its text
// response. An empty system instruction omits the instruction entirely.
func (c *Client) Complete(ctx context.Context, system, prompt string) (string, error) {
	var genCfg *genai.GenerateContentConfig
	if system != "" {
		genCfg = &genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: system}}},
			Temperature:       genai.Ptr[float32](0),
		}
	} else {
		genCfg = &genai.GenerateContentConfig{
			Temperature: genai.Ptr[float32](0),
		}
	}

	result, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), genCfg)
	if err != nil {
		return "", err
	}
	return result.Text(), nil
}

// EmbedText returns the embedding vector for a single text.
func (c *Client) EmbedText(ctx context.Context, text string) ([]float32, error) {
	result, err := c.client.Models.EmbedContent(ctx, c.embeddingModel, genai.Text(text), nil)
	if err != nil {
		return nil, err
	}
	if len(result.Embeddings) == 0 || len(result.Embeddings[0].Values) == 0 {
		return nil, errors.New("embedding service returned no vector")
	}
	return result.Embeddings[0].Values, nil
}
