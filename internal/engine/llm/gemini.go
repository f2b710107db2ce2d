package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/irahardianto/stagehand/internal/engine/diff"
	"github.com/irahardianto/stagehand/internal/platform/logger"
	"google.golang.org/genai"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gemini-2.5-flash"

// GenerativeClient abstracts the Gemini generative AI client for testability.
type GenerativeClient interface {
	// GenerateContent sends a prompt and returns a response.
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// ClientFactory creates a GenerativeClient. Production code uses DefaultClientFactory;
// tests inject a factory that returns a mock.
type ClientFactory func(ctx context.Context, apiKey string) (GenerativeClient, error)

// genaiClient wraps the real genai.Client to satisfy GenerativeClient.
type genaiClient struct {
	inner *genai.Client
}

func (g *genaiClient) GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	return g.inner.Models.GenerateContent(ctx, model, contents, config)
}

// DefaultClientFactory creates a real Gemini API client.
func DefaultClientFactory(ctx context.Context, apiKey string) (GenerativeClient, error) {
	c, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}
	return &genaiClient{inner: c}, nil
}

// GeminiDrafter implements Drafter using the Google Gemini API.
type GeminiDrafter struct {
	apiKey  string
	model   string
	factory ClientFactory
	backoff time.Duration
}

// NewGeminiDrafter creates a new GeminiDrafter.
// The apiKey must be non-empty; callers should validate before construction.
// The factory creates the underlying generative client; use DefaultClientFactory for production.
func NewGeminiDrafter(apiKey, model string, factory ClientFactory) *GeminiDrafter {
	if model == "" {
		model = DefaultModel
	}
	if factory == nil {
		factory = DefaultClientFactory
	}
	return &GeminiDrafter{
		apiKey:  apiKey,
		model:   model,
		factory: factory,
		backoff: initialBackoff,
	}
}

const (
	maxRetries     = 3
	requestTimeout = 30 * time.Second
	initialBackoff = 1 * time.Second
)

// Draft asks Gemini for a commit message describing patch.
// Retries up to 3 times with exponential backoff (1s → 2s → 4s).
func (c *GeminiDrafter) Draft(ctx context.Context, patch string) (string, error) {
	log := logger.FromContext(ctx)
	log.Info("drafting commit message", "model", c.model)
	start := time.Now()

	client, err := c.factory(ctx, c.apiKey)
	if err != nil {
		return "", fmt.Errorf("creating Gemini client: %w", err)
	}

	config := &genai.GenerateContentConfig{
		Temperature:      genai.Ptr(float32(0.2)),
		ResponseMIMEType: "application/json",
		ResponseSchema:   messageSchema(),
	}
	prompt := BuildPrompt(patch, patchFiles(patch))

	var lastErr error
	backoff := c.backoff

	for attempt := range maxRetries {
		log.Debug("LLM request attempt", "attempt", attempt+1, "model", c.model)

		reqCtx, cancel := context.WithTimeout(ctx, requestTimeout)
		resp, err := client.GenerateContent(reqCtx, c.model, genai.Text(prompt), config)
		cancel()

		if err != nil {
			lastErr = fmt.Errorf("attempt %d: %w", attempt+1, err)
			log.Warn("LLM request failed, retrying",
				"attempt", attempt+1,
				"error", err,
				"backoff", backoff,
			)

			select {
			case <-ctx.Done():
				return "", fmt.Errorf("drafting cancelled: %w", ctx.Err())
			case <-time.After(backoff):
			}
			backoff *= 2
			continue
		}

		text, err := extractText(resp)
		if err != nil {
			return "", fmt.Errorf("extracting response text: %w", err)
		}

		var msg Message
		if err := json.Unmarshal([]byte(text), &msg); err != nil {
			return "", fmt.Errorf("parsing LLM response: %w", err)
		}
		if strings.TrimSpace(msg.Subject) == "" {
			return "", errors.New("LLM response has an empty subject")
		}

		log.Info("commit message drafted",
			"model", c.model,
			"duration_ms", time.Since(start).Milliseconds(),
		)
		return msg.String(), nil
	}

	return "", fmt.Errorf("drafting failed after %d attempts: %w", maxRetries, lastErr)
}

// patchFiles lists the post-image paths a patch touches.
func patchFiles(patch string) []string {
	var files []string
	for _, group := range diff.Split(diff.SplitText(patch)) {
		if d, err := diff.Parse(group); err == nil {
			files = append(files, d.Header.Path)
		}
	}
	return files
}

// extractText pulls the text content from a Gemini response.
func extractText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", errors.New("empty response from Gemini")
	}
	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", errors.New("no content parts in response")
	}
	part := candidate.Content.Parts[0]
	if part.Text == "" {
		return "", errors.New("empty text in response part")
	}
	return part.Text, nil
}

// messageSchema returns the JSON schema for Message used with Gemini's
// structured output mode.
func messageSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"subject": {Type: genai.TypeString, Description: "One-line summary, imperative mood, at most 72 characters"},
			"body":    {Type: genai.TypeString, Description: "Optional longer description"},
		},
		Required: []string{"subject"},
	}
}
