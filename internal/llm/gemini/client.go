// Package gemini implements llm.Client on the Gemini API.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"resume-builder/internal/llm"
)

// DefaultModel is used when LLM_MODEL is unset.
const DefaultModel = "gemini-2.5-flash"

// Client implements llm.Client using the Gemini generative API.
type Client struct {
	client *genai.Client
	model  string
}

// NewClient constructs a Gemini client. The model falls back to DefaultModel
// when empty.
func NewClient(ctx context.Context, apiKey, model string) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is required")
	}
	if strings.TrimSpace(model) == "" {
		model = DefaultModel
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &Client{client: client, model: model}, nil
}

// Close releases the underlying API connection.
func (c *Client) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

func (c *Client) ExtractResume(ctx context.Context, resumeText string) (json.RawMessage, error) {
	raw, err := c.generate(ctx, extractPrompt(resumeText))
	if err != nil {
		return nil, fmt.Errorf("resume extraction: %w", err)
	}
	return raw, nil
}

func (c *Client) GenerateFromProfile(ctx context.Context, profileJSON json.RawMessage) (json.RawMessage, error) {
	var pretty bytes.Buffer
	if err := json.Indent(&pretty, profileJSON, "", "  "); err != nil {
		pretty.Reset()
		pretty.Write(profileJSON)
	}
	raw, err := c.generate(ctx, generatePrompt(pretty.String()))
	if err != nil {
		return nil, fmt.Errorf("resume generation: %w", err)
	}
	return raw, nil
}

// generate runs a single prompt and returns the model text verbatim. Code
// fences and stray prose are left for the caller's cleaning pass.
func (c *Client) generate(ctx context.Context, prompt string) (json.RawMessage, error) {
	model := c.client.GenerativeModel(c.model)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("gemini call failed: %w", err)
	}
	logUsage(c.model, resp.UsageMetadata)

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("empty response from gemini")
	}
	text, ok := resp.Candidates[0].Content.Parts[0].(genai.Text)
	if !ok {
		return nil, fmt.Errorf("unexpected response format from gemini")
	}
	trimmed := strings.TrimSpace(string(text))
	if trimmed == "" {
		return nil, fmt.Errorf("empty response from gemini")
	}
	return json.RawMessage(trimmed), nil
}

func logUsage(model string, usage *genai.UsageMetadata) {
	if usage == nil {
		log.Printf("llm response model=%s", model)
		return
	}
	log.Printf("llm response model=%s prompt_tokens=%d completion_tokens=%d total_tokens=%d",
		model, usage.PromptTokenCount, usage.CandidatesTokenCount, usage.TotalTokenCount)
}

var _ llm.Client = (*Client)(nil)
