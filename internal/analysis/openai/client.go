// Package openai implements the analysis collaborator on the OpenAI
// chat completion API.
package openai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gpt-4o"

// maxTokens bounds the response. The audit response is a single JSON
// object of bounded size; 4096 leaves headroom for verbose issue lists.
const maxTokens = 4096

// Client calls the chat completion API with JSON-object response
// formatting so the interpreter usually gets a bare object literal.
type Client struct {
	client *openai.Client
	model  string
}

// NewClient creates a Client. An empty model selects DefaultModel.
func NewClient(apiKey, model string) *Client {
	if model == "" {
		model = DefaultModel
	}
	return &Client{client: openai.NewClient(apiKey), model: model}
}

// Analyze sends the rendered audit prompt and returns the raw response
// text. The response is not validated here; shape validation belongs to
// the interpreter.
func (c *Client) Analyze(ctx context.Context, prompt string) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: c.model,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	}

	// Reasoning models reject MaxTokens in favor of MaxCompletionTokens.
	if strings.HasPrefix(c.model, "o1") || strings.HasPrefix(c.model, "o3") ||
		strings.HasPrefix(c.model, "o4") || strings.HasPrefix(c.model, "gpt-5") {
		req.MaxCompletionTokens = maxTokens
	} else {
		req.MaxTokens = maxTokens
	}

	resp, err := c.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("failed to create chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("chat completion returned no choices")
	}

	return resp.Choices[0].Message.Content, nil
}
