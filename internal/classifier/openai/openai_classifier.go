package openai

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"

	"docforensics/internal/classifier"
	"docforensics/internal/config"
	"docforensics/internal/port"
)

const (
	defaultModel = "gpt-4o"
	maxTokens    = 8192
)

// Classifier implements port.DocumentClassifier using the OpenAI chat
// completions API. Only images are accepted; PDFs must go to a provider with
// native document input.
type Classifier struct {
	client *openai.Client
	model  string
}

// NewClassifier creates an OpenAI-based document classifier.
func NewClassifier(cfg *config.ClassifierProviderConfig) *Classifier {
	return newClassifier(cfg, openai.DefaultConfig(cfg.APIKey))
}

// NewClassifierWithBaseURL creates a classifier talking to a custom API base URL (for testing).
func NewClassifierWithBaseURL(cfg *config.ClassifierProviderConfig, baseURL string) *Classifier {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	clientCfg.BaseURL = baseURL
	return newClassifier(cfg, clientCfg)
}

func newClassifier(cfg *config.ClassifierProviderConfig, clientCfg openai.ClientConfig) *Classifier {
	model := cfg.DefaultModel
	if model == "" {
		model = defaultModel
	}
	timeout := time.Duration(cfg.TimeoutSecs) * time.Second
	if timeout == 0 {
		timeout = 120 * time.Second
	}
	clientCfg.HTTPClient = &http.Client{Timeout: timeout}
	return &Classifier{
		client: openai.NewClientWithConfig(clientCfg),
		model:  model,
	}
}

func (c *Classifier) Classify(ctx context.Context, input port.ClassifyInput) (*port.ClassifyOutput, error) {
	switch input.ContentType {
	case "image/jpeg", "image/png":
	default:
		return nil, &classifier.UnsupportedContentTypeError{Provider: "openai", ContentType: input.ContentType}
	}

	prompt := classifier.BuildForensicPrompt()
	dataURI := "data:" + input.ContentType + ";base64," + base64.StdEncoding.EncodeToString(input.FileBytes)

	req := openai.ChatCompletionRequest{
		Model: c.model,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{
				Role: openai.ChatMessageRoleUser,
				MultiContent: []openai.ChatMessagePart{
					{Type: openai.ChatMessagePartTypeText, Text: prompt},
					{
						Type:     openai.ChatMessagePartTypeImageURL,
						ImageURL: &openai.ChatMessageImageURL{URL: dataURI, Detail: openai.ImageURLDetailHigh},
					},
				},
			},
		},
	}
	// Reasoning models (o1/o3/o4/gpt-5*) take MaxCompletionTokens instead of MaxTokens
	if isReasoningModel(c.model) {
		req.MaxCompletionTokens = maxTokens
	} else {
		req.MaxTokens = maxTokens
	}

	resp, err := c.client.CreateChatCompletion(ctx, req)
	if err != nil {
		var apiErr *openai.APIError
		if errors.As(err, &apiErr) && apiErr.HTTPStatusCode == http.StatusTooManyRequests {
			return nil, classifier.NewRateLimitError("openai", err, 0)
		}
		return nil, fmt.Errorf("calling openai API: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("empty response from API: no choices")
	}

	text := resp.Choices[0].Message.Content
	if text == "" {
		return nil, fmt.Errorf("empty response from API: no content")
	}

	model := resp.Model
	if model == "" {
		model = c.model
	}
	return &port.ClassifyOutput{
		RawText:    text,
		ModelUsed:  model,
		PromptUsed: prompt,
	}, nil
}

func isReasoningModel(model string) bool {
	for _, prefix := range []string{"o1", "o3", "o4", "gpt-5"} {
		if strings.HasPrefix(model, prefix) {
			return true
		}
	}
	return false
}
