package vertex

import (
	"context"
	"fmt"
	"strings"

	"cloud.google.com/go/vertexai/genai"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"docforensics/internal/classifier"
	"docforensics/internal/config"
	"docforensics/internal/port"
)

const (
	defaultModel    = "gemini-2.0-flash"
	defaultLocation = "us-central1"
)

// Generator is the part of *genai.GenerativeModel the classifier uses.
type Generator interface {
	GenerateContent(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error)
}

// Classifier implements port.DocumentClassifier using Gemini on Vertex AI,
// authenticated with application default credentials.
type Classifier struct {
	model     Generator
	modelName string
	client    *genai.Client
}

// NewClassifier creates a Vertex AI client for the configured project and location.
func NewClassifier(ctx context.Context, cfg *config.ClassifierProviderConfig) (*Classifier, error) {
	if cfg.ProjectID == "" {
		return nil, fmt.Errorf("vertex: project id cannot be empty")
	}
	location := cfg.Location
	if location == "" {
		location = defaultLocation
	}
	modelName := cfg.DefaultModel
	if modelName == "" {
		modelName = defaultModel
	}

	client, err := genai.NewClient(ctx, cfg.ProjectID, location)
	if err != nil {
		return nil, fmt.Errorf("genai.NewClient: %w", err)
	}

	model := client.GenerativeModel(modelName)
	model.GenerationConfig = genai.GenerationConfig{
		ResponseMIMEType: "application/json",
		Temperature:      genai.Ptr[float32](0.0),
	}

	c := NewClassifierWithGenerator(model, modelName)
	c.client = client
	return c, nil
}

// NewClassifierWithGenerator wraps an existing generator (for testing).
func NewClassifierWithGenerator(model Generator, modelName string) *Classifier {
	return &Classifier{model: model, modelName: modelName}
}

// Close releases the underlying Vertex AI client.
func (c *Classifier) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

func (c *Classifier) Classify(ctx context.Context, input port.ClassifyInput) (*port.ClassifyOutput, error) {
	switch input.ContentType {
	case "application/pdf", "image/jpeg", "image/png":
	default:
		return nil, &classifier.UnsupportedContentTypeError{Provider: "vertex", ContentType: input.ContentType}
	}

	prompt := classifier.BuildForensicPrompt()
	resp, err := c.model.GenerateContent(ctx,
		genai.Blob{MIMEType: input.ContentType, Data: input.FileBytes},
		genai.Text(prompt),
	)
	if err != nil {
		if status.Code(err) == codes.ResourceExhausted {
			return nil, classifier.NewRateLimitError("vertex", err, 0)
		}
		return nil, fmt.Errorf("calling vertex AI: %w", err)
	}

	text := extractText(resp)
	if text == "" {
		return nil, fmt.Errorf("empty response from vertex AI")
	}
	return &port.ClassifyOutput{
		RawText:    text,
		ModelUsed:  c.modelName,
		PromptUsed: prompt,
	}, nil
}

func extractText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			b.WriteString(string(txt))
		}
	}
	return b.String()
}
