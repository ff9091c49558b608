package classifier_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docforensics/internal/classifier"
	"docforensics/internal/config"
	"docforensics/internal/domain"
	"docforensics/internal/port"
)

type namedClassifier struct{ name string }

func (n namedClassifier) Classify(context.Context, port.ClassifyInput) (*port.ClassifyOutput, error) {
	return &port.ClassifyOutput{RawText: "{}", ModelUsed: n.name}, nil
}

func init() {
	for _, name := range []string{"fake-a", "fake-b", "fake-c"} {
		classifier.RegisterProvider(name, func(cfg *config.ClassifierProviderConfig) (port.DocumentClassifier, error) {
			return namedClassifier{name: cfg.Provider}, nil
		})
	}
}

func TestNew_UnknownProvider(t *testing.T) {
	_, err := classifier.New(&config.ClassifierProviderConfig{Provider: "nope"})
	assert.ErrorContains(t, err, "unknown classifier provider")
}

func TestBuild_PrimaryOnly(t *testing.T) {
	c, err := classifier.Build(&config.ClassifierConfig{Provider: "fake-a", APIKey: "k"})

	require.NoError(t, err)
	assert.Equal(t, namedClassifier{name: "fake-a"}, c)
}

func TestBuild_FallbackChain(t *testing.T) {
	cfg := &config.ClassifierConfig{
		Primary:   config.ClassifierProviderConfig{Provider: "fake-a", APIKey: "k"},
		Secondary: config.ClassifierProviderConfig{Provider: "fake-b", APIKey: "k"},
		Tertiary:  config.ClassifierProviderConfig{Provider: "fake-c", APIKey: "k"},
	}

	c, err := classifier.Build(cfg)

	require.NoError(t, err)
	assert.IsType(t, &classifier.FallbackClassifier{}, c)
	out, err := c.Classify(context.Background(), testInput)
	require.NoError(t, err)
	assert.Equal(t, "fake-a", out.ModelUsed)
}

func TestBuild_DualMode(t *testing.T) {
	cfg := &config.ClassifierConfig{
		Mode:      "dual",
		Primary:   config.ClassifierProviderConfig{Provider: "fake-a", APIKey: "k"},
		Secondary: config.ClassifierProviderConfig{Provider: "fake-b", APIKey: "k"},
	}

	c, err := classifier.Build(cfg)

	require.NoError(t, err)
	assert.IsType(t, &classifier.DualClassifier{}, c)
	out, err := c.Classify(context.Background(), testInput)
	require.NoError(t, err)
	assert.Equal(t, "fake-b", out.SecondaryModel)
}

func TestBuild_DualWithoutUsableSecondary(t *testing.T) {
	cfg := &config.ClassifierConfig{
		Mode:      "dual",
		Primary:   config.ClassifierProviderConfig{Provider: "fake-a", APIKey: "k"},
		Secondary: config.ClassifierProviderConfig{Provider: "fake-b"},
	}

	c, err := classifier.Build(cfg)

	require.NoError(t, err)
	assert.Equal(t, namedClassifier{name: "fake-a"}, c)
}

func TestBuild_MissingCredential(t *testing.T) {
	_, err := classifier.Build(&config.ClassifierConfig{Provider: "fake-a"})
	assert.ErrorIs(t, err, domain.ErrClassifierNotConfigured)
}
