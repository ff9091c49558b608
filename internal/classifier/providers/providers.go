// Package providers registers every built-in classifier provider with the
// classifier factory.
package providers

import (
	"context"
	"sync"

	"docforensics/internal/classifier"
	"docforensics/internal/classifier/claude"
	"docforensics/internal/classifier/gemini"
	"docforensics/internal/classifier/openai"
	"docforensics/internal/classifier/vertex"
	"docforensics/internal/config"
	"docforensics/internal/port"
)

var once sync.Once

// Register adds gemini, claude, openai and vertex to the classifier registry.
// It is safe to call more than once.
func Register() {
	once.Do(func() {
		classifier.RegisterProvider("gemini", func(cfg *config.ClassifierProviderConfig) (port.DocumentClassifier, error) {
			return gemini.NewClassifier(cfg), nil
		})
		classifier.RegisterProvider("claude", func(cfg *config.ClassifierProviderConfig) (port.DocumentClassifier, error) {
			return claude.NewClassifier(cfg), nil
		})
		classifier.RegisterProvider("openai", func(cfg *config.ClassifierProviderConfig) (port.DocumentClassifier, error) {
			return openai.NewClassifier(cfg), nil
		})
		classifier.RegisterProvider("vertex", func(cfg *config.ClassifierProviderConfig) (port.DocumentClassifier, error) {
			return vertex.NewClassifier(context.Background(), cfg)
		})
	})
}
