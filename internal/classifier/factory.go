package classifier

import (
	"fmt"

	"docforensics/internal/config"
	"docforensics/internal/domain"
	"docforensics/internal/port"
)

// ProviderFactory is a function that creates a DocumentClassifier from a provider config.
type ProviderFactory func(cfg *config.ClassifierProviderConfig) (port.DocumentClassifier, error)

// registry of provider factories, populated by the providers package.
var providers = map[string]ProviderFactory{}

// RegisterProvider registers a classifier provider factory by name.
func RegisterProvider(name string, factory ProviderFactory) {
	providers[name] = factory
}

// New creates a DocumentClassifier from a provider config using the registered factory.
func New(cfg *config.ClassifierProviderConfig) (port.DocumentClassifier, error) {
	factory, ok := providers[cfg.Provider]
	if !ok {
		return nil, fmt.Errorf("unknown classifier provider: %s", cfg.Provider)
	}
	return factory(cfg)
}

// Build assembles the classifier described by cfg. In single mode the primary
// is wrapped in a fallback chain with any usable secondary and tertiary
// providers; in dual mode primary and secondary run side by side.
func Build(cfg *config.ClassifierConfig) (port.DocumentClassifier, error) {
	primaryCfg := cfg.PrimaryConfig()
	if err := primaryCfg.Validate(); err != nil {
		return nil, err
	}
	primary, err := New(primaryCfg)
	if err != nil {
		return nil, fmt.Errorf("creating primary classifier: %w", err)
	}

	var secondary port.DocumentClassifier
	secondaryName := ""
	if sc := cfg.SecondaryConfig(); sc != nil && sc.Validate() == nil {
		if secondary, err = New(sc); err != nil {
			return nil, fmt.Errorf("creating secondary classifier: %w", err)
		}
		secondaryName = sc.Provider
	}

	if cfg.ClassifyMode() == domain.ClassifyModeDual && secondary != nil {
		return NewDualClassifier(primary, secondary), nil
	}

	classifiers := []port.DocumentClassifier{primary}
	names := []string{primaryCfg.Provider}
	if secondary != nil {
		classifiers = append(classifiers, secondary)
		names = append(names, secondaryName)
	}
	if tc := cfg.TertiaryConfig(); tc != nil && tc.Validate() == nil {
		tertiary, err := New(tc)
		if err != nil {
			return nil, fmt.Errorf("creating tertiary classifier: %w", err)
		}
		classifiers = append(classifiers, tertiary)
		names = append(names, tc.Provider)
	}
	if len(classifiers) == 1 {
		return primary, nil
	}
	return NewFallbackClassifier(classifiers, names), nil
}
