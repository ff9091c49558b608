package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docforensics/internal/config"
	"docforensics/internal/domain"
)

func TestClassifierConfig_PrimaryConfig_LegacyFallback(t *testing.T) {
	cfg := config.ClassifierConfig{
		Provider:     "gemini",
		APIKey:       "gk-legacy",
		DefaultModel: "gemini-2.0-flash",
		MaxRetries:   3,
		TimeoutSecs:  30,
	}

	primary := cfg.PrimaryConfig()

	assert.Equal(t, "gemini", primary.Provider)
	assert.Equal(t, "gk-legacy", primary.APIKey)
	assert.Equal(t, "gemini-2.0-flash", primary.DefaultModel)
	assert.Equal(t, 3, primary.MaxRetries)
	assert.Equal(t, 30, primary.TimeoutSecs)
}

func TestClassifierConfig_PrimaryConfig_ExplicitPrimary(t *testing.T) {
	cfg := config.ClassifierConfig{
		Provider: "legacy-should-be-ignored",
		Primary: config.ClassifierProviderConfig{
			Provider:     "claude",
			APIKey:       "sk-primary",
			DefaultModel: "claude-sonnet-4-20250514",
		},
	}

	primary := cfg.PrimaryConfig()

	assert.Equal(t, "claude", primary.Provider)
	assert.Equal(t, "sk-primary", primary.APIKey)
	assert.Equal(t, "claude-sonnet-4-20250514", primary.DefaultModel)
}

func TestClassifierConfig_SecondaryAndTertiary(t *testing.T) {
	cfg := config.ClassifierConfig{Provider: "gemini", APIKey: "gk"}
	assert.Nil(t, cfg.SecondaryConfig())
	assert.Nil(t, cfg.TertiaryConfig())

	cfg.Secondary = config.ClassifierProviderConfig{Provider: "openai", APIKey: "sk-openai"}
	cfg.Tertiary = config.ClassifierProviderConfig{Provider: "vertex", ProjectID: "acme"}

	require.NotNil(t, cfg.SecondaryConfig())
	assert.Equal(t, "openai", cfg.SecondaryConfig().Provider)
	require.NotNil(t, cfg.TertiaryConfig())
	assert.Equal(t, "acme", cfg.TertiaryConfig().ProjectID)
}

func TestClassifierConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.ClassifierConfig
		wantErr bool
	}{
		{"legacy key present", config.ClassifierConfig{Provider: "gemini", APIKey: "gk"}, false},
		{"missing key", config.ClassifierConfig{Provider: "gemini"}, true},
		{"no provider", config.ClassifierConfig{}, true},
		{"vertex needs project", config.ClassifierConfig{Provider: "vertex"}, true},
		{"vertex with project", config.ClassifierConfig{Provider: "vertex", ProjectID: "acme"}, false},
		{
			"secondary is not required",
			config.ClassifierConfig{
				Primary:   config.ClassifierProviderConfig{Provider: "claude", APIKey: "sk"},
				Secondary: config.ClassifierProviderConfig{Provider: "openai"},
			},
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrClassifierNotConfigured)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestClassifierConfig_ClassifyMode(t *testing.T) {
	assert.Equal(t, domain.ClassifyModeSingle, (&config.ClassifierConfig{}).ClassifyMode())
	assert.Equal(t, domain.ClassifyModeDual, (&config.ClassifierConfig{Mode: "DUAL"}).ClassifyMode())
	assert.Equal(t, domain.ClassifyModeSingle, (&config.ClassifierConfig{Mode: "bogus"}).ClassifyMode())
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("GEMINI_API_KEY", "")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Port)
	assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "gemini", cfg.Classifier.Provider)
	assert.Equal(t, "gemini-2.0-flash", cfg.Classifier.DefaultModel)
	assert.Equal(t, domain.ClassifyModeSingle, cfg.Classifier.ClassifyMode())
	assert.Equal(t, int64(20*1024*1024), cfg.Intake.MaxFileSizeBytes())
	assert.Equal(t, 20, cfg.Intake.MaxPDFPages)
	assert.Equal(t, "noop", cfg.Email.Provider)
	assert.Equal(t, 64, cfg.Viewer.MaxSessions)
	assert.Contains(t, cfg.CORS.AllowedOrigins, "http://localhost:5173")
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("GEMINI_API_KEY", "gk-browser")
	t.Setenv("DOCFORENSICS_CLASSIFIER_MODE", "dual")
	t.Setenv("DOCFORENSICS_CLASSIFIER_SECONDARY_PROVIDER", "openai")
	t.Setenv("DOCFORENSICS_CLASSIFIER_SECONDARY_API_KEY", "sk-openai")
	t.Setenv("DOCFORENSICS_CLASSIFIER_SECONDARY_DEFAULT_MODEL", "gpt-4o")
	t.Setenv("DOCFORENSICS_CORS_ALLOWED_ORIGINS", "https://a.example, ,https://b.example")
	t.Setenv("DOCFORENSICS_INTAKE_MAX_PDF_PAGES", "5")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "gk-browser", cfg.Classifier.PrimaryConfig().APIKey)
	assert.Equal(t, domain.ClassifyModeDual, cfg.Classifier.ClassifyMode())
	require.NotNil(t, cfg.Classifier.SecondaryConfig())
	assert.Equal(t, "gpt-4o", cfg.Classifier.SecondaryConfig().DefaultModel)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, 5, cfg.Intake.MaxPDFPages)
}

func TestLoad_PortOverride(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("DOCFORENSICS_SERVER_PORT", "")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, ":9000", cfg.Server.Port)
}

func TestLoad_InvalidMode(t *testing.T) {
	t.Setenv("DOCFORENSICS_CLASSIFIER_MODE", "triple")

	_, err := config.Load()
	assert.Error(t, err)
}
