package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"docforensics/internal/domain"
)

const envPrefix = "DOCFORENSICS"

// Config holds all application configuration.
type Config struct {
	Server     ServerConfig
	Log        LogConfig
	CORS       CORSConfig
	Classifier ClassifierConfig
	Intake     IntakeConfig
	S3         S3Config
	Email      EmailConfig
	Viewer     ViewerConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// ClassifierProviderConfig holds settings for a single document classifier provider.
type ClassifierProviderConfig struct {
	Provider     string `mapstructure:"provider"`
	APIKey       string `mapstructure:"api_key"`
	DefaultModel string `mapstructure:"default_model"`
	MaxRetries   int    `mapstructure:"max_retries"`
	TimeoutSecs  int    `mapstructure:"timeout_secs"`
	ProjectID    string `mapstructure:"project_id"` // vertex only
	Location     string `mapstructure:"location"`   // vertex only
}

// Validate reports domain.ErrClassifierNotConfigured when the provider is
// missing the credential it needs.
func (p *ClassifierProviderConfig) Validate() error {
	switch {
	case p == nil || p.Provider == "":
		return fmt.Errorf("%w: no provider selected", domain.ErrClassifierNotConfigured)
	case p.Provider == "vertex":
		if p.ProjectID == "" {
			return fmt.Errorf("%w: vertex project id is not set", domain.ErrClassifierNotConfigured)
		}
	case p.APIKey == "":
		return fmt.Errorf("%w: %s api key is not set", domain.ErrClassifierNotConfigured, p.Provider)
	}
	return nil
}

// ClassifierConfig holds document classifier settings with multi-provider support.
type ClassifierConfig struct {
	// Legacy flat fields, used when no explicit primary is configured
	Provider     string `mapstructure:"provider"`
	APIKey       string `mapstructure:"api_key"`
	DefaultModel string `mapstructure:"default_model"`
	MaxRetries   int    `mapstructure:"max_retries"`
	TimeoutSecs  int    `mapstructure:"timeout_secs"`
	ProjectID    string `mapstructure:"project_id"`
	Location     string `mapstructure:"location"`

	// Mode is "single" (fallback chain) or "dual" (primary and secondary in parallel).
	Mode string `mapstructure:"mode"`

	Primary   ClassifierProviderConfig `mapstructure:"primary"`
	Secondary ClassifierProviderConfig `mapstructure:"secondary"`
	Tertiary  ClassifierProviderConfig `mapstructure:"tertiary"`
}

// PrimaryConfig returns the primary provider config, falling back to legacy flat fields.
func (c *ClassifierConfig) PrimaryConfig() *ClassifierProviderConfig {
	if c.Primary.Provider != "" {
		return &c.Primary
	}
	return &ClassifierProviderConfig{
		Provider:     c.Provider,
		APIKey:       c.APIKey,
		DefaultModel: c.DefaultModel,
		MaxRetries:   c.MaxRetries,
		TimeoutSecs:  c.TimeoutSecs,
		ProjectID:    c.ProjectID,
		Location:     c.Location,
	}
}

// SecondaryConfig returns the secondary provider config, or nil if not configured.
func (c *ClassifierConfig) SecondaryConfig() *ClassifierProviderConfig {
	if c.Secondary.Provider != "" {
		return &c.Secondary
	}
	return nil
}

// TertiaryConfig returns the tertiary provider config, or nil if not configured.
func (c *ClassifierConfig) TertiaryConfig() *ClassifierProviderConfig {
	if c.Tertiary.Provider != "" {
		return &c.Tertiary
	}
	return nil
}

// ClassifyMode returns the configured mode, defaulting to single.
func (c *ClassifierConfig) ClassifyMode() domain.ClassifyMode {
	if m := domain.ClassifyMode(strings.ToLower(c.Mode)); domain.ValidClassifyModes[m] {
		return m
	}
	return domain.ClassifyModeSingle
}

// Validate checks the credential of the primary provider only; secondary and
// tertiary providers are optional and skipped when unusable.
func (c *ClassifierConfig) Validate() error {
	return c.PrimaryConfig().Validate()
}

// IntakeConfig bounds what an upload may contain.
type IntakeConfig struct {
	MaxFileSizeMB int64 `mapstructure:"max_file_size_mb"`
	MaxPDFPages   int   `mapstructure:"max_pdf_pages"`
}

// MaxFileSizeBytes returns the upload limit in bytes.
func (c IntakeConfig) MaxFileSizeBytes() int64 {
	return c.MaxFileSizeMB * 1024 * 1024
}

// S3Config holds settings for the read-only S3 document source.
type S3Config struct {
	Region    string `mapstructure:"region"`
	Endpoint  string `mapstructure:"endpoint"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
}

// EmailConfig holds alert delivery settings.
type EmailConfig struct {
	Provider       string `mapstructure:"provider"`
	Region         string `mapstructure:"region"`
	FromAddress    string `mapstructure:"from_address"`
	FromName       string `mapstructure:"from_name"`
	AlertRecipient string `mapstructure:"alert_recipient"`
}

// ViewerConfig holds document viewer session settings.
type ViewerConfig struct {
	MaxSessions int `mapstructure:"max_sessions"`
}

// Load reads configuration from environment variables with the DOCFORENSICS_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "30s")
	v.SetDefault("server.write_timeout", "180s")
	v.SetDefault("server.environment", "development")

	// Log defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	// CORS defaults (local front-end dev servers)
	v.SetDefault("cors.allowed_origins", "http://localhost:5173,http://127.0.0.1:5173,http://localhost:3000")

	// Classifier defaults (legacy flat)
	v.SetDefault("classifier.provider", "gemini")
	v.SetDefault("classifier.api_key", "")
	v.SetDefault("classifier.default_model", "gemini-2.0-flash")
	v.SetDefault("classifier.max_retries", 2)
	v.SetDefault("classifier.timeout_secs", 120)
	v.SetDefault("classifier.project_id", "")
	v.SetDefault("classifier.location", "us-central1")
	v.SetDefault("classifier.mode", string(domain.ClassifyModeSingle))

	for _, tier := range []string{"primary", "secondary", "tertiary"} {
		v.SetDefault("classifier."+tier+".provider", "")
		v.SetDefault("classifier."+tier+".api_key", "")
		v.SetDefault("classifier."+tier+".default_model", "")
		v.SetDefault("classifier."+tier+".max_retries", 2)
		v.SetDefault("classifier."+tier+".timeout_secs", 120)
		v.SetDefault("classifier."+tier+".project_id", "")
		v.SetDefault("classifier."+tier+".location", "us-central1")
	}

	// Intake defaults
	v.SetDefault("intake.max_file_size_mb", 20)
	v.SetDefault("intake.max_pdf_pages", 20)

	// S3 defaults
	v.SetDefault("s3.region", "us-east-1")
	v.SetDefault("s3.endpoint", "")

	// Email defaults
	v.SetDefault("email.provider", "noop")
	v.SetDefault("email.region", "us-east-1")
	v.SetDefault("email.from_address", "alerts@docforensics.local")
	v.SetDefault("email.from_name", "Document Forensics")
	v.SetDefault("email.alert_recipient", "")

	// Viewer defaults
	v.SetDefault("viewer.max_sessions", 64)

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":              "DOCFORENSICS_SERVER_PORT",
		"server.read_timeout":      "DOCFORENSICS_SERVER_READ_TIMEOUT",
		"server.write_timeout":     "DOCFORENSICS_SERVER_WRITE_TIMEOUT",
		"server.environment":       "DOCFORENSICS_SERVER_ENVIRONMENT",
		"log.level":                "DOCFORENSICS_LOG_LEVEL",
		"log.format":               "DOCFORENSICS_LOG_FORMAT",
		"cors.allowed_origins":     "DOCFORENSICS_CORS_ALLOWED_ORIGINS",
		"classifier.provider":      "DOCFORENSICS_CLASSIFIER_PROVIDER",
		"classifier.default_model": "DOCFORENSICS_CLASSIFIER_DEFAULT_MODEL",
		"classifier.max_retries":   "DOCFORENSICS_CLASSIFIER_MAX_RETRIES",
		"classifier.timeout_secs":  "DOCFORENSICS_CLASSIFIER_TIMEOUT_SECS",
		"classifier.project_id":    "DOCFORENSICS_CLASSIFIER_PROJECT_ID",
		"classifier.location":      "DOCFORENSICS_CLASSIFIER_LOCATION",
		"classifier.mode":          "DOCFORENSICS_CLASSIFIER_MODE",
		"intake.max_file_size_mb":  "DOCFORENSICS_INTAKE_MAX_FILE_SIZE_MB",
		"intake.max_pdf_pages":     "DOCFORENSICS_INTAKE_MAX_PDF_PAGES",
		"s3.region":                "DOCFORENSICS_S3_REGION",
		"s3.endpoint":              "DOCFORENSICS_S3_ENDPOINT",
		"s3.access_key":            "DOCFORENSICS_S3_ACCESS_KEY",
		"s3.secret_key":            "DOCFORENSICS_S3_SECRET_KEY",
		"email.provider":           "DOCFORENSICS_EMAIL_PROVIDER",
		"email.region":             "DOCFORENSICS_EMAIL_REGION",
		"email.from_address":       "DOCFORENSICS_EMAIL_FROM_ADDRESS",
		"email.from_name":          "DOCFORENSICS_EMAIL_FROM_NAME",
		"email.alert_recipient":    "DOCFORENSICS_EMAIL_ALERT_RECIPIENT",
		"viewer.max_sessions":      "DOCFORENSICS_VIEWER_MAX_SESSIONS",
	}
	for _, tier := range []string{"primary", "secondary", "tertiary"} {
		for _, field := range []string{"provider", "api_key", "default_model", "max_retries", "timeout_secs", "project_id", "location"} {
			key := "classifier." + tier + "." + field
			envBindings[key] = envPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		}
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}
	// The legacy flat key also accepts the bare GEMINI_API_KEY used by the browser client.
	_ = v.BindEnv("classifier.api_key", "DOCFORENSICS_CLASSIFIER_API_KEY", "GEMINI_API_KEY")

	cfg := &Config{}

	// PaaS hosts set a PORT env var. Use it if DOCFORENSICS_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("DOCFORENSICS_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: splitList(v.GetString("cors.allowed_origins")),
	}

	cfg.Classifier = ClassifierConfig{
		Provider:     v.GetString("classifier.provider"),
		APIKey:       v.GetString("classifier.api_key"),
		DefaultModel: v.GetString("classifier.default_model"),
		MaxRetries:   v.GetInt("classifier.max_retries"),
		TimeoutSecs:  v.GetInt("classifier.timeout_secs"),
		ProjectID:    v.GetString("classifier.project_id"),
		Location:     v.GetString("classifier.location"),
		Mode:         v.GetString("classifier.mode"),
		Primary:      providerConfig(v, "primary"),
		Secondary:    providerConfig(v, "secondary"),
		Tertiary:     providerConfig(v, "tertiary"),
	}
	if mode := domain.ClassifyMode(strings.ToLower(cfg.Classifier.Mode)); !domain.ValidClassifyModes[mode] {
		return nil, fmt.Errorf("invalid classifier mode %q: must be single or dual", cfg.Classifier.Mode)
	}

	cfg.Intake = IntakeConfig{
		MaxFileSizeMB: v.GetInt64("intake.max_file_size_mb"),
		MaxPDFPages:   v.GetInt("intake.max_pdf_pages"),
	}
	cfg.S3 = S3Config{
		Region:    v.GetString("s3.region"),
		Endpoint:  v.GetString("s3.endpoint"),
		AccessKey: v.GetString("s3.access_key"),
		SecretKey: v.GetString("s3.secret_key"),
	}
	cfg.Email = EmailConfig{
		Provider:       v.GetString("email.provider"),
		Region:         v.GetString("email.region"),
		FromAddress:    v.GetString("email.from_address"),
		FromName:       v.GetString("email.from_name"),
		AlertRecipient: v.GetString("email.alert_recipient"),
	}
	cfg.Viewer = ViewerConfig{
		MaxSessions: v.GetInt("viewer.max_sessions"),
	}

	return cfg, nil
}

func providerConfig(v *viper.Viper, tier string) ClassifierProviderConfig {
	prefix := "classifier." + tier + "."
	return ClassifierProviderConfig{
		Provider:     v.GetString(prefix + "provider"),
		APIKey:       v.GetString(prefix + "api_key"),
		DefaultModel: v.GetString(prefix + "default_model"),
		MaxRetries:   v.GetInt(prefix + "max_retries"),
		TimeoutSecs:  v.GetInt(prefix + "timeout_secs"),
		ProjectID:    v.GetString(prefix + "project_id"),
		Location:     v.GetString(prefix + "location"),
	}
}

// splitList parses a comma-separated list, dropping blanks.
func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
