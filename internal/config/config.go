// File: internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
type Config struct {
	// Server Configuration
	GinMode            string        `mapstructure:"GIN_MODE"`
	ServerHost         string        `mapstructure:"SERVER_HOST"`
	ServerPort         string        `mapstructure:"SERVER_PORT"`
	ServerTimeout      time.Duration `mapstructure:"-"`
	ServerWriteTimeout time.Duration `mapstructure:"-"`
	CORSAllowedOrigins []string      `mapstructure:"-"`

	// Logging Configuration
	LogLevel  string `mapstructure:"LOG_LEVEL"`
	LogFormat string `mapstructure:"LOG_FORMAT"`

	// Firebase Configuration
	FirebaseServiceAccountKeyPath string        `mapstructure:"FIREBASE_SERVICE_ACCOUNT_KEY_PATH"`
	FirebaseProjectID             string        `mapstructure:"FIREBASE_PROJECT_ID"`
	AuthCheckRevoked              bool          `mapstructure:"AUTH_CHECK_REVOKED"`
	AuthStrictBearer              bool          `mapstructure:"AUTH_STRICT_BEARER"`
	IdentityTimeout               time.Duration `mapstructure:"-"`

	// Translation Engine Configuration
	TranslateCredentialsPath string        `mapstructure:"TRANSLATE_CREDENTIALS_PATH"`
	TranslateAPIKey          string        `mapstructure:"TRANSLATE_API_KEY"`
	TranslateEndpoint        string        `mapstructure:"TRANSLATE_ENDPOINT"`
	TranslateTimeout         time.Duration `mapstructure:"-"`

	// Inference Endpoint Configuration
	InferenceBaseURL   string        `mapstructure:"INFERENCE_BASE_URL"`
	InferenceAPIKey    string        `mapstructure:"INFERENCE_API_KEY"`
	InferenceModel     string        `mapstructure:"INFERENCE_MODEL"`
	InferenceMaxTokens int           `mapstructure:"INFERENCE_MAX_TOKENS"`
	InferenceTimeout   time.Duration `mapstructure:"-"`

	// Metrics
	MetricsEnabled   bool   `mapstructure:"METRICS_ENABLED"`
	MetricsNamespace string `mapstructure:"METRICS_NAMESPACE"`
}

// Load attempts to load configuration from a .env file (if present) and environment variables.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("error loading .env file: %w", err)
		}
	}

	v := viper.New()

	// Set default values
	v.SetDefault("GIN_MODE", "debug")
	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("SERVER_PORT", "8000")
	v.SetDefault("SERVER_TIMEOUT_SECONDS", 30)
	v.SetDefault("SERVER_WRITE_TIMEOUT_SECONDS", 60)
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "console")

	// Firebase. An empty key path means Application Default Credentials.
	v.SetDefault("FIREBASE_SERVICE_ACCOUNT_KEY_PATH", "")
	v.SetDefault("FIREBASE_PROJECT_ID", "")
	v.SetDefault("AUTH_CHECK_REVOKED", false)
	v.SetDefault("AUTH_STRICT_BEARER", false)
	v.SetDefault("IDENTITY_TIMEOUT_SECONDS", 0)

	// Translation
	v.SetDefault("TRANSLATE_CREDENTIALS_PATH", "")
	v.SetDefault("TRANSLATE_API_KEY", "")
	v.SetDefault("TRANSLATE_ENDPOINT", "")
	v.SetDefault("TRANSLATE_TIMEOUT_SECONDS", 0)

	// Inference
	v.SetDefault("INFERENCE_BASE_URL", "https://router.huggingface.co/v1")
	v.SetDefault("INFERENCE_API_KEY", "")
	v.SetDefault("INFERENCE_MODEL", "meta-llama/Llama-3.1-8B-Instruct")
	v.SetDefault("INFERENCE_MAX_TOKENS", 150)
	v.SetDefault("INFERENCE_TIMEOUT_SECONDS", 0)

	v.SetDefault("METRICS_ENABLED", true)
	v.SetDefault("METRICS_NAMESPACE", "caffind")

	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling configuration: %w", err)
	}

	// Durations and lists are read by hand: the env vars carry whole seconds
	// and comma separated values.
	cfg.ServerTimeout = seconds(v, "SERVER_TIMEOUT_SECONDS")
	cfg.ServerWriteTimeout = seconds(v, "SERVER_WRITE_TIMEOUT_SECONDS")
	cfg.IdentityTimeout = seconds(v, "IDENTITY_TIMEOUT_SECONDS")
	cfg.TranslateTimeout = seconds(v, "TRANSLATE_TIMEOUT_SECONDS")
	cfg.InferenceTimeout = seconds(v, "INFERENCE_TIMEOUT_SECONDS")
	cfg.CORSAllowedOrigins = splitList(v.GetString("CORS_ALLOWED_ORIGINS"))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the values Load cannot default away.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.ServerPort) == "" {
		return fmt.Errorf("SERVER_PORT must not be empty")
	}
	if c.InferenceMaxTokens <= 0 {
		return fmt.Errorf("INFERENCE_MAX_TOKENS must be positive, got %d", c.InferenceMaxTokens)
	}
	for name, d := range map[string]time.Duration{
		"IDENTITY_TIMEOUT_SECONDS":  c.IdentityTimeout,
		"TRANSLATE_TIMEOUT_SECONDS": c.TranslateTimeout,
		"INFERENCE_TIMEOUT_SECONDS": c.InferenceTimeout,
	} {
		if d < 0 {
			return fmt.Errorf("%s must not be negative", name)
		}
	}
	for name, path := range map[string]string{
		"FIREBASE_SERVICE_ACCOUNT_KEY_PATH": c.FirebaseServiceAccountKeyPath,
		"TRANSLATE_CREDENTIALS_PATH":        c.TranslateCredentialsPath,
	} {
		if strings.TrimSpace(path) == "" {
			continue
		}
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return fmt.Errorf("credentials file specified in %s (%s) not found", name, path)
		}
	}
	return nil
}

func seconds(v *viper.Viper, key string) time.Duration {
	return time.Duration(v.GetInt(key)) * time.Second
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
