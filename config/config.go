// Package config loads SDK configuration from YAML files and environment
// variables.
//
// Usage:
//
//	cfg, err := config.NewLoader().
//	    WithConfigPath("picsart.yaml").
//	    WithEnvPrefix("PICSART").
//	    Load()
//
// Precedence: defaults, then the YAML file, then environment variables.
package config

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/picsart/creative-apis-go/api"
	"github.com/picsart/creative-apis-go/types"
)

// Config is the full SDK configuration.
type Config struct {
	// APIKey authenticates every request.
	APIKey string `yaml:"api_key" env:"API_KEY"`
	// ImageBaseURL is the Image API endpoint.
	ImageBaseURL string `yaml:"image_base_url" env:"IMAGE_BASE_URL"`
	// GenAIBaseURL is the GenAI API endpoint.
	GenAIBaseURL string `yaml:"genai_base_url" env:"GENAI_BASE_URL"`
	// Timeout bounds each HTTP request.
	Timeout time.Duration `yaml:"timeout" env:"TIMEOUT"`
	// RateLimit throttles outgoing requests. Zero disables throttling.
	RateLimit RateLimitConfig `yaml:"rate_limit" env:"RATE_LIMIT"`
	// Polling tunes the long-running operation pollers.
	Polling PollingConfig `yaml:"polling" env:"POLLING"`
	// Log configures the SDK logger.
	Log LogConfig `yaml:"log" env:"LOG"`
	// Telemetry configures OpenTelemetry export.
	Telemetry TelemetryConfig `yaml:"telemetry" env:"TELEMETRY"`
}

// RateLimitConfig throttles outgoing requests.
type RateLimitConfig struct {
	// RequestsPerSecond caps the sustained request rate.
	RequestsPerSecond float64 `yaml:"requests_per_second" env:"REQUESTS_PER_SECOND"`
	// Burst is the number of requests allowed above the sustained rate.
	Burst int `yaml:"burst" env:"BURST"`
}

// PollingConfig tunes the pollers of the asynchronous operations.
type PollingConfig struct {
	UltraUpscale PollPolicyConfig `yaml:"ultra_upscale" env:"ULTRA_UPSCALE"`
	Text2Image   PollPolicyConfig `yaml:"text2image" env:"TEXT2IMAGE"`
}

// PollPolicyConfig is one poller's schedule.
type PollPolicyConfig struct {
	FirstDelay  time.Duration `yaml:"first_delay" env:"FIRST_DELAY"`
	RepeatDelay time.Duration `yaml:"repeat_delay" env:"REPEAT_DELAY"`
	MaxRepeats  int           `yaml:"max_repeats" env:"MAX_REPEATS"`
}

// Policy converts the section to an api.PollPolicy.
func (p PollPolicyConfig) Policy() api.PollPolicy {
	return api.PollPolicy{
		FirstDelay:  p.FirstDelay,
		RepeatDelay: p.RepeatDelay,
		MaxRepeats:  p.MaxRepeats,
	}
}

// LogConfig configures the SDK logger.
type LogConfig struct {
	// Level: debug, info, warn, error.
	Level string `yaml:"level" env:"LEVEL"`
	// Format: json or console.
	Format string `yaml:"format" env:"FORMAT"`
}

// TelemetryConfig configures OpenTelemetry export.
type TelemetryConfig struct {
	Enabled      bool    `yaml:"enabled" env:"ENABLED"`
	ServiceName  string  `yaml:"service_name" env:"SERVICE_NAME"`
	OTLPEndpoint string  `yaml:"otlp_endpoint" env:"OTLP_ENDPOINT"`
	SampleRate   float64 `yaml:"sample_rate" env:"SAMPLE_RATE"`
}

// DefaultConfig returns the configuration used when nothing overrides it.
func DefaultConfig() *Config {
	return &Config{
		ImageBaseURL: "https://api.picsart.io/tools/1.0",
		GenAIBaseURL: "https://genai-api.picsart.io/v1",
		Timeout:      60 * time.Second,
		Polling: PollingConfig{
			UltraUpscale: PollPolicyConfig{
				FirstDelay:  2 * time.Second,
				RepeatDelay: time.Second,
				MaxRepeats:  60,
			},
			Text2Image: PollPolicyConfig{
				FirstDelay:  5 * time.Second,
				RepeatDelay: time.Second,
				MaxRepeats:  60,
			},
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
		Telemetry: TelemetryConfig{
			ServiceName: "picsart-sdk",
			SampleRate:  1.0,
		},
	}
}

// Validate reports configuration values that cannot work.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("api_key is required")
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %s", c.Timeout)
	}
	for name, p := range map[string]PollPolicyConfig{
		"polling.ultra_upscale": c.Polling.UltraUpscale,
		"polling.text2image":    c.Polling.Text2Image,
	} {
		if p.MaxRepeats < 0 {
			return fmt.Errorf("%s.max_repeats must not be negative", name)
		}
		if p.RepeatDelay < 0 || p.FirstDelay < 0 {
			return fmt.Errorf("%s delays must not be negative", name)
		}
	}
	if c.RateLimit.RequestsPerSecond < 0 {
		return fmt.Errorf("rate_limit.requests_per_second must not be negative")
	}
	return nil
}

// ImageAPIConfig returns the per-call configuration for the Image API.
func (c *Config) ImageAPIConfig() types.Config {
	return types.NewConfig(c.APIKey, c.ImageBaseURL, c.Timeout)
}

// GenAIAPIConfig returns the per-call configuration for the GenAI API.
func (c *Config) GenAIAPIConfig() types.Config {
	return types.NewConfig(c.APIKey, c.GenAIBaseURL, c.Timeout)
}

// Logger builds a zap logger from the Log section.
func (l LogConfig) Logger() (*zap.Logger, error) {
	level, err := zap.ParseAtomicLevel(l.Level)
	if err != nil {
		return nil, fmt.Errorf("parse log level %q: %w", l.Level, err)
	}
	zc := zap.NewProductionConfig()
	if l.Format == "console" {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = level
	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger, nil
}
