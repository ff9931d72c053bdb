package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds application configuration
type Config struct {
	Server ServerConfig
	Retell RetellConfig
	Call   CallConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port            string
	Host            string
	Environment     string
	AllowedOrigins  []string
	ShutdownTimeout int
}

// RetellConfig holds voice platform configuration, read from RETELL_* variables
type RetellConfig struct {
	APIKey  string        `envconfig:"API_KEY"`
	BaseURL string        `envconfig:"BASE_URL" default:"https://api.retellai.com"`
	Timeout time.Duration `envconfig:"TIMEOUT" default:"30s"`
	UseMock bool          `envconfig:"USE_MOCK" default:"false"`
}

// CallConfig holds call workflow settings
type CallConfig struct {
	// DetailDelay is waited before fetching call details so the platform can
	// finish processing the transcript.
	DetailDelay time.Duration
	// EnrichConcurrency bounds parallel LLM lookups when listing agents
	EnrichConcurrency int
	// PromptCacheTTL keeps looked-up LLM prompts in memory; 0 disables the cache.
	// Entries are keyed by LLM id, so a prompt edited on the platform side
	// stays stale until its entry expires.
	PromptCacheTTL time.Duration
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables or defaults")
	}

	config := &Config{
		Server: ServerConfig{
			Port:            getEnv("PORT", "3001"),
			Host:            getEnv("HOST", "0.0.0.0"),
			Environment:     getEnv("ENVIRONMENT", "development"),
			AllowedOrigins:  getEnvAsList("ALLOWED_ORIGINS", "http://localhost:3000"),
			ShutdownTimeout: getEnvAsInt("SHUTDOWN_TIMEOUT", 10),
		},
		Call: CallConfig{
			DetailDelay:       getEnvAsDuration("CALL_DETAIL_DELAY", "2s"),
			EnrichConcurrency: getEnvAsInt("AGENT_ENRICH_CONCURRENCY", 8),
			PromptCacheTTL:    getEnvAsDuration("LLM_PROMPT_CACHE_TTL", "1m"),
		},
	}

	if err := envconfig.Process("RETELL", &config.Retell); err != nil {
		return nil, fmt.Errorf("failed to read RETELL settings: %w", err)
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if !c.Retell.UseMock && c.Retell.APIKey == "" {
		return fmt.Errorf("RETELL_API_KEY is required unless RETELL_USE_MOCK is set")
	}
	if c.Call.DetailDelay < 0 {
		return fmt.Errorf("CALL_DETAIL_DELAY must not be negative")
	}
	if c.Call.PromptCacheTTL < 0 {
		return fmt.Errorf("LLM_PROMPT_CACHE_TTL must not be negative")
	}
	if c.Call.EnrichConcurrency < 1 {
		return fmt.Errorf("AGENT_ENRICH_CONCURRENCY must be at least 1")
	}
	return nil
}

// IsProduction reports whether the server runs in production mode
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

// GetServerAddr returns the listen address
func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%s", c.Server.Host, c.Server.Port)
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsList(key, defaultValue string) []string {
	var out []string
	for _, part := range strings.Split(getEnv(key, defaultValue), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	duration, err := time.ParseDuration(valueStr)
	if err != nil {
		duration, _ = time.ParseDuration(defaultValue)
	}
	return duration
}
