package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// AppConfig holds all configuration for the gateway, loaded from the
// environment (secrets, addresses) and config.yaml (behavior tunables).
type AppConfig struct {
	Port          string
	GinMode       string
	RedisAddr     string
	OpenAIKey     string
	OpenAIBaseURL string
	GeminiKey     string
	Agent         AgentSettings
}

// AgentSettings are the behavior tunables read from config.yaml. Zero values
// fall back to the defaults below.
type AgentSettings struct {
	// SupportModel answers chat turns and tool calls.
	SupportModel string `yaml:"support_model"`
	// VisionModel handles photo classification and diagnosis. It must be a
	// multimodal model.
	VisionModel string `yaml:"vision_model"`

	SupportMaxTokens int `yaml:"support_max_tokens"`
	VisionMaxTokens  int `yaml:"vision_max_tokens"`
	MaxToolRounds    int `yaml:"max_tool_rounds"`

	// RequestsPerMinute throttles outbound model calls; zero disables the
	// limiter.
	RequestsPerMinute int `yaml:"requests_per_minute"`
	RateBurst         int `yaml:"rate_burst"`

	// ConversationTTLMinutes expires idle Redis conversations; zero keeps
	// them until cleared.
	ConversationTTLMinutes int `yaml:"conversation_ttl_minutes"`
	// CacheTTLMinutes bounds cached classification responses.
	CacheTTLMinutes int `yaml:"cache_ttl_minutes"`

	// DirectoryFile and KnowledgeBaseFile override the built-in seed data.
	DirectoryFile     string `yaml:"directory_file"`
	KnowledgeBaseFile string `yaml:"knowledge_base_file"`
}

const configFile = "config.yaml"

// LoadConfig loads a .env file (local development only), the environment,
// and config.yaml when present.
func LoadConfig() (*AppConfig, error) {
	// In containers (GIN_MODE="release") configuration comes in as real
	// environment variables; only local runs read a .env file.
	ginMode := os.Getenv("GIN_MODE")
	if ginMode != "release" {
		_ = godotenv.Load()
	}

	cfg := &AppConfig{
		Port:          os.Getenv("PORT"),
		GinMode:       ginMode,
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		OpenAIKey:     os.Getenv("OPENAI_API_KEY"),
		OpenAIBaseURL: os.Getenv("OPENAI_BASE_URL"),
		GeminiKey:     os.Getenv("GEMINI_API_KEY"),
	}
	if cfg.Port == "" {
		cfg.Port = "3000"
	}

	if raw, err := os.ReadFile(configFile); err == nil {
		if err := yaml.Unmarshal(raw, &cfg.Agent); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", configFile, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read %s: %w", configFile, err)
	}
	applyAgentDefaults(&cfg.Agent)

	if err := validateKeys(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyAgentDefaults(a *AgentSettings) {
	if a.SupportModel == "" {
		a.SupportModel = "gpt-4.1-mini"
	}
	if a.VisionModel == "" {
		a.VisionModel = "gpt-4.1-mini"
	}
	if a.SupportMaxTokens <= 0 {
		a.SupportMaxTokens = 1024
	}
	if a.VisionMaxTokens <= 0 {
		a.VisionMaxTokens = 400
	}
	if a.MaxToolRounds <= 0 {
		a.MaxToolRounds = 5
	}
	if a.RateBurst <= 0 {
		a.RateBurst = 3
	}
	if a.ConversationTTLMinutes < 0 {
		a.ConversationTTLMinutes = 0
	}
	if a.CacheTTLMinutes <= 0 {
		a.CacheTTLMinutes = 60
	}
}

// validateKeys checks that the API key for each configured model's provider
// is present.
func validateKeys(cfg *AppConfig) error {
	for _, modelID := range []string{cfg.Agent.SupportModel, cfg.Agent.VisionModel} {
		switch {
		case strings.HasPrefix(modelID, "gemini"):
			if cfg.GeminiKey == "" {
				return fmt.Errorf("model %s requires GEMINI_API_KEY", modelID)
			}
		default:
			if cfg.OpenAIKey == "" {
				return fmt.Errorf("model %s requires OPENAI_API_KEY", modelID)
			}
		}
	}
	return nil
}
