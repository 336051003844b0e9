package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/karoldperez/clarofix/internal/api"
	"github.com/karoldperez/clarofix/internal/cache"
	"github.com/karoldperez/clarofix/internal/llm"
	"github.com/karoldperez/clarofix/internal/prompts"
	"github.com/karoldperez/clarofix/internal/version"
)

const classifyCachePrefix = "classify"

// ClassifierConfig holds the tunables of the vision classification agent.
type ClassifierConfig struct {
	Model     string
	MaxTokens int
}

// Classifier submits one device photo to the model in pure classification
// mode (no tools) and parses the strict-JSON result. Responses are cached by
// image hash so re-uploads of the same photo skip the model call.
type Classifier struct {
	gateway llm.ModelGateway
	cache   cache.Cache
	logger  zerolog.Logger
	cfg     ClassifierConfig
}

// NewClassifier wires the classification agent to its collaborators.
func NewClassifier(gateway llm.ModelGateway, responseCache cache.Cache, cfg ClassifierConfig, logger zerolog.Logger) *Classifier {
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = 400
	}
	return &Classifier{
		gateway: gateway,
		cache:   responseCache,
		logger:  logger.With().Str("component", "classifier").Logger(),
		cfg:     cfg,
	}
}

// Classify identifies the device on the photo. A low-confidence result is a
// successful classification carrying guidance in MESSAGE, not an error;
// output that does not parse (or violates the contract) is reported as a
// MalformedOutputError with the raw text attached.
func (c *Classifier) Classify(ctx context.Context, imageData []byte, mimeType string) (*api.EquipmentClassification, error) {
	cacheKey := version.VersionedCacheKey(classifyCachePrefix, imageData)
	if cached, ok := c.cache.Get(ctx, cacheKey); ok {
		var classification api.EquipmentClassification
		if err := json.Unmarshal([]byte(cached), &classification); err == nil {
			c.logger.Debug().Str("key", cacheKey).Msg("classification cache hit")
			return &classification, nil
		}
	}

	messages := []llm.Message{
		{Role: llm.RoleSystem, Content: prompts.ClassifierInstructions},
		{
			Role:    llm.RoleUser,
			Content: prompts.ClassifierUserPrompt,
			Images:  []llm.ImageAttachment{{MIMEType: mimeType, Data: imageData}},
		},
	}

	result, err := c.gateway.Generate(ctx, messages, &llm.GenerationConfig{Model: c.cfg.Model, MaxTokens: c.cfg.MaxTokens}, nil)
	if err != nil {
		return nil, fmt.Errorf("classification model call failed: %w", err)
	}

	classification, err := parseClassification(result.Content)
	if err != nil {
		return nil, &MalformedOutputError{Raw: result.Content, Err: err}
	}

	if raw, err := json.Marshal(classification); err == nil {
		c.cache.Set(ctx, cacheKey, string(raw))
	}

	c.logger.Info().
		Str("equipment_type", classification.EquipmentType).
		Float64("confidence", classification.MatchConfidence).
		Msg("equipment classified")
	return classification, nil
}

func parseClassification(raw string) (*api.EquipmentClassification, error) {
	var classification api.EquipmentClassification
	if err := json.Unmarshal([]byte(stripCodeFence(raw)), &classification); err != nil {
		return nil, fmt.Errorf("response is not valid JSON: %w", err)
	}
	if err := classification.Validate(); err != nil {
		return nil, err
	}
	return &classification, nil
}

// stripCodeFence tolerates models that wrap their JSON in a markdown fence
// despite the instructions.
func stripCodeFence(raw string) string {
	s := strings.TrimSpace(raw)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
