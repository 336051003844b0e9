package agent

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/karoldperez/clarofix/internal/api"
	"github.com/karoldperez/clarofix/internal/kb"
	"github.com/karoldperez/clarofix/internal/llm"
	"github.com/karoldperez/clarofix/internal/prompts"
)

// DiagnoserConfig holds the tunables of the diagnosis stage.
type DiagnoserConfig struct {
	Model     string
	MaxTokens int
}

// Diagnoser runs the second stage of an image-based support request: it
// combines the classification result with the knowledge-base manual of the
// detected model and asks the model for an initial diagnosis.
type Diagnoser struct {
	gateway llm.ModelGateway
	kb      *kb.KnowledgeBase
	logger  zerolog.Logger
	cfg     DiagnoserConfig
}

// NewDiagnoser wires the diagnosis agent to its collaborators.
func NewDiagnoser(gateway llm.ModelGateway, knowledgeBase *kb.KnowledgeBase, cfg DiagnoserConfig, logger zerolog.Logger) *Diagnoser {
	return &Diagnoser{
		gateway: gateway,
		kb:      knowledgeBase,
		logger:  logger.With().Str("component", "diagnoser").Logger(),
		cfg:     cfg,
	}
}

// diagnosisInput is the structured payload handed to the model as the user
// turn: the classification plus the manual, when the KB has one.
type diagnosisInput struct {
	Classification *api.EquipmentClassification `json:"clasificacion"`
	Manual         *kb.Manual                   `json:"manual,omitempty"`
	ManualMissing  bool                         `json:"manualNoDisponible,omitempty"`
}

// Diagnose produces the second-stage contract for a classified device.
// Output that does not parse as the expected JSON is reported as a
// MalformedOutputError with the raw text attached.
func (d *Diagnoser) Diagnose(ctx context.Context, classification *api.EquipmentClassification) (*api.DiagnosisResponse, error) {
	input := diagnosisInput{Classification: classification}
	if classification.Model != nil {
		if manual, ok := d.kb.ManualFor(*classification.Model); ok {
			input.Manual = &manual
		} else {
			input.ManualMissing = true
		}
	} else {
		input.ManualMissing = true
	}

	payload, err := json.Marshal(input)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize diagnosis input: %w", err)
	}

	messages := []llm.Message{
		{Role: llm.RoleSystem, Content: prompts.DiagnosisInstructions},
		{Role: llm.RoleUser, Content: string(payload)},
	}

	result, err := d.gateway.Generate(ctx, messages, &llm.GenerationConfig{Model: d.cfg.Model, MaxTokens: d.cfg.MaxTokens}, nil)
	if err != nil {
		return nil, fmt.Errorf("diagnosis model call failed: %w", err)
	}

	var diagnosis api.DiagnosisResponse
	if err := json.Unmarshal([]byte(stripCodeFence(result.Content)), &diagnosis); err != nil {
		return nil, &MalformedOutputError{Raw: result.Content, Err: fmt.Errorf("response is not valid JSON: %w", err)}
	}
	if diagnosis.Reply == "" {
		return nil, &MalformedOutputError{Raw: result.Content, Err: fmt.Errorf("diagnosis reply is empty")}
	}

	d.logger.Info().
		Str("problem_id", diagnosis.ProblemID).
		Bool("requires_more_info", diagnosis.RequiresMoreInfo).
		Msg("diagnosis produced")
	return &diagnosis, nil
}
