// Package api defines the public request/response contracts of the support
// gateway and the fixed equipment-type enumeration shared with the
// classification prompt.
package api

import (
	"fmt"
	"strings"
)

// LowConfidenceThreshold is the cutoff below which a classification is
// treated as unreliable and MESSAGE becomes mandatory.
const LowConfidenceThreshold = 0.6

// LowConfidencePrefix is the fixed opening of the corrective-guidance message
// the model must return for low-confidence classifications.
const LowConfidencePrefix = "No se reconoce el equipo con la imagen proporcionada"

// EquipmentTypes is the closed set of values the classifier may emit for
// EQUIPMENT_TYPE. It mirrors the enumeration in the classifier instructions.
var EquipmentTypes = []string{
	"ONT", "MODEM_CABLE", "MODEM_XDSL", "ROUTER", "GATEWAY",
	"ACCESS_POINT", "REPEATER", "MESH_NODE",
	"DECODER_IPTV", "DECODER_DTH", "DECODER_CABLE",
	"ATA", "PHONE_IP",
	"SWITCH", "SWITCH_POE", "OLT", "CMTS", "FIREWALL",
	"CPE_LTE", "ROUTER_5G", "ONT_WIFI_6", "ROUTER_WIFI_6",
	"HOTSPOT_WIFI", "IAD", "OTHER",
}

// IsValidEquipmentType reports whether t belongs to the fixed enumeration.
func IsValidEquipmentType(t string) bool {
	for _, v := range EquipmentTypes {
		if v == t {
			return true
		}
	}
	return false
}

// EquipmentClassification is the strict JSON object the vision agent must
// return. Field names are part of the wire contract and must stay uppercase.
type EquipmentClassification struct {
	EquipmentType   string  `json:"EQUIPMENT_TYPE"`
	Brand           *string `json:"BRAND"`
	Model           *string `json:"MODEL"`
	MatchConfidence float64 `json:"MATCH_CONFIDENCE"`
	Message         *string `json:"MESSAGE"`
}

// Validate enforces the structural rules of the classification contract:
// a known equipment type, a confidence inside [0,1], and a mandatory
// low-confidence guidance message, opening with the fixed prefix, below the
// threshold.
func (c *EquipmentClassification) Validate() error {
	if !IsValidEquipmentType(c.EquipmentType) {
		return fmt.Errorf("unknown EQUIPMENT_TYPE %q", c.EquipmentType)
	}
	if c.MatchConfidence < 0.0 || c.MatchConfidence > 1.0 {
		return fmt.Errorf("MATCH_CONFIDENCE %v outside [0.0, 1.0]", c.MatchConfidence)
	}
	if c.MatchConfidence < LowConfidenceThreshold {
		if c.Message == nil || strings.TrimSpace(*c.Message) == "" {
			return fmt.Errorf("MESSAGE is mandatory when MATCH_CONFIDENCE < %v", LowConfidenceThreshold)
		}
		if !strings.HasPrefix(strings.TrimSpace(*c.Message), LowConfidencePrefix) {
			return fmt.Errorf("MESSAGE must start with %q when MATCH_CONFIDENCE < %v", LowConfidencePrefix, LowConfidenceThreshold)
		}
	}
	return nil
}

// LowConfidence reports whether the classification falls below the threshold.
func (c *EquipmentClassification) LowConfidence() bool {
	return c.MatchConfidence < LowConfidenceThreshold
}

// ChatMessage is one role-tagged turn submitted by the front end.
type ChatMessage struct {
	Role    string `json:"role" binding:"required"`
	Content string `json:"content"`
}

// ChatRequest is the body of POST /api/agente-soporte. The front end sends
// the new turns; the gateway owns the stored history for the conversation.
type ChatRequest struct {
	ConversationID string        `json:"conversationId"`
	Messages       []ChatMessage `json:"messages" binding:"required"`
}

// ChatResponse carries the final assistant reply back to the caller.
type ChatResponse struct {
	Reply          string `json:"reply"`
	ConversationID string `json:"conversationId,omitempty"`
}

// DetectedEquipment identifies the device the diagnosis stage settled on.
type DetectedEquipment struct {
	DeviceModel string `json:"device_model"`
	DeviceType  string `json:"device_type"`
}

// DiagnosisResponse is the full second-stage contract. Handlers relay Reply
// (plus the detected-equipment summary) to the caller.
type DiagnosisResponse struct {
	Reply             string             `json:"reply"`
	DetectedEquipment *DetectedEquipment `json:"equipoDetectado,omitempty"`
	ProblemID         string             `json:"problemaId,omitempty"`
	RequiresMoreInfo  bool               `json:"requiresMoreInfo"`
}

// ClearHistoryResponse reports the outcome of the history-clear operation.
type ClearHistoryResponse struct {
	Message      string `json:"message"`
	CountRemoved int    `json:"countRemoved"`
}
