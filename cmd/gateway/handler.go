package main

import (
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/karoldperez/clarofix/internal/agent"
	"github.com/karoldperez/clarofix/internal/api"
	"github.com/karoldperez/clarofix/internal/conversation"
	"github.com/karoldperez/clarofix/internal/llm"
)

// imageField is the multipart form field carrying the uploaded photo.
const imageField = "imagen"

// SupportChatter runs one orchestration round for a conversation.
type SupportChatter interface {
	Chat(ctx context.Context, conversationID string, incoming []llm.Message) (string, error)
}

// EquipmentClassifier identifies a device from a photo.
type EquipmentClassifier interface {
	Classify(ctx context.Context, imageData []byte, mimeType string) (*api.EquipmentClassification, error)
}

// EquipmentDiagnoser produces the second-stage diagnosis for a
// classification.
type EquipmentDiagnoser interface {
	Diagnose(ctx context.Context, classification *api.EquipmentClassification) (*api.DiagnosisResponse, error)
}

// GatewayHandler exposes the HTTP surface of the support gateway.
type GatewayHandler struct {
	classifier EquipmentClassifier
	diagnoser  EquipmentDiagnoser
	support    SupportChatter
	store      conversation.Store
	logger     zerolog.Logger
}

// NewGatewayHandler wires the handler to the agents and the conversation
// store.
func NewGatewayHandler(
	classifier EquipmentClassifier,
	diagnoser EquipmentDiagnoser,
	support SupportChatter,
	store conversation.Store,
	logger zerolog.Logger,
) *GatewayHandler {
	return &GatewayHandler{
		classifier: classifier,
		diagnoser:  diagnoser,
		support:    support,
		store:      store,
		logger:     logger.With().Str("component", "http").Logger(),
	}
}

// HandleIdentifyEquipment serves POST /api/identificar-equipo: one uploaded
// photo in, the strict-JSON classification out.
func (h *GatewayHandler) HandleIdentifyEquipment(c *gin.Context) {
	imageData, mimeType, ok := h.readImage(c)
	if !ok {
		return
	}

	classification, err := h.classifier.Classify(c.Request.Context(), imageData, mimeType)
	if err != nil {
		h.respondModelError(c, err, "Error interno identificando el equipo")
		return
	}
	c.JSON(http.StatusOK, classification)
}

// HandleSupportChat serves POST /api/agente-soporte. A JSON body runs the
// conversational orchestration loop; a multipart body with a photo runs
// classification followed by the diagnosis stage.
func (h *GatewayHandler) HandleSupportChat(c *gin.Context) {
	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		h.handleImageSupport(c)
		return
	}

	var req api.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Debes enviar un arreglo 'messages' con los mensajes del chat."})
		return
	}
	if len(req.Messages) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "El arreglo 'messages' no puede estar vacío."})
		return
	}

	conversationID := req.ConversationID
	if conversationID == "" {
		conversationID = uuid.NewString()
	}

	incoming := make([]llm.Message, 0, len(req.Messages))
	for _, msg := range req.Messages {
		role := llm.Role(msg.Role)
		if role != llm.RoleUser && role != llm.RoleAssistant {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Cada mensaje debe tener role 'user' o 'assistant'."})
			return
		}
		incoming = append(incoming, llm.Message{Role: role, Content: msg.Content})
	}

	reply, err := h.support.Chat(c.Request.Context(), conversationID, incoming)
	if err != nil {
		h.logger.Error().Err(err).Str("conversation_id", conversationID).Msg("support chat failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error interno en el agente de soporte"})
		return
	}

	c.JSON(http.StatusOK, api.ChatResponse{Reply: reply, ConversationID: conversationID})
}

// handleImageSupport routes an uploaded photo through classification and the
// diagnosis contract, then folds the exchange into the conversation history.
func (h *GatewayHandler) handleImageSupport(c *gin.Context) {
	imageData, mimeType, ok := h.readImage(c)
	if !ok {
		return
	}

	conversationID := c.PostForm("conversationId")
	if conversationID == "" {
		conversationID = uuid.NewString()
	}

	ctx := c.Request.Context()
	classification, err := h.classifier.Classify(ctx, imageData, mimeType)
	if err != nil {
		h.respondModelError(c, err, "Error interno en el agente de soporte")
		return
	}

	diagnosis, err := h.diagnoser.Diagnose(ctx, classification)
	if err != nil {
		h.respondModelError(c, err, "Error interno en el agente de soporte")
		return
	}

	// Keep the conversation coherent for follow-up text turns.
	turn := []llm.Message{
		{Role: llm.RoleUser, Content: "[El cliente envió una foto de su equipo.]"},
		{Role: llm.RoleAssistant, Content: diagnosis.Reply},
	}
	if err := h.store.Append(ctx, conversationID, turn...); err != nil {
		h.logger.Warn().Err(err).Str("conversation_id", conversationID).Msg("failed to persist diagnosis turn")
	}

	c.JSON(http.StatusOK, api.ChatResponse{Reply: diagnosis.Reply, ConversationID: conversationID})
}

// HandleClearHistory serves DELETE /api/historial. With a conversationId
// query it clears that conversation; without one it empties the store.
func (h *GatewayHandler) HandleClearHistory(c *gin.Context) {
	ctx := c.Request.Context()

	var removed int
	var err error
	if conversationID := c.Query("conversationId"); conversationID != "" {
		removed, err = h.store.Clear(ctx, conversationID)
	} else {
		removed, err = h.store.ClearAll(ctx)
	}
	if err != nil {
		h.logger.Error().Err(err).Msg("history clear failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error interno limpiando el historial"})
		return
	}

	c.JSON(http.StatusOK, api.ClearHistoryResponse{
		Message:      "Historial eliminado.",
		CountRemoved: removed,
	})
}

// readImage extracts the uploaded photo, answering 400 when the field is
// missing or unreadable.
func (h *GatewayHandler) readImage(c *gin.Context) ([]byte, string, bool) {
	fileHeader, err := c.FormFile(imageField)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Debes enviar un archivo en el campo 'imagen'"})
		return nil, "", false
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No se pudo leer el archivo enviado"})
		return nil, "", false
	}
	defer file.Close()

	imageData, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No se pudo leer el archivo enviado"})
		return nil, "", false
	}

	mimeType := fileHeader.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "image/jpeg"
	}
	return imageData, mimeType, true
}

// respondModelError maps an agent failure to the external error contract:
// malformed model output is a distinct upstream condition with the raw text
// attached; everything else is a generic internal error.
func (h *GatewayHandler) respondModelError(c *gin.Context, err error, genericMessage string) {
	if malformed, ok := agent.AsMalformedOutput(err); ok {
		h.logger.Warn().Err(err).Msg("model returned malformed payload")
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "La respuesta del modelo no fue un JSON válido",
			"raw":   malformed.Raw,
		})
		return
	}
	h.logger.Error().Err(err).Msg("request failed")
	c.JSON(http.StatusInternalServerError, gin.H{"error": genericMessage})
}
