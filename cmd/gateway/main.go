package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/karoldperez/clarofix/internal/agent"
	"github.com/karoldperez/clarofix/internal/cache"
	"github.com/karoldperez/clarofix/internal/conversation"
	"github.com/karoldperez/clarofix/internal/directory"
	"github.com/karoldperez/clarofix/internal/kb"
	"github.com/karoldperez/clarofix/internal/llm"
	"github.com/karoldperez/clarofix/internal/tools"
)

// main is the composition root: it loads configuration, initializes every
// service, injects the dependencies, and runs the server.
func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	buildInfo := GetBuildInfo()
	logger.Info().
		Str("version", buildInfo.Version).
		Str("commit", buildInfo.GitCommit).
		Str("go", buildInfo.GoVersion).
		Msg("starting ClaroFix support gateway")

	cfg, err := LoadConfig()
	if err != nil {
		logger.Fatal().Err(err).Msg("configuration error")
	}

	// Optional Redis: conversation persistence + classification cache. When
	// unset, everything is held in process memory.
	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if _, err := rdb.Ping(context.Background()).Result(); err != nil {
			logger.Fatal().Err(err).Str("addr", cfg.RedisAddr).Msg("could not connect to Redis")
		}
	}

	store := newConversationStore(cfg, rdb, logger)
	responseCache := newResponseCache(cfg, rdb, logger)

	dirStore, err := newDirectory(cfg, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("could not load customer directory")
	}
	knowledgeBase, err := newKnowledgeBase(cfg, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("could not load knowledge base")
	}

	registry, err := newToolRegistry(dirStore, knowledgeBase)
	if err != nil {
		logger.Fatal().Err(err).Msg("could not register tools")
	}
	logger.Info().Int("tools", registry.Count()).Int("manuals", knowledgeBase.ManualCount()).Msg("lookup collaborators ready")

	supportGateway, err := newModelGateway(cfg, cfg.Agent.SupportModel)
	if err != nil {
		logger.Fatal().Err(err).Msg("could not create support model gateway")
	}
	visionGateway, err := newModelGateway(cfg, cfg.Agent.VisionModel)
	if err != nil {
		logger.Fatal().Err(err).Msg("could not create vision model gateway")
	}

	supportAgent := agent.NewSupportAgent(supportGateway, registry, store, agent.SupportConfig{
		Model:         cfg.Agent.SupportModel,
		MaxTokens:     cfg.Agent.SupportMaxTokens,
		MaxToolRounds: cfg.Agent.MaxToolRounds,
	}, logger)
	classifier := agent.NewClassifier(visionGateway, responseCache, agent.ClassifierConfig{
		Model:     cfg.Agent.VisionModel,
		MaxTokens: cfg.Agent.VisionMaxTokens,
	}, logger)
	diagnoser := agent.NewDiagnoser(visionGateway, knowledgeBase, agent.DiagnoserConfig{
		Model:     cfg.Agent.VisionModel,
		MaxTokens: cfg.Agent.SupportMaxTokens,
	}, logger)

	handler := NewGatewayHandler(classifier, diagnoser, supportAgent, store, logger)
	logger.Info().Msg("all services initialized")

	gin.SetMode(cfg.GinMode)
	engine := gin.New()
	engine.Use(gin.Recovery())
	apiGroup := engine.Group("/api")
	{
		apiGroup.POST("/identificar-equipo", handler.HandleIdentifyEquipment)
		apiGroup.POST("/agente-soporte", handler.HandleSupportChat)
		apiGroup.DELETE("/historial", handler.HandleClearHistory)
	}

	srv := &http.Server{Addr: fmt.Sprintf(":%s", cfg.Port), Handler: engine}
	runServerWithGracefulShutdown(srv, logger)
}

// newModelGateway picks the provider client by model-id prefix and wraps it
// with the outbound rate limiter when configured.
func newModelGateway(cfg *AppConfig, modelID string) (llm.ModelGateway, error) {
	var gateway llm.ModelGateway
	var err error
	switch {
	case strings.HasPrefix(modelID, "gemini"):
		gateway, err = llm.NewGeminiClient(cfg.GeminiKey, modelID)
	default:
		gateway, err = llm.NewOpenAIClient(cfg.OpenAIKey, cfg.OpenAIBaseURL)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create client for %s: %w", modelID, err)
	}
	if cfg.Agent.RequestsPerMinute > 0 {
		gateway = llm.NewThrottledGateway(gateway, cfg.Agent.RequestsPerMinute, cfg.Agent.RateBurst)
	}
	return gateway, nil
}

func newConversationStore(cfg *AppConfig, rdb *redis.Client, logger zerolog.Logger) conversation.Store {
	if rdb == nil {
		logger.Info().Msg("using in-memory conversation store")
		return conversation.NewMemoryStore()
	}
	ttl := time.Duration(cfg.Agent.ConversationTTLMinutes) * time.Minute
	logger.Info().Dur("ttl", ttl).Msg("using Redis conversation store")
	return conversation.NewRedisStore(rdb, ttl)
}

func newResponseCache(cfg *AppConfig, rdb *redis.Client, logger zerolog.Logger) cache.Cache {
	if rdb == nil {
		return cache.Noop{}
	}
	ttl := time.Duration(cfg.Agent.CacheTTLMinutes) * time.Minute
	return cache.NewRedisCache(rdb, ttl, logger)
}

func newDirectory(cfg *AppConfig, logger zerolog.Logger) (directory.Store, error) {
	if cfg.Agent.DirectoryFile != "" {
		logger.Info().Str("file", cfg.Agent.DirectoryFile).Msg("loading customer directory")
		return directory.LoadFile(cfg.Agent.DirectoryFile)
	}
	return directory.NewMemoryStore(directory.DefaultSeed()), nil
}

func newKnowledgeBase(cfg *AppConfig, logger zerolog.Logger) (*kb.KnowledgeBase, error) {
	if cfg.Agent.KnowledgeBaseFile != "" {
		logger.Info().Str("file", cfg.Agent.KnowledgeBaseFile).Msg("loading knowledge base")
		return kb.LoadFile(cfg.Agent.KnowledgeBaseFile)
	}
	return kb.New(kb.DefaultManuals()), nil
}

// newToolRegistry declares the fixed tool set exposed to the model.
func newToolRegistry(dirStore directory.Store, knowledgeBase *kb.KnowledgeBase) (*tools.Registry, error) {
	registry := tools.NewRegistry()
	for _, tool := range []tools.ToolExecutor{
		tools.NewCustomerByDocumentTool(dirStore),
		tools.NewCustomerByAccountTool(dirStore),
		tools.NewCustomerEquipmentTool(dirStore),
		tools.NewFrequentProblemsTool(knowledgeBase),
	} {
		if err := registry.Register(tool); err != nil {
			return nil, err
		}
	}
	return registry, nil
}

// runServerWithGracefulShutdown blocks until SIGINT/SIGTERM, then drains the
// server.
func runServerWithGracefulShutdown(srv *http.Server, logger zerolog.Logger) {
	go func() {
		logger.Info().Str("addr", srv.Addr).Msg("gateway is listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("listen error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal().Err(err).Msg("server shutdown failed")
	}
	logger.Info().Msg("server exited gracefully")
}
