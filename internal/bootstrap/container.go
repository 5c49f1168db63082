package bootstrap

import (
	"log"

	"legal-ai-be/internal/config"
	"legal-ai-be/internal/controller"
	"legal-ai-be/internal/pkg/logger"
	"legal-ai-be/internal/repository/unitofwork"
	"legal-ai-be/internal/service"
	"legal-ai-be/pkg/embedding"
	"legal-ai-be/pkg/embedding/openrouter"
	"legal-ai-be/pkg/llm/factory"
	"legal-ai-be/pkg/session"

	pktNats "legal-ai-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController         controller.IAuthController
	ChatController         controller.IChatController
	ConversationController controller.IConversationController
	SearchController       controller.ISearchController
	SessionController      controller.ISessionController

	// Background Services (Exposed for main.go to run)
	RelayService service.IRelayService

	Logger *zap.Logger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// In-process event bus; relays outbox rows to NATS
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// Embedding provider
	var embeddingProvider embedding.EmbeddingProvider
	if cfg.Ai.EmbeddingProvider == "ollama" {
		embeddingProvider = embedding.NewOllamaProvider(
			cfg.Ai.OllamaBaseURL,
			cfg.Ai.OllamaModel,
		)
		log.Printf("[INFO] Using Embedding Provider: OLLAMA (%s)", cfg.Ai.OllamaModel)
	} else {
		embeddingProvider = openrouter.NewOpenRouterProvider(cfg.Ai.OpenRouterAPIKey)
		log.Printf("[INFO] Using Embedding Provider: OPENROUTER")
	}

	// LLM provider
	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.OllamaBaseURL,
		cfg.Ai.GroqBaseURL,
		cfg.Ai.GroqAPIKey,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	// NATS
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}

	// Idle-session guard
	sessionGuard := session.NewGuard()

	// Services
	publisherService := service.NewPublisherService(pubSub, service.OutboxNudgeTopic)
	relayService := service.NewRelayService(pubSub, service.OutboxNudgeTopic, uowFactory, natsPub, sysLogger)

	authService := service.NewAuthService(uowFactory, sessionGuard, cfg.Auth.JwtSecret, cfg.Auth.TokenTTLHours)
	chatService := service.NewChatService(uowFactory, embeddingProvider, llmProvider, cfg.App.DefaultCountry, publisherService, sysLogger)
	conversationService := service.NewConversationService(uowFactory, publisherService, sysLogger)
	searchService := service.NewSearchService(uowFactory, embeddingProvider, cfg.App.DefaultCountry, sysLogger)

	return &Container{
		AuthController:         controller.NewAuthController(authService),
		ChatController:         controller.NewChatController(chatService, authService),
		ConversationController: controller.NewConversationController(conversationService, authService),
		SearchController:       controller.NewSearchController(searchService, authService),
		SessionController:      controller.NewSessionController(authService),

		RelayService: relayService,

		Logger: sysLogger,
	}
}
