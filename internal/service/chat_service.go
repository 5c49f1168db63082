package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"legal-ai-be/internal/apperr"
	"legal-ai-be/internal/constant"
	"legal-ai-be/internal/dto"
	"legal-ai-be/internal/entity"
	"legal-ai-be/internal/repository/specification"
	"legal-ai-be/internal/repository/unitofwork"
	"legal-ai-be/pkg/embedding"
	"legal-ai-be/pkg/events"
	"legal-ai-be/pkg/llm"
	"legal-ai-be/pkg/rag/history"
	"legal-ai-be/pkg/rag/prompt"
	"legal-ai-be/pkg/rag/search"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// IChatService defines the chat turn interface
type IChatService interface {
	SendMessage(ctx context.Context, userId uuid.UUID, request *dto.SendMessageRequest) (*dto.SendMessageResponse, error)
	GetMessages(ctx context.Context, userId uuid.UUID, conversationId uuid.UUID) (*dto.ListMessagesResponse, error)
}

// chatService coordinates one turn: retrieval, generation, persistence.
type chatService struct {
	uowFactory        unitofwork.RepositoryFactory
	embeddingProvider embedding.EmbeddingProvider
	llmProvider       llm.LLMProvider
	country           string
	publisherService  IPublisherService
	logger            *zap.Logger

	searchService *search.Service
	promptBuilder *prompt.Builder
	historyLoader *history.Loader
}

func NewChatService(
	uowFactory unitofwork.RepositoryFactory,
	embeddingProvider embedding.EmbeddingProvider,
	llmProvider llm.LLMProvider,
	country string,
	publisherService IPublisherService,
	logger *zap.Logger,
) IChatService {
	if country == "" {
		country = constant.DefaultCountry
	}
	return &chatService{
		uowFactory:        uowFactory,
		embeddingProvider: embeddingProvider,
		llmProvider:       llmProvider,
		country:           country,
		publisherService:  publisherService,
		logger:            logger,

		searchService: search.NewService(logger),
		promptBuilder: prompt.NewBuilder(""),
		historyLoader: history.NewLoader(),
	}
}

// SendMessage runs the full pipeline for one user turn. Retrieval failures
// degrade to an unsourced answer; embedding and completion failures abort
// the turn and nothing is persisted. Both messages of the pair, the
// conversation touch, the replay receipt and the outbox event commit in a
// single transaction.
func (cs *chatService) SendMessage(ctx context.Context, userId uuid.UUID, request *dto.SendMessageRequest) (*dto.SendMessageResponse, error) {
	if request.ConversationId == uuid.Nil || strings.TrimSpace(request.Message) == "" {
		return nil, apperr.ErrMessageRequired
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)

	conversation, err := uow.ConversationRepository().FindOne(ctx,
		specification.ByID{ID: request.ConversationId},
		specification.OwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if conversation == nil {
		return nil, apperr.ErrConversationNotFound
	}

	// A replayed nonce answers from the stored receipt without touching
	// the providers or writing anything.
	if request.Nonce != "" {
		receipt, err := uow.TurnReceiptRepository().FindByNonce(ctx, conversation.Id, request.Nonce)
		if err != nil {
			return nil, err
		}
		if receipt != nil {
			var cached dto.SendMessageResponse
			if err := json.Unmarshal(receipt.Payload, &cached); err != nil {
				return nil, apperr.Internal("corrupt turn receipt", err)
			}
			cs.logger.Info("turn replayed from receipt",
				zap.String("conversation_id", conversation.Id.String()),
			)
			return &cached, nil
		}
	}

	queryVector, err := cs.embeddingProvider.Embed(ctx, request.Message)
	if err != nil {
		return nil, apperr.UpstreamEmbedding(err.Error(), err)
	}

	sources := cs.searchService.Execute(ctx, uow.ArticleRepository(), queryVector, cs.country, constant.SearchMatchCount)

	window, err := cs.historyLoader.Load(ctx, uow.MessageRepository(), conversation.Id)
	if err != nil {
		return nil, err
	}

	messages := cs.promptBuilder.Build(sources, window, request.Message)

	answer, err := cs.llmProvider.Chat(ctx, messages,
		llm.WithTemperature(constant.CompletionTemperature),
		llm.WithMaxTokens(constant.CompletionMaxTokens),
	)
	if err != nil {
		return nil, apperr.UpstreamCompletion(err.Error(), err)
	}

	now := time.Now()

	userMessage := entity.Message{
		Id:             uuid.New(),
		ConversationId: conversation.Id,
		Role:           constant.MessageRoleUser,
		Content:        request.Message,
		CreatedAt:      now,
	}
	assistantMessage := entity.Message{
		Id:             uuid.New(),
		ConversationId: conversation.Id,
		Role:           constant.MessageRoleAssistant,
		Content:        answer,
		Sources:        sources,
		CreatedAt:      now,
	}

	response := &dto.SendMessageResponse{
		Response:           answer,
		Sources:            filterDisplaySources(sources),
		UserMessageId:      userMessage.Id,
		AssistantMessageId: assistantMessage.Id,
		CreatedAt:          now,
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.MessageRepository().Create(ctx, &userMessage); err != nil {
		return nil, err
	}
	if err := uow.MessageRepository().Create(ctx, &assistantMessage); err != nil {
		return nil, err
	}
	if err := uow.ConversationRepository().Touch(ctx, conversation.Id, now); err != nil {
		return nil, err
	}

	// First turn of an untitled conversation names it after the question.
	if conversation.Title == constant.DefaultConversationTitle {
		count, err := uow.MessageRepository().Count(ctx,
			specification.ByConversationID{ConversationID: conversation.Id},
		)
		if err != nil {
			return nil, err
		}
		if count == 2 {
			conversation.Title = deriveTitle(request.Message)
			conversation.UpdatedAt = now
			if err := uow.ConversationRepository().Update(ctx, conversation); err != nil {
				return nil, err
			}
		}
	}

	if request.Nonce != "" {
		payload, err := json.Marshal(response)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal turn receipt: %w", err)
		}
		receipt := entity.TurnReceipt{
			Id:             uuid.New(),
			ConversationId: conversation.Id,
			Nonce:          request.Nonce,
			Payload:        payload,
			CreatedAt:      now,
		}
		if err := uow.TurnReceiptRepository().Create(ctx, &receipt); err != nil {
			return nil, err
		}
	}

	event := events.NewTurnCompleted(conversation.Id, userMessage.Id, assistantMessage.Id, len(sources), now)
	eventPayload, err := json.Marshal(event.Payload())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal turn event: %w", err)
	}
	outboxEvent := entity.OutboxEvent{
		Id:        uuid.New(),
		Topic:     event.EventType(),
		Payload:   eventPayload,
		CreatedAt: now,
	}
	if err := uow.OutboxRepository().Create(ctx, &outboxEvent); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	// Nudge the relay; the periodic sweep covers a lost nudge.
	if cs.publisherService != nil {
		if err := cs.publisherService.Publish(ctx, eventPayload); err != nil {
			cs.logger.Warn("outbox nudge failed", zap.Error(err))
		}
	}

	cs.logger.Info("chat turn completed",
		zap.String("conversation_id", conversation.Id.String()),
		zap.Int("sources", len(sources)),
	)

	return response, nil
}

// GetMessages returns the full conversation transcript in chronological order.
func (cs *chatService) GetMessages(ctx context.Context, userId uuid.UUID, conversationId uuid.UUID) (*dto.ListMessagesResponse, error) {
	uow := cs.uowFactory.NewUnitOfWork(ctx)

	conversation, err := uow.ConversationRepository().FindOne(ctx,
		specification.ByID{ID: conversationId},
		specification.OwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if conversation == nil {
		return nil, apperr.ErrConversationNotFound
	}

	records, err := uow.MessageRepository().FindAll(ctx,
		specification.ByConversationID{ConversationID: conversationId},
		specification.OrderBy{Field: "created_at", Desc: false},
		specification.OrderBy{Field: "seq", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	response := &dto.ListMessagesResponse{
		Messages: make([]dto.MessageResponse, 0, len(records)),
	}
	for _, msg := range records {
		response.Messages = append(response.Messages, dto.MessageResponse{
			Id:             msg.Id,
			ConversationId: msg.ConversationId,
			Role:           msg.Role,
			Content:        msg.Content,
			Sources:        filterDisplaySources(msg.Sources),
			CreatedAt:      msg.CreatedAt,
		})
	}
	return response, nil
}

// filterDisplaySources hides weak matches from API consumers. The stored
// message keeps the full list; only the presentation is thresholded.
func filterDisplaySources(sources []entity.Source) []entity.Source {
	filtered := make([]entity.Source, 0, len(sources))
	for _, src := range sources {
		if src.Similarity >= constant.DisplaySimilarityThreshold {
			filtered = append(filtered, src)
		}
	}
	return filtered
}

func deriveTitle(message string) string {
	title := strings.TrimSpace(message)
	// Cut on runes so a multi-byte character is never split.
	if runes := []rune(title); len(runes) > 50 {
		title = strings.TrimSpace(string(runes[:50])) + "..."
	}
	return title
}
