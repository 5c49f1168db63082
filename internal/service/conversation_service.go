package service

import (
	"context"
	"encoding/json"
	"time"

	"legal-ai-be/internal/apperr"
	"legal-ai-be/internal/constant"
	"legal-ai-be/internal/dto"
	"legal-ai-be/internal/entity"
	"legal-ai-be/internal/repository/specification"
	"legal-ai-be/internal/repository/unitofwork"
	"legal-ai-be/pkg/events"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// IConversationService defines the conversation lifecycle interface
type IConversationService interface {
	Create(ctx context.Context, userId uuid.UUID, request *dto.CreateConversationRequest) (*dto.ConversationResponse, error)
	GetAll(ctx context.Context, userId uuid.UUID) (*dto.ListConversationsResponse, error)
	GetOne(ctx context.Context, userId uuid.UUID, conversationId uuid.UUID) (*dto.ConversationResponse, error)
	Update(ctx context.Context, userId uuid.UUID, request *dto.UpdateConversationRequest) (*dto.ConversationResponse, error)
	Delete(ctx context.Context, userId uuid.UUID, conversationId uuid.UUID) error
}

type conversationService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	logger           *zap.Logger
}

func NewConversationService(uowFactory unitofwork.RepositoryFactory, publisherService IPublisherService, logger *zap.Logger) IConversationService {
	return &conversationService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		logger:           logger,
	}
}

func (s *conversationService) Create(ctx context.Context, userId uuid.UUID, request *dto.CreateConversationRequest) (*dto.ConversationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	now := time.Now()

	title := request.Title
	if title == "" {
		title = constant.DefaultConversationTitle
	}

	conversation := entity.Conversation{
		Id:        uuid.New(),
		UserId:    userId,
		Title:     title,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := uow.ConversationRepository().Create(ctx, &conversation); err != nil {
		return nil, err
	}

	return toConversationResponse(&conversation), nil
}

func (s *conversationService) GetAll(ctx context.Context, userId uuid.UUID) (*dto.ListConversationsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	conversations, err := uow.ConversationRepository().FindAll(ctx,
		specification.OwnedBy{UserID: userId},
		specification.OrderBy{Field: "updated_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	response := &dto.ListConversationsResponse{
		Conversations: make([]dto.ConversationResponse, 0, len(conversations)),
	}
	for _, c := range conversations {
		response.Conversations = append(response.Conversations, *toConversationResponse(c))
	}
	return response, nil
}

func (s *conversationService) GetOne(ctx context.Context, userId uuid.UUID, conversationId uuid.UUID) (*dto.ConversationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

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
	return toConversationResponse(conversation), nil
}

func (s *conversationService) Update(ctx context.Context, userId uuid.UUID, request *dto.UpdateConversationRequest) (*dto.ConversationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	conversation, err := uow.ConversationRepository().FindOne(ctx,
		specification.ByID{ID: request.Id},
		specification.OwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if conversation == nil {
		return nil, apperr.ErrConversationNotFound
	}

	conversation.Title = request.Title
	conversation.UpdatedAt = time.Now()
	if err := uow.ConversationRepository().Update(ctx, conversation); err != nil {
		return nil, err
	}
	return toConversationResponse(conversation), nil
}

// Delete removes a conversation with its messages and receipts in one
// transaction, children first so the conversation row never dangles.
func (s *conversationService) Delete(ctx context.Context, userId uuid.UUID, conversationId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	conversation, err := uow.ConversationRepository().FindOne(ctx,
		specification.ByID{ID: conversationId},
		specification.OwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	if conversation == nil {
		return apperr.ErrConversationNotFound
	}

	now := time.Now()
	event := events.NewConversationDeleted(conversationId, now)
	eventPayload, err := json.Marshal(event.Payload())
	if err != nil {
		return err
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.MessageRepository().DeleteByConversationId(ctx, conversationId); err != nil {
		return err
	}
	if err := uow.TurnReceiptRepository().DeleteByConversationId(ctx, conversationId); err != nil {
		return err
	}
	if err := uow.ConversationRepository().Delete(ctx, conversationId); err != nil {
		return err
	}
	if err := uow.OutboxRepository().Create(ctx, &entity.OutboxEvent{
		Id:        uuid.New(),
		Topic:     event.EventType(),
		Payload:   eventPayload,
		CreatedAt: now,
	}); err != nil {
		return err
	}

	if err := uow.Commit(); err != nil {
		return err
	}

	if s.publisherService != nil {
		if err := s.publisherService.Publish(ctx, eventPayload); err != nil {
			s.logger.Warn("outbox nudge failed", zap.Error(err))
		}
	}

	s.logger.Info("conversation deleted",
		zap.String("conversation_id", conversationId.String()),
	)
	return nil
}

func toConversationResponse(c *entity.Conversation) *dto.ConversationResponse {
	return &dto.ConversationResponse{
		Id:        c.Id,
		Title:     c.Title,
		ExpiresAt: c.ExpiresAt,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
