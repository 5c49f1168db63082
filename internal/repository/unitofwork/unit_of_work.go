package unitofwork

import (
	"context"

	"legal-ai-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	ConversationRepository() contract.ConversationRepository
	MessageRepository() contract.MessageRepository
	ArticleRepository() contract.ArticleRepository
	TurnReceiptRepository() contract.TurnReceiptRepository
	OutboxRepository() contract.OutboxRepository
}
