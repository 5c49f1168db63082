package contract

import (
	"context"

	"legal-ai-be/internal/entity"
	"legal-ai-be/internal/repository/specification"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error)
}
