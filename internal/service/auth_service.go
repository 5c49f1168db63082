package service

import (
	"context"
	"time"

	"legal-ai-be/internal/apperr"
	"legal-ai-be/internal/dto"
	"legal-ai-be/internal/entity"
	"legal-ai-be/internal/repository/specification"
	"legal-ai-be/internal/repository/unitofwork"
	"legal-ai-be/pkg/session"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type IAuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	SessionStatus(userId string) *dto.SessionStatusResponse
	TouchSession(userId string)
}

type authService struct {
	uowFactory   unitofwork.RepositoryFactory
	sessionGuard *session.Guard
	jwtSecret    string
	tokenTTL     time.Duration
}

func NewAuthService(uowFactory unitofwork.RepositoryFactory, sessionGuard *session.Guard, jwtSecret string, tokenTTLHours int) IAuthService {
	if tokenTTLHours <= 0 {
		tokenTTLHours = 24
	}
	return &authService{
		uowFactory:   uowFactory,
		sessionGuard: sessionGuard,
		jwtSecret:    jwtSecret,
		tokenTTL:     time.Duration(tokenTTLHours) * time.Hour,
	}
}

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, _ := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if existing != nil {
		return nil, apperr.Validation("email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	hashStr := string(hash)

	now := time.Now()
	user := &entity.User{
		Id:           uuid.New(),
		Email:        req.Email,
		FullName:     req.FullName,
		PasswordHash: &hashStr,
		Status:       entity.UserStatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := uow.UserRepository().Create(ctx, user); err != nil {
		return nil, err
	}

	return &dto.RegisterResponse{Id: user.Id, Email: user.Email}, nil
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil || user == nil {
		return nil, apperr.Auth("invalid credentials")
	}
	if user.PasswordHash == nil {
		return nil, apperr.Auth("invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperr.Auth("invalid credentials")
	}

	expiresAt := time.Now().Add(s.tokenTTL)
	claims := jwt.MapClaims{
		"user_id": user.Id.String(),
		"exp":     expiresAt.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return nil, err
	}

	s.sessionGuard.Touch(user.Id.String())

	return &dto.LoginResponse{Token: signedToken, ExpiresAt: expiresAt}, nil
}

// SessionStatus reports the idle state of the user's session. The guard is
// independent of token expiry; a valid token with a stale session reports
// expired here.
func (s *authService) SessionStatus(userId string) *dto.SessionStatusResponse {
	state, lastActive, expiresAt := s.sessionGuard.Status(userId)
	return &dto.SessionStatusResponse{
		State:      string(state),
		LastActive: lastActive,
		ExpiresAt:  expiresAt,
	}
}

func (s *authService) TouchSession(userId string) {
	s.sessionGuard.Touch(userId)
}
