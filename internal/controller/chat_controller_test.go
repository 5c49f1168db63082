package controller

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"legal-ai-be/internal/dto"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubChatService struct {
	response *dto.SendMessageResponse
	err      error
}

func (s *stubChatService) SendMessage(ctx context.Context, userId uuid.UUID, request *dto.SendMessageRequest) (*dto.SendMessageResponse, error) {
	return s.response, s.err
}

func (s *stubChatService) GetMessages(ctx context.Context, userId uuid.UUID, conversationId uuid.UUID) (*dto.ListMessagesResponse, error) {
	return &dto.ListMessagesResponse{}, nil
}

type stubAuthService struct{}

func (s *stubAuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	return nil, nil
}
func (s *stubAuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	return nil, nil
}
func (s *stubAuthService) SessionStatus(userId string) *dto.SessionStatusResponse {
	return &dto.SessionStatusResponse{State: "active"}
}
func (s *stubAuthService) TouchSession(userId string) {}

func newTestApp(t *testing.T, chat *stubChatService) *fiber.App {
	t.Helper()
	os.Setenv("JWT_SECRET", "test_secret")

	app := fiber.New()
	api := app.Group("/api")
	NewChatController(chat, &stubAuthService{}).RegisterRoutes(api)
	return app
}

func jsonBody(s string) io.Reader {
	return strings.NewReader(s)
}

func signToken(t *testing.T, userId uuid.UUID) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userId.String(),
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte("test_secret"))
	require.NoError(t, err)
	return signed
}

func TestSendWithoutAuthorization(t *testing.T) {
	app := newTestApp(t, &stubChatService{})

	req := httptest.NewRequest("POST", "/api/chat/v1/message", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	var envelope map[string]string
	require.NoError(t, json.Unmarshal(body, &envelope))
	assert.Equal(t, "Authorization required", envelope["error"])
}

func TestSendWithInvalidToken(t *testing.T) {
	app := newTestApp(t, &stubChatService{})

	req := httptest.NewRequest("POST", "/api/chat/v1/message", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	var envelope map[string]string
	require.NoError(t, json.Unmarshal(body, &envelope))
	assert.Equal(t, "Invalid token", envelope["error"])
}

func TestSendReturnsServiceResponse(t *testing.T) {
	userId := uuid.New()
	want := &dto.SendMessageResponse{
		Response:           "Article 21 applies.",
		UserMessageId:      uuid.New(),
		AssistantMessageId: uuid.New(),
		CreatedAt:          time.Now().UTC(),
	}
	app := newTestApp(t, &stubChatService{response: want})

	payload := `{"conversation_id":"` + uuid.New().String() + `","message":"What covers free speech?"}`
	req := httptest.NewRequest("POST", "/api/chat/v1/message", jsonBody(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+signToken(t, userId))

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	var got dto.SendMessageResponse
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Equal(t, want.Response, got.Response)
	assert.Equal(t, want.AssistantMessageId, got.AssistantMessageId)
}

func TestSendRejectsMissingFields(t *testing.T) {
	app := newTestApp(t, &stubChatService{})

	req := httptest.NewRequest("POST", "/api/chat/v1/message", jsonBody(`{"message":""}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+signToken(t, uuid.New()))

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	var envelope map[string]string
	require.NoError(t, json.Unmarshal(body, &envelope))
	assert.Equal(t, "conversation_id and message are required", envelope["error"])
}
