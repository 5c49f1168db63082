package apperr

import "fmt"

type Code string

const (
	CodeValidation         Code = "VALIDATION"
	CodeAuth               Code = "AUTH"
	CodeNotFound           Code = "NOT_FOUND"
	CodeUpstreamEmbedding  Code = "UPSTREAM_EMBEDDING"
	CodeUpstreamCompletion Code = "UPSTREAM_COMPLETION"
	CodeSearch             Code = "SEARCH"
	CodeInternal           Code = "INTERNAL"
)

// AppError is the single error type crossing service boundaries. The HTTP
// layer normalizes every AppError to the uniform 400 {error} envelope, so the
// code is for internal branching and logs, not for status mapping.
type AppError struct {
	Code    Code
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Cause }

func New(code Code, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

func Wrap(code Code, message string, cause error) *AppError {
	return &AppError{Code: code, Message: message, Cause: cause}
}

func Validation(msg string) *AppError { return New(CodeValidation, msg) }

func Auth(msg string) *AppError { return New(CodeAuth, msg) }

// NotFound deliberately covers both missing rows and ownership denials so the
// response never reveals whether an id exists.
func NotFound(msg string) *AppError { return New(CodeNotFound, msg) }

// UpstreamEmbedding carries the provider's error payload verbatim.
func UpstreamEmbedding(msg string, cause error) *AppError {
	return Wrap(CodeUpstreamEmbedding, msg, cause)
}

// UpstreamCompletion carries the provider's error payload verbatim.
func UpstreamCompletion(msg string, cause error) *AppError {
	return Wrap(CodeUpstreamCompletion, msg, cause)
}

func Internal(msg string, cause error) *AppError {
	return Wrap(CodeInternal, msg, cause)
}

var (
	ErrAuthorizationRequired = Auth("Authorization required")
	ErrInvalidToken          = Auth("Invalid token")
	ErrConversationNotFound  = NotFound("Conversation not found")
	ErrMessageRequired       = Validation("conversation_id and message are required")
	ErrQueryRequired         = Validation("Query is required")
)
