package chat

import (
	"context"

	"stayhub/internal/domain"
)

type ChatRepository interface {
	CreateSession(ctx context.Context, s *domain.ChatSession) error
	GetSessionByKey(ctx context.Context, key string) (*domain.ChatSession, error)
	AppendMessage(ctx context.Context, m *domain.ChatMessage) error
	GetMessages(ctx context.Context, sessionID int64, limit int) ([]domain.ChatMessage, error)
}

// Completer produces the assistant reply for a conversation. The production
// implementation calls an external model endpoint; tests inject a canned one.
type Completer interface {
	Complete(ctx context.Context, history []domain.ChatMessage) (string, error)
}
