package chat

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"

	"stayhub/internal/domain"
)

var ErrSessionNotFound = errors.New("chat session not found")

const historyLimit = 50

type Service struct {
	chats     ChatRepository
	completer Completer
	hub       *Hub
}

func NewService(chats ChatRepository, completer Completer, hub *Hub) *Service {
	return &Service{chats: chats, completer: completer, hub: hub}
}

// StartSession opens a conversation. Anonymous visitors get a session too;
// the key is what the client holds on to.
func (s *Service) StartSession(ctx context.Context, userID *int64) (*domain.ChatSession, error) {
	session := &domain.ChatSession{
		SessionKey: uuid.NewString(),
		UserID:     userID,
	}
	if err := s.chats.CreateSession(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// SendMessage stores the user turn, asks the completer for a reply, stores
// that too, and pushes it over the websocket when the session is connected.
func (s *Service) SendMessage(ctx context.Context, sessionKey, content string) (*domain.ChatMessage, error) {
	session, err := s.chats.GetSessionByKey(ctx, sessionKey)
	if err != nil {
		return nil, ErrSessionNotFound
	}

	userMsg := &domain.ChatMessage{
		SessionID: session.ID,
		Role:      domain.ChatRoleUser,
		Content:   content,
	}
	if err := s.chats.AppendMessage(ctx, userMsg); err != nil {
		return nil, err
	}

	history, err := s.chats.GetMessages(ctx, session.ID, historyLimit)
	if err != nil {
		return nil, err
	}

	reply, err := s.completer.Complete(ctx, history)
	if err != nil {
		return nil, err
	}

	assistantMsg := &domain.ChatMessage{
		SessionID: session.ID,
		Role:      domain.ChatRoleAssistant,
		Content:   reply,
	}
	if err := s.chats.AppendMessage(ctx, assistantMsg); err != nil {
		return nil, err
	}

	if s.hub != nil {
		if !s.hub.SendToSession(sessionKey, assistantMsg) {
			log.Printf("level=debug msg=\"no live socket for session\" session_key=%s", sessionKey)
		}
	}

	return assistantMsg, nil
}

func (s *Service) History(ctx context.Context, sessionKey string) ([]domain.ChatMessage, error) {
	session, err := s.chats.GetSessionByKey(ctx, sessionKey)
	if err != nil {
		return nil, ErrSessionNotFound
	}
	return s.chats.GetMessages(ctx, session.ID, historyLimit)
}
