package repository

import (
	"context"

	"gorm.io/gorm"

	"stayhub/internal/domain"
)

type ChatRepository struct {
	db *gorm.DB
}

func NewChatRepository(db *gorm.DB) *ChatRepository {
	return &ChatRepository{db: db}
}

func (r *ChatRepository) CreateSession(ctx context.Context, s *domain.ChatSession) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *ChatRepository) GetSessionByKey(ctx context.Context, key string) (*domain.ChatSession, error) {
	var s domain.ChatSession
	if err := r.db.WithContext(ctx).Where("session_key = ?", key).First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *ChatRepository) AppendMessage(ctx context.Context, m *domain.ChatMessage) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *ChatRepository) GetMessages(ctx context.Context, sessionID int64, limit int) ([]domain.ChatMessage, error) {
	var msgs []domain.ChatMessage
	err := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("created_at ASC, id ASC").
		Limit(limit).
		Find(&msgs).Error
	return msgs, err
}
