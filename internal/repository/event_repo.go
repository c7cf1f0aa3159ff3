package repository

import (
	"context"

	"gorm.io/gorm"

	"stayhub/internal/domain"
)

type EventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{db: db}
}

func (r *EventRepository) Create(ctx context.Context, e *domain.Event) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *EventRepository) CountBySession(ctx context.Context, sessionID string) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&domain.Event{}).
		Where("session_id = ?", sessionID).Count(&cnt).Error
	return cnt, err
}
