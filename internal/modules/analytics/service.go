package analytics

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/google/uuid"

	"stayhub/internal/domain"
)

type EventRepository interface {
	Create(ctx context.Context, e *domain.Event) error
	CountBySession(ctx context.Context, sessionID string) (int64, error)
}

// Publisher is the optional broker hook; nil means persist-only.
type Publisher interface {
	Publish(e *domain.Event) error
}

type Service struct {
	events    EventRepository
	publisher Publisher
	now       func() time.Time
	newID     func() string
}

// NewService wires event recording. now and newID are injectable so tests
// control timestamps and ids; pass nil for the real clock and uuid source.
func NewService(events EventRepository, publisher Publisher, now func() time.Time, newID func() string) *Service {
	if now == nil {
		now = func() time.Time { return time.Now().UTC() }
	}
	if newID == nil {
		newID = uuid.NewString
	}
	return &Service{
		events:    events,
		publisher: publisher,
		now:       now,
		newID:     newID,
	}
}

type RecordInput struct {
	SessionID string
	UserID    *int64
	Name      string
	Props     map[string]any
}

// Record stores an event and never surfaces failures to the caller: a
// broken analytics pipeline must not break booking or search flows.
func (s *Service) Record(ctx context.Context, in RecordInput) {
	if in.Name == "" {
		return
	}
	if in.SessionID == "" {
		in.SessionID = s.newID()
	}

	var props string
	if len(in.Props) > 0 {
		if raw, err := json.Marshal(in.Props); err == nil {
			props = string(raw)
		}
	}

	e := &domain.Event{
		EventID:    s.newID(),
		SessionID:  in.SessionID,
		UserID:     in.UserID,
		Name:       in.Name,
		Props:      props,
		OccurredAt: s.now(),
	}

	if err := s.events.Create(ctx, e); err != nil {
		log.Printf("level=warn msg=\"analytics event dropped\" name=%s err=%v", in.Name, err)
		return
	}

	if s.publisher != nil {
		if err := s.publisher.Publish(e); err != nil {
			log.Printf("level=warn msg=\"analytics publish failed\" event_id=%s err=%v", e.EventID, err)
		}
	}
}

func (s *Service) SessionEventCount(ctx context.Context, sessionID string) (int64, error) {
	return s.events.CountBySession(ctx, sessionID)
}
