package chat

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"stayhub/internal/domain"
)

type mockChatRepo struct {
	mock.Mock
}

func (m *mockChatRepo) CreateSession(ctx context.Context, s *domain.ChatSession) error {
	args := m.Called(ctx, s)
	if args.Error(0) == nil {
		s.ID = 21
	}
	return args.Error(0)
}

func (m *mockChatRepo) GetSessionByKey(ctx context.Context, key string) (*domain.ChatSession, error) {
	args := m.Called(ctx, key)
	if s := args.Get(0); s != nil {
		return s.(*domain.ChatSession), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockChatRepo) AppendMessage(ctx context.Context, msg *domain.ChatMessage) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

func (m *mockChatRepo) GetMessages(ctx context.Context, sessionID int64, limit int) ([]domain.ChatMessage, error) {
	args := m.Called(ctx, sessionID, limit)
	if v := args.Get(0); v != nil {
		return v.([]domain.ChatMessage), args.Error(1)
	}
	return nil, args.Error(1)
}

type cannedCompleter struct {
	reply string
}

func (c cannedCompleter) Complete(ctx context.Context, history []domain.ChatMessage) (string, error) {
	return c.reply, nil
}

func TestStartSession_GeneratesKey(t *testing.T) {
	chats := new(mockChatRepo)
	chats.On("CreateSession", mock.Anything, mock.Anything).Return(nil)

	session, err := NewService(chats, cannedCompleter{}, nil).StartSession(context.Background(), nil)

	require.NoError(t, err)
	assert.NotEmpty(t, session.SessionKey)
	assert.Equal(t, int64(21), session.ID)
}

func TestSendMessage_PersistsBothTurns(t *testing.T) {
	chats := new(mockChatRepo)
	chats.On("GetSessionByKey", mock.Anything, "key-1").Return(&domain.ChatSession{ID: 21, SessionKey: "key-1"}, nil)

	var appended []domain.ChatMessage
	chats.On("AppendMessage", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			appended = append(appended, *args.Get(1).(*domain.ChatMessage))
		}).
		Return(nil)
	chats.On("GetMessages", mock.Anything, int64(21), historyLimit).Return([]domain.ChatMessage{
		{SessionID: 21, Role: domain.ChatRoleUser, Content: "Do you have villas in Riyadh?"},
	}, nil)

	reply, err := NewService(chats, cannedCompleter{reply: "Yes, several."}, nil).
		SendMessage(context.Background(), "key-1", "Do you have villas in Riyadh?")

	require.NoError(t, err)
	assert.Equal(t, domain.ChatRoleAssistant, reply.Role)
	assert.Equal(t, "Yes, several.", reply.Content)

	require.Len(t, appended, 2)
	assert.Equal(t, domain.ChatRoleUser, appended[0].Role)
	assert.Equal(t, domain.ChatRoleAssistant, appended[1].Role)
}

func TestSendMessage_UnknownSession(t *testing.T) {
	chats := new(mockChatRepo)
	chats.On("GetSessionByKey", mock.Anything, "ghost").Return(nil, assert.AnError)

	_, err := NewService(chats, cannedCompleter{}, nil).SendMessage(context.Background(), "ghost", "hi")

	assert.ErrorIs(t, err, ErrSessionNotFound)
	chats.AssertNotCalled(t, "AppendMessage", mock.Anything, mock.Anything)
}

func TestRuleCompleter_KeywordRouting(t *testing.T) {
	history := func(content string) []domain.ChatMessage {
		return []domain.ChatMessage{{Role: domain.ChatRoleUser, Content: content}}
	}

	cases := map[string]string{
		"How do I cancel my booking?": "cancel",
		"What fees are included?":     "14% service fee",
		"How does payment work?":      "payment partner",
		"I want to become a host":     "host account",
		"Hello there":                 "What would you like to know",
	}

	for question, wantFragment := range cases {
		reply, err := RuleCompleter{}.Complete(context.Background(), history(question))
		require.NoError(t, err)
		assert.Contains(t, reply, wantFragment, "question: %s", question)
	}
}
