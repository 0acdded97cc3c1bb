package eventlog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/rakandito/ClassQuest_Go/internal/event"
)

// MockEventBus is a mock implementation of event.Bus
type MockEventBus struct {
	mock.Mock
}

func (m *MockEventBus) Publish(ctx context.Context, evt event.Event) error {
	args := m.Called(ctx, evt)
	return args.Error(0)
}

func (m *MockEventBus) Subscribe(eventType event.Type, handler event.Handler) {
	m.Called(eventType, handler)
}

func TestService_Subscribe(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo)
	mockBus := new(MockEventBus)

	// Expect subscription to all event types
	eventTypes := []event.Type{
		event.ExpGranted,
		event.PlayerLevelUp,
		event.PunishmentApplied,
		event.PunishmentResolved,
		event.HonorRecovered,
		event.BossBattleRecorded,
		event.LeaderboardRefresh,
	}

	for _, et := range eventTypes {
		mockBus.On("Subscribe", et, mock.Anything).Return()
	}

	err := service.Subscribe(mockBus)
	assert.NoError(t, err)
	mockBus.AssertExpectations(t)
}

func TestService_HandleEvent_MapPayload(t *testing.T) {
	mockRepo := new(MockRepository)
	svc := NewService(mockRepo).(*service)

	ctx := context.Background()
	playerID := "9a52714e-5a83-4f7f-a72c-13ef13fa1a0b"
	payload := map[string]interface{}{
		"player_id": playerID,
		"activity":  "attendance",
	}
	evt := event.Event{
		Type:    event.ExpGranted,
		Payload: payload,
	}

	mockRepo.On("LogEvent", ctx, string(event.ExpGranted), &playerID, payload, mock.Anything).Return(nil)

	err := svc.handleEvent(ctx, evt)
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestService_HandleEvent_TypedPayload(t *testing.T) {
	mockRepo := new(MockRepository)
	svc := NewService(mockRepo).(*service)

	ctx := context.Background()
	evt := event.NewLevelUpEvent("9a52714e-5a83-4f7f-a72c-13ef13fa1a0b", 4, 5, 10)

	mockRepo.On("LogEvent", ctx, string(event.PlayerLevelUp), mock.Anything, mock.MatchedBy(func(payload map[string]interface{}) bool {
		return payload["player_id"] == "9a52714e-5a83-4f7f-a72c-13ef13fa1a0b" &&
			payload["new_level"] == float64(5)
	}), mock.Anything).Return(nil)

	err := svc.handleEvent(ctx, evt)
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestService_CleanupOldEvents(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo)
	ctx := context.Background()

	mockRepo.On("CleanupOldEvents", ctx, 10).Return(int64(5), nil)

	count, err := service.CleanupOldEvents(ctx, 10)
	assert.NoError(t, err)
	assert.Equal(t, int64(5), count)
	mockRepo.AssertExpectations(t)
}
