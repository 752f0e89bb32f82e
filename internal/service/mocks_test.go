package service

import (
	"context"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/wagneradl/mission-control/internal/domain"
)

// fixedClock pins service timestamps for assertions.
type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

// recordingPublisher captures change events emitted by the services.
type recordingPublisher struct {
	mu     sync.Mutex
	events []domain.ChangeEvent
}

func (p *recordingPublisher) Publish(event domain.ChangeEvent) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
}

func (p *recordingPublisher) all() []domain.ChangeEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]domain.ChangeEvent(nil), p.events...)
}

// MockActivityRepository mocks the ActivityRepository interface
type MockActivityRepository struct {
	mock.Mock
}

func (m *MockActivityRepository) Insert(ctx context.Context, activity *domain.Activity) error {
	args := m.Called(ctx, activity)
	return args.Error(0)
}

func (m *MockActivityRepository) List(ctx context.Context, limit int) ([]domain.Activity, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]domain.Activity), args.Error(1)
}

// MockCalendarEventRepository mocks the CalendarEventRepository interface
type MockCalendarEventRepository struct {
	mock.Mock
}

func (m *MockCalendarEventRepository) Insert(ctx context.Context, event *domain.CalendarEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockCalendarEventRepository) List(ctx context.Context, filter domain.CalendarEventFilter) ([]domain.CalendarEvent, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]domain.CalendarEvent), args.Error(1)
}

func (m *MockCalendarEventRepository) Update(ctx context.Context, id string, patch domain.CalendarEventPatch) error {
	args := m.Called(ctx, id, patch)
	return args.Error(0)
}

func (m *MockCalendarEventRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockTaskRepository mocks the TaskRepository interface
type MockTaskRepository struct {
	mock.Mock
}

func (m *MockTaskRepository) Insert(ctx context.Context, task *domain.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *MockTaskRepository) List(ctx context.Context, filter domain.TaskFilter) ([]domain.Task, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]domain.Task), args.Error(1)
}

func (m *MockTaskRepository) Update(ctx context.Context, id string, patch domain.TaskPatch) error {
	args := m.Called(ctx, id, patch)
	return args.Error(0)
}

func (m *MockTaskRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockContentDraftRepository mocks the ContentDraftRepository interface
type MockContentDraftRepository struct {
	mock.Mock
}

func (m *MockContentDraftRepository) Insert(ctx context.Context, draft *domain.ContentDraft) error {
	args := m.Called(ctx, draft)
	return args.Error(0)
}

func (m *MockContentDraftRepository) List(ctx context.Context, filter domain.ContentDraftFilter) ([]domain.ContentDraft, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]domain.ContentDraft), args.Error(1)
}

func (m *MockContentDraftRepository) Update(ctx context.Context, id string, patch domain.ContentDraftPatch) error {
	args := m.Called(ctx, id, patch)
	return args.Error(0)
}

func (m *MockContentDraftRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockEcosystemProductRepository mocks the EcosystemProductRepository interface
type MockEcosystemProductRepository struct {
	mock.Mock
}

func (m *MockEcosystemProductRepository) Insert(ctx context.Context, product *domain.EcosystemProduct) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockEcosystemProductRepository) List(ctx context.Context, status string) ([]domain.EcosystemProduct, error) {
	args := m.Called(ctx, status)
	return args.Get(0).([]domain.EcosystemProduct), args.Error(1)
}

func (m *MockEcosystemProductRepository) GetBySlug(ctx context.Context, slug string) (*domain.EcosystemProduct, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EcosystemProduct), args.Error(1)
}

func (m *MockEcosystemProductRepository) Update(ctx context.Context, id string, patch domain.EcosystemProductPatch) error {
	args := m.Called(ctx, id, patch)
	return args.Error(0)
}

// MockChatSessionRepository mocks the ChatSessionRepository interface
type MockChatSessionRepository struct {
	mock.Mock
}

func (m *MockChatSessionRepository) Insert(ctx context.Context, session *domain.ChatSession) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockChatSessionRepository) Get(ctx context.Context, id string) (*domain.ChatSession, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ChatSession), args.Error(1)
}

func (m *MockChatSessionRepository) List(ctx context.Context, limit int) ([]domain.ChatSession, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]domain.ChatSession), args.Error(1)
}

func (m *MockChatSessionRepository) RecordMessage(ctx context.Context, id string, lastMessage string, updatedAt int64) error {
	args := m.Called(ctx, id, lastMessage, updatedAt)
	return args.Error(0)
}

// MockChatMessageRepository mocks the ChatMessageRepository interface
type MockChatMessageRepository struct {
	mock.Mock
}

func (m *MockChatMessageRepository) Insert(ctx context.Context, message *domain.ChatMessage) error {
	args := m.Called(ctx, message)
	return args.Error(0)
}

func (m *MockChatMessageRepository) ListBySession(ctx context.Context, sessionID string, limit int) ([]domain.ChatMessage, error) {
	args := m.Called(ctx, sessionID, limit)
	return args.Get(0).([]domain.ChatMessage), args.Error(1)
}
