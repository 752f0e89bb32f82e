// Package memory provides an embedded entity store with the same contract
// as the Mongo repositories. It backs demo mode (no database required) and
// the test suite. All operations serialize on one lock; data volumes in
// this mode are small.
package memory

import (
	"context"
	"sync"

	"github.com/wagneradl/mission-control/internal/domain"
)

// Store holds every entity table in process memory.
type Store struct {
	mu        sync.RWMutex
	activity  map[string]domain.Activity
	events    map[string]domain.CalendarEvent
	tasks     map[string]domain.Task
	contacts  map[string]domain.Contact
	drafts    map[string]domain.ContentDraft
	products  map[string]domain.EcosystemProduct
	sessions  map[string]domain.ChatSession
	messages  map[string]domain.ChatMessage
	insertSeq map[string]int64
	seq       int64
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		activity:  make(map[string]domain.Activity),
		events:    make(map[string]domain.CalendarEvent),
		tasks:     make(map[string]domain.Task),
		contacts:  make(map[string]domain.Contact),
		drafts:    make(map[string]domain.ContentDraft),
		products:  make(map[string]domain.EcosystemProduct),
		sessions:  make(map[string]domain.ChatSession),
		messages:  make(map[string]domain.ChatMessage),
		insertSeq: make(map[string]int64),
	}
}

// Ping always succeeds; the store lives in process memory.
func (s *Store) Ping(ctx context.Context) error {
	return nil
}

// nextSeq records insertion order so unsorted listings can preserve natural
// insert order the way a fresh table scan would.
func (s *Store) nextSeq(id string) {
	s.seq++
	s.insertSeq[id] = s.seq
}

// Repositories bound to this store.

func (s *Store) Activities() *ActivityRepository {
	return &ActivityRepository{store: s}
}

func (s *Store) CalendarEvents() *CalendarEventRepository {
	return &CalendarEventRepository{store: s}
}

func (s *Store) Tasks() *TaskRepository {
	return &TaskRepository{store: s}
}

func (s *Store) Contacts() *ContactRepository {
	return &ContactRepository{store: s}
}

func (s *Store) ContentDrafts() *ContentDraftRepository {
	return &ContentDraftRepository{store: s}
}

func (s *Store) EcosystemProducts() *EcosystemProductRepository {
	return &EcosystemProductRepository{store: s}
}

func (s *Store) ChatSessions() *ChatSessionRepository {
	return &ChatSessionRepository{store: s}
}

func (s *Store) ChatMessages() *ChatMessageRepository {
	return &ChatMessageRepository{store: s}
}
