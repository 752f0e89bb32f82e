package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wagneradl/mission-control/internal/domain"
	"github.com/wagneradl/mission-control/internal/repository/memory"
)

func newSeedService(store *memory.Store) *SeedService {
	return NewSeedService(
		store.Activities(), store.CalendarEvents(), store.Tasks(),
		store.Contacts(), store.ContentDrafts(), store.EcosystemProducts(),
		store.ChatSessions(), store.ChatMessages(),
		fixedClock{now: time.UnixMilli(1700000000000)},
	)
}

func TestSeedAll(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	svc := newSeedService(store)

	require.NoError(t, svc.SeedAll(ctx))

	activities, err := store.Activities().List(ctx, 50)
	require.NoError(t, err)
	assert.Len(t, activities, 6)

	tasks, err := store.Tasks().List(ctx, domain.TaskFilter{})
	require.NoError(t, err)
	assert.Len(t, tasks, 4)

	products, err := store.EcosystemProducts().List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, products, 4)

	sessions, err := store.ChatSessions().List(ctx, 20)
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, 4, sessions[0].MessageCount)

	messages, err := store.ChatMessages().ListBySession(ctx, sessions[0].ID, 100)
	require.NoError(t, err)
	require.Len(t, messages, 4)
	assert.Equal(t, truncate(messages[3].Content, domain.LastMessageMaxLen), sessions[0].LastMessage)
}

func TestSeedAllTwice(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	svc := newSeedService(store)

	require.NoError(t, svc.SeedAll(ctx))
	require.NoError(t, svc.SeedAll(ctx))

	// Every table duplicates except products, whose fixture slugs are
	// already taken on the second run.
	activities, err := store.Activities().List(ctx, 50)
	require.NoError(t, err)
	assert.Len(t, activities, 12)

	events, err := store.CalendarEvents().List(ctx, domain.CalendarEventFilter{})
	require.NoError(t, err)
	assert.Len(t, events, 8)

	tasks, err := store.Tasks().List(ctx, domain.TaskFilter{})
	require.NoError(t, err)
	assert.Len(t, tasks, 8)

	drafts, err := store.ContentDrafts().List(ctx, domain.ContentDraftFilter{})
	require.NoError(t, err)
	assert.Len(t, drafts, 8)

	contacts, err := store.Contacts().List(ctx)
	require.NoError(t, err)
	assert.Len(t, contacts, 6)

	products, err := store.EcosystemProducts().List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, products, 4)

	sessions, err := store.ChatSessions().List(ctx, 20)
	require.NoError(t, err)
	assert.Len(t, sessions, 2)
}
