package memory

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wagneradl/mission-control/internal/domain"
)

func TestActivityOrdering(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	repo := store.Activities()

	for i, ts := range []int64{100, 300, 200} {
		require.NoError(t, repo.Insert(ctx, &domain.Activity{
			ID:        fmt.Sprintf("a%d", i),
			Type:      "agent",
			Title:     "item",
			Timestamp: ts,
		}))
	}

	activities, err := repo.List(ctx, 50)
	require.NoError(t, err)
	require.Len(t, activities, 3)
	assert.Equal(t, int64(300), activities[0].Timestamp)
	assert.Equal(t, int64(200), activities[1].Timestamp)
	assert.Equal(t, int64(100), activities[2].Timestamp)

	limited, err := repo.List(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)
	assert.Equal(t, int64(300), limited[0].Timestamp)
}

func TestCalendarWindowInclusive(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	repo := store.CalendarEvents()

	events := []domain.CalendarEvent{
		{ID: "e1", Title: "early", Start: 100, End: 150},
		{ID: "e2", Title: "inside", Start: 200, End: 250},
		{ID: "e3", Title: "boundary", Start: 300, End: 400},
		{ID: "e4", Title: "late", Start: 500, End: 600},
	}
	for i := range events {
		require.NoError(t, repo.Insert(ctx, &events[i]))
	}

	start, end := int64(200), int64(400)
	got, err := repo.List(ctx, domain.CalendarEventFilter{StartDate: &start, EndDate: &end})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "inside", got[0].Title)
	assert.Equal(t, "boundary", got[1].Title)

	all, err := repo.List(ctx, domain.CalendarEventFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 4)
	assert.Equal(t, "early", all[0].Title)
}

func TestTaskFiltersAndDelete(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	repo := store.Tasks()

	require.NoError(t, repo.Insert(ctx, &domain.Task{ID: "t1", Title: "a", Status: "pending", Category: "Product"}))
	require.NoError(t, repo.Insert(ctx, &domain.Task{ID: "t2", Title: "b", Status: "approved", Category: "Product"}))
	require.NoError(t, repo.Insert(ctx, &domain.Task{ID: "t3", Title: "c", Status: "pending", Category: "Content"}))

	pending, err := repo.List(ctx, domain.TaskFilter{Status: "pending"})
	require.NoError(t, err)
	assert.Len(t, pending, 2)

	both, err := repo.List(ctx, domain.TaskFilter{Status: "pending", Category: "Content"})
	require.NoError(t, err)
	require.Len(t, both, 1)
	assert.Equal(t, "t3", both[0].ID)

	require.NoError(t, repo.Delete(ctx, "t2"))
	err = repo.Delete(ctx, "t2")
	assert.True(t, domain.IsNotFound(err))

	err = repo.Update(ctx, "t2", domain.TaskPatch{})
	assert.True(t, domain.IsNotFound(err))
}

func TestContactsSortedByName(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	repo := store.Contacts()

	for _, name := range []string{"Sarah Miller", "Alex Chen", "James Wilson"} {
		require.NoError(t, repo.Insert(ctx, &domain.Contact{ID: name, Name: name}))
	}

	contacts, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, contacts, 3)
	assert.Equal(t, "Alex Chen", contacts[0].Name)
	assert.Equal(t, "James Wilson", contacts[1].Name)
	assert.Equal(t, "Sarah Miller", contacts[2].Name)
}

func TestContentDraftsNewestFirst(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	repo := store.ContentDrafts()

	require.NoError(t, repo.Insert(ctx, &domain.ContentDraft{ID: "d1", Title: "old", Status: "draft", Platform: "blog", CreatedAt: 100}))
	require.NoError(t, repo.Insert(ctx, &domain.ContentDraft{ID: "d2", Title: "new", Status: "draft", Platform: "twitter", CreatedAt: 300}))
	require.NoError(t, repo.Insert(ctx, &domain.ContentDraft{ID: "d3", Title: "mid", Status: "review", Platform: "blog", CreatedAt: 200}))

	drafts, err := repo.List(ctx, domain.ContentDraftFilter{})
	require.NoError(t, err)
	require.Len(t, drafts, 3)
	assert.Equal(t, "new", drafts[0].Title)
	assert.Equal(t, "mid", drafts[1].Title)
	assert.Equal(t, "old", drafts[2].Title)

	blog, err := repo.List(ctx, domain.ContentDraftFilter{Platform: "blog"})
	require.NoError(t, err)
	assert.Len(t, blog, 2)
}

func TestProductSlugUnique(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	repo := store.EcosystemProducts()

	require.NoError(t, repo.Insert(ctx, &domain.EcosystemProduct{ID: "p1", Name: "Dashboard", Slug: "dashboard", Status: "active"}))

	err := repo.Insert(ctx, &domain.EcosystemProduct{ID: "p2", Name: "Other", Slug: "dashboard", Status: "concept"})
	assert.True(t, domain.IsValidation(err))

	product, err := repo.GetBySlug(ctx, "dashboard")
	require.NoError(t, err)
	assert.Equal(t, "p1", product.ID)

	_, err = repo.GetBySlug(ctx, "missing")
	assert.True(t, domain.IsNotFound(err))
}

func TestChatSessionLifecycle(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	sessions := store.ChatSessions()
	messages := store.ChatMessages()

	require.NoError(t, sessions.Insert(ctx, &domain.ChatSession{ID: "s1", Title: "A", Channel: "webchat", UpdatedAt: 100}))
	require.NoError(t, sessions.Insert(ctx, &domain.ChatSession{ID: "s2", Title: "B", Channel: "webchat", UpdatedAt: 200}))

	listed, err := sessions.List(ctx, 20)
	require.NoError(t, err)
	require.Len(t, listed, 2)
	assert.Equal(t, "s2", listed[0].ID)

	require.NoError(t, sessions.RecordMessage(ctx, "s1", "hello", 300))
	s1, err := sessions.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, 1, s1.MessageCount)
	assert.Equal(t, "hello", s1.LastMessage)
	assert.Equal(t, int64(300), s1.UpdatedAt)

	listed, err = sessions.List(ctx, 20)
	require.NoError(t, err)
	assert.Equal(t, "s1", listed[0].ID)

	err = sessions.RecordMessage(ctx, "ghost", "x", 1)
	assert.True(t, domain.IsNotFound(err))

	// Messages come back oldest first, capped at limit.
	for i, ts := range []int64{300, 100, 200} {
		require.NoError(t, messages.Insert(ctx, &domain.ChatMessage{
			ID:        fmt.Sprintf("m%d", i),
			SessionID: "s1",
			Role:      domain.RoleUser,
			Content:   "msg",
			Timestamp: ts,
		}))
	}
	require.NoError(t, messages.Insert(ctx, &domain.ChatMessage{ID: "other", SessionID: "s2", Role: domain.RoleUser, Content: "x", Timestamp: 50}))

	got, err := messages.ListBySession(ctx, "s1", 100)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, int64(100), got[0].Timestamp)
	assert.Equal(t, int64(200), got[1].Timestamp)
	assert.Equal(t, int64(300), got[2].Timestamp)

	capped, err := messages.ListBySession(ctx, "s1", 2)
	require.NoError(t, err)
	assert.Len(t, capped, 2)
}
