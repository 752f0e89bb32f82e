package memory

import (
	"context"
	"sort"

	"github.com/wagneradl/mission-control/internal/domain"
)

// ContentDraftRepository implements domain.ContentDraftRepository in memory.
type ContentDraftRepository struct {
	store *Store
}

func (r *ContentDraftRepository) Insert(ctx context.Context, draft *domain.ContentDraft) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.drafts[draft.ID] = *draft
	r.store.nextSeq(draft.ID)
	return nil
}

func (r *ContentDraftRepository) List(ctx context.Context, filter domain.ContentDraftFilter) ([]domain.ContentDraft, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	drafts := []domain.ContentDraft{}
	for _, d := range r.store.drafts {
		if filter.Status != "" && d.Status != filter.Status {
			continue
		}
		if filter.Platform != "" && d.Platform != filter.Platform {
			continue
		}
		drafts = append(drafts, d)
	}
	sort.Slice(drafts, func(i, j int) bool {
		if drafts[i].CreatedAt != drafts[j].CreatedAt {
			return drafts[i].CreatedAt > drafts[j].CreatedAt
		}
		return r.store.insertSeq[drafts[i].ID] > r.store.insertSeq[drafts[j].ID]
	})
	return drafts, nil
}

func (r *ContentDraftRepository) Update(ctx context.Context, id string, patch domain.ContentDraftPatch) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	draft, ok := r.store.drafts[id]
	if !ok {
		return domain.NewNotFoundError("contentDrafts", id)
	}
	if patch.Title != nil {
		draft.Title = *patch.Title
	}
	if patch.Content != nil {
		draft.Content = *patch.Content
	}
	if patch.Platform != nil {
		draft.Platform = *patch.Platform
	}
	if patch.Status != nil {
		draft.Status = *patch.Status
	}
	if patch.ScheduledFor != nil {
		draft.ScheduledFor = *patch.ScheduledFor
	}
	if patch.PublishedAt != nil {
		draft.PublishedAt = *patch.PublishedAt
	}
	if patch.Tags != nil {
		draft.Tags = *patch.Tags
	}
	draft.UpdatedAt = patch.UpdatedAt
	r.store.drafts[id] = draft
	return nil
}

func (r *ContentDraftRepository) Delete(ctx context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.drafts[id]; !ok {
		return domain.NewNotFoundError("contentDrafts", id)
	}
	delete(r.store.drafts, id)
	return nil
}
