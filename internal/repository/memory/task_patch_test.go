package memory

import (
	"context"
	"testing"

	"github.com/wagneradl/mission-control/internal/domain"
	"pgregory.net/rapid"
)

// Merge semantics: a nil patch field keeps the stored value, a non-nil
// field replaces it, and nothing else changes.
func TestTaskPatchMerge(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		ctx := context.Background()
		store := NewStore()
		repo := store.Tasks()

		original := domain.Task{
			ID:          "t1",
			Title:       rapid.StringMatching(`[a-z]{1,12}`).Draw(t, "title"),
			Description: rapid.StringMatching(`[a-z ]{0,20}`).Draw(t, "description"),
			Status:      rapid.SampledFrom([]string{"pending", "approved", "in_progress", "done"}).Draw(t, "status"),
			Priority:    rapid.SampledFrom([]string{"low", "medium", "high"}).Draw(t, "priority"),
			Category:    rapid.SampledFrom([]string{"Product", "Content", "Operations"}).Draw(t, "category"),
			DueDate:     rapid.Int64Range(0, 1<<40).Draw(t, "dueDate"),
			CreatedAt:   1700000000000,
			UpdatedAt:   1700000000000,
		}
		if err := repo.Insert(ctx, &original); err != nil {
			t.Fatalf("insert: %v", err)
		}

		patch := domain.TaskPatch{UpdatedAt: 1700000001000}
		if rapid.Bool().Draw(t, "patchTitle") {
			v := rapid.StringMatching(`[a-z]{1,12}`).Draw(t, "newTitle")
			patch.Title = &v
		}
		if rapid.Bool().Draw(t, "patchStatus") {
			v := rapid.SampledFrom([]string{"pending", "approved", "in_progress", "done"}).Draw(t, "newStatus")
			patch.Status = &v
		}
		if rapid.Bool().Draw(t, "patchDueDate") {
			v := rapid.Int64Range(0, 1<<40).Draw(t, "newDueDate")
			patch.DueDate = &v
		}

		if err := repo.Update(ctx, "t1", patch); err != nil {
			t.Fatalf("update: %v", err)
		}

		tasks, err := repo.List(ctx, domain.TaskFilter{})
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(tasks) != 1 {
			t.Fatalf("expected 1 task, got %d", len(tasks))
		}
		got := tasks[0]

		want := original
		if patch.Title != nil {
			want.Title = *patch.Title
		}
		if patch.Status != nil {
			want.Status = *patch.Status
		}
		if patch.DueDate != nil {
			want.DueDate = *patch.DueDate
		}
		want.UpdatedAt = patch.UpdatedAt

		if got != want {
			t.Fatalf("merge mismatch:\n got %+v\nwant %+v", got, want)
		}
	})
}
