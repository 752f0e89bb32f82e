package memory

import (
	"context"
	"sort"

	"github.com/wagneradl/mission-control/internal/domain"
)

// TaskRepository implements domain.TaskRepository in memory.
type TaskRepository struct {
	store *Store
}

func (r *TaskRepository) Insert(ctx context.Context, task *domain.Task) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.tasks[task.ID] = *task
	r.store.nextSeq(task.ID)
	return nil
}

func (r *TaskRepository) List(ctx context.Context, filter domain.TaskFilter) ([]domain.Task, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	tasks := []domain.Task{}
	for _, t := range r.store.tasks {
		if filter.Status != "" && t.Status != filter.Status {
			continue
		}
		if filter.Category != "" && t.Category != filter.Category {
			continue
		}
		tasks = append(tasks, t)
	}
	// Natural insertion order, matching a plain table scan.
	sort.Slice(tasks, func(i, j int) bool {
		return r.store.insertSeq[tasks[i].ID] < r.store.insertSeq[tasks[j].ID]
	})
	return tasks, nil
}

func (r *TaskRepository) Update(ctx context.Context, id string, patch domain.TaskPatch) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	task, ok := r.store.tasks[id]
	if !ok {
		return domain.NewNotFoundError("tasks", id)
	}
	if patch.Title != nil {
		task.Title = *patch.Title
	}
	if patch.Description != nil {
		task.Description = *patch.Description
	}
	if patch.Status != nil {
		task.Status = *patch.Status
	}
	if patch.Priority != nil {
		task.Priority = *patch.Priority
	}
	if patch.Category != nil {
		task.Category = *patch.Category
	}
	if patch.Effort != nil {
		task.Effort = *patch.Effort
	}
	if patch.Reasoning != nil {
		task.Reasoning = *patch.Reasoning
	}
	if patch.NextAction != nil {
		task.NextAction = *patch.NextAction
	}
	if patch.AssignedTo != nil {
		task.AssignedTo = *patch.AssignedTo
	}
	if patch.DueDate != nil {
		task.DueDate = *patch.DueDate
	}
	task.UpdatedAt = patch.UpdatedAt
	r.store.tasks[id] = task
	return nil
}

func (r *TaskRepository) Delete(ctx context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.tasks[id]; !ok {
		return domain.NewNotFoundError("tasks", id)
	}
	delete(r.store.tasks, id)
	return nil
}
