package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/wagneradl/mission-control/internal/domain"
)

// TaskService handles task board operations.
type TaskService struct {
	repo   domain.TaskRepository
	clock  domain.Clock
	events domain.EventPublisher
}

// NewTaskService creates a new task service
func NewTaskService(repo domain.TaskRepository, clock domain.Clock, events domain.EventPublisher) *TaskService {
	return &TaskService{repo: repo, clock: clock, events: events}
}

// Create inserts a task with createdAt and updatedAt set to the same
// instant, and returns its id.
func (s *TaskService) Create(ctx context.Context, input domain.TaskCreate) (string, error) {
	if err := validateInput(input); err != nil {
		return "", err
	}

	now := domain.EpochMillis(s.clock.Now())
	task := &domain.Task{
		ID:          uuid.NewString(),
		Title:       input.Title,
		Description: input.Description,
		Status:      input.Status,
		Priority:    input.Priority,
		Category:    input.Category,
		Effort:      input.Effort,
		Reasoning:   input.Reasoning,
		NextAction:  input.NextAction,
		AssignedTo:  input.AssignedTo,
		DueDate:     input.DueDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Insert(ctx, task); err != nil {
		return "", fmt.Errorf("failed to create task: %w", err)
	}

	s.events.Publish(domain.ChangeEvent{Table: "tasks", Action: domain.ActionCreated, ID: task.ID})
	return task.ID, nil
}

// List returns tasks matching the optional status/category filters.
func (s *TaskService) List(ctx context.Context, filter domain.TaskFilter) ([]domain.Task, error) {
	tasks, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// Update merges the supplied fields and unconditionally refreshes
// updatedAt, even when no visible field changed.
func (s *TaskService) Update(ctx context.Context, id string, patch domain.TaskPatch) error {
	patch.UpdatedAt = domain.EpochMillis(s.clock.Now())
	if err := s.repo.Update(ctx, id, patch); err != nil {
		return err
	}
	s.events.Publish(domain.ChangeEvent{Table: "tasks", Action: domain.ActionUpdated, ID: id})
	return nil
}

// Delete removes the task. A second delete of the same id reports not found.
func (s *TaskService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.events.Publish(domain.ChangeEvent{Table: "tasks", Action: domain.ActionDeleted, ID: id})
	return nil
}
