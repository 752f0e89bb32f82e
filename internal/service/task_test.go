package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/wagneradl/mission-control/internal/domain"
)

func TestTaskService_Create(t *testing.T) {
	ctx := context.Background()
	now := time.UnixMilli(1700000000000)

	t.Run("createdAt and updatedAt start equal", func(t *testing.T) {
		repo := new(MockTaskRepository)
		svc := NewTaskService(repo, fixedClock{now: now}, domain.NopPublisher{})

		var inserted *domain.Task
		repo.On("Insert", ctx, mock.AnythingOfType("*domain.Task")).Run(func(args mock.Arguments) {
			inserted = args.Get(1).(*domain.Task)
		}).Return(nil)

		_, err := svc.Create(ctx, domain.TaskCreate{
			Title:    "Launch landing page",
			Status:   "pending",
			Priority: "high",
			Category: "Product",
		})
		assert.NoError(t, err)
		assert.Equal(t, int64(1700000000000), inserted.CreatedAt)
		assert.Equal(t, inserted.CreatedAt, inserted.UpdatedAt)
	})

	t.Run("missing status", func(t *testing.T) {
		repo := new(MockTaskRepository)
		svc := NewTaskService(repo, fixedClock{now: now}, domain.NopPublisher{})

		_, err := svc.Create(ctx, domain.TaskCreate{
			Title:    "no status",
			Priority: "high",
			Category: "Product",
		})
		assert.True(t, domain.IsValidation(err))
	})

	t.Run("repo error wrapped", func(t *testing.T) {
		repo := new(MockTaskRepository)
		svc := NewTaskService(repo, fixedClock{now: now}, domain.NopPublisher{})

		repo.On("Insert", ctx, mock.AnythingOfType("*domain.Task")).
			Return(&domain.TransientIOError{Op: "insert", Err: errors.New("down")})

		_, err := svc.Create(ctx, domain.TaskCreate{
			Title:    "x",
			Status:   "pending",
			Priority: "high",
			Category: "Product",
		})
		assert.True(t, domain.IsTransient(err))
	})
}

func TestTaskService_Update(t *testing.T) {
	ctx := context.Background()
	now := time.UnixMilli(1700000005000)

	t.Run("updatedAt refreshed even for empty patch", func(t *testing.T) {
		repo := new(MockTaskRepository)
		events := &recordingPublisher{}
		svc := NewTaskService(repo, fixedClock{now: now}, events)

		var applied domain.TaskPatch
		repo.On("Update", ctx, "t1", mock.AnythingOfType("domain.TaskPatch")).Run(func(args mock.Arguments) {
			applied = args.Get(2).(domain.TaskPatch)
		}).Return(nil)

		err := svc.Update(ctx, "t1", domain.TaskPatch{})
		assert.NoError(t, err)
		assert.Equal(t, int64(1700000005000), applied.UpdatedAt)
		assert.Nil(t, applied.Title)

		published := events.all()
		if assert.Len(t, published, 1) {
			assert.Equal(t, "tasks", published[0].Table)
			assert.Equal(t, domain.ActionUpdated, published[0].Action)
		}
	})

	t.Run("not found passes through", func(t *testing.T) {
		repo := new(MockTaskRepository)
		events := &recordingPublisher{}
		svc := NewTaskService(repo, fixedClock{now: now}, events)

		repo.On("Update", ctx, "missing", mock.AnythingOfType("domain.TaskPatch")).
			Return(domain.NewNotFoundError("tasks", "missing"))

		err := svc.Update(ctx, "missing", domain.TaskPatch{})
		assert.True(t, domain.IsNotFound(err))
		assert.Empty(t, events.all())
	})
}

func TestTaskService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("absent id reports not found", func(t *testing.T) {
		repo := new(MockTaskRepository)
		events := &recordingPublisher{}
		svc := NewTaskService(repo, fixedClock{}, events)

		repo.On("Delete", ctx, "gone").Return(domain.NewNotFoundError("tasks", "gone"))

		err := svc.Delete(ctx, "gone")
		assert.True(t, domain.IsNotFound(err))
		assert.Empty(t, events.all())
	})

	t.Run("success publishes deletion", func(t *testing.T) {
		repo := new(MockTaskRepository)
		events := &recordingPublisher{}
		svc := NewTaskService(repo, fixedClock{}, events)

		repo.On("Delete", ctx, "t1").Return(nil)

		assert.NoError(t, svc.Delete(ctx, "t1"))
		published := events.all()
		if assert.Len(t, published, 1) {
			assert.Equal(t, domain.ActionDeleted, published[0].Action)
		}
	})
}
