package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/wagneradl/mission-control/internal/domain"
)

func TestActivityService_Create(t *testing.T) {
	ctx := context.Background()
	now := time.UnixMilli(1700000000000)

	t.Run("success", func(t *testing.T) {
		repo := new(MockActivityRepository)
		events := &recordingPublisher{}
		svc := NewActivityService(repo, fixedClock{now: now}, events)

		var inserted *domain.Activity
		repo.On("Insert", ctx, mock.AnythingOfType("*domain.Activity")).Run(func(args mock.Arguments) {
			inserted = args.Get(1).(*domain.Activity)
		}).Return(nil)

		id, err := svc.Create(ctx, domain.ActivityCreate{
			Type:      "agent",
			Title:     "Agent spawned",
			Timestamp: 1699999990000,
			Source:    "openclaw",
		})
		assert.NoError(t, err)
		assert.NotEmpty(t, id)
		assert.Equal(t, id, inserted.ID)
		assert.Equal(t, int64(1700000000000), inserted.CreatedAt)
		assert.Equal(t, int64(1699999990000), inserted.Timestamp)

		published := events.all()
		if assert.Len(t, published, 1) {
			assert.Equal(t, "activities", published[0].Table)
			assert.Equal(t, domain.ActionCreated, published[0].Action)
			assert.Equal(t, id, published[0].ID)
		}
		repo.AssertExpectations(t)
	})

	t.Run("missing title", func(t *testing.T) {
		repo := new(MockActivityRepository)
		svc := NewActivityService(repo, fixedClock{now: now}, domain.NopPublisher{})

		_, err := svc.Create(ctx, domain.ActivityCreate{
			Type:      "agent",
			Timestamp: 1699999990000,
		})
		assert.True(t, domain.IsValidation(err))
		repo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	})

	t.Run("zero timestamp rejected", func(t *testing.T) {
		repo := new(MockActivityRepository)
		svc := NewActivityService(repo, fixedClock{now: now}, domain.NopPublisher{})

		_, err := svc.Create(ctx, domain.ActivityCreate{
			Type:  "agent",
			Title: "no timestamp",
		})
		assert.True(t, domain.IsValidation(err))
	})
}

func TestActivityService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("default limit", func(t *testing.T) {
		repo := new(MockActivityRepository)
		svc := NewActivityService(repo, fixedClock{}, domain.NopPublisher{})

		repo.On("List", ctx, DefaultActivityLimit).Return([]domain.Activity{}, nil)

		_, err := svc.List(ctx, 0)
		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("explicit limit", func(t *testing.T) {
		repo := new(MockActivityRepository)
		svc := NewActivityService(repo, fixedClock{}, domain.NopPublisher{})

		repo.On("List", ctx, 10).Return([]domain.Activity{{ID: "a"}}, nil)

		activities, err := svc.List(ctx, 10)
		assert.NoError(t, err)
		assert.Len(t, activities, 1)
	})
}
