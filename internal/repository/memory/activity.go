package memory

import (
	"context"
	"sort"

	"github.com/wagneradl/mission-control/internal/domain"
)

// ActivityRepository implements domain.ActivityRepository in memory.
type ActivityRepository struct {
	store *Store
}

func (r *ActivityRepository) Insert(ctx context.Context, activity *domain.Activity) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.activity[activity.ID] = *activity
	r.store.nextSeq(activity.ID)
	return nil
}

func (r *ActivityRepository) List(ctx context.Context, limit int) ([]domain.Activity, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	activities := make([]domain.Activity, 0, len(r.store.activity))
	for _, a := range r.store.activity {
		activities = append(activities, a)
	}
	sort.Slice(activities, func(i, j int) bool {
		return activities[i].Timestamp > activities[j].Timestamp
	})
	if limit > 0 && len(activities) > limit {
		activities = activities[:limit]
	}
	return activities, nil
}
