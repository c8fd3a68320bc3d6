package memory

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/kamaops/salesops-backend/internal/domain"
)

// ActivityRepository implements domain.ActivityRepository.
type ActivityRepository struct {
	store *Store
}

// NewActivityRepository creates a new ActivityRepository.
func NewActivityRepository(store *Store) *ActivityRepository {
	return &ActivityRepository{store: store}
}

// GetAll returns activities matching the filters, newest first.
func (r *ActivityRepository) GetAll(filters *domain.ActivityFilters) ([]*domain.Activity, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var out []*domain.Activity
	for _, a := range r.store.activities {
		if filters != nil {
			if filters.CustomerID != nil && a.CustomerID != *filters.CustomerID {
				continue
			}
			if filters.ActivityType != nil && a.ActivityType != *filters.ActivityType {
				continue
			}
		}
		out = append(out, copyActivity(a))
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// GetByID returns one activity.
func (r *ActivityRepository) GetByID(id string) (*domain.Activity, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	a, ok := r.store.activities[id]
	if !ok {
		return nil, domain.ErrActivityNotFound
	}
	return copyActivity(a), nil
}

// Create assigns an id and creation timestamp and stores the activity.
func (r *ActivityRepository) Create(activity *domain.Activity) (*domain.Activity, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	stored := copyActivity(activity)
	stored.ID = uuid.New().String()
	stored.CreatedAt = time.Now().UTC()
	r.store.activities[stored.ID] = stored
	return copyActivity(stored), nil
}

// Update replaces an existing activity.
func (r *ActivityRepository) Update(activity *domain.Activity) (*domain.Activity, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.activities[activity.ID]; !ok {
		return nil, domain.ErrActivityNotFound
	}
	stored := copyActivity(activity)
	r.store.activities[stored.ID] = stored
	return copyActivity(stored), nil
}

// Delete removes an activity.
func (r *ActivityRepository) Delete(id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.activities[id]; !ok {
		return domain.ErrActivityNotFound
	}
	delete(r.store.activities, id)
	return nil
}
