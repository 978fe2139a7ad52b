package storage

import (
	"github.com/manav03panchal/habitflare/internal/habits"
	"github.com/manav03panchal/habitflare/internal/logging"
	"github.com/manav03panchal/habitflare/internal/model"
)

// HabitRepo provides operations for Habit entities.
//
// Habit keys embed UUIDv7 ids, so prefix scans return habits in creation
// order without a separate position index.
type HabitRepo struct {
	db *DB
}

// NewHabitRepo creates a new habit repository.
func NewHabitRepo(db *DB) *HabitRepo {
	return &HabitRepo{db: db}
}

// Create stores a new habit.
func (r *HabitRepo) Create(habit *model.Habit) error {
	habit.Key = model.GenerateHabitKey(habit.ID)
	return r.db.Set(habit)
}

// Get retrieves a habit by id.
func (r *HabitRepo) Get(id string) (*model.Habit, error) {
	habit := &model.Habit{}
	if err := r.db.Get(model.GenerateHabitKey(id), habit); err != nil {
		return nil, err
	}
	habit.Streak = habits.CurrentStreak(habit)
	return habit, nil
}

// Update stores an existing habit.
func (r *HabitRepo) Update(habit *model.Habit) error {
	// Refresh the persisted streak cache; readers must still never
	// trust it without recomputing.
	habit.Streak = habits.CurrentStreak(habit)
	return r.db.Set(habit)
}

// Delete removes a habit. Deleting an unknown id is not an error; the
// second return reports whether anything was removed.
func (r *HabitRepo) Delete(id string) (bool, error) {
	key := model.GenerateHabitKey(id)
	exists, err := r.db.Exists(key)
	if err != nil {
		return false, err
	}
	if !exists {
		return false, nil
	}
	if err := r.db.Delete(key); err != nil {
		return false, err
	}
	return true, nil
}

// List retrieves all habits in insertion order. Undecodable records are
// skipped with a warning; a corrupt entry must not take the collection
// down with it. The stale persisted streak is overwritten with the
// recomputed value before the habits are handed to anyone.
func (r *HabitRepo) List() ([]*model.Habit, error) {
	collection, err := GetAllByPrefix(r.db, model.PrefixHabit+":", func() *model.Habit {
		return &model.Habit{}
	}, func(key string, err error) {
		logging.Warn("skipping corrupt habit record", "key", key, "error", err)
	})
	if err != nil {
		return nil, err
	}

	for _, h := range collection {
		h.Streak = habits.CurrentStreak(h)
	}
	return collection, nil
}

// Count returns the number of stored habits.
func (r *HabitRepo) Count() (int, error) {
	keys, err := r.db.ListByPrefix(model.PrefixHabit + ":")
	if err != nil {
		return 0, err
	}
	return len(keys), nil
}
