package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"kizuna-dashboard/internal/domain/reminders"
)

type reminderRepo struct {
	mu      sync.RWMutex
	items   []reminders.Reminder // más reciente primero
	version uint64
}

func NewReminderRepo() reminders.Repository {
	return &reminderRepo{}
}

func (r *reminderRepo) Prepend(ctx context.Context, rem reminders.Reminder) error {
	if strings.TrimSpace(rem.ID) == "" {
		return errors.New("reminder id required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	next := make([]reminders.Reminder, 0, len(r.items)+1)
	next = append(next, rem)
	next = append(next, r.items...)
	r.items = next
	r.version++
	return nil
}

func (r *reminderRepo) List(ctx context.Context) ([]reminders.Reminder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]reminders.Reminder, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *reminderRepo) ListByPet(ctx context.Context, petID string) ([]reminders.Reminder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]reminders.Reminder, 0)
	for _, it := range r.items {
		if it.PetID == petID {
			out = append(out, it)
		}
	}
	return out, nil
}

func (r *reminderRepo) Version() uint64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.version
}
