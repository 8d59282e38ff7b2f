package memory

import (
	"context"
	"strings"
	"sync"

	"kizuna-dashboard/internal/domain/pets"
)

// petRepo conserva el orden del snapshot del backend.
type petRepo struct {
	mu      sync.RWMutex
	items   []pets.Pet
	version uint64
}

func NewPetRepo() pets.Repository {
	return &petRepo{}
}

func (r *petRepo) ReplaceAll(ctx context.Context, items []pets.Pet) error {
	snapshot := make([]pets.Pet, len(items))
	copy(snapshot, items)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = snapshot
	r.version++
	return nil
}

func (r *petRepo) List(ctx context.Context) ([]pets.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]pets.Pet, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *petRepo) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.items {
		if p.ID == id {
			return p, nil
		}
	}
	return pets.Pet{}, pets.ErrNotFound
}

// DeleteByID filtra sobre el estado actual, no sobre una copia previa.
func (r *petRepo) DeleteByID(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return pets.ErrNotFound
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	kept := make([]pets.Pet, 0, len(r.items))
	found := false
	for _, p := range r.items {
		if p.ID == id {
			found = true
			continue
		}
		kept = append(kept, p)
	}
	if !found {
		return pets.ErrNotFound
	}
	r.items = kept
	r.version++
	return nil
}

func (r *petRepo) Version() uint64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.version
}
