package memory

import (
	"context"
	"sync"

	"kizuna-dashboard/internal/domain/settings"
)

type settingsRepo struct {
	mu     sync.RWMutex
	cur    settings.Settings
	loaded bool
}

func NewSettingsRepo() settings.Repository {
	return &settingsRepo{}
}

func (r *settingsRepo) Get(ctx context.Context) (settings.Settings, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.cur, r.loaded, nil
}

func (r *settingsRepo) Set(ctx context.Context, s settings.Settings) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cur = s
	r.loaded = true
	return nil
}
