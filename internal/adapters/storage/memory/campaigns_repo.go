package memory

import (
	"context"
	"sync"

	"kizuna-dashboard/internal/domain/campaigns"
)

type campaignRepo struct {
	mu    sync.RWMutex
	items []campaigns.Campaign
}

func NewCampaignRepo() campaigns.CampaignRepository {
	return &campaignRepo{}
}

func (r *campaignRepo) ReplaceAll(ctx context.Context, items []campaigns.Campaign) error {
	snapshot := make([]campaigns.Campaign, len(items))
	copy(snapshot, items)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = snapshot
	return nil
}

func (r *campaignRepo) List(ctx context.Context) ([]campaigns.Campaign, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]campaigns.Campaign, len(r.items))
	copy(out, r.items)
	return out, nil
}

type draftRepo struct {
	mu    sync.RWMutex
	items []campaigns.Draft
}

func NewDraftRepo() campaigns.DraftRepository {
	return &draftRepo{}
}

func (r *draftRepo) ReplaceAll(ctx context.Context, items []campaigns.Draft) error {
	snapshot := make([]campaigns.Draft, len(items))
	copy(snapshot, items)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = snapshot
	return nil
}

func (r *draftRepo) List(ctx context.Context) ([]campaigns.Draft, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]campaigns.Draft, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *draftRepo) GetByID(ctx context.Context, id string) (campaigns.Draft, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, d := range r.items {
		if d.ID == id {
			return d, nil
		}
	}
	return campaigns.Draft{}, campaigns.ErrNotFound
}
