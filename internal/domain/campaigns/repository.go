package campaigns

import "context"

type CampaignRepository interface {
	ReplaceAll(ctx context.Context, items []Campaign) error
	List(ctx context.Context) ([]Campaign, error)
}

type DraftRepository interface {
	ReplaceAll(ctx context.Context, items []Draft) error
	List(ctx context.Context) ([]Draft, error)
	GetByID(ctx context.Context, id string) (Draft, error)
}
