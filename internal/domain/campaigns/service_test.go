package campaigns_test

import (
	"context"
	"errors"
	"testing"

	"kizuna-dashboard/internal/adapters/storage/memory"
	"kizuna-dashboard/internal/domain/campaigns"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBackend struct {
	campaigns  []campaigns.Campaign
	drafts     []campaigns.Draft
	listDrafts int

	created   []campaigns.CreateRequest
	createErr error

	decisions  []campaigns.Decision
	processErr error

	wishes int
}

func (f *fakeBackend) ListCampaigns(context.Context) ([]campaigns.Campaign, error) {
	return f.campaigns, nil
}

func (f *fakeBackend) CreateCampaign(_ context.Context, req campaigns.CreateRequest) (campaigns.CreateResult, error) {
	if f.createErr != nil {
		return campaigns.CreateResult{}, f.createErr
	}
	f.created = append(f.created, req)
	f.campaigns = append(f.campaigns, campaigns.Campaign{ID: "c1", Name: req.Name, TargetAudience: req.Target})
	f.drafts = append(f.drafts, campaigns.Draft{ID: "d9", PetName: "Bingo"})
	return campaigns.CreateResult{Status: "success", CampaignID: "c1", DraftsCreated: 1}, nil
}

func (f *fakeBackend) ListDrafts(context.Context) ([]campaigns.Draft, error) {
	f.listDrafts++
	return f.drafts, nil
}

func (f *fakeBackend) ProcessDraft(_ context.Context, d campaigns.Decision) error {
	f.decisions = append(f.decisions, d)
	if f.processErr != nil {
		return f.processErr
	}
	kept := f.drafts[:0:0]
	for _, it := range f.drafts {
		if it.ID != d.DraftID {
			kept = append(kept, it)
		}
	}
	f.drafts = kept
	return nil
}

func (f *fakeBackend) GenerateAutoWishes(context.Context) (int, error) {
	f.wishes++
	f.drafts = append(f.drafts, campaigns.Draft{ID: "w1", Type: "wellness_wish"})
	return 1, nil
}

type recorder struct{ msgs []string }

func (r *recorder) Notify(m string) { r.msgs = append(r.msgs, m) }

func newService(b *fakeBackend) (*campaigns.Service, *recorder) {
	notes := &recorder{}
	return campaigns.NewService(memory.NewCampaignRepo(), memory.NewDraftRepo(), b, notes, nil), notes
}

func TestCreateCampaign_RefetchesCampaignsAndDrafts(t *testing.T) {
	b := &fakeBackend{}
	svc, notes := newService(b)

	res, err := svc.CreateCampaign(context.Background(), "Rabies", "Hi {owner_name}", "")
	require.NoError(t, err)
	assert.Equal(t, 1, res.DraftsCreated)
	assert.Equal(t, campaigns.AudienceAll, b.created[0].Target)

	cs, _ := svc.ListCampaigns(context.Background())
	ds, _ := svc.ListDrafts(context.Background())
	assert.Len(t, cs, 1)
	assert.Len(t, ds, 1)
	assert.Equal(t, []string{"Campaign Rabies created (1 drafts)."}, notes.msgs)
}

func TestCreateCampaign_Validation(t *testing.T) {
	b := &fakeBackend{}
	svc, _ := newService(b)

	_, err := svc.CreateCampaign(context.Background(), "X", "msg", "Hamsters Only")
	assert.ErrorIs(t, err, campaigns.ErrInvalidInput)
	_, err = svc.CreateCampaign(context.Background(), "", "msg", campaigns.AudienceCats)
	assert.ErrorIs(t, err, campaigns.ErrInvalidInput)
	assert.Empty(t, b.created)
}

func TestCreateCampaign_Failure(t *testing.T) {
	svc, notes := newService(&fakeBackend{createErr: errors.New("boom")})

	_, err := svc.CreateCampaign(context.Background(), "X", "msg", campaigns.AudienceDogs)
	require.Error(t, err)
	assert.Equal(t, []string{"Failed to create campaign."}, notes.msgs)
}

func TestProcessDraft_UsesBufferedEditAndRefetches(t *testing.T) {
	b := &fakeBackend{drafts: []campaigns.Draft{{ID: "d1"}, {ID: "d2"}}}
	svc, _ := newService(b)
	svc.RefreshDrafts(context.Background())

	require.NoError(t, svc.EditDraft(context.Background(), "d1", "edited text"))
	require.NoError(t, svc.ProcessDraft(context.Background(), "d1", true, ""))

	assert.Equal(t, campaigns.Decision{DraftID: "d1", Approved: true, Message: "edited text"}, b.decisions[0])
	ds, _ := svc.ListDrafts(context.Background())
	assert.Equal(t, []campaigns.Draft{{ID: "d2"}}, ds)
	_, buffered := svc.EditedMessage("d1")
	assert.False(t, buffered)
}

func TestProcessDraft_ExplicitMessageWinsAndEmptyByDefault(t *testing.T) {
	b := &fakeBackend{drafts: []campaigns.Draft{{ID: "d1"}, {ID: "d2"}}}
	svc, _ := newService(b)
	svc.RefreshDrafts(context.Background())
	require.NoError(t, svc.EditDraft(context.Background(), "d1", "buffered"))

	require.NoError(t, svc.ProcessDraft(context.Background(), "d1", true, "explicit"))
	require.NoError(t, svc.ProcessDraft(context.Background(), "d2", false, ""))

	assert.Equal(t, "explicit", b.decisions[0].Message)
	assert.Equal(t, campaigns.Decision{DraftID: "d2", Approved: false, Message: ""}, b.decisions[1])
}

func TestProcessDraft_FailureStillRefetches(t *testing.T) {
	b := &fakeBackend{drafts: []campaigns.Draft{{ID: "d1"}}}
	svc, notes := newService(b)
	svc.RefreshDrafts(context.Background())
	before := b.listDrafts
	b.processErr = errors.New("boom")

	require.Error(t, svc.ProcessDraft(context.Background(), "d1", true, ""))
	assert.Equal(t, before+1, b.listDrafts)
	assert.Equal(t, []string{"Failed to process draft."}, notes.msgs)
	ds, _ := svc.ListDrafts(context.Background())
	assert.Len(t, ds, 1)
}

func TestEditDraft_UnknownDraft(t *testing.T) {
	svc, _ := newService(&fakeBackend{})
	assert.ErrorIs(t, svc.EditDraft(context.Background(), "nope", "x"), campaigns.ErrNotFound)
}

func TestGenerateAutoWishes_NotIdempotent(t *testing.T) {
	b := &fakeBackend{}
	svc, _ := newService(b)

	_, err := svc.GenerateAutoWishes(context.Background())
	require.NoError(t, err)
	_, err = svc.GenerateAutoWishes(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, b.wishes)
	ds, _ := svc.ListDrafts(context.Background())
	assert.Len(t, ds, 2)
}

func TestTemplates(t *testing.T) {
	ts := campaigns.Templates()
	require.Len(t, ts, 6)
	for _, tpl := range ts {
		assert.True(t, tpl.Target.Valid(), tpl.ID)
	}
	dhlpp, ok := campaigns.TemplateByID("dhlpp")
	require.True(t, ok)
	assert.Equal(t, campaigns.AudienceDogs, dhlpp.Target)
}
