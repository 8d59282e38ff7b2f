package stats

import (
	"context"
	"errors"
	"testing"
	"time"

	"kizuna-dashboard/internal/domain/pets"
	"kizuna-dashboard/internal/domain/reminders"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type versioned[T any] struct {
	items []T
	ver   uint64
	calls int
}

func (v *versioned[T]) List(context.Context) ([]T, error) {
	v.calls++
	return v.items, nil
}

func (v *versioned[T]) Version() uint64 { return v.ver }

type fakeInsights struct {
	summary string
	err     error
	calls   int
}

func (f *fakeInsights) Insights(context.Context, Stats) (string, error) {
	f.calls++
	return f.summary, f.err
}

type mapCache map[string]string

func (m mapCache) Get(_ context.Context, key string) (string, bool, error) {
	v, ok := m[key]
	return v, ok, nil
}

func (m mapCache) Set(_ context.Context, key, value string, _ time.Duration) error {
	m[key] = value
	return nil
}

func TestService_CurrentMemoizesByVersion(t *testing.T) {
	ps := &versioned[pets.Pet]{items: []pets.Pet{{ID: "p1"}}, ver: 1}
	rs := &versioned[reminders.Reminder]{ver: 1}
	svc := NewService(ps, rs, nil, nil, 0, nil)

	st, err := svc.Current(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, st.TotalPets)

	_, _ = svc.Current(context.Background())
	assert.Equal(t, 1, ps.calls)

	rs.items = []reminders.Reminder{{Status: reminders.StatusConverted}}
	rs.ver++
	st, err = svc.Current(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, ps.calls)
	assert.Equal(t, 100.0, st.ConversionRate)
}

func TestService_InsightCachesByFingerprint(t *testing.T) {
	ps := &versioned[pets.Pet]{ver: 1}
	rs := &versioned[reminders.Reminder]{ver: 1}
	backend := &fakeInsights{summary: "Great month."}
	svc := NewService(ps, rs, backend, mapCache{}, time.Minute, nil)

	assert.Equal(t, "Great month.", svc.Insight(context.Background()))
	assert.Equal(t, "Great month.", svc.Insight(context.Background()))
	assert.Equal(t, 1, backend.calls)
}

func TestService_InsightFallbacks(t *testing.T) {
	ps := &versioned[pets.Pet]{}
	rs := &versioned[reminders.Reminder]{}

	empty := NewService(ps, rs, &fakeInsights{summary: "  "}, nil, 0, nil)
	assert.Equal(t, InsightFallback, empty.Insight(context.Background()))

	failing := NewService(ps, rs, &fakeInsights{err: errors.New("timeout")}, mapCache{}, 0, nil)
	assert.Equal(t, InsightUnavailable, failing.Insight(context.Background()))
}
