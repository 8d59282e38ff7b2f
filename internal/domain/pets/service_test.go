package pets_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"kizuna-dashboard/internal/adapters/storage/memory"
	"kizuna-dashboard/internal/domain/pets"
	"kizuna-dashboard/internal/platform/httpclient"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errUnreachable = errors.New("httpclient: do request: connection refused")

type fakeBackend struct {
	snapshot  []pets.Pet
	listErr   error
	created   []pets.NewPet
	createErr error
	deleted   []string
	deleteErr error
	imported  string
	importN   int
	importErr error
}

func (f *fakeBackend) ListPets(context.Context) ([]pets.Pet, error) {
	return f.snapshot, f.listErr
}

func (f *fakeBackend) CreatePet(_ context.Context, p pets.NewPet) (pets.Pet, error) {
	if f.createErr != nil {
		return pets.Pet{}, f.createErr
	}
	f.created = append(f.created, p)
	saved := pets.Pet{ID: "srv-1", Name: p.Name, OwnerName: p.OwnerName, OwnerPhone: p.OwnerPhone, Status: p.Status}
	f.snapshot = append(f.snapshot, saved)
	return saved, nil
}

func (f *fakeBackend) DeletePet(_ context.Context, id string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeBackend) ImportPets(_ context.Context, filename string, r io.Reader) (int, error) {
	if f.importErr != nil {
		return 0, f.importErr
	}
	b, _ := io.ReadAll(r)
	f.imported = filename + ":" + string(b)
	return f.importN, nil
}

type recorder struct{ msgs []string }

func (r *recorder) Notify(m string) { r.msgs = append(r.msgs, m) }

func newService(b *fakeBackend) (*pets.Service, pets.Repository, *recorder) {
	repo := memory.NewPetRepo()
	notes := &recorder{}
	return pets.NewService(repo, b, notes, nil), repo, notes
}

func TestRefresh_ReplacesSnapshot(t *testing.T) {
	b := &fakeBackend{snapshot: []pets.Pet{{ID: "p1"}, {ID: "p2"}}}
	svc, _, _ := newService(b)

	svc.Refresh(context.Background())
	items, _ := svc.List(context.Background())
	assert.Len(t, items, 2)

	b.snapshot = []pets.Pet{{ID: "p3"}}
	svc.Refresh(context.Background())
	items, _ = svc.List(context.Background())
	assert.Equal(t, []pets.Pet{{ID: "p3"}}, items)
}

func TestRefresh_FailureKeepsPriorSnapshotSilently(t *testing.T) {
	b := &fakeBackend{snapshot: []pets.Pet{{ID: "p1"}}}
	svc, _, notes := newService(b)
	svc.Refresh(context.Background())

	b.listErr = errUnreachable
	svc.Refresh(context.Background())

	items, _ := svc.List(context.Background())
	assert.Equal(t, []pets.Pet{{ID: "p1"}}, items)
	assert.Empty(t, notes.msgs)
	assert.ErrorIs(t, svc.RefreshStrict(context.Background()), errUnreachable)
}

func TestCreate_AppliesDefaultsAndRefetches(t *testing.T) {
	b := &fakeBackend{}
	svc, _, notes := newService(b)

	err := svc.Create(context.Background(), pets.CreateInput{Name: " Bingo ", OwnerName: "Samuel", OwnerPhone: "234801234"})
	require.NoError(t, err)

	require.Len(t, b.created, 1)
	assert.Equal(t, "Dog", b.created[0].Species)
	assert.Equal(t, "Male", b.created[0].Sex)
	assert.Equal(t, pets.StatusHealthy, b.created[0].Status)

	// el id viene del backend, no de un insert local
	p, err := svc.GetByID(context.Background(), "srv-1")
	require.NoError(t, err)
	assert.Equal(t, "Bingo", p.Name)
	assert.Equal(t, []string{"Bingo added!"}, notes.msgs)
}

func TestCreate_RequiredFields(t *testing.T) {
	b := &fakeBackend{}
	svc, _, _ := newService(b)

	err := svc.Create(context.Background(), pets.CreateInput{Name: "Bingo", OwnerName: "Samuel"})
	assert.ErrorIs(t, err, pets.ErrInvalidInput)
	assert.Empty(t, b.created)
}

func TestCreate_Failures(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want string
	}{
		{"detail", &httpclient.HTTPError{StatusCode: 422, Body: `{"detail":"Phone already registered"}`}, "Failed to add pet: Phone already registered"},
		{"no detail", &httpclient.HTTPError{StatusCode: 500}, "Failed to add pet: Server error"},
		{"connectivity", errUnreachable, "Failed to add pet."},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc, repo, notes := newService(&fakeBackend{createErr: tc.err})
			err := svc.Create(context.Background(), pets.CreateInput{Name: "Bingo", OwnerName: "Samuel", OwnerPhone: "234"})
			require.Error(t, err)
			assert.Equal(t, []string{tc.want}, notes.msgs)
			items, _ := repo.List(context.Background())
			assert.Empty(t, items)
		})
	}
}

func TestDelete_RequiresConfirmation(t *testing.T) {
	b := &fakeBackend{snapshot: []pets.Pet{{ID: "p1"}}}
	svc, _, notes := newService(b)
	svc.Refresh(context.Background())

	err := svc.Delete(context.Background(), "p1", false)
	assert.ErrorIs(t, err, pets.ErrConfirmationRequired)
	assert.Empty(t, b.deleted)
	assert.Empty(t, notes.msgs)
}

func TestDelete_RemovesLocallyWithoutRefetch(t *testing.T) {
	b := &fakeBackend{snapshot: []pets.Pet{{ID: "p1"}, {ID: "p2"}}}
	svc, _, notes := newService(b)
	svc.Refresh(context.Background())

	// si hubiera refetch, volvería p1
	require.NoError(t, svc.Delete(context.Background(), "p1", true))

	items, _ := svc.List(context.Background())
	assert.Equal(t, []pets.Pet{{ID: "p2"}}, items)
	assert.Equal(t, []string{"p1"}, b.deleted)
	assert.Equal(t, []string{"Patient record deleted."}, notes.msgs)
}

func TestDelete_FailureLeavesCollection(t *testing.T) {
	for _, tc := range []struct {
		err  error
		want string
	}{
		{&httpclient.HTTPError{StatusCode: 404}, "Failed to delete pet."},
		{errUnreachable, "Error deleting pet."},
	} {
		b := &fakeBackend{snapshot: []pets.Pet{{ID: "p1"}}}
		svc, _, notes := newService(b)
		svc.Refresh(context.Background())
		b.deleteErr = tc.err

		require.Error(t, svc.Delete(context.Background(), "p1", true))
		items, _ := svc.List(context.Background())
		assert.Len(t, items, 1)
		assert.Equal(t, []string{tc.want}, notes.msgs)
	}
}

func TestImport(t *testing.T) {
	b := &fakeBackend{importN: 2, snapshot: []pets.Pet{{ID: "a"}, {ID: "b"}}}
	svc, _, notes := newService(b)

	n, err := svc.Import(context.Background(), "patients.csv", strings.NewReader("name\nBingo\n"))
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, "patients.csv:name\nBingo\n", b.imported)
	items, _ := svc.List(context.Background())
	assert.Len(t, items, 2)
	assert.Equal(t, []string{"Imported 2 patients."}, notes.msgs)
}

func TestImport_RejectedSurfacesDetail(t *testing.T) {
	b := &fakeBackend{importErr: &httpclient.HTTPError{StatusCode: 500, Body: `{"detail":"Excel import failed: bad header"}`}}
	svc, _, notes := newService(b)

	_, err := svc.Import(context.Background(), "x.xlsx", strings.NewReader("x"))
	require.Error(t, err)
	assert.Equal(t, []string{"Import failed: Excel import failed: bad header"}, notes.msgs)
}
