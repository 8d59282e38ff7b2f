package settings_test

import (
	"context"
	"errors"
	"testing"

	"kizuna-dashboard/internal/adapters/storage/memory"
	"kizuna-dashboard/internal/domain/settings"
	"kizuna-dashboard/internal/platform/httpclient"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBackend struct {
	remote  settings.Settings
	getErr  error
	saved   []settings.Settings
	saveErr error
}

func (f *fakeBackend) GetSettings(context.Context) (settings.Settings, error) {
	return f.remote, f.getErr
}

func (f *fakeBackend) SaveSettings(_ context.Context, s settings.Settings) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saved = append(f.saved, s)
	return nil
}

type recorder struct{ msgs []string }

func (r *recorder) Notify(m string) { r.msgs = append(r.msgs, m) }

func TestWithDefaults(t *testing.T) {
	got := settings.Settings{}.WithDefaults()
	assert.Equal(t, "Kizuna Vet Center", got.ClinicName)
	assert.Equal(t, "https://book.vet/kizuna", got.BookingURL)
	assert.Equal(t, "2348000000000", got.WhatsAppNumber)
	assert.Equal(t, settings.ToneFriendly, got.AITone)

	custom := settings.Settings{ClinicName: "Happy Paws", AITone: settings.ToneUrgent}.WithDefaults()
	assert.Equal(t, "Happy Paws", custom.ClinicName)
	assert.Equal(t, settings.ToneUrgent, custom.AITone)
}

func TestRefresh_SilentOnFailure(t *testing.T) {
	b := &fakeBackend{remote: settings.Settings{ClinicName: "Happy Paws"}}
	notes := &recorder{}
	svc := settings.NewService(memory.NewSettingsRepo(), b, notes, nil)

	svc.Refresh(context.Background())
	assert.Equal(t, "Happy Paws", svc.Current(context.Background()).ClinicName)

	b.getErr = errors.New("connection refused")
	svc.Refresh(context.Background())
	assert.Equal(t, "Happy Paws", svc.Current(context.Background()).ClinicName)
	assert.Empty(t, notes.msgs)
}

func TestSave_OverwritesWholeObject(t *testing.T) {
	b := &fakeBackend{}
	notes := &recorder{}
	svc := settings.NewService(memory.NewSettingsRepo(), b, notes, nil)

	_, err := svc.Save(context.Background(), settings.Settings{ClinicName: "A", KapsoAPIKey: "k1"})
	require.NoError(t, err)
	_, err = svc.Save(context.Background(), settings.Settings{ClinicName: "B"})
	require.NoError(t, err)

	cur := svc.Current(context.Background())
	assert.Equal(t, "B", cur.ClinicName)
	assert.Empty(t, cur.KapsoAPIKey)
	assert.Equal(t, []string{"Settings saved successfully!", "Settings saved successfully!"}, notes.msgs)
}

func TestSave_InvalidTone(t *testing.T) {
	b := &fakeBackend{}
	svc := settings.NewService(memory.NewSettingsRepo(), b, nil, nil)

	_, err := svc.Save(context.Background(), settings.Settings{AITone: "sarcastic"})
	assert.ErrorIs(t, err, settings.ErrInvalidInput)
	assert.Empty(t, b.saved)
}

func TestSave_Failures(t *testing.T) {
	for _, tc := range []struct {
		err  error
		want string
	}{
		{&httpclient.HTTPError{StatusCode: 500}, "Failed to save settings."},
		{errors.New("dial tcp: timeout"), "Error saving settings."},
	} {
		notes := &recorder{}
		svc := settings.NewService(memory.NewSettingsRepo(), &fakeBackend{saveErr: tc.err}, notes, nil)

		_, err := svc.Save(context.Background(), settings.Settings{ClinicName: "X"})
		require.Error(t, err)
		assert.Equal(t, []string{tc.want}, notes.msgs)
		assert.Equal(t, settings.DefaultClinicName, svc.Current(context.Background()).ClinicName)
	}
}
