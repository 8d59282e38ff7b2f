package cmd

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// executeCommand corre el comando con args y devuelve la salida capturada.
func executeCommand(root *cobra.Command, args ...string) (string, error) {
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

type fakeBackend struct {
	mu        sync.Mutex
	deleted   []string
	decisions []map[string]any
}

func (f *fakeBackend) snapshot() ([]string, []map[string]any) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.deleted...), append([]map[string]any(nil), f.decisions...)
}

func newFakeBackend(t *testing.T) *fakeBackend {
	t.Helper()
	f := &fakeBackend{}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/pets", func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode([]map[string]any{
			{"id": "p1", "name": "Bingo", "species": "Dog", "ownerName": "Samuel", "ownerPhone": "2348011111111", "status": "Overdue"},
		})
	})
	mux.HandleFunc("DELETE /api/pets/{id}", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.deleted = append(f.deleted, r.PathValue("id"))
		f.mu.Unlock()
		_, _ = w.Write([]byte(`{"success":true}`))
	})
	mux.HandleFunc("GET /api/agent/drafts", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[{"id":"d1","pet_id":"p1","type":"birthday","draft_message":"Feliz cumple, Bingo","status":"pending","pet_name":"Bingo","owner_name":"Samuel"}]`))
	})
	mux.HandleFunc("POST /api/agent/process-draft", func(w http.ResponseWriter, r *http.Request) {
		var d map[string]any
		_ = json.NewDecoder(r.Body).Decode(&d)
		f.mu.Lock()
		f.decisions = append(f.decisions, d)
		f.mu.Unlock()
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	ts := httptest.NewServer(mux)
	t.Cleanup(ts.Close)
	t.Setenv("KIZUNA_BACKEND_BASE_URL", ts.URL+"/api")
	t.Setenv("KIZUNA_LOG_LEVEL", "error")
	return f
}

func TestRootCommand_Subcommands(t *testing.T) {
	root := NewRootCommand()
	assert.Equal(t, "kizuna", root.Use)

	names := map[string]bool{}
	for _, c := range root.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"serve", "pets", "remind", "stats", "drafts"} {
		assert.True(t, names[want], "missing subcommand %s", want)
	}
}

func TestPetsList(t *testing.T) {
	newFakeBackend(t)

	out, err := executeCommand(NewRootCommand(), "pets", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Bingo")
	assert.Contains(t, out, "Overdue")
}

func TestPetsDelete_RequiresYes(t *testing.T) {
	f := newFakeBackend(t)

	out, err := executeCommand(NewRootCommand(), "pets", "delete", "p1")
	assert.ErrorIs(t, err, errAborted)
	assert.Contains(t, out, "--yes")
	deleted, _ := f.snapshot()
	assert.Empty(t, deleted)

	out, err = executeCommand(NewRootCommand(), "pets", "delete", "p1", "--yes")
	require.NoError(t, err)
	assert.Contains(t, out, "Patient record deleted.")
	deleted, _ = f.snapshot()
	assert.Equal(t, []string{"p1"}, deleted)
}

func TestDraftsApproveWithMessage(t *testing.T) {
	f := newFakeBackend(t)

	out, err := executeCommand(NewRootCommand(), "drafts", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Feliz cumple, Bingo")

	out, err = executeCommand(NewRootCommand(), "drafts", "approve", "d1", "-m", "Feliz cumple!")
	require.NoError(t, err)
	assert.Contains(t, out, "Draft d1 processed.")

	_, decisions := f.snapshot()
	require.Len(t, decisions, 1)
	assert.Equal(t, "d1", decisions[0]["draftId"])
	assert.Equal(t, true, decisions[0]["approved"])
	assert.Equal(t, "Feliz cumple!", decisions[0]["message"])
}

func TestRemind_BackendDown(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	url := ts.URL
	ts.Close()
	t.Setenv("KIZUNA_BACKEND_BASE_URL", url+"/api")

	_, err := executeCommand(NewRootCommand(), "remind", "p1")
	assert.Error(t, err)
}
