package notifications

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestQueue() (*Queue, *fakeClock) {
	clock := &fakeClock{t: time.Date(2025, 11, 1, 10, 0, 0, 0, time.UTC)}
	q := NewQueue(4 * time.Second)
	q.now = clock.now
	return q, clock
}

func messages(items []Notification) []string {
	out := make([]string, 0, len(items))
	for _, n := range items {
		out = append(out, n.Message)
	}
	return out
}

func TestQueue_FIFO(t *testing.T) {
	q, _ := newTestQueue()
	q.Push("A")
	q.Push("B")
	q.Push("C")

	assert.Equal(t, []string{"A", "B", "C"}, messages(q.Active()))
}

func TestQueue_EachItemExpiresByItsOwnLifetime(t *testing.T) {
	q, clock := newTestQueue()

	q.Push("A")
	clock.advance(2 * time.Second)
	q.Push("B")

	clock.advance(2*time.Second - time.Millisecond)
	assert.Equal(t, []string{"A", "B"}, messages(q.Active()))

	// A cumple 4s; B sigue vigente aunque esté detrás en la cola.
	clock.advance(time.Millisecond)
	assert.Equal(t, []string{"B"}, messages(q.Active()))

	clock.advance(2 * time.Second)
	assert.Empty(t, q.Active())
}

func TestQueue_DismissByIdentity(t *testing.T) {
	q, _ := newTestQueue()
	a := q.Push("A")
	b := q.Push("B")

	require.NoError(t, q.Dismiss(b.ID))
	active := q.Active()
	require.Len(t, active, 1)
	assert.Equal(t, a.ID, active[0].ID)

	assert.ErrorIs(t, q.Dismiss(b.ID), ErrNotFound)
}

func TestQueue_DefaultTTL(t *testing.T) {
	q := NewQueue(0)
	n := q.Push("hola")
	assert.Equal(t, DefaultTTL, n.ExpiresAt.Sub(n.CreatedAt))
	assert.NotEmpty(t, n.ID)
}
