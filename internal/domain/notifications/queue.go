package notifications

import (
	"errors"
	"strings"
	"sync"
	"time"

	"kizuna-dashboard/internal/platform/metrics"

	"github.com/google/uuid"
)

const DefaultTTL = 4 * time.Second

var ErrNotFound = errors.New("notification not found")

// Notification es un aviso efímero para la UI.
type Notification struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Queue es FIFO; cada item expira por su propio ExpiresAt, no por posición.
type Queue struct {
	mu    sync.Mutex
	items []Notification
	ttl   time.Duration
	now   func() time.Time
}

func NewQueue(ttl time.Duration) *Queue {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Queue{
		ttl: ttl,
		now: time.Now,
	}
}

// Push encola message y devuelve la notificación con su identidad.
func (q *Queue) Push(message string) Notification {
	now := q.now()
	n := Notification{
		ID:        uuid.NewString(),
		Message:   strings.TrimSpace(message),
		CreatedAt: now,
		ExpiresAt: now.Add(q.ttl),
	}

	q.mu.Lock()
	q.pruneLocked(now)
	q.items = append(q.items, n)
	q.mu.Unlock()

	metrics.NotificationPushed()
	return n
}

// Notify satisface la interfaz Notifier de los servicios de dominio.
func (q *Queue) Notify(message string) {
	q.Push(message)
}

// Active devuelve las notificaciones vigentes en orden de llegada.
func (q *Queue) Active() []Notification {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.pruneLocked(q.now())
	out := make([]Notification, len(q.items))
	copy(out, q.items)
	return out
}

// Dismiss quita una notificación por id antes de que expire.
func (q *Queue) Dismiss(id string) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	for i, n := range q.items {
		if n.ID == id {
			q.items = append(q.items[:i:i], q.items[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (q *Queue) pruneLocked(now time.Time) {
	kept := q.items[:0]
	for _, n := range q.items {
		if now.Before(n.ExpiresAt) {
			kept = append(kept, n)
		}
	}
	// limpiar la cola sobrante para no retener strings
	for i := len(kept); i < len(q.items); i++ {
		q.items[i] = Notification{}
	}
	q.items = kept
}
