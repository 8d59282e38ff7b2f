package stats

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"kizuna-dashboard/internal/domain/pets"
	"kizuna-dashboard/internal/domain/reminders"
	"kizuna-dashboard/internal/platform/logger"
)

const (
	InsightFallback    = "Keep up the good work! Increasing your reminders could lead to even more bookings."
	InsightUnavailable = "AI Insights temporarily unavailable."

	DefaultInsightTTL = 10 * time.Minute
)

type PetSource interface {
	List(ctx context.Context) ([]pets.Pet, error)
	Version() uint64
}

type ReminderSource interface {
	List(ctx context.Context) ([]reminders.Reminder, error)
	Version() uint64
}

// InsightBackend pide al backend un resumen en lenguaje natural.
type InsightBackend interface {
	Insights(ctx context.Context, s Stats) (string, error)
}

// InsightCache guarda resúmenes por huella de estadísticas.
type InsightCache interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
}

type Service struct {
	pets      PetSource
	reminders ReminderSource
	backend   InsightBackend
	cache     InsightCache
	ttl       time.Duration
	log       logger.Logger

	mu           sync.Mutex
	petsVer      uint64
	remindersVer uint64
	cached       *Stats
}

func NewService(petSrc PetSource, reminderSrc ReminderSource, backend InsightBackend, cache InsightCache, ttl time.Duration, log logger.Logger) *Service {
	if log == nil {
		log = logger.NewNop()
	}
	if ttl <= 0 {
		ttl = DefaultInsightTTL
	}
	return &Service{
		pets:      petSrc,
		reminders: reminderSrc,
		backend:   backend,
		cache:     cache,
		ttl:       ttl,
		log:       log.With(map[string]any{"module": "stats"}),
	}
}

// Current recalcula solo si cambió la versión de pets o de reminders.
func (s *Service) Current(ctx context.Context) (Stats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pv, rv := s.pets.Version(), s.reminders.Version()
	if s.cached != nil && pv == s.petsVer && rv == s.remindersVer {
		return *s.cached, nil
	}

	ps, err := s.pets.List(ctx)
	if err != nil {
		return Stats{}, err
	}
	rs, err := s.reminders.List(ctx)
	if err != nil {
		return Stats{}, err
	}

	st := Compute(ps, rs)
	s.cached = &st
	s.petsVer, s.remindersVer = pv, rv
	return st, nil
}

// Insight nunca falla: ante error devuelve InsightUnavailable.
func (s *Service) Insight(ctx context.Context) string {
	st, err := s.Current(ctx)
	if err != nil {
		s.log.Error("compute stats failed", map[string]any{"err": err})
		return InsightUnavailable
	}

	key := fingerprint(st)
	if s.cache != nil {
		if v, ok, err := s.cache.Get(ctx, key); err != nil {
			s.log.Warn("insight cache get failed", map[string]any{"key": key, "err": err})
		} else if ok {
			return v
		}
	}

	if s.backend == nil {
		return InsightUnavailable
	}
	summary, err := s.backend.Insights(ctx, st)
	if err != nil {
		s.log.Warn("insights request failed", map[string]any{"err": err})
		return InsightUnavailable
	}
	summary = strings.TrimSpace(summary)
	if summary == "" {
		summary = InsightFallback
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, summary, s.ttl); err != nil {
			s.log.Warn("insight cache set failed", map[string]any{"key": key, "err": err})
		}
	}
	return summary
}

func fingerprint(st Stats) string {
	return fmt.Sprintf("insight:%d:%d:%d:%s", st.TotalPets, st.RemindersSent, st.Converted, st.EstimatedRevenue.String())
}
