package reminders

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"kizuna-dashboard/internal/domain/pets"
	"kizuna-dashboard/internal/domain/settings"
	"kizuna-dashboard/internal/platform/httpclient"
	"kizuna-dashboard/internal/platform/logger"
	"kizuna-dashboard/internal/platform/metrics"

	"github.com/oklog/ulid/v2"
)

var (
	ErrInvalidInput   = errors.New("invalid input")
	ErrAlreadySending = errors.New("a reminder for this pet is already in flight")
	ErrEmptyMessage   = errors.New("generated message is empty")
)

const (
	stageGenerate = "generate"
	stageSend     = "send"

	publishTimeout = 5 * time.Second
)

// Backend es la parte del gateway remoto que usa el envío de recordatorios.
type Backend interface {
	GenerateReminder(ctx context.Context, req GenerateRequest) (string, error)
	SendReminder(ctx context.Context, req SendRequest) error
}

// EventPublisher recibe los recordatorios confirmados. Es best-effort.
type EventPublisher interface {
	PublishReminderSent(ctx context.Context, r Reminder) error
}

type PetSource interface {
	GetByID(ctx context.Context, id string) (pets.Pet, error)
}

type SettingsSource interface {
	Current(ctx context.Context) settings.Settings
}

type Notifier interface {
	Notify(message string)
}

type Service struct {
	repo     Repository
	backend  Backend
	pets     PetSource
	settings SettingsSource
	notify   Notifier
	log      logger.Logger

	publisher   EventPublisher
	sendTimeout time.Duration

	now   func() time.Time
	newID func() string

	mu       sync.Mutex
	inflight map[string]struct{}
}

func NewService(
	repo Repository,
	backend Backend,
	petSrc PetSource,
	settingsSrc SettingsSource,
	notify Notifier,
	log logger.Logger,
) *Service {
	if log == nil {
		log = logger.NewNop()
	}
	return &Service{
		repo:     repo,
		backend:  backend,
		pets:     petSrc,
		settings: settingsSrc,
		notify:   notify,
		log:      log.With(map[string]any{"module": "reminders"}),
		now:      time.Now,
		newID:    func() string { return "r" + ulid.Make().String() },
		inflight: make(map[string]struct{}),
	}
}

// WithPublisher activa la publicación de reminder.sent. nil la desactiva.
func (s *Service) WithPublisher(p EventPublisher) *Service {
	s.publisher = p
	return s
}

// WithSendTimeout acota la duración total de generate+send.
func (s *Service) WithSendTimeout(d time.Duration) *Service {
	s.sendTimeout = d
	return s
}

// SendByID busca la mascota en el store y ejecuta Send.
func (s *Service) SendByID(ctx context.Context, petID string) (Reminder, error) {
	petID = strings.TrimSpace(petID)
	if petID == "" {
		return Reminder{}, ErrInvalidInput
	}
	p, err := s.pets.GetByID(ctx, petID)
	if err != nil {
		return Reminder{}, err
	}
	return s.Send(ctx, p)
}

// Send genera el mensaje con IA y, solo si hay mensaje, lo despacha al dueño.
// El Reminder se crea únicamente si ambos pasos terminaron bien, en ese orden.
func (s *Service) Send(ctx context.Context, pet pets.Pet) (Reminder, error) {
	if strings.TrimSpace(pet.ID) == "" || strings.TrimSpace(pet.OwnerPhone) == "" {
		return Reminder{}, ErrInvalidInput
	}

	if !s.acquire(pet.ID) {
		return Reminder{}, ErrAlreadySending
	}
	defer s.release(pet.ID)

	if s.sendTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.sendTimeout)
		defer cancel()
	}

	cfg := s.settings.Current(ctx)
	typ := Classify(pet.Status)

	msg, err := s.backend.GenerateReminder(ctx, GenerateRequest{
		PetName:    pet.Name,
		OwnerName:  pet.OwnerName,
		ClinicName: cfg.ClinicName,
		Type:       typ,
		BookingURL: cfg.BookingURL,
		Tone:       string(cfg.AITone),
	})
	if err != nil {
		return Reminder{}, s.fail(stageGenerate, pet, err, "Error generating reminder")
	}
	if strings.TrimSpace(msg) == "" {
		metrics.ReminderFailed(stageGenerate, "empty")
		s.log.Warn("reminder: empty message from generator", map[string]any{"pet_id": pet.ID})
		s.emit("Failed: AI returned an empty message")
		return Reminder{}, ErrEmptyMessage
	}

	if err := s.backend.SendReminder(ctx, SendRequest{
		To:      pet.OwnerPhone,
		Message: msg,
		PetID:   pet.ID,
	}); err != nil {
		return Reminder{}, s.fail(stageSend, pet, err, "Error sending reminder")
	}

	r := Reminder{
		ID:      s.newID(),
		PetID:   pet.ID,
		PetName: pet.Name,
		Message: msg,
		SentAt:  s.now().UTC(),
		Status:  StatusSent,
		Type:    typ,
	}
	if err := s.repo.Prepend(ctx, r); err != nil {
		s.log.Error("reminder sent but not recorded", map[string]any{"pet_id": pet.ID, "reminder_id": r.ID, "err": err})
		return Reminder{}, err
	}

	metrics.ReminderSent()
	s.log.Info("reminder sent", map[string]any{"pet_id": pet.ID, "reminder_id": r.ID, "type": string(typ)})
	s.emit("Reminder sent to " + pet.Name + "'s owner!")
	s.publish(ctx, r)
	return r, nil
}

// Busy es la vista global para deshabilitar controles: hay algún envío en curso.
func (s *Service) Busy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.inflight) > 0
}

// Sending indica si hay un envío en curso para petID.
func (s *Service) Sending(petID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.inflight[petID]
	return ok
}

// InFlight devuelve los ids de mascota con envío en curso, ordenados.
func (s *Service) InFlight() []string {
	s.mu.Lock()
	out := make([]string, 0, len(s.inflight))
	for id := range s.inflight {
		out = append(out, id)
	}
	s.mu.Unlock()

	sort.Strings(out)
	return out
}

func (s *Service) List(ctx context.Context) ([]Reminder, error) {
	return s.repo.List(ctx)
}

func (s *Service) ListByPet(ctx context.Context, petID string) ([]Reminder, error) {
	petID = strings.TrimSpace(petID)
	if petID == "" {
		return nil, ErrInvalidInput
	}
	return s.repo.ListByPet(ctx, petID)
}

func (s *Service) Version() uint64 {
	return s.repo.Version()
}

func (s *Service) acquire(petID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, busy := s.inflight[petID]; busy {
		return false
	}
	s.inflight[petID] = struct{}{}
	return true
}

func (s *Service) release(petID string) {
	s.mu.Lock()
	delete(s.inflight, petID)
	s.mu.Unlock()
}

func (s *Service) fail(stage string, pet pets.Pet, err error, fallback string) error {
	fields := map[string]any{"stage": stage, "pet_id": pet.ID, "err": err}
	if httpclient.IsConnectivity(err) {
		metrics.ReminderFailed(stage, "connectivity")
		s.log.Error("reminder: backend unreachable", fields)
		s.emit("Error connecting to reminder service.")
		return err
	}

	metrics.ReminderFailed(stage, "rejected")
	s.log.Warn("reminder rejected", fields)
	detail := httpclient.DetailOf(err)
	if detail == "" {
		detail = fallback
	}
	s.emit("Failed: " + detail)
	return err
}

func (s *Service) publish(ctx context.Context, r Reminder) {
	if s.publisher == nil {
		return
	}
	pctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()
	if err := s.publisher.PublishReminderSent(pctx, r); err != nil {
		s.log.Warn("publish reminder.sent failed", map[string]any{"reminder_id": r.ID, "err": err})
	}
}

func (s *Service) emit(msg string) {
	if s.notify != nil {
		s.notify.Notify(msg)
	}
}
