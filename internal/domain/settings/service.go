package settings

import (
	"context"
	"errors"
	"strings"

	"kizuna-dashboard/internal/platform/httpclient"
	"kizuna-dashboard/internal/platform/logger"
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

// Backend es la parte del gateway remoto que usa este módulo.
type Backend interface {
	GetSettings(ctx context.Context) (Settings, error)
	SaveSettings(ctx context.Context, s Settings) error
}

type Notifier interface {
	Notify(message string)
}

type Service struct {
	repo    Repository
	backend Backend
	notify  Notifier
	log     logger.Logger
}

func NewService(repo Repository, backend Backend, notify Notifier, log logger.Logger) *Service {
	if log == nil {
		log = logger.NewNop()
	}
	return &Service{
		repo:    repo,
		backend: backend,
		notify:  notify,
		log:     log.With(map[string]any{"module": "settings"}),
	}
}

// Refresh reemplaza la copia local con la del backend. Si falla, conserva la anterior.
func (s *Service) Refresh(ctx context.Context) {
	if err := s.RefreshStrict(ctx); err != nil {
		s.log.Warn("refresh settings failed", map[string]any{"err": err})
	}
}

func (s *Service) RefreshStrict(ctx context.Context) error {
	remote, err := s.backend.GetSettings(ctx)
	if err != nil {
		return err
	}
	return s.repo.Set(ctx, remote)
}

// Current devuelve la configuración con defaults aplicados.
func (s *Service) Current(ctx context.Context) Settings {
	cur, _, err := s.repo.Get(ctx)
	if err != nil {
		s.log.Warn("read settings failed", map[string]any{"err": err})
	}
	return cur.WithDefaults()
}

// Save sobrescribe la configuración completa en el backend y luego localmente.
func (s *Service) Save(ctx context.Context, in Settings) (Settings, error) {
	in.ClinicName = strings.TrimSpace(in.ClinicName)
	in.BookingURL = strings.TrimSpace(in.BookingURL)
	in.WhatsAppNumber = strings.TrimSpace(in.WhatsAppNumber)
	if in.AITone != "" && !in.AITone.Valid() {
		return Settings{}, ErrInvalidInput
	}

	if err := s.backend.SaveSettings(ctx, in); err != nil {
		if httpclient.IsConnectivity(err) {
			s.log.Error("save settings: backend unreachable", map[string]any{"err": err})
			s.emit("Error saving settings.")
		} else {
			s.log.Warn("save settings rejected", map[string]any{"err": err})
			s.emit("Failed to save settings.")
		}
		return Settings{}, err
	}

	if err := s.repo.Set(ctx, in); err != nil {
		return Settings{}, err
	}
	s.emit("Settings saved successfully!")
	return in.WithDefaults(), nil
}

func (s *Service) emit(msg string) {
	if s.notify != nil {
		s.notify.Notify(msg)
	}
}
