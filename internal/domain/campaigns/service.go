package campaigns

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"kizuna-dashboard/internal/platform/logger"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("draft not found")
)

// Backend es la parte del gateway remoto que usa este módulo.
type Backend interface {
	ListCampaigns(ctx context.Context) ([]Campaign, error)
	CreateCampaign(ctx context.Context, req CreateRequest) (CreateResult, error)
	ListDrafts(ctx context.Context) ([]Draft, error)
	ProcessDraft(ctx context.Context, d Decision) error
	GenerateAutoWishes(ctx context.Context) (int, error)
}

type Notifier interface {
	Notify(message string)
}

// Service lleva campañas y el flujo de aprobación de borradores.
type Service struct {
	campaigns CampaignRepository
	drafts    DraftRepository
	backend   Backend
	notify    Notifier
	log       logger.Logger

	// ediciones locales por draft id, pendientes de aprobar/rechazar
	mu    sync.Mutex
	edits map[string]string
}

func NewService(campaignRepo CampaignRepository, draftRepo DraftRepository, backend Backend, notify Notifier, log logger.Logger) *Service {
	if log == nil {
		log = logger.NewNop()
	}
	return &Service{
		campaigns: campaignRepo,
		drafts:    draftRepo,
		backend:   backend,
		notify:    notify,
		log:       log.With(map[string]any{"module": "campaigns"}),
		edits:     make(map[string]string),
	}
}

func (s *Service) RefreshCampaigns(ctx context.Context) {
	items, err := s.backend.ListCampaigns(ctx)
	if err != nil {
		s.log.Warn("refresh campaigns failed", map[string]any{"err": err})
		return
	}
	if err := s.campaigns.ReplaceAll(ctx, items); err != nil {
		s.log.Error("store campaigns failed", map[string]any{"err": err})
	}
}

func (s *Service) RefreshDrafts(ctx context.Context) {
	if err := s.RefreshDraftsStrict(ctx); err != nil {
		s.log.Warn("refresh drafts failed", map[string]any{"err": err})
	}
}

// RefreshDraftsStrict devuelve el error en vez de degradar en silencio (CLI).
func (s *Service) RefreshDraftsStrict(ctx context.Context) error {
	items, err := s.backend.ListDrafts(ctx)
	if err != nil {
		return err
	}
	if err := s.drafts.ReplaceAll(ctx, items); err != nil {
		return err
	}
	s.pruneEdits(items)
	return nil
}

func (s *Service) ListCampaigns(ctx context.Context) ([]Campaign, error) {
	return s.campaigns.List(ctx)
}

func (s *Service) ListDrafts(ctx context.Context) ([]Draft, error) {
	return s.drafts.List(ctx)
}

// CreateCampaign crea la campaña; el backend genera un borrador por paciente del segmento.
func (s *Service) CreateCampaign(ctx context.Context, name, message string, target Audience) (CreateResult, error) {
	name = strings.TrimSpace(name)
	message = strings.TrimSpace(message)
	if name == "" || message == "" {
		return CreateResult{}, ErrInvalidInput
	}
	if target == "" {
		target = AudienceAll
	}
	if !target.Valid() {
		return CreateResult{}, ErrInvalidInput
	}

	res, err := s.backend.CreateCampaign(ctx, CreateRequest{Name: name, Message: message, Target: target})
	if err != nil {
		s.log.Error("create campaign failed", map[string]any{"name": name, "err": err})
		s.emit("Failed to create campaign.")
		return CreateResult{}, err
	}

	s.RefreshCampaigns(ctx)
	s.RefreshDrafts(ctx)
	s.emit(fmt.Sprintf("Campaign %s created (%d drafts).", name, res.DraftsCreated))
	return res, nil
}

// EditDraft guarda localmente el texto editado de un borrador.
func (s *Service) EditDraft(ctx context.Context, id, message string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidInput
	}
	if _, err := s.drafts.GetByID(ctx, id); err != nil {
		return err
	}

	s.mu.Lock()
	s.edits[id] = message
	s.mu.Unlock()
	return nil
}

// EditedMessage devuelve la edición pendiente de un borrador, si la hay.
func (s *Service) EditedMessage(id string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.edits[id]
	return m, ok
}

// ProcessDraft aprueba o rechaza un borrador. El texto enviado es editedMessage,
// si no la edición guardada, si no "" (el backend usa el original).
// Siempre recarga los borradores al terminar; no hay remoción optimista.
func (s *Service) ProcessDraft(ctx context.Context, id string, approved bool, editedMessage string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidInput
	}

	msg := strings.TrimSpace(editedMessage)
	if msg == "" {
		if buffered, ok := s.EditedMessage(id); ok {
			msg = strings.TrimSpace(buffered)
		}
	}

	err := s.backend.ProcessDraft(ctx, Decision{DraftID: id, Approved: approved, Message: msg})
	if err != nil {
		s.log.Error("process draft failed", map[string]any{"draft_id": id, "approved": approved, "err": err})
		s.emit("Failed to process draft.")
	} else {
		s.mu.Lock()
		delete(s.edits, id)
		s.mu.Unlock()
	}

	s.RefreshDrafts(ctx)
	return err
}

// GenerateAutoWishes dispara el escaneo de celebraciones en el backend y recarga borradores.
// Llamarlo dos veces puede generar borradores duplicados.
func (s *Service) GenerateAutoWishes(ctx context.Context) (int, error) {
	n, err := s.backend.GenerateAutoWishes(ctx)
	if err != nil {
		s.log.Error("generate auto wishes failed", map[string]any{"err": err})
		s.emit("Failed to generate wishes.")
		return 0, err
	}
	s.RefreshDrafts(ctx)
	return n, nil
}

// pruneEdits descarta ediciones de borradores que ya no existen.
func (s *Service) pruneEdits(current []Draft) {
	alive := make(map[string]struct{}, len(current))
	for _, d := range current {
		alive[d.ID] = struct{}{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for id := range s.edits {
		if _, ok := alive[id]; !ok {
			delete(s.edits, id)
		}
	}
}

func (s *Service) emit(msg string) {
	if s.notify != nil {
		s.notify.Notify(msg)
	}
}
