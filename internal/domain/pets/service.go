package pets

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"kizuna-dashboard/internal/platform/httpclient"
	"kizuna-dashboard/internal/platform/logger"
)

var (
	ErrInvalidInput         = errors.New("invalid input")
	ErrNotFound             = errors.New("pet not found")
	ErrConfirmationRequired = errors.New("delete requires explicit confirmation")
)

// Backend es la parte del gateway remoto que usa este módulo.
type Backend interface {
	ListPets(ctx context.Context) ([]Pet, error)
	CreatePet(ctx context.Context, p NewPet) (Pet, error)
	DeletePet(ctx context.Context, id string) error
	ImportPets(ctx context.Context, filename string, r io.Reader) (int, error)
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
		log:     log.With(map[string]any{"module": "pets"}),
	}
}

// Refresh reemplaza la colección con el snapshot del backend.
// Si falla se registra y se mantiene el snapshot anterior.
func (s *Service) Refresh(ctx context.Context) {
	if err := s.RefreshStrict(ctx); err != nil {
		s.log.Warn("refresh pets failed", map[string]any{"err": err})
	}
}

// RefreshStrict es Refresh pero devolviendo el error (CLI).
func (s *Service) RefreshStrict(ctx context.Context) error {
	items, err := s.backend.ListPets(ctx)
	if err != nil {
		return err
	}
	return s.repo.ReplaceAll(ctx, items)
}

type CreateInput struct {
	Name       string
	OwnerName  string
	OwnerPhone string
	Species    string
	Breed      string
	Sex        string
	Color      string
	Age        string
	Weight     string
	Status     Status

	LastVaccinationDate string
	NextVaccinationDate string
	LastDewormingDate   string
	LastCheckupDate     string
}

// Create da de alta la mascota en el backend y recarga la colección.
// Nunca inserta localmente: el id y demás campos canónicos los asigna el backend.
func (s *Service) Create(ctx context.Context, in CreateInput) error {
	name := strings.TrimSpace(in.Name)
	ownerName := strings.TrimSpace(in.OwnerName)
	ownerPhone := strings.TrimSpace(in.OwnerPhone)
	if name == "" || ownerName == "" || ownerPhone == "" {
		return ErrInvalidInput
	}
	if in.Status != "" && !in.Status.Valid() {
		return ErrInvalidInput
	}

	body := NewPet{
		Name:                name,
		OwnerName:           ownerName,
		OwnerPhone:          ownerPhone,
		Species:             orDefault(in.Species, DefaultSpecies),
		Breed:               strings.TrimSpace(in.Breed),
		Sex:                 orDefault(in.Sex, DefaultSex),
		Color:               strings.TrimSpace(in.Color),
		Age:                 strings.TrimSpace(in.Age),
		Weight:              strings.TrimSpace(in.Weight),
		Status:              Status(orDefault(string(in.Status), string(DefaultStatus))),
		LastVaccinationDate: strings.TrimSpace(in.LastVaccinationDate),
		NextVaccinationDate: strings.TrimSpace(in.NextVaccinationDate),
		LastDewormingDate:   strings.TrimSpace(in.LastDewormingDate),
		LastCheckupDate:     strings.TrimSpace(in.LastCheckupDate),
	}

	if _, err := s.backend.CreatePet(ctx, body); err != nil {
		if httpclient.IsConnectivity(err) {
			s.log.Error("create pet: backend unreachable", map[string]any{"err": err})
			s.emit("Failed to add pet.")
		} else {
			s.log.Warn("create pet rejected", map[string]any{"err": err})
			s.emit("Failed to add pet: " + detailOr(err, "Server error"))
		}
		return err
	}

	s.Refresh(ctx)
	s.emit(name + " added!")
	return nil
}

// Delete borra la mascota en el backend y, si responde OK, la quita localmente sin recargar.
func (s *Service) Delete(ctx context.Context, id string, confirmed bool) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidInput
	}
	if !confirmed {
		return ErrConfirmationRequired
	}

	if err := s.backend.DeletePet(ctx, id); err != nil {
		if httpclient.IsConnectivity(err) {
			s.log.Error("delete pet: backend unreachable", map[string]any{"pet_id": id, "err": err})
			s.emit("Error deleting pet.")
		} else {
			s.log.Warn("delete pet rejected", map[string]any{"pet_id": id, "err": err})
			s.emit("Failed to delete pet.")
		}
		return err
	}

	if err := s.repo.DeleteByID(ctx, id); err != nil && !errors.Is(err, ErrNotFound) {
		return err
	}
	s.emit("Patient record deleted.")
	return nil
}

// Import sube una planilla al backend y recarga la colección.
func (s *Service) Import(ctx context.Context, filename string, r io.Reader) (int, error) {
	if strings.TrimSpace(filename) == "" || r == nil {
		return 0, ErrInvalidInput
	}

	n, err := s.backend.ImportPets(ctx, filename, r)
	if err != nil {
		if httpclient.IsConnectivity(err) {
			s.log.Error("import pets: backend unreachable", map[string]any{"file": filename, "err": err})
			s.emit("Error uploading file.")
		} else {
			s.log.Warn("import pets rejected", map[string]any{"file": filename, "err": err})
			s.emit("Import failed: " + detailOr(err, "Server error"))
		}
		return 0, err
	}

	s.Refresh(ctx)
	s.emit(fmt.Sprintf("Imported %d patients.", n))
	return n, nil
}

func (s *Service) List(ctx context.Context) ([]Pet, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id string) (Pet, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Pet{}, ErrInvalidInput
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Version() uint64 {
	return s.repo.Version()
}

func (s *Service) emit(msg string) {
	if s.notify != nil {
		s.notify.Notify(msg)
	}
}

func orDefault(v, def string) string {
	if v = strings.TrimSpace(v); v != "" {
		return v
	}
	return def
}

func detailOr(err error, fallback string) string {
	if d := httpclient.DetailOf(err); d != "" {
		return d
	}
	return fallback
}
