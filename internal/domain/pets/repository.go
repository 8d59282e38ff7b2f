package pets

import "context"

type Repository interface {
	// ReplaceAll reemplaza la colección completa con el snapshot del backend.
	ReplaceAll(ctx context.Context, items []Pet) error
	List(ctx context.Context) ([]Pet, error)
	GetByID(ctx context.Context, id string) (Pet, error)
	DeleteByID(ctx context.Context, id string) error

	// Version cambia en cada mutación de la colección.
	Version() uint64
}
