package reminders

import "context"

type Repository interface {
	// Prepend agrega al frente: List devuelve siempre lo más reciente primero.
	Prepend(ctx context.Context, r Reminder) error
	List(ctx context.Context) ([]Reminder, error)
	ListByPet(ctx context.Context, petID string) ([]Reminder, error)
	Version() uint64
}
