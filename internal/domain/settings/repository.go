package settings

import "context"

type Repository interface {
	// Get devuelve ok=false si todavía no se cargó nada.
	Get(ctx context.Context) (Settings, bool, error)
	Set(ctx context.Context, s Settings) error
}
