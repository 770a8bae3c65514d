package game

import "context"

// Repository guarda un snapshot completo del estado por slot de partida.
type Repository interface {
	Load(ctx context.Context, slot string) (State, error)
	Save(ctx context.Context, slot string, st State) error
	Slots(ctx context.Context) ([]string, error)
}
