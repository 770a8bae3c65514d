package memory

import (
	"context"
	"sort"
	"sync"

	"kennel-tycoon/internal/domain/game"
)

// gameRepo guarda copias profundas: nadie fuera del repo comparte slices con lo guardado.
type gameRepo struct {
	mu     sync.RWMutex
	bySlot map[string]game.State
}

func NewGameRepo() game.Repository {
	return &gameRepo{
		bySlot: make(map[string]game.State),
	}
}

func (r *gameRepo) Load(ctx context.Context, slot string) (game.State, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	st, ok := r.bySlot[slot]
	if !ok {
		return game.State{}, game.ErrNoGame
	}
	return st.Clone(), nil
}

func (r *gameRepo) Save(ctx context.Context, slot string, st game.State) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.bySlot[slot] = st.Clone()
	return nil
}

func (r *gameRepo) Slots(ctx context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, 0, len(r.bySlot))
	for slot := range r.bySlot {
		out = append(out, slot)
	}
	sort.Strings(out)
	return out, nil
}
