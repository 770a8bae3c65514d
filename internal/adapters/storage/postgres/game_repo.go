package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"kennel-tycoon/internal/domain/game"
)

// GameRepo guarda cada partida como un snapshot JSON (jsonb) por slot.
type GameRepo struct {
	db  *sql.DB
	now func() time.Time
}

func NewGameRepo(db *sql.DB) *GameRepo {
	return &GameRepo{db: db, now: time.Now}
}

const schema = `
	CREATE TABLE IF NOT EXISTS game_snapshots (
		slot       TEXT PRIMARY KEY,
		state      JSONB NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)
`

// Migrate crea la tabla si no existe. Idempotente.
func (r *GameRepo) Migrate(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("migrate game_snapshots: %w", err)
	}
	return nil
}

func (r *GameRepo) Load(ctx context.Context, slot string) (game.State, error) {
	var raw []byte
	err := r.db.QueryRowContext(ctx, `
		SELECT state
		FROM game_snapshots
		WHERE slot = $1
	`, slot).Scan(&raw)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return game.State{}, game.ErrNoGame
		}
		return game.State{}, err
	}

	var st game.State
	if err := json.Unmarshal(raw, &st); err != nil {
		return game.State{}, fmt.Errorf("decode snapshot %q: %w", slot, err)
	}
	return st, nil
}

func (r *GameRepo) Save(ctx context.Context, slot string, st game.State) error {
	raw, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("encode snapshot %q: %w", slot, err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO game_snapshots (slot, state, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (slot) DO UPDATE
		SET state = EXCLUDED.state,
			updated_at = EXCLUDED.updated_at
	`, slot, string(raw), r.now().UTC())
	return err
}

func (r *GameRepo) Slots(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT slot
		FROM game_snapshots
		ORDER BY slot ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]string, 0)
	for rows.Next() {
		var slot string
		if err := rows.Scan(&slot); err != nil {
			return nil, err
		}
		out = append(out, slot)
	}
	return out, rows.Err()
}
