// Package sqlite guarda los snapshots de partida en un archivo SQLite local (driver puro Go).
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"kennel-tycoon/internal/adapters/storage/sqlite/migrations"
	"kennel-tycoon/internal/domain/game"

	_ "modernc.org/sqlite"
)

type GameRepo struct {
	db  *sql.DB
	now func() time.Time
}

// Open abre (o crea) la base y aplica las migraciones embebidas.
func Open(ctx context.Context, path string) (*GameRepo, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("sqlite path is required")
	}
	dsn := filepath.Clean(path) + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	// un solo escritor
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := applyMigrations(ctx, db, migrations.FS); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &GameRepo{db: db, now: time.Now}, nil
}

func (r *GameRepo) Close() error {
	if r == nil || r.db == nil {
		return nil
	}
	return r.db.Close()
}

func (r *GameRepo) Load(ctx context.Context, slot string) (game.State, error) {
	var raw string
	err := r.db.QueryRowContext(ctx, `SELECT state FROM game_snapshots WHERE slot = ?`, slot).Scan(&raw)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return game.State{}, game.ErrNoGame
		}
		return game.State{}, err
	}

	var st game.State
	if err := json.Unmarshal([]byte(raw), &st); err != nil {
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
		VALUES (?, ?, ?)
		ON CONFLICT(slot) DO UPDATE SET
			state = excluded.state,
			updated_at = excluded.updated_at
	`, slot, string(raw), r.now().UTC().UnixMilli())
	return err
}

func (r *GameRepo) Slots(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT slot FROM game_snapshots ORDER BY slot`)
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
