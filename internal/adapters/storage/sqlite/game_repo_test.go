package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"kennel-tycoon/internal/domain/game"
	"kennel-tycoon/internal/domain/show"
	"kennel-tycoon/internal/platform/rng"
)

func openTemp(t *testing.T) (*GameRepo, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "kennel.db")
	repo, err := Open(context.Background(), path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = repo.Close() })
	return repo, path
}

func TestGameRepo_RoundTrip(t *testing.T) {
	repo, _ := openTemp(t)
	ctx := context.Background()

	src, _ := rng.New(11)
	st := game.NewState(src)
	st.Show = &show.Session{DogID: st.Dogs[0].ID, Beauty: 60, StartedAt: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)}

	if err := repo.Save(ctx, "a", st); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := repo.Load(ctx, "a")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Money != st.Money || got.Day != st.Day || len(got.Market) != len(st.Market) {
		t.Fatalf("snapshot mismatch: %+v", got)
	}
	if got.Dogs[1].ID != st.Dogs[1].ID || got.Dogs[1].Conformation != st.Dogs[1].Conformation {
		t.Fatalf("dog mismatch")
	}
	if got.Show == nil || !got.Show.StartedAt.Equal(st.Show.StartedAt) {
		t.Fatalf("show session not persisted: %+v", got.Show)
	}

	// upsert
	st.Money = 1
	if err := repo.Save(ctx, "a", st); err != nil {
		t.Fatalf("save again: %v", err)
	}
	got, _ = repo.Load(ctx, "a")
	if got.Money != 1 {
		t.Fatalf("expected overwrite, money=%d", got.Money)
	}
}

func TestGameRepo_MissingAndSlots(t *testing.T) {
	repo, _ := openTemp(t)
	ctx := context.Background()

	if _, err := repo.Load(ctx, "none"); !errors.Is(err, game.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	_ = repo.Save(ctx, "z", game.State{})
	_ = repo.Save(ctx, "b", game.State{})
	slots, err := repo.Slots(ctx)
	if err != nil {
		t.Fatalf("slots: %v", err)
	}
	if len(slots) != 2 || slots[0] != "b" || slots[1] != "z" {
		t.Fatalf("unexpected slots: %v", slots)
	}
}

func TestOpen_MigrationsAreIdempotent(t *testing.T) {
	repo, path := openTemp(t)
	_ = repo.Save(context.Background(), "keep", game.State{Day: 9})
	_ = repo.Close()

	again, err := Open(context.Background(), path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer again.Close()

	st, err := again.Load(context.Background(), "keep")
	if err != nil || st.Day != 9 {
		t.Fatalf("expected data to survive reopen, got %+v (%v)", st, err)
	}
}

func TestUpSection(t *testing.T) {
	in := "-- +migrate Up\nCREATE TABLE x (a INT);\n-- +migrate Down\nDROP TABLE x;\n"
	got := upSection(in)
	if got != "\nCREATE TABLE x (a INT);\n" {
		t.Fatalf("unexpected up section: %q", got)
	}
	if upSection("SELECT 1;") != "SELECT 1;" {
		t.Fatalf("plain file should run whole")
	}
}
