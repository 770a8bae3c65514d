package game

import (
	"errors"
	"fmt"

	"kennel-tycoon/internal/domain/genetics"
	"kennel-tycoon/internal/domain/show"
)

// Condiciones recuperables que la capa de presentación muestra al jugador.
// Ninguna deja el estado a medio mutar.
var (
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrNotFound          = errors.New("not found")
	ErrInvalidInput      = errors.New("invalid input")
	ErrNoShow            = errors.New("no show in progress")

	ErrInvalidPairing    = genetics.ErrInvalidPairing
	ErrNotMature         = show.ErrNotMature
	ErrAttemptsExhausted = show.ErrAttemptsExhausted

	// ErrNoGame lo devuelven los repos cuando el slot no existe.
	ErrNoGame = fmt.Errorf("game %w", ErrNotFound)
)

func insufficient(need, have int) error {
	return fmt.Errorf("%w: need %d, have %d", ErrInsufficientFunds, need, have)
}

func dogNotFound(id string) error {
	return fmt.Errorf("dog %q %w", id, ErrNotFound)
}
