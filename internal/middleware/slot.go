package middleware

import (
	"context"
	"net/http"
	"strings"
)

type ctxKey string

const slotKey ctxKey = "slot"

// SlotHeader selecciona la partida guardada.
const SlotHeader = "X-Save-Slot"

const maxSlotLen = 64

// SaveSlot:
// - Si viene X-Save-Slot válido => lo pone en el contexto.
// - Si no viene => usa defaultSlot.
// - Si viene inválido => 400 (no tiene sentido seguir con un slot que no se puede guardar).
func SaveSlot(defaultSlot string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			slot := strings.TrimSpace(r.Header.Get(SlotHeader))
			if slot == "" {
				slot = defaultSlot
			}
			if !ValidSlot(slot) {
				http.Error(w, "invalid "+SlotHeader, http.StatusBadRequest)
				return
			}

			ctx := context.WithValue(r.Context(), slotKey, slot)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetSlot(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(slotKey).(string)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

// ValidSlot acepta letras, dígitos, '-' y '_' (hasta 64).
func ValidSlot(slot string) bool {
	if slot == "" || len(slot) > maxSlotLen {
		return false
	}
	for _, c := range slot {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '-', c == '_':
		default:
			return false
		}
	}
	return true
}
