package rng

import (
	"math/rand/v2"
	"time"
)

// Source es la única fuente de azar de los motores.
// *rand.Rand (math/rand/v2) la satisface directamente.
type Source interface {
	IntN(n int) int
	Float64() float64
}

// New crea un generador PCG determinístico.
// Si seed es 0 usa el reloj; devuelve la semilla efectiva para poder reproducir la partida.
func New(seed uint64) (*rand.Rand, uint64) {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed>>1|1)), seed
}
