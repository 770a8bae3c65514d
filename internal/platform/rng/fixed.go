package rng

// Fixed reproduce valores encolados, en orden. Pensado para tests.
// Con la cola vacía, IntN devuelve 0 y Float64 devuelve Fallback.
type Fixed struct {
	Ints     []int
	Floats   []float64
	Fallback float64
}

// NewFixed arma un Fixed cuyo fallback (0.999) no dispara ningún evento probabilístico.
func NewFixed(ints []int, floats []float64) *Fixed {
	return &Fixed{Ints: ints, Floats: floats, Fallback: 0.999}
}

func (f *Fixed) IntN(n int) int {
	if len(f.Ints) == 0 {
		return 0
	}
	v := f.Ints[0]
	f.Ints = f.Ints[1:]
	if v < 0 {
		v = 0
	}
	if v >= n {
		v = n - 1
	}
	return v
}

func (f *Fixed) Float64() float64 {
	if len(f.Floats) == 0 {
		return f.Fallback
	}
	v := f.Floats[0]
	f.Floats = f.Floats[1:]
	return v
}
