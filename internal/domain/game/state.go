package game

import (
	"kennel-tycoon/internal/domain/dogs"
	"kennel-tycoon/internal/domain/market"
	"kennel-tycoon/internal/domain/show"
	"kennel-tycoon/internal/platform/rng"
)

const (
	StartingMoney    = 2500
	StarterAge       = 548 // ~1.5 años
	PuppyAdoptionFee = 100
)

// Speeds son los multiplicadores de velocidad válidos, en orden de rotación.
var Speeds = []int{1, 2, 5}

// State es el agregado de una partida. Un perro vive en una sola colección:
// Dogs (criadero), Market (a la venta) o Litter (camada pendiente).
type State struct {
	Day      int `json:"day"`
	Money    int `json:"money"`
	Prestige int `json:"prestige"`
	Speed    int `json:"speed"`

	Dogs []dogs.Dog `json:"dogs"`

	Market           []dogs.Dog `json:"market"`
	MarketLastUpdate int        `json:"market_last_update"`

	Litter []dogs.Dog    `json:"litter"`
	Show   *show.Session `json:"show,omitempty"`
}

// NewState arranca una partida: macho y hembra iniciales (raza sorteada por separado) y mercado.
func NewState(src rng.Source) State {
	male := dogs.New(src, dogs.Options{Gender: dogs.GenderMale, Age: StarterAge, Category: dogs.CategoryStarter})
	female := dogs.New(src, dogs.Options{Gender: dogs.GenderFemale, Age: StarterAge, Category: dogs.CategoryStarter})

	return State{
		Day:              1,
		Money:            StartingMoney,
		Speed:            Speeds[0],
		Dogs:             []dogs.Dog{male, female},
		Market:           market.Generate(src),
		MarketLastUpdate: 1,
		Litter:           []dogs.Dog{},
	}
}

// Clone hace copia profunda (slices, defectos y sesión).
func (s State) Clone() State {
	c := s
	c.Dogs = cloneDogs(s.Dogs)
	c.Market = cloneDogs(s.Market)
	c.Litter = cloneDogs(s.Litter)
	if s.Show != nil {
		sess := *s.Show
		c.Show = &sess
	}
	return c
}

func cloneDogs(in []dogs.Dog) []dogs.Dog {
	out := make([]dogs.Dog, len(in))
	for i, d := range in {
		out[i] = d.Clone()
	}
	return out
}

func indexOf(list []dogs.Dog, id string) int {
	for i, d := range list {
		if d.ID == id {
			return i
		}
	}
	return -1
}

func removeAt(list []dogs.Dog, i int) []dogs.Dog {
	return append(list[:i:i], list[i+1:]...)
}

func validSpeed(speed int) bool {
	for _, s := range Speeds {
		if s == speed {
			return true
		}
	}
	return false
}
