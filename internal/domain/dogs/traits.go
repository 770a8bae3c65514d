package dogs

import (
	"strings"

	"kennel-tycoon/internal/platform/rng"

	"github.com/google/uuid"
)

// Category define el rango de rasgos de un perro generado.
type Category int

const (
	CategoryGeneral Category = iota // 30-70 (mercado)
	CategoryStarter                 // 40-60 (perros iniciales)
)

type Traits struct {
	Conformation int `json:"conformation"`
	Coat         int `json:"coat"`
	Temperament  int `json:"temperament"`
	Stamina      int `json:"stamina"`
}

// GenerateTraits sortea los cuatro rasgos de forma uniforme según la categoría.
func GenerateTraits(src rng.Source, c Category) Traits {
	lo, hi := 30, 70
	if c == CategoryStarter {
		lo, hi = 40, 60
	}
	roll := func() int { return src.IntN(hi-lo+1) + lo }

	var t Traits
	t.Conformation = roll()
	t.Coat = roll()
	t.Temperament = roll()
	t.Stamina = roll()
	return t
}

// Options para New. Campos vacíos se sortean.
type Options struct {
	Name     string
	Breed    Breed
	Gender   Gender
	Age      int
	Category Category
	Traits   *Traits // si viene, no se sortean rasgos
	Defects  []DefectRecord
}

// New crea un perro adulto con condición 100/100/100 y un ID estable.
func New(src rng.Source, opts Options) Dog {
	name := strings.TrimSpace(opts.Name)
	if name == "" {
		name = GenerateName(src)
	}

	breed := opts.Breed
	if breed == "" {
		all := Breeds()
		breed = all[src.IntN(len(all))].Name
	}

	gender := opts.Gender
	if gender == "" {
		gender = RandomGender(src)
	}

	var traits Traits
	if opts.Traits != nil {
		traits = *opts.Traits
	} else {
		traits = GenerateTraits(src, opts.Category)
	}

	defects := opts.Defects
	if defects == nil {
		defects = []DefectRecord{}
	}

	return Dog{
		ID:           uuid.NewString(),
		Name:         name,
		Breed:        breed,
		Gender:       gender,
		Age:          opts.Age,
		Conformation: traits.Conformation,
		Coat:         traits.Coat,
		Temperament:  traits.Temperament,
		Stamina:      traits.Stamina,
		Satiety:      MaxStat,
		Happiness:    MaxStat,
		Health:       MaxStat,
		Defects:      defects,
	}
}

// RandomGender: macho si el sorteo supera 0.5.
func RandomGender(src rng.Source) Gender {
	if src.Float64() > 0.5 {
		return GenderMale
	}
	return GenderFemale
}
