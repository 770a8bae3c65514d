package genetics

import (
	"errors"
	"fmt"

	"kennel-tycoon/internal/domain/dogs"
	"kennel-tycoon/internal/platform/rng"
)

const (
	// BreedingCooldown: días mínimos entre camadas de una hembra.
	BreedingCooldown = 180
	MaxLitterSize    = 6

	traitJitter       = 5
	mutationChance    = 0.05
	mutationMagnitude = 10

	// Overrides de expresión según el estado de los padres.
	recessiveBothCarryExpression = 0.25
	dominantExpression           = 0.75
)

var (
	ErrInvalidPairing = errors.New("invalid pairing")
)

// GeneticRating es el promedio redondeado de los cuatro rasgos.
func GeneticRating(d dogs.Dog) int {
	sum := d.Conformation + d.Coat + d.Temperament + d.Stamina
	return dogs.RoundHalfUp(float64(sum) / 4)
}

// InheritTrait: promedio de los padres, +-5 uniforme y 5% de mutación de +-10.
func InheritTrait(src rng.Source, maleVal, femaleVal int) int {
	v := float64(maleVal+femaleVal) / 2
	v += float64(src.IntN(2*traitJitter+1) - traitJitter)

	if src.Float64() < mutationChance {
		if src.Float64() > 0.5 {
			v += mutationMagnitude
		} else {
			v -= mutationMagnitude
		}
	}

	return dogs.Clamp(dogs.RoundHalfUp(v), 0, dogs.MaxStat)
}

// InheritTraits hereda los cuatro rasgos en orden fijo, con sorteos independientes.
func InheritTraits(src rng.Source, male, female dogs.Dog) dogs.Traits {
	var t dogs.Traits
	t.Conformation = InheritTrait(src, male.Conformation, female.Conformation)
	t.Coat = InheritTrait(src, male.Coat, female.Coat)
	t.Temperament = InheritTrait(src, male.Temperament, female.Temperament)
	t.Stamina = InheritTrait(src, male.Stamina, female.Stamina)
	return t
}

// InheritDefects recorre el catálogo en orden y emite como mucho un registro por defecto.
func InheritDefects(src rng.Source, male, female dogs.Dog) []dogs.DefectRecord {
	out := make([]dogs.DefectRecord, 0)

	for _, dt := range defectCatalog {
		chance := expressionChance(dt, male.Carries(dt.Name), female.Carries(dt.Name))

		if src.Float64() >= dt.TransmissionChance {
			continue
		}
		expressed := src.Float64() < chance
		out = append(out, dogs.DefectRecord{
			Name:      dt.Name,
			Expressed: expressed,
			Carrier:   !expressed,
		})
	}

	return out
}

// Dominante: 0.75 fijo, sin importar los padres.
func expressionChance(dt DefectType, maleCarries, femaleCarries bool) float64 {
	switch {
	case dt.Inheritance == InheritanceRecessive && maleCarries && femaleCarries:
		return recessiveBothCarryExpression
	case dt.Inheritance == InheritanceDominant:
		return dominantExpression
	default:
		return dt.ExpressionChance
	}
}

// CanBreed valida la pareja sin tocar estado.
func CanBreed(male, female dogs.Dog) error {
	switch {
	case male.Gender != dogs.GenderMale || female.Gender != dogs.GenderFemale:
		return fmt.Errorf("%w: need one male and one female", ErrInvalidPairing)
	case male.Breed != female.Breed:
		return fmt.Errorf("%w: breeds differ (%s / %s)", ErrInvalidPairing, male.Breed, female.Breed)
	case !male.IsMature() || !female.IsMature():
		return fmt.Errorf("%w: both parents must be at least %d days old", ErrInvalidPairing, dogs.MaturityAge)
	case female.HasBred && female.DaysSinceBred < BreedingCooldown:
		return fmt.Errorf("%w: female bred %d days ago", ErrInvalidPairing, female.DaysSinceBred)
	}
	return nil
}

// Breed produce una camada de 1 a 6 cachorros.
// Solo si tiene éxito reinicia el contador de cría de la hembra.
func Breed(src rng.Source, male dogs.Dog, female *dogs.Dog) ([]dogs.Dog, error) {
	if female == nil {
		return nil, fmt.Errorf("%w: female required", ErrInvalidPairing)
	}
	if err := CanBreed(male, *female); err != nil {
		return nil, err
	}

	size := src.IntN(MaxLitterSize) + 1
	litter := make([]dogs.Dog, 0, size)

	for i := 0; i < size; i++ {
		gender := dogs.RandomGender(src)
		traits := InheritTraits(src, male, *female)
		defects := InheritDefects(src, male, *female)

		pup := dogs.New(src, dogs.Options{
			Breed:   male.Breed,
			Gender:  gender,
			Age:     0,
			Traits:  &traits,
			Defects: defects,
		})
		pup.GeneticRating = GeneticRating(pup)
		litter = append(litter, pup)
	}

	female.DaysSinceBred = 0
	female.HasBred = true

	return litter, nil
}
