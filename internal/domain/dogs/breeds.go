package dogs

// Breed es una raza del catálogo fijo.
type Breed string

const (
	BreedFrenchBulldog      Breed = "French Bulldog"
	BreedLabrador           Breed = "Labrador"
	BreedAustralianShepherd Breed = "Australian Shepherd"
	BreedGermanShepherd     Breed = "German Shepherd"
	BreedPoodle             Breed = "Poodle"
)

// DefaultBasePrice aplica a razas fuera del catálogo.
const DefaultBasePrice = 600

type BreedInfo struct {
	Name      Breed
	BasePrice int
}

var breedCatalog = []BreedInfo{
	{Name: BreedFrenchBulldog, BasePrice: 800},
	{Name: BreedLabrador, BasePrice: 600},
	{Name: BreedAustralianShepherd, BasePrice: 900},
	{Name: BreedGermanShepherd, BasePrice: 1000},
	{Name: BreedPoodle, BasePrice: 1200},
}

// Breeds devuelve una copia del catálogo en orden de declaración.
func Breeds() []BreedInfo {
	return append([]BreedInfo(nil), breedCatalog...)
}

func BasePrice(b Breed) int {
	for _, info := range breedCatalog {
		if info.Name == b {
			return info.BasePrice
		}
	}
	return DefaultBasePrice
}

func IsKnownBreed(b Breed) bool {
	for _, info := range breedCatalog {
		if info.Name == b {
			return true
		}
	}
	return false
}
