package market

import (
	"kennel-tycoon/internal/domain/dogs"
	"kennel-tycoon/internal/domain/genetics"
	"kennel-tycoon/internal/domain/valuation"
	"kennel-tycoon/internal/platform/rng"
)

const (
	ListingCount = 5
	RefreshFee   = 100
	MaxAgeDays   = 365 * 8
)

// Generate arma un lote nuevo de perros a la venta, con rating y precio ya calculados.
func Generate(src rng.Source) []dogs.Dog {
	all := dogs.Breeds()
	out := make([]dogs.Dog, 0, ListingCount)

	for i := 0; i < ListingCount; i++ {
		breed := all[src.IntN(len(all))].Name
		age := src.IntN(MaxAgeDays)
		gender := dogs.RandomGender(src)

		d := dogs.New(src, dogs.Options{
			Breed:    breed,
			Gender:   gender,
			Age:      age,
			Category: dogs.CategoryGeneral,
		})
		d.GeneticRating = genetics.GeneticRating(d)
		d.Price = valuation.Price(src, d)

		out = append(out, d)
	}
	return out
}
