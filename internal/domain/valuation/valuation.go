package valuation

import (
	"math"

	"kennel-tycoon/internal/domain/dogs"
	"kennel-tycoon/internal/domain/genetics"
	"kennel-tycoon/internal/platform/rng"
)

const (
	MaxPrice = 10000

	MerleMultiplier  = 1.8
	AlbinoMultiplier = 3.0

	merleChance  = 0.1
	albinoChance = 0.01
)

// ColorMultiplier sortea la rareza de color.
// Merle (solo Australian Shepherd) tiene precedencia; nunca se combinan.
func ColorMultiplier(src rng.Source, breed dogs.Breed) float64 {
	if breed == dogs.BreedAustralianShepherd && src.Float64() < merleChance {
		return MerleMultiplier
	}
	if src.Float64() < albinoChance {
		return AlbinoMultiplier
	}
	return 1.0
}

// Price calcula el precio de mercado, con tope en MaxPrice.
func Price(src rng.Source, d dogs.Dog) int {
	return priceWith(d, ColorMultiplier(src, d.Breed))
}

// Estimate es Price sin rareza de color: determinístico, para mostrar en el criadero.
func Estimate(d dogs.Dog) int {
	return priceWith(d, 1.0)
}

func priceWith(d dogs.Dog, color float64) int {
	base := float64(dogs.BasePrice(d.Breed))
	p := base * (1 + float64(genetics.GeneticRating(d))/100) * color
	return dogs.RoundHalfUp(math.Min(p, MaxPrice))
}
