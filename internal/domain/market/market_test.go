package market

import (
	"testing"

	"kennel-tycoon/internal/domain/genetics"
	"kennel-tycoon/internal/domain/valuation"
	"kennel-tycoon/internal/platform/rng"
)

func TestGenerate_FiveConsistentListings(t *testing.T) {
	src, _ := rng.New(2024)

	for round := 0; round < 50; round++ {
		listings := Generate(src)
		if len(listings) != ListingCount {
			t.Fatalf("expected %d listings, got %d", ListingCount, len(listings))
		}
		for _, d := range listings {
			if d.Price <= 0 || d.Price > valuation.MaxPrice {
				t.Fatalf("price out of range: %d", d.Price)
			}
			if d.GeneticRating != genetics.GeneticRating(d) {
				t.Fatalf("rating %d inconsistent with traits", d.GeneticRating)
			}
			if d.Age < 0 || d.Age >= MaxAgeDays {
				t.Fatalf("age out of range: %d", d.Age)
			}
			for _, v := range []int{d.Conformation, d.Coat, d.Temperament, d.Stamina} {
				if v < 30 || v > 70 {
					t.Fatalf("trait out of general range: %d", v)
				}
			}
		}
	}
}

func TestGenerate_UniqueIDs(t *testing.T) {
	src, _ := rng.New(1)
	seen := map[string]bool{}
	for _, d := range Generate(src) {
		if seen[d.ID] {
			t.Fatalf("duplicate id %s", d.ID)
		}
		seen[d.ID] = true
	}
}
