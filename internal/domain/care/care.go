package care

import (
	"errors"
	"fmt"
	"time"

	"kennel-tycoon/internal/domain/dogs"
	"kennel-tycoon/internal/platform/rng"
)

// FeedTier es la calidad de alimento.
type FeedTier string

const (
	FeedStandard FeedTier = "standard"
	FeedPremium  FeedTier = "premium"
)

const (
	HungerThreshold   = 3 // días sin comer antes de perder salud
	HungerDamage      = 2
	RestlessThreshold = 5 // días sin paseo antes de perder la felicidad

	WalkHappiness = 10

	// El boost de belleza dura tiempo real, no días de juego.
	BoostAmount   = 5
	BoostDuration = 5 * time.Minute

	TreatMinCost = 50
	TreatMaxCost = 200
	TreatMinDays = 3
	TreatMaxDays = 7
)

var (
	ErrUnknownTier = errors.New("unknown feed tier")
)

type feedEffect struct {
	cost    int
	satiety int
	health  int
	boost   bool
}

var feedEffects = map[FeedTier]feedEffect{
	FeedStandard: {cost: 10, satiety: 5, health: 1},
	FeedPremium:  {cost: 25, satiety: 10, health: 3, boost: true},
}

// FeedCost devuelve el costo del alimento; el caller valida saldo antes de Feed.
func FeedCost(tier FeedTier) (int, error) {
	fx, ok := feedEffects[tier]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownTier, tier)
	}
	return fx.cost, nil
}

// Feed aplica el alimento y reinicia el contador de comida.
func Feed(d *dogs.Dog, tier FeedTier, now time.Time) error {
	fx, ok := feedEffects[tier]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownTier, tier)
	}

	d.Satiety = dogs.Clamp(d.Satiety+fx.satiety, 0, dogs.MaxStat)
	d.Health = dogs.Clamp(d.Health+fx.health, 0, dogs.MaxStat)
	d.DaysSinceFed = 0

	if fx.boost {
		d.BoostAmount = BoostAmount
		d.BoostExpiresAt = now.Add(BoostDuration)
	}
	return nil
}

// Walk es gratis: +10 de felicidad (tope 100) y reinicia el contador de paseo.
func Walk(d *dogs.Dog) {
	d.Happiness = dogs.Clamp(d.Happiness+WalkHappiness, 0, dogs.MaxStat)
	d.DaysSinceWalked = 0
}

// Treatment es un tratamiento cotizado: costo y días de ocultamiento.
type Treatment struct {
	Cost int
	Days int
}

// QuoteTreatment sortea costo [50,200] y duración [3,7].
func QuoteTreatment(src rng.Source) Treatment {
	cost := src.IntN(TreatMaxCost-TreatMinCost+1) + TreatMinCost
	days := src.IntN(TreatMaxDays-TreatMinDays+1) + TreatMinDays
	return Treatment{Cost: cost, Days: days}
}

// ApplyTreatment oculta los defectos expresados; no los cura.
func ApplyTreatment(d *dogs.Dog, t Treatment) {
	d.TreatmentDays = t.Days
}

// Tick avanza un día para todo el criadero.
// Devuelve los sobrevivientes y los que murieron (salud <= 0).
func Tick(kennel []dogs.Dog) (alive []dogs.Dog, deceased []dogs.Dog) {
	next := make([]dogs.Dog, len(kennel))
	for i, d := range kennel {
		d = d.Clone()

		d.Age++
		d.DaysSinceFed++
		d.DaysSinceWalked++
		if d.HasBred {
			d.DaysSinceBred++
		}
		if d.TreatmentDays > 0 {
			d.TreatmentDays--
		}

		// Descuido
		if d.DaysSinceFed >= HungerThreshold {
			d.Health -= HungerDamage
		}
		if d.DaysSinceWalked >= RestlessThreshold {
			d.Happiness = 0 // corte, no decaimiento gradual
		}

		d.Satiety = dogs.Clamp(d.Satiety, 0, dogs.MaxStat)
		d.Happiness = dogs.Clamp(d.Happiness, 0, dogs.MaxStat)
		d.Health = dogs.Clamp(d.Health, 0, dogs.MaxStat)

		next[i] = d
	}

	alive = make([]dogs.Dog, 0, len(next))
	deceased = make([]dogs.Dog, 0)
	for _, d := range next {
		if d.Health <= 0 {
			deceased = append(deceased, d)
			continue
		}
		alive = append(alive, d)
	}
	return alive, deceased
}
