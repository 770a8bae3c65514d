package care

import (
	"errors"
	"testing"
	"time"

	"kennel-tycoon/internal/domain/dogs"
	"kennel-tycoon/internal/platform/rng"
)

func healthyDog(id string) dogs.Dog {
	return dogs.Dog{ID: id, Age: 100, Satiety: 100, Happiness: 100, Health: 100}
}

func TestTick_AgesAndCountsTimers(t *testing.T) {
	d := healthyDog("a")
	d.HasBred = true
	d.DaysSinceBred = 10
	d.TreatmentDays = 1

	alive, dead := Tick([]dogs.Dog{d})
	if len(alive) != 1 || len(dead) != 0 {
		t.Fatalf("expected 1 alive, got %d alive / %d dead", len(alive), len(dead))
	}
	got := alive[0]
	if got.Age != 101 || got.DaysSinceFed != 1 || got.DaysSinceWalked != 1 || got.DaysSinceBred != 11 {
		t.Fatalf("timers not advanced: %#v", got)
	}
	if got.TreatmentDays != 0 {
		t.Fatalf("expected treatment countdown to reach 0, got %d", got.TreatmentDays)
	}
}

func TestTick_NeverBredDoesNotCountCooldown(t *testing.T) {
	alive, _ := Tick([]dogs.Dog{healthyDog("a")})
	if alive[0].DaysSinceBred != 0 {
		t.Fatalf("expected bred timer untouched, got %d", alive[0].DaysSinceBred)
	}
}

func TestTick_HungerDamagesHealth(t *testing.T) {
	d := healthyDog("a")
	d.DaysSinceFed = 1

	alive, _ := Tick([]dogs.Dog{d}) // fed=2
	if alive[0].Health != 100 {
		t.Fatalf("expected no damage at 2 days, got %d", alive[0].Health)
	}
	alive, _ = Tick(alive) // fed=3
	if alive[0].Health != 98 {
		t.Fatalf("expected 98 health at 3 days, got %d", alive[0].Health)
	}
}

func TestTick_NoWalkIsACliff(t *testing.T) {
	d := healthyDog("a")
	d.DaysSinceWalked = 3

	alive, _ := Tick([]dogs.Dog{d})
	if alive[0].Happiness != 100 {
		t.Fatalf("expected happiness untouched at 4 days, got %d", alive[0].Happiness)
	}
	alive, _ = Tick(alive)
	if alive[0].Happiness != 0 {
		t.Fatalf("expected happiness reset to 0 at 5 days, got %d", alive[0].Happiness)
	}
}

func TestTick_RemovesDeadOnlyWhenHealthHitsZero(t *testing.T) {
	d := healthyDog("dying")
	d.Health = 3
	d.DaysSinceFed = 5
	other := healthyDog("fine")

	alive, dead := Tick([]dogs.Dog{d, other}) // 3 -> 1
	if len(dead) != 0 || len(alive) != 2 {
		t.Fatalf("expected no deaths yet")
	}
	alive, dead = Tick(alive) // 1 -> -1 -> clamp 0
	if len(dead) != 1 || dead[0].ID != "dying" {
		t.Fatalf("expected dying dog removed, got %#v", dead)
	}
	if len(alive) != 1 || alive[0].ID != "fine" {
		t.Fatalf("expected only 'fine' to survive")
	}
	if dead[0].Health != 0 {
		t.Fatalf("expected clamped health 0, got %d", dead[0].Health)
	}
}

func TestTick_StatsStayInBounds(t *testing.T) {
	kennel := []dogs.Dog{healthyDog("a"), healthyDog("b")}
	for day := 0; day < 200 && len(kennel) > 0; day++ {
		kennel, _ = Tick(kennel)
		for _, d := range kennel {
			for _, v := range []int{d.Satiety, d.Happiness, d.Health} {
				if v < 0 || v > 100 {
					t.Fatalf("stat out of range on day %d: %d", day, v)
				}
			}
		}
	}
	if len(kennel) != 0 {
		t.Fatalf("neglected dogs should eventually die")
	}
}

func TestTick_DoesNotMutateInput(t *testing.T) {
	kennel := []dogs.Dog{healthyDog("a")}
	Tick(kennel)
	if kennel[0].Age != 100 {
		t.Fatalf("input slice mutated")
	}
}

func TestFeed_StandardAndPremium(t *testing.T) {
	now := time.Date(2025, 12, 22, 10, 0, 0, 0, time.UTC)

	d := healthyDog("a")
	d.Satiety, d.Health, d.DaysSinceFed = 50, 50, 4
	if err := Feed(&d, FeedStandard, now); err != nil {
		t.Fatalf("Feed error: %v", err)
	}
	if d.Satiety != 55 || d.Health != 51 || d.DaysSinceFed != 0 || d.BoostAmount != 0 {
		t.Fatalf("unexpected standard feed result: %#v", d)
	}

	if err := Feed(&d, FeedPremium, now); err != nil {
		t.Fatalf("Feed error: %v", err)
	}
	if d.Satiety != 65 || d.Health != 54 {
		t.Fatalf("unexpected premium feed result: %#v", d)
	}
	if !d.BoostActive(now.Add(BoostDuration-time.Second)) || d.BoostActive(now.Add(BoostDuration)) {
		t.Fatalf("expected boost valid for %s of real time", BoostDuration)
	}
}

func TestFeed_CapsAt100(t *testing.T) {
	d := healthyDog("a")
	_ = Feed(&d, FeedPremium, time.Now())
	if d.Satiety != 100 || d.Health != 100 {
		t.Fatalf("expected caps at 100, got %d/%d", d.Satiety, d.Health)
	}
}

func TestFeedCost(t *testing.T) {
	if c, _ := FeedCost(FeedStandard); c != 10 {
		t.Fatalf("expected 10, got %d", c)
	}
	if c, _ := FeedCost(FeedPremium); c != 25 {
		t.Fatalf("expected 25, got %d", c)
	}
	if _, err := FeedCost("gourmet"); !errors.Is(err, ErrUnknownTier) {
		t.Fatalf("expected ErrUnknownTier, got %v", err)
	}
}

func TestWalk(t *testing.T) {
	d := healthyDog("a")
	d.Happiness, d.DaysSinceWalked = 95, 6
	Walk(&d)
	if d.Happiness != 100 || d.DaysSinceWalked != 0 {
		t.Fatalf("unexpected walk result: %#v", d)
	}
}

func TestQuoteTreatment_Ranges(t *testing.T) {
	if q := QuoteTreatment(rng.NewFixed([]int{0, 0}, nil)); q.Cost != 50 || q.Days != 3 {
		t.Fatalf("expected min quote 50/3, got %#v", q)
	}
	if q := QuoteTreatment(rng.NewFixed([]int{150, 4}, nil)); q.Cost != 200 || q.Days != 7 {
		t.Fatalf("expected max quote 200/7, got %#v", q)
	}
}

func TestTreatment_HidesForCountdownWindow(t *testing.T) {
	d := healthyDog("a")
	d.Defects = []dogs.DefectRecord{{Name: "Hip Dysplasia", Expressed: true}}

	ApplyTreatment(&d, Treatment{Cost: 80, Days: 3})
	kennel := []dogs.Dog{d}
	for day := 1; day <= 3; day++ {
		if n := len(kennel[0].VisibleDefects()); n != 0 {
			t.Fatalf("day %d: expected defect hidden, got %d visible", day, n)
		}
		kennel, _ = Tick(kennel)
	}
	if n := len(kennel[0].VisibleDefects()); n != 1 {
		t.Fatalf("expected defect visible after countdown, got %d", n)
	}
	if !kennel[0].Defects[0].Expressed || kennel[0].Defects[0].Carrier {
		t.Fatalf("genetic record must be unchanged")
	}
}
