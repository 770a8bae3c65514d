package show

import (
	"errors"
	"fmt"
	"math"
	"time"

	"kennel-tycoon/internal/domain/dogs"
)

const (
	DefectPenalty = 15
	MaxBeauty     = 100

	MaxAttempts  = 3
	PreciseScore = 25
	NearScore    = 10
)

var (
	ErrNotMature         = errors.New("dog is not mature")
	ErrAttemptsExhausted = errors.New("no skill attempts left")
)

// BeautyScore: conformación*0.6 + pelaje*0.4, -15 por defecto visible, piso 0.
// Un boost activo se suma después y el total se limita a 100.
func BeautyScore(d dogs.Dog, now time.Time) int {
	score := float64(d.Conformation)*0.6 + float64(d.Coat)*0.4
	score -= float64(DefectPenalty * len(d.VisibleDefects()))
	score = math.Max(0, score)

	if d.BoostActive(now) {
		score = math.Min(MaxBeauty, score+float64(d.BoostAmount))
	}
	return dogs.RoundHalfUp(score)
}

// ScoreAttempt puntúa la posición del puntero (en %).
// Verde 40-60 => 25, amarillo 30-40 / 60-70 => 10, resto 0.
func ScoreAttempt(position float64) int {
	switch {
	case position >= 40 && position <= 60:
		return PreciseScore
	case (position >= 30 && position < 40) || (position > 60 && position <= 70):
		return NearScore
	default:
		return 0
	}
}

const (
	pointerStep     = 50 * time.Millisecond
	pointerDelta    = 0.5
	pointerStart    = 50.0
	pointerMax      = 90.0
	pointerMin      = 10.0
	pointerUpSteps  = int((pointerMax - pointerStart) / pointerDelta) // 80
	pointerSpan     = int((pointerMax - pointerMin) / pointerDelta)   // 160
	pointerCycleLen = 2 * pointerSpan                                 // 320
)

// PointerPosition calcula dónde está el puntero tras elapsed de sesión.
// Arranca en 50%, avanza 0.5% cada 50ms y rebota en 90 y 10.
func PointerPosition(elapsed time.Duration) float64 {
	if elapsed < 0 {
		elapsed = 0
	}
	k := int(elapsed/pointerStep) % pointerCycleLen

	switch {
	case k <= pointerUpSteps:
		return pointerStart + pointerDelta*float64(k)
	case k <= pointerUpSteps+pointerSpan:
		return pointerMax - pointerDelta*float64(k-pointerUpSteps)
	default:
		return pointerMin + pointerDelta*float64(k-pointerUpSteps-pointerSpan)
	}
}

// Session es una inscripción en curso: belleza fija al entrar y hasta 3 intentos de destreza.
type Session struct {
	DogID      string    `json:"dog_id"`
	Beauty     int       `json:"beauty"`
	Visible    int       `json:"visible_defects"`
	Attempts   int       `json:"attempts"`
	SkillTotal int       `json:"skill_total"`
	StartedAt  time.Time `json:"started_at"`
}

// Enter inscribe al perro; requiere madurez.
func Enter(d dogs.Dog, now time.Time) (Session, error) {
	if !d.IsMature() {
		return Session{}, fmt.Errorf("%w: %d days old, needs %d", ErrNotMature, d.Age, dogs.MaturityAge)
	}
	return Session{
		DogID:     d.ID,
		Beauty:    BeautyScore(d, now),
		Visible:   len(d.VisibleDefects()),
		StartedAt: now,
	}, nil
}

// Record registra un intento y devuelve su puntaje.
func (s *Session) Record(position float64) (int, error) {
	if s.Attempts >= MaxAttempts {
		return 0, ErrAttemptsExhausted
	}
	score := ScoreAttempt(position)
	s.Attempts++
	s.SkillTotal += score
	return score, nil
}

func (s Session) AttemptsLeft() int {
	return MaxAttempts - s.Attempts
}

// Result es el resultado final de una exposición.
type Result struct {
	Tier         string `json:"tier"`
	Total        int    `json:"total"`
	Reward       int    `json:"reward"`
	PrestigeGain int    `json:"prestige_gain"`
}

type tier struct {
	min      int
	name     string
	reward   int
	prestige int
}

// Umbrales en orden descendente.
var tiers = []tier{
	{min: 155, name: "Tier 4", reward: 15000, prestige: 100},
	{min: 135, name: "Tier 3", reward: 4000, prestige: 40},
	{min: 110, name: "Tier 2", reward: 1200, prestige: 15},
	{min: 80, name: "Tier 1", reward: 300, prestige: 5},
}

const NoPlacement = "Did not place"

// Outcome combina belleza y destreza en un nivel con premio.
func Outcome(beauty, skill int) Result {
	total := beauty + skill
	for _, t := range tiers {
		if total >= t.min {
			return Result{Tier: t.name, Total: total, Reward: t.reward, PrestigeGain: t.prestige}
		}
	}
	return Result{Tier: NoPlacement, Total: total}
}
