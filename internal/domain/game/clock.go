package game

import (
	"context"
	"time"

	"kennel-tycoon/internal/platform/logger"
)

// clockSteps es la resolución del reloj: cada día base se divide en 10 pasos,
// así 1x, 2x y 5x caen exactos (10, 5 y 2 pasos por día).
const clockSteps = 10

// Clock dispara AdvanceDay en cada partida guardada cada BaseInterval/Speed.
// Un cambio de velocidad rige desde el paso siguiente.
type Clock struct {
	svc      *Service
	interval time.Duration
	log      logger.Logger

	progress map[string]int
}

func NewClock(svc *Service, baseInterval time.Duration, log logger.Logger) *Clock {
	if log == nil {
		log = logger.Nop()
	}
	return &Clock{
		svc:      svc,
		interval: baseInterval,
		log:      log,
		progress: map[string]int{},
	}
}

// Run bloquea hasta que ctx se cancele.
func (c *Clock) Run(ctx context.Context) {
	step := c.interval / clockSteps
	if step <= 0 {
		step = time.Millisecond
	}
	t := time.NewTicker(step)
	defer t.Stop()

	c.log.Info("day clock started", map[string]any{"base_interval": c.interval.String()})
	for {
		select {
		case <-ctx.Done():
			c.log.Info("day clock stopped", nil)
			return
		case <-t.C:
			c.advance(ctx)
		}
	}
}

// advance suma un paso por partida ponderado por su velocidad y devuelve los slots que cambiaron de día.
func (c *Clock) advance(ctx context.Context) []string {
	speeds, err := c.svc.SlotSpeeds(ctx)
	if err != nil {
		c.log.Error("clock: list games failed", map[string]any{"error": err.Error()})
		return nil
	}

	for slot := range c.progress {
		if _, ok := speeds[slot]; !ok {
			delete(c.progress, slot)
		}
	}

	var ticked []string
	for slot, speed := range speeds {
		if !validSpeed(speed) {
			speed = Speeds[0]
		}
		c.progress[slot] += speed
		if c.progress[slot] < clockSteps {
			continue
		}
		c.progress[slot] -= clockSteps

		report, err := c.svc.AdvanceDay(ctx, slot)
		if err != nil {
			c.log.Error("clock: advance day failed", map[string]any{"slot": slot, "error": err.Error()})
			continue
		}
		ticked = append(ticked, slot)
		c.log.Debug("day advanced", map[string]any{"slot": slot, "day": report.Day, "deceased": len(report.Deceased)})
	}
	return ticked
}
