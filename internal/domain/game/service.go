package game

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"kennel-tycoon/internal/domain/care"
	"kennel-tycoon/internal/domain/dogs"
	"kennel-tycoon/internal/domain/genetics"
	"kennel-tycoon/internal/domain/market"
	"kennel-tycoon/internal/domain/show"
	"kennel-tycoon/internal/domain/valuation"
	"kennel-tycoon/internal/platform/logger"
	"kennel-tycoon/internal/platform/money"
	"kennel-tycoon/internal/platform/rng"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Service serializa todas las mutaciones: un tick y una acción del jugador nunca se intercalan.
type Service struct {
	mu sync.Mutex

	repo   Repository
	src    rng.Source
	log    logger.Logger
	now    func() time.Time
	tracer trace.Tracer
}

func NewService(repo Repository, src rng.Source, log logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		repo:   repo,
		src:    src,
		log:    log,
		now:    time.Now,
		tracer: otel.Tracer("kennel-tycoon/game"),
	}
}

// Now es el reloj real del servicio (expiración de boosts, puntero de destreza).
func (s *Service) Now() time.Time {
	return s.now()
}

// mutate carga, aplica fn sobre una copia y guarda solo si fn no falla.
func (s *Service) mutate(ctx context.Context, slot, op string, fn func(st *State) error) (State, error) {
	ctx, span := s.tracer.Start(ctx, "game."+op, trace.WithAttributes(attribute.String("game.slot", slot)))
	defer span.End()

	slot, err := normalizeSlot(slot)
	if err != nil {
		return State{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cur, err := s.repo.Load(ctx, slot)
	if err != nil {
		span.RecordError(err)
		return State{}, err
	}

	next := cur.Clone()
	if err := fn(&next); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return State{}, err
	}

	if err := s.repo.Save(ctx, slot, next); err != nil {
		span.RecordError(err)
		return State{}, err
	}
	return next, nil
}

func normalizeSlot(slot string) (string, error) {
	slot = strings.TrimSpace(slot)
	if slot == "" {
		return "", fmt.Errorf("%w: slot required", ErrInvalidInput)
	}
	return slot, nil
}

// NewGame crea (o reinicia) la partida del slot.
func (s *Service) NewGame(ctx context.Context, slot string) (State, error) {
	ctx, span := s.tracer.Start(ctx, "game.new_game")
	defer span.End()

	slot, err := normalizeSlot(slot)
	if err != nil {
		return State{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	st := NewState(s.src)
	if err := s.repo.Save(ctx, slot, st); err != nil {
		span.RecordError(err)
		return State{}, err
	}

	s.log.Info("new game", map[string]any{"slot": slot, "money": money.Format(st.Money)})
	return st, nil
}

func (s *Service) Get(ctx context.Context, slot string) (State, error) {
	slot, err := normalizeSlot(slot)
	if err != nil {
		return State{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.repo.Load(ctx, slot)
}

// SlotSpeeds devuelve la velocidad de cada partida guardada (lo usa el reloj).
func (s *Service) SlotSpeeds(ctx context.Context) (map[string]int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	slots, err := s.repo.Slots(ctx)
	if err != nil {
		return nil, err
	}

	out := make(map[string]int, len(slots))
	for _, slot := range slots {
		st, err := s.repo.Load(ctx, slot)
		if err != nil {
			return nil, err
		}
		out[slot] = st.Speed
	}
	return out, nil
}

// ---------- Día ----------

type DayReport struct {
	Day      int        `json:"day"`
	Deceased []dogs.Dog `json:"deceased"`
}

// AdvanceDay aplica el tick diario al criadero y retira a los muertos.
func (s *Service) AdvanceDay(ctx context.Context, slot string) (DayReport, error) {
	var report DayReport

	st, err := s.mutate(ctx, slot, "advance_day", func(st *State) error {
		st.Day++
		alive, dead := care.Tick(st.Dogs)
		st.Dogs = alive
		report.Deceased = dead

		if st.Show != nil && indexOf(st.Dogs, st.Show.DogID) < 0 {
			st.Show = nil
		}
		return nil
	})
	if err != nil {
		return DayReport{}, err
	}

	report.Day = st.Day
	for _, d := range report.Deceased {
		s.log.Info("dog died", map[string]any{"slot": slot, "day": st.Day, "dog_id": d.ID, "name": d.Name})
	}
	return report, nil
}

func (s *Service) SetSpeed(ctx context.Context, slot string, speed int) (int, error) {
	if !validSpeed(speed) {
		return 0, fmt.Errorf("%w: speed must be one of %v", ErrInvalidInput, Speeds)
	}
	st, err := s.mutate(ctx, slot, "set_speed", func(st *State) error {
		st.Speed = speed
		return nil
	})
	return st.Speed, err
}

// ToggleSpeed rota 1x -> 2x -> 5x -> 1x.
func (s *Service) ToggleSpeed(ctx context.Context, slot string) (int, error) {
	st, err := s.mutate(ctx, slot, "toggle_speed", func(st *State) error {
		next := Speeds[0]
		for i, v := range Speeds {
			if v == st.Speed {
				next = Speeds[(i+1)%len(Speeds)]
				break
			}
		}
		st.Speed = next
		return nil
	})
	return st.Speed, err
}

// ---------- Cuidado ----------

func (s *Service) Feed(ctx context.Context, slot, dogID string, tier care.FeedTier) (dogs.Dog, error) {
	cost, err := care.FeedCost(tier)
	if err != nil {
		return dogs.Dog{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	var out dogs.Dog
	_, err = s.mutate(ctx, slot, "feed", func(st *State) error {
		i := indexOf(st.Dogs, dogID)
		if i < 0 {
			return dogNotFound(dogID)
		}
		if st.Money < cost {
			return insufficient(cost, st.Money)
		}
		st.Money -= cost
		if err := care.Feed(&st.Dogs[i], tier, s.now()); err != nil {
			return err
		}
		out = st.Dogs[i]
		return nil
	})
	return out, err
}

func (s *Service) Walk(ctx context.Context, slot, dogID string) (dogs.Dog, error) {
	var out dogs.Dog
	_, err := s.mutate(ctx, slot, "walk", func(st *State) error {
		i := indexOf(st.Dogs, dogID)
		if i < 0 {
			return dogNotFound(dogID)
		}
		care.Walk(&st.Dogs[i])
		out = st.Dogs[i]
		return nil
	})
	return out, err
}

// Treat cotiza y aplica un tratamiento; sin saldo no hay efecto.
func (s *Service) Treat(ctx context.Context, slot, dogID string) (dogs.Dog, care.Treatment, error) {
	var (
		out   dogs.Dog
		quote care.Treatment
	)
	_, err := s.mutate(ctx, slot, "treat", func(st *State) error {
		i := indexOf(st.Dogs, dogID)
		if i < 0 {
			return dogNotFound(dogID)
		}
		quote = care.QuoteTreatment(s.src)
		if st.Money < quote.Cost {
			return insufficient(quote.Cost, st.Money)
		}
		st.Money -= quote.Cost
		care.ApplyTreatment(&st.Dogs[i], quote)
		out = st.Dogs[i]
		return nil
	})
	if err != nil {
		return dogs.Dog{}, care.Treatment{}, err
	}
	return out, quote, nil
}

// BulkReport resume una acción aplicada a todo el criadero.
type BulkReport struct {
	Applied []string `json:"applied"`
	Skipped []string `json:"skipped"` // sin fondos al llegar su turno
	Spent   int      `json:"spent"`
}

// FeedAll alimenta a cada perro en orden mientras alcance el dinero.
func (s *Service) FeedAll(ctx context.Context, slot string, tier care.FeedTier) (BulkReport, error) {
	cost, err := care.FeedCost(tier)
	if err != nil {
		return BulkReport{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	report := newBulkReport()
	_, err = s.mutate(ctx, slot, "feed_all", func(st *State) error {
		now := s.now()
		for i := range st.Dogs {
			if st.Money < cost {
				report.Skipped = append(report.Skipped, st.Dogs[i].ID)
				continue
			}
			st.Money -= cost
			report.Spent += cost
			if err := care.Feed(&st.Dogs[i], tier, now); err != nil {
				return err
			}
			report.Applied = append(report.Applied, st.Dogs[i].ID)
		}
		return nil
	})
	if err != nil {
		return BulkReport{}, err
	}
	return report, nil
}

func (s *Service) WalkAll(ctx context.Context, slot string) (BulkReport, error) {
	report := newBulkReport()
	_, err := s.mutate(ctx, slot, "walk_all", func(st *State) error {
		for i := range st.Dogs {
			care.Walk(&st.Dogs[i])
			report.Applied = append(report.Applied, st.Dogs[i].ID)
		}
		return nil
	})
	if err != nil {
		return BulkReport{}, err
	}
	return report, nil
}

// TreatAll cotiza un tratamiento por perro; los que no se pueden pagar se saltean.
func (s *Service) TreatAll(ctx context.Context, slot string) (BulkReport, error) {
	report := newBulkReport()
	_, err := s.mutate(ctx, slot, "treat_all", func(st *State) error {
		for i := range st.Dogs {
			quote := care.QuoteTreatment(s.src)
			if st.Money < quote.Cost {
				report.Skipped = append(report.Skipped, st.Dogs[i].ID)
				continue
			}
			st.Money -= quote.Cost
			report.Spent += quote.Cost
			care.ApplyTreatment(&st.Dogs[i], quote)
			report.Applied = append(report.Applied, st.Dogs[i].ID)
		}
		return nil
	})
	if err != nil {
		return BulkReport{}, err
	}
	return report, nil
}

func newBulkReport() BulkReport {
	return BulkReport{Applied: []string{}, Skipped: []string{}}
}

// ---------- Cría ----------

// Breed cruza dos perros del criadero; la camada queda pendiente de adopción.
// Una camada nueva reemplaza a la anterior.
func (s *Service) Breed(ctx context.Context, slot, maleID, femaleID string) ([]dogs.Dog, error) {
	var litter []dogs.Dog
	_, err := s.mutate(ctx, slot, "breed", func(st *State) error {
		mi := indexOf(st.Dogs, maleID)
		if mi < 0 {
			return dogNotFound(maleID)
		}
		fi := indexOf(st.Dogs, femaleID)
		if fi < 0 {
			return dogNotFound(femaleID)
		}

		pups, err := genetics.Breed(s.src, st.Dogs[mi], &st.Dogs[fi])
		if err != nil {
			return err
		}
		st.Litter = pups
		litter = cloneDogs(pups)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("litter born", map[string]any{"slot": slot, "male_id": maleID, "female_id": femaleID, "size": len(litter)})
	return litter, nil
}

// AdoptPuppy pasa un cachorro de la camada al criadero por PuppyAdoptionFee.
func (s *Service) AdoptPuppy(ctx context.Context, slot, puppyID string) (dogs.Dog, error) {
	var out dogs.Dog
	_, err := s.mutate(ctx, slot, "adopt_puppy", func(st *State) error {
		i := indexOf(st.Litter, puppyID)
		if i < 0 {
			return dogNotFound(puppyID)
		}
		if st.Money < PuppyAdoptionFee {
			return insufficient(PuppyAdoptionFee, st.Money)
		}
		st.Money -= PuppyAdoptionFee
		out = st.Litter[i]
		st.Litter = removeAt(st.Litter, i)
		st.Dogs = append(st.Dogs, out)
		return nil
	})
	return out, err
}

// ---------- Mercado ----------

// Buy mueve un perro del mercado al criadero.
func (s *Service) Buy(ctx context.Context, slot, dogID string) (dogs.Dog, error) {
	var out dogs.Dog
	_, err := s.mutate(ctx, slot, "buy", func(st *State) error {
		i := indexOf(st.Market, dogID)
		if i < 0 {
			return dogNotFound(dogID)
		}
		d := st.Market[i]
		if st.Money < d.Price {
			return insufficient(d.Price, st.Money)
		}
		st.Money -= d.Price
		st.Market = removeAt(st.Market, i)

		d.Price = 0
		st.Dogs = append(st.Dogs, d)
		out = d
		return nil
	})
	if err != nil {
		return dogs.Dog{}, err
	}

	s.log.Info("dog bought", map[string]any{"slot": slot, "dog_id": out.ID, "breed": out.Breed})
	return out, nil
}

// RefreshMarket cobra la tarifa y reemplaza el lote completo.
func (s *Service) RefreshMarket(ctx context.Context, slot string) ([]dogs.Dog, error) {
	var listings []dogs.Dog
	_, err := s.mutate(ctx, slot, "refresh_market", func(st *State) error {
		if st.Money < market.RefreshFee {
			return insufficient(market.RefreshFee, st.Money)
		}
		st.Money -= market.RefreshFee
		st.Market = market.Generate(s.src)
		st.MarketLastUpdate = st.Day
		listings = cloneDogs(st.Market)
		return nil
	})
	return listings, err
}

// ---------- Exposición ----------

// EnterShow inscribe un perro maduro; reemplaza cualquier sesión previa.
func (s *Service) EnterShow(ctx context.Context, slot, dogID string) (show.Session, error) {
	var sess show.Session
	_, err := s.mutate(ctx, slot, "enter_show", func(st *State) error {
		i := indexOf(st.Dogs, dogID)
		if i < 0 {
			return dogNotFound(dogID)
		}
		entered, err := show.Enter(st.Dogs[i], s.now())
		if err != nil {
			return err
		}
		st.Show = &entered
		sess = entered
		return nil
	})
	return sess, err
}

type AttemptResult struct {
	Position float64      `json:"position"`
	Score    int          `json:"score"`
	Session  show.Session `json:"session"`
}

// RecordSkillAttempt puntúa la posición dada o, si es nil, la del puntero según el tiempo transcurrido.
func (s *Service) RecordSkillAttempt(ctx context.Context, slot string, position *float64) (AttemptResult, error) {
	var res AttemptResult
	_, err := s.mutate(ctx, slot, "skill_attempt", func(st *State) error {
		if st.Show == nil {
			return ErrNoShow
		}

		pos := show.PointerPosition(s.now().Sub(st.Show.StartedAt))
		if position != nil {
			pos = *position
		}
		if pos < 0 || pos > 100 {
			return fmt.Errorf("%w: position must be within [0,100]", ErrInvalidInput)
		}

		score, err := st.Show.Record(pos)
		if err != nil {
			return err
		}
		res = AttemptResult{Position: pos, Score: score, Session: *st.Show}
		return nil
	})
	return res, err
}

type ShowReport struct {
	DogID    string      `json:"dog_id"`
	Result   show.Result `json:"result"`
	Money    int         `json:"money"`
	Prestige int         `json:"prestige"`
}

// FinishShow cierra la sesión y acredita premio y prestigio.
func (s *Service) FinishShow(ctx context.Context, slot string) (ShowReport, error) {
	var report ShowReport
	st, err := s.mutate(ctx, slot, "finish_show", func(st *State) error {
		if st.Show == nil {
			return ErrNoShow
		}
		if indexOf(st.Dogs, st.Show.DogID) < 0 {
			return dogNotFound(st.Show.DogID)
		}

		res := show.Outcome(st.Show.Beauty, st.Show.SkillTotal)
		st.Money += res.Reward
		st.Prestige += res.PrestigeGain

		report = ShowReport{DogID: st.Show.DogID, Result: res}
		st.Show = nil
		return nil
	})
	if err != nil {
		return ShowReport{}, err
	}

	report.Money = st.Money
	report.Prestige = st.Prestige
	s.log.Info("show finished", map[string]any{
		"slot":     slot,
		"dog_id":   report.DogID,
		"tier":     report.Result.Tier,
		"total":    report.Result.Total,
		"reward":   money.Format(report.Result.Reward),
		"prestige": report.Result.PrestigeGain,
	})
	return report, nil
}

// ---------- Consultas ----------

type Location string

const (
	LocationKennel Location = "kennel"
	LocationMarket Location = "market"
	LocationLitter Location = "litter"
)

// DogView agrega los valores derivados que lee la presentación.
type DogView struct {
	Dog            dogs.Dog            `json:"dog"`
	Location       Location            `json:"location"`
	GeneticRating  int                 `json:"genetic_rating"`
	Price          int                 `json:"price"`
	VisibleDefects []dogs.DefectRecord `json:"visible_defects"`
	BeautyScore    int                 `json:"beauty_score"`
	BoostActive    bool                `json:"boost_active"`
}

// View calcula los derivados de un perro. El precio es el de lista en el mercado
// o la estimación sin rareza de color en otro lugar.
func View(d dogs.Dog, loc Location, now time.Time) DogView {
	price := valuation.Estimate(d)
	if loc == LocationMarket && d.Price > 0 {
		price = d.Price
	}
	return DogView{
		Dog:            d,
		Location:       loc,
		GeneticRating:  genetics.GeneticRating(d),
		Price:          price,
		VisibleDefects: d.VisibleDefects(),
		BeautyScore:    show.BeautyScore(d, now),
		BoostActive:    d.BoostActive(now),
	}
}

// Dog busca en criadero, mercado y camada.
func (s *Service) Dog(ctx context.Context, slot, dogID string) (DogView, error) {
	st, err := s.Get(ctx, slot)
	if err != nil {
		return DogView{}, err
	}

	now := s.now()
	for _, c := range []struct {
		list []dogs.Dog
		loc  Location
	}{
		{st.Dogs, LocationKennel},
		{st.Market, LocationMarket},
		{st.Litter, LocationLitter},
	} {
		if i := indexOf(c.list, dogID); i >= 0 {
			return View(c.list[i], c.loc, now), nil
		}
	}
	return DogView{}, dogNotFound(dogID)
}

// Eligible lista los IDs aptos para criar (por género) y para competir.
type Eligible struct {
	Males   []string `json:"males"`
	Females []string `json:"females"`
	Show    []string `json:"show"`
}

func EligibleDogs(st State) Eligible {
	out := Eligible{Males: []string{}, Females: []string{}, Show: []string{}}
	for _, d := range st.Dogs {
		if !d.IsMature() {
			continue
		}
		out.Show = append(out.Show, d.ID)
		switch d.Gender {
		case dogs.GenderMale:
			out.Males = append(out.Males, d.ID)
		case dogs.GenderFemale:
			if !d.HasBred || d.DaysSinceBred >= genetics.BreedingCooldown {
				out.Females = append(out.Females, d.ID)
			}
		}
	}
	sort.Strings(out.Males)
	sort.Strings(out.Females)
	sort.Strings(out.Show)
	return out
}
