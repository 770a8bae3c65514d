package game

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"kennel-tycoon/internal/domain/care"
	"kennel-tycoon/internal/domain/dogs"
	"kennel-tycoon/internal/domain/market"
	"kennel-tycoon/internal/domain/show"
	"kennel-tycoon/internal/middleware"
	"kennel-tycoon/internal/platform/money"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	// Partida
	r.Post("/games", newGameHandler(svc))
	r.Route("/game", func(gr chi.Router) {
		gr.Get("/", getGameHandler(svc))
		gr.Post("/days", advanceDayHandler(svc))
		gr.Post("/speed", speedHandler(svc))
	})

	// Cuidado individual
	r.Route("/dogs/{dogID}", func(dr chi.Router) {
		dr.Get("/", getDogHandler(svc))
		dr.Post("/feed", feedHandler(svc))
		dr.Post("/walk", walkHandler(svc))
		dr.Post("/treat", treatHandler(svc))
	})

	// Acciones sobre todo el criadero
	r.Route("/kennel", func(kr chi.Router) {
		kr.Post("/feed", feedAllHandler(svc))
		kr.Post("/walk", walkAllHandler(svc))
		kr.Post("/treat", treatAllHandler(svc))
	})

	r.Post("/breedings", breedHandler(svc))
	r.Post("/litter/{dogID}/adopt", adoptHandler(svc))

	r.Route("/market", func(mr chi.Router) {
		mr.Get("/", listMarketHandler(svc))
		mr.Post("/refresh", refreshMarketHandler(svc))
		mr.Post("/{dogID}/buy", buyHandler(svc))
	})

	r.Route("/shows", func(sr chi.Router) {
		sr.Post("/", enterShowHandler(svc))
		sr.Post("/current/attempts", attemptHandler(svc))
		sr.Post("/current/finish", finishShowHandler(svc))
	})
}

type gameResponse struct {
	Day          int           `json:"day"`
	Money        int           `json:"money"`
	MoneyDisplay string        `json:"money_display"`
	Prestige     int           `json:"prestige"`
	Speed        int           `json:"speed"`
	Dogs         []DogView     `json:"dogs"`
	Litter       []DogView     `json:"litter"`
	MarketSize   int           `json:"market_size"`
	Show         *showResponse `json:"show,omitempty"`
	Eligible     Eligible      `json:"eligible"`
}

type showResponse struct {
	show.Session
	AttemptsLeft int `json:"attempts_left"`
}

type marketResponse struct {
	LastUpdate int       `json:"last_update"`
	RefreshFee int       `json:"refresh_fee"`
	Listings   []DogView `json:"listings"`
}

type speedRequest struct {
	Speed *int `json:"speed"` // nil => rotar 1x/2x/5x
}

type feedRequest struct {
	Tier string `json:"tier"` // standard (default) | premium
}

type breedRequest struct {
	MaleID   string `json:"male_id"`
	FemaleID string `json:"female_id"`
}

type enterShowRequest struct {
	DogID string `json:"dog_id"`
}

type attemptRequest struct {
	// Posición del puntero 0-100. Si no viene, se usa la del reloj de la sesión.
	Position *float64 `json:"position"`
}

type treatResponse struct {
	Dog       DogView `json:"dog"`
	Cost      int     `json:"cost"`
	Days      int     `json:"days"`
	CostLabel string  `json:"cost_display"`
}

type showReportResponse struct {
	ShowReport
	RewardDisplay string `json:"reward_display"`
}

// newGameHandler godoc
// @Summary Nueva partida
// @Description Crea (o reinicia) la partida del slot `X-Save-Slot` con dos perros iniciales y mercado.
// @Tags game
// @Produce json
// @Param X-Save-Slot header string false "Slot de guardado (default: default)"
// @Success 201 {object} gameResponse
// @Router /games [post]
func newGameHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		st, err := svc.NewGame(r.Context(), slotFrom(r))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, toGameResponse(st, svc.Now()))
	}
}

// getGameHandler godoc
// @Summary Estado de la partida
// @Tags game
// @Produce json
// @Param X-Save-Slot header string false "Slot de guardado"
// @Success 200 {object} gameResponse
// @Failure 404 {string} string "game not found"
// @Router /game [get]
func getGameHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		st, err := svc.Get(r.Context(), slotFrom(r))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toGameResponse(st, svc.Now()))
	}
}

func advanceDayHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report, err := svc.AdvanceDay(r.Context(), slotFrom(r))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, report)
	}
}

// speedHandler godoc
// @Summary Cambiar velocidad
// @Description Sin body (o sin `speed`) rota 1x -> 2x -> 5x -> 1x. Con `speed` la fija.
// @Tags game
// @Accept json
// @Produce json
// @Param payload body speedRequest false "Velocidad 1, 2 o 5"
// @Success 200 {object} map[string]int
// @Failure 400 {string} string "invalid speed"
// @Router /game/speed [post]
func speedHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req speedRequest
		if err := decodeOptional(r, &req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		var (
			speed int
			err   error
		)
		if req.Speed == nil {
			speed, err = svc.ToggleSpeed(r.Context(), slotFrom(r))
		} else {
			speed, err = svc.SetSpeed(r.Context(), slotFrom(r), *req.Speed)
		}
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]int{"speed": speed})
	}
}

// getDogHandler godoc
// @Summary Detalle de un perro
// @Description Busca en criadero, mercado y camada. Incluye rating genético, precio, defectos visibles y belleza.
// @Tags dogs
// @Produce json
// @Param dogID path string true "ID del perro"
// @Success 200 {object} DogView
// @Failure 404 {string} string "dog not found"
// @Router /dogs/{dogID} [get]
func getDogHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		v, err := svc.Dog(r.Context(), slotFrom(r), chi.URLParam(r, "dogID"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, v)
	}
}

// feedHandler godoc
// @Summary Alimentar
// @Description standard: $10, +5 saciedad, +1 salud. premium: $25, +10 saciedad, +3 salud y +5 de belleza por 5 minutos.
// @Tags care
// @Accept json
// @Produce json
// @Param dogID path string true "ID del perro"
// @Param payload body feedRequest false "Tipo de alimento"
// @Success 200 {object} DogView
// @Failure 402 {string} string "insufficient funds"
// @Failure 404 {string} string "dog not found"
// @Router /dogs/{dogID}/feed [post]
func feedHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tier, ok := feedTierFrom(w, r)
		if !ok {
			return
		}
		d, err := svc.Feed(r.Context(), slotFrom(r), chi.URLParam(r, "dogID"), tier)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, View(d, LocationKennel, svc.Now()))
	}
}

func walkHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d, err := svc.Walk(r.Context(), slotFrom(r), chi.URLParam(r, "dogID"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, View(d, LocationKennel, svc.Now()))
	}
}

// treatHandler godoc
// @Summary Tratamiento veterinario
// @Description Costo aleatorio $50-$200; oculta los defectos expresados por 3-7 días.
// @Tags care
// @Produce json
// @Param dogID path string true "ID del perro"
// @Success 200 {object} treatResponse
// @Failure 402 {string} string "insufficient funds"
// @Failure 404 {string} string "dog not found"
// @Router /dogs/{dogID}/treat [post]
func treatHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d, quote, err := svc.Treat(r.Context(), slotFrom(r), chi.URLParam(r, "dogID"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, treatResponse{
			Dog:       View(d, LocationKennel, svc.Now()),
			Cost:      quote.Cost,
			Days:      quote.Days,
			CostLabel: money.Format(quote.Cost),
		})
	}
}

func feedAllHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tier, ok := feedTierFrom(w, r)
		if !ok {
			return
		}
		report, err := svc.FeedAll(r.Context(), slotFrom(r), tier)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, report)
	}
}

func walkAllHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report, err := svc.WalkAll(r.Context(), slotFrom(r))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, report)
	}
}

func treatAllHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report, err := svc.TreatAll(r.Context(), slotFrom(r))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, report)
	}
}

// breedHandler godoc
// @Summary Cruzar
// @Description Macho y hembra maduros, misma raza, hembra fuera del cooldown de 180 días. La camada (1-6) queda pendiente de adopción.
// @Tags breeding
// @Accept json
// @Produce json
// @Param payload body breedRequest true "IDs de macho y hembra"
// @Success 201 {array} DogView
// @Failure 400 {string} string "invalid json"
// @Failure 404 {string} string "dog not found"
// @Failure 409 {string} string "invalid pairing"
// @Router /breedings [post]
func breedHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req breedRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		if strings.TrimSpace(req.MaleID) == "" || strings.TrimSpace(req.FemaleID) == "" {
			http.Error(w, "male_id and female_id are required", http.StatusBadRequest)
			return
		}

		litter, err := svc.Breed(r.Context(), slotFrom(r), req.MaleID, req.FemaleID)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, toViews(litter, LocationLitter, svc.Now()))
	}
}

func adoptHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d, err := svc.AdoptPuppy(r.Context(), slotFrom(r), chi.URLParam(r, "dogID"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, View(d, LocationKennel, svc.Now()))
	}
}

// listMarketHandler godoc
// @Summary Mercado
// @Tags market
// @Produce json
// @Success 200 {object} marketResponse
// @Router /market [get]
func listMarketHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		st, err := svc.Get(r.Context(), slotFrom(r))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, marketResponse{
			LastUpdate: st.MarketLastUpdate,
			RefreshFee: market.RefreshFee,
			Listings:   toViews(st.Market, LocationMarket, svc.Now()),
		})
	}
}

func refreshMarketHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		listings, err := svc.RefreshMarket(r.Context(), slotFrom(r))
		if err != nil {
			writeError(w, err)
			return
		}
		st, err := svc.Get(r.Context(), slotFrom(r))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, marketResponse{
			LastUpdate: st.MarketLastUpdate,
			RefreshFee: market.RefreshFee,
			Listings:   toViews(listings, LocationMarket, svc.Now()),
		})
	}
}

// buyHandler godoc
// @Summary Comprar un perro del mercado
// @Tags market
// @Produce json
// @Param dogID path string true "ID del perro listado"
// @Success 200 {object} DogView
// @Failure 402 {string} string "insufficient funds"
// @Failure 404 {string} string "dog not found"
// @Router /market/{dogID}/buy [post]
func buyHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d, err := svc.Buy(r.Context(), slotFrom(r), chi.URLParam(r, "dogID"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, View(d, LocationKennel, svc.Now()))
	}
}

// enterShowHandler godoc
// @Summary Inscribir en exposición
// @Description Fija la belleza al entrar. Reemplaza cualquier exposición en curso.
// @Tags shows
// @Accept json
// @Produce json
// @Param payload body enterShowRequest true "Perro a inscribir"
// @Success 201 {object} showResponse
// @Failure 404 {string} string "dog not found"
// @Failure 409 {string} string "dog is not mature"
// @Router /shows [post]
func enterShowHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req enterShowRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		sess, err := svc.EnterShow(r.Context(), slotFrom(r), req.DogID)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, showResponse{Session: sess, AttemptsLeft: sess.AttemptsLeft()})
	}
}

// attemptHandler godoc
// @Summary Intento de destreza
// @Description 40-60 => 25 puntos, 30-40 o 60-70 => 10, resto 0. Máximo 3 intentos.
// @Tags shows
// @Accept json
// @Produce json
// @Param payload body attemptRequest false "Posición del puntero"
// @Success 200 {object} AttemptResult
// @Failure 409 {string} string "no show in progress / no skill attempts left"
// @Router /shows/current/attempts [post]
func attemptHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req attemptRequest
		if err := decodeOptional(r, &req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		res, err := svc.RecordSkillAttempt(r.Context(), slotFrom(r), req.Position)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, res)
	}
}

// finishShowHandler godoc
// @Summary Cerrar exposición
// @Tags shows
// @Produce json
// @Success 200 {object} showReportResponse
// @Failure 409 {string} string "no show in progress"
// @Router /shows/current/finish [post]
func finishShowHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report, err := svc.FinishShow(r.Context(), slotFrom(r))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, showReportResponse{
			ShowReport:    report,
			RewardDisplay: money.Format(report.Result.Reward),
		})
	}
}

func toGameResponse(st State, now time.Time) gameResponse {
	resp := gameResponse{
		Day:          st.Day,
		Money:        st.Money,
		MoneyDisplay: money.Format(st.Money),
		Prestige:     st.Prestige,
		Speed:        st.Speed,
		Dogs:         toViews(st.Dogs, LocationKennel, now),
		Litter:       toViews(st.Litter, LocationLitter, now),
		MarketSize:   len(st.Market),
		Eligible:     EligibleDogs(st),
	}
	if st.Show != nil {
		resp.Show = &showResponse{Session: *st.Show, AttemptsLeft: st.Show.AttemptsLeft()}
	}
	return resp
}

func toViews(list []dogs.Dog, loc Location, now time.Time) []DogView {
	out := make([]DogView, 0, len(list))
	for _, d := range list {
		out = append(out, View(d, loc, now))
	}
	return out
}

func feedTierFrom(w http.ResponseWriter, r *http.Request) (care.FeedTier, bool) {
	var req feedRequest
	if err := decodeOptional(r, &req); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return "", false
	}
	tier := care.FeedTier(strings.ToLower(strings.TrimSpace(req.Tier)))
	if tier == "" {
		tier = care.FeedStandard
	}
	return tier, true
}

// decodeOptional acepta body vacío.
func decodeOptional(r *http.Request, v any) error {
	err := json.NewDecoder(r.Body).Decode(v)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func slotFrom(r *http.Request) string {
	slot, _ := middleware.GetSlot(r.Context())
	return slot
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInsufficientFunds):
		http.Error(w, err.Error(), http.StatusPaymentRequired)
	case errors.Is(err, ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, ErrInvalidPairing),
		errors.Is(err, ErrNotMature),
		errors.Is(err, ErrAttemptsExhausted),
		errors.Is(err, ErrNoShow):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
