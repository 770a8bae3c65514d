package router

import (
	"net/http"

	_ "kennel-tycoon/docs"
	mem "kennel-tycoon/internal/adapters/storage/memory"
	"kennel-tycoon/internal/domain/game"
	"kennel-tycoon/internal/middleware"
	"kennel-tycoon/internal/platform/logger"
	"kennel-tycoon/internal/platform/rng"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

const DefaultSlot = "default"

type Options struct {
	// Opcional: si no viene, partidas en memoria con semilla del reloj.
	Service *game.Service

	Logger      logger.Logger // puede ser nil
	DefaultSlot string        // slot cuando no viene X-Save-Slot
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	svc := opts.Service
	if svc == nil {
		src, _ := rng.New(0)
		svc = game.NewService(mem.NewGameRepo(), src, log)
	}

	slot := opts.DefaultSlot
	if slot == "" {
		slot = DefaultSlot
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLog(log))
	r.Use(chimw.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	// Rutas de juego (todas dependen del slot)
	r.Group(func(gr chi.Router) {
		gr.Use(middleware.SaveSlot(slot))
		game.RegisterRoutes(gr, svc)
	})

	return r
}
