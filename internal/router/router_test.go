package router_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	mem "kennel-tycoon/internal/adapters/storage/memory"
	"kennel-tycoon/internal/domain/game"
	"kennel-tycoon/internal/platform/logger"
	"kennel-tycoon/internal/platform/rng"
	"kennel-tycoon/internal/router"
)

type dogView struct {
	Dog struct {
		ID     string `json:"id"`
		Gender string `json:"gender"`
		Breed  string `json:"breed"`
		Age    int    `json:"age"`
	} `json:"dog"`
	Location string `json:"location"`
	Price    int    `json:"price"`
}

type gameView struct {
	Day          int       `json:"day"`
	Money        int       `json:"money"`
	MoneyDisplay string    `json:"money_display"`
	Speed        int       `json:"speed"`
	Dogs         []dogView `json:"dogs"`
	MarketSize   int       `json:"market_size"`
}

type marketView struct {
	LastUpdate int       `json:"last_update"`
	Listings   []dogView `json:"listings"`
}

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	src, _ := rng.New(2024)
	svc := game.NewService(mem.NewGameRepo(), src, logger.Nop())
	ts := httptest.NewServer(router.NewRouter(router.Options{Service: svc, Logger: logger.Nop()}))
	t.Cleanup(ts.Close)
	return ts
}

func TestHTTP_EndToEnd_GameFlow(t *testing.T) {
	ts := newServer(t)

	// 1) Sin partida => 404
	if st, _ := doReq(t, ts.URL, "GET", "/game", "", nil); st != http.StatusNotFound {
		t.Fatalf("expected 404 before new game, got %d", st)
	}

	// 2) Nueva partida
	var g gameView
	{
		st, body := doReq(t, ts.URL, "POST", "/games", "", nil)
		if st != http.StatusCreated {
			t.Fatalf("expected 201, got %d body=%s", st, string(body))
		}
		mustJSON(t, body, &g)
		if g.Day != 1 || g.Money != 2500 || g.MoneyDisplay != "$2,500" || len(g.Dogs) != 2 || g.MarketSize != 5 {
			t.Fatalf("unexpected new game: %+v", g)
		}
	}
	rexID := g.Dogs[0].Dog.ID

	// 3) Detalle
	{
		st, body := doReq(t, ts.URL, "GET", "/dogs/"+rexID, "", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200, got %d", st)
		}
		var v dogView
		mustJSON(t, body, &v)
		if v.Location != "kennel" || v.Dog.ID != rexID {
			t.Fatalf("unexpected dog view: %+v", v)
		}
	}

	// 4) Cuidado
	if st, body := doReq(t, ts.URL, "POST", "/dogs/"+rexID+"/feed", "", map[string]any{"tier": "premium"}); st != http.StatusOK {
		t.Fatalf("expected 200 feeding, got %d body=%s", st, string(body))
	}
	if st, _ := doReq(t, ts.URL, "POST", "/dogs/"+rexID+"/walk", "", nil); st != http.StatusOK {
		t.Fatalf("expected 200 walking, got %d", st)
	}
	if st, _ := doReq(t, ts.URL, "POST", "/kennel/feed", "", nil); st != http.StatusOK {
		t.Fatalf("expected 200 feeding all, got %d", st)
	}
	if st, _ := doReq(t, ts.URL, "POST", "/dogs/ghost/walk", "", nil); st != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown dog, got %d", st)
	}
	if st, _ := doReq(t, ts.URL, "POST", "/dogs/"+rexID+"/feed", "", map[string]any{"tier": "gourmet"}); st != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown tier, got %d", st)
	}

	// 5) Día y velocidad
	{
		st, body := doReq(t, ts.URL, "POST", "/game/days", "", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200, got %d", st)
		}
		var rep struct {
			Day int `json:"day"`
		}
		mustJSON(t, body, &rep)
		if rep.Day != 2 {
			t.Fatalf("expected day 2, got %d", rep.Day)
		}
	}
	{
		st, body := doReq(t, ts.URL, "POST", "/game/speed", "", nil)
		if st != http.StatusOK || !bytes.Contains(body, []byte(`"speed":2`)) {
			t.Fatalf("expected toggle to 2x, got %d body=%s", st, string(body))
		}
		if st, _ := doReq(t, ts.URL, "POST", "/game/speed", "", map[string]any{"speed": 3}); st != http.StatusBadRequest {
			t.Fatalf("expected 400 for speed 3, got %d", st)
		}
	}

	// 6) Mercado: refrescar y comprar lo más barato
	var m marketView
	{
		st, body := doReq(t, ts.URL, "POST", "/market/refresh", "", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 refresh, got %d body=%s", st, string(body))
		}
		mustJSON(t, body, &m)
		if len(m.Listings) != 5 || m.LastUpdate != 2 {
			t.Fatalf("unexpected market: %+v", m)
		}
	}
	cheapest := m.Listings[0]
	for _, l := range m.Listings {
		if l.Price < cheapest.Price {
			cheapest = l
		}
	}
	{
		_, body := doReq(t, ts.URL, "GET", "/game", "", nil)
		mustJSON(t, body, &g)

		st, body := doReq(t, ts.URL, "POST", "/market/"+cheapest.Dog.ID+"/buy", "", nil)
		switch {
		case cheapest.Price > g.Money:
			if st != http.StatusPaymentRequired {
				t.Fatalf("expected 402 buying $%d with $%d, got %d", cheapest.Price, g.Money, st)
			}
		case st != http.StatusOK:
			t.Fatalf("expected 200 buy, got %d body=%s", st, string(body))
		default:
			if st, _ := doReq(t, ts.URL, "POST", "/market/"+cheapest.Dog.ID+"/buy", "", nil); st != http.StatusNotFound {
				t.Fatalf("expected 404 buying twice, got %d", st)
			}
		}
	}

	// 7) Exposición
	{
		st, body := doReq(t, ts.URL, "POST", "/shows", "", map[string]any{"dog_id": rexID})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 entering show, got %d body=%s", st, string(body))
		}
		for i := 0; i < 3; i++ {
			if st, body := doReq(t, ts.URL, "POST", "/shows/current/attempts", "", map[string]any{"position": 50}); st != http.StatusOK {
				t.Fatalf("expected 200 attempt, got %d body=%s", st, string(body))
			}
		}
		if st, _ := doReq(t, ts.URL, "POST", "/shows/current/attempts", "", map[string]any{"position": 50}); st != http.StatusConflict {
			t.Fatalf("expected 409 on 4th attempt, got %d", st)
		}
		if st, _ := doReq(t, ts.URL, "POST", "/shows/current/finish", "", nil); st != http.StatusOK {
			t.Fatalf("expected 200 finish, got %d", st)
		}
		if st, _ := doReq(t, ts.URL, "POST", "/shows/current/finish", "", nil); st != http.StatusConflict {
			t.Fatalf("expected 409 with no show, got %d", st)
		}
	}
}

func TestHTTP_SlotsAreIsolated(t *testing.T) {
	ts := newServer(t)

	if st, _ := doReq(t, ts.URL, "POST", "/games", "alpha", nil); st != http.StatusCreated {
		t.Fatalf("expected 201, got %d", st)
	}
	if st, _ := doReq(t, ts.URL, "GET", "/game", "alpha", nil); st != http.StatusOK {
		t.Fatalf("expected 200 for alpha, got %d", st)
	}
	if st, _ := doReq(t, ts.URL, "GET", "/game", "beta", nil); st != http.StatusNotFound {
		t.Fatalf("expected 404 for beta, got %d", st)
	}
	if st, _ := doReq(t, ts.URL, "GET", "/game", "bad slot!", nil); st != http.StatusBadRequest {
		t.Fatalf("expected 400 for invalid slot, got %d", st)
	}
}

func TestHTTP_BreedingErrors(t *testing.T) {
	ts := newServer(t)

	st, body := doReq(t, ts.URL, "POST", "/games", "", nil)
	if st != http.StatusCreated {
		t.Fatalf("expected 201, got %d", st)
	}
	var g gameView
	mustJSON(t, body, &g)

	if st, _ := doReq(t, ts.URL, "POST", "/breedings", "", map[string]any{"male_id": g.Dogs[0].Dog.ID}); st != http.StatusBadRequest {
		t.Fatalf("expected 400 without female_id, got %d", st)
	}

	// mismo perro en ambos roles: nunca es una pareja válida
	same := g.Dogs[0].Dog.ID
	if st, _ := doReq(t, ts.URL, "POST", "/breedings", "", map[string]any{"male_id": same, "female_id": same}); st != http.StatusConflict {
		t.Fatalf("expected 409 for invalid pairing, got %d", st)
	}

	if st, _ := doReq(t, ts.URL, "POST", "/litter/ghost/adopt", "", nil); st != http.StatusNotFound {
		t.Fatalf("expected 404 adopting unknown puppy, got %d", st)
	}
}

func TestHTTP_Health(t *testing.T) {
	ts := newServer(t)

	st, body := doReq(t, ts.URL, "GET", "/health", "", nil)
	if st != http.StatusOK || string(body) != "ok" {
		t.Fatalf("unexpected health: %d %q", st, string(body))
	}
}

func mustJSON(t *testing.T, body []byte, v any) {
	t.Helper()
	if err := json.Unmarshal(body, v); err != nil {
		t.Fatalf("decode: %v body=%s", err, string(body))
	}
}

func doReq(t *testing.T, baseURL, method, path, slot string, body any) (int, []byte) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json marshal: %v", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, rdr)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if slot != "" {
		req.Header.Set("X-Save-Slot", slot)
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody
}
