package dogs

import (
	"math"
	"time"
)

// Gender del perro.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

const (
	// MaturityAge es la edad mínima (días) para criar o competir.
	MaturityAge = 90
	MaxStat     = 100
)

// DefectRecord es la presencia de un defecto hereditario en un perro.
// Invariante: Expressed != Carrier.
type DefectRecord struct {
	Name      string `json:"name"`
	Expressed bool   `json:"expressed"`
	Carrier   bool   `json:"carrier"`
}

// Dog es la entidad central del juego.
type Dog struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Breed  Breed  `json:"breed"`
	Gender Gender `json:"gender"`
	Age    int    `json:"age"` // días

	Conformation int `json:"conformation"`
	Coat         int `json:"coat"`
	Temperament  int `json:"temperament"`
	Stamina      int `json:"stamina"`

	Satiety   int `json:"satiety"`
	Happiness int `json:"happiness"`
	Health    int `json:"health"`

	DaysSinceFed    int  `json:"days_since_fed"`
	DaysSinceWalked int  `json:"days_since_walked"`
	DaysSinceBred   int  `json:"days_since_bred"`
	HasBred         bool `json:"has_bred"` // false = nunca crió, no aplica cooldown

	Defects []DefectRecord `json:"defects"`

	// Derivados / transitorios
	GeneticRating  int       `json:"genetic_rating"`
	Price          int       `json:"price,omitempty"` // solo listados del mercado
	BoostAmount    int       `json:"boost_amount,omitempty"`
	BoostExpiresAt time.Time `json:"boost_expires_at,omitempty"`
	TreatmentDays  int       `json:"treatment_days,omitempty"`
}

// Traits devuelve los cuatro rasgos continuos.
func (d Dog) Traits() Traits {
	return Traits{
		Conformation: d.Conformation,
		Coat:         d.Coat,
		Temperament:  d.Temperament,
		Stamina:      d.Stamina,
	}
}

func (d Dog) IsMature() bool {
	return d.Age >= MaturityAge
}

// Carries indica si el perro tiene un registro del defecto (expresado o no).
func (d Dog) Carries(defect string) bool {
	for _, r := range d.Defects {
		if r.Name == defect {
			return true
		}
	}
	return false
}

// BoostActive: el boost de belleza expira en tiempo real, no en días de juego.
func (d Dog) BoostActive(now time.Time) bool {
	return d.BoostAmount > 0 && now.Before(d.BoostExpiresAt)
}

func (d Dog) TreatmentActive() bool {
	return d.TreatmentDays > 0
}

// VisibleDefects son los defectos expresados que no oculta un tratamiento activo.
// El registro genético no cambia.
func (d Dog) VisibleDefects() []DefectRecord {
	out := make([]DefectRecord, 0)
	if d.TreatmentActive() {
		return out
	}
	for _, r := range d.Defects {
		if r.Expressed {
			out = append(out, r)
		}
	}
	return out
}

// Clone copia también el slice de defectos.
func (d Dog) Clone() Dog {
	c := d
	if d.Defects != nil {
		c.Defects = append([]DefectRecord(nil), d.Defects...)
	}
	return c
}

// RoundHalfUp redondea .5 hacia arriba (igual para todos los motores).
func RoundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}

// Clamp limita v a [lo, hi].
func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
