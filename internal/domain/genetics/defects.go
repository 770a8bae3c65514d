package genetics

// Inheritance es el modo de herencia de un defecto.
type Inheritance string

const (
	InheritanceRecessive Inheritance = "recessive"
	InheritanceDominant  Inheritance = "dominant"
	InheritancePolygenic Inheritance = "polygenic"
)

// DefectType es una entrada inmutable del catálogo de defectos.
type DefectType struct {
	Name               string
	Inheritance        Inheritance
	TransmissionChance float64 // probabilidad de que pase a la cría
	ExpressionChance   float64 // probabilidad de que, pasado, se exprese
}

// El orden de declaración es el orden de evaluación al heredar.
var defectCatalog = []DefectType{
	{Name: "Hip Dysplasia", Inheritance: InheritanceRecessive, TransmissionChance: 0.5, ExpressionChance: 0.25},
	{Name: "Crooked Teeth", Inheritance: InheritanceDominant, TransmissionChance: 0.75, ExpressionChance: 0.75},
	{Name: "Corneal Spot", Inheritance: InheritanceRecessive, TransmissionChance: 0.5, ExpressionChance: 0.25},
	{Name: "Skin Allergy", Inheritance: InheritancePolygenic, TransmissionChance: 0.4, ExpressionChance: 0.15},
	{Name: "Breathing Problems", Inheritance: InheritanceRecessive, TransmissionChance: 0.5, ExpressionChance: 0.25},
}

// AllDefectTypes devuelve una copia del catálogo en orden de declaración.
func AllDefectTypes() []DefectType {
	return append([]DefectType(nil), defectCatalog...)
}

func LookupDefect(name string) (DefectType, bool) {
	for _, dt := range defectCatalog {
		if dt.Name == name {
			return dt, true
		}
	}
	return DefectType{}, false
}
