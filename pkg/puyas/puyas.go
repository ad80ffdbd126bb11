// Package puyas describes a single Puya raimondii field observation and
// generates synthetic observations for seeding.
//
// This package has no I/O dependencies.
package puyas

// Record is one row of the puyas_info table. ConteoPuyasID references a
// plant in the ConteoPuyas table, which must exist before seeding.
type Record struct {
	// ConteoPuyasID is the identifier of the counted plant.
	ConteoPuyasID int `yaml:"conteopuyas_id"`

	// EdadEstimada is the estimated age of the plant in years.
	EdadEstimada int `yaml:"edad_estimada"`

	// EstadoFloracion is the flowering status, one of the Statuses.
	EstadoFloracion string `yaml:"estado_floracion"`

	// Observaciones is a free-text field note, one of the Observations.
	Observaciones string `yaml:"observaciones"`
}

// Args returns record fields in the column order of Columns, ready
// for positional binding.
func (r Record) Args() []any {
	return []any{
		r.ConteoPuyasID,
		r.EdadEstimada,
		r.EstadoFloracion,
		r.Observaciones,
	}
}

// Columns lists puyas_info columns written by the seeder.
var Columns = []string{
	"conteopuyas_id",
	"edad_estimada",
	"estado_floracion",
	"observaciones",
}

var (
	// Statuses is the default closed set of flowering statuses.
	Statuses = []string{
		"florecida",
		"no florecida",
		"parcialmente florecida",
		"muerta",
	}

	// Observations is the default closed set of field notes.
	Observations = []string{
		"Planta en buen estado",
		"Planta parcialmente seca",
		"Flores abiertas, saludable",
		"Algunas hojas dañadas por viento",
		"Planta en crecimiento",
		"Necesita protección contra pastoreo",
	}
)

const (
	// DefaultCount is the number of plants in the ConteoPuyas survey.
	DefaultCount = 1536

	// DefaultAgeMin is the lowest estimated age, in years.
	DefaultAgeMin = 20

	// DefaultAgeMax is the highest estimated age, in years.
	DefaultAgeMax = 100
)
