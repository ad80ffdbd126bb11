package puyas

import (
	"fmt"
	"math"
	"math/rand/v2"
	"slices"

	"github.com/gnames/gn"
	"github.com/gnames/puyadb/pkg/errcode"
)

// Options describe the value space of generated records.
type Options struct {
	AgeMin       int
	AgeMax       int
	Statuses     []string
	Observations []string
}

// DefaultOptions returns the value space used by the field survey.
func DefaultOptions() Options {
	return Options{
		AgeMin:       DefaultAgeMin,
		AgeMax:       DefaultAgeMax,
		Statuses:     slices.Clone(Statuses),
		Observations: slices.Clone(Observations),
	}
}

// Generator creates records with uniformly sampled fields.
// It is not safe for concurrent use.
type Generator struct {
	opts Options
	rnd  *rand.Rand
}

// New creates a Generator. If src is nil, the generator uses a
// randomly seeded source.
func New(opts Options, src rand.Source) (*Generator, error) {
	if err := validate(opts); err != nil {
		return nil, err
	}
	if src == nil {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}
	res := Generator{
		opts: Options{
			AgeMin:       opts.AgeMin,
			AgeMax:       opts.AgeMax,
			Statuses:     slices.Clone(opts.Statuses),
			Observations: slices.Clone(opts.Observations),
		},
		rnd: rand.New(src),
	}
	return &res, nil
}

// NewSeeded creates a Generator that produces the same sequence of
// records for the same seed. Zero seed means a random sequence.
func NewSeeded(opts Options, seed uint64) (*Generator, error) {
	var src rand.Source
	if seed != 0 {
		src = rand.NewPCG(seed, seed)
	}
	return New(opts, src)
}

// Options returns a copy of the generator's value space.
func (g *Generator) Options() Options {
	return Options{
		AgeMin:       g.opts.AgeMin,
		AgeMax:       g.opts.AgeMax,
		Statuses:     slices.Clone(g.opts.Statuses),
		Observations: slices.Clone(g.opts.Observations),
	}
}

// Record returns a new record for the given plant ID.
func (g *Generator) Record(id int) Record {
	o := g.opts
	return Record{
		ConteoPuyasID:   id,
		EdadEstimada:    o.AgeMin + g.rnd.IntN(o.AgeMax-o.AgeMin+1),
		EstadoFloracion: o.Statuses[g.rnd.IntN(len(o.Statuses))],
		Observaciones:   o.Observations[g.rnd.IntN(len(o.Observations))],
	}
}

// Records returns n records with IDs from 1 to n.
func (g *Generator) Records(n int) []Record {
	res := make([]Record, 0, max(n, 0))
	for i := 1; i <= n; i++ {
		res = append(res, g.Record(i))
	}
	return res
}

func validate(o Options) error {
	switch {
	case o.AgeMin < 0:
		return GeneratorError(fmt.Sprintf("minimal age %d is negative", o.AgeMin))
	case o.AgeMin > o.AgeMax:
		return GeneratorError(
			fmt.Sprintf("minimal age %d is bigger than maximal age %d",
				o.AgeMin, o.AgeMax),
		)
	case o.AgeMax-o.AgeMin == math.MaxInt:
		return GeneratorError(
			fmt.Sprintf("age range %d..%d is too wide", o.AgeMin, o.AgeMax),
		)
	case len(o.Statuses) == 0:
		return GeneratorError("flowering statuses list is empty")
	case len(o.Observations) == 0:
		return GeneratorError("observations list is empty")
	}
	return nil
}

// GeneratorError is returned when generator options cannot produce
// valid records.
func GeneratorError(reason string) error {
	msg := `Cannot generate records: <em>%s</em>

<em>How to fix:</em>
  Check the 'seed' section of config.yaml`

	return &gn.Error{
		Code: errcode.SeedGeneratorError,
		Msg:  msg,
		Vars: []any{reason},
		Err:  fmt.Errorf("invalid generator options: %s", reason),
	}
}
