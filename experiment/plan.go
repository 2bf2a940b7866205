package experiment

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/sortlab/generator"
	"github.com/katalvlaran/sortlab/sorting"
)

// DefaultRepetitions is the number of trials per (algorithm, case, size).
const DefaultRepetitions = 20

var (
	defaultLargeSizes = []int{1, 4, 16, 64, 256, 1024, 4096, 16384, 65536, 262144, 1048576}
	defaultSmallSizes = []int{1, 10, 50, 100, 500, 1000, 5000, 10000, 20000, 50000}
	defaultQuadratic  = []string{sorting.InsertionSortName, sorting.SelectionSortName}
)

// Plan describes a full experiment grid.
type Plan struct {
	Algorithms []string
	Cases      []generator.Case

	// LargeSizes apply to every algorithm not listed in Quadratic;
	// SmallSizes to those that are.
	LargeSizes []int
	SmallSizes []int
	Quadratic  []string

	Repetitions int

	// Seed pins every shuffle and pivot choice when non-zero.
	Seed int64

	// Workers bounds concurrent trials; 0 and 1 both mean sequential.
	Workers int

	// Verify checks every output with sorting.IsSorted.
	Verify bool
}

// DefaultPlan returns the full grid: every registered algorithm, every case,
// twenty repetitions, sizes up to 2^20 for the n·log n algorithms and up to
// 50000 for the quadratic ones.
func DefaultPlan() Plan {
	return Plan{
		Algorithms:  sorting.Names(),
		Cases:       generator.Cases(),
		LargeSizes:  slices.Clone(defaultLargeSizes),
		SmallSizes:  slices.Clone(defaultSmallSizes),
		Quadratic:   slices.Clone(defaultQuadratic),
		Repetitions: DefaultRepetitions,
		Workers:     1,
	}
}

// Validate reports the first problem that would prevent Run from executing.
func (p Plan) Validate() error {
	if len(p.Algorithms) == 0 || len(p.Cases) == 0 {
		return ErrEmptyPlan
	}
	if p.Repetitions < 1 {
		return fmt.Errorf("%w: got %d", ErrBadRepetitions, p.Repetitions)
	}
	if p.Workers < 0 {
		return fmt.Errorf("%w: got %d", ErrBadWorkers, p.Workers)
	}

	for _, name := range p.Algorithms {
		if _, err := sorting.Lookup(name); err != nil {
			return err
		}
		sizes := p.SizesFor(name)
		if len(sizes) == 0 {
			return fmt.Errorf("%w: no sizes for %s", ErrEmptyPlan, name)
		}
		for _, n := range sizes {
			if n < 0 {
				return fmt.Errorf("%s: %w: %d", name, generator.ErrNegativeSize, n)
			}
		}
	}
	for _, c := range p.Cases {
		if !slices.Contains(generator.Cases(), c) {
			return fmt.Errorf("%w: %q", generator.ErrUnknownCase, string(c))
		}
	}

	return nil
}

// SizesFor returns the sizes algorithm runs at.
func (p Plan) SizesFor(algorithm string) []int {
	if slices.Contains(p.Quadratic, algorithm) {
		return p.SmallSizes
	}

	return p.LargeSizes
}

// Trial identifies one sort call within a plan.
type Trial struct {
	Index      int // position in Trials order, used to derive seeds
	Algorithm  string
	Case       generator.Case
	Size       int
	Repetition int // 1-based
}

// Trials enumerates the grid in algorithm → case → size → repetition order.
func (p Plan) Trials() []Trial {
	var out []Trial
	for _, algo := range p.Algorithms {
		sizes := p.SizesFor(algo)
		for _, c := range p.Cases {
			for _, n := range sizes {
				for rep := 1; rep <= p.Repetitions; rep++ {
					out = append(out, Trial{
						Index:      len(out),
						Algorithm:  algo,
						Case:       c,
						Size:       n,
						Repetition: rep,
					})
				}
			}
		}
	}

	return out
}
