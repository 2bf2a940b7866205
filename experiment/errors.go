package experiment

import "errors"

var (
	// ErrEmptyPlan indicates a plan with no algorithms, no cases, or no sizes
	// for some algorithm.
	ErrEmptyPlan = errors.New("experiment: empty plan")

	// ErrBadRepetitions indicates Repetitions < 1.
	ErrBadRepetitions = errors.New("experiment: repetitions must be positive")

	// ErrBadWorkers indicates Workers < 0.
	ErrBadWorkers = errors.New("experiment: workers must not be negative")

	// ErrUnsorted is returned by Run when verification finds an output that
	// is not in non-decreasing order.
	ErrUnsorted = errors.New("experiment: output not sorted")
)
