package generator

import (
	"strings"
)

// Case selects which input distribution to generate.
type Case string

const (
	// Best is the already-sorted input for every algorithm.
	Best Case = "best"
	// Worst is the per-algorithm adversarial input (see WorstCase).
	Worst Case = "worst"
	// Average is a uniformly random permutation.
	Average Case = "average"
)

// caseAliases accepts the labels used by earlier result files
// ("melhor", "pior", "medio") next to the canonical names.
var caseAliases = map[string]Case{
	"best":    Best,
	"worst":   Worst,
	"average": Average,
	"melhor":  Best,
	"pior":    Worst,
	"medio":   Average,
}

// Cases returns all cases in reporting order.
func Cases() []Case {
	return []Case{Best, Worst, Average}
}

// String implements fmt.Stringer.
func (c Case) String() string { return string(c) }

// Rank orders cases for reports: best, worst, average, then anything else.
func (c Case) Rank() int {
	switch c {
	case Best:
		return 0
	case Worst:
		return 1
	case Average:
		return 2
	default:
		return 3
	}
}

// ParseCase maps a label (case-insensitive, surrounding spaces ignored) to a Case.
// Unknown labels return an error wrapping ErrUnknownCase.
func ParseCase(label string) (Case, error) {
	c, ok := caseAliases[strings.ToLower(strings.TrimSpace(label))]
	if !ok {
		return "", generatorErrorf(MethodParseCase, ErrUnknownCase, "label %q", label)
	}

	return c, nil
}
