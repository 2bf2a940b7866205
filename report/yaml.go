package report

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/sortlab/stats"
)

// yamlGroup is the serialized form of one group.
type yamlGroup struct {
	Algorithm string                   `yaml:"algorithm"`
	Case      string                   `yaml:"case"`
	Size      int                      `yaml:"size"`
	Count     int                      `yaml:"count"`
	Columns   map[string]stats.Summary `yaml:"columns"`
}

type yamlSummary struct {
	Groups []yamlGroup `yaml:"groups"`
}

// WriteYAML writes the aggregated groups as a YAML document.
func WriteYAML(w io.Writer, groups []stats.Group) error {
	doc := yamlSummary{Groups: make([]yamlGroup, len(groups))}
	for i, g := range groups {
		doc.Groups[i] = yamlGroup{
			Algorithm: g.Algorithm,
			Case:      g.Case,
			Size:      g.Size,
			Count:     g.Count,
			Columns:   g.Columns,
		}
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode summary yaml: %w", err)
	}

	return enc.Close()
}
