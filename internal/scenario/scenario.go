// Package scenario models one AHP + TOPSIS evaluation as data, loads it from
// YAML or xlsx workbooks and runs it through the core engines.
package scenario

import (
	"github.com/rotisserie/eris"

	"github.com/yankputra/SPK-AlatMusikKesenian/criteria"
	"github.com/yankputra/SPK-AlatMusikKesenian/decision"
)

// Scenario is a complete evaluation input.
//
// Exactly one weight source must be set: Pairwise (full N×N matrix),
// Comparisons (the n(n−1)/2 upper-triangle judgments, row by row) or
// Weights (ready-made weights summing to 1).
type Scenario struct {
	Name          string                 `yaml:"name" json:"name"`
	Criteria      []criteria.Criterion   `yaml:"criteria" json:"criteria"`
	Pairwise      [][]float64            `yaml:"pairwise,omitempty" json:"pairwise,omitempty"`
	Comparisons   []float64              `yaml:"comparisons,omitempty" json:"comparisons,omitempty"`
	Weights       []float64              `yaml:"weights,omitempty" json:"weights,omitempty"`
	Alternatives  []decision.Alternative `yaml:"alternatives" json:"alternatives"`
	Normalization string                 `yaml:"normalization,omitempty" json:"normalization,omitempty"`

	// Source is the file the scenario was loaded from, if any.
	Source string `yaml:"-" json:"-"`
}

// WeightSource names which weight field a scenario uses.
type WeightSource string

// Weight sources.
const (
	SourcePairwise    WeightSource = "pairwise"
	SourceComparisons WeightSource = "comparisons"
	SourceWeights     WeightSource = "weights"
)

// WeightSource reports the single weight field that is set.
func (s *Scenario) WeightSource() (WeightSource, error) {
	var found []WeightSource
	if len(s.Pairwise) > 0 {
		found = append(found, SourcePairwise)
	}
	if len(s.Comparisons) > 0 {
		found = append(found, SourceComparisons)
	}
	if len(s.Weights) > 0 {
		found = append(found, SourceWeights)
	}
	switch len(found) {
	case 0:
		if len(s.Criteria) == 1 {
			// a single criterion needs no judgments
			return SourceComparisons, nil
		}
		return "", eris.Errorf("scenario %q: one of pairwise, comparisons or weights is required", s.Name)
	case 1:
		return found[0], nil
	default:
		return "", eris.Errorf("scenario %q: weight sources %v are mutually exclusive", s.Name, found)
	}
}

// Registry builds the criteria registry in declaration order.
func (s *Scenario) Registry() (*criteria.Registry, error) {
	reg, err := criteria.NewRegistry(s.Criteria...)
	if err != nil {
		return nil, eris.Wrapf(err, "scenario %q: criteria", s.Name)
	}
	return reg, nil
}

// DisplayName returns Name, or Source when the name is empty.
func (s *Scenario) DisplayName() string {
	if s.Name != "" {
		return s.Name
	}
	return s.Source
}
