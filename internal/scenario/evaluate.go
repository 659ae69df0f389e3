package scenario

import (
	"context"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/yankputra/SPK-AlatMusikKesenian/ahp"
	"github.com/yankputra/SPK-AlatMusikKesenian/criteria"
	"github.com/yankputra/SPK-AlatMusikKesenian/decision"
	"github.com/yankputra/SPK-AlatMusikKesenian/topsis"
)

// Options carries the engine settings that do not live in the scenario.
type Options struct {
	Method    ahp.Method
	Threshold float64
	// Policy applies when the scenario leaves normalization empty.
	Policy decision.Policy
}

// DefaultOptions matches the engine defaults.
func DefaultOptions() Options {
	return Options{Method: ahp.GeometricMean, Threshold: ahp.DefaultThreshold, Policy: decision.Vector}
}

// Weights is the outcome of the weighting step.
type Weights struct {
	Source WeightSource     `json:"source"`
	Vector ahp.WeightVector `json:"weights"`

	// Consistency is nil when the weights were supplied directly.
	Consistency *ahp.ConsistencyReport `json:"consistency,omitempty"`
}

// Outcome is a fully evaluated scenario.
type Outcome struct {
	RunID    string               `json:"run_id"`
	Scenario string               `json:"scenario"`
	Criteria []criteria.Criterion `json:"criteria"`
	Weights
	Normalization string         `json:"normalization"`
	Ranking       *topsis.Result `json:"ranking"`
}

// DeriveWeights runs only the weighting step of s.
func DeriveWeights(s *Scenario, opts Options) (*Weights, error) {
	src, err := s.WeightSource()
	if err != nil {
		return nil, err
	}
	n := len(s.Criteria)

	if src == SourceWeights {
		if len(s.Weights) != n {
			return nil, eris.Errorf("scenario %q: %d weights for %d criteria", s.Name, len(s.Weights), n)
		}
		w, err := ahp.NewWeightVector(s.Weights)
		if err != nil {
			return nil, eris.Wrapf(err, "scenario %q: weights", s.Name)
		}
		return &Weights{Source: src, Vector: w}, nil
	}

	var pm *ahp.PairwiseMatrix
	if src == SourcePairwise {
		pm, err = ahp.NewPairwiseMatrix(s.Pairwise)
	} else {
		pm, err = ahp.FromUpperTriangle(n, s.Comparisons)
	}
	if err != nil {
		return nil, eris.Wrapf(err, "scenario %q: %s", s.Name, src)
	}
	if pm.N() != n {
		return nil, eris.Errorf("scenario %q: %d×%d comparison matrix for %d criteria", s.Name, pm.N(), pm.N(), n)
	}

	w, rep, err := ahp.DeriveWeights(pm, ahp.WithMethod(opts.Method), ahp.WithThreshold(opts.Threshold))
	if err != nil {
		return nil, eris.Wrapf(err, "scenario %q: derive weights", s.Name)
	}
	return &Weights{Source: src, Vector: w, Consistency: &rep}, nil
}

// Evaluate runs the whole AHP → normalize → TOPSIS pipeline for s.
func Evaluate(ctx context.Context, s *Scenario, opts Options) (*Outcome, error) {
	if err := ctx.Err(); err != nil {
		return nil, eris.Wrap(err, "evaluate")
	}
	log := zap.L().With(zap.String("scenario", s.DisplayName()))

	reg, err := s.Registry()
	if err != nil {
		return nil, err
	}
	w, err := DeriveWeights(s, opts)
	if err != nil {
		return nil, err
	}

	policy := opts.Policy
	if s.Normalization != "" {
		if policy, err = decision.ParsePolicy(s.Normalization); err != nil {
			return nil, eris.Wrapf(err, "scenario %q", s.Name)
		}
	}

	raw, err := decision.FromAlternatives(s.Alternatives)
	if err != nil {
		return nil, eris.Wrapf(err, "scenario %q: alternatives", s.Name)
	}
	wm, err := decision.NormalizeAndWeight(raw, w.Vector, reg, decision.WithPolicy(policy))
	if err != nil {
		return nil, eris.Wrapf(err, "scenario %q: normalize", s.Name)
	}
	res, err := topsis.Rank(wm, reg)
	if err != nil {
		return nil, eris.Wrapf(err, "scenario %q: rank", s.Name)
	}

	out := &Outcome{
		RunID:         uuid.NewString(),
		Scenario:      s.DisplayName(),
		Criteria:      reg.All(),
		Weights:       *w,
		Normalization: policy.String(),
		Ranking:       res,
	}

	fields := []zap.Field{
		zap.String("run_id", out.RunID),
		zap.Int("alternatives", raw.Rows()),
		zap.String("weights", string(w.Source)),
	}
	if top, ok := res.Top(); ok {
		fields = append(fields, zap.String("top", top.Alternative), zap.Float64("closeness", top.Closeness))
	}
	if c := w.Consistency; c != nil {
		fields = append(fields, zap.Float64("cr", c.CR), zap.Bool("acceptable", c.Acceptable))
		if !c.Acceptable {
			log.Warn("pairwise judgments are not consistent", append(fields, zap.Float64("threshold", c.Threshold))...)
		}
	}
	log.Info("scenario evaluated", fields...)

	return out, nil
}
