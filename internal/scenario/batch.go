package scenario

import (
	"context"
	"sync/atomic"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// BatchItem is the result for one scenario of a batch.
type BatchItem struct {
	Scenario string   `json:"scenario"`
	Outcome  *Outcome `json:"outcome,omitempty"`
	Err      error    `json:"-"`
}

// EvaluateAll evaluates scenarios concurrently, at most concurrency at a time.
// Results keep the input order; a failing scenario is recorded in its item
// and does not stop the batch. The returned error is non-nil only when ctx
// ends before every scenario ran.
func EvaluateAll(ctx context.Context, scenarios []*Scenario, opts Options, concurrency int) ([]BatchItem, error) {
	if concurrency < 1 {
		concurrency = 1
	}
	items := make([]BatchItem, len(scenarios))
	if len(scenarios) == 0 {
		return items, nil
	}

	zap.L().Info("evaluating batch",
		zap.Int("scenarios", len(scenarios)),
		zap.Int("concurrency", concurrency),
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	var succeeded, failed atomic.Int64

	for i, s := range scenarios {
		items[i].Scenario = s.DisplayName()
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				items[i].Err = eris.Wrap(err, "evaluate")
				return err
			}
			out, err := Evaluate(gctx, s, opts)
			if err != nil {
				failed.Add(1)
				items[i].Err = err
				zap.L().Error("scenario failed", zap.String("scenario", s.DisplayName()), zap.Error(err))
				return nil // don't abort batch on individual failure
			}
			succeeded.Add(1)
			items[i].Outcome = out
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return items, eris.Wrap(err, "batch evaluation")
	}

	zap.L().Info("batch complete",
		zap.Int64("succeeded", succeeded.Load()),
		zap.Int64("failed", failed.Load()),
	)
	return items, nil
}
