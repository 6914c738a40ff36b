package life

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// StepParallel advances the grid by one generation, splitting rows across
// workers. The result is identical to Step. A cancelled context aborts the
// step and leaves the current generation untouched.
func (g *Grid) StepParallel(ctx context.Context, workers int) error {
	if workers <= 1 || g.height < 2 {
		g.Step()
		return nil
	}
	workers = min(workers, g.height)

	var (
		eg, egCtx     = errgroup.WithContext(ctx)
		rowsPerWorker = (g.height + workers - 1) / workers
	)

	for i := range workers {
		var (
			startRow = i * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, g.height)
		)
		if startRow >= g.height {
			break
		}

		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			g.stepRows(startRow, endRow)
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return err
	}

	g.swap()
	return nil
}
