package strength

import (
	"context"
	"runtime"

	"github.com/varalys/passcheck/internal/types"
	"golang.org/x/sync/errgroup"
)

// AnalyzeAll scores every password with at most workers goroutines (0 means
// GOMAXPROCS). Reports are returned in input order. The only error is a
// cancelled context.
func AnalyzeAll(ctx context.Context, a *Analyzer, passwords []string, workers int) ([]types.Report, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	out := make([]types.Report, len(passwords))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, pw := range passwords {
		i, pw := i, pw
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			out[i] = a.Analyze(pw)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
