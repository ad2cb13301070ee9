package scenario

import (
	"context"
	"sync"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/internal/ctxlog"
	"github.com/katalvlaran/gridpath/smooth"
)

// Solve finds a path for r and smooths it when the scenario asks for it.
// Cancellation of ctx is passed on to astar.
func (s *Scenario) Solve(ctx context.Context, r Route) Result {
	logger := ctxlog.FromContext(ctx).With("route", r.Name)

	raw, err := astar.FindPath(r.From, r.To, s.Map.Walkable, s.MaxDistance,
		astar.WithStagnationLimit(s.StagnationLimit),
		astar.WithConnectivity(s.Map.Conn),
		astar.WithContext(ctx),
	)
	res := Result{Route: r, Raw: raw, Err: err}
	if err != nil {
		logger.Info("No path found.", "from", r.From, "to", r.To, "error", err)
		return res
	}
	if s.Smooth {
		res.Smoothed = smooth.Path(raw, s.Map.Walkable)
	}

	logger.Debug("Route solved.", "steps", len(raw)-1, "waypoints", len(res.Smoothed))
	return res
}

// SolveAll solves every route concurrently. Results keep route order.
func (s *Scenario) SolveAll(ctx context.Context) []Result {
	results := make([]Result, len(s.Routes))

	var wg sync.WaitGroup
	for i, r := range s.Routes {
		wg.Add(1)
		go func(i int, r Route) {
			defer wg.Done()
			results[i] = s.Solve(ctx, r)
		}(i, r)
	}
	wg.Wait()

	return results
}
