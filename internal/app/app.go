package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/gridpath/internal/ctxlog"
	"github.com/katalvlaran/gridpath/internal/view"
	"github.com/katalvlaran/gridpath/scenario"
)

var (
	// ErrUnknownRoute is returned when Config.Route names no route in the file.
	ErrUnknownRoute = errors.New("unknown route")
	// ErrUnsolved is returned after printing when at least one route has no path.
	ErrUnsolved = errors.New("routes without a path")
)

// viewFunc opens an interactive display of solved routes.
type viewFunc func(ctx context.Context, sc *scenario.Scenario, results []scenario.Result) error

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *Config
	view   viewFunc
}

// NewApp returns an App that prints reports to outW and logs to logW.
func NewApp(outW, logW io.Writer, cfg *Config) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	return &App{
		outW:   outW,
		logger: logger,
		config: cfg,
		view:   view.Open,
	}
}

// Run loads the scenario, solves the selected routes and either prints a
// report or hands the results to the viewer.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.", "scenario", a.config.ScenarioPath)

	sc, err := scenario.Load(ctx, a.config.ScenarioPath)
	if err != nil {
		return fmt.Errorf("failed to load scenario: %w", err)
	}

	var results []scenario.Result
	if name := a.config.Route; name != "" {
		r, ok := sc.Route(name)
		if !ok {
			return fmt.Errorf("%w: %q in %s", ErrUnknownRoute, name, sc.Source)
		}
		results = []scenario.Result{sc.Solve(ctx, r)}
	} else {
		results = sc.SolveAll(ctx)
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	a.logger.Info("Routes solved.", "count", len(results))

	if a.config.View {
		return a.view(ctx, sc, results)
	}
	return a.report(sc, results)
}

// report prints every result followed by the map with its path drawn.
func (a *App) report(sc *scenario.Scenario, results []scenario.Result) error {
	unsolved := 0
	for i, res := range results {
		if i > 0 {
			fmt.Fprintln(a.outW)
		}
		r := res.Route
		switch {
		case res.Err != nil:
			unsolved++
			fmt.Fprintf(a.outW, "route %s: %v -> %v: %v\n", r.Name, r.From, r.To, res.Err)
		case res.Smoothed != nil:
			fmt.Fprintf(a.outW, "route %s: %v -> %v steps=%d waypoints=%d\n",
				r.Name, r.From, r.To, len(res.Raw)-1, len(res.Smoothed))
		default:
			fmt.Fprintf(a.outW, "route %s: %v -> %v steps=%d\n", r.Name, r.From, r.To, len(res.Raw)-1)
		}
		fmt.Fprintln(a.outW, sc.Map.Render(res.Overlays(false)...))
	}

	if unsolved > 0 {
		return fmt.Errorf("%d of %d %w", unsolved, len(results), ErrUnsolved)
	}
	return nil
}
